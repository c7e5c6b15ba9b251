// Package hostprofile manages marker-delimited configuration fragments in
// host files such as shell profiles and the boot config. Each fragment
// carries a section name and a version; merging replaces a stale block
// in place instead of appending duplicates, so the same fragment can be
// re-applied any number of times.
package hostprofile

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	blockStartFmt = "# >>> bringup %s v%d >>>"
	blockEndFmt   = "# <<< bringup %s <<<"
)

// startMarkerRe matches a fragment start marker and captures section and
// version.
var startMarkerRe = regexp.MustCompile(`(?m)^# >>> bringup (\S+) v(\d+) >>>$`)

// Fragment is a versioned block of file content owned by the orchestrator.
type Fragment struct {
	Section string
	Version int
	Content string
}

// startMarker returns the fragment's start marker line.
func (f Fragment) startMarker() string {
	return fmt.Sprintf(blockStartFmt, f.Section, f.Version)
}

// endMarker returns the fragment's end marker line.
func (f Fragment) endMarker() string {
	return fmt.Sprintf(blockEndFmt, f.Section)
}

// Render returns the complete managed block, markers included.
func (f Fragment) Render() string {
	content := f.Content
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return f.startMarker() + "\n" + content + f.endMarker() + "\n"
}

// Present reports whether the file content already carries this fragment at
// this exact version. A block from an older (or newer) version does not
// count; Merge will replace it.
func Present(content string, f Fragment) bool {
	return strings.Contains(content, f.startMarker())
}

// Merge inserts or replaces the fragment's block in the file content and
// reports whether the content changed. An existing block for the same
// section, at any version, is replaced in place; otherwise the block is
// appended.
func Merge(content string, f Fragment) (string, bool) {
	block := f.Render()

	start, end, found := findBlock(content, f.Section)
	if !found {
		if content == "" {
			return block, true
		}
		out := content
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		return out + "\n" + block, true
	}

	merged := content[:start] + block + content[end:]
	return merged, merged != content
}

// findBlock locates the byte range of the section's managed block,
// regardless of version. The range covers the start marker through the end
// marker's trailing newline.
func findBlock(content, section string) (start, end int, found bool) {
	for _, loc := range startMarkerRe.FindAllStringSubmatchIndex(content, -1) {
		if content[loc[2]:loc[3]] != section {
			continue
		}
		start = loc[0]

		endMarker := fmt.Sprintf(blockEndFmt, section)
		endIdx := strings.Index(content[start:], endMarker)
		if endIdx == -1 {
			// Malformed block: start marker with no end. Claim through EOF
			// so Merge rewrites it whole.
			return start, len(content), true
		}

		end = start + endIdx + len(endMarker)
		if end < len(content) && content[end] == '\n' {
			end++
		}
		return start, end, true
	}
	return 0, 0, false
}

// EnvFragment builds a shell profile fragment exporting the given variables
// in deterministic order.
func EnvFragment(section string, version int, env map[string]string, extra ...string) Fragment {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "export %s=%q\n", k, env[k])
	}
	for _, line := range extra {
		b.WriteString(line)
		b.WriteString("\n")
	}

	return Fragment{Section: section, Version: version, Content: b.String()}
}
