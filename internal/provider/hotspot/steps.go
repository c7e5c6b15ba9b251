package hotspot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/ini.v1"

	"github.com/bracketbot/bringup/internal/domain/step"
	"github.com/bracketbot/bringup/internal/provider/commandutil"
	"github.com/bracketbot/bringup/internal/ports"
)

// StepName is the registry name of the hotspot step.
const StepName = "wifi-hotspot"

// connectionsDir is NetworkManager's keyfile directory.
const connectionsDir = "/etc/NetworkManager/system-connections"

// Options configures the access point.
type Options struct {
	SSID       string
	Passphrase string
	Interface  string
}

// Provider builds the hotspot step.
type Provider struct {
	runner ports.CommandRunner
	fs     ports.FileSystem
	log    ports.Logger
}

// NewProvider creates a hotspot Provider.
func NewProvider(runner ports.CommandRunner, fs ports.FileSystem, log ports.Logger) *Provider {
	return &Provider{runner: runner, fs: fs, log: log}
}

// ConnectionPath returns the keyfile path for the given SSID.
func ConnectionPath(ssid string) string {
	return fmt.Sprintf("%s/%s.nmconnection", connectionsDir, ssid)
}

// Step returns the step writing the NetworkManager connection profile.
// The guard checks file existence only: the profile carries a generated
// connection UUID, so content comparison would never match.
func (p *Provider) Step(opts Options) step.Step {
	s := step.New(StepName,
		fmt.Sprintf("Configure Wi-Fi hotspot %q on %s", opts.SSID, opts.Interface),
		func(ctx context.Context) error {
			return p.configure(ctx, opts)
		})
	return s.WithGuard(func(_ context.Context) (bool, error) {
		return p.fs.Exists(ConnectionPath(opts.SSID)), nil
	})
}

// configure renders and installs the keyfile, then asks NetworkManager to
// reload. The reload is non-critical: the profile activates on reboot
// either way, so a reload failure is downgraded to a warning.
func (p *Provider) configure(ctx context.Context, opts Options) error {
	if err := commandutil.RequireBinary(ctx, p.runner, StepName, "nmcli"); err != nil {
		return err
	}

	keyfile, err := renderKeyfile(opts)
	if err != nil {
		return err
	}

	path := ConnectionPath(opts.SSID)
	if err := commandutil.WriteSystemFile(ctx, p.runner, p.fs, StepName, path, keyfile, "0600"); err != nil {
		return err
	}

	result, err := p.runner.Run(ctx, "sudo", "nmcli", "connection", "reload")
	if err != nil || !result.Success() {
		p.log.Warn(ctx, "nmcli reload failed, hotspot starts after reboot",
			ports.F("stderr", strings.TrimSpace(result.Stderr)))
	}
	return nil
}

// renderKeyfile builds the NetworkManager keyfile for a shared-mode access
// point with a derived WPA-PSK.
func renderKeyfile(opts Options) ([]byte, error) {
	cfg := ini.Empty()

	conn, err := cfg.NewSection("connection")
	if err != nil {
		return nil, err
	}
	conn.Key("id").SetValue(opts.SSID)
	conn.Key("uuid").SetValue(uuid.NewString())
	conn.Key("type").SetValue("wifi")
	conn.Key("interface-name").SetValue(opts.Interface)
	conn.Key("autoconnect").SetValue("true")

	wifi, err := cfg.NewSection("wifi")
	if err != nil {
		return nil, err
	}
	wifi.Key("mode").SetValue("ap")
	wifi.Key("ssid").SetValue(opts.SSID)

	sec, err := cfg.NewSection("wifi-security")
	if err != nil {
		return nil, err
	}
	sec.Key("key-mgmt").SetValue("wpa-psk")
	sec.Key("psk").SetValue(DerivePSK(opts.SSID, opts.Passphrase))

	ipv4, err := cfg.NewSection("ipv4")
	if err != nil {
		return nil, err
	}
	ipv4.Key("method").SetValue("shared")

	ipv6, err := cfg.NewSection("ipv6")
	if err != nil {
		return nil, err
	}
	ipv6.Key("method").SetValue("ignore")

	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
