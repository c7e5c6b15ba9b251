package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bracketbot/bringup/internal/domain/config"
	"github.com/bracketbot/bringup/internal/domain/engine"
)

var (
	// Global flags
	cfgFile     string
	verbose     bool
	yesFlag     bool
	waitSeconds int
)

var rootCmd = &cobra.Command{
	Use:   "bringup",
	Short: "Prepare a freshly imaged robot host",
	Long: `Bringup applies the ordered sequence of OS-level changes a robot
control stack needs on a freshly imaged host: packages, boot-time device
interfaces, permissions, the Wi-Fi hotspot, the Python runtime and the
launcher service.

Every step offers a short confirmation window, falls back to proceeding
automatically, and skips itself when its effect is already on the host.
The run ends with a reboot that activates the boot-time changes.`,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true,
}

// Execute runs the root command and returns the process exit status. A run
// aborted by a failing action exits with that action's code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	printError(err)
	return engine.ExitCode(err)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultPath, "path to bringup.yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "confirm every step without prompting")
	rootCmd.PersistentFlags().IntVar(&waitSeconds, "wait", 0, "confirmation window in seconds (0 = config or default)")

	rootCmd.AddCommand(versionCmd)
}

// formatError returns a user-friendly error message.
func formatError(err error) string {
	var userErr *config.UserError
	if errors.As(err, &userErr) {
		msg := userErr.Error()
		if userErr.Suggestion != "" {
			msg += fmt.Sprintf("\n\nSuggestion: %s", userErr.Suggestion)
		}
		if verbose && userErr.Underlying != nil {
			msg += fmt.Sprintf("\n\nTechnical details: %v", userErr.Underlying)
		}
		return msg
	}
	return err.Error()
}

// printError prints an error message to stderr.
func printError(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", formatError(err))
}
