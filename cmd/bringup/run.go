package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/bracketbot/bringup/internal/adapters/logging"
	"github.com/bracketbot/bringup/internal/app"
	"github.com/bracketbot/bringup/internal/ports"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Apply the full bring-up sequence and reboot",
	Long: `Run drives every bring-up step in order. Each step waits a few
seconds for a keypress: confirm or decline it, or let the countdown elapse
to proceed automatically. The first failing step aborts the run; re-running
resumes safely because applied steps recognize their own artifacts.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	level := ports.LevelInfo
	if verbose {
		level = ports.LevelDebug
	}
	log := logging.NewConsoleLogger(logging.WithLevel(level))

	bringup := app.New(os.Stdout, log)
	_, err := bringup.Run(ctx, app.RunOptions{
		ConfigPath:    cfgFile,
		AutoYes:       yesFlag,
		WindowSeconds: waitSeconds,
	})
	return err
}
