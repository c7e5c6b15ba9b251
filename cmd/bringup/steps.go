package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bracketbot/bringup/internal/adapters/logging"
	"github.com/bracketbot/bringup/internal/app"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "List the bring-up steps in execution order",
	RunE:  runSteps,
}

func init() {
	rootCmd.AddCommand(stepsCmd)
}

func runSteps(_ *cobra.Command, _ []string) error {
	bringup := app.New(os.Stdout, logging.NewNopLogger())
	steps, err := bringup.Steps(cfgFile)
	if err != nil {
		return err
	}

	for i, s := range steps {
		fmt.Printf("%2d. %-20s %s\n", i+1, s.Name(), s.Description())
	}
	return nil
}
