package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the bringup version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("bringup %s\n", version)
	},
}
