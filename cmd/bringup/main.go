// Package main provides the entry point for the bringup CLI.
package main

import "os"

func main() {
	os.Exit(Execute())
}
