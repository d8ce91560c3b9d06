// Package main is the entry point for the tango CLI.
package main

import (
	"os"

	"github.com/tangocli/tango/cmd/tango/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
