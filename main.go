// Package main is the entry point for the momsync application.
package main

import (
	"fmt"
	"os"

	"github.com/momsync/momsync/cmd"
	"github.com/momsync/momsync/internal/logging"
)

func main() {
	logging.Info("starting momsync", "version", "1.0.0")

	if err := cmd.Execute(); err != nil {
		logging.Error("command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
