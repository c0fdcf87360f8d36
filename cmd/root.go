// Package cmd provides the command-line interface for momsync.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "momsync",
	Short: "Momsync turns meeting transcripts into Jira issues",
	Long: `Momsync sends a meeting transcript to an LLM to generate minutes of
meeting, extracts the action items with their assignees, and creates a Jira
issue for each one, skipping issues whose summary already exists in the
project.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
