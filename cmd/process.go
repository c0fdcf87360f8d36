package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/momsync/momsync/internal/config"
	"github.com/momsync/momsync/internal/jira"
	"github.com/momsync/momsync/internal/llm"
	"github.com/momsync/momsync/internal/logging"
	"github.com/momsync/momsync/internal/pipeline"
	"github.com/momsync/momsync/pkg/models"
)

// processCmd runs the pipeline once for a local transcript file. Jira
// credentials come from JIRA_URL, JIRA_EMAIL, and JIRA_TOKEN.
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process one transcript file into Jira issues",
	Long: `Process a meeting transcript file: generate minutes of meeting,
extract the action items, and create a Jira issue for each one.

Example:
  momsync process -f meeting.txt -p "My Project"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := cmd.Flags().GetString("file")
		if err != nil {
			return err
		}

		projectName, err := cmd.Flags().GetString("project")
		if err != nil {
			return err
		}

		if file == "" {
			return fmt.Errorf("file flag is required")
		}
		if projectName == "" {
			return fmt.Errorf("project flag is required")
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if err := config.ValidateLLMConfig(cfg); err != nil {
			return err
		}
		if err := config.ValidateJiraConfig(cfg); err != nil {
			return err
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read transcript: %w", err)
		}
		if !utf8.Valid(data) {
			return fmt.Errorf("transcript %s is not valid UTF-8", file)
		}

		tracker, err := jira.NewClient(models.TrackerCredentials{
			Email:    cfg.Jira.Email,
			APIToken: cfg.Jira.Token,
			BaseURL:  cfg.Jira.BaseURL,
		}, cfg.Jira.Timeout)
		if err != nil {
			return fmt.Errorf("failed to initialize jira client: %w", err)
		}

		logging.Info("processing transcript",
			"file", file,
			"project", projectName)

		result, err := pipeline.New(llm.NewClient(cfg.LLM), tracker).Run(cmd.Context(), string(data), projectName)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
	processCmd.Flags().StringP("file", "f", "", "path to the transcript file")
	processCmd.Flags().StringP("project", "p", "", "Jira project name")
}
