package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/momsync/momsync/internal/config"
	"github.com/momsync/momsync/internal/jira"
	"github.com/momsync/momsync/internal/llm"
	"github.com/momsync/momsync/internal/logging"
	"github.com/momsync/momsync/internal/pipeline"
	"github.com/momsync/momsync/internal/server"
	"github.com/momsync/momsync/pkg/models"
)

// serveCmd starts the HTTP surface: an upload form and the /process
// endpoint. Jira credentials arrive with each request; only the LLM
// configuration comes from the environment.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the transcript upload server",
	Long: `Start the HTTP server that accepts meeting transcript uploads.

The form at / collects Jira credentials, a project name, and a transcript
file; POST /process runs the full pipeline and returns the generated minutes,
the resolved assignee account ids, and the per-item issue outcomes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if err := config.ValidateLLMConfig(cfg); err != nil {
			return err
		}

		addr, err := cmd.Flags().GetString("addr")
		if err != nil {
			return err
		}
		if addr == "" {
			addr = cfg.Server.Addr
		}

		generator := llm.NewClient(cfg.LLM)

		run := func(ctx context.Context, creds models.TrackerCredentials, projectName, transcript string) (*pipeline.Result, error) {
			tracker, err := jira.NewClient(creds, cfg.Jira.Timeout)
			if err != nil {
				return nil, err
			}
			return pipeline.New(generator, tracker).Run(ctx, transcript, projectName)
		}

		logging.Info("server configuration",
			"addr", addr,
			"llm_base_url", cfg.LLM.BaseURL,
			"llm_model", cfg.LLM.Model,
			"llm_api_key", logging.MaskSensitive(cfg.LLM.APIKey))

		return server.New(run).Run(addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "listen address (overrides SERVER_ADDR)")
}
