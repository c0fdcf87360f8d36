// Package pipeline orchestrates the transcript-to-issues flow: generate
// minutes, extract action items, resolve tracker identifiers, reconcile
// issues.
package pipeline

import (
	"context"
	"fmt"

	"github.com/momsync/momsync/internal/jira"
	"github.com/momsync/momsync/internal/logging"
	"github.com/momsync/momsync/internal/minutes"
	"github.com/momsync/momsync/pkg/models"
)

// MinutesGenerator produces minutes-of-meeting text from a raw transcript.
type MinutesGenerator interface {
	GenerateMinutes(ctx context.Context, transcript string) (string, error)
}

// Tracker resolves tracker identifiers and reconciles candidate issues.
type Tracker interface {
	ResolveProjectKey(name string) (string, error)
	ResolveAccountID(name string) (string, error)
	Reconcile(candidate models.IssueCandidate) models.IssueOutcome
}

// Result aggregates one pipeline run. AccountIDs maps each assignee name to
// its resolved account id, or to an error string when resolution failed.
type Result struct {
	Minutes    string                `json:"mom"`
	AccountIDs map[string]string     `json:"account_ids"`
	Outcomes   []models.IssueOutcome `json:"created_issues"`
}

// Pipeline composes a minutes generator with an issue tracker. Build one per
// request: the tracker carries request-scoped credentials.
type Pipeline struct {
	generator MinutesGenerator
	tracker   Tracker
}

// New creates a pipeline from its two collaborators.
func New(generator MinutesGenerator, tracker Tracker) *Pipeline {
	return &Pipeline{
		generator: generator,
		tracker:   tracker,
	}
}

// Run executes the full flow for one transcript. Generation and project
// resolution failures abort the run; per-item failures (assignee resolution,
// issue creation) are captured in the result and never abort sibling items.
// A transcript that yields no action items is a successful run with empty
// outcomes.
func (p *Pipeline) Run(ctx context.Context, transcript, projectName string) (*Result, error) {
	if transcript == "" {
		return nil, fmt.Errorf("transcript is empty")
	}

	mom, err := p.generator.GenerateMinutes(ctx, transcript)
	if err != nil {
		return nil, err
	}

	items := minutes.ExtractActionItems(mom)
	logging.Info("extracted action items", "count", len(items))

	projectKey, err := p.tracker.ResolveProjectKey(projectName)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Minutes:    mom,
		AccountIDs: make(map[string]string),
		Outcomes:   make([]models.IssueOutcome, 0, len(items)),
	}

	for _, item := range items {
		accountID, err := p.tracker.ResolveAccountID(item.Assignee)
		if err != nil {
			logging.Warn("failed to resolve assignee",
				"assignee", item.Assignee,
				"error", err)
			result.AccountIDs[item.Assignee] = fmt.Sprintf("error: %v", err)
			result.Outcomes = append(result.Outcomes, models.IssueOutcome{
				Status:   models.OutcomeFailed,
				Summary:  jira.Summarize(item.Description),
				Assignee: item.Assignee,
				Message:  err.Error(),
			})
			continue
		}
		result.AccountIDs[item.Assignee] = accountID

		outcome := p.tracker.Reconcile(models.IssueCandidate{
			ProjectKey:  projectKey,
			Summary:     jira.Summarize(item.Description),
			Description: item.Description,
			AccountID:   accountID,
		})
		outcome.Assignee = item.Assignee
		result.Outcomes = append(result.Outcomes, outcome)
	}

	logging.Info("pipeline run complete",
		"project", projectKey,
		"items", len(items),
		"outcomes", len(result.Outcomes))

	return result, nil
}
