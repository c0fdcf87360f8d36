// Package models defines data structures shared across the application.
package models

// ActionItem represents a single task extracted from generated meeting minutes.
type ActionItem struct {
	// Description is the task text captured from the minutes
	Description string

	// Assignee is the name token the minutes assigned the task to.
	// Multi-word names are truncated to their first token by the
	// extraction grammar.
	Assignee string
}

// TrackerCredentials holds the Jira credentials supplied by the caller.
// They live only for the duration of one pipeline run and must never be
// persisted or logged unmasked.
type TrackerCredentials struct {
	// Email is the Atlassian account email used for basic auth
	Email string

	// APIToken is the Atlassian API token paired with the email
	APIToken string

	// BaseURL is the Jira instance URL (e.g., "https://example.atlassian.net")
	BaseURL string
}

// IssueCandidate is an issue the pipeline wants to exist in the tracker.
type IssueCandidate struct {
	// ProjectKey is the resolved Jira project key (e.g., "PROJ")
	ProjectKey string

	// Summary is the full issue summary, including the "Action Item: " prefix
	Summary string

	// Description is the raw action item text
	Description string

	// AccountID is the resolved Jira account id of the assignee
	AccountID string
}

// OutcomeStatus classifies the result of one reconcile attempt.
type OutcomeStatus string

const (
	// OutcomeCreated means a new issue was created in the tracker.
	OutcomeCreated OutcomeStatus = "created"

	// OutcomeSkipped means an issue with the same summary already existed.
	OutcomeSkipped OutcomeStatus = "skipped"

	// OutcomeFailed means the tracker rejected the creation or the
	// assignee could not be resolved.
	OutcomeFailed OutcomeStatus = "failed"
)

// IssueOutcome is the per-item result for each action item. It is always a
// value, never an error: per-item failures must not abort the batch.
type IssueOutcome struct {
	Status   OutcomeStatus `json:"status"`
	Summary  string        `json:"summary"`
	Assignee string        `json:"assignee,omitempty"`

	// Key is the created issue key (e.g., "PROJ-42"), set only for created
	Key string `json:"key,omitempty"`

	// Reason is set for skipped outcomes (currently always "duplicate")
	Reason string `json:"reason,omitempty"`

	// StatusCode and Message carry the tracker's rejection for failed
	StatusCode int    `json:"status_code,omitempty"`
	Message    string `json:"message,omitempty"`
}
