// Package jira resolves project keys and assignee account ids against a
// Jira instance and reconciles action items into issues.
package jira

import (
	"fmt"
	"strings"
	"time"

	jira "github.com/andygrunwald/go-jira"

	"github.com/momsync/momsync/internal/logging"
	"github.com/momsync/momsync/pkg/models"
)

// issueTypeName is the fixed type every reconciled issue is created with.
const issueTypeName = "Task"

// summaryPrefix is prepended to the action item description to form the
// issue summary. The duplicate check matches on the full prefixed summary.
const summaryPrefix = "Action Item: "

// Client handles interactions with the Jira API. One Client is built per
// pipeline run from the caller-supplied credentials; nothing is shared
// between runs.
type Client struct {
	client *jira.Client
}

// NewClient creates a Jira client from request-scoped credentials.
func NewClient(creds models.TrackerCredentials, timeout time.Duration) (*Client, error) {
	var missing []string
	if creds.Email == "" {
		missing = append(missing, "email")
	}
	if creds.APIToken == "" {
		missing = append(missing, "api token")
	}
	if creds.BaseURL == "" {
		missing = append(missing, "instance url")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing jira credentials: %v", missing)
	}

	tp := jira.BasicAuthTransport{
		Username: creds.Email,
		Password: creds.APIToken,
	}

	httpClient := tp.Client()
	httpClient.Timeout = timeout

	client, err := jira.NewClient(httpClient, creds.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create jira client: %w", err)
	}

	logging.Debug("jira client created",
		"instance", creds.BaseURL,
		"email", creds.Email,
		"token", logging.MaskSensitive(creds.APIToken))

	return &Client{client: client}, nil
}

// ResolveProjectKey finds the project key for a human-readable project name.
// Matching is case-insensitive and whitespace-trimmed, but exact: "My Project"
// and " my project " resolve to the same key, "My Proj" does not.
func (c *Client) ResolveProjectKey(name string) (string, error) {
	list, resp, err := c.client.Project.GetList()
	if err != nil {
		statusCode := 0
		if resp != nil {
			statusCode = resp.StatusCode
		}
		return "", &ProjectFetchError{StatusCode: statusCode, Err: err}
	}

	want := strings.ToLower(strings.TrimSpace(name))
	for _, project := range *list {
		if strings.ToLower(strings.TrimSpace(project.Name)) == want {
			logging.Debug("resolved project",
				"name", name,
				"key", project.Key)
			return project.Key, nil
		}
	}

	return "", &ProjectNotFoundError{Name: name}
}

// ResolveAccountID finds the Jira account id for an assignee display name.
// The raw name is sent as a substring query and the first result wins: when
// several users match a common name there is no disambiguation, only a
// warning. Callers that need certainty must supply a more specific name.
func (c *Client) ResolveAccountID(name string) (string, error) {
	users, _, err := c.client.User.Find(name)
	if err != nil {
		return "", fmt.Errorf("user search failed for %q: %w", name, err)
	}

	if len(users) == 0 {
		return "", &UserNotFoundError{Name: name}
	}

	if len(users) > 1 {
		logging.Warn("multiple users matched assignee name, taking first",
			"name", name,
			"matches", len(users))
	}

	return users[0].AccountID, nil
}

// Reconcile ensures an issue for the candidate exists in the tracker. It
// never returns an error: the outcome value carries success, duplicate skip,
// or failure, so one bad item cannot abort a batch.
//
// The duplicate check is best-effort and fail-open: if the search call
// fails, creation proceeds as though no duplicate exists. The
// check-then-create sequence is not atomic against concurrent runs on the
// same project.
func (c *Client) Reconcile(candidate models.IssueCandidate) models.IssueOutcome {
	if c.isDuplicate(candidate.ProjectKey, candidate.Summary) {
		logging.Info("skipping duplicate issue",
			"project", candidate.ProjectKey,
			"summary", candidate.Summary)
		return models.IssueOutcome{
			Status:  models.OutcomeSkipped,
			Summary: candidate.Summary,
			Reason:  "duplicate",
		}
	}

	issue := &jira.Issue{
		Fields: &jira.IssueFields{
			Project:     jira.Project{Key: candidate.ProjectKey},
			Summary:     candidate.Summary,
			Description: candidate.Description,
			Type:        jira.IssueType{Name: issueTypeName},
			Assignee:    &jira.User{AccountID: candidate.AccountID},
		},
	}

	created, resp, err := c.client.Issue.Create(issue)
	if err != nil {
		statusCode := 0
		if resp != nil {
			statusCode = resp.StatusCode
		}
		logging.Error("failed to create issue",
			"project", candidate.ProjectKey,
			"summary", candidate.Summary,
			"status", statusCode,
			"error", err)
		return models.IssueOutcome{
			Status:     models.OutcomeFailed,
			Summary:    candidate.Summary,
			StatusCode: statusCode,
			Message:    err.Error(),
		}
	}

	logging.Info("created issue",
		"project", candidate.ProjectKey,
		"key", created.Key)

	return models.IssueOutcome{
		Status:  models.OutcomeCreated,
		Summary: candidate.Summary,
		Key:     created.Key,
	}
}

// Summarize builds the issue summary for an action item description.
func Summarize(description string) string {
	return summaryPrefix + description
}

// isDuplicate reports whether the project already contains an issue whose
// summary matches the candidate summary. Fail-open: a failed search call
// reports no duplicate.
func (c *Client) isDuplicate(projectKey, summary string) bool {
	jql := fmt.Sprintf(`project = "%s" AND summary ~ "%s"`, escapeJQL(projectKey), escapeJQL(summary))
	issues, _, err := c.client.Issue.Search(jql, &jira.SearchOptions{MaxResults: 1})
	if err != nil {
		logging.Warn("duplicate check failed, proceeding with creation",
			"project", projectKey,
			"error", err)
		return false
	}
	return len(issues) > 0
}

// escapeJQL escapes quotes and backslashes inside a JQL string literal.
func escapeJQL(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
