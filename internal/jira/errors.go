package jira

import "fmt"

// ProjectFetchError means the project listing call itself failed (network,
// auth, non-2xx). Distinct from ProjectNotFoundError so callers can tell a
// broken connection apart from a genuinely absent project.
type ProjectFetchError struct {
	StatusCode int
	Err        error
}

func (e *ProjectFetchError) Error() string {
	return fmt.Sprintf("failed to fetch projects (status: %d): %v", e.StatusCode, e.Err)
}

func (e *ProjectFetchError) Unwrap() error {
	return e.Err
}

// ProjectNotFoundError means the listing succeeded but no project display
// name matched.
type ProjectNotFoundError struct {
	Name string
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project %q not found", e.Name)
}

// UserNotFoundError means the user search returned no results for the name.
type UserNotFoundError struct {
	Name string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("no user found for %q", e.Name)
}
