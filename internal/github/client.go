// Package github provides a client for interacting with the GitHub API.
package github

import (
	"context"
)

// PullRequestInfo contains information about a pull request.
// This is a simplified struct to avoid coupling to the go-github library.
type PullRequestInfo struct {
	Number  int
	HTMLURL string
	Title   string
	State   string
	Base    string
	Head    string
}

// CreatePROptions contains options for creating a pull request
type CreatePROptions struct {
	Title string
	Body  string
	Head  string
	Base  string
	Draft bool
}

// Client is an interface for GitHub API interactions
type Client interface {
	// CreatePullRequest creates a new pull request
	CreatePullRequest(ctx context.Context, opts CreatePROptions) (*PullRequestInfo, error)

	// GetOpenPullRequestByHead gets the open pull request whose head is the given branch
	GetOpenPullRequestByHead(ctx context.Context, branchName string) (*PullRequestInfo, error)

	// ListOpenPullRequestsByBase lists open pull requests targeting the given base branch
	ListOpenPullRequestsByBase(ctx context.Context, base string) ([]*PullRequestInfo, error)

	// MergePullRequest squash-merges a pull request using the given commit title
	MergePullRequest(ctx context.Context, number int, commitTitle string) error

	// ListRulesets lists the repository's branch rulesets
	ListRulesets(ctx context.Context) ([]*Ruleset, error)

	// CreateRuleset creates a new branch ruleset
	CreateRuleset(ctx context.Context, rs *Ruleset) error

	// UpdateRuleset replaces an existing branch ruleset
	UpdateRuleset(ctx context.Context, id int64, rs *Ruleset) error

	// GetOwnerRepo returns the repository owner and name
	GetOwnerRepo() (owner, repo string)
}
