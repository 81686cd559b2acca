package testhelpers

import (
	"context"
	"fmt"

	"relgate.dev/relgate/internal/github"
)

// MockGitHubClient implements github.Client against in-memory state
type MockGitHubClient struct {
	Owner string
	Repo  string

	PullRequests []*github.PullRequestInfo
	Rulesets     []*github.Ruleset

	Created []github.CreatePROptions
	Merged  []int

	nextNumber int
}

var _ github.Client = (*MockGitHubClient)(nil)

// NewMockGitHubClient creates an empty mock client
func NewMockGitHubClient() *MockGitHubClient {
	return &MockGitHubClient{Owner: "acme", Repo: "widget", nextNumber: 100}
}

// AddOpenPR seeds an open pull request
func (m *MockGitHubClient) AddOpenPR(head, base, title string) *github.PullRequestInfo {
	m.nextNumber++
	pr := &github.PullRequestInfo{
		Number:  m.nextNumber,
		HTMLURL: fmt.Sprintf("https://github.com/%s/%s/pull/%d", m.Owner, m.Repo, m.nextNumber),
		Title:   title,
		State:   "open",
		Base:    base,
		Head:    head,
	}
	m.PullRequests = append(m.PullRequests, pr)
	return pr
}

func (m *MockGitHubClient) CreatePullRequest(_ context.Context, opts github.CreatePROptions) (*github.PullRequestInfo, error) {
	m.Created = append(m.Created, opts)
	return m.AddOpenPR(opts.Head, opts.Base, opts.Title), nil
}

func (m *MockGitHubClient) GetOpenPullRequestByHead(_ context.Context, branchName string) (*github.PullRequestInfo, error) {
	for _, pr := range m.PullRequests {
		if pr.Head == branchName && pr.State == "open" {
			return pr, nil
		}
	}
	return nil, nil
}

func (m *MockGitHubClient) ListOpenPullRequestsByBase(_ context.Context, base string) ([]*github.PullRequestInfo, error) {
	var prs []*github.PullRequestInfo
	for _, pr := range m.PullRequests {
		if pr.Base == base && pr.State == "open" {
			prs = append(prs, pr)
		}
	}
	return prs, nil
}

func (m *MockGitHubClient) MergePullRequest(_ context.Context, number int, _ string) error {
	for _, pr := range m.PullRequests {
		if pr.Number == number {
			if pr.State != "open" {
				return fmt.Errorf("PR #%d is not open", number)
			}
			pr.State = "merged"
			m.Merged = append(m.Merged, number)
			return nil
		}
	}
	return fmt.Errorf("PR #%d not found", number)
}

func (m *MockGitHubClient) ListRulesets(_ context.Context) ([]*github.Ruleset, error) {
	return m.Rulesets, nil
}

func (m *MockGitHubClient) CreateRuleset(_ context.Context, rs *github.Ruleset) error {
	created := *rs
	created.ID = int64(len(m.Rulesets) + 1)
	m.Rulesets = append(m.Rulesets, &created)
	return nil
}

func (m *MockGitHubClient) UpdateRuleset(_ context.Context, id int64, rs *github.Ruleset) error {
	for i, existing := range m.Rulesets {
		if existing.ID == id {
			updated := *rs
			updated.ID = id
			m.Rulesets[i] = &updated
			return nil
		}
	}
	return fmt.Errorf("ruleset %d not found", id)
}

func (m *MockGitHubClient) GetOwnerRepo() (string, string) {
	return m.Owner, m.Repo
}
