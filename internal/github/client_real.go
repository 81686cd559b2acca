package github

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"relgate.dev/relgate/internal/git"
)

// RealClient implements Client against the GitHub REST API
type RealClient struct {
	client *github.Client
	owner  string
	repo   string
}

// NewRealClient creates a GitHub client for the repository the given runner
// points at. The token comes from GITHUB_TOKEN, falling back to the gh CLI.
func NewRealClient(ctx context.Context, runner git.Runner) (*RealClient, error) {
	token, err := GetToken(ctx)
	if err != nil {
		return nil, err
	}

	remoteURL, err := runner.RemoteURL(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get remote URL: %w", err)
	}

	info, err := ParseGitHubRemoteURL(remoteURL)
	if err != nil {
		return nil, err
	}

	client, err := newAPIClient(ctx, info.Hostname, token)
	if err != nil {
		return nil, err
	}

	return &RealClient{
		client: client,
		owner:  info.Owner,
		repo:   info.Repo,
	}, nil
}

// GetToken returns the GitHub token from the environment, falling back to
// the gh CLI's stored credentials.
func GetToken(ctx context.Context) (string, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}

	output, err := git.RunGHCommandWithContext(ctx, "auth", "token")
	if err != nil {
		return "", fmt.Errorf("GitHub authentication not configured (set GITHUB_TOKEN or run 'gh auth login'): %w", err)
	}

	token := strings.TrimSpace(output)
	if token == "" {
		return "", fmt.Errorf("empty GitHub token")
	}
	return token, nil
}

// newAPIClient creates a go-github client configured for the given hostname.
// Supports both github.com and GitHub Enterprise instances.
func newAPIClient(ctx context.Context, hostname, token string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if hostname != "github.com" {
		// GitHub Enterprise API endpoints
		// REST API: https://hostname/api/v3/
		// Upload API: https://hostname/api/uploads/
		baseURL, err := url.Parse(fmt.Sprintf("https://%s/api/v3/", hostname))
		if err != nil {
			return nil, fmt.Errorf("invalid enterprise base URL: %w", err)
		}
		uploadURL, err := url.Parse(fmt.Sprintf("https://%s/api/uploads/", hostname))
		if err != nil {
			return nil, fmt.Errorf("invalid enterprise upload URL: %w", err)
		}
		client.BaseURL = baseURL
		client.UploadURL = uploadURL
	}

	return client, nil
}

// GetOwnerRepo returns the repository owner and name
func (c *RealClient) GetOwnerRepo() (string, string) {
	return c.owner, c.repo
}

// CreatePullRequest creates a new pull request
func (c *RealClient) CreatePullRequest(ctx context.Context, opts CreatePROptions) (*PullRequestInfo, error) {
	pr := &github.NewPullRequest{
		Title: github.String(opts.Title),
		Head:  github.String(opts.Head),
		Base:  github.String(opts.Base),
		Draft: github.Bool(opts.Draft),
	}
	if opts.Body != "" {
		pr.Body = github.String(opts.Body)
	}

	created, _, err := c.client.PullRequests.Create(ctx, c.owner, c.repo, pr)
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}

	return toPullRequestInfo(created), nil
}

// GetOpenPullRequestByHead gets the open pull request whose head is the given branch
func (c *RealClient) GetOpenPullRequestByHead(ctx context.Context, branchName string) (*PullRequestInfo, error) {
	prs, _, err := c.client.PullRequests.List(ctx, c.owner, c.repo, &github.PullRequestListOptions{
		Head:  fmt.Sprintf("%s:%s", c.owner, branchName),
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}
	if len(prs) == 0 {
		return nil, nil
	}
	return toPullRequestInfo(prs[0]), nil
}

// ListOpenPullRequestsByBase lists open pull requests targeting the given base branch
func (c *RealClient) ListOpenPullRequestsByBase(ctx context.Context, base string) ([]*PullRequestInfo, error) {
	prs, _, err := c.client.PullRequests.List(ctx, c.owner, c.repo, &github.PullRequestListOptions{
		Base:  base,
		State: "open",
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}

	infos := make([]*PullRequestInfo, 0, len(prs))
	for _, pr := range prs {
		infos = append(infos, toPullRequestInfo(pr))
	}
	return infos, nil
}

// MergePullRequest squash-merges a pull request using the given commit title
func (c *RealClient) MergePullRequest(ctx context.Context, number int, commitTitle string) error {
	result, _, err := c.client.PullRequests.Merge(ctx, c.owner, c.repo, number, "", &github.PullRequestOptions{
		CommitTitle: commitTitle,
		MergeMethod: "squash",
	})
	if err != nil {
		return fmt.Errorf("failed to merge PR #%d: %w", number, err)
	}
	if result.Merged != nil && !*result.Merged {
		msg := "unknown reason"
		if result.Message != nil {
			msg = *result.Message
		}
		return fmt.Errorf("PR #%d was not merged: %s", number, msg)
	}
	return nil
}

func toPullRequestInfo(pr *github.PullRequest) *PullRequestInfo {
	info := &PullRequestInfo{}
	if pr.Number != nil {
		info.Number = *pr.Number
	}
	if pr.HTMLURL != nil {
		info.HTMLURL = *pr.HTMLURL
	}
	if pr.Title != nil {
		info.Title = *pr.Title
	}
	if pr.State != nil {
		info.State = *pr.State
	}
	if pr.Base != nil && pr.Base.Ref != nil {
		info.Base = *pr.Base.Ref
	}
	if pr.Head != nil && pr.Head.Ref != nil {
		info.Head = *pr.Head.Ref
	}
	return info
}
