// Package runtime provides the context type that holds the git runner,
// configuration and logger for use throughout the application.
package runtime

import (
	"context"
	"fmt"

	"relgate.dev/relgate/internal/config"
	"relgate.dev/relgate/internal/git"
	"relgate.dev/relgate/internal/github"
	"relgate.dev/relgate/internal/tui"
)

// Context provides access to the repository, config and output for commands
type Context struct {
	Splog    *tui.Splog
	RepoRoot string
	Config   *config.RepoConfig
	Git      git.Runner
	GitHub   github.Client
}

// GetContext discovers the repository and loads its configuration.
// The GitHub client is attached lazily by RequireGitHub, since most commands
// never touch the API.
func GetContext(ctx context.Context) (*Context, error) {
	repoRoot, err := git.GetRepoRoot()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(repoRoot)
	if err != nil {
		return nil, err
	}

	return &Context{
		Splog:    tui.NewSplog(),
		RepoRoot: repoRoot,
		Config:   cfg,
		Git:      git.NewRunnerInDir(repoRoot),
	}, nil
}

// GetInitializedContext is GetContext plus a check that relgate init has run
func GetInitializedContext(ctx context.Context) (*Context, error) {
	rctx, err := GetContext(ctx)
	if err != nil {
		return nil, err
	}
	if !rctx.Config.IsInitialized() {
		return nil, fmt.Errorf("relgate not initialized. Run 'relgate init' first")
	}
	return rctx, nil
}

// RequireGitHub ensures the context carries an authenticated GitHub client
func (c *Context) RequireGitHub(ctx context.Context) (github.Client, error) {
	if c.GitHub != nil {
		return c.GitHub, nil
	}

	client, err := github.NewRealClient(ctx, c.Git)
	if err != nil {
		return nil, err
	}
	c.GitHub = client
	return client, nil
}
