package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"relgate.dev/relgate/internal/config"
	"relgate.dev/relgate/internal/git"
	"relgate.dev/relgate/internal/github"
	"relgate.dev/relgate/internal/runtime"
	"relgate.dev/relgate/internal/tui"
	"relgate.dev/relgate/testhelpers"
)

// newTestContext builds a runtime context over a scratch repository with an
// initialized config and the given GitHub client.
func newTestContext(t *testing.T, repo *testhelpers.GitRepo, gh github.Client) *runtime.Context {
	t.Helper()

	cfg, err := config.LoadConfig(repo.Dir)
	require.NoError(t, err)
	cfg.SetTrunk("main")
	cfg.SetStaging("staging")
	require.NoError(t, cfg.Save())

	return &runtime.Context{
		Splog:    tui.NewSplog(),
		RepoRoot: repo.Dir,
		Config:   cfg,
		Git:      git.NewRunnerInDir(repo.Dir),
		GitHub:   gh,
	}
}
