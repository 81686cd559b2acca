package actions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"relgate.dev/relgate/internal/config"
	"relgate.dev/relgate/internal/git"
	"relgate.dev/relgate/internal/runtime"
	"relgate.dev/relgate/internal/tui"
	"relgate.dev/relgate/testhelpers"
)

func newUninitializedContext(t *testing.T, repo *testhelpers.GitRepo) *runtime.Context {
	t.Helper()

	cfg, err := config.LoadConfig(repo.Dir)
	require.NoError(t, err)

	return &runtime.Context{
		Splog:    tui.NewSplog(),
		RepoRoot: repo.Dir,
		Config:   cfg,
		Git:      git.NewRunnerInDir(repo.Dir),
	}
}

func TestSetup_InitializesRepository(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	repo.WriteFile(t, "package.json", `{"name":"widget","scripts":{"test":"vitest"}}`)

	rctx := newUninitializedContext(t, repo)
	require.NoError(t, Setup(rctx, SetupOptions{}))

	cfg, err := config.LoadConfig(repo.Dir)
	require.NoError(t, err)
	require.True(t, cfg.IsInitialized())
	require.Equal(t, "main", cfg.GetTrunk())

	data, err := os.ReadFile(filepath.Join(repo.Dir, "package.json"))
	require.NoError(t, err)
	require.Contains(t, string(data), "relgate ship")

	ignore, err := os.ReadFile(filepath.Join(repo.Dir, ".gitignore"))
	require.NoError(t, err)
	require.Contains(t, string(ignore), "pnpm-lock.yaml")

	_, err = os.Stat(filepath.Join(repo.Dir, config.WorkflowPath))
	require.NoError(t, err)
}

func TestSetup_Idempotent(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	repo.WriteFile(t, "package.json", `{"scripts":{}}`)

	rctx := newUninitializedContext(t, repo)
	require.NoError(t, Setup(rctx, SetupOptions{}))

	pkgAfterFirst, err := os.ReadFile(filepath.Join(repo.Dir, "package.json"))
	require.NoError(t, err)
	ignoreAfterFirst, err := os.ReadFile(filepath.Join(repo.Dir, ".gitignore"))
	require.NoError(t, err)

	// Second run adds nothing
	rctx2 := newUninitializedContext(t, repo)
	require.NoError(t, Setup(rctx2, SetupOptions{}))

	pkgAfterSecond, err := os.ReadFile(filepath.Join(repo.Dir, "package.json"))
	require.NoError(t, err)
	ignoreAfterSecond, err := os.ReadFile(filepath.Join(repo.Dir, ".gitignore"))
	require.NoError(t, err)

	require.Equal(t, string(pkgAfterFirst), string(pkgAfterSecond))
	require.Equal(t, string(ignoreAfterFirst), string(ignoreAfterSecond))
}

func TestSetup_CustomBranchNames(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)

	rctx := newUninitializedContext(t, repo)
	require.NoError(t, Setup(rctx, SetupOptions{
		Trunk:        "master",
		Staging:      "preprod",
		TicketPrefix: "JIRA",
		SkipWorkflow: true,
	}))

	cfg, err := config.LoadConfig(repo.Dir)
	require.NoError(t, err)
	require.Equal(t, "master", cfg.GetTrunk())
	require.Equal(t, "preprod", cfg.GetStaging())
	require.Equal(t, "JIRA", cfg.GetTicketPrefix())

	_, err = os.Stat(filepath.Join(repo.Dir, config.WorkflowPath))
	require.True(t, os.IsNotExist(err))
}

func TestRulesets_CreatesThenUpdates(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)

	gh := testhelpers.NewMockGitHubClient()
	rctx := newTestContext(t, repo, gh)

	require.NoError(t, Rulesets(rctx))
	require.Len(t, gh.Rulesets, 2)

	// Re-running converges instead of duplicating
	require.NoError(t, Rulesets(rctx))
	require.Len(t, gh.Rulesets, 2)
}
