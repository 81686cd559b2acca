package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	relgateerrors "relgate.dev/relgate/internal/errors"
	"relgate.dev/relgate/testhelpers"
)

func TestHotfix_CreatesBranchFromTrunk(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	remote := repo.AddBareRemote(t)

	rctx := newTestContext(t, repo, testhelpers.NewMockGitHubClient())

	require.NoError(t, Hotfix(rctx, HotfixOptions{
		Description: "rollback cache",
		Ticket:      "CU-42",
	}))

	require.Equal(t, "hotfix/CU-42-rollback-cache", repo.CurrentBranch(t))
	require.True(t, testhelpers.RemoteHasBranch(t, remote, "hotfix/CU-42-rollback-cache"))
}

func TestHotfix_DefaultsToMiscTicket(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	repo.AddBareRemote(t)

	rctx := newTestContext(t, repo, testhelpers.NewMockGitHubClient())

	require.NoError(t, Hotfix(rctx, HotfixOptions{Description: "rollback cache"}))
	require.Equal(t, "hotfix/MISC-rollback-cache", repo.CurrentBranch(t))
}

func TestHotfix_BranchesFromTrunkNotCurrentBranch(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	repo.AddBareRemote(t)
	repo.CheckoutNewBranch(t, "feature/CU-1-other-work")
	repo.CommitFile(t, "other.txt", "other\n", "other work")

	rctx := newTestContext(t, repo, testhelpers.NewMockGitHubClient())

	require.NoError(t, Hotfix(rctx, HotfixOptions{
		Description: "fix null deref",
		Ticket:      "CU-9f2",
	}))

	// The hotfix sits on trunk's tip, the feature commit is not reachable
	cmd := repo.Git(t, "log", "--oneline")
	require.NotContains(t, cmd, "other work")
}

func TestHotfix_RejectsDirtyWorktree(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	repo.AddBareRemote(t)
	repo.WriteFile(t, "dirty.txt", "uncommitted\n")
	repo.Git(t, "add", "dirty.txt")

	rctx := newTestContext(t, repo, testhelpers.NewMockGitHubClient())

	err := Hotfix(rctx, HotfixOptions{Description: "rollback cache"})
	require.ErrorIs(t, err, relgateerrors.ErrDirtyWorktree)
}
