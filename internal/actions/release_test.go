package actions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	relgateerrors "relgate.dev/relgate/internal/errors"
	"relgate.dev/relgate/testhelpers"
)

func TestRelease_CreatesAndPushesBranch(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	remote := repo.AddBareRemote(t)
	repo.CheckoutNewBranch(t, "feature/CU-t1-my-work")
	repo.CommitFile(t, "work.txt", "work\n", "do the work")

	rctx := newTestContext(t, repo, nil)
	require.NoError(t, Release(rctx, ReleaseOptions{}))

	require.Equal(t, "release/CU-t1-my-work", repo.CurrentBranch(t))
	require.True(t, testhelpers.RemoteHasBranch(t, remote, "release/CU-t1-my-work"))
}

func TestRelease_MissingTicketFallsBackToMisc(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	repo.AddBareRemote(t)
	repo.CheckoutNewBranch(t, "feature/quick-cleanup")

	rctx := newTestContext(t, repo, nil)
	require.NoError(t, Release(rctx, ReleaseOptions{}))

	require.Equal(t, "release/MISC-quick-cleanup", repo.CurrentBranch(t))
}

func TestRelease_DescriptionOverride(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	repo.AddBareRemote(t)
	repo.CheckoutNewBranch(t, "feature/CU-t2-internal-name")

	rctx := newTestContext(t, repo, nil)
	require.NoError(t, Release(rctx, ReleaseOptions{Description: "Customer Facing Name"}))

	require.Equal(t, "release/CU-t2-customer-facing-name", repo.CurrentBranch(t))
}

func TestRelease_RejectsNonFeatureBranch(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	repo.CheckoutNewBranch(t, "release/CU-t1-already-released")

	rctx := newTestContext(t, repo, nil)
	err := Release(rctx, ReleaseOptions{})
	require.Error(t, err)
	require.ErrorIs(t, err, relgateerrors.ErrUnknownBranchKind)
}

func TestRelease_RejectsTrunk(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)

	rctx := newTestContext(t, repo, nil)
	err := Release(rctx, ReleaseOptions{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "main")
}

func TestRelease_RejectsDirtyWorktree(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	repo.CheckoutNewBranch(t, "feature/CU-t1-my-work")
	repo.WriteFile(t, "README.md", "# dirty\n")

	rctx := newTestContext(t, repo, nil)
	err := Release(rctx, ReleaseOptions{})
	require.True(t, errors.Is(err, relgateerrors.ErrDirtyWorktree))
}

func TestRelease_RejectsExistingReleaseBranch(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	repo.CheckoutNewBranch(t, "release/CU-t1-my-work")
	repo.Checkout(t, "main")
	repo.CheckoutNewBranch(t, "feature/CU-t1-my-work")

	rctx := newTestContext(t, repo, nil)
	err := Release(rctx, ReleaseOptions{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}
