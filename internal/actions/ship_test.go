package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"relgate.dev/relgate/internal/branch"
	relgateerrors "relgate.dev/relgate/internal/errors"
	"relgate.dev/relgate/testhelpers"
)

func TestShip_OpensStagingPR(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	remote := repo.AddBareRemote(t)
	repo.CheckoutNewBranch(t, "release/CU-t1-my-work")
	repo.CommitFile(t, "work.txt", "work\n", "do the work")

	gh := testhelpers.NewMockGitHubClient()
	rctx := newTestContext(t, repo, gh)

	require.NoError(t, Ship(rctx, ShipOptions{Bump: branch.BumpMinor}))

	require.Len(t, gh.Created, 1)
	created := gh.Created[0]
	require.Equal(t, "[minor] feat(CU-t1): my work", created.Title)
	require.Equal(t, "staging", created.Base)
	require.Equal(t, "release/CU-t1-my-work", created.Head)
	require.True(t, testhelpers.RemoteHasBranch(t, remote, "release/CU-t1-my-work"))
}

func TestShip_HotfixUsesFixCommitType(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	repo.AddBareRemote(t)
	repo.CheckoutNewBranch(t, "hotfix/CU-9f2-fix-null-deref")

	gh := testhelpers.NewMockGitHubClient()
	rctx := newTestContext(t, repo, gh)

	require.NoError(t, Ship(rctx, ShipOptions{Bump: branch.BumpPatch}))

	require.Len(t, gh.Created, 1)
	require.Equal(t, "[patch] fix(CU-9f2): fix null deref", gh.Created[0].Title)
}

func TestShip_TicketlessReleaseBranchKeepsMiscOutOfDescription(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	repo.AddBareRemote(t)
	repo.CheckoutNewBranch(t, "feature/quick-cleanup")

	gh := testhelpers.NewMockGitHubClient()
	rctx := newTestContext(t, repo, gh)

	// The release action branded the branch with the MISC sentinel;
	// shipping it must not fold the sentinel into the description.
	require.NoError(t, Release(rctx, ReleaseOptions{}))
	require.Equal(t, "release/MISC-quick-cleanup", repo.CurrentBranch(t))

	require.NoError(t, Ship(rctx, ShipOptions{Bump: branch.BumpMinor}))

	require.Len(t, gh.Created, 1)
	require.Equal(t, "[minor] feat(MISC): quick cleanup", gh.Created[0].Title)
}

func TestShip_RejectsFeatureBranch(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	repo.CheckoutNewBranch(t, "feature/CU-t1-my-work")

	gh := testhelpers.NewMockGitHubClient()
	rctx := newTestContext(t, repo, gh)

	err := Ship(rctx, ShipOptions{Bump: branch.BumpMinor})
	require.ErrorIs(t, err, relgateerrors.ErrUnknownBranchKind)
	require.Empty(t, gh.Created)
}

func TestShip_WarnsOnOtherOpenStagingPR(t *testing.T) {
	t.Setenv("RELGATE_NO_INTERACTIVE", "1")

	repo := testhelpers.NewGitRepo(t)
	repo.AddBareRemote(t)
	repo.CheckoutNewBranch(t, "release/CU-t1-my-work")

	gh := testhelpers.NewMockGitHubClient()
	gh.AddOpenPR("release/CU-t9-other-change", "staging", "[minor] feat(CU-t9): other change")
	rctx := newTestContext(t, repo, gh)

	err := Ship(rctx, ShipOptions{Bump: branch.BumpMinor})
	require.Error(t, err)
	require.Contains(t, err.Error(), "--override")
	require.Empty(t, gh.Created)
}

func TestShip_OverrideSkipsStagingPRWarning(t *testing.T) {
	t.Setenv("RELGATE_NO_INTERACTIVE", "1")

	repo := testhelpers.NewGitRepo(t)
	repo.AddBareRemote(t)
	repo.CheckoutNewBranch(t, "release/CU-t1-my-work")

	gh := testhelpers.NewMockGitHubClient()
	gh.AddOpenPR("release/CU-t9-other-change", "staging", "[minor] feat(CU-t9): other change")
	rctx := newTestContext(t, repo, gh)

	require.NoError(t, Ship(rctx, ShipOptions{Bump: branch.BumpMinor, Override: true}))
	require.Len(t, gh.Created, 1)
}

func TestShip_ReusesExistingPR(t *testing.T) {
	repo := testhelpers.NewGitRepo(t)
	repo.AddBareRemote(t)
	repo.CheckoutNewBranch(t, "release/CU-t1-my-work")

	gh := testhelpers.NewMockGitHubClient()
	gh.AddOpenPR("release/CU-t1-my-work", "staging", "[minor] feat(CU-t1): my work")
	rctx := newTestContext(t, repo, gh)

	require.NoError(t, Ship(rctx, ShipOptions{Bump: branch.BumpMinor, Override: true}))
	require.Empty(t, gh.Created)
}
