package actions

import (
	"context"
	"fmt"

	"relgate.dev/relgate/internal/branch"
	relgateerrors "relgate.dev/relgate/internal/errors"
	"relgate.dev/relgate/internal/runtime"
	"relgate.dev/relgate/internal/tui"
)

// ReleaseOptions contains options for the release action
type ReleaseOptions struct {
	// Description overrides the description derived from the branch name
	Description string
}

// Release creates a release branch from the current feature branch and
// pushes it to the remote. The release branch carries the feature's ticket
// id and description: release/<ticket>-<slug>.
func Release(rctx *runtime.Context, opts ReleaseOptions) error {
	ctx := context.Background()

	d, err := currentDescriptor(rctx, opts.Description)
	if err != nil {
		return err
	}
	if d.Kind != branch.KindFeature {
		return relgateerrors.NewWrongKindError(d.BranchName(), string(branch.KindFeature))
	}

	if err := requireCleanWorktree(rctx); err != nil {
		return err
	}

	release := branch.Descriptor{
		Kind:        branch.KindRelease,
		TicketID:    d.TicketID,
		Description: d.Description,
	}
	name := release.BranchName()

	exists, err := rctx.Git.BranchExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("release branch %s already exists, delete it or pick another description", name)
	}

	if err := rctx.Git.CreateAndCheckoutBranch(ctx, name, ""); err != nil {
		return err
	}

	if err := rctx.Git.Push(ctx, rctx.Config.GetRemote(), name); err != nil {
		return fmt.Errorf("release branch %s was created locally but could not be pushed: %w", name, err)
	}

	rctx.Splog.Info("Created release branch %s", tui.ColorBranchName(name))
	rctx.Splog.Tip("Run 'relgate ship <major|minor|patch>' to open the staging PR")
	return nil
}
