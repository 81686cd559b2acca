package actions

import (
	"context"
	"errors"
	"fmt"

	"relgate.dev/relgate/internal/branch"
	relgateerrors "relgate.dev/relgate/internal/errors"
	"relgate.dev/relgate/internal/runtime"
)

// currentDescriptor parses the current branch into a Descriptor, applying the
// workflow's ticket policy: a missing ticket id falls back to the MISC
// sentinel with a warning, a missing description stays an error unless the
// caller supplies an override.
func currentDescriptor(rctx *runtime.Context, descriptionOverride string) (branch.Descriptor, error) {
	name, err := rctx.Git.CurrentBranch(context.Background())
	if err != nil {
		return branch.Descriptor{}, err
	}
	return describeBranch(rctx, name, descriptionOverride)
}

func describeBranch(rctx *runtime.Context, name, descriptionOverride string) (branch.Descriptor, error) {
	if name == rctx.Config.GetTrunk() || name == rctx.Config.GetStaging() {
		return branch.Descriptor{}, fmt.Errorf("%s is not a workflow branch, switch to a feature, release or hotfix branch", name)
	}

	d, err := branch.ParseWithPrefix(name, rctx.Config.GetTicketPrefix())
	switch {
	case err == nil:
	case errors.Is(err, relgateerrors.ErrMissingTicketID):
		rctx.Splog.Warn("branch %s has no ticket id, using %s", name, branch.MiscTicket)
		d.TicketID = branch.MiscTicket
	case errors.Is(err, relgateerrors.ErrMissingDescription):
		if descriptionOverride == "" {
			return branch.Descriptor{}, fmt.Errorf("branch %s has no description: %w (pass an explicit description to override)", name, err)
		}
		if d.TicketID == "" {
			rctx.Splog.Warn("branch %s has no ticket id, using %s", name, branch.MiscTicket)
			d.TicketID = branch.MiscTicket
		}
	default:
		return branch.Descriptor{}, err
	}

	if descriptionOverride != "" {
		d.Description = descriptionOverride
	}
	return d, nil
}

// requireCleanWorktree fails when the working tree has uncommitted changes
func requireCleanWorktree(rctx *runtime.Context) error {
	dirty, err := rctx.Git.HasUncommittedChanges(context.Background())
	if err != nil {
		return err
	}
	if dirty {
		return fmt.Errorf("%w: commit or stash them first", relgateerrors.ErrDirtyWorktree)
	}
	return nil
}
