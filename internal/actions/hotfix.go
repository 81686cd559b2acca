package actions

import (
	"context"
	"fmt"

	"relgate.dev/relgate/internal/branch"
	"relgate.dev/relgate/internal/runtime"
	"relgate.dev/relgate/internal/tui"
)

// HotfixOptions contains options for the hotfix action
type HotfixOptions struct {
	// Description is the human-readable description of the fix
	Description string
	// Ticket optionally ties the hotfix to a tracked work item
	Ticket string
}

// Hotfix creates a hotfix branch from the up-to-date trunk and pushes it.
// Hotfixes bypass the feature flow, so the ticket defaults to the MISC
// sentinel when none is given.
func Hotfix(rctx *runtime.Context, opts HotfixOptions) error {
	ctx := context.Background()

	description := opts.Description
	if description == "" {
		entered, err := tui.PromptTextInput("Describe the hotfix", "rollback cache for anonymous users")
		if err != nil {
			return fmt.Errorf("a description is required: %w", err)
		}
		description = entered
	}
	if branch.Slug(description) == "" {
		return fmt.Errorf("description %q contains no usable words", description)
	}

	ticket := opts.Ticket
	if ticket == "" {
		rctx.Splog.Warn("no ticket id given, using %s", branch.MiscTicket)
		ticket = branch.MiscTicket
	}

	if err := requireCleanWorktree(rctx); err != nil {
		return err
	}

	trunk := rctx.Config.GetTrunk()
	remote := rctx.Config.GetRemote()

	if err := rctx.Git.Fetch(ctx, remote); err != nil {
		return fmt.Errorf("failed to fetch %s: %w", remote, err)
	}
	if err := rctx.Git.CheckoutBranch(ctx, trunk); err != nil {
		return err
	}
	if err := rctx.Git.Pull(ctx, remote, trunk); err != nil {
		return fmt.Errorf("failed to update %s before branching: %w", trunk, err)
	}

	hotfix := branch.Descriptor{
		Kind:        branch.KindHotfix,
		TicketID:    ticket,
		Description: description,
	}
	name := hotfix.BranchName()

	exists, err := rctx.Git.BranchExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("hotfix branch %s already exists", name)
	}

	if err := rctx.Git.CreateAndCheckoutBranch(ctx, name, trunk); err != nil {
		return err
	}

	if err := rctx.Git.Push(ctx, remote, name); err != nil {
		return fmt.Errorf("hotfix branch %s was created locally but could not be pushed: %w", name, err)
	}

	rctx.Splog.Info("Created hotfix branch %s from %s", tui.ColorBranchName(name), trunk)
	rctx.Splog.Tip("Commit the fix, then run 'relgate ship patch' to open the staging PR")
	return nil
}
