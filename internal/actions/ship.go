package actions

import (
	"context"
	"errors"
	"fmt"

	"relgate.dev/relgate/internal/branch"
	relgateerrors "relgate.dev/relgate/internal/errors"
	"relgate.dev/relgate/internal/github"
	"relgate.dev/relgate/internal/runtime"
	"relgate.dev/relgate/internal/tui"
)

// ShipOptions contains options for the ship action
type ShipOptions struct {
	// Bump is the semantic-version impact embedded in the PR title
	Bump branch.Bump
	// Description overrides the description derived from the branch name
	Description string
	// Override skips the open-staging-PR warning
	Override bool
}

// Ship pushes the current release or hotfix branch and opens its pull
// request against the staging branch, titled for the downstream release
// tooling: [<bump>] <commitType>(<ticket>): <description>.
func Ship(rctx *runtime.Context, opts ShipOptions) error {
	ctx := context.Background()

	d, err := currentDescriptor(rctx, opts.Description)
	if err != nil {
		return err
	}
	if d.Kind != branch.KindRelease && d.Kind != branch.KindHotfix {
		name, _ := rctx.Git.CurrentBranch(ctx)
		return relgateerrors.NewWrongKindError(name, "release or hotfix")
	}

	if err := requireCleanWorktree(rctx); err != nil {
		return err
	}

	client, err := rctx.RequireGitHub(ctx)
	if err != nil {
		return err
	}

	head, err := rctx.Git.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	staging := rctx.Config.GetStaging()

	if err := checkOpenStagingPRs(rctx, client, head, staging, opts.Override); err != nil {
		return err
	}

	if err := rctx.Git.Push(ctx, rctx.Config.GetRemote(), head); err != nil {
		return err
	}

	existing, err := client.GetOpenPullRequestByHead(ctx, head)
	if err != nil {
		return err
	}
	if existing != nil {
		rctx.Splog.Info("PR already open for %s: %s", tui.ColorBranchName(head), tui.ColorURL(existing.HTMLURL))
		return nil
	}

	title := branch.BuildPRTitle(opts.Bump, d.CommitType(), d.TicketID, d.Description)
	pr, err := client.CreatePullRequest(ctx, github.CreatePROptions{
		Title: title,
		Body:  fmt.Sprintf("Ticket: %s\n\nShipped with relgate from `%s`.", d.TicketID, head),
		Head:  head,
		Base:  staging,
	})
	if err != nil {
		return err
	}

	rctx.Splog.Info("Opened %s", tui.ColorSuccess(title))
	rctx.Splog.Info("%s", tui.ColorURL(pr.HTMLURL))
	return nil
}

// checkOpenStagingPRs warns when another branch already has an open PR
// against staging. The release train works best one change at a time, but
// the operator can wave the warning off.
func checkOpenStagingPRs(rctx *runtime.Context, client github.Client, head, staging string, override bool) error {
	prs, err := client.ListOpenPullRequestsByBase(context.Background(), staging)
	if err != nil {
		return err
	}

	var others []*github.PullRequestInfo
	for _, pr := range prs {
		if pr.Head != head {
			others = append(others, pr)
		}
	}
	if len(others) == 0 {
		return nil
	}

	for _, pr := range others {
		rctx.Splog.Warn("open staging PR #%d (%s) from %s", pr.Number, pr.Title, pr.Head)
	}

	if override {
		rctx.Splog.Info("Proceeding anyway (--override)")
		return nil
	}

	confirmed, err := tui.PromptConfirm("Another PR is already targeting staging. Ship anyway?", false)
	if err != nil {
		if errors.Is(err, tui.ErrInteractiveDisabled) {
			return fmt.Errorf("another PR is already targeting %s, re-run with --override to ship anyway", staging)
		}
		return err
	}
	if !confirmed {
		return fmt.Errorf("aborted")
	}
	return nil
}
