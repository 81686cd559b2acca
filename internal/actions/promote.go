package actions

import (
	"context"
	"fmt"

	relgateerrors "relgate.dev/relgate/internal/errors"
	"relgate.dev/relgate/internal/github"
	"relgate.dev/relgate/internal/runtime"
	"relgate.dev/relgate/internal/tui"
)

// Promote merges the current branch's staging pull request, then makes sure
// the staging to trunk promotion PR is open. Tagging and staging sync after
// the trunk merge are handled by the release-train workflow, not locally.
func Promote(rctx *runtime.Context) error {
	ctx := context.Background()

	head, err := rctx.Git.CurrentBranch(ctx)
	if err != nil {
		return err
	}

	client, err := rctx.RequireGitHub(ctx)
	if err != nil {
		return err
	}

	pr, err := client.GetOpenPullRequestByHead(ctx, head)
	if err != nil {
		return err
	}
	if pr == nil {
		return fmt.Errorf("%w %s: run 'relgate ship' first", relgateerrors.ErrNoPullRequest, head)
	}

	staging := rctx.Config.GetStaging()
	if pr.Base != staging {
		return relgateerrors.NewWrongBaseError(pr.Number, pr.Base, staging)
	}

	if err := client.MergePullRequest(ctx, pr.Number, pr.Title); err != nil {
		return err
	}
	rctx.Splog.Info("Merged PR #%d into %s", pr.Number, tui.ColorBranchName(staging))

	return ensurePromotionPR(rctx, client)
}

// ensurePromotionPR opens the staging to trunk PR if it is not already open
func ensurePromotionPR(rctx *runtime.Context, client github.Client) error {
	ctx := context.Background()
	trunk := rctx.Config.GetTrunk()
	staging := rctx.Config.GetStaging()

	prs, err := client.ListOpenPullRequestsByBase(ctx, trunk)
	if err != nil {
		return err
	}
	for _, pr := range prs {
		if pr.Head == staging {
			rctx.Splog.Info("Promotion PR already open: %s", tui.ColorURL(pr.HTMLURL))
			return nil
		}
	}

	pr, err := client.CreatePullRequest(ctx, github.CreatePROptions{
		Title: fmt.Sprintf("Promote %s into %s", staging, trunk),
		Body:  "Automated promotion opened by relgate. Merging this PR releases everything currently on " + staging + ".",
		Head:  staging,
		Base:  trunk,
	})
	if err != nil {
		return fmt.Errorf("staging PR was merged but the promotion PR could not be opened: %w", err)
	}

	rctx.Splog.Info("Opened promotion PR %s", tui.ColorURL(pr.HTMLURL))
	return nil
}
