package actions

import (
	"context"

	"relgate.dev/relgate/internal/runtime"
	"relgate.dev/relgate/internal/tui"
)

// Info prints the descriptor parsed from the current branch
func Info(rctx *runtime.Context) error {
	name, err := rctx.Git.CurrentBranch(context.Background())
	if err != nil {
		return err
	}

	d, err := describeBranch(rctx, name, "")
	if err != nil {
		return err
	}

	rctx.Splog.Info("Branch:      %s", tui.ColorBranchName(name))
	rctx.Splog.Info("Kind:        %s", d.Kind)
	rctx.Splog.Info("Ticket:      %s", tui.ColorTicket(d.TicketID))
	rctx.Splog.Info("Description: %s", d.Description)
	rctx.Splog.Info("Commit type: %s", d.CommitType())
	return nil
}
