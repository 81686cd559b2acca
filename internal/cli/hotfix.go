package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"relgate.dev/relgate/internal/actions"
	"relgate.dev/relgate/internal/runtime"
)

func newHotfixCmd() *cobra.Command {
	var ticket string

	cmd := &cobra.Command{
		Use:   "hotfix [description...]",
		Short: "Cut a hotfix branch from the production branch",
		Long: `Checks out the production branch, fast-forwards it and creates a
hotfix branch from its tip. Prompts for a description when none is
given on the command line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rctx, err := runtime.GetInitializedContext(cmd.Context())
			if err != nil {
				return err
			}
			defer rctx.Splog.Close()

			return actions.Hotfix(rctx, actions.HotfixOptions{
				Description: strings.Join(args, " "),
				Ticket:      ticket,
			})
		},
	}

	cmd.Flags().StringVarP(&ticket, "ticket", "t", "", "ticket ID for the hotfix (default \"MISC\")")

	return cmd
}
