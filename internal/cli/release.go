package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"relgate.dev/relgate/internal/actions"
	"relgate.dev/relgate/internal/runtime"
)

func newReleaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "release [description...]",
		Short: "Cut a release branch from the current feature branch",
		Long: `Creates and pushes a release branch that carries the ticket ID of
the current feature branch. An optional description overrides the one
derived from the branch name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rctx, err := runtime.GetInitializedContext(cmd.Context())
			if err != nil {
				return err
			}
			defer rctx.Splog.Close()

			return actions.Release(rctx, actions.ReleaseOptions{
				Description: strings.Join(args, " "),
			})
		},
	}
}
