package cli

import (
	"github.com/spf13/cobra"

	"relgate.dev/relgate/internal/actions"
	"relgate.dev/relgate/internal/runtime"
)

func newPromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote",
		Short: "Merge the staging pull request and open the promotion PR",
		Long: `Squash-merges the open staging pull request for the current branch,
then makes sure a promotion pull request from staging into the
production branch exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rctx, err := runtime.GetInitializedContext(cmd.Context())
			if err != nil {
				return err
			}
			defer rctx.Splog.Close()

			return actions.Promote(rctx)
		},
	}
}
