package cli

import (
	"github.com/spf13/cobra"

	"relgate.dev/relgate/internal/actions"
	"relgate.dev/relgate/internal/runtime"
)

func newRulesetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rulesets",
		Short: "Create or update the GitHub rulesets protecting main and staging",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rctx, err := runtime.GetInitializedContext(cmd.Context())
			if err != nil {
				return err
			}
			defer rctx.Splog.Close()

			return actions.Rulesets(rctx)
		},
	}
}
