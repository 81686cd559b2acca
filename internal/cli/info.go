package cli

import (
	"github.com/spf13/cobra"

	"relgate.dev/relgate/internal/actions"
	"relgate.dev/relgate/internal/runtime"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show what relgate knows about the current branch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rctx, err := runtime.GetInitializedContext(cmd.Context())
			if err != nil {
				return err
			}
			defer rctx.Splog.Close()

			return actions.Info(rctx)
		},
	}
}
