package cli

import (
	"github.com/spf13/cobra"

	"relgate.dev/relgate/internal/actions"
	"relgate.dev/relgate/internal/runtime"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the environment is ready for relgate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rctx, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}
			defer rctx.Splog.Close()

			return actions.Doctor(rctx)
		},
	}
}
