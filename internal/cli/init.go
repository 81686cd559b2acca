package cli

import (
	"github.com/spf13/cobra"

	"relgate.dev/relgate/internal/actions"
	"relgate.dev/relgate/internal/runtime"
)

func newInitCmd() *cobra.Command {
	var opts actions.SetupOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize relgate in the current repository",
		Long: `Writes the relgate configuration, adds the workflow scripts to
package.json, ignores package manager lock files and installs the
release train workflow. Safe to run more than once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rctx, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}
			defer rctx.Splog.Close()

			return actions.Setup(rctx, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Trunk, "trunk", "", "production branch name (default \"main\")")
	cmd.Flags().StringVar(&opts.Staging, "staging", "", "staging branch name (default \"staging\")")
	cmd.Flags().StringVar(&opts.TicketPrefix, "ticket-prefix", "", "ticket ID prefix (default \"CU\")")
	cmd.Flags().BoolVar(&opts.SkipWorkflow, "skip-workflow", false, "do not install the release train workflow file")

	return cmd
}
