package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"relgate.dev/relgate/internal/actions"
	"relgate.dev/relgate/internal/branch"
	"relgate.dev/relgate/internal/runtime"
	"relgate.dev/relgate/internal/tui"
)

func newShipCmd() *cobra.Command {
	var override bool

	cmd := &cobra.Command{
		Use:   "ship [major|minor|patch] [description...]",
		Short: "Open the staging pull request for the current release or hotfix branch",
		Long: `Pushes the current release or hotfix branch and opens a pull request
against the staging branch. The title encodes the version bump, commit
type and ticket ID so the downstream release tooling can act on the
merge. Prompts for the bump when it is not given on the command line.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bump, err := resolveBump(args)
			if err != nil {
				return err
			}

			rctx, err := runtime.GetInitializedContext(cmd.Context())
			if err != nil {
				return err
			}
			defer rctx.Splog.Close()

			description := ""
			if len(args) > 1 {
				description = strings.Join(args[1:], " ")
			}

			return actions.Ship(rctx, actions.ShipOptions{
				Bump:        bump,
				Description: description,
				Override:    override,
			})
		},
	}

	cmd.Flags().BoolVarP(&override, "override", "o", false, "ship even when another PR already targets staging")

	return cmd
}

// resolveBump parses the bump argument, prompting for one when it is absent
func resolveBump(args []string) (branch.Bump, error) {
	if len(args) > 0 {
		return branch.ParseBump(args[0])
	}

	choice, err := tui.PromptSelect("Version bump for this release?", []string{
		string(branch.BumpMajor),
		string(branch.BumpMinor),
		string(branch.BumpPatch),
	})
	if err != nil {
		if errors.Is(err, tui.ErrInteractiveDisabled) {
			return "", fmt.Errorf("a version bump is required: ship <major|minor|patch>")
		}
		return "", err
	}
	return branch.ParseBump(choice)
}
