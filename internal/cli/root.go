// Package cli wires the cobra command tree for relgate.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "relgate",
		Short: "Relgate keeps releases isolated on their way from feature to production",
		Long: `Relgate implements the release branch isolation workflow:
feature -> release -> staging -> main. It creates convention-named
branches, opens the staging and promotion pull requests, and configures
the GitHub rulesets that enforce the flow server side.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newReleaseCmd())
	rootCmd.AddCommand(newHotfixCmd())
	rootCmd.AddCommand(newShipCmd())
	rootCmd.AddCommand(newPromoteCmd())
	rootCmd.AddCommand(newRulesetsCmd())
	rootCmd.AddCommand(newDoctorCmd())

	return rootCmd
}
