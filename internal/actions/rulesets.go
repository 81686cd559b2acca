package actions

import (
	"context"

	"relgate.dev/relgate/internal/github"
	"relgate.dev/relgate/internal/runtime"
)

// Rulesets pushes the branch protection rulesets that enforce the workflow
// server side: trunk and staging only move through pull requests. Rulesets
// that already exist (matched by name) are updated in place, so re-running
// converges instead of duplicating.
func Rulesets(rctx *runtime.Context) error {
	ctx := context.Background()

	client, err := rctx.RequireGitHub(ctx)
	if err != nil {
		return err
	}

	existing, err := client.ListRulesets(ctx)
	if err != nil {
		return err
	}
	byName := make(map[string]*github.Ruleset, len(existing))
	for _, rs := range existing {
		byName[rs.Name] = rs
	}

	for _, rs := range github.DefaultRulesets(rctx.Config.GetTrunk(), rctx.Config.GetStaging()) {
		if current, ok := byName[rs.Name]; ok {
			if err := client.UpdateRuleset(ctx, current.ID, rs); err != nil {
				return err
			}
			rctx.Splog.Info("Updated ruleset %q", rs.Name)
			continue
		}
		if err := client.CreateRuleset(ctx, rs); err != nil {
			return err
		}
		rctx.Splog.Info("Created ruleset %q", rs.Name)
	}

	return nil
}
