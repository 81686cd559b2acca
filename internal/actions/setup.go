package actions

import (
	"relgate.dev/relgate/internal/config"
	"relgate.dev/relgate/internal/runtime"
	"relgate.dev/relgate/internal/tui"
)

// SetupOptions contains options for the setup action
type SetupOptions struct {
	Trunk        string
	Staging      string
	TicketPrefix string
	// SkipWorkflow skips installing the release-train GitHub Actions workflow
	SkipWorkflow bool
}

// Setup initializes relgate in the repository: writes the repo config and
// idempotently patches package.json scripts, .gitignore lock patterns and
// the release-train workflow. Re-running reports everything already present
// and changes nothing.
func Setup(rctx *runtime.Context, opts SetupOptions) error {
	cfg := rctx.Config

	if opts.Trunk != "" {
		cfg.SetTrunk(opts.Trunk)
	} else if !cfg.IsInitialized() {
		cfg.SetTrunk(config.DefaultTrunk)
	}
	if opts.Staging != "" {
		cfg.SetStaging(opts.Staging)
	}
	if opts.TicketPrefix != "" {
		cfg.SetTicketPrefix(opts.TicketPrefix)
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	rctx.Splog.Info("Config: trunk=%s staging=%s tickets=%s-*",
		tui.ColorBranchName(cfg.GetTrunk()),
		tui.ColorBranchName(cfg.GetStaging()),
		cfg.GetTicketPrefix())

	scripts, err := config.EnsurePackageScripts(rctx.RepoRoot)
	if err != nil {
		return err
	}
	reportPatch(rctx, "package.json scripts", scripts)

	ignores, err := config.EnsureGitignorePatterns(rctx.RepoRoot)
	if err != nil {
		return err
	}
	reportPatch(rctx, ".gitignore lock patterns", ignores)

	if !opts.SkipWorkflow {
		workflow, err := config.InstallWorkflow(rctx.RepoRoot)
		if err != nil {
			return err
		}
		reportPatch(rctx, "release-train workflow", workflow)
	}

	rctx.Splog.Info("relgate is ready")
	return nil
}

func reportPatch(rctx *runtime.Context, what string, result config.PatchResult) {
	for _, name := range result.Added {
		rctx.Splog.Info("  added %s: %s", what, name)
	}
	if !result.Changed() && len(result.Present) > 0 {
		rctx.Splog.Info("  %s already present", what)
	}
}
