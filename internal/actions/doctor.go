package actions

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"relgate.dev/relgate/internal/branch"
	relgateerrors "relgate.dev/relgate/internal/errors"
	"relgate.dev/relgate/internal/github"
	"relgate.dev/relgate/internal/runtime"
)

// Doctor runs environment and repository diagnostics. Warnings let the
// command succeed; errors make it fail.
func Doctor(rctx *runtime.Context) error {
	ctx := context.Background()
	splog := rctx.Splog

	var warnings, fatals []string

	splog.Info("Environment:")

	if out, err := exec.Command("git", "version").Output(); err != nil {
		fatals = append(fatals, "git is not installed or not in PATH")
		splog.Error("  git is not installed or not in PATH")
	} else {
		splog.Info("  ✅ %s", strings.TrimSpace(string(out)))
	}

	if out, err := exec.Command("gh", "version").Output(); err != nil {
		warnings = append(warnings, "GitHub CLI (gh) is not installed or not in PATH")
		splog.Warn("  GitHub CLI (gh) is not installed or not in PATH")
	} else {
		fields := strings.Fields(strings.TrimSpace(string(out)))
		if len(fields) >= 3 {
			splog.Info("  ✅ gh %s", fields[2])
		} else {
			splog.Info("  ✅ gh")
		}
	}

	if _, err := github.GetToken(ctx); err != nil {
		warnings = append(warnings, "GitHub authentication not configured (GITHUB_TOKEN env var or gh auth token)")
		splog.Warn("  GitHub authentication not configured")
	} else {
		splog.Info("  ✅ GitHub token available")
	}

	splog.Newline()
	splog.Info("Repository:")

	if !rctx.Config.IsInitialized() {
		warnings = append(warnings, "relgate not initialized, run 'relgate init'")
		splog.Warn("  relgate not initialized, run 'relgate init'")
	} else {
		splog.Info("  ✅ config: trunk=%s staging=%s", rctx.Config.GetTrunk(), rctx.Config.GetStaging())
	}

	for _, name := range []string{rctx.Config.GetTrunk(), rctx.Config.GetStaging()} {
		exists, err := rctx.Git.BranchExists(ctx, name)
		if err != nil {
			fatals = append(fatals, fmt.Sprintf("failed to check branch %s: %v", name, err))
			splog.Error("  failed to check branch %s: %v", name, err)
			continue
		}
		if !exists {
			warnings = append(warnings, fmt.Sprintf("branch %s does not exist locally", name))
			splog.Warn("  branch %s does not exist locally", name)
		} else {
			splog.Info("  ✅ branch %s exists", name)
		}
	}

	if name, err := rctx.Git.CurrentBranch(ctx); err != nil {
		warnings = append(warnings, "HEAD is detached")
		splog.Warn("  HEAD is detached")
	} else if name != rctx.Config.GetTrunk() && name != rctx.Config.GetStaging() {
		_, err := branch.ParseWithPrefix(name, rctx.Config.GetTicketPrefix())
		if err != nil && !errors.Is(err, relgateerrors.ErrMissingTicketID) {
			warnings = append(warnings, fmt.Sprintf("current branch %s does not follow the naming convention", name))
			splog.Warn("  current branch %s does not follow the naming convention", name)
		} else {
			splog.Info("  ✅ current branch %s parses", name)
		}
	}

	splog.Newline()
	if len(fatals) > 0 {
		return fmt.Errorf("doctor found %d problem(s)", len(fatals))
	}
	if len(warnings) > 0 {
		splog.Warn("%d warning(s)", len(warnings))
	} else {
		splog.Info("Everything looks good")
	}
	return nil
}
