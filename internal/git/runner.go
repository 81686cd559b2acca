// Package git provides a wrapper around git commands and go-git for repository operations.
package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	relgateerrors "relgate.dev/relgate/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git and gh commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands in a working directory
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// defaultRunner is the global runner used by the package-level functions
var defaultRunner = &CommandRunner{}

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, "git", args...)
}

// RunGH executes a gh command with the given context and returns the trimmed output
func (r *CommandRunner) RunGH(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, "gh", args...)
}

func (r *CommandRunner) runInternal(ctx context.Context, command string, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, command, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", relgateerrors.NewGitCommandError(command, args, stdout.String(), stderr.String(), ctx.Err())
		}
		return "", relgateerrors.NewGitCommandError(command, args, stdout.String(), stderr.String(), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

// RunGHCommandWithContext executes a gh command with the given context.
func RunGHCommandWithContext(ctx context.Context, args ...string) (string, error) {
	return defaultRunner.RunGH(ctx, args...)
}
