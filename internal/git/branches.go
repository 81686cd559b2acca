package git

import (
	"context"
	"errors"
	"strings"

	relgateerrors "relgate.dev/relgate/internal/errors"
)

// currentBranch returns the name of the currently checked out branch.
// The branch name is the sole input of the descriptor parser, so this reads
// the symbolic ref directly rather than going through go-git.
func currentBranch(ctx context.Context, runner *CommandRunner) (string, error) {
	name, err := runner.Run(ctx, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		// Detached HEAD has no symbolic ref
		return "", relgateerrors.ErrNotOnBranch
	}
	return name, nil
}

// branchExists reports whether a local branch exists
func branchExists(ctx context.Context, runner *CommandRunner, name string) (bool, error) {
	_, err := runner.Run(ctx, "rev-parse", "--verify", "--quiet", "refs/heads/"+name)
	if err != nil {
		var cmdErr *relgateerrors.GitCommandError
		if errors.As(err, &cmdErr) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// hasUncommittedChanges reports whether the working tree or index is dirty
func hasUncommittedChanges(ctx context.Context, runner *CommandRunner) (bool, error) {
	output, err := runner.Run(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(output) != "", nil
}

// Runner defines the interface for git operations used by the actions.
// This allows actions to run against both real git and mock implementations.
type Runner interface {
	CurrentBranch(ctx context.Context) (string, error)
	BranchExists(ctx context.Context, name string) (bool, error)
	CreateAndCheckoutBranch(ctx context.Context, name, from string) error
	CheckoutBranch(ctx context.Context, name string) error
	Pull(ctx context.Context, remote, name string) error
	Push(ctx context.Context, remote, name string) error
	Fetch(ctx context.Context, remote string) error
	HasUncommittedChanges(ctx context.Context) (bool, error)
	RemoteURL(ctx context.Context) (string, error)
	Run(ctx context.Context, args ...string) (string, error)
	WorkingDir() string
}

// NewRunnerInDir returns a Runner that executes git in a specific directory
func NewRunnerInDir(dir string) Runner {
	return &realRunner{runner: NewCommandRunner(dir)}
}

// realRunner implements Runner on top of CommandRunner
type realRunner struct {
	runner *CommandRunner
}

func (r *realRunner) CurrentBranch(ctx context.Context) (string, error) {
	return currentBranch(ctx, r.runner)
}

func (r *realRunner) BranchExists(ctx context.Context, name string) (bool, error) {
	return branchExists(ctx, r.runner, name)
}

func (r *realRunner) CreateAndCheckoutBranch(ctx context.Context, name, from string) error {
	args := []string{"checkout", "-b", name}
	if from != "" {
		args = append(args, from)
	}
	_, err := r.runner.Run(ctx, args...)
	return err
}

func (r *realRunner) CheckoutBranch(ctx context.Context, name string) error {
	_, err := r.runner.Run(ctx, "checkout", name)
	return err
}

func (r *realRunner) Pull(ctx context.Context, remote, name string) error {
	_, err := r.runner.Run(ctx, "pull", "--ff-only", remote, name)
	return err
}

func (r *realRunner) Push(ctx context.Context, remote, name string) error {
	_, err := r.runner.Run(ctx, "push", "--set-upstream", remote, name)
	return err
}

func (r *realRunner) Fetch(ctx context.Context, remote string) error {
	_, err := r.runner.Run(ctx, "fetch", remote)
	return err
}

func (r *realRunner) HasUncommittedChanges(ctx context.Context) (bool, error) {
	return hasUncommittedChanges(ctx, r.runner)
}

func (r *realRunner) RemoteURL(ctx context.Context) (string, error) {
	return r.runner.Run(ctx, "config", "--get", "remote.origin.url")
}

func (r *realRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runner.Run(ctx, args...)
}

func (r *realRunner) WorkingDir() string {
	return r.runner.workingDir
}
