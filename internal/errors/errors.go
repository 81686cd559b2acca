// Package errors provides sentinel errors and custom error types for the relgate application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrMissingTicketID indicates that a branch name carries no ticket identifier
	ErrMissingTicketID = errors.New("missing ticket id")

	// ErrMissingDescription indicates that a branch name carries no description
	ErrMissingDescription = errors.New("missing description")

	// ErrUnknownBranchKind indicates that a branch name has no recognized kind prefix
	ErrUnknownBranchKind = errors.New("unknown branch kind")

	// ErrDirtyWorktree indicates uncommitted changes in the working tree
	ErrDirtyWorktree = errors.New("uncommitted changes in working tree")

	// ErrWrongBase indicates that a pull request targets an unexpected base branch
	ErrWrongBase = errors.New("pull request targets wrong base branch")

	// ErrNoPullRequest indicates that no pull request exists for a branch
	ErrNoPullRequest = errors.New("no pull request for branch")
)

// WrongKindError represents an operation invoked from a branch of the wrong kind
type WrongKindError struct {
	BranchName string
	Wanted     string
}

func (e *WrongKindError) Error() string {
	return fmt.Sprintf("branch %s is not a %s branch", e.BranchName, e.Wanted)
}

// Is returns true if the target error is ErrUnknownBranchKind
func (e *WrongKindError) Is(target error) bool {
	return target == ErrUnknownBranchKind
}

// NewWrongKindError creates a new WrongKindError
func NewWrongKindError(branchName, wanted string) *WrongKindError {
	return &WrongKindError{BranchName: branchName, Wanted: wanted}
}

// WrongBaseError represents a pull request whose base branch is not the expected one
type WrongBaseError struct {
	PRNumber int
	Actual   string
	Expected string
}

func (e *WrongBaseError) Error() string {
	return fmt.Sprintf("PR #%d targets %s, expected %s", e.PRNumber, e.Actual, e.Expected)
}

// Is returns true if the target error is ErrWrongBase
func (e *WrongBaseError) Is(target error) bool {
	return target == ErrWrongBase
}

// NewWrongBaseError creates a new WrongBaseError
func NewWrongBaseError(prNumber int, actual, expected string) *WrongBaseError {
	return &WrongBaseError{PRNumber: prNumber, Actual: actual, Expected: expected}
}

// GitCommandError represents an error from a git or gh command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("%s command failed", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
