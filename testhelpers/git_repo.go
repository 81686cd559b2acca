// Package testhelpers provides fixtures for tests that drive real git
// repositories and a mock GitHub client.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// GitRepo represents a scratch Git repository for testing purposes
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository with an initial commit on main
func NewGitRepo(t *testing.T) *GitRepo {
	t.Helper()

	dir := t.TempDir()
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to init repo: %v", err)
	}

	repo := &GitRepo{Dir: dir}
	repo.Git(t, "config", "user.name", "Test User")
	repo.Git(t, "config", "user.email", "test@example.com")
	repo.CommitFile(t, "README.md", "# test\n", "initial commit")
	return repo
}

// Git runs a git command in the repository and fails the test on error
func (r *GitRepo) Git(t *testing.T, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return string(out)
}

// CommitFile writes a file and commits it
func (r *GitRepo) CommitFile(t *testing.T, name, content, message string) {
	t.Helper()

	path := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	r.Git(t, "add", name)
	r.Git(t, "commit", "-m", message)
}

// WriteFile writes a file without committing it, leaving the worktree dirty
func (r *GitRepo) WriteFile(t *testing.T, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(r.Dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

// CheckoutNewBranch creates and checks out a branch
func (r *GitRepo) CheckoutNewBranch(t *testing.T, name string) {
	t.Helper()
	r.Git(t, "checkout", "-b", name)
}

// Checkout checks out an existing branch
func (r *GitRepo) Checkout(t *testing.T, name string) {
	t.Helper()
	r.Git(t, "checkout", name)
}

// CurrentBranch returns the currently checked out branch
func (r *GitRepo) CurrentBranch(t *testing.T) string {
	t.Helper()

	cmd := exec.Command("git", "symbolic-ref", "--short", "HEAD")
	cmd.Dir = r.Dir
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("failed to read current branch: %v", err)
	}
	return trimNewline(string(out))
}

// AddBareRemote creates a bare repository and registers it as origin, so
// pushes in tests have somewhere to go.
func (r *GitRepo) AddBareRemote(t *testing.T) string {
	t.Helper()

	remoteDir := t.TempDir()
	cmd := exec.Command("git", "init", "--bare", remoteDir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		t.Fatalf("failed to init bare remote: %v", err)
	}

	r.Git(t, "remote", "add", "origin", remoteDir)
	r.Git(t, "push", "-u", "origin", "main")
	return remoteDir
}

// RemoteHasBranch reports whether the bare remote has the given branch
func RemoteHasBranch(t *testing.T, remoteDir, name string) bool {
	t.Helper()

	cmd := exec.Command("git", "rev-parse", "--verify", "--quiet", "refs/heads/"+name)
	cmd.Dir = remoteDir
	return cmd.Run() == nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// SetRemoteURL points origin at an arbitrary URL, for remote parsing tests
func (r *GitRepo) SetRemoteURL(t *testing.T, url string) {
	t.Helper()

	var sub string
	if r.hasRemote() {
		sub = "set-url"
	} else {
		sub = "add"
	}
	r.Git(t, "remote", sub, "origin", url)
}

func (r *GitRepo) hasRemote() bool {
	cmd := exec.Command("git", "remote", "get-url", "origin")
	cmd.Dir = r.Dir
	return cmd.Run() == nil
}

// String implements fmt.Stringer
func (r *GitRepo) String() string {
	return fmt.Sprintf("GitRepo(%s)", r.Dir)
}
