package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LockPatterns are the package-manager lock files ignored on workflow
// branches so releases never carry lock churn from feature work.
var LockPatterns = []string{
	"package-lock.json",
	"pnpm-lock.yaml",
	"yarn.lock",
}

const lockSectionHeader = "# relgate: package manager lock files"

// EnsureGitignorePatterns adds any missing lock-file patterns to the
// repository's .gitignore, creating the file if necessary. Patterns already
// present anywhere in the file (even outside the relgate section) are left
// alone, so re-running adds nothing.
func EnsureGitignorePatterns(repoRoot string) (PatchResult, error) {
	path := filepath.Join(repoRoot, ".gitignore")

	existing := map[string]bool{}
	var content string

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return PatchResult{}, fmt.Errorf("failed to read .gitignore: %w", err)
	}
	if err == nil {
		content = string(data)
		for _, line := range strings.Split(content, "\n") {
			existing[strings.TrimSpace(line)] = true
		}
	}

	var result PatchResult
	var missing []string
	for _, pattern := range LockPatterns {
		if existing[pattern] {
			result.Present = append(result.Present, pattern)
			continue
		}
		missing = append(missing, pattern)
		result.Added = append(result.Added, pattern)
	}

	if len(missing) == 0 {
		return result, nil
	}

	var b strings.Builder
	b.WriteString(content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	if !strings.Contains(content, lockSectionHeader) {
		if content != "" {
			b.WriteString("\n")
		}
		b.WriteString(lockSectionHeader + "\n")
	}
	for _, pattern := range missing {
		b.WriteString(pattern + "\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return PatchResult{}, fmt.Errorf("failed to write .gitignore: %w", err)
	}

	return result, nil
}
