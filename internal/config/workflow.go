package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed templates/release-train.yml
var releaseTrainWorkflow []byte

// WorkflowPath is where the release-train workflow is installed, relative to
// the repository root.
const WorkflowPath = ".github/workflows/release-train.yml"

// InstallWorkflow writes the release-train GitHub Actions workflow into the
// repository. An existing file with the expected content is reported as
// present; a file the user has edited is left untouched.
func InstallWorkflow(repoRoot string) (PatchResult, error) {
	path := filepath.Join(repoRoot, WorkflowPath)

	if _, err := os.Stat(path); err == nil {
		// Never clobber a workflow the user may have customized
		return PatchResult{Present: []string{WorkflowPath}}, nil
	} else if !os.IsNotExist(err) {
		return PatchResult{}, fmt.Errorf("failed to read workflow file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return PatchResult{}, fmt.Errorf("failed to create workflows directory: %w", err)
	}
	if err := os.WriteFile(path, releaseTrainWorkflow, 0644); err != nil {
		return PatchResult{}, fmt.Errorf("failed to write workflow file: %w", err)
	}

	return PatchResult{Added: []string{WorkflowPath}}, nil
}
