// Package config provides repository configuration management,
// including reading and writing relgate configuration files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const configFileName = ".relgate_config"

// Branch and ticket defaults used when the config does not set them
const (
	DefaultTrunk        = "main"
	DefaultStaging      = "staging"
	DefaultTicketPrefix = "CU"
)

// RepoConfig represents the repository configuration, stored as JSON under .git/
type RepoConfig struct {
	Trunk        *string `json:"trunk,omitempty"`
	Staging      *string `json:"staging,omitempty"`
	TicketPrefix *string `json:"ticketPrefix,omitempty"`
	Remote       *string `json:"remote,omitempty"`

	repoRoot string
}

// LoadConfig reads the repository configuration, returning defaults when the
// config file does not exist.
func LoadConfig(repoRoot string) (*RepoConfig, error) {
	cfg := &RepoConfig{repoRoot: repoRoot}

	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		// Config doesn't exist - return default
		return cfg, nil
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse repo config: %w", err)
	}
	cfg.repoRoot = repoRoot

	return cfg, nil
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", configFileName)
}

// Save writes the configuration back to the repository
func (c *RepoConfig) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(configPath(c.repoRoot), data, 0600)
}

// IsInitialized reports whether relgate has been initialized in this repository
func (c *RepoConfig) IsInitialized() bool {
	return c.Trunk != nil && *c.Trunk != ""
}

// GetTrunk returns the trunk branch name, or the default
func (c *RepoConfig) GetTrunk() string {
	if c.Trunk != nil && *c.Trunk != "" {
		return *c.Trunk
	}
	return DefaultTrunk
}

// GetStaging returns the staging branch name, or the default
func (c *RepoConfig) GetStaging() string {
	if c.Staging != nil && *c.Staging != "" {
		return *c.Staging
	}
	return DefaultStaging
}

// GetTicketPrefix returns the ticket id prefix, or the default
func (c *RepoConfig) GetTicketPrefix() string {
	if c.TicketPrefix != nil && *c.TicketPrefix != "" {
		return *c.TicketPrefix
	}
	return DefaultTicketPrefix
}

// GetRemote returns the remote name, or "origin"
func (c *RepoConfig) GetRemote() string {
	if c.Remote != nil && *c.Remote != "" {
		return *c.Remote
	}
	return "origin"
}

// SetTrunk updates the trunk branch name
func (c *RepoConfig) SetTrunk(name string) {
	c.Trunk = &name
}

// SetStaging updates the staging branch name
func (c *RepoConfig) SetStaging(name string) {
	c.Staging = &name
}

// SetTicketPrefix updates the ticket id prefix
func (c *RepoConfig) SetTicketPrefix(prefix string) {
	c.TicketPrefix = &prefix
}
