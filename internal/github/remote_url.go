package github

import (
	"fmt"
	"strings"
)

// RepoInfo identifies a GitHub repository and the host it lives on
type RepoInfo struct {
	Hostname string
	Owner    string
	Repo     string
}

// ParseGitHubRemoteURL parses a git remote URL into hostname, owner and repo.
// Supports SSH (git@hostname:owner/repo) and HTTPS (https://hostname/owner/repo)
// remotes, with or without a trailing .git suffix.
func ParseGitHubRemoteURL(remoteURL string) (*RepoInfo, error) {
	remoteURL = strings.TrimSpace(remoteURL)
	remoteURL = strings.TrimSuffix(remoteURL, ".git")

	var hostname, owner, repo string

	if strings.Contains(remoteURL, "@") && !strings.HasPrefix(remoteURL, "https://") && !strings.HasPrefix(remoteURL, "http://") {
		// SSH format: git@hostname:owner/repo or git@hostname/owner/repo
		parts := strings.SplitN(remoteURL, "@", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid SSH remote URL format")
		}

		hostAndPath := parts[1]

		var path string
		if strings.Contains(hostAndPath, ":") {
			hostPathParts := strings.SplitN(hostAndPath, ":", 2)
			hostname = hostPathParts[0]
			path = hostPathParts[1]
		} else {
			pathParts := strings.SplitN(hostAndPath, "/", 2)
			if len(pathParts) < 2 {
				return nil, fmt.Errorf("invalid SSH remote URL: missing path")
			}
			hostname = pathParts[0]
			path = pathParts[1]
		}

		pathParts := strings.Split(path, "/")
		if len(pathParts) < 2 {
			return nil, fmt.Errorf("invalid SSH remote URL: path must be owner/repo")
		}
		owner = pathParts[0]
		repo = pathParts[len(pathParts)-1]
	} else {
		// HTTPS format: https://hostname/owner/repo
		remoteURL = strings.TrimPrefix(remoteURL, "https://")
		remoteURL = strings.TrimPrefix(remoteURL, "http://")

		parts := strings.Split(remoteURL, "/")
		if len(parts) < 3 {
			return nil, fmt.Errorf("invalid HTTPS remote URL: must be protocol://hostname/owner/repo")
		}

		hostname = parts[0]
		owner = parts[len(parts)-2]
		repo = parts[len(parts)-1]
	}

	if hostname == "" || owner == "" || repo == "" {
		return nil, fmt.Errorf("failed to parse hostname, owner, or repo from remote URL")
	}

	return &RepoInfo{
		Hostname: hostname,
		Owner:    owner,
		Repo:     repo,
	}, nil
}
