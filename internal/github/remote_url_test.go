package github

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGitHubRemoteURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected RepoInfo
	}{
		{
			name:     "ssh URL",
			input:    "git@github.com:acme/widget.git",
			expected: RepoInfo{Hostname: "github.com", Owner: "acme", Repo: "widget"},
		},
		{
			name:     "ssh URL without suffix",
			input:    "git@github.com:acme/widget",
			expected: RepoInfo{Hostname: "github.com", Owner: "acme", Repo: "widget"},
		},
		{
			name:     "https URL",
			input:    "https://github.com/acme/widget.git",
			expected: RepoInfo{Hostname: "github.com", Owner: "acme", Repo: "widget"},
		},
		{
			name:     "enterprise ssh URL",
			input:    "git@github.acme.internal:platform/widget.git",
			expected: RepoInfo{Hostname: "github.acme.internal", Owner: "platform", Repo: "widget"},
		},
		{
			name:     "enterprise https URL",
			input:    "https://github.acme.internal/platform/widget",
			expected: RepoInfo{Hostname: "github.acme.internal", Owner: "platform", Repo: "widget"},
		},
		{
			name:     "trailing whitespace",
			input:    "git@github.com:acme/widget.git\n",
			expected: RepoInfo{Hostname: "github.com", Owner: "acme", Repo: "widget"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info, err := ParseGitHubRemoteURL(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, *info)
		})
	}
}

func TestParseGitHubRemoteURL_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "not-a-url", "https://github.com/only-owner", "git@host"} {
		_, err := ParseGitHubRemoteURL(input)
		require.Error(t, err, "input %q", input)
	}
}
