package branch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	relgateerrors "relgate.dev/relgate/internal/errors"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Descriptor
	}{
		{
			name:  "feature branch with ticket and description",
			input: "feature/CU-abc123-add-login-form",
			expected: Descriptor{
				Kind:        KindFeature,
				TicketID:    "CU-abc123",
				Description: "add login form",
			},
		},
		{
			name:  "release branch",
			input: "release/CU-doc1-workflow-docs",
			expected: Descriptor{
				Kind:        KindRelease,
				TicketID:    "CU-doc1",
				Description: "workflow docs",
			},
		},
		{
			name:  "hotfix branch",
			input: "hotfix/CU-9f2-fix-null-deref",
			expected: Descriptor{
				Kind:        KindHotfix,
				TicketID:    "CU-9f2",
				Description: "fix null deref",
			},
		},
		{
			name:  "single word description",
			input: "feature/CU-1-docs",
			expected: Descriptor{
				Kind:        KindFeature,
				TicketID:    "CU-1",
				Description: "docs",
			},
		},
		{
			name:  "misc sentinel ticket",
			input: "release/MISC-quick-cleanup",
			expected: Descriptor{
				Kind:        KindRelease,
				TicketID:    MiscTicket,
				Description: "quick cleanup",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, d)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	// For well-formed names, slugging the parsed description recovers the
	// original suffix.
	names := []string{
		"feature/CU-abc123-add-login-form",
		"release/CU-doc1-workflow-docs",
		"hotfix/CU-42-rollback-cache",
		"release/MISC-quick-cleanup",
		"hotfix/MISC-rollback-cache",
	}

	for _, name := range names {
		d, err := Parse(name)
		require.NoError(t, err)
		require.Equal(t, name, d.BranchName())
	}
}

func TestParse_MissingTicketID(t *testing.T) {
	t.Parallel()

	d, err := Parse("feature/just-some-words")

	require.ErrorIs(t, err, relgateerrors.ErrMissingTicketID)
	require.Equal(t, KindFeature, d.Kind)
	require.Empty(t, d.TicketID)
	require.Equal(t, "just some words", d.Description)
}

func TestParse_MissingDescription(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"feature/CU-abc1", "feature/CU-abc1-"} {
		d, err := Parse(input)
		require.ErrorIs(t, err, relgateerrors.ErrMissingDescription)
		require.Equal(t, "CU-abc1", d.TicketID)
	}
}

func TestParse_UnknownKind(t *testing.T) {
	t.Parallel()

	tests := []string{
		"main",
		"staging",
		"bugfix/CU-1-thing",
		"",
	}

	for _, input := range tests {
		_, err := Parse(input)
		require.Error(t, err)
	}

	_, err := Parse("bugfix/CU-1-thing")
	require.ErrorIs(t, err, relgateerrors.ErrUnknownBranchKind)

	var kindErr *relgateerrors.WrongKindError
	require.ErrorAs(t, err, &kindErr)
	require.Equal(t, "bugfix/CU-1-thing", kindErr.BranchName)
}

func TestParseWithPrefix(t *testing.T) {
	t.Parallel()

	d, err := ParseWithPrefix("feature/JIRA-77-tune-retries", "JIRA")
	require.NoError(t, err)
	require.Equal(t, "JIRA-77", d.TicketID)
	require.Equal(t, "tune retries", d.Description)

	// MISC stays a ticket id under any prefix
	d, err = ParseWithPrefix("release/MISC-quick-cleanup", "JIRA")
	require.NoError(t, err)
	require.Equal(t, MiscTicket, d.TicketID)
	require.Equal(t, "quick cleanup", d.Description)
}

func TestCommitType(t *testing.T) {
	t.Parallel()

	hotfix, err := Parse("hotfix/CU-1-emergency-patch")
	require.NoError(t, err)
	require.Equal(t, "fix", hotfix.CommitType())

	release, err := Parse("release/CU-1-planned-work")
	require.NoError(t, err)
	require.Equal(t, "feat", release.CommitType())

	feature, err := Parse("feature/CU-1-planned-work")
	require.NoError(t, err)
	require.Equal(t, "feat", feature.CommitType())
}

func TestSlug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"workflow docs", "workflow-docs"},
		{"Workflow Docs", "workflow-docs"},
		{"fix null deref!", "fix-null-deref"},
		{"  padded  words  ", "padded-words"},
		{"already-slugged", "already-slugged"},
		{"", ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, Slug(tt.input), "input %q", tt.input)
	}
}

func TestBuildPRTitle(t *testing.T) {
	t.Parallel()

	title := BuildPRTitle(BumpMinor, "feat", "CU-doc1", "workflow docs")
	require.Equal(t, "[minor] feat(CU-doc1): workflow docs", title)

	title = BuildPRTitle(BumpPatch, "fix", "CU-9f2", "fix null deref")
	require.Equal(t, "[patch] fix(CU-9f2): fix null deref", title)
}

func TestParseBump(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"major", "minor", "patch"} {
		b, err := ParseBump(valid)
		require.NoError(t, err)
		require.Equal(t, Bump(valid), b)
	}

	_, err := ParseBump("huge")
	require.Error(t, err)

	_, err = ParseBump("")
	require.Error(t, err)
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	err := relgateerrors.NewWrongBaseError(12, "main", "staging")
	require.True(t, errors.Is(err, relgateerrors.ErrWrongBase))
	require.Contains(t, err.Error(), "main")
	require.Contains(t, err.Error(), "staging")
}
