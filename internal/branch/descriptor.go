// Package branch implements the branch naming convention used by the
// release isolation workflow: <kind>/<ticket>-<slugged-description>.
package branch

import (
	"fmt"
	"regexp"
	"strings"

	relgateerrors "relgate.dev/relgate/internal/errors"
)

// Kind identifies the role of a branch in the release workflow
type Kind string

const (
	KindFeature Kind = "feature"
	KindRelease Kind = "release"
	KindHotfix  Kind = "hotfix"
	KindStaging Kind = "staging"
	KindTrunk   Kind = "trunk"
)

const (
	// DefaultTicketPrefix is the prefix of ticket identifiers embedded in branch names
	DefaultTicketPrefix = "CU"

	// MiscTicket is the sentinel ticket used when a branch carries no ticket id
	MiscTicket = "MISC"
)

// slugReplaceRegex matches character runs that are not valid in a branch slug
var slugReplaceRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Descriptor is the parsed form of a workflow branch name.
// It is computed on demand from the branch name and never persisted.
type Descriptor struct {
	Kind        Kind
	TicketID    string
	Description string
}

// BranchName reconstructs the canonical branch name for the descriptor.
// The round trip through Parse is lossy only in letter casing.
func (d Descriptor) BranchName() string {
	return fmt.Sprintf("%s/%s-%s", d.Kind, d.TicketID, Slug(d.Description))
}

// CommitType returns the conventional-commit type for the descriptor's kind.
// Hotfixes ship as fixes, everything else as features.
func (d Descriptor) CommitType() string {
	if d.Kind == KindHotfix {
		return "fix"
	}
	return "feat"
}

// Slug converts a human-readable description into its branch-name form:
// lower case, word runs joined with hyphens.
func Slug(description string) string {
	s := strings.ToLower(description)
	s = slugReplaceRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Parse derives a Descriptor from a branch name using the default ticket prefix.
func Parse(name string) (Descriptor, error) {
	return ParseWithPrefix(name, DefaultTicketPrefix)
}

// ParseWithPrefix derives a Descriptor from a branch name of the form
// <kind>/<prefix>-<id>-<description>. The MISC sentinel is accepted as a
// ticket id regardless of prefix.
//
// A missing ticket id returns the partial descriptor alongside
// ErrMissingTicketID so call sites can decide between the MISC fallback and a
// hard failure. A missing description is always an error.
func ParseWithPrefix(name, prefix string) (Descriptor, error) {
	if name == "" {
		return Descriptor{}, relgateerrors.ErrNotOnBranch
	}

	kind, rest, err := splitKind(name)
	if err != nil {
		return Descriptor{}, err
	}

	var ticket string
	if rest == MiscTicket || strings.HasPrefix(rest, MiscTicket+"-") {
		// The MISC sentinel is a valid ticket id, so branches the tool
		// created for ticketless work re-parse cleanly.
		ticket = MiscTicket
	} else {
		ticketRegex := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `-[a-z0-9]+`)
		ticket = ticketRegex.FindString(rest)
	}
	if ticket == "" {
		desc := strings.TrimSpace(strings.ReplaceAll(rest, "-", " "))
		if desc == "" {
			return Descriptor{Kind: kind}, relgateerrors.ErrMissingDescription
		}
		return Descriptor{Kind: kind, Description: desc}, relgateerrors.ErrMissingTicketID
	}

	remainder := strings.TrimPrefix(rest, ticket)
	remainder = strings.TrimPrefix(remainder, "-")
	desc := strings.TrimSpace(strings.ReplaceAll(remainder, "-", " "))
	if desc == "" {
		return Descriptor{Kind: kind, TicketID: ticket}, relgateerrors.ErrMissingDescription
	}

	return Descriptor{Kind: kind, TicketID: ticket, Description: desc}, nil
}

// splitKind extracts the kind prefix from a branch name
func splitKind(name string) (Kind, string, error) {
	slash := strings.Index(name, "/")
	if slash < 0 {
		return "", "", relgateerrors.NewWrongKindError(name, "workflow")
	}

	rest := name[slash+1:]
	switch Kind(name[:slash]) {
	case KindFeature:
		return KindFeature, rest, nil
	case KindRelease:
		return KindRelease, rest, nil
	case KindHotfix:
		return KindHotfix, rest, nil
	}
	return "", "", relgateerrors.NewWrongKindError(name, "workflow")
}

// BuildPRTitle formats a pull request title the downstream release tooling
// understands: [<bump>] <commitType>(<ticket>): <description>.
// Reserved characters in the description are passed through verbatim.
func BuildPRTitle(bump Bump, commitType, ticketID, description string) string {
	return fmt.Sprintf("[%s] %s(%s): %s", bump, commitType, ticketID, description)
}
