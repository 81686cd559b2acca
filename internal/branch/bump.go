package branch

import "fmt"

// Bump is the semantic-version impact of a change, embedded in PR titles
// for the downstream release tooling.
type Bump string

const (
	BumpMajor Bump = "major"
	BumpMinor Bump = "minor"
	BumpPatch Bump = "patch"
)

// ParseBump validates a bump type argument
func ParseBump(s string) (Bump, error) {
	switch Bump(s) {
	case BumpMajor, BumpMinor, BumpPatch:
		return Bump(s), nil
	}
	return "", fmt.Errorf("invalid bump type %q, expected major, minor or patch", s)
}
