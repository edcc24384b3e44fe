package semver

import (
	"errors"
	"fmt"
	"strings"
)

// ReleaseType selects which version component a release bumps.
type ReleaseType string

const (
	ReleaseMajor ReleaseType = "major"
	ReleaseMinor ReleaseType = "minor"
	ReleasePatch ReleaseType = "patch"
)

// ErrInvalidReleaseType reports a release-type token outside major/minor/patch.
// An unrecognized token always fails hard; it never falls through to an
// unchanged version.
var ErrInvalidReleaseType = errors.New("invalid release type")

// ParseReleaseType validates a release-type token (case-insensitive).
func ParseReleaseType(s string) (ReleaseType, error) {
	switch t := ReleaseType(strings.ToLower(strings.TrimSpace(s))); t {
	case ReleaseMajor, ReleaseMinor, ReleasePatch:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q (want major, minor or patch)", ErrInvalidReleaseType, s)
	}
}
