// Package semver holds the strict MAJOR.MINOR.PATCH version type used for
// component versioning. Pre-release and build suffixes are not part of the
// versioning scheme and are rejected on parse.
package semver

import (
	"fmt"

	blang "github.com/blang/semver/v4"
)

// Version is a plain three-part semantic version.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// Parse parses a strict "MAJOR.MINOR.PATCH" string. Anything else, including
// valid semver with pre-release or build metadata, is an error.
func Parse(s string) (Version, error) {
	v, err := blang.Parse(s)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	if len(v.Pre) > 0 || len(v.Build) > 0 {
		return Version{}, fmt.Errorf("invalid version %q: pre-release and build suffixes are not supported", s)
	}
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}, nil
}

// MustParse is Parse for static version literals in tests.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Next returns the version after applying a release type bump. Lower-order
// components reset to zero.
func (v Version) Next(t ReleaseType) (Version, error) {
	switch t {
	case ReleaseMajor:
		return Version{Major: v.Major + 1}, nil
	case ReleaseMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case ReleasePatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	default:
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidReleaseType, string(t))
	}
}
