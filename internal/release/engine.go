// Package release implements the version-bump policy: which components a
// release touches and what their next versions are, plus the orchestrator
// that persists the result.
package release

import (
	"fmt"

	"github.com/nsbackup/relkit/internal/commits"
	"github.com/nsbackup/relkit/internal/config"
	"github.com/nsbackup/relkit/internal/semver"
)

// Versions maps component name to its current or computed version.
type Versions map[string]semver.Version

// Clone returns an independent copy.
func (v Versions) Clone() Versions {
	out := make(Versions, len(v))
	for name, ver := range v {
		out[name] = ver
	}
	return out
}

// Change records one component moving from one version to another.
type Change struct {
	Component string
	From      semver.Version
	To        semver.Version
}

func (c Change) String() string {
	return fmt.Sprintf("%s: %s -> %s", c.Component, c.From, c.To)
}

// Apply computes the next versions for every component the decision flags,
// leaving the rest untouched. Changes come back in reporting order. The only
// error is an invalid release type, which fails the whole operation.
func Apply(current Versions, d commits.Decision, t semver.ReleaseType) (Versions, []Change, error) {
	updated := current.Clone()

	var changes []Change
	for _, name := range d.Components() {
		cur, ok := current[name]
		if !ok {
			return nil, nil, fmt.Errorf("no current version for component %q", name)
		}

		next, err := cur.Next(t)
		if err != nil {
			return nil, nil, fmt.Errorf("component %q: %w", name, err)
		}

		updated[name] = next
		changes = append(changes, Change{Component: name, From: cur, To: next})
	}

	return updated, changes, nil
}

// Primary returns the primary component's version, the one reported to the
// release orchestrator as the release's canonical tag.
func (v Versions) Primary() (semver.Version, error) {
	ver, ok := v[config.Primary]
	if !ok {
		return semver.Version{}, fmt.Errorf("no version for primary component %q", config.Primary)
	}
	return ver, nil
}
