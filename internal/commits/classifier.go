// Package commits classifies commit messages into per-component bump
// decisions using the prefix-scoping convention (bot:, feat(api):, ...).
package commits

import (
	"strings"

	"github.com/nsbackup/relkit/internal/config"
)

// Commit carries the only attribute the classifier consults.
type Commit struct {
	Message string
}

// Decision says which components a release should bump. Never both false:
// when no commit is scoped to either component, everything bumps.
type Decision struct {
	Bot bool
	API bool
}

// Components returns the names of the components flagged for a bump, in
// reporting order.
func (d Decision) Components() []string {
	var names []string
	if d.Bot {
		names = append(names, config.ComponentBot)
	}
	if d.API {
		names = append(names, config.ComponentAPI)
	}
	return names
}

// Commit types that scope a change to a single component when combined with
// a component name, e.g. feat(bot): or fix(api):.
var scopedTypes = []string{"feat", "fix", "perf", "refactor"}

// Classify derives the bump decision from an ordered commit list. A commit
// counts toward a component when its message starts (case-insensitively)
// with the component name or a scoped conventional-commit prefix. A message
// matching both components counts toward both. If nothing matched either
// component, including the empty list, both flags come back true.
func Classify(commits []Commit) Decision {
	var d Decision
	for _, c := range commits {
		msg := strings.ToLower(c.Message)
		if matchesComponent(msg, config.ComponentBot) {
			d.Bot = true
		}
		if matchesComponent(msg, config.ComponentAPI) {
			d.API = true
		}
	}

	if !d.Bot && !d.API {
		// Unscoped release: bump everything.
		d.Bot = true
		d.API = true
	}

	return d
}

func matchesComponent(msg, component string) bool {
	if strings.HasPrefix(msg, component) {
		return true
	}
	for _, typ := range scopedTypes {
		if strings.HasPrefix(msg, typ+"("+component+")") {
			return true
		}
	}
	return false
}
