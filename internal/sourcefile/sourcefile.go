// Package sourcefile locates and rewrites version constants of the form
//
//	key = "X.Y.Z"   or   key = 'X.Y.Z'
//
// in text files. Only the version digits of the first occurrence are
// replaced; every other byte of the file is preserved.
package sourcefile

import (
	"fmt"
	"os"
	"regexp"
	"sync"

	"github.com/spf13/afero"

	"github.com/nsbackup/relkit/internal/semver"
)

// ParseError reports that a version constant could not be located or did not
// have the required MAJOR.MINOR.PATCH shape. It always names the file.
type ParseError struct {
	Path   string
	Key    string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: version constant %q: %s", e.Path, e.Key, e.Reason)
}

var (
	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

// keyPattern matches `key = "X.Y.Z"` at the start of a line, capturing the
// version as the first submatch. Single and double quotes are accepted.
func keyPattern(key string) *regexp.Regexp {
	patternMu.Lock()
	defer patternMu.Unlock()

	if re, ok := patternCache[key]; ok {
		return re
	}
	re := regexp.MustCompile(`(?m)^[ \t]*` + regexp.QuoteMeta(key) + `[ \t]*=[ \t]*['"](\d+\.\d+\.\d+)['"]`)
	patternCache[key] = re
	return re
}

// Read resolves the current version stored under key in the given file.
func Read(fs afero.Fs, path, key string) (semver.Version, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return semver.Version{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	m := keyPattern(key).FindSubmatch(data)
	if m == nil {
		return semver.Version{}, &ParseError{Path: path, Key: key, Reason: "not found"}
	}

	v, err := semver.Parse(string(m[1]))
	if err != nil {
		return semver.Version{}, &ParseError{Path: path, Key: key, Reason: err.Error()}
	}
	return v, nil
}

// Write replaces the version stored under key with v, touching nothing but
// the version digits of the first occurrence. The file's permissions are
// kept.
func Write(fs afero.Fs, path, key string, v semver.Version) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	loc := keyPattern(key).FindSubmatchIndex(data)
	if loc == nil {
		return &ParseError{Path: path, Key: key, Reason: "not found"}
	}

	// Submatch 1 is the version digits; splice the new version in place.
	start, end := loc[2], loc[3]
	patched := make([]byte, 0, len(data)+len(v.String()))
	patched = append(patched, data[:start]...)
	patched = append(patched, v.String()...)
	patched = append(patched, data[end:]...)

	mode := os.FileMode(0o644)
	if info, statErr := fs.Stat(path); statErr == nil {
		mode = info.Mode()
	}

	if err := afero.WriteFile(fs, path, patched, mode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
