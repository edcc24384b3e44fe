// Package manifest regenerates the per-component process-manager manifests.
// These files mirror the authoritative source versions and are always
// rewritten whole, never edited.
package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/nsbackup/relkit/internal/semver"
)

// App is the process-manager view of one component.
type App struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

const header = "# Generated by relkit sync. Do not edit.\n"

// WriteApp regenerates the manifest at path for the named component.
func WriteApp(fs afero.Fs, path, name string, v semver.Version) error {
	app := App{Name: name, Version: v.String()}

	data, err := yaml.Marshal(&app)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest for %s: %w", name, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create manifest directory %s: %w", dir, err)
		}
	}

	if err := afero.WriteFile(fs, path, append([]byte(header), data...), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}

// ReadApp loads a previously generated manifest. Used by tests and by sync
// to report unchanged files.
func ReadApp(fs afero.Fs, path string) (App, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return App{}, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var app App
	if err := yaml.Unmarshal(data, &app); err != nil {
		return App{}, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return app, nil
}
