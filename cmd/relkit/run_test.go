package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsbackup/relkit/internal/launcher"
)

// writeRunWorkspace extends the standard workspace with a bot binary that
// records its VERSION env var.
func writeRunWorkspace(t *testing.T, botVersion string) (configPath, versionFile string) {
	t.Helper()

	_, dir := writeWorkspace(t, botVersion, "1.0.0")

	versionFile = filepath.Join(dir, "seen-version")
	script := "#!/bin/sh\nprintf '%s' \"$VERSION\" > " + versionFile + "\n"
	binPath := filepath.Join(dir, "backup-bot")
	//nolint:gosec // test binary needs execute permissions
	require.NoError(t, os.WriteFile(binPath, []byte(script), 0o755))

	configYAML := `
components:
  bot:
    source: ` + filepath.Join(dir, "src/bot/__init__.py") + `
    binary: ` + binPath + `
  api:
    source: ` + filepath.Join(dir, "src/api/__init__.py") + `
pyproject: ` + filepath.Join(dir, "pyproject.toml") + `
`
	configPath = filepath.Join(dir, "relkit.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0o600))

	return configPath, versionFile
}

func TestRunCommandInjectsVersion(t *testing.T) {
	configPath, versionFile := writeRunWorkspace(t, "2.1.0")

	_, _, err := executeCommand(t, "run", "bot", "-c", configPath)
	require.NoError(t, err)

	seen, err := os.ReadFile(versionFile)
	require.NoError(t, err)
	assert.Equal(t, "2.1.0", string(seen))
}

func TestRunCommandNoBinaryConfigured(t *testing.T) {
	configPath, _ := writeRunWorkspace(t, "1.0.0")

	_, _, err := executeCommand(t, "run", "api", "-c", configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no binary configured")
}

func TestRunCommandPropagatesExitCode(t *testing.T) {
	_, dir := writeWorkspace(t, "1.0.0", "1.0.0")

	binPath := filepath.Join(dir, "failing-bot")
	//nolint:gosec // test binary needs execute permissions
	require.NoError(t, os.WriteFile(binPath, []byte("#!/bin/sh\nexit 5\n"), 0o755))

	configYAML := `
components:
  bot:
    source: ` + filepath.Join(dir, "src/bot/__init__.py") + `
    binary: ` + binPath + `
  api:
    source: ` + filepath.Join(dir, "src/api/__init__.py") + `
`
	configPath := filepath.Join(dir, "relkit.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0o600))

	_, _, err := executeCommand(t, "run", "bot", "-c", configPath)

	var exitErr *launcher.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 5, exitErr.Code)
}
