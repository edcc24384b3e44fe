package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBumpCommandBotOnly(t *testing.T) {
	configPath, dir := writeWorkspace(t, "2.0.0", "1.5.2")

	stdout, _, err := executeCommand(t,
		"bump", "--type", "minor", "--no-journal", "-c", configPath, "feat(bot): x")
	require.NoError(t, err)

	assert.Contains(t, stdout, "bot: 2.0.0 -> 2.1.0")
	assert.NotContains(t, stdout, "api:")

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	assert.Equal(t, "2.1.0", lines[len(lines)-1], "primary version must be the last line")

	data, err := os.ReadFile(filepath.Join(dir, "src/bot/__init__.py"))
	require.NoError(t, err)
	assert.Equal(t, "__version__ = \"2.1.0\"\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "src/api/__init__.py"))
	require.NoError(t, err)
	assert.Equal(t, "__version__ = \"1.5.2\"\n", string(data), "api must stay unchanged")

	data, err = os.ReadFile(filepath.Join(dir, "pyproject.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = \"2.1.0\"")

	data, err = os.ReadFile(filepath.Join(dir, "deploy/api.pm.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "version: 1.5.2")
}

func TestBumpCommandUnscopedBumpsBoth(t *testing.T) {
	configPath, _ := writeWorkspace(t, "1.0.0", "1.0.0")

	stdout, _, err := executeCommand(t,
		"bump", "--type", "patch", "--no-journal", "-c", configPath, "docs: update readme")
	require.NoError(t, err)

	assert.Contains(t, stdout, "bot: 1.0.0 -> 1.0.1")
	assert.Contains(t, stdout, "api: 1.0.0 -> 1.0.1")
}

func TestBumpCommandInvalidReleaseType(t *testing.T) {
	configPath, dir := writeWorkspace(t, "1.0.0", "1.0.0")

	_, _, err := executeCommand(t,
		"bump", "--type", "rc", "--no-journal", "-c", configPath, "bot: x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid release type")

	// Nothing was written.
	data, readErr := os.ReadFile(filepath.Join(dir, "src/bot/__init__.py"))
	require.NoError(t, readErr)
	assert.Equal(t, "__version__ = \"1.0.0\"\n", string(data))
}

func TestBumpCommandRequiresType(t *testing.T) {
	configPath, _ := writeWorkspace(t, "1.0.0", "1.0.0")

	_, _, err := executeCommand(t, "bump", "--no-journal", "-c", configPath, "bot: x")
	require.Error(t, err)
}

func TestBumpCommandRejectsRangeWithMessages(t *testing.T) {
	configPath, _ := writeWorkspace(t, "1.0.0", "1.0.0")

	_, _, err := executeCommand(t,
		"bump", "--type", "patch", "--no-journal", "--range", "v1.0.0..HEAD", "-c", configPath, "bot: x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")
}

func TestBumpCommandMissingConfig(t *testing.T) {
	_, _, err := executeCommand(t,
		"bump", "--type", "patch", "--no-journal", "-c", filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
