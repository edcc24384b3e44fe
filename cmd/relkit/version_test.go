package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	configPath, _ := writeWorkspace(t, "2.0.0", "1.5.2")

	stdout, _, err := executeCommand(t, "version", "bot", "-c", configPath)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0\n", stdout)

	stdout, _, err = executeCommand(t, "version", "api", "-c", configPath)
	require.NoError(t, err)
	assert.Equal(t, "1.5.2\n", stdout)
}

func TestVersionCommandUnknownComponent(t *testing.T) {
	configPath, _ := writeWorkspace(t, "1.0.0", "1.0.0")

	_, _, err := executeCommand(t, "version", "worker", "-c", configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown component "worker"`)
}

func TestVersionCommandMissingArgument(t *testing.T) {
	configPath, _ := writeWorkspace(t, "1.0.0", "1.0.0")

	_, _, err := executeCommand(t, "version", "-c", configPath)
	require.Error(t, err)
}

func TestVersionCommandUnlocatableVersion(t *testing.T) {
	configPath, dir := writeWorkspace(t, "1.0.0", "1.0.0")
	require.NoError(t, writeFile(dir, "src/bot/__init__.py", "# constant removed\n"))

	_, _, err := executeCommand(t, "version", "bot", "-c", configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "__version__")
}
