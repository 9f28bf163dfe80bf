package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/strmatch/internal/config"
)

func TestConfigPathCmd_PrintsUserConfigPath(t *testing.T) {
	isolateEnv(t)

	// When: running config path
	stdout, _, err := runCommand(t, "config", "path")

	// Then: it prints the XDG-resolved location
	require.NoError(t, err)
	expected := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "strmatch", "config.yaml")
	assert.Equal(t, expected+"\n", stdout)
}

func TestConfigInitCmd_CreatesFile(t *testing.T) {
	isolateEnv(t)

	// When: running config init for the first time
	stdout, _, err := runCommand(t, "config", "init")

	// Then: the file exists and holds the defaults
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created user configuration")

	path := config.GetUserConfigPath()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "strmatch user configuration", "Template comments should survive")
	assert.Contains(t, string(data), "algorithm: boyer-moore")
	assert.Contains(t, string(data), "encoding: utf-8")
}

func TestConfigInitCmd_TemplateRoundTrips(t *testing.T) {
	isolateEnv(t)

	// Given: a user config created from the template
	_, _, err := runCommand(t, "config", "init")
	require.NoError(t, err)

	// When: loading it back through the config machinery
	stdout, _, err := runCommand(t, "config", "show", "--source", "user")

	// Then: the template parses into the expected defaults
	require.NoError(t, err)
	assert.Contains(t, stdout, "algorithm: boyer-moore")
	assert.Contains(t, stdout, "encoding: utf-8")
}

func TestConfigInitCmd_Project(t *testing.T) {
	isolateEnv(t)

	// Given: a project directory
	tmpDir := t.TempDir()
	oldDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(oldDir) }()

	// When: creating a project config
	stdout, _, err := runCommand(t, "config", "init", "--project")

	// Then: .strmatch.yaml appears in the working directory
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created project configuration")

	data, err := os.ReadFile(filepath.Join(tmpDir, ".strmatch.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "strmatch project configuration")

	// And: a second init refuses to overwrite
	stdout, _, err = runCommand(t, "config", "init", "--project")
	require.NoError(t, err)
	assert.Contains(t, stdout, "already exists")
}

func TestConfigInitCmd_RefusesToOverwrite(t *testing.T) {
	isolateEnv(t)

	// Given: an existing user config
	_, _, err := runCommand(t, "config", "init")
	require.NoError(t, err)

	// When: running init again without --force
	stdout, _, err := runCommand(t, "config", "init")

	// Then: the existing file is left alone
	require.NoError(t, err)
	assert.Contains(t, stdout, "already exists")
	assert.Contains(t, stdout, "--force")
}

func TestConfigInitCmd_ForceOverwrites(t *testing.T) {
	isolateEnv(t)

	// Given: a user config with a customized default
	path := config.GetUserConfigPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  algorithm: naive\n"), 0o644))

	// When: running init --force
	stdout, _, err := runCommand(t, "config", "init", "--force")

	// Then: the file is reset to the defaults
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created user configuration")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "algorithm: boyer-moore")
}

func TestConfigShowCmd_Defaults(t *testing.T) {
	isolateEnv(t)

	// When: showing the hardcoded defaults
	stdout, _, err := runCommand(t, "config", "show", "--source", "defaults")

	// Then: the YAML dump carries the default stack
	require.NoError(t, err)
	assert.Contains(t, stdout, "defaults (hardcoded)")
	assert.Contains(t, stdout, "algorithm: boyer-moore")
	assert.Contains(t, stdout, "encoding: utf-8")
	assert.Contains(t, stdout, "format: text")
}

func TestConfigShowCmd_JSON(t *testing.T) {
	isolateEnv(t)

	// When: showing merged config as JSON
	stdout, _, err := runCommand(t, "config", "show", "--json")

	// Then: the document decodes into the config shape
	require.NoError(t, err)

	var got config.Config
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "boyer-moore", got.Defaults.Algorithm)
	assert.Equal(t, "utf-8", got.Defaults.Encoding)
	assert.Equal(t, []string{".txt"}, got.Directory.Extensions)
}

func TestConfigShowCmd_UserSourceMissing(t *testing.T) {
	isolateEnv(t)

	// When: showing the user source with no file present
	stdout, _, err := runCommand(t, "config", "show", "--source", "user")

	// Then: a hint points at config init
	require.NoError(t, err)
	assert.Contains(t, stdout, "No user configuration file found")
	assert.Contains(t, stdout, "config init")
}

func TestConfigShowCmd_UserSourcePresent(t *testing.T) {
	isolateEnv(t)

	// Given: a user config overriding the algorithm
	path := config.GetUserConfigPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  algorithm: naive\n"), 0o644))

	// When: showing the user source
	stdout, _, err := runCommand(t, "config", "show", "--source", "user")

	// Then: the override is visible
	require.NoError(t, err)
	assert.Contains(t, stdout, "algorithm: naive")
}

func TestConfigShowCmd_InvalidSource(t *testing.T) {
	isolateEnv(t)

	// When: asking for an unknown source
	_, _, err := runCommand(t, "config", "show", "--source", "galaxy")

	// Then: the command rejects it
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid source")
}
