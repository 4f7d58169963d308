package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, filename string, content StepgridConfig) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, filename)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tempFilePath, data, 0644))
	return tempFilePath
}

// mockPaths points both config layers into tempDir for the duration of the test.
func mockPaths(t *testing.T, tempDir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	originalOsUserHomeDir := osUserHomeDir
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
		osUserHomeDir = originalOsUserHomeDir
	})

	osUserHomeDir = func() (string, error) { return tempDir, nil }
	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, userConfigDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "project", projectConfigDir, configFileName), nil
	}
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockPaths(t, t.TempDir())

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), loadedConfig)
	assert.False(t, loadedConfig.Format.AlignEnabled())
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	align := true
	createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), configFileName, StepgridConfig{
		LogLevel: "debug",
		Format:   FormatConfig{SeparatorWidth: 2, Align: &align},
	})

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", loadedConfig.LogLevel)
	assert.Equal(t, 2, loadedConfig.Format.SeparatorWidth)
	assert.True(t, loadedConfig.Format.AlignEnabled())
	// Untouched values keep their defaults
	assert.Equal(t, OutputFormatTable, loadedConfig.Output.Format)
	assert.Equal(t, "stepgrid> ", loadedConfig.REPL.Prompt)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	on, off := true, false
	createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), configFileName, StepgridConfig{
		Format: FormatConfig{Align: &on},
		Output: OutputConfig{Format: OutputFormatJSON},
	})
	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), configFileName, StepgridConfig{
		Format: FormatConfig{Align: &off},
		Output: OutputConfig{Format: OutputFormatYAML},
	})

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, loadedConfig.Format.AlignEnabled())
	assert.Equal(t, OutputFormatYAML, loadedConfig.Output.Format)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	dir := filepath.Join(tempDir, userConfigDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("format: [oops"), 0644))

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		overlay StepgridConfig
	}{
		{"log level", StepgridConfig{LogLevel: "chatty"}},
		{"output format", StepgridConfig{Output: OutputConfig{Format: "xml"}}},
		{"separator", StepgridConfig{Format: FormatConfig{SeparatorWidth: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			mockPaths(t, tempDir)
			createTempConfigFile(t, filepath.Join(tempDir, userConfigDir), configFileName, tt.overlay)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestExpandHome(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	got, err := ExpandHome("~/.config/stepgrid/settings.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, ".config/stepgrid/settings.yaml"), got)

	got, err = ExpandHome("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)
}
