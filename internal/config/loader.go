package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"stepgrid/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/stepgrid"
	projectConfigDir = ".stepgrid"
	configFileName   = "config.yaml"
)

// LoadConfig loads the stepgrid configuration by layering default, user, and project settings.
func LoadConfig() (StepgridConfig, error) {
	// 1. Start with the default configuration
	config := GetDefaultConfig()

	// 2. User-specific configuration
	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return StepgridConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	// 3. Project-specific configuration
	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return StepgridConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	if err := validate(config); err != nil {
		return StepgridConfig{}, err
	}
	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a StepgridConfig from a YAML file.
func loadConfigFromFile(filePath string) (StepgridConfig, error) {
	var config StepgridConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return StepgridConfig{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return StepgridConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
// Zero values in the overlay leave the base untouched.
func mergeConfigs(base, overlay StepgridConfig) StepgridConfig {
	merged := base

	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	if overlay.SettingsFile != "" {
		merged.SettingsFile = overlay.SettingsFile
	}
	if overlay.Format.SeparatorWidth != 0 {
		merged.Format.SeparatorWidth = overlay.Format.SeparatorWidth
	}
	// Align is a pointer so that an explicit false can override true
	if overlay.Format.Align != nil {
		merged.Format.Align = overlay.Format.Align
	}
	if overlay.Output.Format != "" {
		merged.Output.Format = overlay.Output.Format
	}
	if overlay.REPL.HistoryFile != "" {
		merged.REPL.HistoryFile = overlay.REPL.HistoryFile
	}
	if overlay.REPL.Prompt != "" {
		merged.REPL.Prompt = overlay.REPL.Prompt
	}

	return merged
}

func validate(c StepgridConfig) error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	switch c.Output.Format {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
	default:
		return fmt.Errorf("invalid configuration: unsupported output format %q", c.Output.Format)
	}
	if c.Format.SeparatorWidth < 2 {
		return fmt.Errorf("invalid configuration: separatorWidth must be at least 2, got %d", c.Format.SeparatorWidth)
	}
	return nil
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
