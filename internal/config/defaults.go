package config

// GetDefaultConfig returns the built-in configuration all layers are
// merged onto.
func GetDefaultConfig() StepgridConfig {
	align := false
	return StepgridConfig{
		LogLevel:     "info",
		SettingsFile: "~/" + userConfigDir + "/settings.yaml",
		Format: FormatConfig{
			SeparatorWidth: 4,
			Align:          &align,
		},
		Output: OutputConfig{
			Format: OutputFormatTable,
		},
		REPL: REPLConfig{
			HistoryFile: "~/" + userConfigDir + "/repl_history",
			Prompt:      "stepgrid> ",
		},
	}
}
