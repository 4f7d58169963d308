package config

// StepgridConfig is the top-level configuration structure for stepgrid.
type StepgridConfig struct {
	LogLevel     string       `yaml:"logLevel,omitempty"`     // debug, info, warn or error
	SettingsFile string       `yaml:"settingsFile,omitempty"` // Plugin settings store, "~" expands to the home directory
	Format       FormatConfig `yaml:"format"`
	Output       OutputConfig `yaml:"output"`
	REPL         REPLConfig   `yaml:"repl"`
}

// FormatConfig controls how edited files are written back.
type FormatConfig struct {
	SeparatorWidth int   `yaml:"separatorWidth,omitempty"` // Spaces between cells (minimum 2)
	Align          *bool `yaml:"align,omitempty"`          // Pad cells to common column widths
}

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// OutputConfig controls how tables are printed.
type OutputConfig struct {
	Format OutputFormat `yaml:"format,omitempty"`
}

// REPLConfig configures the interactive editing session.
type REPLConfig struct {
	HistoryFile string `yaml:"historyFile,omitempty"`
	Prompt      string `yaml:"prompt,omitempty"`
}

// AlignEnabled reports whether column alignment is switched on.
func (f FormatConfig) AlignEnabled() bool {
	return f.Align != nil && *f.Align
}
