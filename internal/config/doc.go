// Package config provides configuration management for stepgrid.
//
// This package implements a layered configuration system that allows users to
// customize stepgrid's behavior through YAML files. Configuration is loaded from
// multiple sources and merged in a specific order, with later sources overriding
// earlier ones.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order:
//
//  1. Default Configuration (embedded in binary)
//     - Four-space separators, no alignment, table output
//
//  2. User Configuration (~/.config/stepgrid/config.yaml)
//     - Personal preferences that apply to all projects
//
//  3. Project Configuration (./.stepgrid/config.yaml)
//     - Project-specific settings in the current directory
//     - Allows teams to share the file layout via version control
//
// # Configuration Structure
//
//	logLevel: info
//	settingsFile: ~/.config/stepgrid/settings.yaml
//	format:
//	  separatorWidth: 4
//	  align: true
//	output:
//	  format: table   # or json, yaml
//	repl:
//	  historyFile: ~/.config/stepgrid/repl_history
//	  prompt: "stepgrid> "
//
// Zero values in a layer leave the value of the previous layer in place.
package config
