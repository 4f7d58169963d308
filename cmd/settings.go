package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"stepgrid/internal/config"
	"stepgrid/internal/settings"
)

var settingsNoOverride bool

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read and write plugin settings",
		Long: `Read and write the settings plugins keep in the settings file.

Values are parsed as YAML, so 'true', '42' and '[a, b]' are stored as a
boolean, a number and a list.`,
	}

	getCmd := &cobra.Command{
		Use:   "get PLUGIN [NAME]",
		Short: "Show one or all settings of a plugin",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runSettingsGet,
	}

	setCmd := &cobra.Command{
		Use:   "set PLUGIN NAME VALUE",
		Short: "Store a setting of a plugin",
		Args:  cobra.ExactArgs(3),
		RunE:  runSettingsSet,
	}
	setCmd.Flags().BoolVar(&settingsNoOverride, "no-override", false, "Keep an existing value")

	cmd.AddCommand(getCmd, setCmd)
	return cmd
}

func openPlugin(name string) (*settings.Plugin, error) {
	path, err := config.ExpandHome(appConfig.SettingsFile)
	if err != nil {
		return nil, err
	}
	store, err := settings.Load(path)
	if err != nil {
		return nil, err
	}
	return settings.NewPlugin(store, name, nil), nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	plugin, err := openPlugin(args[0])
	if err != nil {
		return err
	}

	keys := plugin.Settings()
	if len(args) == 2 {
		keys = []string{args[1]}
	}

	values := make(map[string]any, len(keys))
	for _, k := range keys {
		v, err := plugin.Setting(k)
		if err != nil {
			return err
		}
		values[k] = v
	}
	return newRenderer(cmd.OutOrStdout()).RenderSettings(plugin.Name(), values, keys)
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	plugin, err := openPlugin(args[0])
	if err != nil {
		return err
	}

	var value any
	if err := yaml.Unmarshal([]byte(args[2]), &value); err != nil {
		return fmt.Errorf("invalid value %q: %w", args[2], err)
	}

	if err := plugin.SaveSetting(args[1], value, !settingsNoOverride); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s.%s = %v\n", plugin.Name(), args[1], plugin.GetSetting(args[1], nil))
	return nil
}
