package settings

import (
	"errors"
	"fmt"
)

// PluginsSection is the top-level section holding one section per plugin.
const PluginsSection = "Plugins"

// ErrSettingNotFound is returned for a setting that has neither a stored
// value nor a default.
var ErrSettingNotFound = errors.New("setting not found")

// Plugin gives a plugin access to its own section of a settings store.
type Plugin struct {
	name    string
	store   *Store
	section *Section
}

// NewPlugin binds a plugin to its section under "Plugins", creating it
// when missing. Defaults fill in settings that are not stored yet; stored
// values always win.
func NewPlugin(store *Store, name string, defaults map[string]any) *Plugin {
	plugins := store.AddSection(PluginsSection, nil)
	return &Plugin{
		name:    name,
		store:   store,
		section: plugins.AddSection(name, defaults),
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return p.name
}

// Setting returns the value of a setting or ErrSettingNotFound.
func (p *Plugin) Setting(name string) (any, error) {
	v, ok := p.section.Get(name)
	if !ok {
		return nil, fmt.Errorf("plugin %s: %w: %s", p.name, ErrSettingNotFound, name)
	}
	return v, nil
}

// GetSetting returns the value of a setting, or def when it is unknown.
func (p *Plugin) GetSetting(name string, def any) any {
	if v, ok := p.section.Get(name); ok {
		return v
	}
	return def
}

// SaveSetting stores a setting and persists the store. With override false
// an existing value is kept and nothing is written.
func (p *Plugin) SaveSetting(name string, value any, override bool) error {
	if !p.section.Set(name, value, override) {
		return nil
	}
	return p.store.Save()
}

// Settings returns the names of all settings of the plugin.
func (p *Plugin) Settings() []string {
	return p.section.Keys()
}
