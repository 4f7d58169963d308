package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"stepgrid/pkg/logging"
)

// Section is a named group of settings that may contain nested sections.
// In the file a nested section is a mapping; every other value is a
// setting, so setting values themselves cannot be mappings.
type Section struct {
	name     string
	values   map[string]any
	sections map[string]*Section
}

func newSection(name string) *Section {
	return &Section{
		name:     name,
		values:   make(map[string]any),
		sections: make(map[string]*Section),
	}
}

// Name returns the section name.
func (s *Section) Name() string {
	return s.name
}

// Get returns the stored value of a setting.
func (s *Section) Get(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Set stores value under name. With override false an existing value is
// kept. Set reports whether the value was stored.
func (s *Section) Set(name string, value any, override bool) bool {
	if _, exists := s.values[name]; exists && !override {
		return false
	}
	s.values[name] = value
	return true
}

// Keys returns the setting names in sorted order.
func (s *Section) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Section returns a nested section.
func (s *Section) Section(name string) (*Section, bool) {
	sub, ok := s.sections[name]
	return sub, ok
}

// AddSection returns the nested section called name, creating it when
// missing. The given values are applied as defaults: settings that are
// already stored are not overridden.
func (s *Section) AddSection(name string, defaults map[string]any) *Section {
	sub, ok := s.sections[name]
	if !ok {
		sub = newSection(name)
		s.sections[name] = sub
	}
	for k, v := range defaults {
		sub.Set(k, v, false)
	}
	return sub
}

func (s *Section) toMap() map[string]any {
	out := make(map[string]any, len(s.values)+len(s.sections))
	for k, v := range s.values {
		out[k] = v
	}
	for k, sub := range s.sections {
		out[k] = sub.toMap()
	}
	return out
}

func sectionFromMap(name string, m map[string]any) *Section {
	s := newSection(name)
	for k, v := range m {
		if sub, ok := v.(map[string]any); ok {
			s.sections[k] = sectionFromMap(k, sub)
			continue
		}
		s.values[k] = v
	}
	return s
}

// Store is a settings file: a root section persisted as YAML.
type Store struct {
	path string
	root *Section
}

// Load reads the settings file at path. A missing file gives an empty
// store that is created on the first Save.
func Load(path string) (*Store, error) {
	store := &Store{path: path, root: newSection("")}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logging.Debug("Settings", "no settings file at %s, starting empty", path)
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading settings from %s: %w", path, err)
	}

	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("error parsing settings from %s: %w", path, err)
	}
	store.root = sectionFromMap("", m)
	return store, nil
}

// Path returns the file the store is persisted to.
func (s *Store) Path() string {
	return s.path
}

// Section returns a top-level section.
func (s *Store) Section(name string) (*Section, bool) {
	return s.root.Section(name)
}

// AddSection creates or returns a top-level section, see Section.AddSection.
func (s *Store) AddSection(name string, defaults map[string]any) *Section {
	return s.root.AddSection(name, defaults)
}

// Save writes the store to its file, creating parent directories.
func (s *Store) Save() error {
	data, err := yaml.Marshal(s.root.toMap())
	if err != nil {
		return fmt.Errorf("error encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("error creating settings directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("error writing settings to %s: %w", s.path, err)
	}
	logging.Debug("Settings", "saved settings to %s", s.path)
	return nil
}
