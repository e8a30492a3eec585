package store

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	yamlv3 "gopkg.in/yaml.v3"
)

// ConfigFile is an in-memory key-value store organized into named sections.
// Values live in memory until Save is called.
type ConfigFile struct {
	sections map[string]map[string]any
}

// NewConfigFile returns an empty store.
func NewConfigFile() *ConfigFile {
	return &ConfigFile{sections: make(map[string]map[string]any)}
}

// Load replaces the store contents with the file at path.
// A missing file is reported with an error wrapping fs.ErrNotExist.
func (c *ConfigFile) Load(path string) error {
	c.Clear()

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config file %s", path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	var raw map[string]map[string]any
	if err := yamlv3.Unmarshal(data, &raw); err != nil {
		return errors.Wrapf(err, "decode config file %s", path)
	}
	for section, values := range raw {
		for key, value := range values {
			c.SetValue(section, key, value)
		}
	}
	return nil
}

// Save writes the whole store to path, replacing any previous file atomically.
func (c *ConfigFile) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "create config directory for %s", path)
	}

	data, err := yamlv3.Marshal(c.sections)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}

	return writeFile(path, data)
}

// GetValue returns the value stored under section/key, or def when absent.
func (c *ConfigFile) GetValue(section, key string, def any) any {
	values, ok := c.sections[section]
	if !ok {
		return def
	}
	value, ok := values[key]
	if !ok {
		return def
	}
	return value
}

// SetValue stores value under section/key. A nil value erases the key, and a
// section left without keys is removed.
func (c *ConfigFile) SetValue(section, key string, value any) {
	if value == nil {
		values, ok := c.sections[section]
		if !ok {
			return
		}
		delete(values, key)
		if len(values) == 0 {
			delete(c.sections, section)
		}
		return
	}

	if c.sections == nil {
		c.sections = make(map[string]map[string]any)
	}
	values, ok := c.sections[section]
	if !ok {
		values = make(map[string]any)
		c.sections[section] = values
	}
	values[key] = value
}

func (c *ConfigFile) HasSection(section string) bool {
	_, ok := c.sections[section]
	return ok
}

func (c *ConfigFile) HasSectionKey(section, key string) bool {
	values, ok := c.sections[section]
	if !ok {
		return false
	}
	_, ok = values[key]
	return ok
}

// Sections returns the section names in sorted order.
func (c *ConfigFile) Sections() []string {
	names := maps.Keys(c.sections)
	slices.Sort(names)
	return names
}

// SectionKeys returns the keys of section in sorted order.
func (c *ConfigFile) SectionKeys(section string) []string {
	keys := maps.Keys(c.sections[section])
	slices.Sort(keys)
	return keys
}

func (c *ConfigFile) EraseSection(section string) {
	delete(c.sections, section)
}

// Clear drops every section.
func (c *ConfigFile) Clear() {
	c.sections = make(map[string]map[string]any)
}

// GetInt returns section/key as an int, or def when absent or not numeric.
func (c *ConfigFile) GetInt(section, key string, def int) int {
	value, ok := c.lookup(section, key)
	if !ok {
		return def
	}
	i, err := cast.ToIntE(value)
	if err != nil {
		logCoercion(section, key, value, err)
		return def
	}
	return i
}

// GetBool returns section/key as a bool, or def when absent or not a bool.
func (c *ConfigFile) GetBool(section, key string, def bool) bool {
	value, ok := c.lookup(section, key)
	if !ok {
		return def
	}
	b, err := cast.ToBoolE(value)
	if err != nil {
		logCoercion(section, key, value, err)
		return def
	}
	return b
}

// GetFloat returns section/key as a float64, or def when absent or not numeric.
func (c *ConfigFile) GetFloat(section, key string, def float64) float64 {
	value, ok := c.lookup(section, key)
	if !ok {
		return def
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		logCoercion(section, key, value, err)
		return def
	}
	return f
}

// GetIntUintMap returns section/key as a fresh map[int]uint. Entries that
// cannot be coerced are skipped; a value that is not a mapping at all
// yields def.
func (c *ConfigFile) GetIntUintMap(section, key string, def map[int]uint) map[int]uint {
	value, ok := c.lookup(section, key)
	if !ok {
		return def
	}

	out := make(map[int]uint)
	put := func(k, v any) {
		id, err := cast.ToIntE(k)
		if err != nil {
			logCoercion(section, key, k, err)
			return
		}
		level, err := cast.ToUintE(v)
		if err != nil {
			logCoercion(section, key, v, err)
			return
		}
		out[id] = level
	}

	switch m := value.(type) {
	case map[int]uint:
		for k, v := range m {
			out[k] = v
		}
	case map[any]any:
		for k, v := range m {
			put(k, v)
		}
	case map[string]any:
		for k, v := range m {
			put(k, v)
		}
	default:
		logCoercion(section, key, value, errors.Errorf("unexpected type %T", value))
		return def
	}
	return out
}

func (c *ConfigFile) lookup(section, key string) (any, bool) {
	values, ok := c.sections[section]
	if !ok {
		return nil, false
	}
	value, ok := values[key]
	return value, ok
}

func logCoercion(section, key string, value any, err error) {
	logrus.WithFields(logrus.Fields{
		"section": section,
		"key":     key,
		"value":   value,
	}).WithError(err).Debug("ignoring config value of unexpected type")
}
