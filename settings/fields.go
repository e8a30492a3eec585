package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// MaxScale bounds the UI scale accepted from user input.
const MaxScale = 4.0

// Field is a scalar setting addressable by name, e.g. "window.width".
type Field struct {
	Name        string
	Section     string
	Key         string
	Description string

	get func(*Settings) any
	set func(*Settings, string) error
}

// Get returns the effective value of the field.
func (f Field) Get(s *Settings) any {
	return f.get(s)
}

// Set parses value and stores it in memory.
func (f Field) Set(s *Settings, value string) error {
	if err := f.set(s, strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("%s: %w", f.Name, err)
	}
	return nil
}

var fields = []Field{
	{
		Name: "window.width", Section: SectionWindow, Key: KeyWidth,
		Description: "window width in pixels",
		get:         func(s *Settings) any { return s.WindowSize().Width },
		set: func(s *Settings, v string) error {
			width, err := parsePositiveInt(v)
			if err != nil {
				return err
			}
			size := s.WindowSize()
			size.Width = width
			s.SetWindowSize(size)
			return nil
		},
	},
	{
		Name: "window.height", Section: SectionWindow, Key: KeyHeight,
		Description: "window height in pixels",
		get:         func(s *Settings) any { return s.WindowSize().Height },
		set: func(s *Settings, v string) error {
			height, err := parsePositiveInt(v)
			if err != nil {
				return err
			}
			size := s.WindowSize()
			size.Height = height
			s.SetWindowSize(size)
			return nil
		},
	},
	{
		Name: "window.theme", Section: SectionWindow, Key: KeyTheme,
		Description: "color theme: light or dark",
		get:         func(s *Settings) any { return s.Theme() },
		set: func(s *Settings, v string) error {
			theme, err := ParseThemeVariant(v)
			if err != nil {
				return err
			}
			s.SetTheme(theme)
			return nil
		},
	},
	{
		Name: "window.csd", Section: SectionWindow, Key: KeyCSD,
		Description: "draw window decorations in the app",
		get:         func(s *Settings) any { return s.ClientSideDecorations() },
		set:         boolSetter((*Settings).SetClientSideDecorations),
	},
	{
		Name: "window.scale", Section: SectionWindow, Key: KeyScale,
		Description: "UI scale factor",
		get:         func(s *Settings) any { return s.Scale() },
		set: func(s *Settings, v string) error {
			scale, err := cast.ToFloat64E(v)
			if err != nil {
				return fmt.Errorf("invalid number %q", v)
			}
			// NaN fails this comparison too
			if !(scale > 0 && scale <= MaxScale) {
				return fmt.Errorf("scale %s out of range (0, %s]", v, strconv.FormatFloat(MaxScale, 'g', -1, 64))
			}
			s.SetScale(scale)
			return nil
		},
	},
	{
		Name: "craft.collapse-by-default", Section: SectionCraft, Key: KeyCollapseByDefault,
		Description: "collapse crafting trees when opened",
		get:         func(s *Settings) any { return s.CollapseTreesByDefault() },
		set:         boolSetter((*Settings).SetCollapseTreesByDefault),
	},
	{
		Name: "craft.ignore-hidden-in-trees-export", Section: SectionCraft, Key: KeyIgnoreHiddenInTreesExport,
		Description: "leave collapsed items out of tree exports",
		get:         func(s *Settings) any { return s.IgnoreHiddenInTreesExport() },
		set:         boolSetter((*Settings).SetIgnoreHiddenInTreesExport),
	},
	{
		Name: "craft.non-guaranteed-as-base", Section: SectionCraft, Key: KeyNonGuaranteedAsBase,
		Description: "treat items with a non-guaranteed recipe output as base items",
		get:         func(s *Settings) any { return s.TreatNonGuaranteedItemsAsBase() },
		set:         boolSetter((*Settings).SetTreatNonGuaranteedItemsAsBase),
	},
	{
		Name: "tasks.filter", Section: SectionTasks, Key: KeyFilter,
		Description: "only list tasks matching the stored skill levels",
		get:         func(s *Settings) any { return s.FilterTasks() },
		set:         boolSetter((*Settings).SetFilterTasks),
	},
}

// Fields returns every named setting in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// FieldNames returns the names of every named setting in display order.
func FieldNames() []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names
}

// LookupField finds a field by name, ignoring case.
func LookupField(name string) (Field, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Snapshot returns the effective value of every setting, keyed by section
// and key as they appear in the settings file. Skill ids are rendered as
// strings so the result can be encoded by any codec.
func (s *Settings) Snapshot() map[string]map[string]any {
	out := make(map[string]map[string]any)
	put := func(section, key string, value any) {
		if _, ok := out[section]; !ok {
			out[section] = make(map[string]any)
		}
		out[section][key] = value
	}

	for _, f := range fields {
		value := f.get(s)
		if theme, ok := value.(ThemeVariant); ok {
			value = int(theme)
		}
		put(f.Section, f.Key, value)
	}

	levels := make(map[string]uint)
	for id, level := range s.SkillLevels() {
		levels[strconv.Itoa(id)] = level
	}
	put(SectionTasks, KeySkillLevels, levels)
	return out
}

func boolSetter(setter func(*Settings, bool)) func(*Settings, string) error {
	return func(s *Settings, v string) error {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return fmt.Errorf("invalid boolean %q", v)
		}
		setter(s, b)
		return nil
	}
}

// parsePositiveInt reads v as a decimal integer; leading zeros do not
// switch the base.
func parsePositiveInt(v string) (int, error) {
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", v)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got %d", i)
	}
	return i, nil
}
