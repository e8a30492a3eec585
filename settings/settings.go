// Package settings holds the user preferences of the planner: window
// geometry and look, crafting tree options and task options.
//
// Values are read from the in-memory store on every access and fall back to
// per-platform defaults. Setters only touch memory; Save flushes to disk.
package settings

import (
	"errors"
	"io/fs"

	"github.com/bitplanner/bitplanner/internal/platform"
	"github.com/bitplanner/bitplanner/store"
	"github.com/sirupsen/logrus"
)

const (
	SectionWindow = "Window"
	SectionCraft  = "Craft"
	SectionTasks  = "Tasks"

	KeyWidth                     = "Width"
	KeyHeight                    = "Height"
	KeyTheme                     = "Theme"
	KeyCSD                       = "CSD"
	KeyScale                     = "Scale"
	KeyCollapseByDefault         = "CollapseByDefault"
	KeyIgnoreHiddenInTreesExport = "IgnoreHiddenInTreesExport"
	KeyNonGuaranteedAsBase       = "NonGuaranteedAsBase"
	KeyFilter                    = "Filter"
	KeySkillLevels               = "SkillLevels"
)

const (
	DefaultWindowWidth               = 640
	DefaultWindowHeight              = 720
	DefaultTheme                     = ThemeLight
	DefaultScale                     = 1.0
	DefaultAndroidScale              = 1.5
	DefaultCollapseTrees             = false
	DefaultIgnoreHiddenInTreesExport = true
	DefaultNonGuaranteedAsBase       = true
	DefaultFilterTasks               = false
)

// Size is a window size in pixels.
type Size struct {
	Width  int `json:"width" yaml:"width" toml:"width"`
	Height int `json:"height" yaml:"height" toml:"height"`
}

// Settings is a typed view over a settings file.
type Settings struct {
	path     string
	platform platform.Platform
	file     *store.ConfigFile
}

type Option func(*Settings)

// WithPlatform overrides the detected platform.
func WithPlatform(p platform.Platform) Option {
	return func(s *Settings) {
		s.platform = p
	}
}

// New returns settings backed by the file at path. Nothing is read until Load.
func New(path string, opts ...Option) *Settings {
	s := &Settings{
		path:     path,
		platform: platform.Current(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Settings) Path() string {
	return s.path
}

func (s *Settings) Platform() platform.Platform {
	return s.platform
}

// Loaded reports whether Load has been called.
func (s *Settings) Loaded() bool {
	return s.file != nil
}

// Load creates the in-memory store and reads the settings file into it.
// Only the first call does anything. Read errors are logged and the store
// stays usable with defaults.
func (s *Settings) Load() {
	if s.file != nil {
		return
	}
	s.file = store.NewConfigFile()
	err := s.file.Load(s.path)
	switch {
	case err == nil:
		logrus.WithField("path", s.path).Debug("user config loaded")
	case errors.Is(err, fs.ErrNotExist):
		logrus.WithField("path", s.path).Info("no user config found, using defaults")
	default:
		logrus.WithError(err).Warn("failed to load user config")
	}
}

// Save writes every in-memory value to the settings file. Errors are logged.
func (s *Settings) Save() {
	if s.file == nil {
		logrus.WithField("path", s.path).Warn("failed to save user config: not loaded")
		return
	}
	if err := s.file.Save(s.path); err != nil {
		logrus.WithError(err).Warn("failed to save user config")
		return
	}
	logrus.WithField("path", s.path).Info("user config saved")
}

// Reset drops every stored value so defaults apply again.
func (s *Settings) Reset() {
	if s.file == nil {
		return
	}
	s.file.Clear()
}

func (s *Settings) WindowSize() Size {
	return Size{
		Width:  s.getInt(SectionWindow, KeyWidth, DefaultWindowWidth),
		Height: s.getInt(SectionWindow, KeyHeight, DefaultWindowHeight),
	}
}

func (s *Settings) SetWindowSize(size Size) {
	s.set(SectionWindow, KeyWidth, size.Width)
	s.set(SectionWindow, KeyHeight, size.Height)
}

func (s *Settings) Theme() ThemeVariant {
	return ThemeVariant(s.getInt(SectionWindow, KeyTheme, int(DefaultTheme)))
}

func (s *Settings) SetTheme(theme ThemeVariant) {
	s.set(SectionWindow, KeyTheme, int(theme))
}

// ClientSideDecorations reports whether the app draws its own title bar.
// Always false on Android, which has no window decorations.
func (s *Settings) ClientSideDecorations() bool {
	if s.platform.IsAndroid() {
		return false
	}
	return s.getBool(SectionWindow, KeyCSD, s.platform.DefaultCSD())
}

func (s *Settings) SetClientSideDecorations(enabled bool) {
	s.set(SectionWindow, KeyCSD, enabled)
}

// Scale is the UI scale factor.
func (s *Settings) Scale() float64 {
	return s.getFloat(SectionWindow, KeyScale, s.defaultScale())
}

func (s *Settings) SetScale(scale float64) {
	s.set(SectionWindow, KeyScale, scale)
}

func (s *Settings) CollapseTreesByDefault() bool {
	return s.getBool(SectionCraft, KeyCollapseByDefault, DefaultCollapseTrees)
}

func (s *Settings) SetCollapseTreesByDefault(collapse bool) {
	s.set(SectionCraft, KeyCollapseByDefault, collapse)
}

// IgnoreHiddenInTreesExport leaves collapsed-away items out of tree exports.
func (s *Settings) IgnoreHiddenInTreesExport() bool {
	return s.getBool(SectionCraft, KeyIgnoreHiddenInTreesExport, DefaultIgnoreHiddenInTreesExport)
}

func (s *Settings) SetIgnoreHiddenInTreesExport(ignore bool) {
	s.set(SectionCraft, KeyIgnoreHiddenInTreesExport, ignore)
}

// TreatNonGuaranteedItemsAsBase stops tree expansion at items whose recipe
// output is not guaranteed.
func (s *Settings) TreatNonGuaranteedItemsAsBase() bool {
	return s.getBool(SectionCraft, KeyNonGuaranteedAsBase, DefaultNonGuaranteedAsBase)
}

func (s *Settings) SetTreatNonGuaranteedItemsAsBase(asBase bool) {
	s.set(SectionCraft, KeyNonGuaranteedAsBase, asBase)
}

func (s *Settings) FilterTasks() bool {
	return s.getBool(SectionTasks, KeyFilter, DefaultFilterTasks)
}

func (s *Settings) SetFilterTasks(filter bool) {
	s.set(SectionTasks, KeyFilter, filter)
}

// SkillLevels returns a copy of the skill id to level mapping.
func (s *Settings) SkillLevels() map[int]uint {
	if s.file == nil {
		return map[int]uint{}
	}
	return s.file.GetIntUintMap(SectionTasks, KeySkillLevels, map[int]uint{})
}

// SkillLevel returns the level stored for skill id, or 0.
func (s *Settings) SkillLevel(id int) uint {
	return s.SkillLevels()[id]
}

func (s *Settings) SetSkillLevel(id int, level uint) {
	if s.file == nil {
		return
	}
	levels := s.SkillLevels()
	levels[id] = level
	s.file.SetValue(SectionTasks, KeySkillLevels, levels)
}

func (s *Settings) defaultScale() float64 {
	if s.platform.IsAndroid() {
		return DefaultAndroidScale
	}
	return DefaultScale
}

func (s *Settings) getInt(section, key string, def int) int {
	if s.file == nil {
		return def
	}
	return s.file.GetInt(section, key, def)
}

func (s *Settings) getBool(section, key string, def bool) bool {
	if s.file == nil {
		return def
	}
	return s.file.GetBool(section, key, def)
}

func (s *Settings) getFloat(section, key string, def float64) float64 {
	if s.file == nil {
		return def
	}
	return s.file.GetFloat(section, key, def)
}

func (s *Settings) set(section, key string, value any) {
	if s.file == nil {
		return
	}
	s.file.SetValue(section, key, value)
}
