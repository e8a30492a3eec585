package store

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValueFallsBackToDefault(t *testing.T) {
	cfg := NewConfigFile()

	assert.Equal(t, 640, cfg.GetValue("Window", "Width", 640))
	assert.False(t, cfg.HasSection("Window"))

	cfg.SetValue("Window", "Width", 800)
	assert.Equal(t, 800, cfg.GetValue("Window", "Width", 640))
	assert.Equal(t, 720, cfg.GetValue("Window", "Height", 720))
	assert.True(t, cfg.HasSectionKey("Window", "Width"))
	assert.False(t, cfg.HasSectionKey("Window", "Height"))
}

func TestSetNilErasesKey(t *testing.T) {
	cfg := NewConfigFile()
	cfg.SetValue("Craft", "CollapseByDefault", true)
	cfg.SetValue("Craft", "NonGuaranteedAsBase", false)

	cfg.SetValue("Craft", "CollapseByDefault", nil)
	assert.False(t, cfg.HasSectionKey("Craft", "CollapseByDefault"))
	assert.True(t, cfg.HasSection("Craft"))

	cfg.SetValue("Craft", "NonGuaranteedAsBase", nil)
	assert.False(t, cfg.HasSection("Craft"), "empty section should be dropped")

	// erasing from a missing section is a no-op
	cfg.SetValue("Nope", "Key", nil)
	assert.Empty(t, cfg.Sections())
}

func TestSectionsAndKeysAreSorted(t *testing.T) {
	cfg := NewConfigFile()
	cfg.SetValue("Window", "Width", 1)
	cfg.SetValue("Tasks", "Filter", true)
	cfg.SetValue("Craft", "CollapseByDefault", true)
	cfg.SetValue("Window", "Height", 2)
	cfg.SetValue("Window", "CSD", false)

	assert.Equal(t, []string{"Craft", "Tasks", "Window"}, cfg.Sections())
	assert.Equal(t, []string{"CSD", "Height", "Width"}, cfg.SectionKeys("Window"))
	assert.Empty(t, cfg.SectionKeys("Missing"))

	cfg.EraseSection("Tasks")
	assert.Equal(t, []string{"Craft", "Window"}, cfg.Sections())

	cfg.Clear()
	assert.Empty(t, cfg.Sections())
}

func TestTypedGetters(t *testing.T) {
	cfg := NewConfigFile()
	cfg.SetValue("Window", "Width", 1024)
	cfg.SetValue("Window", "Scale", 1.25)
	cfg.SetValue("Window", "CSD", true)
	cfg.SetValue("Window", "Theme", "not a number")

	assert.Equal(t, 1024, cfg.GetInt("Window", "Width", 640))
	assert.Equal(t, 720, cfg.GetInt("Window", "Height", 720))
	assert.InDelta(t, 1.25, cfg.GetFloat("Window", "Scale", 1.0), 1e-9)
	assert.True(t, cfg.GetBool("Window", "CSD", false))

	// wrong type falls back to the default
	assert.Equal(t, 0, cfg.GetInt("Window", "Theme", 0))
	assert.False(t, cfg.GetBool("Window", "Theme", false))
}

func TestGetIntUintMap(t *testing.T) {
	cfg := NewConfigFile()

	def := map[int]uint{}
	assert.Equal(t, def, cfg.GetIntUintMap("Tasks", "SkillLevels", def))

	stored := map[int]uint{1: 10, 7: 3}
	cfg.SetValue("Tasks", "SkillLevels", stored)
	got := cfg.GetIntUintMap("Tasks", "SkillLevels", def)
	assert.Equal(t, stored, got)

	// the result is a copy
	got[1] = 99
	assert.Equal(t, uint(10), cfg.GetIntUintMap("Tasks", "SkillLevels", def)[1])

	cfg.SetValue("Tasks", "SkillLevels", map[any]any{2: 5, "bad": 1, 3: -1})
	assert.Equal(t, map[int]uint{2: 5}, cfg.GetIntUintMap("Tasks", "SkillLevels", def))

	cfg.SetValue("Tasks", "SkillLevels", 42)
	assert.Equal(t, def, cfg.GetIntUintMap("Tasks", "SkillLevels", def))
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := NewConfigFile()
	cfg.SetValue("Window", "Width", 800)
	cfg.SetValue("Window", "Scale", 1.5)
	cfg.SetValue("Window", "CSD", false)
	cfg.SetValue("Tasks", "SkillLevels", map[int]uint{3: 12, 11: 4})
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Window:")
	assert.Contains(t, string(data), "SkillLevels:")

	loaded := NewConfigFile()
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, []string{"Tasks", "Window"}, loaded.Sections())
	assert.Equal(t, 800, loaded.GetInt("Window", "Width", 0))
	assert.InDelta(t, 1.5, loaded.GetFloat("Window", "Scale", 0), 1e-9)
	assert.False(t, loaded.GetBool("Window", "CSD", true))
	assert.Equal(t, map[int]uint{3: 12, 11: 4}, loaded.GetIntUintMap("Tasks", "SkillLevels", nil))
}

func TestSaveOverwritesPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := NewConfigFile()
	cfg.SetValue("Window", "Width", 800)
	require.NoError(t, cfg.Save(path))

	cfg.SetValue("Window", "Width", nil)
	cfg.SetValue("Tasks", "Filter", true)
	require.NoError(t, cfg.Save(path))

	loaded := NewConfigFile()
	require.NoError(t, loaded.Load(path))
	assert.False(t, loaded.HasSection("Window"))
	assert.True(t, loaded.GetBool("Tasks", "Filter", false))
}

func TestLoadMissingFile(t *testing.T) {
	cfg := NewConfigFile()
	cfg.SetValue("Window", "Width", 800)

	err := cfg.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, cfg.Sections(), "failed load leaves the store empty")
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Window: [1, 2\n"), 0o644))

	cfg := NewConfigFile()
	err := cfg.Load(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, fs.ErrNotExist)
	assert.Empty(t, cfg.Sections())
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("\n"), 0o644))

	cfg := NewConfigFile()
	require.NoError(t, cfg.Load(path))
	assert.Empty(t, cfg.Sections())
}

func TestDefaultConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, ".config"))

	path := DefaultConfigPath()
	assert.Equal(t, ConfigFileName, filepath.Base(path))
	assert.Equal(t, AppDirName, filepath.Base(filepath.Dir(path)))
}
