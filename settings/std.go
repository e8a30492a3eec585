package settings

import "github.com/bitplanner/bitplanner/store"

var std = New(store.DefaultConfigPath())

// Default returns the process-wide settings.
func Default() *Settings {
	return std
}

// SetDefault replaces the process-wide settings, e.g. to point them at
// another file before the first Load.
func SetDefault(s *Settings) {
	std = s
}

// Load loads the process-wide settings. See Settings.Load.
func Load() {
	std.Load()
}

// Save flushes the process-wide settings. See Settings.Save.
func Save() {
	std.Save()
}
