package settings

import (
	"fmt"
	"strconv"
	"strings"
)

// ThemeVariant is the color scheme of the UI. Stored as its integer value.
type ThemeVariant int

const (
	ThemeLight ThemeVariant = iota
	ThemeDark
)

func (t ThemeVariant) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return fmt.Sprintf("ThemeVariant(%d)", int(t))
	}
}

// ParseThemeVariant accepts a variant name or its stored integer value.
func ParseThemeVariant(s string) (ThemeVariant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || (ThemeVariant(i) != ThemeLight && ThemeVariant(i) != ThemeDark) {
		return 0, fmt.Errorf("invalid theme %q: want light or dark", s)
	}
	return ThemeVariant(i), nil
}
