package render

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/bitplanner/bitplanner/settings"
)

// MainTheme pins the app to the stored theme variant and scales every size by
// the stored UI scale.
type MainTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
	scale   float32
}

// NewMainTheme builds the theme from the current settings.
func NewMainTheme(s *settings.Settings) *MainTheme {
	scale := float32(s.Scale())
	if math.IsNaN(float64(scale)) || scale <= 0 {
		scale = 1
	}
	return &MainTheme{
		Theme:   theme.DefaultTheme(),
		variant: Variant(s.Theme()),
		scale:   scale,
	}
}

// Variant maps a stored theme to the fyne variant.
func Variant(t settings.ThemeVariant) fyne.ThemeVariant {
	if t == settings.ThemeDark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

func defaultThemeSizes() map[fyne.ThemeSizeName]float32 {
	return map[fyne.ThemeSizeName]float32{
		theme.SizeNameInlineIcon:         float32(18),
		theme.SizeNameInnerPadding:       float32(6),
		theme.SizeNameLineSpacing:        float32(4),
		theme.SizeNamePadding:            float32(4),
		theme.SizeNameScrollBar:          float32(10),
		theme.SizeNameScrollBarSmall:     float32(2),
		theme.SizeNameSeparatorThickness: float32(1),
		theme.SizeNameText:               float32(16),
		theme.SizeNameHeadingText:        float32(30.6),
		theme.SizeNameSubHeadingText:     float32(24),
		theme.SizeNameCaptionText:        float32(14),
		theme.SizeNameInputBorder:        float32(2),
	}
}

func (m *MainTheme) Size(name fyne.ThemeSizeName) float32 {
	size, ok := defaultThemeSizes()[name]
	if !ok {
		size = m.Theme.Size(name)
	}
	return size * m.scale
}

// Color ignores the variant requested by fyne in favor of the stored one.
func (m *MainTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	dark := m.variant == theme.VariantDark
	switch name {
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x3d, G: 0x9f, B: 0xff, A: 0xff}
	case theme.ColorNameForeground:
		if dark {
			return color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
		}
		return color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	case theme.ColorNameBackground:
		if dark {
			return color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
		}
		return color.NRGBA{R: 0xf8, G: 0xf8, B: 0xf8, A: 0xff}
	case theme.ColorNameInputBackground:
		if dark {
			return color.NRGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 0xff}
		}
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	default:
		return m.Theme.Color(name, m.variant)
	}
}
