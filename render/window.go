package render

import (
	"math"

	"fyne.io/fyne/v2"
	"github.com/bitplanner/bitplanner/settings"
)

// ApplyWindowSize resizes w to the stored window size.
func ApplyWindowSize(w fyne.Window, s *settings.Settings) {
	size := s.WindowSize()
	w.Resize(fyne.NewSize(float32(size.Width), float32(size.Height)))
}

// RememberWindowSize stores the current size of w. A window that has not
// been laid out yet is ignored.
func RememberWindowSize(w fyne.Window, s *settings.Settings) {
	size := w.Canvas().Size()
	width := int(math.Round(float64(size.Width)))
	height := int(math.Round(float64(size.Height)))
	if width <= 0 || height <= 0 {
		return
	}
	s.SetWindowSize(settings.Size{Width: width, Height: height})
}
