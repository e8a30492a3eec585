package render

import (
	"fyne.io/fyne/v2/app"
	"github.com/bitplanner/bitplanner/settings"
	"github.com/sirupsen/logrus"
)

const (
	AppID       = "io.github.bitplanner"
	WindowTitle = "BitPlanner settings"
)

// Run opens the settings window and blocks until it is closed. The window
// size and every change are saved on close.
func Run(s *settings.Settings) {
	a := app.NewWithID(AppID)
	a.Settings().SetTheme(NewMainTheme(s))

	w := a.NewWindow(WindowTitle)
	panel := NewPanel(s)
	panel.OnThemeChanged = func() {
		a.Settings().SetTheme(NewMainTheme(s))
	}
	w.SetContent(panel.Form)
	ApplyWindowSize(w, s)

	w.SetCloseIntercept(func() {
		RememberWindowSize(w, s)
		s.Save()
		w.Close()
	})

	logrus.WithField("csd", s.ClientSideDecorations()).Debug("opening settings window")
	w.ShowAndRun()
}
