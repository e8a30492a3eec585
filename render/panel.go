package render

import (
	"fmt"

	"fyne.io/fyne/v2/widget"
	"github.com/bitplanner/bitplanner/settings"
)

const (
	minScale  = 0.5
	scaleStep = 0.25
)

var themeOptions = []string{"Light", "Dark"}

// Panel is the settings form. Every widget writes through to the settings
// as soon as it changes.
type Panel struct {
	Theme               *widget.Select
	Scale               *widget.Slider
	ScaleLabel          *widget.Label
	CSD                 *widget.Check
	CollapseTrees       *widget.Check
	IgnoreHidden        *widget.Check
	NonGuaranteedAsBase *widget.Check
	FilterTasks         *widget.Check
	Form                *widget.Form

	// OnThemeChanged runs after the theme or the scale changed.
	OnThemeChanged func()
}

func NewPanel(s *settings.Settings) *Panel {
	p := &Panel{}

	p.Theme = widget.NewSelect(themeOptions, nil)
	p.Theme.Selected = themeOptions[themeIndex(s.Theme())]
	p.Theme.OnChanged = func(selected string) {
		for i, option := range themeOptions {
			if option == selected {
				s.SetTheme(settings.ThemeVariant(i))
			}
		}
		p.themeChanged()
	}

	p.ScaleLabel = widget.NewLabel(formatScale(s.Scale()))
	p.Scale = widget.NewSlider(minScale, settings.MaxScale)
	p.Scale.Step = scaleStep
	p.Scale.Value = s.Scale()
	p.Scale.OnChanged = func(value float64) {
		s.SetScale(value)
		p.ScaleLabel.SetText(formatScale(value))
		p.themeChanged()
	}

	p.CSD = newCheck(s.ClientSideDecorations(), s.SetClientSideDecorations)
	if s.Platform().IsAndroid() {
		p.CSD.Disable()
	}
	p.CollapseTrees = newCheck(s.CollapseTreesByDefault(), s.SetCollapseTreesByDefault)
	p.IgnoreHidden = newCheck(s.IgnoreHiddenInTreesExport(), s.SetIgnoreHiddenInTreesExport)
	p.NonGuaranteedAsBase = newCheck(s.TreatNonGuaranteedItemsAsBase(), s.SetTreatNonGuaranteedItemsAsBase)
	p.FilterTasks = newCheck(s.FilterTasks(), s.SetFilterTasks)

	p.Form = widget.NewForm(
		widget.NewFormItem("Theme", p.Theme),
		widget.NewFormItem("Scale", p.Scale),
		widget.NewFormItem("", p.ScaleLabel),
		widget.NewFormItem("Client-side decorations", p.CSD),
		widget.NewFormItem("Collapse trees by default", p.CollapseTrees),
		widget.NewFormItem("Ignore hidden items in tree export", p.IgnoreHidden),
		widget.NewFormItem("Treat non-guaranteed items as base", p.NonGuaranteedAsBase),
		widget.NewFormItem("Filter tasks by skill level", p.FilterTasks),
	)
	return p
}

func (p *Panel) themeChanged() {
	if p.OnThemeChanged != nil {
		p.OnThemeChanged()
	}
}

func newCheck(checked bool, set func(bool)) *widget.Check {
	check := widget.NewCheck("", nil)
	check.Checked = checked
	check.OnChanged = set
	return check
}

func themeIndex(t settings.ThemeVariant) int {
	if t == settings.ThemeDark {
		return 1
	}
	return 0
}

func formatScale(scale float64) string {
	return fmt.Sprintf("%.2fx", scale)
}
