package dialogs

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// ColorPicker opens the Fyne colour picker over a window
type ColorPicker struct {
	parent fyne.Window
	title  string
}

// NewColorPicker creates a picker that shows its dialog over parent
func NewColorPicker(parent fyne.Window) *ColorPicker {
	return &ColorPicker{parent: parent, title: "Choose Color"}
}

// PickColor shows the picker seeded with initial. onPicked runs when the user
// confirms; cancelling closes the dialog without calling it.
func (p *ColorPicker) PickColor(initial color.Color, onPicked func(color.Color)) {
	picker := dialog.NewColorPicker(p.title, "", func(c color.Color) {
		if c != nil {
			onPicked(c)
		}
	}, p.parent)
	picker.Advanced = true
	if initial != nil {
		picker.SetColor(initial)
	}
	picker.Show()
}
