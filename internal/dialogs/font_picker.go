package dialogs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ispapp/styledit/internal/styling"
)

// Font sizes accepted by the picker
const (
	MinFontSize = 1
	MaxFontSize = 200
)

// ParseFontSize validates the text of the size entry
func ParseFontSize(value string) (int, error) {
	size, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.New("size must be a whole number")
	}
	if size < MinFontSize || size > MaxFontSize {
		return 0, fmt.Errorf("size must be between %d and %d", MinFontSize, MaxFontSize)
	}
	return size, nil
}

// ParseFontForm builds a font from the picker fields
func ParseFontForm(family, size, weight, slant string) (styling.Font, error) {
	family = strings.TrimSpace(family)
	if family == "" {
		return styling.Font{}, errors.New("choose a font family")
	}
	n, err := ParseFontSize(size)
	if err != nil {
		return styling.Font{}, err
	}
	if weight != styling.WeightBold {
		weight = styling.WeightNormal
	}
	if slant != styling.SlantItalic {
		slant = styling.SlantRoman
	}
	return styling.Font{Family: family, Size: n, Weight: weight, Slant: slant}, nil
}

// FontPicker shows a form dialog for choosing family, size, weight and slant
type FontPicker struct {
	parent  fyne.Window
	library *FontLibrary
}

// NewFontPicker creates a picker offering the families in library
func NewFontPicker(parent fyne.Window, library *FontLibrary) *FontPicker {
	if library == nil {
		library = NewFontLibrary(nil)
	}
	return &FontPicker{parent: parent, library: library}
}

// PickFont shows the form seeded with initial. onPicked runs when the user
// confirms a valid font; cancelling closes the dialog without calling it.
func (p *FontPicker) PickFont(initial styling.Font, onPicked func(styling.Font)) {
	families := p.library.Families()
	if initial.Family != "" && !containsString(families, initial.Family) {
		families = append([]string{initial.Family}, families...)
	}

	familySelect := widget.NewSelect(families, nil)
	familySelect.SetSelected(initial.Family)

	sizeEntry := widget.NewEntry()
	sizeEntry.SetText(strconv.Itoa(initial.Size))
	sizeEntry.Validator = func(s string) error {
		_, err := ParseFontSize(s)
		return err
	}

	weightSelect := widget.NewSelect([]string{styling.WeightNormal, styling.WeightBold}, nil)
	weightSelect.SetSelected(initial.Weight)

	slantSelect := widget.NewSelect([]string{styling.SlantRoman, styling.SlantItalic}, nil)
	slantSelect.SetSelected(initial.Slant)

	items := []*widget.FormItem{
		widget.NewFormItem("Family", familySelect),
		widget.NewFormItem("Size", sizeEntry),
		widget.NewFormItem("Weight", weightSelect),
		widget.NewFormItem("Slant", slantSelect),
	}

	form := dialog.NewForm("Choose Font", "OK", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		font, err := ParseFontForm(familySelect.Selected, sizeEntry.Text, weightSelect.Selected, slantSelect.Selected)
		if err != nil {
			dialog.ShowError(err, p.parent)
			return
		}
		onPicked(font)
	}, p.parent)
	form.Resize(fyne.NewSize(360, 280))
	form.Show()
}
