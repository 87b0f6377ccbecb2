// Package styling records colour and font overlays against text ranges and
// answers which style applies at the current selection.
package styling

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/ispapp/styledit/pkg/styledtext"
)

var (
	// ErrEmptySelection is returned when a style is applied with nothing selected.
	ErrEmptySelection = errors.New("styling: empty selection")
	// ErrInvalidFont is returned for a font with no family or a non-positive size.
	ErrInvalidFont = errors.New("styling: invalid font")
	// ErrInvalidColor is returned for a nil colour.
	ErrInvalidColor = errors.New("styling: invalid colour")
)

// Kind tells which attribute an overlay carries
type Kind int

const (
	KindColor Kind = iota
	KindFont
)

func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindFont:
		return "font"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Font weights and slants understood by the font picker
const (
	WeightNormal = "normal"
	WeightBold   = "bold"
	SlantRoman   = "roman"
	SlantItalic  = "italic"
)

// Font is a font descriptor: family, size in points, weight and slant.
type Font struct {
	Family string
	Size   int
	Weight string
	Slant  string
}

// Validate checks the descriptor can be rendered
func (f Font) Validate() error {
	if f.Family == "" {
		return fmt.Errorf("%w: empty family", ErrInvalidFont)
	}
	if f.Size <= 0 {
		return fmt.Errorf("%w: size %d", ErrInvalidFont, f.Size)
	}
	return nil
}

// TextFont converts the descriptor to the editor's rendering form
func (f Font) TextFont() styledtext.TextFont {
	return styledtext.TextFont{
		Family: f.Family,
		Size:   float32(f.Size),
		Bold:   f.Weight == WeightBold,
		Italic: f.Slant == SlantItalic,
	}
}

var (
	// DefaultColor applies where no colour overlay covers the selection.
	DefaultColor = color.NRGBA{A: 255}
	// DefaultFont applies where no font overlay covers the selection.
	DefaultFont = Font{Family: "JetBrains Mono", Size: 12, Weight: WeightNormal, Slant: SlantRoman}
)

// Overlay is one style applied over one range. Range is the range at the
// time the overlay was created; the surface moves it as text is edited.
type Overlay struct {
	ID    styledtext.StyleID
	Kind  Kind
	Color color.NRGBA
	Font  Font
	Range styledtext.Range
}

// style returns the surface attributes for the overlay
func (o Overlay) style() styledtext.Style {
	if o.Kind == KindFont {
		tf := o.Font.TextFont()
		return styledtext.Style{Font: &tf}
	}
	return styledtext.Style{Color: o.Color}
}

// FormatColorStatus returns the colour status line, e.g. "Color: #ff0000"
func FormatColorStatus(c color.Color) string {
	return "Color: " + styledtext.ColorToHex(c)
}

// FormatFontStatus returns the font status line
func FormatFontStatus(f Font) string {
	return fmt.Sprintf("Font: %s, Size: %d, Weight: %s, Slant: %s", f.Family, f.Size, f.Weight, f.Slant)
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
