package styledtext

import (
	"fmt"
	"image/color"
)

// Theme holds the colours the editor paints itself with. Range styles
// override Foreground for the text they cover.
type Theme struct {
	Name       string
	Background color.Color
	Foreground color.Color
	Selection  color.Color
	Caret      color.Color
}

// GetDefaultTheme returns the light theme used until a palette is applied.
func GetDefaultTheme() *Theme {
	return &Theme{
		Name:       "Light",
		Background: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Foreground: color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		Selection:  color.NRGBA{R: 173, G: 214, B: 255, A: 255},
		Caret:      color.NRGBA{R: 0, G: 0, B: 0, A: 255},
	}
}

// GetDarkTheme returns a dark theme for the editor
func GetDarkTheme() *Theme {
	return &Theme{
		Name:       "Dark",
		Background: color.NRGBA{R: 30, G: 30, B: 30, A: 255},
		Foreground: color.NRGBA{R: 212, G: 212, B: 212, A: 255},
		Selection:  color.NRGBA{R: 38, G: 79, B: 120, A: 255},
		Caret:      color.NRGBA{R: 212, G: 212, B: 212, A: 255},
	}
}

// ColorToHex converts a colour to its lower-case "#rrggbb" form.
func ColorToHex(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
