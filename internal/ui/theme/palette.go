package theme

import (
	"image/color"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Role names a part of the UI a palette colours
type Role string

const (
	RoleBackground Role = "background"
	RoleForeground Role = "foreground"
	RolePanel      Role = "panel"
	RolePanelText  Role = "panel-text"
	RoleSelection  Role = "selection"
	RoleCaret      Role = "caret"
)

// Roles lists every role a palette must define
var Roles = []Role{RoleBackground, RoleForeground, RolePanel, RolePanelText, RoleSelection, RoleCaret}

// Palette maps each role to a colour
type Palette struct {
	Name    string
	Variant fyne.ThemeVariant
	Colors  map[Role]color.Color
}

// Color returns the colour for role, falling back to the foreground colour
func (p Palette) Color(role Role) color.Color {
	if c, ok := p.Colors[role]; ok {
		return c
	}
	return p.Colors[RoleForeground]
}

var (
	// LightPalette is the default palette
	LightPalette = Palette{
		Name:    "light",
		Variant: theme.VariantLight,
		Colors: map[Role]color.Color{
			RoleBackground: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			RoleForeground: color.NRGBA{R: 0, G: 0, B: 0, A: 255},
			RolePanel:      color.NRGBA{R: 240, G: 240, B: 240, A: 255},
			RolePanelText:  color.NRGBA{R: 33, G: 33, B: 33, A: 255},
			RoleSelection:  color.NRGBA{R: 173, G: 214, B: 255, A: 255},
			RoleCaret:      color.NRGBA{R: 0, G: 0, B: 0, A: 255},
		},
	}

	// DarkPalette is the dark palette
	DarkPalette = Palette{
		Name:    "dark",
		Variant: theme.VariantDark,
		Colors: map[Role]color.Color{
			RoleBackground: color.NRGBA{R: 30, G: 30, B: 30, A: 255},
			RoleForeground: color.NRGBA{R: 212, G: 212, B: 212, A: 255},
			RolePanel:      color.NRGBA{R: 45, G: 45, B: 48, A: 255},
			RolePanelText:  color.NRGBA{R: 204, G: 204, B: 204, A: 255},
			RoleSelection:  color.NRGBA{R: 38, G: 79, B: 120, A: 255},
			RoleCaret:      color.NRGBA{R: 212, G: 212, B: 212, A: 255},
		},
	}
)

var builtin = map[string]Palette{
	LightPalette.Name: LightPalette,
	DarkPalette.Name:  DarkPalette,
}

// Lookup returns the built-in palette called name
func Lookup(name string) (Palette, bool) {
	p, ok := builtin[name]
	return p, ok
}

// Names returns the built-in palette names, sorted
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
