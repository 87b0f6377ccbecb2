package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// AppTheme is the application-wide Fyne theme. Its colours come from the
// palette last applied through the registry.
type AppTheme struct {
	app     fyne.App
	palette Palette
}

// NewAppTheme creates a theme for a showing the light palette
func NewAppTheme(a fyne.App) *AppTheme {
	return &AppTheme{app: a, palette: LightPalette}
}

func (m *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m *AppTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return m.palette.Color(RoleBackground)
	case theme.ColorNameForeground:
		return m.palette.Color(RoleForeground)
	case theme.ColorNameInputBackground, theme.ColorNameMenuBackground,
		theme.ColorNameOverlayBackground, theme.ColorNameHeaderBackground,
		theme.ColorNameButton:
		return m.palette.Color(RolePanel)
	case theme.ColorNameSelection:
		return m.palette.Color(RoleSelection)
	}
	return theme.DefaultTheme().Color(name, m.palette.Variant)
}

func (m *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}

// Palette returns the palette the theme draws with
func (m *AppTheme) Palette() Palette {
	return m.palette
}

// ApplyPalette switches palettes and asks the app to redraw
func (m *AppTheme) ApplyPalette(p Palette) {
	m.palette = p
	if m.app != nil {
		m.app.Settings().SetTheme(m)
	}
}

// ApplyTheme installs the theme and the application icon
func (m *AppTheme) ApplyTheme(a fyne.App) {
	m.app = a
	a.Settings().SetTheme(m)
	a.SetIcon(theme.DocumentCreateIcon())
}
