package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Shortcut pairs a key combination with the action it runs
type Shortcut struct {
	Name     string
	Shortcut *desktop.CustomShortcut
	Action   func()
}

// KeyboardShortcuts handles the application's keyboard shortcuts
type KeyboardShortcuts struct {
	ui       *MainUI
	bindings []Shortcut
}

// NewKeyboardShortcuts creates the shortcut handler for ui
func NewKeyboardShortcuts(ui *MainUI) *KeyboardShortcuts {
	ks := &KeyboardShortcuts{ui: ui}
	ks.bindings = []Shortcut{
		// Ctrl+Shift+F / Cmd+Shift+F - Choose Font
		{Name: "Choose Font", Shortcut: shortcut(fyne.KeyF, fyne.KeyModifierShift), Action: ui.Manager.RequestFontChange},
		// Ctrl+Shift+C / Cmd+Shift+C - Choose Color
		{Name: "Choose Color", Shortcut: shortcut(fyne.KeyC, fyne.KeyModifierShift), Action: ui.Manager.RequestColorChange},
		// Ctrl+E / Cmd+E - Export Image
		{Name: "Export Image", Shortcut: shortcut(fyne.KeyE, 0), Action: ui.ExportImage},
		// Ctrl+T / Cmd+T - Toggle Theme
		{Name: "Toggle Theme", Shortcut: shortcut(fyne.KeyT, 0), Action: ks.toggleTheme},
		// Ctrl+, / Cmd+, - Preferences
		{Name: "Preferences", Shortcut: shortcut(fyne.KeyComma, 0), Action: ui.ShowPreferences},
	}
	return ks
}

func shortcut(key fyne.KeyName, extra fyne.KeyModifier) *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault | extra}
}

// Register adds every shortcut to the window canvas and to the editor, which
// keeps shortcuts to itself while focused.
func (ks *KeyboardShortcuts) Register() {
	canvas := ks.ui.Window.Canvas()
	for _, b := range ks.bindings {
		action := b.Action
		handler := func(fyne.Shortcut) { action() }
		canvas.AddShortcut(b.Shortcut, handler)
		ks.ui.Editor.AddShortcut(b.Shortcut, handler)
	}
}

// Lookup returns the key combination bound to name
func (ks *KeyboardShortcuts) Lookup(name string) *desktop.CustomShortcut {
	for _, b := range ks.bindings {
		if b.Name == name {
			return b.Shortcut
		}
	}
	return nil
}

func (ks *KeyboardShortcuts) toggleTheme() {
	if ks.ui.Themes.Current().Name == "dark" {
		ks.ui.SetTheme("light")
	} else {
		ks.ui.SetTheme("dark")
	}
}
