package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ispapp/styledit/internal/data"
	"github.com/ispapp/styledit/internal/dialogs"
	"github.com/ispapp/styledit/internal/logging"
	"github.com/ispapp/styledit/internal/settings"
	"github.com/ispapp/styledit/internal/styling"
	"github.com/ispapp/styledit/internal/ui/theme"
	"github.com/ispapp/styledit/internal/widgets"
	"github.com/ispapp/styledit/pkg/styledtext"
)

// MainUI is the editor window and everything wired into it
type MainUI struct {
	App       fyne.App
	Window    fyne.Window
	Editor    *styledtext.Editor
	Manager   *styling.Manager
	Status    *widgets.StatusPanel
	Themes    *theme.Registry
	Exporter  *dialogs.ImageExporter
	Fonts     *dialogs.FontLibrary
	Shortcuts *KeyboardShortcuts

	scroll *container.Scroll
	logger zerolog.Logger
}

// NewMainUI builds the main window. appTheme may be nil when the app keeps
// the stock Fyne theme.
func NewMainUI(a fyne.App, appTheme *theme.AppTheme, logger zerolog.Logger) *MainUI {
	cfg := settings.RefreshCurrent()

	// Initialize global data bindings
	data.Init()

	u := &MainUI{App: a, logger: logger}
	u.Window = a.NewWindow("Code Preview")

	u.Fonts = dialogs.NewFontLibrary(cfg.FontDirs)

	u.Editor = styledtext.NewEditor()
	u.Editor.SetFontResolver(u.Fonts.Resource)

	u.Status = widgets.NewStatusPanel()
	u.Manager = styling.NewManager(u.Editor,
		dialogs.NewColorPicker(u.Window),
		dialogs.NewFontPicker(u.Window, u.Fonts),
		u.Status)

	u.Editor.SetOnSelectionChanged(u.selectionChanged)
	u.scroll = container.NewScroll(u.Editor)
	u.Editor.SetOnChanged(func(string) {
		// the scroll container only re-reads the editor's MinSize on refresh
		u.scroll.Refresh()
		u.updateStats()
	})

	u.Exporter = dialogs.NewImageExporter(u.Window, u.scroll, u.Editor)
	u.Exporter.SetDefaultFormat(cfg.ExportFormat)

	u.Themes = theme.NewRegistry()
	u.setLogger(logger)
	u.applyDefaults(cfg)
	if appTheme != nil {
		u.Themes.Register(appTheme)
	}
	u.Themes.Register(theme.ThemeableFunc(u.applyEditorPalette))
	u.Themes.Register(u.Status)
	u.Themes.Apply(cfg.Theme)

	fontBtn := widget.NewButton("Choose Font", u.Manager.RequestFontChange)
	colorBtn := widget.NewButton("Choose Color", u.Manager.RequestColorChange)
	buttons := container.NewGridWrap(fyne.NewSize(150, fontBtn.MinSize().Height), fontBtn, colorBtn)
	bottom := container.NewBorder(nil, nil, nil, buttons, u.Status)

	u.Window.SetContent(container.NewBorder(nil, bottom, nil, nil, u.scroll))

	u.Shortcuts = NewKeyboardShortcuts(u)
	u.Shortcuts.Register()
	u.Window.SetMainMenu(u.buildMenu())

	u.Window.Resize(cfg.WindowSize())
	u.Window.SetOnClosed(func() {
		size := u.Window.Canvas().Size()
		cfg.WindowWidth, cfg.WindowHeight = int(size.Width), int(size.Height)
		if err := settings.Save(); err != nil {
			u.logger.Error().Err(err).Msg("failed to save settings")
		}
	})
	u.Window.Canvas().Focus(u.Editor)
	u.updateStats()

	return u
}

func (u *MainUI) buildMenu() *fyne.MainMenu {
	exportItem := fyne.NewMenuItem("Export Image...", u.ExportImage)
	exportItem.Shortcut = u.Shortcuts.Lookup("Export Image")
	prefsItem := fyne.NewMenuItem("Preferences...", u.ShowPreferences)
	prefsItem.Shortcut = u.Shortcuts.Lookup("Preferences")
	exitItem := fyne.NewMenuItem("Exit", func() {
		u.App.Quit()
	})
	exitItem.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		exportItem,
		prefsItem,
		fyne.NewMenuItemSeparator(),
		exitItem,
	)

	fontItem := fyne.NewMenuItem("Choose Font...", u.Manager.RequestFontChange)
	fontItem.Shortcut = u.Shortcuts.Lookup("Choose Font")
	colorItem := fyne.NewMenuItem("Choose Color...", u.Manager.RequestColorChange)
	colorItem.Shortcut = u.Shortcuts.Lookup("Choose Color")

	formatMenu := fyne.NewMenu("Format",
		fontItem,
		colorItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Select All", u.Editor.SelectAll),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Light Theme", func() { u.SetTheme("light") }),
		fyne.NewMenuItem("Dark Theme", func() { u.SetTheme("dark") }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("About", "Code Preview\n\nSelect text, then choose a font or a colour for it.", u.Window)
		}),
	)

	return fyne.NewMainMenu(fileMenu, formatMenu, viewMenu, helpMenu)
}

// ExportImage saves a picture of the visible editor area
func (u *MainUI) ExportImage() {
	u.Exporter.ExportVisibleAreaAsImage()
}

// ShowPreferences opens the settings dialog
func (u *MainUI) ShowPreferences() {
	widgets.ShowSettingsDialog(u.Window, u.applySettings)
}

// SetTheme switches the window to the named theme and remembers the choice.
// Unknown names are ignored.
func (u *MainUI) SetTheme(name string) bool {
	if !u.Themes.Apply(name) {
		return false
	}
	settings.RefreshCurrent().Theme = name
	return true
}

func (u *MainUI) applySettings(s *settings.AppSettings) {
	if lvl, ok := logging.ParseLevel(s.LogLevel); ok {
		u.setLogger(u.logger.Level(lvl))
	}
	u.Themes.Apply(s.Theme)
	u.applyDefaults(s)
	u.Exporter.SetDefaultFormat(s.ExportFormat)
}

// setLogger replaces the root logger and every component logger derived
// from it
func (u *MainUI) setLogger(l zerolog.Logger) {
	u.logger = l
	u.Fonts.SetLogger(logging.Component(l, "fonts"))
	u.Manager.SetLogger(logging.Component(l, "styling"))
	u.Exporter.SetLogger(logging.Component(l, "export"))
	u.Themes.SetLogger(logging.Component(l, "theme"))
}

// applyDefaults sets the style reported and drawn where no overlay applies
func (u *MainUI) applyDefaults(s *settings.AppSettings) {
	font := styling.Font{
		Family: s.DefaultFontFamily,
		Size:   s.DefaultFontSize,
		Weight: styling.WeightNormal,
		Slant:  styling.SlantRoman,
	}
	u.Manager.SetDefaults(styling.DefaultColor, font)
	c, font := u.Manager.Defaults()
	u.Status.SetDefaultColor(c)
	u.Editor.SetDefaultFont(font.TextFont())
	u.Editor.SetTabSize(s.TabSize)
	u.Editor.SetWordWrap(s.WordWrap)
	if s.WordWrap {
		u.scroll.Direction = container.ScrollVerticalOnly
	} else {
		u.scroll.Direction = container.ScrollBoth
	}
	u.scroll.Refresh()
	u.Manager.OnSelectionChanged()
}

func (u *MainUI) applyEditorPalette(p theme.Palette) {
	u.Editor.SetTheme(&styledtext.Theme{
		Name:       p.Name,
		Background: p.Color(theme.RoleBackground),
		Foreground: p.Color(theme.RoleForeground),
		Selection:  p.Color(theme.RoleSelection),
		Caret:      p.Color(theme.RoleCaret),
	})
}

func (u *MainUI) selectionChanged() {
	u.Manager.OnSelectionChanged()
	u.updateStats()
	u.keepCaretVisible()
}

// keepCaretVisible scrolls the editor just far enough to show the caret
func (u *MainUI) keepCaretVisible() {
	caret, height := u.Editor.CaretScreenPosition()
	view := u.App.Driver().AbsolutePositionForObject(u.scroll)
	top := caret.Y - view.Y
	viewHeight := u.scroll.Size().Height

	offset := u.scroll.Offset
	switch {
	case top < 0:
		offset.Y += top
	case top+height > viewHeight:
		offset.Y += top + height - viewHeight
	default:
		return
	}
	u.scroll.ScrollToOffset(offset)
}

func (u *MainUI) updateStats() {
	stats := fmt.Sprintf("%d characters", u.Editor.Len())
	if r, ok := u.Editor.SelectionRange(); ok {
		stats += fmt.Sprintf(", %d selected", r.Len())
	}
	u.Status.ShowStats(stats)
}
