package widgets

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ispapp/styledit/internal/settings"
)

// settingsFields are the editable controls of the preferences form
type settingsFields struct {
	fontFamily *widget.Entry
	fontSize   *widget.Entry
	tabSize    *widget.Entry
	wordWrap   *widget.Check
	fontDirs   *widget.Entry
	export     *widget.Select
	theme      *widget.Select
	logLevel   *widget.Select
	width      *widget.Entry
	height     *widget.Entry
}

func newSettingsFields() *settingsFields {
	return &settingsFields{
		fontFamily: widget.NewEntry(),
		fontSize:   widget.NewEntry(),
		tabSize:    widget.NewEntry(),
		wordWrap:   widget.NewCheck("Wrap long lines", nil),
		fontDirs:   widget.NewEntry(),
		export:     widget.NewSelect(settings.ExportFormats, nil),
		theme:      widget.NewSelect(settings.Themes, nil),
		logLevel:   widget.NewSelect([]string{"debug", "info", "warn", "error"}, nil),
		width:      widget.NewEntry(),
		height:     widget.NewEntry(),
	}
}

// load copies s into the controls
func (f *settingsFields) load(s *settings.AppSettings) {
	f.fontFamily.SetText(s.DefaultFontFamily)
	f.fontSize.SetText(s.GetDefaultFontSizeString())
	f.tabSize.SetText(s.GetTabSizeString())
	f.wordWrap.SetChecked(s.WordWrap)
	f.fontDirs.SetText(s.GetFontDirsString())
	f.export.SetSelected(s.ExportFormat)
	f.theme.SetSelected(s.Theme)
	f.logLevel.SetSelected(s.LogLevel)
	f.width.SetText(s.GetWindowWidthString())
	f.height.SetText(s.GetWindowHeightString())
}

// store copies the controls into s and returns every problem found
func (f *settingsFields) store(s *settings.AppSettings) []string {
	var errors []string

	s.DefaultFontFamily = strings.TrimSpace(f.fontFamily.Text)

	if err := s.SetDefaultFontSizeString(f.fontSize.Text); err != nil {
		errors = append(errors, "Invalid font size: "+err.Error())
	}

	if err := s.SetTabSizeString(f.tabSize.Text); err != nil {
		errors = append(errors, "Invalid tab size: "+err.Error())
	}

	s.WordWrap = f.wordWrap.Checked
	s.SetFontDirsString(f.fontDirs.Text)
	s.ExportFormat = f.export.Selected
	s.Theme = f.theme.Selected
	s.LogLevel = f.logLevel.Selected

	if err := s.SetWindowWidthString(f.width.Text); err != nil {
		errors = append(errors, "Invalid window width: "+err.Error())
	}

	if err := s.SetWindowHeightString(f.height.Text); err != nil {
		errors = append(errors, "Invalid window height: "+err.Error())
	}

	return append(errors, s.Validate()...)
}

// CreateSettingsForm creates the preferences content. onSaved runs after the
// settings file was written.
func CreateSettingsForm(parentWindow fyne.Window, onSaved func(*settings.AppSettings)) *container.Scroll {
	current := settings.RefreshCurrent()
	fields := newSettingsFields()
	fields.load(current)

	saveBtn := widget.NewButton("Save Settings", func() {
		// Work on a copy so a rejected form leaves the settings untouched
		edited := *current
		if errs := fields.store(&edited); len(errs) > 0 {
			errorMsg := "Please fix the following errors:\n\n"
			for _, err := range errs {
				errorMsg += "• " + err + "\n"
			}
			dialog.ShowError(errors.New(errorMsg), parentWindow)
			return
		}

		*current = edited
		if err := settings.Save(); err != nil {
			dialog.ShowError(err, parentWindow)
			return
		}
		if onSaved != nil {
			onSaved(current)
		}

		dialog.ShowInformation("Settings Saved", "All settings have been saved successfully!", parentWindow)
	})

	resetBtn := widget.NewButton("Reset to Defaults", func() {
		dialog.ShowConfirm("Reset Settings",
			"Are you sure you want to reset all settings to their default values?",
			func(confirmed bool) {
				if confirmed {
					fields.load(settings.DefaultSettings())
				}
			}, parentWindow)
	})

	editorSection := widget.NewCard("Editor Settings", "", container.NewGridWithColumns(2,
		widget.NewLabel("Default Font Family:"), fields.fontFamily,
		widget.NewLabel("Default Font Size:"), fields.fontSize,
		widget.NewLabel("Tab Size:"), fields.tabSize,
		widget.NewLabel("Word Wrap:"), fields.wordWrap,
		widget.NewLabel("Font Directories:"), fields.fontDirs,
	))

	exportSection := widget.NewCard("Export Settings", "", container.NewGridWithColumns(2,
		widget.NewLabel("Default Image Format:"), fields.export,
	))

	uiSection := widget.NewCard("Interface Settings", "", container.NewGridWithColumns(2,
		widget.NewLabel("Theme:"), fields.theme,
		widget.NewLabel("Window Width:"), fields.width,
		widget.NewLabel("Window Height:"), fields.height,
		widget.NewLabel("Log Level:"), fields.logLevel,
	))

	content := container.NewVBox(
		editorSection,
		exportSection,
		uiSection,
		widget.NewSeparator(),
		container.NewHBox(saveBtn, resetBtn),
	)

	return container.NewScroll(content)
}

// ShowSettingsDialog shows the preferences form in a dialog over parent
func ShowSettingsDialog(parent fyne.Window, onSaved func(*settings.AppSettings)) {
	d := dialog.NewCustom("Preferences", "Close", CreateSettingsForm(parent, onSaved), parent)
	d.Resize(fyne.NewSize(520, 480))
	d.Show()
}
