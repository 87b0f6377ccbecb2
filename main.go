package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ispapp/styledit/internal/logging"
	"github.com/ispapp/styledit/internal/settings"
	"github.com/ispapp/styledit/internal/ui"
	"github.com/ispapp/styledit/internal/ui/theme"
)

var GlobalApp fyne.App

func main() {
	// Settings first, the log level comes from them
	settingsErr := settings.Initialize()
	logger := logging.New(os.Stderr, settings.Current.LogLevel)
	if settingsErr != nil {
		logger.Warn().Err(settingsErr).Msg("failed to initialize settings, continuing with defaults")
	}

	// Create new Fyne application
	GlobalApp = app.NewWithID("co.ispapp.styledit")
	appTheme := theme.NewAppTheme(GlobalApp)
	appTheme.ApplyTheme(GlobalApp)

	mainUI := ui.NewMainUI(GlobalApp, appTheme, logger)
	logger.Info().Str("theme", mainUI.Themes.Current().Name).Msg("editor started")

	// Show and run the application
	mainUI.Window.ShowAndRun()
}
