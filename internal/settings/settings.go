package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
)

// ExportFormats lists the image formats the export dialog can write
var ExportFormats = []string{"png", "jpg", "jpeg", "gif", "bmp", "tiff"}

// Themes lists the selectable UI themes
var Themes = []string{"light", "dark"}

// AppSettings holds all application settings
type AppSettings struct {
	// Editor Settings
	DefaultFontFamily string   `json:"default_font_family"`
	DefaultFontSize   int      `json:"default_font_size"`
	TabSize           int      `json:"tab_size"`
	WordWrap          bool     `json:"word_wrap"`
	FontDirs          []string `json:"font_dirs"`

	// Export Settings
	ExportFormat string `json:"export_format"`

	// Logging
	LogLevel string `json:"log_level"`

	// UI Settings
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	Theme        string `json:"theme"`
}

// DefaultSettings returns the default application settings
func DefaultSettings() *AppSettings {
	return &AppSettings{
		// Editor Settings
		DefaultFontFamily: "JetBrains Mono",
		DefaultFontSize:   12,
		TabSize:           4,
		WordWrap:          true,
		FontDirs:          defaultFontDirs(),

		// Export Settings
		ExportFormat: "png",

		// Logging
		LogLevel: "info",

		// UI Settings
		WindowWidth:  800,
		WindowHeight: 600,
		Theme:        "light",
	}
}

// Global settings instance
var Current *AppSettings

// RefreshCurrent returns the current settings, loading them on first use
func RefreshCurrent() *AppSettings {
	if Current == nil {
		Current = DefaultSettings()
		if err := Load(); err != nil {
			Current = DefaultSettings()
		}
	}
	return Current
}

// Initialize loads settings from file or creates default settings
func Initialize() error {
	Current = DefaultSettings()

	settingsPath := getSettingsPath()
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		// Settings file doesn't exist, create it with defaults
		return Save()
	}

	// Load existing settings
	return Load()
}

// Load reads settings from the settings file
func Load() error {
	return LoadFrom(getSettingsPath())
}

// LoadFrom reads settings from path into Current
func LoadFrom(path string) error {
	if Current == nil {
		Current = DefaultSettings()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	loaded := DefaultSettings()
	if err := json.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to parse settings file: %w", err)
	}

	Current = loaded
	return nil
}

// Save writes current settings to the settings file
func Save() error {
	return SaveTo(getSettingsPath())
}

// SaveTo writes current settings to path
func SaveTo(path string) error {
	if Current == nil {
		Current = DefaultSettings()
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(Current, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// getSettingsPath returns the path to the settings file
func getSettingsPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".styledit", "settings.json")
}

// defaultFontDirs returns the usual font directories for the platform
func defaultFontDirs() []string {
	homeDir, _ := os.UserHomeDir()
	return []string{
		filepath.Join(homeDir, ".styledit", "fonts"),
		filepath.Join(homeDir, ".fonts"),
		filepath.Join(homeDir, ".local", "share", "fonts"),
		"/usr/share/fonts",
	}
}

// WindowSize returns the configured window size
func (s *AppSettings) WindowSize() fyne.Size {
	return fyne.NewSize(float32(s.WindowWidth), float32(s.WindowHeight))
}

// Validation functions
func (s *AppSettings) Validate() []string {
	var errors []string

	if strings.TrimSpace(s.DefaultFontFamily) == "" {
		errors = append(errors, "Default font family must not be empty")
	}

	if s.DefaultFontSize < 1 || s.DefaultFontSize > 200 {
		errors = append(errors, "Default font size must be between 1 and 200")
	}

	if s.TabSize < 1 || s.TabSize > 16 {
		errors = append(errors, "Tab size must be between 1 and 16")
	}

	if !contains(ExportFormats, s.ExportFormat) {
		errors = append(errors, "Export format must be one of "+strings.Join(ExportFormats, ", "))
	}

	if !contains(Themes, s.Theme) {
		errors = append(errors, "Theme must be one of "+strings.Join(Themes, ", "))
	}

	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		errors = append(errors, "Window size must be greater than 0")
	}

	return errors
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// Helper functions to convert settings to/from strings for UI
func (s *AppSettings) GetDefaultFontSizeString() string {
	return strconv.Itoa(s.DefaultFontSize)
}

func (s *AppSettings) SetDefaultFontSizeString(value string) error {
	size, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return err
	}
	s.DefaultFontSize = size
	return nil
}

func (s *AppSettings) GetTabSizeString() string {
	return strconv.Itoa(s.TabSize)
}

func (s *AppSettings) SetTabSizeString(value string) error {
	size, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return err
	}
	s.TabSize = size
	return nil
}

func (s *AppSettings) GetWindowWidthString() string {
	return strconv.Itoa(s.WindowWidth)
}

func (s *AppSettings) SetWindowWidthString(value string) error {
	width, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return err
	}
	s.WindowWidth = width
	return nil
}

func (s *AppSettings) GetWindowHeightString() string {
	return strconv.Itoa(s.WindowHeight)
}

func (s *AppSettings) SetWindowHeightString(value string) error {
	height, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return err
	}
	s.WindowHeight = height
	return nil
}

func (s *AppSettings) GetFontDirsString() string {
	return strings.Join(s.FontDirs, string(os.PathListSeparator))
}

func (s *AppSettings) SetFontDirsString(value string) error {
	var dirs []string
	for _, dir := range filepath.SplitList(value) {
		if dir = strings.TrimSpace(dir); dir != "" {
			dirs = append(dirs, dir)
		}
	}
	s.FontDirs = dirs
	return nil
}
