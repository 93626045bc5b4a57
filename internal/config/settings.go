package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyDataFile        = "data_file"
	KeyLanguage        = "language"
	KeyDisplayDecimals = "display_decimals"
)

// Default values
const (
	DefaultDataFile        = "datos_notas.json"
	DefaultLanguage        = "system"
	DefaultDisplayDecimals = 2
)

// Display precision bounds
const (
	MinDisplayDecimals = 0
	MaxDisplayDecimals = 4
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDataFile returns the path of the JSON file holding the grades
func (s *Settings) GetDataFile() string {
	path := s.app.Preferences().String(KeyDataFile)
	if path == "" {
		s.SetDataFile(DefaultDataFile)
		return DefaultDataFile
	}
	return path
}

// SetDataFile sets the data file path; blank paths fall back to the default
func (s *Settings) SetDataFile(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultDataFile
	}
	s.app.Preferences().SetString(KeyDataFile, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetDisplayDecimals returns how many decimals averages are shown with
func (s *Settings) GetDisplayDecimals() int {
	return s.app.Preferences().IntWithFallback(KeyDisplayDecimals, DefaultDisplayDecimals)
}

// SetDisplayDecimals sets the display precision
func (s *Settings) SetDisplayDecimals(decimals int) {
	if decimals < MinDisplayDecimals {
		decimals = MinDisplayDecimals
	}
	if decimals > MaxDisplayDecimals {
		decimals = MaxDisplayDecimals
	}
	s.app.Preferences().SetInt(KeyDisplayDecimals, decimals)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"es":     "Español",
		"en":     "English",
	}
}
