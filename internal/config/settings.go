package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/sakurazen/soxgui/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeySoxPath           = "sox_path"
	KeyShowInputFileInfo = "show_input_file_info"
	KeyRunTimeout        = "run_timeout_seconds"
	KeyLanguage          = "app_language"
)

// Default values
const (
	DefaultShowInputFileInfo = false
	DefaultRunTimeoutSeconds = 60
	DefaultLanguage          = "system"
)

// Run timeout bounds in seconds
const (
	MinRunTimeoutSeconds = 10
	MaxRunTimeoutSeconds = 180
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSoxPath returns the configured SoX binary path. It may be empty.
func (s *Settings) GetSoxPath() string {
	return s.app.Preferences().String(KeySoxPath)
}

// SetSoxPath stores the SoX binary path
func (s *Settings) SetSoxPath(path string) {
	s.app.Preferences().SetString(KeySoxPath, strings.TrimSpace(path))
}

// DetectSoxPath fills an empty SoX path from PATH and the usual install
// locations. It returns the resulting path.
func (s *Settings) DetectSoxPath() string {
	if path := s.GetSoxPath(); path != "" {
		return path
	}
	path := platform.FindSox()
	if path != "" {
		s.SetSoxPath(path)
	}
	return path
}

// GetShowInputFileInfo returns whether file info is shown when an input is chosen
func (s *Settings) GetShowInputFileInfo() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowInputFileInfo, DefaultShowInputFileInfo)
}

// SetShowInputFileInfo sets whether file info is shown when an input is chosen
func (s *Settings) SetShowInputFileInfo(show bool) {
	s.app.Preferences().SetBool(KeyShowInputFileInfo, show)
}

// GetRunTimeout returns the time limit for a single SoX run
func (s *Settings) GetRunTimeout() time.Duration {
	value := s.app.Preferences().Int(KeyRunTimeout)
	if value <= 0 {
		s.SetRunTimeoutSeconds(DefaultRunTimeoutSeconds)
		value = DefaultRunTimeoutSeconds
	}
	return time.Duration(value) * time.Second
}

// SetRunTimeoutSeconds sets the time limit, clamped to the allowed range
func (s *Settings) SetRunTimeoutSeconds(seconds int) {
	if seconds < MinRunTimeoutSeconds {
		seconds = MinRunTimeoutSeconds
	}
	if seconds > MaxRunTimeoutSeconds {
		seconds = MaxRunTimeoutSeconds
	}
	s.app.Preferences().SetInt(KeyRunTimeout, seconds)
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

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"ja":     "日本語",
		"en":     "English",
	}
}
