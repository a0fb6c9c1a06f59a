package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/office-converter/internal/model"
	"github.com/ytget/office-converter/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir          = "output_directory"
	KeyOfficeBinary       = "libreoffice_binary"
	KeyConversionMode     = "conversion_mode"
	KeyPacingMillis       = "pacing_delay_ms"
	KeyTimeoutSeconds     = "conversion_timeout_seconds"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultPacingMillis       = 300
	DefaultTimeoutSeconds     = 300
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = true
)

// Limits
const (
	MaxPacingMillis   = 5000
	MinTimeoutSeconds = 10
	MaxTimeoutSeconds = 3600
)

// fallbackOutputDir is used when no home directory can be resolved
const fallbackOutputDir = "converted"

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the folder converted files are written to
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		defaultDir, err := platform.GetDefaultOutputDir()
		if err != nil {
			defaultDir = fallbackOutputDir
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetOfficeBinary returns the configured LibreOffice executable, empty for auto-detect
func (s *Settings) GetOfficeBinary() string {
	return s.app.Preferences().String(KeyOfficeBinary)
}

// SetOfficeBinary sets the LibreOffice executable; empty means auto-detect
func (s *Settings) SetOfficeBinary(binary string) {
	s.app.Preferences().SetString(KeyOfficeBinary, binary)
}

// GetConversionMode returns the mode selected in the last session
func (s *Settings) GetConversionMode() model.ConversionMode {
	mode := model.ConversionMode(s.app.Preferences().String(KeyConversionMode))
	if !mode.IsValid() {
		return model.DefaultMode()
	}
	return mode
}

// SetConversionMode remembers the selected mode
func (s *Settings) SetConversionMode(mode model.ConversionMode) {
	if !mode.IsValid() {
		mode = model.DefaultMode()
	}
	s.app.Preferences().SetString(KeyConversionMode, string(mode))
}

// GetPacingDelay returns the pause before each file conversion
func (s *Settings) GetPacingDelay() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyPacingMillis, DefaultPacingMillis)
	return time.Duration(clamp(ms, 0, MaxPacingMillis)) * time.Millisecond
}

// SetPacingDelay sets the pacing delay, clamped to [0, MaxPacingMillis] ms
func (s *Settings) SetPacingDelay(d time.Duration) {
	s.app.Preferences().SetInt(KeyPacingMillis, clamp(int(d.Milliseconds()), 0, MaxPacingMillis))
}

// GetConversionTimeout returns the per-file conversion timeout
func (s *Settings) GetConversionTimeout() time.Duration {
	seconds := s.app.Preferences().Int(KeyTimeoutSeconds)
	if seconds <= 0 {
		s.SetConversionTimeout(DefaultTimeoutSeconds * time.Second)
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(clamp(seconds, MinTimeoutSeconds, MaxTimeoutSeconds)) * time.Second
}

// SetConversionTimeout sets the per-file timeout, clamped to
// [MinTimeoutSeconds, MaxTimeoutSeconds]
func (s *Settings) SetConversionTimeout(d time.Duration) {
	s.app.Preferences().SetInt(KeyTimeoutSeconds, clamp(int(d/time.Second), MinTimeoutSeconds, MaxTimeoutSeconds))
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

// GetAutoRevealOnComplete returns whether to open the output folder after a successful batch
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to open the output folder after a successful batch
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
