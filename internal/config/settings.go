package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-picker/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyOverwriteExisting  = "overwrite_existing"
	KeyRetryAttempts      = "retry_attempts"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultOverwriteExisting  = false
	DefaultRetryAttempts      = 0
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = true

	MaxRetryAttempts = 10
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetOverwriteExisting returns whether existing files may be overwritten
func (s *Settings) GetOverwriteExisting() bool {
	return s.app.Preferences().BoolWithFallback(KeyOverwriteExisting, DefaultOverwriteExisting)
}

// SetOverwriteExisting sets whether existing files may be overwritten
func (s *Settings) SetOverwriteExisting(overwrite bool) {
	s.app.Preferences().SetBool(KeyOverwriteExisting, overwrite)
}

// GetRetryAttempts returns how many times a failed download is retried
func (s *Settings) GetRetryAttempts() int {
	return s.app.Preferences().IntWithFallback(KeyRetryAttempts, DefaultRetryAttempts)
}

// SetRetryAttempts sets the retry count, clamped to [0, 10]
func (s *Settings) SetRetryAttempts(attempts int) {
	if attempts < 0 {
		attempts = 0
	}
	if attempts > MaxRetryAttempts {
		attempts = MaxRetryAttempts
	}
	s.app.Preferences().SetInt(KeyRetryAttempts, attempts)
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

// GetAutoRevealOnComplete returns whether to reveal finished downloads in the
// system file manager
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to auto-reveal completed downloads
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
