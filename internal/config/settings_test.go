package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestOverwriteExisting(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetOverwriteExisting() != DefaultOverwriteExisting {
		t.Errorf("Expected default overwrite %v, got %v", DefaultOverwriteExisting, settings.GetOverwriteExisting())
	}

	// Test toggling
	settings.SetOverwriteExisting(true)
	if !settings.GetOverwriteExisting() {
		t.Error("Expected overwrite to be enabled")
	}

	settings.SetOverwriteExisting(false)
	if settings.GetOverwriteExisting() {
		t.Error("Expected overwrite to be disabled")
	}
}

func TestRetryAttempts(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetRetryAttempts() != DefaultRetryAttempts {
		t.Errorf("Expected default retry attempts %d, got %d", DefaultRetryAttempts, settings.GetRetryAttempts())
	}

	// Test setting custom value
	settings.SetRetryAttempts(3)
	if settings.GetRetryAttempts() != 3 {
		t.Errorf("Expected retry attempts 3, got %d", settings.GetRetryAttempts())
	}

	// Test boundary values
	settings.SetRetryAttempts(-1) // Should be clamped to 0
	if settings.GetRetryAttempts() != 0 {
		t.Error("Retry attempts should be clamped to minimum 0")
	}

	settings.SetRetryAttempts(25) // Should be clamped to 10
	if settings.GetRetryAttempts() != MaxRetryAttempts {
		t.Errorf("Retry attempts should be clamped to maximum %d", MaxRetryAttempts)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestAutoRevealOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Errorf("Expected default auto-reveal %v, got %v", DefaultAutoRevealComplete, settings.GetAutoRevealOnComplete())
	}

	settings.SetAutoRevealOnComplete(false)
	if settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto-reveal to be disabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
