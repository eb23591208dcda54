package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestGrammarSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Defaults
	if settings.GetGrammarBaseURL() != DefaultGrammarBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultGrammarBaseURL, settings.GetGrammarBaseURL())
	}
	if settings.GetGrammarModel() != DefaultGrammarModel {
		t.Errorf("Expected default model %s, got %s", DefaultGrammarModel, settings.GetGrammarModel())
	}

	// Custom values
	settings.SetGrammarBaseURL("http://localhost:1234/v1")
	if settings.GetGrammarBaseURL() != "http://localhost:1234/v1" {
		t.Errorf("Custom base URL not persisted, got %s", settings.GetGrammarBaseURL())
	}
	settings.SetGrammarModel("custom-model")
	if settings.GetGrammarModel() != "custom-model" {
		t.Errorf("Custom model not persisted, got %s", settings.GetGrammarModel())
	}
}

func TestGrammarAPIKeyEnvFallback(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	t.Setenv(EnvGrammarAPIKey, "env-grammar-key")
	if settings.GetGrammarAPIKey() != "env-grammar-key" {
		t.Errorf("Expected env fallback key, got %q", settings.GetGrammarAPIKey())
	}

	// A stored key wins over the environment
	settings.SetGrammarAPIKey("stored-key")
	if settings.GetGrammarAPIKey() != "stored-key" {
		t.Errorf("Expected stored key to win, got %q", settings.GetGrammarAPIKey())
	}
}

func TestGeminiAPIKeyEnvFallback(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	t.Setenv(EnvGeminiAPIKey, "env-gemini-key")
	if settings.GetGeminiAPIKey() != "env-gemini-key" {
		t.Errorf("Expected env fallback key, got %q", settings.GetGeminiAPIKey())
	}

	settings.SetGeminiAPIKey("stored-gemini-key")
	if settings.GetGeminiAPIKey() != "stored-gemini-key" {
		t.Errorf("Expected stored key to win, got %q", settings.GetGeminiAPIKey())
	}
}

func TestModelSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetChatModel() != DefaultChatModel {
		t.Errorf("Expected default chat model %s, got %s", DefaultChatModel, settings.GetChatModel())
	}
	if settings.GetImageModel() != DefaultImageModel {
		t.Errorf("Expected default image model %s, got %s", DefaultImageModel, settings.GetImageModel())
	}

	settings.SetChatModel("gemini-custom")
	settings.SetImageModel("gemini-image-custom")
	if settings.GetChatModel() != "gemini-custom" {
		t.Errorf("Chat model not persisted, got %s", settings.GetChatModel())
	}
	if settings.GetImageModel() != "gemini-image-custom" {
		t.Errorf("Image model not persisted, got %s", settings.GetImageModel())
	}
}

func TestClipboardWatchSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Defaults
	if settings.GetClipboardWatchEnabled() != DefaultClipboardWatch {
		t.Errorf("Expected default watch enabled %v", DefaultClipboardWatch)
	}
	if settings.GetClipboardInterval() != DefaultClipboardIntervalMS*time.Millisecond {
		t.Errorf("Expected default interval, got %v", settings.GetClipboardInterval())
	}

	settings.SetClipboardWatchEnabled(false)
	if settings.GetClipboardWatchEnabled() {
		t.Error("Watch enabled should be false after disabling")
	}

	settings.SetClipboardIntervalMS(500)
	if settings.GetClipboardInterval() != 500*time.Millisecond {
		t.Errorf("Expected 500ms interval, got %v", settings.GetClipboardInterval())
	}

	// Boundary values are clamped
	settings.SetClipboardIntervalMS(1)
	if settings.GetClipboardInterval() != MinClipboardIntervalMS*time.Millisecond {
		t.Errorf("Interval should be clamped to minimum, got %v", settings.GetClipboardInterval())
	}
	settings.SetClipboardIntervalMS(99999999)
	if settings.GetClipboardInterval() != MaxClipboardIntervalMS*time.Millisecond {
		t.Errorf("Interval should be clamped to maximum, got %v", settings.GetClipboardInterval())
	}
}

func TestImagesDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default is never empty
	if settings.GetImagesDirectory() == "" {
		t.Error("Images directory should not be empty")
	}

	customDir := "/custom/images"
	settings.SetImagesDirectory(customDir)
	if settings.GetImagesDirectory() != customDir {
		t.Errorf("Expected images directory %s, got %s", customDir, settings.GetImagesDirectory())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetLanguage() != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, settings.GetLanguage())
	}

	settings.SetLanguage("ru")
	if settings.GetLanguage() != "ru" {
		t.Errorf("Expected language ru, got %s", settings.GetLanguage())
	}

	options := settings.GetLanguageOptions()
	for _, code := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[code]; !ok {
			t.Errorf("Language options missing %s", code)
		}
	}
}
