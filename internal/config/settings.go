package config

import (
	"os"
	"time"

	"fyne.io/fyne/v2"

	"github.com/deskpin/deskpin/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyGrammarBaseURL = "grammar_api_base_url"
	KeyGrammarAPIKey  = "grammar_api_key"
	KeyGrammarModel   = "grammar_model"

	KeyGeminiAPIKey = "gemini_api_key"
	KeyChatModel    = "chat_model"
	KeyImageModel   = "image_model"

	KeyClipboardWatch      = "clipboard_watch_enabled"
	KeyClipboardIntervalMS = "clipboard_watch_interval_ms"

	KeyImagesDir = "images_directory"
	KeyLanguage  = "app_language"
)

// Environment fallbacks for API keys, so the app works without opening the
// settings dialog first
const (
	EnvGrammarAPIKey = "OPENAI_API_KEY"
	EnvGeminiAPIKey  = "GEMINI_API_KEY"
)

// Default values
const (
	DefaultGrammarBaseURL = "https://api.openai.com/v1"
	DefaultGrammarModel   = "gpt-4o-mini"
	DefaultChatModel      = "gemini-2.0-flash"
	DefaultImageModel     = "gemini-2.0-flash-preview-image-generation"

	DefaultClipboardWatch      = true
	DefaultClipboardIntervalMS = 1000
	MinClipboardIntervalMS     = 100
	MaxClipboardIntervalMS     = 10000

	DefaultLanguage = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetGrammarBaseURL returns the OpenAI-compatible endpoint base URL
func (s *Settings) GetGrammarBaseURL() string {
	url := s.app.Preferences().String(KeyGrammarBaseURL)
	if url == "" {
		s.SetGrammarBaseURL(DefaultGrammarBaseURL)
		return DefaultGrammarBaseURL
	}
	return url
}

// SetGrammarBaseURL sets the grammar endpoint base URL
func (s *Settings) SetGrammarBaseURL(url string) {
	s.app.Preferences().SetString(KeyGrammarBaseURL, url)
}

// GetGrammarAPIKey returns the grammar API key, falling back to the
// OPENAI_API_KEY environment variable when unset
func (s *Settings) GetGrammarAPIKey() string {
	key := s.app.Preferences().String(KeyGrammarAPIKey)
	if key == "" {
		key = os.Getenv(EnvGrammarAPIKey)
	}
	return key
}

// SetGrammarAPIKey sets the grammar API key
func (s *Settings) SetGrammarAPIKey(key string) {
	s.app.Preferences().SetString(KeyGrammarAPIKey, key)
}

// GetGrammarModel returns the grammar model name
func (s *Settings) GetGrammarModel() string {
	model := s.app.Preferences().String(KeyGrammarModel)
	if model == "" {
		s.SetGrammarModel(DefaultGrammarModel)
		return DefaultGrammarModel
	}
	return model
}

// SetGrammarModel sets the grammar model name
func (s *Settings) SetGrammarModel(model string) {
	s.app.Preferences().SetString(KeyGrammarModel, model)
}

// GetGeminiAPIKey returns the Gemini API key, falling back to the
// GEMINI_API_KEY environment variable when unset
func (s *Settings) GetGeminiAPIKey() string {
	key := s.app.Preferences().String(KeyGeminiAPIKey)
	if key == "" {
		key = os.Getenv(EnvGeminiAPIKey)
	}
	return key
}

// SetGeminiAPIKey sets the Gemini API key
func (s *Settings) SetGeminiAPIKey(key string) {
	s.app.Preferences().SetString(KeyGeminiAPIKey, key)
}

// GetChatModel returns the chat model name
func (s *Settings) GetChatModel() string {
	model := s.app.Preferences().String(KeyChatModel)
	if model == "" {
		s.SetChatModel(DefaultChatModel)
		return DefaultChatModel
	}
	return model
}

// SetChatModel sets the chat model name
func (s *Settings) SetChatModel(model string) {
	s.app.Preferences().SetString(KeyChatModel, model)
}

// GetImageModel returns the image generation model name
func (s *Settings) GetImageModel() string {
	model := s.app.Preferences().String(KeyImageModel)
	if model == "" {
		s.SetImageModel(DefaultImageModel)
		return DefaultImageModel
	}
	return model
}

// SetImageModel sets the image generation model name
func (s *Settings) SetImageModel(model string) {
	s.app.Preferences().SetString(KeyImageModel, model)
}

// GetClipboardWatchEnabled returns whether clipboard auto-capture is on
func (s *Settings) GetClipboardWatchEnabled() bool {
	return s.app.Preferences().BoolWithFallback(KeyClipboardWatch, DefaultClipboardWatch)
}

// SetClipboardWatchEnabled toggles clipboard auto-capture
func (s *Settings) SetClipboardWatchEnabled(enabled bool) {
	s.app.Preferences().SetBool(KeyClipboardWatch, enabled)
}

// GetClipboardInterval returns the clipboard poll interval
func (s *Settings) GetClipboardInterval() time.Duration {
	ms := s.app.Preferences().Int(KeyClipboardIntervalMS)
	if ms <= 0 {
		s.SetClipboardIntervalMS(DefaultClipboardIntervalMS)
		ms = DefaultClipboardIntervalMS
	}
	return time.Duration(ms) * time.Millisecond
}

// SetClipboardIntervalMS sets the clipboard poll interval in milliseconds,
// clamped to a sane range
func (s *Settings) SetClipboardIntervalMS(ms int) {
	if ms < MinClipboardIntervalMS {
		ms = MinClipboardIntervalMS
	}
	if ms > MaxClipboardIntervalMS {
		ms = MaxClipboardIntervalMS
	}
	s.app.Preferences().SetInt(KeyClipboardIntervalMS, ms)
}

// GetImagesDirectory returns the directory generated images are saved to
func (s *Settings) GetImagesDirectory() string {
	dir := s.app.Preferences().String(KeyImagesDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeImagesDir()
		if err != nil {
			defaultDir = "/tmp/deskpin-images"
		}
		s.SetImagesDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetImagesDirectory sets the generated-images directory
func (s *Settings) SetImagesDirectory(dir string) {
	s.app.Preferences().SetString(KeyImagesDir, dir)
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
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
