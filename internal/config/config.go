package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"studyenglish/internal/dictionary"
	"studyenglish/internal/ui"
	"studyenglish/internal/widget"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Env        string
	HTTPAddr   string
	BotToken   string
	Dictionary DictionaryConfig
	Policy     ui.Policy
	ChatDelay  time.Duration
}

// DictionaryConfig holds dictionary API settings
type DictionaryConfig struct {
	BaseURL string
	Locale  string
	// Timeout of zero means no timeout.
	Timeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("APP_ENV", "production"),
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		BotToken: os.Getenv("BOT_TOKEN"),
		Dictionary: DictionaryConfig{
			BaseURL: getEnv("DICTIONARY_API_URL", dictionary.DefaultBaseURL),
			Locale:  getEnv("DICTIONARY_LOCALE", dictionary.DefaultLocale),
		},
	}

	var err error
	if cfg.Dictionary.Timeout, err = getDuration("LOOKUP_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.ChatDelay, err = getDuration("CHAT_REPLY_DELAY", widget.DefaultReplyDelay); err != nil {
		return nil, err
	}

	cfg.Policy, err = ui.ParsePolicy(getEnv("LOOKUP_POLICY", string(ui.LatestRequest)))
	if err != nil {
		return nil, fmt.Errorf("LOOKUP_POLICY: %w", err)
	}

	u, err := url.Parse(cfg.Dictionary.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("DICTIONARY_API_URL must be an absolute URL, got %q", cfg.Dictionary.BaseURL)
	}

	return cfg, nil
}

// IsDevelopment reports whether development logging is requested
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// BotEnabled reports whether the Telegram surface should start
func (c *Config) BotEnabled() bool {
	return c.BotToken != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %s", key, value)
	}
	return d, nil
}
