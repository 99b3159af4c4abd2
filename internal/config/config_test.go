package config

import (
	"os"
	"testing"
	"time"

	"studyenglish/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV",
	"HTTP_ADDR",
	"BOT_TOKEN",
	"DICTIONARY_API_URL",
	"DICTIONARY_LOCALE",
	"LOOKUP_TIMEOUT",
	"LOOKUP_POLICY",
	"CHAT_REPLY_DELAY",
}

// clearEnv blanks every variable Load reads; t.Setenv restores them.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.False(t, cfg.BotEnabled())
	assert.Equal(t, "https://api.dictionaryapi.dev/api/v2/entries", cfg.Dictionary.BaseURL)
	assert.Equal(t, "en", cfg.Dictionary.Locale)
	assert.Zero(t, cfg.Dictionary.Timeout)
	assert.Equal(t, ui.LatestRequest, cfg.Policy)
	assert.Equal(t, 600*time.Millisecond, cfg.ChatDelay)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "development")
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DICTIONARY_API_URL", "http://localhost:8081/entries")
	t.Setenv("DICTIONARY_LOCALE", "en_GB")
	t.Setenv("LOOKUP_TIMEOUT", "5s")
	t.Setenv("LOOKUP_POLICY", "last-response")
	t.Setenv("CHAT_REPLY_DELAY", "0s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.True(t, cfg.BotEnabled())
	assert.Equal(t, "http://localhost:8081/entries", cfg.Dictionary.BaseURL)
	assert.Equal(t, "en_GB", cfg.Dictionary.Locale)
	assert.Equal(t, 5*time.Second, cfg.Dictionary.Timeout)
	assert.Equal(t, ui.LastResponse, cfg.Policy)
	assert.Zero(t, cfg.ChatDelay)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad timeout", key: "LOOKUP_TIMEOUT", value: "soon"},
		{name: "negative timeout", key: "LOOKUP_TIMEOUT", value: "-1s"},
		{name: "bad chat delay", key: "CHAT_REPLY_DELAY", value: "600"},
		{name: "unknown policy", key: "LOOKUP_POLICY", value: "first-response"},
		{name: "relative api url", key: "DICTIONARY_API_URL", value: "/api/v2/entries"},
		{name: "api url without host", key: "DICTIONARY_API_URL", value: "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
