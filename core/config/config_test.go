package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaultsToLongpoll(t *testing.T) {
	cfg := &Config{Telegram: TelegramConfig{Token: "12345:token"}}
	require.NoError(t, Normalize(cfg))
	assert.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)
}

func TestNormalizeRequiresToken(t *testing.T) {
	cfg := &Config{}
	err := Normalize(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token")
}

func TestNormalizeAcceptsPollingAlias(t *testing.T) {
	cfg := &Config{Telegram: TelegramConfig{Token: "t", RunMode: "polling"}}
	require.NoError(t, Normalize(cfg))
	assert.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)
}

func TestNormalizeWebhookRequiresListener(t *testing.T) {
	cfg := &Config{Telegram: TelegramConfig{Token: "t", RunMode: "webhook"}}
	err := Normalize(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webhook.url")

	cfg.Webhook = WebhookConfig{URL: "https://bot.example.com", Listen: "0.0.0.0", Port: 8443}
	require.NoError(t, Normalize(cfg))
}

func TestNormalizeTelemetryNeedsToken(t *testing.T) {
	cfg := &Config{
		Telegram:  TelegramConfig{Token: "t"},
		Telemetry: TelemetryConfig{Enabled: true},
	}
	err := Normalize(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telemetry.token")

	cfg.Telemetry.Token = "src-token"
	require.NoError(t, Normalize(cfg))
}

func TestNormalizeRejectsBadExcludeUpdates(t *testing.T) {
	cfg := &Config{
		Telegram:  TelegramConfig{Token: "t"},
		RateLimit: RateLimitConfig{ExcludeUpdates: []string{"inline_query"}},
	}
	err := Normalize(cfg)
	require.Error(t, err)
}

func TestLoadReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("telegram:\n  token: \"42:abc\"\n  run_mode: longpoll\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "42:abc", cfg.Telegram.Token)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadEnvOnly(t *testing.T) {
	t.Setenv("BOT_TOKEN", "99:envtoken")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "99:envtoken", cfg.Telegram.Token)
	assert.Equal(t, RunModeLongpoll, cfg.Telegram.RunMode)
}
