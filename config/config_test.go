package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, "fallback", getEnv("DARKSKY_SURELY_UNSET", "fallback"))

	t.Setenv("DARKSKY_EMPTY", "")
	assert.Equal(t, "", getEnv("DARKSKY_EMPTY", "fallback"), "set but empty is still set")

	cfg := Config{
		EphemerisFile:  "ephemeris.yaml",
		Timezone:       "Local",
		Language:       "en",
		ForecastDays:   7,
		MinDarkMinutes: 120,
		CronExpression: "0 8,12,16,20 * * *",
	}
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TG_BOT_TOKEN", "token")
	t.Setenv("CHAT_ID", "42")
	t.Setenv("EPHEMERIS_FILE", "/var/lib/darksky/days.yaml")
	t.Setenv("TIMEZONE", "Europe/Kyiv")
	t.Setenv("LANGUAGE", "uk")
	t.Setenv("FORECAST_DAYS", "3")
	t.Setenv("MIN_DARK_MINUTES", "90")
	t.Setenv("CRON_EXPRESSION", "*/30 * * * *")

	LoadConfig()
	cfg := AppConfig

	assert.Equal(t, Config{
		TelegramBotToken: "token",
		TelegramChatID:   "42",
		EphemerisFile:    "/var/lib/darksky/days.yaml",
		Timezone:         "Europe/Kyiv",
		Language:         "uk",
		ForecastDays:     3,
		MinDarkMinutes:   90,
		CronExpression:   "*/30 * * * *",
	}, cfg)
	require.NoError(t, cfg.Validate())

	id, err := cfg.ChatID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	kyiv, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)
	assert.Equal(t, kyiv.String(), cfg.Location().String())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad cron", func(c *Config) { c.CronExpression = "every day" }, "CRON_EXPRESSION"},
		{"bad zone", func(c *Config) { c.Timezone = "Mars/Olympus" }, "TIMEZONE"},
		{"no days", func(c *Config) { c.ForecastDays = 0 }, "FORECAST_DAYS"},
		{"too long", func(c *Config) { c.MinDarkMinutes = 2000 }, "MIN_DARK_MINUTES"},
		{"no file", func(c *Config) { c.EphemerisFile = "" }, "EPHEMERIS_FILE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				EphemerisFile:  "ephemeris.yaml",
				Timezone:       "UTC",
				ForecastDays:   7,
				MinDarkMinutes: 120,
				CronExpression: "0 20 * * *",
			}
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestChatID_Invalid(t *testing.T) {
	_, err := Config{TelegramChatID: "me"}.ChatID()
	assert.Error(t, err)
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 12, toInt("12"))
	assert.Equal(t, 0, toInt("twelve"))
}
