package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

// AppConfig is a global variable for configuration
var AppConfig Config

// Config holds all environment variables
type Config struct {
	TelegramBotToken string
	TelegramChatID   string
	EphemerisFile    string
	Timezone         string
	Language         string
	ForecastDays     int
	MinDarkMinutes   int
	CronExpression   string
}

// LoadConfig initializes AppConfig from environment variables
func LoadConfig() {
	AppConfig = FromEnv()
}

// FromEnv reads a Config from environment variables, filling in defaults
func FromEnv() Config {
	return Config{
		TelegramBotToken: getEnv("TG_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("CHAT_ID", ""),
		EphemerisFile:    getEnv("EPHEMERIS_FILE", "ephemeris.yaml"),
		Timezone:         getEnv("TIMEZONE", "Local"),
		Language:         getEnv("LANGUAGE", "en"),
		ForecastDays:     toInt(getEnv("FORECAST_DAYS", "7")),
		MinDarkMinutes:   toInt(getEnv("MIN_DARK_MINUTES", "120")),
		CronExpression:   getEnv("CRON_EXPRESSION", "0 8,12,16,20 * * *"),
	}
}

// Validate reports every setting that cannot work
func (c Config) Validate() error {
	var errs []error

	if c.EphemerisFile == "" {
		errs = append(errs, errors.New("EPHEMERIS_FILE is empty"))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err))
	}
	if c.ForecastDays <= 0 {
		errs = append(errs, fmt.Errorf("FORECAST_DAYS must be positive, got %d", c.ForecastDays))
	}
	if c.MinDarkMinutes <= 0 || c.MinDarkMinutes > 1440 {
		errs = append(errs, fmt.Errorf("MIN_DARK_MINUTES must be within 1..1440, got %d", c.MinDarkMinutes))
	}
	if _, err := cron.ParseStandard(c.CronExpression); err != nil {
		errs = append(errs, fmt.Errorf("CRON_EXPRESSION %q: %w", c.CronExpression, err))
	}

	return errors.Join(errs...)
}

// Location returns the zone ephemeris timestamps are labelled with
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// ChatID returns TelegramChatID as a number
func (c Config) ChatID() (int64, error) {
	id, err := strconv.ParseInt(c.TelegramChatID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("CHAT_ID %q: %w", c.TelegramChatID, err)
	}
	return id, nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// toInt converts a string to int and returns the value
func toInt(s string) int {
	if out, err := strconv.Atoi(s); err == nil {
		return out
	}
	return 0
}
