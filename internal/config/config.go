package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the opsboard daemon.
type Config struct {
	DatabaseURL   string
	TelegramToken string
	// DigestTime is the local HH:MM at which daily digests go out.
	DigestTime string
	Timezone   *time.Location
}

// Load reads configuration from a .env file (if present) and environment
// variables, with sane defaults. The Telegram token is optional; without it
// digest delivery is disabled.
func Load() (Config, error) {
	// Missing .env is fine; env vars still apply.
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		DigestTime:    strings.TrimSpace(os.Getenv("DIGEST_TIME")),
		Timezone:      time.Local,
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "opsboard.db"
	}
	if cfg.DigestTime == "" {
		cfg.DigestTime = "08:00"
	}

	if tz := strings.TrimSpace(os.Getenv("LOCATION_TZ")); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return cfg, fmt.Errorf("invalid LOCATION_TZ %q: %w", tz, err)
		}
		cfg.Timezone = loc
	}

	return cfg, nil
}
