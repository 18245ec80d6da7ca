package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName  string
	Port     string
	Env      string
	Debug    bool
	Currency string

	// Scraper settings
	ScraperUserAgent string
	RequestDelay     time.Duration
	RequestTimeout   time.Duration

	// Hard wall-clock ceiling for a full sync run
	SyncTimeout time.Duration
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:          os.Getenv("APP_NAME"),
			Port:             os.Getenv("PORT"),
			Env:              os.Getenv("APP_ENV"),
			Debug:            os.Getenv("DEBUG") == "true",
			Currency:         envOr("SYNC_CURRENCY", "EUR"),
			ScraperUserAgent: envOr("SCRAPER_USER_AGENT", "IndieMarketBot/1.0 (+https://indiemarket.link/bot)"),
			RequestDelay:     envDuration("SCRAPER_REQUEST_DELAY_MS", 1000) * time.Millisecond,
			RequestTimeout:   envDuration("SCRAPER_REQUEST_TIMEOUT_S", 30) * time.Second,
			SyncTimeout:      envDuration("SYNC_TIMEOUT_MIN", 10) * time.Minute,
		}
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envDuration reads an integer env var; the unit is applied by the caller.
func envDuration(key string, fallback int64) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(fallback)
}
