package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultAPIBaseURL   = "http://127.0.0.1:8080"
	defaultPollInterval = 15 * time.Second
	defaultNewsLimit    = 120
	maxNewsLimit        = 500
)

// Config holds runtime settings for the dashboard client.
type Config struct {
	APIBaseURL   string
	PollInterval time.Duration
	NewsLimit    int
	PrefsDBPath  string
}

func LoadFromEnv() (Config, error) {
	cfg := Config{
		APIBaseURL:   os.Getenv("TRENDHUNTER_API_BASE_URL"),
		PollInterval: defaultPollInterval,
		NewsLimit:    defaultNewsLimit,
		PrefsDBPath:  os.Getenv("TRENDHUNTER_PREFS_DB_PATH"),
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.PrefsDBPath == "" {
		cfg.PrefsDBPath = "trendhunter.db"
	}

	if raw := os.Getenv("TRENDHUNTER_POLL_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("TRENDHUNTER_POLL_INTERVAL is not a duration: %s", raw)
		}
		cfg.PollInterval = d
	}

	if raw := os.Getenv("TRENDHUNTER_NEWS_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("TRENDHUNTER_NEWS_LIMIT is not a number: %s", raw)
		}
		cfg.NewsLimit = n
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.New("APIBaseURL is required")
	}
	if c.APIBaseURL[len(c.APIBaseURL)-1] == '/' {
		return fmt.Errorf("APIBaseURL must not end with '/': %s", c.APIBaseURL)
	}
	if c.PollInterval < time.Second {
		return fmt.Errorf("PollInterval must be at least 1s: %s", c.PollInterval)
	}
	if c.NewsLimit < 1 || c.NewsLimit > maxNewsLimit {
		return fmt.Errorf("NewsLimit must be between 1 and %d: %d", maxNewsLimit, c.NewsLimit)
	}
	if c.PrefsDBPath == "" {
		return errors.New("PrefsDBPath is required")
	}
	return nil
}
