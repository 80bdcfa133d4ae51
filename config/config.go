// Package config loads runtime settings from an optional TOML file with
// environment overrides on top.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"github.com/rohanthewiz/serr"

	"searchpage/models"
)

// Config holds the settings shared by the web server and the terminal client.
type Config struct {
	Address    string        `toml:"address" env:"SEARCHPAGE_ADDRESS"`
	FetchDelay time.Duration `toml:"fetch_delay" env:"SEARCHPAGE_FETCH_DELAY"`
	Debounce   time.Duration `toml:"debounce" env:"SEARCHPAGE_DEBOUNCE"`
	LogLevel   string        `toml:"log_level" env:"SEARCHPAGE_LOG_LEVEL"`
}

// DefaultAddress is where the web server listens unless configured otherwise.
const DefaultAddress = ":8000"

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Address:    DefaultAddress,
		FetchDelay: models.DefaultFetchDelay,
		Debounce:   models.DefaultDebounce,
		LogLevel:   "info",
	}
}

// Load starts from Default, applies the TOML file at path when it exists,
// then applies environment variables. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, serr.Wrap(err, "failed to read config file")
		default:
			if err := decodeTOML(data, &cfg); err != nil {
				return cfg, err
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, serr.Wrap(err, "failed to parse environment config")
	}

	return cfg, cfg.Validate()
}

// fileConfig mirrors Config with durations as strings, since TOML has no
// duration type.
type fileConfig struct {
	Address    *string `toml:"address"`
	FetchDelay *string `toml:"fetch_delay"`
	Debounce   *string `toml:"debounce"`
	LogLevel   *string `toml:"log_level"`
}

func decodeTOML(data []byte, cfg *Config) error {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return serr.Wrap(err, "failed to parse TOML config")
	}

	if fc.Address != nil {
		cfg.Address = *fc.Address
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.FetchDelay != nil {
		d, err := time.ParseDuration(*fc.FetchDelay)
		if err != nil {
			return serr.Wrap(err, "invalid fetch_delay, expected duration like '1s'")
		}
		cfg.FetchDelay = d
	}
	if fc.Debounce != nil {
		d, err := time.ParseDuration(*fc.Debounce)
		if err != nil {
			return serr.Wrap(err, "invalid debounce, expected duration like '300ms'")
		}
		cfg.Debounce = d
	}
	return nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if c.Address == "" {
		return serr.New("address must not be empty")
	}
	if c.FetchDelay < 0 {
		return serr.New("fetch_delay must not be negative")
	}
	if c.Debounce <= 0 {
		return serr.New("debounce must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return serr.New("log_level must be one of debug, info, warn, error")
	}
	return nil
}
