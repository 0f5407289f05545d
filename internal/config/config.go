// Package config defines service configuration and its loading.
//
// Precedence (low -> high): defaults, YAML file named by GAFFER_CONFIG,
// environment variables with the GAFFER_ prefix.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/KirkDiggler/gaffer/internal/models"
)

// Sentinel error kinds for this package
var (
	ErrInvalidConfig = errors.New("invalid config")
)

// GameweekConfig defines one calendar entry. Times are RFC 3339.
type GameweekConfig struct {
	Number   int    `koanf:"number"`
	Deadline string `koanf:"deadline"`
	Ends     string `koanf:"ends"`
}

// Config contains process configuration
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080"
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error
	LogLevel string `koanf:"log_level"`

	// RedisAddr is the Redis host:port
	RedisAddr string `koanf:"redis_addr"`

	// RedisPassword is the Redis auth password, empty for none
	RedisPassword string `koanf:"redis_password"`

	// RedisDB selects the Redis logical database
	RedisDB int `koanf:"redis_db"`

	// Gameweeks is the season calendar
	Gameweeks []GameweekConfig `koanf:"gameweeks"`
}

// New returns a Config with defaults applied
func New() *Config {
	return &Config{
		Addr:      ":8080",
		LogLevel:  "info",
		RedisAddr: "localhost:6379",
	}
}

// Load builds a Config by layering defaults, an optional YAML file, and
// environment variables
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("GAFFER_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Map env keys like GAFFER_REDIS_ADDR -> redis_addr
	envProvider := env.Provider("GAFFER_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "gaffer_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if len(cfg.Gameweeks) == 0 {
		return nil, fmt.Errorf("%w: at least one gameweek is required", ErrInvalidConfig)
	}

	return &cfg, nil
}

// Calendar converts the configured gameweeks into calendar entries
func (c *Config) Calendar() ([]models.Gameweek, error) {
	gameweeks := make([]models.Gameweek, 0, len(c.Gameweeks))
	for _, gw := range c.Gameweeks {
		deadline, err := time.Parse(time.RFC3339, gw.Deadline)
		if err != nil {
			return nil, fmt.Errorf("%w: gameweek %d deadline: %v", ErrInvalidConfig, gw.Number, err)
		}
		ends, err := time.Parse(time.RFC3339, gw.Ends)
		if err != nil {
			return nil, fmt.Errorf("%w: gameweek %d ends: %v", ErrInvalidConfig, gw.Number, err)
		}
		gameweeks = append(gameweeks, models.Gameweek{
			Number:     gw.Number,
			DeadlineAt: deadline,
			EndsAt:     ends,
		})
	}
	return gameweeks, nil
}
