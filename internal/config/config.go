package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Live board settings.
	TickPeriod    time.Duration `env:"TICK_PERIOD" envDefault:"3s"`
	MaxBoards     int           `env:"MAX_BOARDS" envDefault:"256"`
	DashboardPath string        `env:"DASHBOARD_PATH" envDefault:"/dashboard"`
	RandSeed      uint64        `env:"RAND_SEED" envDefault:"0"` // 0 picks a random seed per board
}

const maxBoardsLimit = 10000

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if cfg.TickPeriod <= 0 {
		return nil, errors.New("TICK_PERIOD must be positive")
	}
	if cfg.MaxBoards < 1 || cfg.MaxBoards > maxBoardsLimit {
		return nil, fmt.Errorf("MAX_BOARDS must be between 1 and %d", maxBoardsLimit)
	}
	if !strings.HasPrefix(cfg.DashboardPath, "/") {
		return nil, errors.New("DASHBOARD_PATH must start with /")
	}

	return cfg, nil
}
