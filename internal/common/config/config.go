package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string `env:"PORT" envDefault:"8000"`
	Environment  string `env:"ENV" envDefault:"development"`
	ReadTimeout  int    `env:"READ_TIMEOUT" envDefault:"10"`
	WriteTimeout int    `env:"WRITE_TIMEOUT" envDefault:"30"`
	BodyLimitMB  int    `env:"BODY_LIMIT_MB" envDefault:"32"`

	DataDir     string `env:"DATA_DIR" envDefault:"runtime"`
	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"runtime/db/planner.db"`
	CatalogPath string `env:"CATALOG_PATH"`

	OverlayFill         string `env:"OVERLAY_FILL" envDefault:"#ffffff"`
	OverlayFillAlpha    uint8  `env:"OVERLAY_FILL_ALPHA" envDefault:"120"`
	OverlayOutline      string `env:"OVERLAY_OUTLINE" envDefault:"#000000"`
	OverlayOutlineAlpha uint8  `env:"OVERLAY_OUTLINE_ALPHA" envDefault:"200"`
	OverlayText         string `env:"OVERLAY_TEXT" envDefault:"#000000"`
}

// Load читает .env (если есть) и переменные окружения.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UploadsDir возвращает корень файлового хранилища проектов.
func (c *Config) UploadsDir() string {
	return filepath.Join(c.DataDir, "uploads")
}

func (c *Config) BodyLimit() int {
	return c.BodyLimitMB * 1024 * 1024
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreMemory, StoreSQLite:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.BodyLimitMB <= 0 {
		return fmt.Errorf("BODY_LIMIT_MB must be positive, got %d", c.BodyLimitMB)
	}
	return nil
}
