// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Insecure fallback defaults. Development tolerates them; production refuses
// to start while they are in effect.
const (
	DefaultJWTSecret     = "your-secret-key"
	DefaultAdminPassword = "admin123"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"FOLIO_DB_PATH" envDefault:"./data/portfolio.db"`
	ServerHost string `env:"FOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"FOLIO_SERVER_PORT" envDefault:"3000"`
	Env        string `env:"FOLIO_ENV" envDefault:"development"`
	LogLevel   string `env:"FOLIO_LOG_LEVEL" envDefault:"info"`

	// Auth configuration
	JWTSecret     string `env:"FOLIO_JWT_SECRET" envDefault:"your-secret-key"`
	AdminUsername string `env:"FOLIO_ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"FOLIO_ADMIN_PASSWORD" envDefault:"admin123"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if !cfg.IsDevelopment() {
		if cfg.JWTSecret == DefaultJWTSecret {
			return nil, fmt.Errorf("FOLIO_JWT_SECRET is the insecure default and must be set in %s mode; "+
				"generate a secure secret with: openssl rand -base64 32", cfg.Env)
		}
		if cfg.AdminPassword == DefaultAdminPassword {
			return nil, fmt.Errorf("FOLIO_ADMIN_PASSWORD is the insecure default and must be set in %s mode", cfg.Env)
		}
	}

	return cfg, nil
}
