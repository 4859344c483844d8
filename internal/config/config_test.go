// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DBPath != "./data/portfolio.db" {
		t.Errorf("DBPath = %q, want ./data/portfolio.db", cfg.DBPath)
	}
	if cfg.ServerHost != "localhost" {
		t.Errorf("ServerHost = %q, want localhost", cfg.ServerHost)
	}
	if cfg.ServerPort != 3000 {
		t.Errorf("ServerPort = %d, want 3000", cfg.ServerPort)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if !cfg.IsDevelopment() {
		t.Error("IsDevelopment() = false for default config")
	}
	if cfg.AdminUsername != "admin" {
		t.Errorf("AdminUsername = %q, want admin", cfg.AdminUsername)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FOLIO_SERVER_HOST", "0.0.0.0")
	t.Setenv("FOLIO_SERVER_PORT", "8080")
	t.Setenv("FOLIO_DB_PATH", "/tmp/test.db")
	t.Setenv("FOLIO_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServerAddr() != "0.0.0.0:8080" {
		t.Errorf("ServerAddr() = %q, want 0.0.0.0:8080", cfg.ServerAddr())
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q, want /tmp/test.db", cfg.DBPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoadProductionRejectsDefaultSecrets(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T)
		wantErr string
	}{
		{
			name: "default jwt secret",
			setup: func(t *testing.T) {
				t.Setenv("FOLIO_ENV", "production")
				t.Setenv("FOLIO_ADMIN_PASSWORD", "strong-password")
			},
			wantErr: "FOLIO_JWT_SECRET",
		},
		{
			name: "default admin password",
			setup: func(t *testing.T) {
				t.Setenv("FOLIO_ENV", "production")
				t.Setenv("FOLIO_JWT_SECRET", "a-real-secret")
			},
			wantErr: "FOLIO_ADMIN_PASSWORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)
			_, err := Load()
			if err == nil {
				t.Fatal("Load() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestLoadProductionWithSecrets(t *testing.T) {
	t.Setenv("FOLIO_ENV", "production")
	t.Setenv("FOLIO_JWT_SECRET", "a-real-secret")
	t.Setenv("FOLIO_ADMIN_PASSWORD", "strong-password")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true for production config")
	}
}
