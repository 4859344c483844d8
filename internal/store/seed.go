// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/olegiv/folio-go/internal/auth"
)

// DefaultAdminEmail is the email recorded for the seeded admin account.
const DefaultAdminEmail = "admin@portfolio.com"

// Seed creates the admin account if it does not exist yet. The
// check-then-insert pair is not wrapped in a transaction; the only race is at
// first-ever startup, where a concurrent seeder loses with a unique
// constraint rejection that is logged and swallowed.
func Seed(ctx context.Context, db *sql.DB, username, password string) error {
	queries := New(db)

	_, err := queries.GetUserByUsername(ctx, username)
	if err == nil {
		slog.Info("admin user already exists, skipping seed", "username", username)
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for admin user: %w", err)
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	id, err := queries.CreateUser(ctx, CreateUserParams{
		Username:     username,
		PasswordHash: passwordHash,
		Email:        sql.NullString{String: DefaultAdminEmail, Valid: true},
	})
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			slog.Info("admin user seeded concurrently, skipping", "username", username)
			return nil
		}
		return fmt.Errorf("creating admin user: %w", err)
	}

	slog.Info("created default admin user", "id", id, "username", username)
	return nil
}
