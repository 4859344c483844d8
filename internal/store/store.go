// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "database/sql"

// Queries wraps a database handle and exposes typed query methods for each
// entity. The handle is injected so tests can substitute an in-memory
// database.
type Queries struct {
	db *sql.DB
}

// New creates a Queries instance over the given database handle.
func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}
