// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain models used throughout the application:
// Project, ContactMessage and User.
package model

import "time"

// Project represents a portfolio project entry.
type Project struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	ProjectURL   string    `json:"project_url"`
	Technologies string    `json:"technologies"` // Comma-separated list by convention
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
