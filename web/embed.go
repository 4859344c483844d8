// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package web embeds the static site pages and assets.
package web

import "embed"

//go:embed all:pages
var Pages embed.FS

//go:embed all:static
var Static embed.FS
