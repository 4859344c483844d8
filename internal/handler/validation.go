// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"strings"
)

// validateRequired checks that every listed field has a non-blank value.
// Returns a field->message map of the failures, or nil when all are present.
func validateRequired(fields map[string]string, required ...string) map[string]string {
	var errs map[string]string
	for _, name := range required {
		if strings.TrimSpace(fields[name]) == "" {
			if errs == nil {
				errs = make(map[string]string)
			}
			errs[name] = name + " is required"
		}
	}
	return errs
}

// writeValidationError writes a 400 response with per-field details.
func writeValidationError(w http.ResponseWriter, details map[string]string) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":   "Validation failed",
		"details": details,
	})
}
