// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/olegiv/folio-go/internal/testutil"
	"github.com/olegiv/folio-go/internal/version"
)

func TestHealth(t *testing.T) {
	db := testutil.TestDB(t)
	h := NewHealthHandler(db, &version.Info{Version: "v1.0.0-test"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var status HealthStatus
	decodeBody(t, w, &status)
	if status.Status != "healthy" {
		t.Errorf("Status = %q, want healthy", status.Status)
	}
	if status.Database != "healthy" {
		t.Errorf("Database = %q, want healthy", status.Database)
	}
	if status.Version != "v1.0.0-test" {
		t.Errorf("Version = %q, want v1.0.0-test", status.Version)
	}
}

func TestHealthDatabaseDown(t *testing.T) {
	db := testutil.TestDB(t)
	h := NewHealthHandler(db, &version.Info{Version: "v1.0.0-test"})

	// Closing the pool makes the ping fail.
	_ = db.Close()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}

	var status HealthStatus
	decodeBody(t, w, &status)
	if status.Status != "degraded" {
		t.Errorf("Status = %q, want degraded", status.Status)
	}
	if status.Database != "unreachable" {
		t.Errorf("Database = %q, want unreachable", status.Database)
	}
}
