// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"io/fs"
	"log/slog"
	"net/http"
)

// pageFiles maps public routes to the embedded HTML page that serves them.
var pageFiles = map[string]string{
	"/":                "index.html",
	"/projects":        "projects.html",
	"/about":           "about.html",
	"/contact":         "contact.html",
	"/admin-login":     "admin-login.html",
	"/admin-dashboard": "admin-dashboard.html",
}

// FrontendHandler serves the embedded static site pages.
type FrontendHandler struct {
	pages fs.FS
}

// NewFrontendHandler creates a new FrontendHandler over the embedded pages
// filesystem.
func NewFrontendHandler(pages fs.FS) *FrontendHandler {
	return &FrontendHandler{pages: pages}
}

// Page returns a handler serving the embedded page registered for the given
// route.
func (h *FrontendHandler) Page(route string) http.HandlerFunc {
	name := pageFiles[route]
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(h.pages, name)
		if err != nil {
			slog.Error("failed to read embedded page", "page", name, "error", err)
			writeJSONError(w, http.StatusInternalServerError, "Something went wrong!")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(data)
	}
}

// Routes returns the public page routes in registration order.
func (h *FrontendHandler) Routes() []string {
	return []string{"/", "/projects", "/about", "/contact", "/admin-login", "/admin-dashboard"}
}

// NotFound handles unmatched routes with a JSON 404.
func (h *FrontendHandler) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeJSONError(w, http.StatusNotFound, "Route not found")
}
