// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides HTTP handlers for the application.
package handler

import (
	"database/sql"
	"net/http"

	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/store"
)

// APIHandler handles the public, unauthenticated API routes.
type APIHandler struct {
	queries *store.Queries
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(db *sql.DB) *APIHandler {
	return &APIHandler{queries: store.New(db)}
}

// ProjectRequest is the request body for creating or updating a project.
type ProjectRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl"`
	ProjectURL   string `json:"projectUrl"`
	Technologies string `json:"technologies"`
}

// ListProjects handles GET /api/projects - returns all projects newest first.
func (h *APIHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.queries.ListProjects(r.Context())
	if err != nil {
		logAndInternalError(w, "Failed to retrieve projects", "failed to list projects", "error", err)
		return
	}
	if projects == nil {
		projects = []model.Project{}
	}
	writeJSON(w, http.StatusOK, projects)
}

// CreateProject handles POST /api/projects. The route is intentionally
// unauthenticated and shares its contract with the admin create route.
func (h *APIHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	createProject(w, r, h.queries)
}

// ContactRequest is the request body for a contact form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmitContact handles POST /api/contact - persists a contact message.
func (h *APIHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if errs := validateRequired(map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"message": req.Message,
	}, "name", "email", "message"); errs != nil {
		writeValidationError(w, errs)
		return
	}

	if _, err := h.queries.CreateContactMessage(r.Context(), store.CreateContactMessageParams{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}); err != nil {
		logAndInternalError(w, "Failed to send message", "failed to create contact message", "error", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"message": "Message sent successfully"})
}

// createProject is shared by the public and admin create-project routes,
// which have an identical contract.
func createProject(w http.ResponseWriter, r *http.Request, queries *store.Queries) {
	var req ProjectRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if errs := validateRequired(map[string]string{"title": req.Title}, "title"); errs != nil {
		writeValidationError(w, errs)
		return
	}

	id, err := queries.CreateProject(r.Context(), store.CreateProjectParams{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		Technologies: req.Technologies,
	})
	if err != nil {
		logAndInternalError(w, "Failed to create project", "failed to create project", "error", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":      id,
		"message": "Project created successfully",
	})
}
