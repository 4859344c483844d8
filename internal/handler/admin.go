// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/folio-go/internal/auth"
	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/store"
)

// AdminHandler handles admin panel routes: login, dashboard stats, project
// CRUD and contact message management.
type AdminHandler struct {
	queries *store.Queries
	tokens  *auth.TokenService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(db *sql.DB, tokens *auth.TokenService) *AdminHandler {
	return &AdminHandler{
		queries: store.New(db),
		tokens:  tokens,
	}
}

// LoginRequest is the request body for admin login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the successful login response.
type LoginResponse struct {
	Token string        `json:"token"`
	User  model.Profile `json:"user"`
}

// Login handles POST /admin/login. An unknown username and a wrong password
// produce the same response, so the two cases cannot be told apart.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	user, err := h.queries.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logAndInternalError(w, "Login failed", "failed to look up user", "error", err)
		return
	}

	valid, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil {
		logAndInternalError(w, "Login failed", "failed to verify password", "error", err, "user_id", user.ID)
		return
	}
	if !valid {
		writeJSONError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Username)
	if err != nil {
		logAndInternalError(w, "Login failed", "failed to issue token", "error", err, "user_id", user.ID)
		return
	}

	slog.Info("admin login", "user_id", user.ID, "username", user.Username)
	writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: user.Profile()})
}

// DashboardStats holds the dashboard counters.
type DashboardStats struct {
	TotalProjects  int64 `json:"totalProjects"`
	TotalMessages  int64 `json:"totalMessages"`
	UnreadMessages int64 `json:"unreadMessages"`
}

// Stats handles GET /admin/dashboard/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	totalProjects, err := h.queries.CountProjects(r.Context())
	if err != nil {
		logAndInternalError(w, "Failed to get dashboard stats", "failed to count projects", "error", err)
		return
	}
	totalMessages, err := h.queries.CountContactMessages(r.Context())
	if err != nil {
		logAndInternalError(w, "Failed to get dashboard stats", "failed to count messages", "error", err)
		return
	}
	unreadMessages, err := h.queries.CountUnreadContactMessages(r.Context())
	if err != nil {
		logAndInternalError(w, "Failed to get dashboard stats", "failed to count unread messages", "error", err)
		return
	}

	writeJSON(w, http.StatusOK, DashboardStats{
		TotalProjects:  totalProjects,
		TotalMessages:  totalMessages,
		UnreadMessages: unreadMessages,
	})
}

// ListProjects handles GET /admin/projects.
func (h *AdminHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
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

// CreateProject handles POST /admin/projects.
func (h *AdminHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	createProject(w, r, h.queries)
}

// UpdateProject handles PUT /admin/projects/{id} - full replace of all
// mutable fields, refreshing the updated timestamp.
func (h *AdminHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req ProjectRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if errs := validateRequired(map[string]string{"title": req.Title}, "title"); errs != nil {
		writeValidationError(w, errs)
		return
	}

	if _, err := h.queries.UpdateProject(r.Context(), store.UpdateProjectParams{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ProjectURL:   req.ProjectURL,
		Technologies: req.Technologies,
	}); err != nil {
		logAndInternalError(w, "Failed to update project", "failed to update project", "error", err, "project_id", id)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Project updated successfully"})
}

// DeleteProject handles DELETE /admin/projects/{id}. Deleting an absent id
// still returns 200; the statement simply affects zero rows.
func (h *AdminHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if _, err := h.queries.DeleteProject(r.Context(), id); err != nil {
		logAndInternalError(w, "Failed to delete project", "failed to delete project", "error", err, "project_id", id)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Project deleted successfully"})
}

// ListMessages handles GET /admin/messages.
func (h *AdminHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.queries.ListContactMessages(r.Context())
	if err != nil {
		logAndInternalError(w, "Failed to retrieve messages", "failed to list messages", "error", err)
		return
	}
	if messages == nil {
		messages = []model.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}

// MarkMessageRead handles PUT /admin/messages/{id}/read. The flip is one-way
// and idempotent; repeating it is not an error.
func (h *AdminHandler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if _, err := h.queries.MarkContactMessageRead(r.Context(), id); err != nil {
		logAndInternalError(w, "Failed to mark message as read", "failed to mark message read", "error", err, "message_id", id)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Message marked as read"})
}

// DeleteMessage handles DELETE /admin/messages/{id}. Deleting an absent id
// still returns 200.
func (h *AdminHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if _, err := h.queries.DeleteContactMessage(r.Context(), id); err != nil {
		logAndInternalError(w, "Failed to delete message", "failed to delete message", "error", err, "message_id", id)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Message deleted successfully"})
}

// parseIDParam parses the {id} URL parameter. On failure it writes a 400
// response and returns false.
func parseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		writeJSONError(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return id, true
}
