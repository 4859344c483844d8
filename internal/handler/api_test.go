// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/olegiv/folio-go/internal/model"
	"github.com/olegiv/folio-go/internal/store"
	"github.com/olegiv/folio-go/internal/testutil"
)

func executeJSONRequest(handler http.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decoding response body %q: %v", w.Body.String(), err)
	}
}

func TestListProjectsEmpty(t *testing.T) {
	db := testutil.TestDB(t)
	h := NewAPIHandler(db)

	w := executeJSONRequest(h.ListProjects, http.MethodGet, "/api/projects", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	// An empty table serializes as [], never null.
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("body = %q, want []", w.Body.String())
	}
}

func TestListProjects(t *testing.T) {
	db := testutil.TestDB(t)
	queries := store.New(db)
	ctx := context.Background()

	for _, title := range []string{"First", "Second"} {
		if _, err := queries.CreateProject(ctx, store.CreateProjectParams{Title: title}); err != nil {
			t.Fatalf("CreateProject() error = %v", err)
		}
	}

	h := NewAPIHandler(db)
	w := executeJSONRequest(h.ListProjects, http.MethodGet, "/api/projects", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var projects []model.Project
	decodeBody(t, w, &projects)
	if len(projects) != 2 {
		t.Fatalf("got %d projects, want 2", len(projects))
	}
	if projects[0].Title != "Second" {
		t.Errorf("projects[0].Title = %q, want newest project first", projects[0].Title)
	}
}

func TestCreateProject(t *testing.T) {
	db := testutil.TestDB(t)
	h := NewAPIHandler(db)

	body := `{"title":"New Project","description":"A thing","technologies":"Go"}`
	w := executeJSONRequest(h.CreateProject, http.MethodPost, "/api/projects", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var resp struct {
		ID      int64  `json:"id"`
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)
	if resp.ID < 1 {
		t.Errorf("id = %d, want >= 1", resp.ID)
	}
	if resp.Message != "Project created successfully" {
		t.Errorf("message = %q, want %q", resp.Message, "Project created successfully")
	}

	got, err := store.New(db).GetProjectByID(context.Background(), resp.ID)
	if err != nil {
		t.Fatalf("GetProjectByID() error = %v", err)
	}
	if got.Title != "New Project" {
		t.Errorf("stored Title = %q, want %q", got.Title, "New Project")
	}
}

func TestCreateProjectValidation(t *testing.T) {
	db := testutil.TestDB(t)
	h := NewAPIHandler(db)

	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"description":"No title here"}`},
		{"empty title", `{"title":""}`},
		{"whitespace title", `{"title":"   "}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := executeJSONRequest(h.CreateProject, http.MethodPost, "/api/projects", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			var resp struct {
				Error   string            `json:"error"`
				Details map[string]string `json:"details"`
			}
			decodeBody(t, w, &resp)
			if resp.Error != "Validation failed" {
				t.Errorf("error = %q, want %q", resp.Error, "Validation failed")
			}
			if resp.Details["title"] != "title is required" {
				t.Errorf("details[title] = %q, want %q", resp.Details["title"], "title is required")
			}
		})
	}
}

func TestCreateProjectMalformedBody(t *testing.T) {
	db := testutil.TestDB(t)
	h := NewAPIHandler(db)

	w := executeJSONRequest(h.CreateProject, http.MethodPost, "/api/projects", `{"title":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestSubmitContact(t *testing.T) {
	db := testutil.TestDB(t)
	h := NewAPIHandler(db)

	body := `{"name":"Jane","email":"jane@example.com","message":"Hi there"}`
	w := executeJSONRequest(h.SubmitContact, http.MethodPost, "/api/contact", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)
	if resp.Message != "Message sent successfully" {
		t.Errorf("message = %q, want %q", resp.Message, "Message sent successfully")
	}

	messages, err := store.New(db).ListContactMessages(context.Background())
	if err != nil {
		t.Fatalf("ListContactMessages() error = %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("stored %d messages, want 1", len(messages))
	}
	if messages[0].Email != "jane@example.com" {
		t.Errorf("stored Email = %q, want %q", messages[0].Email, "jane@example.com")
	}
	if messages[0].IsRead {
		t.Error("new message stored as read")
	}
}

func TestSubmitContactValidation(t *testing.T) {
	db := testutil.TestDB(t)
	h := NewAPIHandler(db)

	tests := []struct {
		name         string
		body         string
		missingField string
	}{
		{"missing name", `{"email":"a@b.c","message":"hi"}`, "name"},
		{"missing email", `{"name":"Jane","message":"hi"}`, "email"},
		{"missing message", `{"name":"Jane","email":"a@b.c"}`, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := executeJSONRequest(h.SubmitContact, http.MethodPost, "/api/contact", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			var resp struct {
				Details map[string]string `json:"details"`
			}
			decodeBody(t, w, &resp)
			if _, ok := resp.Details[tt.missingField]; !ok {
				t.Errorf("details missing entry for %q: %v", tt.missingField, resp.Details)
			}
		})
	}
}
