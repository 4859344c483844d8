// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"

	"github.com/olegiv/folio-go/internal/model"
)

// projectColumns is the canonical column list for project scans.
const projectColumns = `id, title, description, image_url, project_url, technologies, created_at, updated_at`

// CreateProjectParams holds the field values for a new project.
type CreateProjectParams struct {
	Title        string
	Description  string
	ImageURL     string
	ProjectURL   string
	Technologies string
}

// CreateProject inserts a new project and returns its generated id.
func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO projects (title, description, image_url, project_url, technologies)
		 VALUES (?, ?, ?, ?, ?)`,
		arg.Title, arg.Description, arg.ImageURL, arg.ProjectURL, arg.Technologies,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted project id: %w", err)
	}
	return id, nil
}

// GetProjectByID returns a single project. Absent rows surface as
// sql.ErrNoRows.
func (q *Queries) GetProjectByID(ctx context.Context, id int64) (model.Project, error) {
	var p model.Project
	err := q.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id,
	).Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.ProjectURL,
		&p.Technologies, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// ListProjects returns all projects newest first. The id tiebreak keeps the
// ordering stable for rows created within the same second.
func (q *Queries) ListProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.ImageURL,
			&p.ProjectURL, &p.Technologies, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// UpdateProjectParams holds the replacement field values for a project update.
type UpdateProjectParams struct {
	ID           int64
	Title        string
	Description  string
	ImageURL     string
	ProjectURL   string
	Technologies string
}

// UpdateProject replaces all mutable fields and refreshes updated_at.
// Returns the number of affected rows; updating an absent id affects zero
// rows and is not an error.
func (q *Queries) UpdateProject(ctx context.Context, arg UpdateProjectParams) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`UPDATE projects
		 SET title = ?, description = ?, image_url = ?, project_url = ?,
		     technologies = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		arg.Title, arg.Description, arg.ImageURL, arg.ProjectURL,
		arg.Technologies, arg.ID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteProject removes a project. Deleting an absent id affects zero rows
// and is not an error.
func (q *Queries) DeleteProject(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CountProjects returns the total number of projects.
func (q *Queries) CountProjects(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count)
	return count, err
}
