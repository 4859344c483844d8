// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"

	"github.com/olegiv/folio-go/internal/model"
)

const messageColumns = `id, name, email, message, created_at, is_read`

// CreateContactMessageParams holds the field values for a new contact message.
type CreateContactMessageParams struct {
	Name    string
	Email   string
	Message string
}

// CreateContactMessage inserts a new contact message and returns its
// generated id. The read flag defaults to false.
func (q *Queries) CreateContactMessage(ctx context.Context, arg CreateContactMessageParams) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO contact_messages (name, email, message) VALUES (?, ?, ?)`,
		arg.Name, arg.Email, arg.Message,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading inserted message id: %w", err)
	}
	return id, nil
}

// GetContactMessageByID returns a single contact message. Absent rows surface
// as sql.ErrNoRows.
func (q *Queries) GetContactMessageByID(ctx context.Context, id int64) (model.ContactMessage, error) {
	var m model.ContactMessage
	err := q.db.QueryRowContext(ctx,
		`SELECT `+messageColumns+` FROM contact_messages WHERE id = ?`, id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt, &m.IsRead)
	return m, err
}

// ListContactMessages returns all contact messages newest first.
func (q *Queries) ListContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+messageColumns+` FROM contact_messages ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var messages []model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt, &m.IsRead); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// MarkContactMessageRead flips the read flag to true. The flip is one-way and
// idempotent: marking an already-read message affects a row without changing
// its state, and marking an absent id affects zero rows. Neither is an error.
func (q *Queries) MarkContactMessageRead(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx,
		`UPDATE contact_messages SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteContactMessage removes a contact message. Deleting an absent id
// affects zero rows and is not an error.
func (q *Queries) DeleteContactMessage(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CountContactMessages returns the total number of contact messages.
func (q *Queries) CountContactMessages(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&count)
	return count, err
}

// CountUnreadContactMessages returns the number of messages with the read
// flag still false.
func (q *Queries) CountUnreadContactMessages(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contact_messages WHERE is_read = 0`).Scan(&count)
	return count, err
}
