// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/quickly-notes/db"
	"github.com/danielhkuo/quickly-notes/models"
)

type NoteService struct {
	db *db.DB
}

func NewNoteService(conn *db.DB) *NoteService {
	return &NoteService{db: conn}
}

// List returns the notes of a project ordered by id, at most Limit rows.
//
// Search keeps notes whose title contains the search text. A non-zero
// Cursor restricts the result to the note whose id equals the cursor; it
// is an exact match, not an "after this id" bound.
func (s *NoteService) List(ctx context.Context, params models.ListNotesParams) ([]models.Note, error) {
	exists, err := projectExists(ctx, s.db, s.db.Rebind, params.ProjectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, BadRequest("Invalid projectId")
	}

	query := `SELECT id, title, content, project_id FROM note WHERE project_id = ?`
	args := []any{params.ProjectID}

	if params.Search != "" {
		query += ` AND title LIKE ? ESCAPE '\'`
		args = append(args, "%"+escapeLike(params.Search)+"%")
	}
	if params.Cursor != 0 {
		query += ` AND id = ?`
		args = append(args, params.Cursor)
	}

	query += ` ORDER BY id ASC LIMIT ?`
	args = append(args, NormalizeLimit(params.Limit))

	rows, err := s.db.QueryContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.ProjectID); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, nil
}

// Create inserts a note after checking its project exists.
//
// When a note with the same title already exists in the project and an
// idempotency key was supplied, the create is rejected with a Conflict
// rather than replaying the earlier result. The duplicate check and the
// insert share a transaction, which does not stop two concurrent creates
// from both passing the check on READ COMMITTED stores.
func (s *NoteService) Create(ctx context.Context, req models.CreateNoteRequest, idempotencyKey string) (models.Note, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := projectExists(ctx, tx, s.db.Rebind, req.ProjectID)
	if err != nil {
		return models.Note{}, err
	}
	if !exists {
		return models.Note{}, BadRequest("Invalid projectId")
	}

	if strings.TrimSpace(req.Title) == "" {
		return models.Note{}, BadRequest("title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return models.Note{}, BadRequest("content is required")
	}

	var existingID int64
	err = tx.QueryRowContext(ctx, s.db.Rebind(`
		SELECT id FROM note WHERE title = ? AND project_id = ? LIMIT 1
	`), req.Title, req.ProjectID).Scan(&existingID)
	switch {
	case err == nil:
		if idempotencyKey != "" {
			return models.Note{}, Conflict("Note already exists")
		}
	case !errors.Is(err, sql.ErrNoRows):
		return models.Note{}, fmt.Errorf("failed to check duplicate note: %w", err)
	}

	note := models.Note{
		Title:     req.Title,
		Content:   req.Content,
		ProjectID: req.ProjectID,
	}
	err = tx.QueryRowContext(ctx, s.db.Rebind(`
		INSERT INTO note (title, content, project_id)
		VALUES (?, ?, ?)
		RETURNING id
	`), note.Title, note.Content, note.ProjectID).Scan(&note.ID)
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to insert note: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Note{}, fmt.Errorf("failed to commit note: %w", err)
	}

	return note, nil
}

func (s *NoteService) Get(ctx context.Context, id int64) (models.Note, error) {
	n, err := getNote(ctx, s.db, s.db.Rebind, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, NotFound("Note with id %d not found", id)
	}
	return n, err
}

// Update merges the non-nil fields of patch into the stored note.
// Moving a note to another project requires that project to exist.
func (s *NoteService) Update(ctx context.Context, id int64, patch models.NotePatch) (models.Note, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	note, err := getNote(ctx, tx, s.db.Rebind, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, NotFound("Note with id %d not found", id)
	}
	if err != nil {
		return models.Note{}, err
	}

	if patch.Title != nil {
		note.Title = *patch.Title
	}
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.ProjectID != nil && *patch.ProjectID != note.ProjectID {
		exists, err := projectExists(ctx, tx, s.db.Rebind, *patch.ProjectID)
		if err != nil {
			return models.Note{}, err
		}
		if !exists {
			return models.Note{}, BadRequest("Invalid projectId")
		}
		note.ProjectID = *patch.ProjectID
	}

	_, err = tx.ExecContext(ctx, s.db.Rebind(`
		UPDATE note SET title = ?, content = ?, project_id = ? WHERE id = ?
	`), note.Title, note.Content, note.ProjectID, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Note{}, fmt.Errorf("failed to commit note: %w", err)
	}

	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM note WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return NotFound("Note not found")
	}

	return nil
}

// NormalizeLimit applies the default page size and clamps to the
// server cap, models.MaxNoteLimit
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return models.DefaultNoteLimit
	}
	if limit > models.MaxNoteLimit {
		return models.MaxNoteLimit
	}
	return limit
}

func getNote(ctx context.Context, q querier, rebind func(string) string, id int64) (models.Note, error) {
	var n models.Note
	err := q.QueryRowContext(ctx, rebind(`
		SELECT id, title, content, project_id FROM note WHERE id = ?
	`), id).Scan(&n.ID, &n.Title, &n.Content, &n.ProjectID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, fmt.Errorf("failed to query note: %w", err)
	}
	return n, err
}

// escapeLike makes % and _ in user input match literally
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
