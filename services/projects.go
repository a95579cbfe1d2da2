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

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type ProjectService struct {
	db *db.DB
}

func NewProjectService(conn *db.DB) *ProjectService {
	return &ProjectService{db: conn}
}

// List returns every project ordered by id
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM project ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}

func (s *ProjectService) Get(ctx context.Context, id int64) (models.Project, error) {
	p, err := getProject(ctx, s.db, s.db.Rebind, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, NotFound("Project with id %d not found", id)
	}
	return p, err
}

// Create inserts a project. Names are not required to be unique.
func (s *ProjectService) Create(ctx context.Context, name string) (models.Project, error) {
	if strings.TrimSpace(name) == "" {
		return models.Project{}, BadRequest("name is required")
	}

	p := models.Project{Name: name}
	err := s.db.QueryRowContext(ctx, s.db.Rebind(`
		INSERT INTO project (name) VALUES (?) RETURNING id
	`), name).Scan(&p.ID)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to insert project: %w", err)
	}

	return p, nil
}

// Update renames a project; a nil name keeps the current one
func (s *ProjectService) Update(ctx context.Context, id int64, req models.UpdateProjectRequest) (models.Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return models.Project{}, err
	}

	if req.Name == nil {
		return p, nil
	}
	if strings.TrimSpace(*req.Name) == "" {
		return models.Project{}, BadRequest("name must not be empty")
	}
	p.Name = *req.Name

	res, err := s.db.ExecContext(ctx, s.db.Rebind(`UPDATE project SET name = ? WHERE id = ?`), p.Name, id)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to update project: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.Project{}, NotFound("Project with id %d not found", id)
	}

	return p, nil
}

// Delete removes a project; its notes go with it through ON DELETE CASCADE
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM project WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return NotFound("Project not found")
	}

	return nil
}

func getProject(ctx context.Context, q querier, rebind func(string) string, id int64) (models.Project, error) {
	var p models.Project
	err := q.QueryRowContext(ctx, rebind(`SELECT id, name FROM project WHERE id = ?`), id).Scan(&p.ID, &p.Name)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, fmt.Errorf("failed to query project: %w", err)
	}
	return p, err
}

func projectExists(ctx context.Context, q querier, rebind func(string) string, id int64) (bool, error) {
	_, err := getProject(ctx, q, rebind, id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
