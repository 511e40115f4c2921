// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/hearth/internal/ports/secondary"
)

// ProjectRepository implements secondary.ProjectRepository with SQLite.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new SQLite project repository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectSelectCols = "id, space_id, name, description, status, created_at, updated_at"

// scanProject scans a project row into a ProjectRecord.
func scanProject(scanner interface {
	Scan(dest ...any) error
}) (*secondary.ProjectRecord, error) {
	var (
		desc      sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.ProjectRecord{}
	err := scanner.Scan(
		&record.ID, &record.SpaceID, &record.Name, &desc, &record.Status,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Description = desc.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// Create persists a new project.
func (r *ProjectRepository) Create(ctx context.Context, project *secondary.ProjectRecord) error {
	var desc sql.NullString
	if project.Description != "" {
		desc = sql.NullString{String: project.Description, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO projects (id, space_id, name, description, status) VALUES (?, ?, ?, ?, 'active')",
		project.ID, project.SpaceID, project.Name, desc,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// GetByID retrieves a project by its ID.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+projectSelectCols+" FROM projects WHERE id = ?",
		id,
	)

	record, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return record, nil
}

// List retrieves projects matching the given filters.
func (r *ProjectRepository) List(ctx context.Context, filters secondary.ProjectFilters) ([]*secondary.ProjectRecord, error) {
	query := "SELECT " + projectSelectCols + " FROM projects WHERE 1=1"
	args := []any{}

	if filters.SpaceID != "" {
		query += " AND space_id = ?"
		args = append(args, filters.SpaceID)
	}

	if filters.Status != "" {
		query += " AND status = ?"
		args = append(args, filters.Status)
	}

	query += " ORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*secondary.ProjectRecord
	for rows.Next() {
		record, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, record)
	}

	return projects, nil
}

// Delete removes a project from persistence.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("project %s not found", id)
	}

	return nil
}

// Exists checks if a project exists.
func (r *ProjectRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM projects WHERE id = ?", id,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check project: %w", err)
	}
	return count > 0, nil
}

// GetNextID returns the next available project ID.
func (r *ProjectRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM projects",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next project ID: %w", err)
	}

	return fmt.Sprintf("PROJ-%03d", maxID+1), nil
}

// Ensure ProjectRepository implements the interface
var _ secondary.ProjectRepository = (*ProjectRepository)(nil)
