package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/hearth/internal/ports/secondary"
)

// UpdateRepository implements secondary.UpdateRepository with SQLite.
type UpdateRepository struct {
	db *sql.DB
}

// NewUpdateRepository creates a new SQLite updates-feed repository.
func NewUpdateRepository(db *sql.DB) *UpdateRepository {
	return &UpdateRepository{db: db}
}

const updateSelectCols = "id, project_id, author_id, content, update_type, created_at"

// scanUpdate scans a feed row into an UpdateRecord.
func scanUpdate(scanner interface {
	Scan(dest ...any) error
}) (*secondary.UpdateRecord, error) {
	var createdAt time.Time

	record := &secondary.UpdateRecord{}
	err := scanner.Scan(
		&record.ID, &record.ProjectID, &record.AuthorID, &record.Content,
		&record.UpdateType, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// Create persists a new feed entry.
func (r *UpdateRepository) Create(ctx context.Context, update *secondary.UpdateRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO project_updates (id, project_id, author_id, content, update_type) VALUES (?, ?, ?, ?, ?)",
		update.ID, update.ProjectID, update.AuthorID, update.Content, update.UpdateType,
	)
	if err != nil {
		return fmt.Errorf("failed to create update: %w", err)
	}

	return nil
}

// GetByID retrieves a feed entry by its ID.
func (r *UpdateRepository) GetByID(ctx context.Context, id string) (*secondary.UpdateRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+updateSelectCols+" FROM project_updates WHERE id = ?",
		id,
	)

	record, err := scanUpdate(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("update %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get update: %w", err)
	}

	return record, nil
}

// ListByProject retrieves a project's feed entries newest-first.
func (r *UpdateRepository) ListByProject(ctx context.Context, projectID string, limit int) ([]*secondary.UpdateRecord, error) {
	query := "SELECT " + updateSelectCols + " FROM project_updates WHERE project_id = ? ORDER BY created_at DESC, id DESC"
	args := []any{projectID}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list updates: %w", err)
	}
	defer rows.Close()

	var updates []*secondary.UpdateRecord
	for rows.Next() {
		record, err := scanUpdate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan update: %w", err)
		}
		updates = append(updates, record)
	}

	return updates, nil
}

// UpdateContent replaces the content of a feed entry.
func (r *UpdateRepository) UpdateContent(ctx context.Context, id, content string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE project_updates SET content = ? WHERE id = ?",
		content, id,
	)
	if err != nil {
		return fmt.Errorf("failed to edit update: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("update %s not found", id)
	}

	return nil
}

// Delete removes a feed entry from persistence.
func (r *UpdateRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM project_updates WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete update: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("update %s not found", id)
	}

	return nil
}

// GetNextID returns the next available update ID.
func (r *UpdateRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM project_updates",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next update ID: %w", err)
	}

	return fmt.Sprintf("UPD-%03d", maxID+1), nil
}

// Ensure UpdateRepository implements the interface
var _ secondary.UpdateRepository = (*UpdateRepository)(nil)
