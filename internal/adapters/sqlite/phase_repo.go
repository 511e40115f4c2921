package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/hearth/internal/ports/secondary"
)

// PhaseRepository implements secondary.PhaseRepository with SQLite.
type PhaseRepository struct {
	db *sql.DB
}

// NewPhaseRepository creates a new SQLite phase repository.
func NewPhaseRepository(db *sql.DB) *PhaseRepository {
	return &PhaseRepository{db: db}
}

const phaseSelectCols = "id, project_id, title, position, status, assigned_to, created_at, updated_at, completed_at"

// scanPhase scans a phase row into a PhaseRecord.
func scanPhase(scanner interface {
	Scan(dest ...any) error
}) (*secondary.PhaseRecord, error) {
	var (
		assignedTo  sql.NullString
		createdAt   time.Time
		updatedAt   time.Time
		completedAt sql.NullTime
	)

	record := &secondary.PhaseRecord{}
	err := scanner.Scan(
		&record.ID, &record.ProjectID, &record.Title, &record.Position,
		&record.Status, &assignedTo, &createdAt, &updatedAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}

	record.AssignedTo = assignedTo.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	if completedAt.Valid {
		record.CompletedAt = completedAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

// Create persists a new phase.
func (r *PhaseRepository) Create(ctx context.Context, phase *secondary.PhaseRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO phases (id, project_id, title, position, status) VALUES (?, ?, ?, ?, 'active')",
		phase.ID, phase.ProjectID, phase.Title, phase.Position,
	)
	if err != nil {
		return fmt.Errorf("failed to create phase: %w", err)
	}

	return nil
}

// GetByID retrieves a phase by its ID.
func (r *PhaseRepository) GetByID(ctx context.Context, id string) (*secondary.PhaseRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+phaseSelectCols+" FROM phases WHERE id = ?",
		id,
	)

	record, err := scanPhase(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("phase %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get phase: %w", err)
	}

	return record, nil
}

// ListByProject retrieves a project's phases. Active phases come back in
// position order; completed phases have no position ordering and come back
// by completion time.
func (r *PhaseRepository) ListByProject(ctx context.Context, projectID, status string) ([]*secondary.PhaseRecord, error) {
	query := "SELECT " + phaseSelectCols + " FROM phases WHERE project_id = ?"
	args := []any{projectID}

	if status != "" {
		query += " AND status = ?"
		args = append(args, status)
	}

	if status == "completed" {
		query += " ORDER BY completed_at ASC"
	} else {
		query += " ORDER BY position ASC"
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list phases: %w", err)
	}
	defer rows.Close()

	var phases []*secondary.PhaseRecord
	for rows.Next() {
		record, err := scanPhase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan phase: %w", err)
		}
		phases = append(phases, record)
	}

	return phases, nil
}

// UpdatePosition sets a phase's position to an absolute value.
func (r *PhaseRepository) UpdatePosition(ctx context.Context, id string, position int) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE phases SET position = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		position, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update phase position: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("phase %s not found", id)
	}

	return nil
}

// UpdateStatus sets status and completed_at together.
func (r *PhaseRepository) UpdateStatus(ctx context.Context, id, status, completedAt string) error {
	var completed sql.NullString
	if completedAt != "" {
		completed = sql.NullString{String: completedAt, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE phases SET status = ?, completed_at = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		status, completed, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update phase status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("phase %s not found", id)
	}

	return nil
}

// UpdateTitle renames a phase.
func (r *PhaseRepository) UpdateTitle(ctx context.Context, id, title string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE phases SET title = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		title, id,
	)
	if err != nil {
		return fmt.Errorf("failed to rename phase: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("phase %s not found", id)
	}

	return nil
}

// Assign sets or clears the assigned user.
func (r *PhaseRepository) Assign(ctx context.Context, id, userID string) error {
	var assigned sql.NullString
	if userID != "" {
		assigned = sql.NullString{String: userID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE phases SET assigned_to = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		assigned, id,
	)
	if err != nil {
		return fmt.Errorf("failed to assign phase: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("phase %s not found", id)
	}

	return nil
}

// Delete removes a phase; its items cascade via foreign key.
func (r *PhaseRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM phases WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete phase: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("phase %s not found", id)
	}

	return nil
}

// CountActive returns the number of active phases in a project.
func (r *PhaseRepository) CountActive(ctx context.Context, projectID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM phases WHERE project_id = ? AND status = 'active'",
		projectID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active phases: %w", err)
	}
	return count, nil
}

// GetNextID returns the next available phase ID.
func (r *PhaseRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 4) AS INTEGER)), 0) FROM phases",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next phase ID: %w", err)
	}

	return fmt.Sprintf("PH-%03d", maxID+1), nil
}

// Ensure PhaseRepository implements the interface
var _ secondary.PhaseRepository = (*PhaseRepository)(nil)
