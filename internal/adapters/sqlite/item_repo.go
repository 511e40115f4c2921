package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/hearth/internal/core/subitem"
	"github.com/example/hearth/internal/ports/secondary"
)

// ItemRepository implements secondary.ItemRepository with SQLite.
//
// The sub-item codec lives here and only here: the sub_items column holds a
// JSON array of encoded sub-item strings, and everything above this adapter
// deals in decoded values.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new SQLite item repository.
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemSelectCols = "id, phase_id, title, position, completed, assigned_to, due_date, notes, sub_items, created_at, updated_at, completed_at"

// encodeSubItems serializes the decoded sequence to the stored column form.
func encodeSubItems(subs []subitem.SubItem) (sql.NullString, error) {
	if len(subs) == 0 {
		return sql.NullString{}, nil
	}
	encoded := make([]string, len(subs))
	for i, s := range subs {
		encoded[i] = subitem.Encode(s)
	}
	data, err := json.Marshal(encoded)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to encode sub-items: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// decodeSubItems parses the stored column form back to decoded values.
// Total: a column that is not a valid string array degrades to a single
// legacy entry holding the raw text, and each element decodes with its
// index as the id fallback.
func decodeSubItems(column sql.NullString) []subitem.SubItem {
	if !column.Valid || column.String == "" {
		return nil
	}
	var encoded []string
	if err := json.Unmarshal([]byte(column.String), &encoded); err != nil {
		return []subitem.SubItem{subitem.Decode(column.String, 0)}
	}
	subs := make([]subitem.SubItem, len(encoded))
	for i, s := range encoded {
		subs[i] = subitem.Decode(s, i)
	}
	return subs
}

// scanItem scans an item row into an ItemRecord.
func scanItem(scanner interface {
	Scan(dest ...any) error
}) (*secondary.ItemRecord, error) {
	var (
		assignedTo  sql.NullString
		dueDate     sql.NullString
		notes       sql.NullString
		subItems    sql.NullString
		completed   bool
		createdAt   time.Time
		updatedAt   time.Time
		completedAt sql.NullTime
	)

	record := &secondary.ItemRecord{}
	err := scanner.Scan(
		&record.ID, &record.PhaseID, &record.Title, &record.Position,
		&completed, &assignedTo, &dueDate, &notes, &subItems,
		&createdAt, &updatedAt, &completedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Completed = completed
	record.AssignedTo = assignedTo.String
	record.DueDate = dueDate.String
	record.Notes = notes.String
	record.SubItems = decodeSubItems(subItems)
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	if completedAt.Valid {
		record.CompletedAt = completedAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

// Create persists a new item.
func (r *ItemRepository) Create(ctx context.Context, item *secondary.ItemRecord) error {
	subItems, err := encodeSubItems(item.SubItems)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO phase_items (id, phase_id, title, position, completed, sub_items) VALUES (?, ?, ?, ?, 0, ?)",
		item.ID, item.PhaseID, item.Title, item.Position, subItems,
	)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	return nil
}

// GetByID retrieves an item by its ID.
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*secondary.ItemRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+itemSelectCols+" FROM phase_items WHERE id = ?",
		id,
	)

	record, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("item %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return record, nil
}

// ListByPhase retrieves a phase's items ordered by position.
func (r *ItemRepository) ListByPhase(ctx context.Context, phaseID string) ([]*secondary.ItemRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+itemSelectCols+" FROM phase_items WHERE phase_id = ? ORDER BY position ASC",
		phaseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []*secondary.ItemRecord
	for rows.Next() {
		record, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, record)
	}

	return items, nil
}

// UpdatePosition sets an item's position to an absolute value.
func (r *ItemRepository) UpdatePosition(ctx context.Context, id string, position int) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE phase_items SET position = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		position, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update item position: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("item %s not found", id)
	}

	return nil
}

// SetCompletion sets completed and completed_at together.
func (r *ItemRepository) SetCompletion(ctx context.Context, id string, completed bool, completedAt string) error {
	var stamp sql.NullString
	if completedAt != "" {
		stamp = sql.NullString{String: completedAt, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE phase_items SET completed = ?, completed_at = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		completed, stamp, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set item completion: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("item %s not found", id)
	}

	return nil
}

// Update writes the drawer-editable fields in one batch. The record's
// fields overwrite the stored row wholesale, including the sub-item
// sequence; callers load the item first and edit a full copy.
func (r *ItemRepository) Update(ctx context.Context, item *secondary.ItemRecord) error {
	subItems, err := encodeSubItems(item.SubItems)
	if err != nil {
		return err
	}

	var assignedTo, dueDate, notes sql.NullString
	if item.AssignedTo != "" {
		assignedTo = sql.NullString{String: item.AssignedTo, Valid: true}
	}
	if item.DueDate != "" {
		dueDate = sql.NullString{String: item.DueDate, Valid: true}
	}
	if item.Notes != "" {
		notes = sql.NullString{String: item.Notes, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE phase_items SET title = ?, assigned_to = ?, due_date = ?, notes = ?, sub_items = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		item.Title, assignedTo, dueDate, notes, subItems, item.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("item %s not found", item.ID)
	}

	return nil
}

// Delete removes an item from persistence.
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM phase_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("item %s not found", id)
	}

	return nil
}

// CountByPhase returns the number of items in a phase.
func (r *ItemRepository) CountByPhase(ctx context.Context, phaseID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM phase_items WHERE phase_id = ?",
		phaseID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return count, nil
}

// GetNextID returns the next available item ID.
func (r *ItemRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM phase_items",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next item ID: %w", err)
	}

	return fmt.Sprintf("ITEM-%03d", maxID+1), nil
}

// Ensure ItemRepository implements the interface
var _ secondary.ItemRepository = (*ItemRepository)(nil)
