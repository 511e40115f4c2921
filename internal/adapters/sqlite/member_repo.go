package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/hearth/internal/ports/secondary"
)

// MemberRepository implements secondary.MemberRepository with SQLite.
type MemberRepository struct {
	db *sql.DB
}

// NewMemberRepository creates a new SQLite member repository.
func NewMemberRepository(db *sql.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

const memberSelectCols = "id, space_id, name, avatar_url"

// scanMember scans a user row into a MemberRecord.
func scanMember(scanner interface {
	Scan(dest ...any) error
}) (*secondary.MemberRecord, error) {
	var avatarURL sql.NullString

	record := &secondary.MemberRecord{}
	err := scanner.Scan(&record.ID, &record.SpaceID, &record.Name, &avatarURL)
	if err != nil {
		return nil, err
	}

	record.AvatarURL = avatarURL.String

	return record, nil
}

// GetByID retrieves a member by its ID.
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*secondary.MemberRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+memberSelectCols+" FROM users WHERE id = ?",
		id,
	)

	record, err := scanMember(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("member %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return record, nil
}

// ListBySpace retrieves the assignable-user set for a space.
func (r *MemberRepository) ListBySpace(ctx context.Context, spaceID string) ([]*secondary.MemberRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+memberSelectCols+" FROM users WHERE space_id = ? ORDER BY name ASC",
		spaceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*secondary.MemberRecord
	for rows.Next() {
		record, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, record)
	}

	return members, nil
}

// Ensure MemberRepository implements the interface
var _ secondary.MemberRepository = (*MemberRepository)(nil)
