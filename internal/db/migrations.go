package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "add_due_date_and_notes_to_phase_items",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_avatar_url_to_users",
		Up:      migrationV2,
	},
	{
		Version: 3,
		Name:    "add_phase_restored_update_type",
		Up:      migrationV3,
	},
}

// migrationV1 adds the drawer fields that early installs lacked.
func migrationV1(db *sql.DB) error {
	stmts := []string{
		"ALTER TABLE phase_items ADD COLUMN due_date TEXT",
		"ALTER TABLE phase_items ADD COLUMN notes TEXT",
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}
	return nil
}

// migrationV2 adds avatar URLs for assignment display.
func migrationV2(db *sql.DB) error {
	if _, err := db.Exec("ALTER TABLE users ADD COLUMN avatar_url TEXT"); err != nil {
		return fmt.Errorf("migration v2: %w", err)
	}
	return nil
}

// migrationV3 widens the update_type CHECK to include phase_restored.
// SQLite cannot alter a CHECK in place, so the table is rebuilt.
func migrationV3(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE project_updates_new (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL,
			author_id TEXT NOT NULL,
			content TEXT NOT NULL,
			update_type TEXT NOT NULL CHECK(update_type IN (
				'post', 'phase_created', 'phase_deleted', 'phase_restored',
				'phase_assigned', 'item_completed', 'phase_completed'
			)) DEFAULT 'post',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		)`,
		"INSERT INTO project_updates_new SELECT * FROM project_updates",
		"DROP TABLE project_updates",
		"ALTER TABLE project_updates_new RENAME TO project_updates",
		"CREATE INDEX IF NOT EXISTS idx_project_updates_project ON project_updates(project_id)",
		"CREATE INDEX IF NOT EXISTS idx_project_updates_created ON project_updates(created_at)",
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration v3: %w", err)
		}
	}
	return nil
}

// RunMigrations executes all pending migrations
func RunMigrations() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	for _, m := range migrations {
		var applied int
		err := db.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", m.Version).Scan(&applied)
		if err != nil {
			return fmt.Errorf("failed to check migration %d: %w", m.Version, err)
		}
		if applied > 0 {
			continue
		}

		if err := m.Up(db); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}

	return nil
}
