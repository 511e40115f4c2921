package db

// SchemaSQL is the complete schema for fresh hearth installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All repository
// tests build their :memory: databases from GetSchemaSQL(), so a repository
// referencing a column that does not exist here fails immediately with
// "no such column" instead of drifting.
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Spaces (a household or small group sharing projects)
CREATE TABLE IF NOT EXISTS spaces (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Users (space members; identity is declared, not authenticated)
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	space_id TEXT NOT NULL,
	name TEXT NOT NULL,
	avatar_url TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (space_id) REFERENCES spaces(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_users_space ON users(space_id);

-- Projects
CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	space_id TEXT NOT NULL,
	name TEXT NOT NULL,
	description TEXT,
	status TEXT NOT NULL CHECK(status IN ('active', 'archived')) DEFAULT 'active',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (space_id) REFERENCES spaces(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_projects_space ON projects(space_id);

-- Phases (ordered stages within a project; position is dense 0..n-1 within
-- the project's active set, completed phases carry no position ordering)
CREATE TABLE IF NOT EXISTS phases (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	title TEXT NOT NULL,
	position INTEGER NOT NULL DEFAULT 0,
	status TEXT NOT NULL CHECK(status IN ('active', 'completed')) DEFAULT 'active',
	assigned_to TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	completed_at DATETIME,
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE,
	FOREIGN KEY (assigned_to) REFERENCES users(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_phases_project ON phases(project_id);
CREATE INDEX IF NOT EXISTS idx_phases_status ON phases(status);

-- Phase items (sub_items holds a JSON array of encoded sub-item strings;
-- legacy rows may hold plain text elements, readers degrade gracefully)
CREATE TABLE IF NOT EXISTS phase_items (
	id TEXT PRIMARY KEY,
	phase_id TEXT NOT NULL,
	title TEXT NOT NULL,
	position INTEGER NOT NULL DEFAULT 0,
	completed INTEGER NOT NULL DEFAULT 0,
	assigned_to TEXT,
	due_date TEXT,
	notes TEXT,
	sub_items TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	completed_at DATETIME,
	FOREIGN KEY (phase_id) REFERENCES phases(id) ON DELETE CASCADE,
	FOREIGN KEY (assigned_to) REFERENCES users(id) ON DELETE SET NULL
);

CREATE INDEX IF NOT EXISTS idx_phase_items_phase ON phase_items(phase_id);

-- Project updates (append-only activity feed; only 'post' entries are ever
-- edited or deleted, and only by their author)
CREATE TABLE IF NOT EXISTS project_updates (
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
);

CREATE INDEX IF NOT EXISTS idx_project_updates_project ON project_updates(project_id);
CREATE INDEX IF NOT EXISTS idx_project_updates_created ON project_updates(created_at);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Fresh install - create the modern schema directly and mark all
		// migrations as applied so they never run.
		if _, err := db.Exec(SchemaSQL); err != nil {
			return err
		}
		if _, err := db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`); err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
