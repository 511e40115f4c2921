// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema; do not hardcode CREATE TABLE statements in test
// files. Use setupTestDB() and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/hearth/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// A single connection keeps the in-memory database (and its pragmas)
	// alive for the whole test.
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedSpace inserts a test space and returns its ID.
func seedSpace(t *testing.T, db *sql.DB, id, name string) string {
	t.Helper()
	if id == "" {
		id = "SPACE-001"
	}
	if name == "" {
		name = "Test Space"
	}
	_, err := db.Exec("INSERT INTO spaces (id, name) VALUES (?, ?)", id, name)
	if err != nil {
		t.Fatalf("failed to seed space: %v", err)
	}
	return id
}

// seedUser inserts a test user and returns its ID.
func seedUser(t *testing.T, db *sql.DB, id, spaceID, name string) string {
	t.Helper()
	if id == "" {
		id = "USER-001"
	}
	if spaceID == "" {
		spaceID = "SPACE-001"
	}
	if name == "" {
		name = "Test User"
	}
	_, err := db.Exec("INSERT INTO users (id, space_id, name) VALUES (?, ?, ?)", id, spaceID, name)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return id
}

// seedProject inserts a test project and returns its ID.
func seedProject(t *testing.T, db *sql.DB, id, spaceID, name string) string {
	t.Helper()
	if id == "" {
		id = "PROJ-001"
	}
	if spaceID == "" {
		spaceID = "SPACE-001"
	}
	if name == "" {
		name = "Test Project"
	}
	_, err := db.Exec("INSERT INTO projects (id, space_id, name, status) VALUES (?, ?, ?, 'active')", id, spaceID, name)
	if err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	return id
}

// seedPhase inserts a test phase and returns its ID.
func seedPhase(t *testing.T, db *sql.DB, id, projectID, title string, position int) string {
	t.Helper()
	if id == "" {
		id = "PH-001"
	}
	if projectID == "" {
		projectID = "PROJ-001"
	}
	if title == "" {
		title = "Test Phase"
	}
	_, err := db.Exec("INSERT INTO phases (id, project_id, title, position, status) VALUES (?, ?, ?, ?, 'active')", id, projectID, title, position)
	if err != nil {
		t.Fatalf("failed to seed phase: %v", err)
	}
	return id
}

// seedItem inserts a test item and returns its ID.
func seedItem(t *testing.T, db *sql.DB, id, phaseID, title string, position int) string {
	t.Helper()
	if id == "" {
		id = "ITEM-001"
	}
	if phaseID == "" {
		phaseID = "PH-001"
	}
	if title == "" {
		title = "Test Item"
	}
	_, err := db.Exec("INSERT INTO phase_items (id, phase_id, title, position, completed) VALUES (?, ?, ?, ?, 0)", id, phaseID, title, position)
	if err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}
	return id
}
