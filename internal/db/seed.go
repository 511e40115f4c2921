package db

import (
	"database/sql"
	"fmt"
	"time"
)

// SeedFixtures populates the database with development fixtures: one space,
// two members and a project with a partially completed board.
func SeedFixtures(database *sql.DB) error {
	now := time.Now().Format(time.RFC3339)

	if _, err := database.Exec(
		"INSERT INTO spaces (id, name, created_at) VALUES (?, ?, ?)",
		"SPACE-001", "The Hearth", now,
	); err != nil {
		return fmt.Errorf("seed spaces: %w", err)
	}

	users := []struct{ id, name string }{
		{"USER-001", "Alex"},
		{"USER-002", "Sam"},
	}
	for _, u := range users {
		if _, err := database.Exec(
			"INSERT INTO users (id, space_id, name, created_at) VALUES (?, 'SPACE-001', ?, ?)",
			u.id, u.name, now,
		); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
	}

	if _, err := database.Exec(
		"INSERT INTO projects (id, space_id, name, description, status, created_at) VALUES (?, 'SPACE-001', ?, ?, 'active', ?)",
		"PROJ-001", "Kitchen renovation", "Everything for the spring remodel", now,
	); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}

	phases := []struct {
		id, title string
		position  int
	}{
		{"PH-001", "Research", 0},
		{"PH-002", "Quotes", 1},
		{"PH-003", "Build", 2},
	}
	for _, p := range phases {
		if _, err := database.Exec(
			"INSERT INTO phases (id, project_id, title, position, status, created_at) VALUES (?, 'PROJ-001', ?, ?, 'active', ?)",
			p.id, p.title, p.position, now,
		); err != nil {
			return fmt.Errorf("seed phases: %w", err)
		}
	}

	items := []struct {
		id, phaseID, title string
		position           int
		completed          bool
		subItems           string
	}{
		{"ITEM-001", "PH-001", "Collect inspiration photos", 0, true, ""},
		{"ITEM-002", "PH-001", "Measure the room", 1, false,
			`["{\"id\":\"sub-1\",\"text\":\"north wall\",\"completed\":true}","{\"id\":\"sub-2\",\"text\":\"window bay\",\"completed\":false}"]`},
		{"ITEM-003", "PH-002", "Call three contractors", 0, false, ""},
	}
	for _, it := range items {
		var subItems sql.NullString
		if it.subItems != "" {
			subItems = sql.NullString{String: it.subItems, Valid: true}
		}
		completed := 0
		var completedAt sql.NullString
		if it.completed {
			completed = 1
			completedAt = sql.NullString{String: now, Valid: true}
		}
		if _, err := database.Exec(
			"INSERT INTO phase_items (id, phase_id, title, position, completed, sub_items, created_at, completed_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			it.id, it.phaseID, it.title, it.position, completed, subItems, now, completedAt,
		); err != nil {
			return fmt.Errorf("seed phase_items: %w", err)
		}
	}

	updates := []struct{ id, content, updateType string }{
		{"UPD-001", "created phase \"Research\"", "phase_created"},
		{"UPD-002", "Found a great tile supplier, links in the doc", "post"},
		{"UPD-003", "completed \"Collect inspiration photos\"", "item_completed"},
	}
	for _, u := range updates {
		if _, err := database.Exec(
			"INSERT INTO project_updates (id, project_id, author_id, content, update_type, created_at) VALUES (?, 'PROJ-001', 'USER-001', ?, ?, ?)",
			u.id, u.content, u.updateType, now,
		); err != nil {
			return fmt.Errorf("seed project_updates: %w", err)
		}
	}

	return nil
}
