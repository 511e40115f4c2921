package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/hearth/internal/core/update"
)

func TestActivityWriterRecords(t *testing.T) {
	updateRepo := newMockUpdateRepository()
	writer := NewActivityWriter(updateRepo, &bytes.Buffer{})

	writer.Record(actorCtx(), "PROJ-001", `created phase "Demolition"`, update.TypePhaseCreated)

	if len(updateRepo.updates) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(updateRepo.updates))
	}
	entry := updateRepo.updates[0]
	if entry.AuthorID != "USER-001" {
		t.Errorf("expected author from context, got %q", entry.AuthorID)
	}
	if entry.UpdateType != "phase_created" {
		t.Errorf("expected phase_created, got %q", entry.UpdateType)
	}
}

func TestActivityWriterSkipsWithoutActor(t *testing.T) {
	updateRepo := newMockUpdateRepository()
	writer := NewActivityWriter(updateRepo, &bytes.Buffer{})

	writer.Record(context.Background(), "PROJ-001", "anonymous", update.TypePost)

	if len(updateRepo.updates) != 0 {
		t.Error("no actor means no entry")
	}
}

func TestActivityWriterSwallowsFailures(t *testing.T) {
	updateRepo := newMockUpdateRepository()
	updateRepo.createErr = errors.New("feed unavailable")
	var warnings bytes.Buffer
	writer := NewActivityWriter(updateRepo, &warnings)

	writer.Record(actorCtx(), "PROJ-001", "lost entry", update.TypePhaseDeleted)

	if !strings.Contains(warnings.String(), "phase_deleted") {
		t.Errorf("expected a warning naming the entry type, got %q", warnings.String())
	}
}
