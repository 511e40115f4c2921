package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/example/hearth/internal/core/update"
	"github.com/example/hearth/internal/ctxutil"
	"github.com/example/hearth/internal/ports/secondary"
)

// ActivityWriter appends system records and posts to a project's updates
// feed. Every write is best-effort: a failed append is reported to errOut
// and swallowed, it never blocks or reverses the state change that
// triggered it.
type ActivityWriter struct {
	updateRepo secondary.UpdateRepository
	errOut     io.Writer
	now        func() time.Time
}

// NewActivityWriter creates a new ActivityWriter reporting failures to errOut.
func NewActivityWriter(updateRepo secondary.UpdateRepository, errOut io.Writer) *ActivityWriter {
	return &ActivityWriter{
		updateRepo: updateRepo,
		errOut:     errOut,
		now:        time.Now,
	}
}

// Record appends a feed entry attributed to the acting user from ctx.
// Fire-and-forget: failures are logged to errOut, never returned.
func (w *ActivityWriter) Record(ctx context.Context, projectID, content string, updateType update.Type) {
	authorID := ctxutil.ActorFromContext(ctx)
	if authorID == "" {
		// No declared actor - skip the entry rather than attribute it to
		// nobody. The state change it describes has already landed.
		return
	}

	id, err := w.updateRepo.GetNextID(ctx)
	if err != nil {
		fmt.Fprintf(w.errOut, "warning: failed to record %s activity: %v\n", updateType, err)
		return
	}

	record := &secondary.UpdateRecord{
		ID:         id,
		ProjectID:  projectID,
		AuthorID:   authorID,
		Content:    content,
		UpdateType: string(updateType),
		CreatedAt:  w.now().Format(time.RFC3339),
	}

	if err := w.updateRepo.Create(ctx, record); err != nil {
		fmt.Fprintf(w.errOut, "warning: failed to record %s activity: %v\n", updateType, err)
	}
}
