package primary

import "context"

// BoardService defines the primary port for drag-reorder operations. It is
// the controller behind both drag axes: phases within a project and items
// within a phase share the same contract, only the parent-key resolution
// differs.
type BoardService interface {
	// MovePhase handles a phase drag gesture within a project's active set.
	MovePhase(ctx context.Context, req MovePhaseRequest) (*MoveResponse, error)

	// MoveItem handles an item drag gesture within a phase.
	MoveItem(ctx context.Context, req MoveItemRequest) (*MoveResponse, error)

	// ReorderSubItems moves a checklist entry within an item. Purely an
	// in-memory reorder of the decoded sequence, flushed as one item write
	// rather than per-entry position writes.
	ReorderSubItems(ctx context.Context, itemID string, oldIndex, newIndex int) error
}

// MovePhaseRequest describes a phase drag gesture: the dragged phase and
// the phase it was dropped on. An empty OverID means dropped outside any
// valid target.
type MovePhaseRequest struct {
	ProjectID string
	ActiveID  string
	OverID    string
}

// MoveItemRequest describes an item drag gesture within one phase.
type MoveItemRequest struct {
	PhaseID  string
	ActiveID string
	OverID   string
}

// MoveResponse reports the outcome of a drag gesture.
//
// Order always reflects the state the view should render: the optimistic
// new ordering when persistence succeeded, or the authoritative reloaded
// ordering when any position write failed (Reloaded=true, and MovePhase/
// MoveItem also return the write error). Moved=false means the gesture was
// a no-op - dropped in place, dropped outside a target, or the dragged id
// vanished under a concurrent change.
type MoveResponse struct {
	Moved    bool
	Reloaded bool
	Order    []*OrderedEntry
}

// OrderedEntry is one member of the post-move ordering.
type OrderedEntry struct {
	ID       string
	Title    string
	Position int
}
