package primary

import (
	"context"

	"github.com/example/hearth/internal/core/subitem"
)

// ItemService defines the primary port for phase item operations.
type ItemService interface {
	// CreateItem creates a new item at the end of its phase's ordering.
	// Returns ErrBlankTitle for whitespace-only titles.
	CreateItem(ctx context.Context, req CreateItemRequest) (*CreateItemResponse, error)

	// GetItem retrieves an item by ID.
	GetItem(ctx context.Context, itemID string) (*Item, error)

	// ToggleItem flips an item's completion state. Completing may cascade
	// into phase auto-completion; see ToggleItemResponse.
	ToggleItem(ctx context.Context, itemID string) (*ToggleItemResponse, error)

	// UpdateItem writes the drawer-editable fields in one batch.
	UpdateItem(ctx context.Context, req UpdateItemRequest) error

	// DeleteItem deletes an item, compacting the surviving ordering.
	DeleteItem(ctx context.Context, itemID string) error

	// AddSubItem appends a checklist entry to an item.
	AddSubItem(ctx context.Context, itemID, text string) error

	// ToggleSubItem flips a checklist entry's completed flag.
	ToggleSubItem(ctx context.Context, itemID, subItemID string) error
}

// CreateItemRequest contains parameters for creating an item.
type CreateItemRequest struct {
	PhaseID string
	Title   string
}

// CreateItemResponse contains the result of creating an item.
type CreateItemResponse struct {
	ItemID string
	Item   *Item
}

// ToggleItemResponse reports a completion toggle and any cascade outcome.
//
// The item write is authoritative: when ToggleItem returns a nil error the
// toggle itself landed. PhaseCompleted reports whether the cascade fired.
// CascadeErr carries a failed phase-status write - a recoverable
// inconsistency (the phase shows as not-yet-auto-completed and the next
// completing toggle re-evaluates), surfaced as a notice, never as a toggle
// failure.
type ToggleItemResponse struct {
	Item           *Item
	PhaseCompleted bool
	CascadeErr     error
}

// UpdateItemRequest contains the drawer-editable fields. Nil pointers leave
// the corresponding field untouched; the sub-item sequence, when non-nil,
// replaces the stored sequence wholesale (the drawer's Save flushes the
// in-memory checklist in one batch).
type UpdateItemRequest struct {
	ItemID     string
	Title      *string
	Notes      *string
	DueDate    *string
	AssignedTo *string
	SubItems   []subitem.SubItem
}
