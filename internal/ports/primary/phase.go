package primary

import "context"

// PhaseService defines the primary port for phase operations.
type PhaseService interface {
	// CreatePhase creates a new phase at the end of the project's active
	// ordering. Returns ErrBlankTitle for whitespace-only titles.
	CreatePhase(ctx context.Context, req CreatePhaseRequest) (*CreatePhaseResponse, error)

	// GetPhase retrieves a phase by ID.
	GetPhase(ctx context.Context, phaseID string) (*Phase, error)

	// RenamePhase changes a phase's title.
	RenamePhase(ctx context.Context, phaseID, title string) error

	// DeletePhase deletes a phase and its items, compacting the surviving
	// active ordering.
	DeletePhase(ctx context.Context, phaseID string) error

	// AssignPhase assigns a phase to a space member, or clears the
	// assignment when userID is empty.
	AssignPhase(ctx context.Context, phaseID, userID string) error

	// RestorePhase manually returns a completed phase to the active set,
	// appended after the existing active phases.
	RestorePhase(ctx context.Context, phaseID string) error

	// ListMembers retrieves the assignable-user set for a space.
	ListMembers(ctx context.Context, spaceID string) ([]*Member, error)
}

// CreatePhaseRequest contains parameters for creating a phase.
type CreatePhaseRequest struct {
	ProjectID string
	Title     string
}

// CreatePhaseResponse contains the result of creating a phase.
type CreatePhaseResponse struct {
	PhaseID string
	Phase   *Phase
}

// Member represents a space member for assignment display.
type Member struct {
	ID        string
	Name      string
	AvatarURL string
}
