// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/hearth/internal/core/subitem"
)

// ProjectRepository defines the secondary port for project persistence.
type ProjectRepository interface {
	// Create persists a new project.
	Create(ctx context.Context, project *ProjectRecord) error

	// GetByID retrieves a project by its ID.
	GetByID(ctx context.Context, id string) (*ProjectRecord, error)

	// List retrieves projects matching the given filters.
	List(ctx context.Context, filters ProjectFilters) ([]*ProjectRecord, error)

	// Delete removes a project from persistence.
	Delete(ctx context.Context, id string) error

	// Exists checks if a project exists (for validation).
	Exists(ctx context.Context, id string) (bool, error)

	// GetNextID returns the next available project ID.
	GetNextID(ctx context.Context) (string, error)
}

// ProjectRecord represents a project as stored in persistence.
type ProjectRecord struct {
	ID          string
	SpaceID     string
	Name        string
	Description string
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

// ProjectFilters contains filter options for querying projects.
type ProjectFilters struct {
	SpaceID string
	Status  string
}

// PhaseRepository defines the secondary port for phase persistence.
type PhaseRepository interface {
	// Create persists a new phase.
	Create(ctx context.Context, phase *PhaseRecord) error

	// GetByID retrieves a phase by its ID.
	GetByID(ctx context.Context, id string) (*PhaseRecord, error)

	// ListByProject retrieves a project's phases with an optional status
	// filter. Active phases come back ordered by position; completed
	// phases carry no position ordering and come back by completion time.
	ListByProject(ctx context.Context, projectID, status string) ([]*PhaseRecord, error)

	// UpdatePosition sets a phase's position to an absolute value.
	UpdatePosition(ctx context.Context, id string, position int) error

	// UpdateStatus sets status and completed_at together. An empty
	// completedAt clears the timestamp.
	UpdateStatus(ctx context.Context, id, status, completedAt string) error

	// UpdateTitle renames a phase.
	UpdateTitle(ctx context.Context, id, title string) error

	// Assign sets or clears (empty userID) the assigned user.
	Assign(ctx context.Context, id, userID string) error

	// Delete removes a phase and its items from persistence.
	Delete(ctx context.Context, id string) error

	// CountActive returns the number of active phases in a project.
	CountActive(ctx context.Context, projectID string) (int, error)

	// GetNextID returns the next available phase ID.
	GetNextID(ctx context.Context) (string, error)
}

// PhaseRecord represents a phase as stored in persistence.
type PhaseRecord struct {
	ID          string
	ProjectID   string
	Title       string
	Position    int
	Status      string
	AssignedTo  string
	CreatedAt   string
	UpdatedAt   string
	CompletedAt string
}

// ItemRepository defines the secondary port for phase item persistence.
// Sub-items cross this boundary as decoded values; their stored string form
// is an implementation detail of the adapter.
type ItemRepository interface {
	// Create persists a new item.
	Create(ctx context.Context, item *ItemRecord) error

	// GetByID retrieves an item by its ID.
	GetByID(ctx context.Context, id string) (*ItemRecord, error)

	// ListByPhase retrieves a phase's items ordered by position.
	ListByPhase(ctx context.Context, phaseID string) ([]*ItemRecord, error)

	// UpdatePosition sets an item's position to an absolute value.
	UpdatePosition(ctx context.Context, id string, position int) error

	// SetCompletion sets completed and completed_at together. An empty
	// completedAt clears the timestamp.
	SetCompletion(ctx context.Context, id string, completed bool, completedAt string) error

	// Update writes the drawer-editable fields in one batch: title, notes,
	// due date, assignee and the full replacement sub-item sequence.
	Update(ctx context.Context, item *ItemRecord) error

	// Delete removes an item from persistence.
	Delete(ctx context.Context, id string) error

	// CountByPhase returns the number of items in a phase.
	CountByPhase(ctx context.Context, phaseID string) (int, error)

	// GetNextID returns the next available item ID.
	GetNextID(ctx context.Context) (string, error)
}

// ItemRecord represents a phase item as stored in persistence.
type ItemRecord struct {
	ID          string
	PhaseID     string
	Title       string
	Position    int
	Completed   bool
	AssignedTo  string
	DueDate     string
	Notes       string
	SubItems    []subitem.SubItem
	CreatedAt   string
	UpdatedAt   string
	CompletedAt string
}

// UpdateRepository defines the secondary port for the project updates feed.
// The feed is append-only apart from author edits to posts.
type UpdateRepository interface {
	// Create persists a new feed entry.
	Create(ctx context.Context, update *UpdateRecord) error

	// GetByID retrieves a feed entry by its ID.
	GetByID(ctx context.Context, id string) (*UpdateRecord, error)

	// ListByProject retrieves a project's feed entries newest-first.
	// Limit <= 0 means no limit.
	ListByProject(ctx context.Context, projectID string, limit int) ([]*UpdateRecord, error)

	// UpdateContent replaces the content of a feed entry.
	UpdateContent(ctx context.Context, id, content string) error

	// Delete removes a feed entry from persistence.
	Delete(ctx context.Context, id string) error

	// GetNextID returns the next available update ID.
	GetNextID(ctx context.Context) (string, error)
}

// UpdateRecord represents a feed entry as stored in persistence.
type UpdateRecord struct {
	ID         string
	ProjectID  string
	AuthorID   string
	Content    string
	UpdateType string
	CreatedAt  string
}

// MemberRepository defines the secondary port for the identity lookup this
// subsystem consumes at its boundary: who exists in a space and can be
// assigned to a phase.
type MemberRepository interface {
	// GetByID retrieves a member by its ID.
	GetByID(ctx context.Context, id string) (*MemberRecord, error)

	// ListBySpace retrieves the assignable-user set for a space.
	ListBySpace(ctx context.Context, spaceID string) ([]*MemberRecord, error)
}

// MemberRecord represents a space member as provided by the identity lookup.
type MemberRecord struct {
	ID        string
	SpaceID   string
	Name      string
	AvatarURL string
}

// CelebrationNotifier defines the secondary port for the celebratory side
// effect fired when a phase auto-completes. Fire-and-forget: implementations
// return nothing and must not block.
type CelebrationNotifier interface {
	Celebrate(phaseTitle string)
}
