// Package primary defines the primary ports (driving adapters) for the
// application: the service contracts the board view programs against.
package primary

import (
	"context"
	"errors"

	"github.com/example/hearth/internal/core/subitem"
)

// ErrBlankTitle is returned when a create or rename carries an empty or
// whitespace-only title. Callers treat it as a validation skip: no write
// happened and nothing needs surfacing beyond a silent no-op.
var ErrBlankTitle = errors.New("title is blank")

// ErrBlankContent is the validation-skip sentinel for empty post content.
var ErrBlankContent = errors.New("content is blank")

// ProjectService defines the primary port for project operations.
type ProjectService interface {
	// CreateProject creates a new project in a space.
	CreateProject(ctx context.Context, req CreateProjectRequest) (*CreateProjectResponse, error)

	// GetProject retrieves a project by ID.
	GetProject(ctx context.Context, projectID string) (*Project, error)

	// ListProjects lists projects with optional filters.
	ListProjects(ctx context.Context, filters ProjectFilters) ([]*Project, error)

	// DeleteProject deletes a project and everything under it.
	DeleteProject(ctx context.Context, projectID string) error

	// GetBoard retrieves the full board for a project: active phases in
	// position order with their items, plus the completed phase set.
	GetBoard(ctx context.Context, projectID string) (*Board, error)
}

// CreateProjectRequest contains parameters for creating a project.
type CreateProjectRequest struct {
	SpaceID     string
	Name        string
	Description string
}

// CreateProjectResponse contains the result of creating a project.
type CreateProjectResponse struct {
	ProjectID string
	Project   *Project
}

// ProjectFilters contains filter options for listing projects.
type ProjectFilters struct {
	SpaceID string
	Status  string
}

// Project represents a project entity at the port boundary.
type Project struct {
	ID          string
	SpaceID     string
	Name        string
	Description string
	Status      string
	CreatedAt   string
	UpdatedAt   string
}

// Board is the aggregated read the view renders.
type Board struct {
	Project   *Project
	Active    []*Phase // position order, items populated
	Completed []*Phase // completion-time order, items populated
}

// Phase represents a phase entity at the port boundary.
type Phase struct {
	ID          string
	ProjectID   string
	Title       string
	Position    int
	Status      string
	AssignedTo  string
	CreatedAt   string
	CompletedAt string
	Items       []*Item // populated on board reads
}

// Item represents a phase item entity at the port boundary.
type Item struct {
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
	CompletedAt string
}
