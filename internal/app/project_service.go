package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/ports/secondary"
)

// ProjectServiceImpl implements the ProjectService interface.
type ProjectServiceImpl struct {
	projectRepo secondary.ProjectRepository
	phaseRepo   secondary.PhaseRepository
	itemRepo    secondary.ItemRepository
}

// NewProjectService creates a new ProjectService with injected dependencies.
func NewProjectService(
	projectRepo secondary.ProjectRepository,
	phaseRepo secondary.PhaseRepository,
	itemRepo secondary.ItemRepository,
) *ProjectServiceImpl {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
		phaseRepo:   phaseRepo,
		itemRepo:    itemRepo,
	}
}

// CreateProject creates a new project in a space.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req primary.CreateProjectRequest) (*primary.CreateProjectResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, primary.ErrBlankTitle
	}

	id, err := s.projectRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate project ID: %w", err)
	}

	record := &secondary.ProjectRecord{
		ID:          id,
		SpaceID:     req.SpaceID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Status:      "active",
	}
	if err := s.projectRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	created, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &primary.CreateProjectResponse{
		ProjectID: id,
		Project:   recordToProject(created),
	}, nil
}

// GetProject retrieves a project by ID.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, projectID string) (*primary.Project, error) {
	record, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return recordToProject(record), nil
}

// ListProjects lists projects with optional filters.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context, filters primary.ProjectFilters) ([]*primary.Project, error) {
	records, err := s.projectRepo.List(ctx, secondary.ProjectFilters{
		SpaceID: filters.SpaceID,
		Status:  filters.Status,
	})
	if err != nil {
		return nil, err
	}

	projects := make([]*primary.Project, len(records))
	for i, r := range records {
		projects[i] = recordToProject(r)
	}
	return projects, nil
}

// DeleteProject deletes a project and everything under it.
func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, projectID string) error {
	return s.projectRepo.Delete(ctx, projectID)
}

// GetBoard retrieves the full board for a project. Active phases come
// back in position order and completed phases in completion-time order,
// each carrying its items.
func (s *ProjectServiceImpl) GetBoard(ctx context.Context, projectID string) (*primary.Board, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	active, err := s.loadPhases(ctx, projectID, "active")
	if err != nil {
		return nil, err
	}
	completed, err := s.loadPhases(ctx, projectID, "completed")
	if err != nil {
		return nil, err
	}

	return &primary.Board{
		Project:   recordToProject(project),
		Active:    active,
		Completed: completed,
	}, nil
}

func (s *ProjectServiceImpl) loadPhases(ctx context.Context, projectID, status string) ([]*primary.Phase, error) {
	records, err := s.phaseRepo.ListByProject(ctx, projectID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s phases: %w", status, err)
	}

	phases := make([]*primary.Phase, len(records))
	for i, r := range records {
		phase := recordToPhase(r)

		items, err := s.itemRepo.ListByPhase(ctx, r.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load items for phase %s: %w", r.ID, err)
		}
		phase.Items = make([]*primary.Item, len(items))
		for j, it := range items {
			phase.Items[j] = recordToItem(it)
		}

		phases[i] = phase
	}
	return phases, nil
}

// Ensure ProjectServiceImpl implements the interface
var _ primary.ProjectService = (*ProjectServiceImpl)(nil)
