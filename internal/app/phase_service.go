package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/hearth/internal/core/cascade"
	"github.com/example/hearth/internal/core/ordering"
	"github.com/example/hearth/internal/core/update"
	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/ports/secondary"
)

// PhaseServiceImpl implements the PhaseService interface.
type PhaseServiceImpl struct {
	phaseRepo   secondary.PhaseRepository
	projectRepo secondary.ProjectRepository
	memberRepo  secondary.MemberRepository
	activity    *ActivityWriter
}

// NewPhaseService creates a new PhaseService with injected dependencies.
func NewPhaseService(
	phaseRepo secondary.PhaseRepository,
	projectRepo secondary.ProjectRepository,
	memberRepo secondary.MemberRepository,
	activity *ActivityWriter,
) *PhaseServiceImpl {
	return &PhaseServiceImpl{
		phaseRepo:   phaseRepo,
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		activity:    activity,
	}
}

// CreatePhase creates a new phase appended to the project's active ordering.
func (s *PhaseServiceImpl) CreatePhase(ctx context.Context, req primary.CreatePhaseRequest) (*primary.CreatePhaseResponse, error) {
	if !cascade.ValidTitle(req.Title) {
		return nil, primary.ErrBlankTitle
	}
	title := strings.TrimSpace(req.Title)

	exists, err := s.projectRepo.Exists(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate project: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("project %s not found", req.ProjectID)
	}

	count, err := s.phaseRepo.CountActive(ctx, req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to count phases: %w", err)
	}

	id, err := s.phaseRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate phase ID: %w", err)
	}

	record := &secondary.PhaseRecord{
		ID:        id,
		ProjectID: req.ProjectID,
		Title:     title,
		Position:  ordering.NextPosition(count),
	}
	if err := s.phaseRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, req.ProjectID, fmt.Sprintf("created phase %q", title), update.TypePhaseCreated)

	created, err := s.phaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &primary.CreatePhaseResponse{
		PhaseID: id,
		Phase:   recordToPhase(created),
	}, nil
}

// GetPhase retrieves a phase by ID.
func (s *PhaseServiceImpl) GetPhase(ctx context.Context, phaseID string) (*primary.Phase, error) {
	record, err := s.phaseRepo.GetByID(ctx, phaseID)
	if err != nil {
		return nil, err
	}
	return recordToPhase(record), nil
}

// RenamePhase changes a phase's title.
func (s *PhaseServiceImpl) RenamePhase(ctx context.Context, phaseID, title string) error {
	if !cascade.ValidTitle(title) {
		return primary.ErrBlankTitle
	}
	return s.phaseRepo.UpdateTitle(ctx, phaseID, strings.TrimSpace(title))
}

// DeletePhase deletes a phase and its items. When the phase was active the
// surviving active ordering is compacted back to a dense sequence.
func (s *PhaseServiceImpl) DeletePhase(ctx context.Context, phaseID string) error {
	phase, err := s.phaseRepo.GetByID(ctx, phaseID)
	if err != nil {
		return err
	}

	if err := s.phaseRepo.Delete(ctx, phaseID); err != nil {
		return err
	}

	if phase.Status == string(cascade.StatusActive) {
		if err := s.compactActive(ctx, phase.ProjectID); err != nil {
			return err
		}
	}

	s.activity.Record(ctx, phase.ProjectID, fmt.Sprintf("deleted phase %q", phase.Title), update.TypePhaseDeleted)
	return nil
}

// AssignPhase assigns a phase to a space member, or clears the assignment
// when userID is empty.
func (s *PhaseServiceImpl) AssignPhase(ctx context.Context, phaseID, userID string) error {
	phase, err := s.phaseRepo.GetByID(ctx, phaseID)
	if err != nil {
		return err
	}

	if userID == "" {
		if err := s.phaseRepo.Assign(ctx, phaseID, ""); err != nil {
			return err
		}
		s.activity.Record(ctx, phase.ProjectID, fmt.Sprintf("unassigned phase %q", phase.Title), update.TypePhaseAssigned)
		return nil
	}

	member, err := s.memberRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to validate assignee: %w", err)
	}

	if err := s.phaseRepo.Assign(ctx, phaseID, userID); err != nil {
		return err
	}

	s.activity.Record(ctx, phase.ProjectID,
		fmt.Sprintf("assigned phase %q to %s", phase.Title, member.Name), update.TypePhaseAssigned)
	return nil
}

// RestorePhase manually returns a completed phase to the active set. The
// restored phase is appended after the existing active phases; it does not
// reclaim its old slot. Item completion states are left untouched, so the
// next completing toggle may auto-complete the phase again.
func (s *PhaseServiceImpl) RestorePhase(ctx context.Context, phaseID string) error {
	phase, err := s.phaseRepo.GetByID(ctx, phaseID)
	if err != nil {
		return err
	}

	guard := cascade.CanRestorePhase(phaseID, cascade.PhaseStatus(phase.Status))
	if !guard.Allowed {
		return guard.Error()
	}

	count, err := s.phaseRepo.CountActive(ctx, phase.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to count phases: %w", err)
	}

	result := cascade.ApplyPhaseRestore()
	if err := s.phaseRepo.UpdateStatus(ctx, phaseID, string(result.Status), ""); err != nil {
		return err
	}
	if err := s.phaseRepo.UpdatePosition(ctx, phaseID, ordering.NextPosition(count)); err != nil {
		return err
	}

	s.activity.Record(ctx, phase.ProjectID, fmt.Sprintf("restored phase %q", phase.Title), update.TypePhaseRestored)
	return nil
}

// ListMembers retrieves the assignable-user set for a space.
func (s *PhaseServiceImpl) ListMembers(ctx context.Context, spaceID string) ([]*primary.Member, error) {
	records, err := s.memberRepo.ListBySpace(ctx, spaceID)
	if err != nil {
		return nil, err
	}

	members := make([]*primary.Member, len(records))
	for i, r := range records {
		members[i] = &primary.Member{ID: r.ID, Name: r.Name, AvatarURL: r.AvatarURL}
	}
	return members, nil
}

func (s *PhaseServiceImpl) compactActive(ctx context.Context, projectID string) error {
	phases, err := s.phaseRepo.ListByProject(ctx, projectID, "active")
	if err != nil {
		return fmt.Errorf("failed to load phases for compaction: %w", err)
	}

	entries := make([]ordering.Entry, len(phases))
	for i, p := range phases {
		entries[i] = ordering.Entry{ID: p.ID, Position: p.Position}
	}

	plan := ordering.Compact(entries)
	for _, w := range plan.Writes {
		if err := s.phaseRepo.UpdatePosition(ctx, w.ID, w.Position); err != nil {
			return fmt.Errorf("failed to compact phase order: %w", err)
		}
	}
	return nil
}

// Ensure PhaseServiceImpl implements the interface
var _ primary.PhaseService = (*PhaseServiceImpl)(nil)
