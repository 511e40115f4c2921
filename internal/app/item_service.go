package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/hearth/internal/core/cascade"
	"github.com/example/hearth/internal/core/ordering"
	"github.com/example/hearth/internal/core/subitem"
	"github.com/example/hearth/internal/core/update"
	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/ports/secondary"
)

// ItemServiceImpl implements the ItemService interface. ToggleItem carries
// the completion cascade: the item write is authoritative, then the phase
// is re-evaluated and auto-completed when every item is done.
type ItemServiceImpl struct {
	itemRepo    secondary.ItemRepository
	phaseRepo   secondary.PhaseRepository
	activity    *ActivityWriter
	celebration secondary.CelebrationNotifier
	now         func() time.Time
}

// NewItemService creates a new ItemService with injected dependencies.
func NewItemService(
	itemRepo secondary.ItemRepository,
	phaseRepo secondary.PhaseRepository,
	activity *ActivityWriter,
	celebration secondary.CelebrationNotifier,
) *ItemServiceImpl {
	return &ItemServiceImpl{
		itemRepo:    itemRepo,
		phaseRepo:   phaseRepo,
		activity:    activity,
		celebration: celebration,
		now:         time.Now,
	}
}

// CreateItem creates a new item appended to its phase's ordering.
func (s *ItemServiceImpl) CreateItem(ctx context.Context, req primary.CreateItemRequest) (*primary.CreateItemResponse, error) {
	if !cascade.ValidTitle(req.Title) {
		return nil, primary.ErrBlankTitle
	}

	if _, err := s.phaseRepo.GetByID(ctx, req.PhaseID); err != nil {
		return nil, err
	}

	count, err := s.itemRepo.CountByPhase(ctx, req.PhaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	id, err := s.itemRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate item ID: %w", err)
	}

	record := &secondary.ItemRecord{
		ID:       id,
		PhaseID:  req.PhaseID,
		Title:    strings.TrimSpace(req.Title),
		Position: ordering.NextPosition(count),
	}
	if err := s.itemRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	created, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &primary.CreateItemResponse{
		ItemID: id,
		Item:   recordToItem(created),
	}, nil
}

// GetItem retrieves an item by ID.
func (s *ItemServiceImpl) GetItem(ctx context.Context, itemID string) (*primary.Item, error) {
	record, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return recordToItem(record), nil
}

// ToggleItem flips an item's completion state.
//
// The item write decides the operation's outcome. A completing toggle then
// re-evaluates the phase: when every item is complete the phase
// auto-transitions to completed. The phase write failing does not fail the
// toggle - the inconsistency is recoverable (the next completing toggle
// re-evaluates) and is reported via CascadeErr. Un-completing never
// reopens a completed phase.
func (s *ItemServiceImpl) ToggleItem(ctx context.Context, itemID string) (*primary.ToggleItemResponse, error) {
	record, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	result := cascade.ApplyItemToggle(record.Completed, s.now())
	completedAt := ""
	if result.CompletedAt != nil {
		completedAt = result.CompletedAt.Format(time.RFC3339)
	}

	if err := s.itemRepo.SetCompletion(ctx, itemID, result.Completed, completedAt); err != nil {
		return nil, err
	}

	record.Completed = result.Completed
	record.CompletedAt = completedAt
	resp := &primary.ToggleItemResponse{Item: recordToItem(record)}

	if !result.Completed {
		return resp, nil
	}

	phase, err := s.phaseRepo.GetByID(ctx, record.PhaseID)
	if err != nil {
		resp.CascadeErr = fmt.Errorf("failed to evaluate phase completion: %w", err)
		return resp, nil
	}

	s.activity.Record(ctx, phase.ProjectID,
		fmt.Sprintf("completed %q in phase %q", record.Title, phase.Title), update.TypeItemCompleted)

	if phase.Status != string(cascade.StatusActive) {
		return resp, nil
	}

	items, err := s.itemRepo.ListByPhase(ctx, record.PhaseID)
	if err != nil {
		resp.CascadeErr = fmt.Errorf("failed to evaluate phase completion: %w", err)
		return resp, nil
	}
	completed := make([]bool, len(items))
	for i, it := range items {
		completed[i] = it.Completed
	}

	if !cascade.ShouldCompletePhase(completed) {
		return resp, nil
	}

	transition := cascade.ApplyPhaseCompletion(s.now())
	if err := s.phaseRepo.UpdateStatus(ctx, phase.ID,
		string(transition.Status), transition.CompletedAt.Format(time.RFC3339)); err != nil {
		resp.CascadeErr = fmt.Errorf("failed to complete phase: %w", err)
		return resp, nil
	}

	resp.PhaseCompleted = true
	s.activity.Record(ctx, phase.ProjectID,
		fmt.Sprintf("phase %q completed", phase.Title), update.TypePhaseCompleted)
	s.celebration.Celebrate(phase.Title)

	return resp, nil
}

// UpdateItem writes the drawer-editable fields in one batch. Nil pointers
// leave fields untouched; a non-nil sub-item sequence replaces the stored
// sequence wholesale.
func (s *ItemServiceImpl) UpdateItem(ctx context.Context, req primary.UpdateItemRequest) error {
	record, err := s.itemRepo.GetByID(ctx, req.ItemID)
	if err != nil {
		return err
	}

	if req.Title != nil {
		if !cascade.ValidTitle(*req.Title) {
			return primary.ErrBlankTitle
		}
		record.Title = strings.TrimSpace(*req.Title)
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}
	if req.DueDate != nil {
		record.DueDate = *req.DueDate
	}
	if req.AssignedTo != nil {
		record.AssignedTo = *req.AssignedTo
	}
	if req.SubItems != nil {
		record.SubItems = req.SubItems
	}

	return s.itemRepo.Update(ctx, record)
}

// DeleteItem deletes an item and compacts the surviving phase ordering.
func (s *ItemServiceImpl) DeleteItem(ctx context.Context, itemID string) error {
	record, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return err
	}

	items, err := s.itemRepo.ListByPhase(ctx, record.PhaseID)
	if err != nil {
		return fmt.Errorf("failed to load items for compaction: %w", err)
	}
	entries := make([]ordering.Entry, len(items))
	for i, it := range items {
		entries[i] = ordering.Entry{ID: it.ID, Position: it.Position}
	}
	plan := ordering.Compact(entries)
	for _, w := range plan.Writes {
		if err := s.itemRepo.UpdatePosition(ctx, w.ID, w.Position); err != nil {
			return fmt.Errorf("failed to compact item order: %w", err)
		}
	}
	return nil
}

// AddSubItem appends a checklist entry to an item.
func (s *ItemServiceImpl) AddSubItem(ctx context.Context, itemID, text string) error {
	if !cascade.ValidTitle(text) {
		return primary.ErrBlankTitle
	}

	record, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	record.SubItems = append(record.SubItems, subitem.SubItem{
		ID:   subitem.NewID(s.now()),
		Text: strings.TrimSpace(text),
	})
	return s.itemRepo.Update(ctx, record)
}

// ToggleSubItem flips a checklist entry's completed flag.
func (s *ItemServiceImpl) ToggleSubItem(ctx context.Context, itemID, subItemID string) error {
	record, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	found := false
	for i := range record.SubItems {
		if record.SubItems[i].ID == subItemID {
			record.SubItems[i].Completed = !record.SubItems[i].Completed
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("sub-item %s not found in item %s", subItemID, itemID)
	}

	return s.itemRepo.Update(ctx, record)
}

// Ensure ItemServiceImpl implements the interface
var _ primary.ItemService = (*ItemServiceImpl)(nil)
