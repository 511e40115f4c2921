package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/hearth/internal/core/ordering"
	"github.com/example/hearth/internal/core/subitem"
	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/ports/secondary"
)

// BoardServiceImpl implements the BoardService interface: the reorder
// controller behind both drag axes.
//
// A move resolves the gesture against the current working set, computes the
// new ordering as a pure plan, and treats the plan's ordering as the
// optimistic state - it is what the caller renders, before and regardless
// of persistence. Position writes are issued one per changed entity; each
// sets an absolute value, so arrival order cannot corrupt final state. On
// any write failure the controller discards the optimistic state and
// reloads the parent's full working set (full reconciliation, not
// incremental repair).
//
// Across rapid repeated moves of the same parent no sequencing is enforced:
// a later-dispatched-but-earlier-arriving write can lose to an earlier one
// for the same entity. Accepted at human drag speed; last writer wins.
type BoardServiceImpl struct {
	phaseRepo secondary.PhaseRepository
	itemRepo  secondary.ItemRepository
}

// NewBoardService creates a new BoardService with injected dependencies.
func NewBoardService(phaseRepo secondary.PhaseRepository, itemRepo secondary.ItemRepository) *BoardServiceImpl {
	return &BoardServiceImpl{
		phaseRepo: phaseRepo,
		itemRepo:  itemRepo,
	}
}

// MovePhase handles a phase drag gesture within a project's active set.
func (s *BoardServiceImpl) MovePhase(ctx context.Context, req primary.MovePhaseRequest) (*primary.MoveResponse, error) {
	phases, err := s.phaseRepo.ListByProject(ctx, req.ProjectID, "active")
	if err != nil {
		return nil, fmt.Errorf("failed to load phases: %w", err)
	}

	entries := make([]ordering.Entry, len(phases))
	titles := make(map[string]string, len(phases))
	for i, p := range phases {
		entries[i] = ordering.Entry{ID: p.ID, Position: p.Position}
		titles[p.ID] = p.Title
	}

	plan, ok := resolveAndPlan(entries, req.ActiveID, req.OverID)
	if !ok {
		return &primary.MoveResponse{Moved: false, Order: toOrder(entries, titles)}, nil
	}

	if writeErr := s.persistPhasePlan(ctx, plan); writeErr != nil {
		reloaded, err := s.phaseRepo.ListByProject(ctx, req.ProjectID, "active")
		if err != nil {
			return nil, fmt.Errorf("reorder failed and reload failed: %w", errors.Join(writeErr, err))
		}
		entries = make([]ordering.Entry, len(reloaded))
		for i, p := range reloaded {
			entries[i] = ordering.Entry{ID: p.ID, Position: p.Position}
			titles[p.ID] = p.Title
		}
		return &primary.MoveResponse{Moved: false, Reloaded: true, Order: toOrder(entries, titles)},
			fmt.Errorf("failed to persist phase order: %w", writeErr)
	}

	return &primary.MoveResponse{Moved: true, Order: toOrder(plan.Entries, titles)}, nil
}

// MoveItem handles an item drag gesture within a phase.
func (s *BoardServiceImpl) MoveItem(ctx context.Context, req primary.MoveItemRequest) (*primary.MoveResponse, error) {
	items, err := s.itemRepo.ListByPhase(ctx, req.PhaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	entries := make([]ordering.Entry, len(items))
	titles := make(map[string]string, len(items))
	for i, it := range items {
		entries[i] = ordering.Entry{ID: it.ID, Position: it.Position}
		titles[it.ID] = it.Title
	}

	plan, ok := resolveAndPlan(entries, req.ActiveID, req.OverID)
	if !ok {
		return &primary.MoveResponse{Moved: false, Order: toOrder(entries, titles)}, nil
	}

	if writeErr := s.persistItemPlan(ctx, plan); writeErr != nil {
		reloaded, err := s.itemRepo.ListByPhase(ctx, req.PhaseID)
		if err != nil {
			return nil, fmt.Errorf("reorder failed and reload failed: %w", errors.Join(writeErr, err))
		}
		entries = make([]ordering.Entry, len(reloaded))
		for i, it := range reloaded {
			entries[i] = ordering.Entry{ID: it.ID, Position: it.Position}
			titles[it.ID] = it.Title
		}
		return &primary.MoveResponse{Moved: false, Reloaded: true, Order: toOrder(entries, titles)},
			fmt.Errorf("failed to persist item order: %w", writeErr)
	}

	return &primary.MoveResponse{Moved: true, Order: toOrder(plan.Entries, titles)}, nil
}

// ReorderSubItems moves a checklist entry within an item. The sequence is
// reordered in memory and flushed as one item write - index is position,
// there are no per-entry position writes to batch.
func (s *BoardServiceImpl) ReorderSubItems(ctx context.Context, itemID string, oldIndex, newIndex int) error {
	record, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	entries := make([]ordering.Entry, len(record.SubItems))
	byID := make(map[string]subitem.SubItem, len(record.SubItems))
	for i, sub := range record.SubItems {
		entries[i] = ordering.Entry{ID: sub.ID, Position: i}
		byID[sub.ID] = sub
	}

	plan := ordering.Reorder(entries, oldIndex, newIndex)
	if !plan.Moved {
		return nil
	}

	reordered := make([]subitem.SubItem, len(plan.Entries))
	for i, e := range plan.Entries {
		reordered[i] = byID[e.ID]
	}
	record.SubItems = reordered

	if err := s.itemRepo.Update(ctx, record); err != nil {
		return fmt.Errorf("failed to save sub-item order: %w", err)
	}
	return nil
}

// resolveAndPlan maps a drag gesture to a reorder plan. ok=false covers
// every no-op: dropped in place, dropped outside a target, or either id
// missing from the working set.
func resolveAndPlan(entries []ordering.Entry, activeID, overID string) (ordering.Plan, bool) {
	oldIndex, newIndex, ok := ordering.Resolve(entries, activeID, overID)
	if !ok {
		return ordering.Plan{}, false
	}
	plan := ordering.Reorder(entries, oldIndex, newIndex)
	return plan, plan.Moved
}

// persistPhasePlan issues the plan's position writes. All writes are
// attempted - they are independent and idempotent - and failures are
// joined so the caller reconciles once.
func (s *BoardServiceImpl) persistPhasePlan(ctx context.Context, plan ordering.Plan) error {
	var errs []error
	for _, w := range plan.Writes {
		if err := s.phaseRepo.UpdatePosition(ctx, w.ID, w.Position); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *BoardServiceImpl) persistItemPlan(ctx context.Context, plan ordering.Plan) error {
	var errs []error
	for _, w := range plan.Writes {
		if err := s.itemRepo.UpdatePosition(ctx, w.ID, w.Position); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func toOrder(entries []ordering.Entry, titles map[string]string) []*primary.OrderedEntry {
	order := make([]*primary.OrderedEntry, len(entries))
	for i, e := range entries {
		order[i] = &primary.OrderedEntry{ID: e.ID, Title: titles[e.ID], Position: e.Position}
	}
	return order
}

// Ensure BoardServiceImpl implements the interface
var _ primary.BoardService = (*BoardServiceImpl)(nil)
