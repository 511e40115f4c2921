package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/hearth/internal/core/update"
	"github.com/example/hearth/internal/ctxutil"
	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/ports/secondary"
)

// UpdateServiceImpl implements the UpdateService interface.
type UpdateServiceImpl struct {
	updateRepo secondary.UpdateRepository
	memberRepo secondary.MemberRepository
}

// NewUpdateService creates a new UpdateService with injected dependencies.
func NewUpdateService(updateRepo secondary.UpdateRepository, memberRepo secondary.MemberRepository) *UpdateServiceImpl {
	return &UpdateServiceImpl{
		updateRepo: updateRepo,
		memberRepo: memberRepo,
	}
}

// ListUpdates retrieves a project's feed newest-first. Author names are
// resolved for display where the member lookup knows them; an unknown
// author leaves AuthorName empty rather than failing the read.
func (s *UpdateServiceImpl) ListUpdates(ctx context.Context, projectID string, limit int) ([]*primary.Update, error) {
	records, err := s.updateRepo.ListByProject(ctx, projectID, limit)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	updates := make([]*primary.Update, len(records))
	for i, r := range records {
		u := recordToUpdate(r)
		name, ok := names[r.AuthorID]
		if !ok {
			if member, err := s.memberRepo.GetByID(ctx, r.AuthorID); err == nil {
				name = member.Name
			}
			names[r.AuthorID] = name
		}
		u.AuthorName = name
		updates[i] = u
	}
	return updates, nil
}

// CreatePost appends a human-authored post to the feed.
func (s *UpdateServiceImpl) CreatePost(ctx context.Context, projectID, content string) (*primary.Update, error) {
	if strings.TrimSpace(content) == "" {
		return nil, primary.ErrBlankContent
	}

	authorID := ctxutil.ActorFromContext(ctx)
	if authorID == "" {
		return nil, fmt.Errorf("no acting user in context")
	}

	id, err := s.updateRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate update ID: %w", err)
	}

	record := &secondary.UpdateRecord{
		ID:         id,
		ProjectID:  projectID,
		AuthorID:   authorID,
		Content:    strings.TrimSpace(content),
		UpdateType: string(update.TypePost),
	}
	if err := s.updateRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	created, err := s.updateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordToUpdate(created), nil
}

// EditUpdate replaces a post's content. Author-only, posts only.
func (s *UpdateServiceImpl) EditUpdate(ctx context.Context, updateID, content string) error {
	if strings.TrimSpace(content) == "" {
		return primary.ErrBlankContent
	}

	record, err := s.updateRepo.GetByID(ctx, updateID)
	if err != nil {
		return err
	}

	guard := update.CanMutateUpdate(updateID, update.Type(record.UpdateType),
		record.AuthorID, ctxutil.ActorFromContext(ctx))
	if !guard.Allowed {
		return guard.Error()
	}

	return s.updateRepo.UpdateContent(ctx, updateID, strings.TrimSpace(content))
}

// DeleteUpdate removes a post. Author-only, posts only.
func (s *UpdateServiceImpl) DeleteUpdate(ctx context.Context, updateID string) error {
	record, err := s.updateRepo.GetByID(ctx, updateID)
	if err != nil {
		return err
	}

	guard := update.CanMutateUpdate(updateID, update.Type(record.UpdateType),
		record.AuthorID, ctxutil.ActorFromContext(ctx))
	if !guard.Allowed {
		return guard.Error()
	}

	return s.updateRepo.Delete(ctx, updateID)
}

// Ensure UpdateServiceImpl implements the interface
var _ primary.UpdateService = (*UpdateServiceImpl)(nil)
