package app

import (
	"github.com/example/hearth/internal/ports/primary"
	"github.com/example/hearth/internal/ports/secondary"
)

func recordToProject(r *secondary.ProjectRecord) *primary.Project {
	return &primary.Project{
		ID:          r.ID,
		SpaceID:     r.SpaceID,
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func recordToPhase(r *secondary.PhaseRecord) *primary.Phase {
	return &primary.Phase{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		Title:       r.Title,
		Position:    r.Position,
		Status:      r.Status,
		AssignedTo:  r.AssignedTo,
		CreatedAt:   r.CreatedAt,
		CompletedAt: r.CompletedAt,
	}
}

func recordToItem(r *secondary.ItemRecord) *primary.Item {
	return &primary.Item{
		ID:          r.ID,
		PhaseID:     r.PhaseID,
		Title:       r.Title,
		Position:    r.Position,
		Completed:   r.Completed,
		AssignedTo:  r.AssignedTo,
		DueDate:     r.DueDate,
		Notes:       r.Notes,
		SubItems:    r.SubItems,
		CreatedAt:   r.CreatedAt,
		CompletedAt: r.CompletedAt,
	}
}

func recordToUpdate(r *secondary.UpdateRecord) *primary.Update {
	return &primary.Update{
		ID:         r.ID,
		ProjectID:  r.ProjectID,
		AuthorID:   r.AuthorID,
		Content:    r.Content,
		UpdateType: r.UpdateType,
		CreatedAt:  r.CreatedAt,
	}
}
