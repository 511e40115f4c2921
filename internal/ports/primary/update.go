package primary

import "context"

// UpdateService defines the primary port for the project updates feed.
type UpdateService interface {
	// ListUpdates retrieves a project's feed newest-first. Limit <= 0
	// means no limit.
	ListUpdates(ctx context.Context, projectID string, limit int) ([]*Update, error)

	// CreatePost appends a human-authored post to the feed. Returns
	// ErrBlankContent for whitespace-only content.
	CreatePost(ctx context.Context, projectID, content string) (*Update, error)

	// EditUpdate replaces a post's content. Only the author may edit, and
	// only post-type entries are editable.
	EditUpdate(ctx context.Context, updateID, content string) error

	// DeleteUpdate removes a post. Same permission rules as EditUpdate.
	DeleteUpdate(ctx context.Context, updateID string) error
}

// Update represents a feed entry at the port boundary.
type Update struct {
	ID         string
	ProjectID  string
	AuthorID   string
	AuthorName string // resolved for display when the member lookup knows the author
	Content    string
	UpdateType string
	CreatedAt  string
}
