// Package update contains the pure permission rules for the project updates
// feed. The feed is append-only: human posts can be edited or deleted by
// their author, every system-generated record is immutable.
package update

import "fmt"

// Type discriminates feed entries. Only TypePost is human-authored; the
// rest are system records appended by board operations.
type Type string

const (
	TypePost           Type = "post"
	TypePhaseCreated   Type = "phase_created"
	TypePhaseDeleted   Type = "phase_deleted"
	TypePhaseRestored  Type = "phase_restored"
	TypePhaseAssigned  Type = "phase_assigned"
	TypeItemCompleted  Type = "item_completed"
	TypePhaseCompleted Type = "phase_completed"
)

// Valid reports whether t is one of the closed set of update types.
func (t Type) Valid() bool {
	switch t {
	case TypePost, TypePhaseCreated, TypePhaseDeleted, TypePhaseRestored,
		TypePhaseAssigned, TypeItemCompleted, TypePhaseCompleted:
		return true
	}
	return false
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanMutateUpdate evaluates whether an actor may edit or delete a feed
// entry.
// Rules:
// - Entry must be a post (system records are immutable)
// - Actor must be the post's author
func CanMutateUpdate(updateID string, updateType Type, authorID, actorID string) GuardResult {
	if updateType != TypePost {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("update %s is a system record (%s) and cannot be changed", updateID, updateType),
		}
	}
	if authorID != actorID {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("update %s belongs to %s", updateID, authorID),
		}
	}
	return GuardResult{Allowed: true}
}
