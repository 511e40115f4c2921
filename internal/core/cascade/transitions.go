// Package cascade contains the pure business logic for completion state.
// Item toggles, the phase auto-completion cascade and the manual restore are
// all expressed as pure functions over pre-fetched state - no I/O here.
package cascade

import "time"

// PhaseStatus represents the possible states of a phase.
type PhaseStatus string

const (
	StatusActive    PhaseStatus = "active"
	StatusCompleted PhaseStatus = "completed"
)

// ItemToggleResult captures the new completion state of an item after a
// toggle, including the timestamp side effect.
type ItemToggleResult struct {
	Completed   bool
	CompletedAt *time.Time // set when completing, nil when un-completing
}

// ApplyItemToggle toggles an item's completion state. Completing stamps
// CompletedAt with the supplied time; un-completing clears it. The caller
// passes the current time to keep this testable.
func ApplyItemToggle(currentlyCompleted bool, now time.Time) ItemToggleResult {
	if currentlyCompleted {
		return ItemToggleResult{Completed: false}
	}
	return ItemToggleResult{Completed: true, CompletedAt: &now}
}

// ShouldCompletePhase reports whether a phase must auto-transition to
// completed: at least one item, and every item complete. A phase with zero
// items never auto-completes. Evaluated immediately after an item completes;
// un-completing an item never triggers the reverse (reopening a phase is
// exclusively a manual restore).
func ShouldCompletePhase(itemsCompleted []bool) bool {
	if len(itemsCompleted) == 0 {
		return false
	}
	for _, completed := range itemsCompleted {
		if !completed {
			return false
		}
	}
	return true
}

// PhaseTransitionResult captures a phase status change and its timestamp
// side effect.
type PhaseTransitionResult struct {
	Status      PhaseStatus
	CompletedAt *time.Time
}

// ApplyPhaseCompletion produces the cascade transition into completed.
func ApplyPhaseCompletion(now time.Time) PhaseTransitionResult {
	return PhaseTransitionResult{Status: StatusCompleted, CompletedAt: &now}
}

// ApplyPhaseRestore produces the manual restore transition back to active.
// The restored phase carries no meaningful position; the caller appends it
// to the active set.
func ApplyPhaseRestore() PhaseTransitionResult {
	return PhaseTransitionResult{Status: StatusActive}
}
