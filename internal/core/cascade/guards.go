package cascade

import (
	"fmt"
	"strings"
)

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

// CanRestorePhase evaluates whether a phase can be manually restored.
// Rules:
// - Phase must currently be completed
func CanRestorePhase(phaseID string, status PhaseStatus) GuardResult {
	if status != StatusCompleted {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("can only restore completed phases (phase %s is %s)", phaseID, status),
		}
	}
	return GuardResult{Allowed: true}
}

// ValidTitle reports whether a user-entered title passes the validation
// skip: empty or whitespace-only input is rejected before any write, as a
// silent no-op rather than an error.
func ValidTitle(title string) bool {
	return strings.TrimSpace(title) != ""
}
