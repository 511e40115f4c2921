// Package ordering contains the pure business logic for position-ordered
// collections. Phases within a project and items within a phase both carry
// dense, zero-based position integers; every function here preserves that
// invariant. This is part of the Functional Core - no I/O, only pure functions.
package ordering

// Entry is a positioned member of a parent-scoped collection.
type Entry struct {
	ID       string
	Position int
}

// PositionWrite describes a single absolute position update to persist.
// Writes are idempotent: each sets a definite value, not a delta.
type PositionWrite struct {
	ID       string
	Position int
}

// Plan is the result of a pure reorder computation. Entries holds the full
// collection in its new order with positions reassigned 0..n-1; Writes holds
// the minimal set of entries whose stored position must change.
type Plan struct {
	Moved   bool
	Entries []Entry
	Writes  []PositionWrite
}

// Resolve maps drag ids to indices in the current collection.
// Returns ok=false when the gesture is a no-op: overID absent, activeID
// equal to overID, or either id missing from the collection (the drag
// target vanished, e.g. a concurrent deletion).
func Resolve(entries []Entry, activeID, overID string) (oldIndex, newIndex int, ok bool) {
	if overID == "" || activeID == overID {
		return 0, 0, false
	}
	oldIndex, newIndex = -1, -1
	for i, e := range entries {
		if e.ID == activeID {
			oldIndex = i
		}
		if e.ID == overID {
			newIndex = i
		}
	}
	if oldIndex < 0 || newIndex < 0 {
		return 0, 0, false
	}
	return oldIndex, newIndex, true
}

// Reorder moves the entry at oldIndex to newIndex and reassigns positions by
// array index. This is a single-element move-and-shift, not a swap: every
// entry between the two indices shifts by one. Positions are always
// reassigned from the resulting order regardless of the previous stored
// values, so a collection that drifted upstream is healed by the next move.
func Reorder(entries []Entry, oldIndex, newIndex int) Plan {
	n := len(entries)
	if oldIndex == newIndex || oldIndex < 0 || newIndex < 0 || oldIndex >= n || newIndex >= n {
		return Plan{Moved: false, Entries: entries}
	}

	reordered := make([]Entry, 0, n)
	reordered = append(reordered, entries[:oldIndex]...)
	reordered = append(reordered, entries[oldIndex+1:]...)
	reordered = append(reordered, Entry{})
	copy(reordered[newIndex+1:], reordered[newIndex:])
	reordered[newIndex] = entries[oldIndex]

	return Plan{Moved: true, Entries: reassign(reordered)}.withWrites(entries)
}

// Compact reassigns positions 0..n-1 in the current order. Used after a
// deletion so the density invariant holds without waiting for the next move.
func Compact(entries []Entry) Plan {
	plan := Plan{Moved: false, Entries: reassign(entries)}.withWrites(entries)
	plan.Moved = len(plan.Writes) > 0
	return plan
}

// reassign returns a copy of entries with Position set from array index.
func reassign(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		e.Position = i
		out[i] = e
	}
	return out
}

// withWrites computes the minimal write set against the previous stored
// positions. An entry gets a write when its reassigned position differs from
// what the store last held for it.
func (p Plan) withWrites(previous []Entry) Plan {
	stored := make(map[string]int, len(previous))
	for _, e := range previous {
		stored[e.ID] = e.Position
	}
	for _, e := range p.Entries {
		if old, found := stored[e.ID]; !found || old != e.Position {
			p.Writes = append(p.Writes, PositionWrite{ID: e.ID, Position: e.Position})
		}
	}
	return p
}

// NextPosition returns the position for a new entry appended to a collection
// that currently holds count members.
func NextPosition(count int) int {
	return count
}
