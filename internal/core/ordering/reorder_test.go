package ordering

import (
	"math/rand"
	"reflect"
	"testing"
)

func entriesABCD() []Entry {
	return []Entry{
		{ID: "A", Position: 0},
		{ID: "B", Position: 1},
		{ID: "C", Position: 2},
		{ID: "D", Position: 3},
	}
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func assertDense(t *testing.T, entries []Entry) {
	t.Helper()
	for i, e := range entries {
		if e.Position != i {
			t.Fatalf("position not dense: entry %s at index %d has position %d", e.ID, i, e.Position)
		}
	}
}

func TestReorderMoveAndShift(t *testing.T) {
	plan := Reorder(entriesABCD(), 0, 2)

	if !plan.Moved {
		t.Fatal("expected plan to report a move")
	}
	want := []string{"B", "C", "A", "D"}
	if got := ids(plan.Entries); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
	assertDense(t, plan.Entries)
}

func TestReorderMoveUp(t *testing.T) {
	plan := Reorder(entriesABCD(), 3, 1)

	want := []string{"A", "D", "B", "C"}
	if got := ids(plan.Entries); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
	assertDense(t, plan.Entries)
}

func TestReorderWritesOnlyChangedPositions(t *testing.T) {
	plan := Reorder(entriesABCD(), 0, 2)

	// D stays at position 3; A, B and C all shift.
	if len(plan.Writes) != 3 {
		t.Fatalf("expected 3 writes, got %d: %v", len(plan.Writes), plan.Writes)
	}
	for _, w := range plan.Writes {
		if w.ID == "D" {
			t.Fatal("expected no write for unmoved entry D")
		}
	}
}

func TestReorderSameIndexIsNoOp(t *testing.T) {
	before := entriesABCD()
	plan := Reorder(before, 2, 2)

	if plan.Moved {
		t.Fatal("expected no move for identical indices")
	}
	if len(plan.Writes) != 0 {
		t.Fatalf("expected no writes, got %v", plan.Writes)
	}
	if !reflect.DeepEqual(plan.Entries, before) {
		t.Fatal("expected entries unchanged")
	}
}

func TestReorderOutOfRangeIsNoOp(t *testing.T) {
	before := entriesABCD()
	for _, tc := range [][2]int{{-1, 2}, {0, 4}, {7, 1}, {2, -3}} {
		plan := Reorder(before, tc[0], tc[1])
		if plan.Moved || len(plan.Writes) != 0 {
			t.Fatalf("expected no-op for indices %v", tc)
		}
	}
}

func TestReorderHealsDriftedPositions(t *testing.T) {
	// Stored positions have a gap (upstream drift, e.g. an uncompacted
	// delete). The next move reassigns everything by index.
	drifted := []Entry{
		{ID: "A", Position: 0},
		{ID: "B", Position: 2},
		{ID: "C", Position: 5},
	}
	plan := Reorder(drifted, 2, 0)

	want := []string{"C", "A", "B"}
	if got := ids(plan.Entries); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected order %v, got %v", want, got)
	}
	assertDense(t, plan.Entries)
	if len(plan.Writes) != 3 {
		t.Fatalf("expected every drifted entry written, got %v", plan.Writes)
	}
}

func TestResolve(t *testing.T) {
	entries := entriesABCD()

	oldIdx, newIdx, ok := Resolve(entries, "D", "B")
	if !ok || oldIdx != 3 || newIdx != 1 {
		t.Fatalf("expected (3,1,true), got (%d,%d,%v)", oldIdx, newIdx, ok)
	}

	if _, _, ok := Resolve(entries, "A", ""); ok {
		t.Fatal("expected no-op when dropped outside any target")
	}
	if _, _, ok := Resolve(entries, "A", "A"); ok {
		t.Fatal("expected no-op when dropped in place")
	}
	if _, _, ok := Resolve(entries, "A", "Z"); ok {
		t.Fatal("expected no-op for unknown target id")
	}
	if _, _, ok := Resolve(entries, "Z", "A"); ok {
		t.Fatal("expected no-op for unknown active id")
	}
}

func TestCompactAfterDelete(t *testing.T) {
	survivors := []Entry{
		{ID: "A", Position: 0},
		{ID: "C", Position: 2},
		{ID: "D", Position: 3},
	}
	plan := Compact(survivors)

	assertDense(t, plan.Entries)
	if len(plan.Writes) != 2 {
		t.Fatalf("expected writes for C and D only, got %v", plan.Writes)
	}
}

func TestCompactAlreadyDense(t *testing.T) {
	plan := Compact(entriesABCD())
	if plan.Moved || len(plan.Writes) != 0 {
		t.Fatalf("expected no writes for dense collection, got %v", plan.Writes)
	}
}

func TestDensityHoldsUnderRandomMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	entries := entriesABCD()
	entries = append(entries, Entry{ID: "E", Position: 4}, Entry{ID: "F", Position: 5})

	for i := 0; i < 500; i++ {
		oldIdx := rng.Intn(len(entries))
		newIdx := rng.Intn(len(entries))
		plan := Reorder(entries, oldIdx, newIdx)
		entries = plan.Entries
		assertDense(t, entries)
		if len(entries) != 6 {
			t.Fatalf("collection size changed: %d", len(entries))
		}
	}
}

func TestNextPosition(t *testing.T) {
	if got := NextPosition(0); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := NextPosition(3); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}
