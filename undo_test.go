package cashbook

import (
	"reflect"
	"testing"
)

func TestUndoStack_PopIsInverse(t *testing.T) {
	l := NewLedger()
	undo := NewUndoStack(DefaultUndoLimit)

	var states [][]Record
	mutations := []Fields{
		expense("2025-01-01", "food", "a", 100),
		expense("2025-01-02", "food", "b", 200),
		expense("2025-01-03", "food", "c", 300),
	}
	for _, f := range mutations {
		states = append(states, l.snapshot())
		undo.Push(l.snapshot())
		if _, err := l.Add(f); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	// Undoing N times walks back through every pre-mutation state.
	for i := len(states) - 1; i >= 0; i-- {
		snapshot, ok := undo.Pop()
		if !ok {
			t.Fatalf("Pop at %d: nothing to undo", i)
		}
		l.restore(snapshot)
		if !reflect.DeepEqual(l.Records(), states[i]) {
			t.Fatalf("after undo %d: records = %+v, want %+v", i, l.Records(), states[i])
		}
	}
	if _, ok := undo.Pop(); ok {
		t.Error("stack should be exhausted")
	}
}

func TestUndoStack_EvictsOldestFirst(t *testing.T) {
	undo := NewUndoStack(2)
	undo.Push([]Record{{ID: 1}})
	undo.Push([]Record{{ID: 2}})
	undo.Push([]Record{{ID: 3}})

	if undo.Len() != 2 {
		t.Fatalf("Len = %d, want 2", undo.Len())
	}
	top, _ := undo.Pop()
	if top[0].ID != 3 {
		t.Errorf("top of stack = %d, want most recent snapshot 3", top[0].ID)
	}
	next, _ := undo.Pop()
	if next[0].ID != 2 {
		t.Errorf("next = %d, want 2 (the oldest snapshot is the one evicted)", next[0].ID)
	}
}

func TestUndoStack_SnapshotsAreDeepCopies(t *testing.T) {
	undo := NewUndoStack(DefaultUndoLimit)
	records := []Record{{ID: 1, Amount: 100}}
	undo.Push(records)
	records[0].Amount = 999

	snapshot, _ := undo.Pop()
	if snapshot[0].Amount != 100 {
		t.Error("a pushed snapshot must be immune to later mutations")
	}
}
