package cashbook

import "slices"

// DefaultUndoLimit is how many snapshots the undo stack retains.
const DefaultUndoLimit = 5

// UndoStack holds a bounded stack of ledger snapshots. Each snapshot is
// an immutable deep copy of the record sequence taken just before a
// mutation; popping the most recent one and restoring it fully reverses
// that mutation.
type UndoStack struct {
	snapshots [][]Record
	limit     int
}

// NewUndoStack creates an undo stack retaining at most limit snapshots.
// A non-positive limit falls back to DefaultUndoLimit.
func NewUndoStack(limit int) *UndoStack {
	if limit <= 0 {
		limit = DefaultUndoLimit
	}
	return &UndoStack{limit: limit}
}

// Len returns the number of retained snapshots.
func (u *UndoStack) Len() int { return len(u.snapshots) }

// Push deep-copies the record sequence onto the stack. When the stack
// grows past its bound the oldest snapshot is evicted, not the newest.
func (u *UndoStack) Push(records []Record) {
	u.snapshots = append(u.snapshots, slices.Clone(records))
	if len(u.snapshots) > u.limit {
		u.snapshots = u.snapshots[len(u.snapshots)-u.limit:]
	}
}

// Snapshots returns the retained snapshots, oldest first. The result
// shares no memory with the stack.
func (u *UndoStack) Snapshots() [][]Record {
	out := make([][]Record, len(u.snapshots))
	for i, s := range u.snapshots {
		out[i] = slices.Clone(s)
	}
	return out
}

// Pop removes and returns the most recent snapshot. It reports false
// when there is nothing to undo.
func (u *UndoStack) Pop() ([]Record, bool) {
	if len(u.snapshots) == 0 {
		return nil, false
	}
	last := u.snapshots[len(u.snapshots)-1]
	u.snapshots = u.snapshots[:len(u.snapshots)-1]
	return last, true
}
