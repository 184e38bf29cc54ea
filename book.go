package cashbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hyunwoo/cashbook/date"
)

// Book binds the canonical ledger to its backing file and its undo
// history. Every consumer receives the Book explicitly; there is no
// ambient session state.
//
// All mutations funnel through one sequence: snapshot, apply, persist.
// The snapshot is taken strictly before the mutation, so a single undo
// always fully reverses the immediately preceding operation, and a
// failed persist rolls the in-memory ledger back so a retry is safe.
type Book struct {
	path     string
	ledger   *Ledger
	undo     *UndoStack
	warnings []RowWarning
}

// OpenBook loads the ledger file at path. A missing file opens an empty
// book; rows skipped during the load are available through Warnings.
// The undo history is reloaded from its sidecar file so that an undo in
// a later process still reverses the last mutation.
func OpenBook(path string) (*Book, error) {
	ledger, warnings, err := LoadLedger(path)
	if err != nil {
		return nil, err
	}
	b := &Book{
		path:     path,
		ledger:   ledger,
		undo:     NewUndoStack(DefaultUndoLimit),
		warnings: warnings,
	}
	b.loadUndo()
	return b, nil
}

// Path returns the ledger file backing the book.
func (b *Book) Path() string { return b.path }

// Warnings returns the rows skipped while loading the ledger file.
func (b *Book) Warnings() []RowWarning { return b.warnings }

// Ledger exposes the canonical ledger for reads.
func (b *Book) Ledger() *Ledger { return b.ledger }

// View applies the criteria to the canonical ledger.
func (b *Book) View(c Criteria) *View { return b.ledger.View(c) }

// mutate runs fn against the ledger under the push-then-mutate contract:
// the pre-mutation snapshot is pushed only once both the mutation and the
// persist have succeeded, and a persist failure restores the ledger to
// that snapshot.
func (b *Book) mutate(fn func(*Ledger) error) error {
	snapshot := b.ledger.snapshot()
	if err := fn(b.ledger); err != nil {
		b.ledger.restore(snapshot)
		return err
	}
	if err := SaveLedger(b.path, b.ledger); err != nil {
		b.ledger.restore(snapshot)
		return err
	}
	b.undo.Push(snapshot)
	b.saveUndo()
	return nil
}

// Add appends a new record with the given fields, assigning its ID, and
// persists the ledger.
func (b *Book) Add(f Fields) (Record, error) {
	var added Record
	err := b.mutate(func(l *Ledger) error {
		var err error
		added, err = l.Add(f)
		return err
	})
	return added, err
}

// Remove deletes the records with the given IDs and persists the ledger.
// Absent IDs are ignored.
func (b *Book) Remove(ids ...int64) (int, error) {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	var removed int
	err := b.mutate(func(l *Ledger) error {
		removed = l.Remove(set)
		return nil
	})
	return removed, err
}

// RemoveLast deletes the most recent record, the last one in ledger
// order. It reports an error when the ledger is empty.
func (b *Book) RemoveLast() (Record, error) {
	records := b.ledger.records
	if len(records) == 0 {
		return Record{}, fmt.Errorf("the ledger is empty, nothing to delete")
	}
	last := records[len(records)-1]
	_, err := b.Remove(last.ID)
	return last, err
}

// SaveEdits reconciles a displayed view and its edited rows back onto
// the ledger, as one atomic undo unit, and persists the result.
func (b *Book) SaveEdits(view *View, edits []RowEdit) (ReconcileResult, error) {
	var res ReconcileResult
	err := b.mutate(func(l *Ledger) error {
		var err error
		res, err = Reconcile(l, view, edits)
		return err
	})
	return res, err
}

// Undo pops the most recent snapshot, restores the ledger to it and
// persists. It reports false when there is nothing to undo.
func (b *Book) Undo() (bool, error) {
	snapshot, ok := b.undo.Pop()
	if !ok {
		return false, nil
	}
	current := b.ledger.snapshot()
	b.ledger.restore(snapshot)
	if err := SaveLedger(b.path, b.ledger); err != nil {
		b.ledger.restore(current)
		b.undo.Push(snapshot)
		return false, err
	}
	b.saveUndo()
	return true, nil
}

// CanUndo reports whether an undo snapshot is available.
func (b *Book) CanUndo() bool { return b.undo.Len() > 0 }

// --- undo history persistence ---

// The undo stack is a convenience, not the ledger of record: failures
// around its sidecar file are logged and tolerated rather than failing
// the mutation that already persisted fine.

type undoRecord struct {
	ID          int64     `json:"id"`
	Date        date.Date `json:"date"`
	Kind        string    `json:"kind"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Amount      int64     `json:"amount"`
}

type undoFile struct {
	Snapshots [][]undoRecord `json:"snapshots"`
}

func (b *Book) undoPath() string {
	dir, base := filepath.Split(b.path)
	return filepath.Join(dir, "."+base+".undo")
}

func (b *Book) loadUndo() {
	data, err := os.ReadFile(b.undoPath())
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		log.Printf("warning: could not read undo history: %v", err)
		return
	}
	var file undoFile
	if err := json.Unmarshal(data, &file); err != nil {
		log.Printf("warning: discarding unreadable undo history: %v", err)
		return
	}
	for _, snap := range file.Snapshots {
		records := make([]Record, 0, len(snap))
		for _, ur := range snap {
			kind, err := ParseKind(ur.Kind)
			if err != nil {
				log.Printf("warning: discarding undo history: %v", err)
				return
			}
			records = append(records, Record{
				ID:          ur.ID,
				Date:        ur.Date,
				Kind:        kind,
				Category:    ur.Category,
				Description: ur.Description,
				Amount:      ur.Amount,
			})
		}
		b.undo.Push(records)
	}
}

func (b *Book) saveUndo() {
	snapshots := b.undo.Snapshots()
	file := undoFile{Snapshots: make([][]undoRecord, len(snapshots))}
	for i, snap := range snapshots {
		rows := make([]undoRecord, len(snap))
		for j, r := range snap {
			rows[j] = undoRecord{
				ID:          r.ID,
				Date:        r.Date,
				Kind:        r.Kind.String(),
				Category:    r.Category,
				Description: r.Description,
				Amount:      r.Amount,
			}
		}
		file.Snapshots[i] = rows
	}
	data, err := json.Marshal(file)
	if err != nil {
		log.Printf("warning: could not encode undo history: %v", err)
		return
	}
	if err := os.WriteFile(b.undoPath(), data, 0644); err != nil {
		log.Printf("warning: could not write undo history: %v", err)
	}
}
