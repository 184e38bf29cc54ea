package cashbook

import (
	"slices"
)

// Ledger is the canonical ordered collection of records.
//
// Records are kept in chronological order (ties broken by ascending ID),
// and IDs are allocated from a monotonic counter that is never rewound,
// so a deleted ID is never reused.
type Ledger struct {
	records []Record
	nextID  int64
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{nextID: 1}
}

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.records) }

// Records returns a copy of the record sequence, in ledger order.
func (l *Ledger) Records() []Record {
	return slices.Clone(l.records)
}

// Get returns the record with the given id.
func (l *Ledger) Get(id int64) (Record, bool) {
	for _, r := range l.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Add validates the fields, assigns the next ID, appends the record and
// returns it as stored.
func (l *Ledger) Add(f Fields) (Record, error) {
	if err := f.Validate(); err != nil {
		return Record{}, err
	}
	r := Record{ID: l.nextID}
	f.apply(&r)
	l.nextID++
	l.records = append(l.records, r)
	l.stableSort()
	return r, nil
}

// append inserts an already-identified record, bumping the ID counter
// past it. Used when decoding a persisted ledger.
func (l *Ledger) append(r Record) {
	if r.ID >= l.nextID {
		l.nextID = r.ID + 1
	}
	l.records = append(l.records, r)
}

// Remove deletes every record whose ID is in the set and returns how many
// were removed. Removing an absent ID is a no-op.
func (l *Ledger) Remove(ids map[int64]struct{}) int {
	if len(ids) == 0 {
		return 0
	}
	before := len(l.records)
	l.records = slices.DeleteFunc(l.records, func(r Record) bool {
		_, ok := ids[r.ID]
		return ok
	})
	return before - len(l.records)
}

// Update replaces the mutable fields of the addressed record. Updating an
// absent ID is a no-op and reports false.
func (l *Ledger) Update(id int64, f Fields) (bool, error) {
	if err := f.Validate(); err != nil {
		return false, err
	}
	for i := range l.records {
		if l.records[i].ID == id {
			f.apply(&l.records[i])
			l.stableSort()
			return true, nil
		}
	}
	return false, nil
}

// stableSort restores chronological order after a mutation. The sort is
// stable and ties on the same day are broken by ascending ID.
func (l *Ledger) stableSort() {
	slices.SortStableFunc(l.records, func(a, b Record) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})
}

// snapshot returns a deep copy of the record sequence.
func (l *Ledger) snapshot() []Record {
	return slices.Clone(l.records)
}

// restore replaces the record sequence with the snapshot's contents. The
// ID counter only moves forward, so IDs freed by the restore are still
// never reused.
func (l *Ledger) restore(snapshot []Record) {
	l.records = slices.Clone(snapshot)
	for _, r := range l.records {
		if r.ID >= l.nextID {
			l.nextID = r.ID + 1
		}
	}
}
