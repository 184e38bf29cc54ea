package cashbook

import (
	"slices"
	"strings"

	"github.com/hyunwoo/cashbook/date"
)

// Criteria selects a subset of the ledger. Zero values leave that
// dimension unfiltered.
type Criteria struct {
	Range           date.Range
	Kind            *Kind  // nil accepts both kinds
	Category        string // exact match
	Keyword         string // case-insensitive substring on description
	MostRecentFirst bool
}

// matches reports whether the record satisfies every criterion.
func (c Criteria) matches(r Record) bool {
	if !c.Range.IsZero() {
		// A record without a usable date can never satisfy a bounded
		// range; it is excluded rather than compared.
		if r.Date.IsZero() {
			return false
		}
		if !c.Range.Contains(r.Date) {
			return false
		}
	}
	if c.Kind != nil && r.Kind != *c.Kind {
		return false
	}
	if c.Category != "" && r.Category != c.Category {
		return false
	}
	if c.Keyword != "" && !strings.Contains(strings.ToLower(r.Description), strings.ToLower(c.Keyword)) {
		return false
	}
	return true
}

// View is a read-only ordered projection of the ledger. Every row keeps
// the ID of its source record, so edits made against the view can always
// be traced back to the store. A view is never persisted; it is
// recomputed on every read.
type View struct {
	Criteria Criteria
	Rows     []Record
}

// View applies the criteria to the ledger and returns the resulting
// projection. The view inherits the ledger's chronological order unless
// the criteria ask for most-recent-first, in which case ties on the same
// day are broken by descending ID to keep the order deterministic.
func (l *Ledger) View(c Criteria) *View {
	rows := make([]Record, 0, len(l.records))
	for _, r := range l.records {
		if c.matches(r) {
			rows = append(rows, r)
		}
	}
	if c.MostRecentFirst {
		slices.SortStableFunc(rows, func(a, b Record) int {
			switch {
			case a.Date.After(b.Date):
				return -1
			case a.Date.Before(b.Date):
				return 1
			case a.ID > b.ID:
				return -1
			case a.ID < b.ID:
				return 1
			default:
				return 0
			}
		})
	}
	return &View{Criteria: c, Rows: rows}
}

// IDs returns the set of record IDs present in the view.
func (v *View) IDs() map[int64]struct{} {
	ids := make(map[int64]struct{}, len(v.Rows))
	for _, r := range v.Rows {
		ids[r.ID] = struct{}{}
	}
	return ids
}
