package cashbook

import "fmt"

// RowEdit is one row of a view as returned by the user: the possibly
// changed field values, the source record's ID, and a deletion flag.
type RowEdit struct {
	ID     int64
	Delete bool
	Fields
}

// ReconcileResult reports what a reconciliation did. Missed counts rows
// whose ID was no longer present in the ledger: the view was stale, the
// row was skipped, and the caller should refresh and re-render.
type ReconcileResult struct {
	Deleted int
	Updated int
	Missed  int
}

// Edits returns one baseline edit per view row, carrying the row's
// current field values. Callers change the rows they care about and
// pass the whole slice to Reconcile.
func (v *View) Edits() []RowEdit {
	edits := make([]RowEdit, len(v.Rows))
	for i, r := range v.Rows {
		edits[i] = RowEdit{ID: r.ID, Fields: r.fields()}
	}
	return edits
}

// Reconcile applies edits and deletions made against a view back onto
// the canonical ledger.
//
// The edits must parallel the view's rows: same length, same order, each
// edit carrying the ID of the row it was made on. Identity is resolved
// exclusively through IDs; two field-identical records are never
// confused, and a row whose ID has vanished is skipped rather than
// matched by value.
//
// Deletions are applied first, then edits, and only rows whose fields
// actually differ from the view baseline are rewritten. Untouched rows
// are left alone so the save stays idempotent.
func Reconcile(l *Ledger, view *View, edits []RowEdit) (ReconcileResult, error) {
	var res ReconcileResult

	if len(edits) != len(view.Rows) {
		return res, &ValidationError{
			Field:  "edits",
			Reason: fmt.Sprintf("got %d edited rows for a view of %d", len(edits), len(view.Rows)),
		}
	}
	for i, e := range edits {
		if e.ID != view.Rows[i].ID {
			return res, &ValidationError{
				Field:  "edits",
				Reason: fmt.Sprintf("row %d edits record %d but the view shows record %d", i, e.ID, view.Rows[i].ID),
			}
		}
		if e.Delete {
			continue
		}
		if err := e.Fields.Validate(); err != nil {
			return res, err
		}
	}

	// Deletion pass.
	deletions := make(map[int64]struct{})
	for _, e := range edits {
		if e.Delete {
			deletions[e.ID] = struct{}{}
		}
	}
	res.Deleted = l.Remove(deletions)
	res.Missed += len(deletions) - res.Deleted

	// Edit pass.
	for i, e := range edits {
		if e.Delete {
			continue
		}
		if e.Fields == view.Rows[i].fields() {
			continue // untouched row
		}
		ok, err := l.Update(e.ID, e.Fields)
		if err != nil {
			return res, err
		}
		if ok {
			res.Updated++
		} else {
			res.Missed++
		}
	}
	return res, nil
}
