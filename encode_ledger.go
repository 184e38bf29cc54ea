package cashbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hyunwoo/cashbook/date"
)

// header is the canonical column layout of a persisted ledger file.
// Unknown extra columns in an existing file are ignored on load and
// dropped on the next save.
var header = []string{"id", "date", "kind", "category", "description", "amount"}

// DecodeLedger reads records from a CSV stream. Malformed rows are
// skipped and reported as warnings instead of aborting the load: one
// corrupt line must not blank the rest of the ledger.
func DecodeLedger(r io.Reader) (*Ledger, []RowWarning, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row arity is checked per column below

	ledger := NewLedger()
	var warnings []RowWarning

	head, err := cr.Read()
	if err == io.EOF {
		return ledger, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("could not read ledger header: %w", err)
	}

	// Resolve column positions from the header so files with reordered
	// or extra columns still load.
	cols := make(map[string]int, len(head))
	for i, name := range head {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range []string{"date", "kind", "category", "description", "amount"} {
		if _, ok := cols[name]; !ok {
			return nil, nil, fmt.Errorf("ledger header is missing column %q", name)
		}
	}

	field := func(row []string, name string) (string, bool) {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	line := 1
	for {
		line++
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A structurally broken line (stray quote, truncated row) is
			// recovered locally like any other malformed row.
			warnings = append(warnings, RowWarning{Line: line, Reason: err.Error()})
			continue
		}

		var rec Record

		if s, ok := field(row, "id"); ok && s != "" {
			id, err := strconv.ParseInt(s, 10, 64)
			if err != nil || id <= 0 {
				warnings = append(warnings, RowWarning{Line: line, Reason: fmt.Sprintf("invalid id %q", s)})
				continue
			}
			rec.ID = id
		} else {
			// Files written before IDs existed: allocate one now, it
			// becomes permanent on the next save.
			rec.ID = ledger.nextID
		}

		s, _ := field(row, "date")
		on, err := date.Parse(s)
		if err != nil {
			warnings = append(warnings, RowWarning{Line: line, Reason: err.Error()})
			continue
		}
		rec.Date = on

		s, _ = field(row, "kind")
		kind, err := ParseKind(s)
		if err != nil {
			warnings = append(warnings, RowWarning{Line: line, Reason: err.Error()})
			continue
		}
		rec.Kind = kind

		rec.Category, _ = field(row, "category")
		rec.Description, _ = field(row, "description")

		s, _ = field(row, "amount")
		amount, err := strconv.ParseInt(s, 10, 64)
		if err != nil || amount < 0 {
			warnings = append(warnings, RowWarning{Line: line, Reason: fmt.Sprintf("invalid amount %q", s)})
			continue
		}
		rec.Amount = amount

		ledger.append(rec)
	}

	ledger.stableSort()
	return ledger, warnings, nil
}

// EncodeLedger writes the ledger to a CSV stream in canonical form: the
// fixed header, one normalized record per line, chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("could not write ledger header: %w", err)
	}
	for _, r := range l.records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.Date.String(),
			r.Kind.String(),
			r.Category,
			r.Description,
			strconv.FormatInt(r.Amount, 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write record %d: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
