package cashbook

import (
	"fmt"
	"strings"

	"github.com/hyunwoo/cashbook/date"
)

// Kind classifies a record as income or expense.
type Kind int

const (
	Income Kind = iota
	Expense
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return 0, &ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown kind %q", s)}
	}
}

// Record is one ledger entry. ID is assigned by the ledger at creation,
// is unique for the lifetime of the store and never reused.
type Record struct {
	ID          int64
	Date        date.Date
	Kind        Kind
	Category    string
	Description string
	Amount      int64 // smallest currency unit, never negative
}

// Fields holds the mutable fields of a record, used to create or update
// one without touching its identity.
type Fields struct {
	Date        date.Date
	Kind        Kind
	Category    string
	Description string
	Amount      int64
}

// Validate checks the fields for boundary errors. It never partially
// applies anything, it only reports.
func (f Fields) Validate() error {
	if f.Amount < 0 {
		return &ValidationError{Field: "amount", Reason: fmt.Sprintf("negative amount %d", f.Amount)}
	}
	if f.Kind != Income && f.Kind != Expense {
		return &ValidationError{Field: "kind", Reason: fmt.Sprintf("unknown kind %d", f.Kind)}
	}
	return nil
}

// apply copies the mutable fields onto a record, preserving its ID.
func (f Fields) apply(r *Record) {
	r.Date = f.Date
	r.Kind = f.Kind
	r.Category = strings.TrimSpace(f.Category)
	r.Description = strings.TrimSpace(f.Description)
	r.Amount = f.Amount
}

// fields returns the mutable fields of the record.
func (r Record) fields() Fields {
	return Fields{
		Date:        r.Date,
		Kind:        r.Kind,
		Category:    r.Category,
		Description: r.Description,
		Amount:      r.Amount,
	}
}
