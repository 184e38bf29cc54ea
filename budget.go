package cashbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/shopspring/decimal"
)

// Overall is the pseudo-category holding the budget over all expenses.
const Overall = "overall"

// Budgets maps a category (or Overall) to its monetary limit in the
// smallest currency unit. Absent keys read as 0, meaning unset. Budgets
// have their own file and their own lifecycle: they are saved only by an
// explicit action, never implicitly on a view.
type Budgets map[string]int64

// Limit returns the budget for the category, 0 when unset.
func (b Budgets) Limit(category string) int64 { return b[category] }

// Set assigns the budget for a category. A non-positive limit removes the
// entry, i.e. unsets the budget.
func (b Budgets) Set(category string, limit int64) {
	if limit <= 0 {
		delete(b, category)
		return
	}
	b[category] = limit
}

// LoadBudgets reads the budget file at path, defaulting to an empty
// mapping when the file does not exist yet.
func LoadBudgets(path string) (Budgets, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Budgets{}, nil
	}
	if err != nil {
		return nil, &StorageError{Op: "load", Path: path, Err: err}
	}
	var b Budgets
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, &StorageError{Op: "load", Path: path, Err: err}
	}
	return b, nil
}

// SaveBudgets persists the budgets as JSON, atomically like the ledger.
func SaveBudgets(path string, b Budgets) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &StorageError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// BudgetState classifies spend against a budget.
type BudgetState int

const (
	BudgetUnset BudgetState = iota
	BudgetOK
	BudgetWarning
	BudgetExceeded
)

func (s BudgetState) String() string {
	switch s {
	case BudgetUnset:
		return "unset"
	case BudgetOK:
		return "ok"
	case BudgetWarning:
		return "warning"
	case BudgetExceeded:
		return "exceeded"
	default:
		return "unknown"
	}
}

// Alert thresholds. Fixed design constants, not configuration.
var (
	warningThreshold  = decimal.RequireFromString("0.8")
	exceededThreshold = decimal.NewFromInt(1)
)

// BudgetStatus is the evaluated position of spend against one budget.
type BudgetStatus struct {
	Category string
	Spent    int64
	Limit    int64
	Ratio    decimal.Decimal
	State    BudgetState
	Message  string
}

// EvaluateBudget positions spend against a limit. A non-positive limit
// is unset with a zero ratio; otherwise the ratio is spent/limit, with
// warning from 80% and exceeded from 100%.
func EvaluateBudget(category string, spent, limit int64) BudgetStatus {
	st := BudgetStatus{Category: category, Spent: spent, Limit: limit}
	if limit <= 0 {
		st.State = BudgetUnset
		st.Ratio = decimal.Zero
		st.Message = "no budget set"
		return st
	}
	st.Ratio = decimal.NewFromInt(spent).Div(decimal.NewFromInt(limit))
	percent := st.Ratio.Mul(decimal.NewFromInt(100)).Round(0)
	switch {
	case st.Ratio.GreaterThanOrEqual(exceededThreshold):
		st.State = BudgetExceeded
		st.Message = fmt.Sprintf("budget exceeded (%s%% used)", percent)
	case st.Ratio.GreaterThanOrEqual(warningThreshold):
		st.State = BudgetWarning
		st.Message = fmt.Sprintf("over 80%% of budget used (%s%%)", percent)
	default:
		st.State = BudgetOK
		st.Message = fmt.Sprintf("within budget (%s%% used)", percent)
	}
	return st
}

// BudgetReport evaluates every budgeted category plus the overall budget
// against the expenses in the record set. Always recomputed from the
// current records on read; there is no cached month position to go stale.
func BudgetReport(records []Record, budgets Budgets) []BudgetStatus {
	totals := CategoryTotals(records)

	var report []BudgetStatus
	summary := Summarize(records)
	report = append(report, EvaluateBudget(Overall, summary.Expense, budgets.Limit(Overall)))

	// Budgeted categories next, in a stable order.
	for _, category := range slices.Sorted(maps.Keys(budgets)) {
		if category == Overall {
			continue
		}
		report = append(report, EvaluateBudget(category, totals[category], budgets[category]))
	}
	return report
}
