package cashbook

import "strings"

// Summary holds income and expense totals over a record set.
type Summary struct {
	Income  int64
	Expense int64
	Balance int64 // Income - Expense
}

// Summarize sums amounts grouped by kind. An empty input yields the zero
// summary, and the function is additive over concatenation of inputs.
func Summarize(records []Record) Summary {
	var s Summary
	for _, r := range records {
		switch r.Kind {
		case Income:
			s.Income += r.Amount
		case Expense:
			s.Expense += r.Amount
		}
	}
	s.Balance = s.Income - s.Expense
	return s
}

// CategoryTotals sums expense amounts grouped by category. Income records
// are ignored, and categories with no expense are absent from the result.
func CategoryTotals(records []Record) map[string]int64 {
	totals := make(map[string]int64)
	for _, r := range records {
		if r.Kind == Expense {
			totals[r.Category] += r.Amount
		}
	}
	return totals
}

// CategoryTotalsFixed is CategoryTotals over a fixed category universe:
// every listed category is present in the result, zero-filled when it has
// no expense. Charts need the stable axis across filter changes. Expenses
// in categories outside the universe are still included under their own
// name, never silently dropped.
func CategoryTotalsFixed(records []Record, categories []string) map[string]int64 {
	totals := CategoryTotals(records)
	for _, c := range categories {
		if _, ok := totals[c]; !ok {
			totals[c] = 0
		}
	}
	return totals
}

// KeywordSpend returns how many expense records match the keyword
// (case-insensitive substring on description) and their total amount.
func KeywordSpend(records []Record, keyword string) (count int, total int64) {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return 0, 0
	}
	for _, r := range records {
		if r.Kind == Expense && strings.Contains(strings.ToLower(r.Description), kw) {
			count++
			total += r.Amount
		}
	}
	return count, total
}
