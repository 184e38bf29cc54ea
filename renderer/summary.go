package renderer

import (
	"slices"
	"strings"

	"github.com/hyunwoo/cashbook"
)

type summaryData struct {
	Title   string
	Income  string
	Expense string
	Balance string
}

// Summary renders income/expense totals and the balance.
func Summary(title string, s cashbook.Summary, currency string) string {
	return renderTemplate("summary.md", summaryData{
		Title:   title,
		Income:  Amount(s.Income, currency),
		Expense: Amount(s.Expense, currency),
		Balance: Amount(s.Balance, currency),
	})
}

type categoryRow struct {
	Category string
	Amount   string
}

type categoriesData struct {
	Rows []categoryRow
}

// CategoryTotals renders per-category expense totals, largest first so
// the biggest spend reads first.
func CategoryTotals(totals map[string]int64, currency string) string {
	var data categoriesData
	type entry struct {
		category string
		amount   int64
	}
	entries := make([]entry, 0, len(totals))
	for c, a := range totals {
		entries = append(entries, entry{c, a})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		switch {
		case a.amount > b.amount:
			return -1
		case a.amount < b.amount:
			return 1
		default:
			return strings.Compare(a.category, b.category)
		}
	})
	for _, e := range entries {
		data.Rows = append(data.Rows, categoryRow{Category: e.category, Amount: Amount(e.amount, currency)})
	}
	return renderTemplate("categories.md", data)
}
