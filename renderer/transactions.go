package renderer

import (
	"github.com/hyunwoo/cashbook"
)

// transactionRow is one displayed ledger row.
type transactionRow struct {
	ID          int64
	Date        string
	Kind        string
	Category    string
	Description string
	Amount      string
}

type transactionsData struct {
	Rows  []transactionRow
	Count int
}

// Transactions renders a view as a markdown table. Every row shows the
// record's ID so edits and deletions can name their target.
func Transactions(v *cashbook.View, currency string) string {
	data := transactionsData{Count: len(v.Rows)}
	for _, r := range v.Rows {
		data.Rows = append(data.Rows, transactionRow{
			ID:          r.ID,
			Date:        r.Date.String(),
			Kind:        r.Kind.String(),
			Category:    r.Category,
			Description: r.Description,
			Amount:      Amount(r.Amount, currency),
		})
	}
	return renderTemplate("transactions.md", data)
}
