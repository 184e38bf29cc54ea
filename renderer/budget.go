package renderer

import (
	"github.com/hyunwoo/cashbook"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type budgetRow struct {
	Category string
	Spent    string
	Limit    string
	Percent  string
	State    string
	Message  string
}

type budgetData struct {
	Title string
	Rows  []budgetRow
}

// BudgetReport renders the evaluated budget positions.
func BudgetReport(title string, report []cashbook.BudgetStatus, currency string) string {
	data := budgetData{Title: title}
	for _, st := range report {
		row := budgetRow{
			Category: st.Category,
			Spent:    Amount(st.Spent, currency),
			State:    st.State.String(),
			Message:  st.Message,
		}
		if st.Limit > 0 {
			row.Limit = Amount(st.Limit, currency)
			row.Percent = st.Ratio.Mul(hundred).Round(0).String() + "%"
		} else {
			row.Limit = "-"
			row.Percent = "-"
		}
		data.Rows = append(data.Rows, row)
	}
	return renderTemplate("budget.md", data)
}
