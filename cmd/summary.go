package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/hyunwoo/cashbook"
	"github.com/hyunwoo/cashbook/date"
	"github.com/hyunwoo/cashbook/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	period  string
	date    string
	keyword string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display totals, category breakdown and budget position" }
func (*summaryCmd) Usage() string {
	return `cbk summary [-p <period>] [-d <date>] [-q <keyword>]

  Displays income, expense and balance totals for the period, the
  per-category expense breakdown, and the position against any budgets.
  With -q it also reports how much was spent on records whose
  description contains the keyword.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Period to summarize (day, week, month, quarter, year).")
	f.StringVar(&c.date, "d", date.Today().String(), "Date inside the period to summarize.")
	f.StringVar(&c.keyword, "q", "", "Also report spending on records matching this keyword.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		return usageError(fmt.Sprintf("parsing date: %v", err))
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		return usageError(err.Error())
	}

	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	budgets, err := loadBudgets()
	if err != nil {
		return fail(err)
	}

	r := period.Range(on)
	view := book.View(cashbook.Criteria{Range: r})
	title := fmt.Sprintf("%s to %s", r.From, r.To)

	var b strings.Builder
	b.WriteString(renderer.Summary(title, cashbook.Summarize(view.Rows), renderer.DefaultCurrency))

	// Zero-filling with the budgeted categories keeps them visible even
	// in a month without any spending on them.
	totals := cashbook.CategoryTotalsFixed(view.Rows, budgetedCategories(budgets))
	if len(totals) > 0 {
		b.WriteString("\n")
		b.WriteString(renderer.CategoryTotals(totals, renderer.DefaultCurrency))
	}

	if c.keyword != "" {
		count, total := cashbook.KeywordSpend(view.Rows, c.keyword)
		b.WriteString(fmt.Sprintf("\nSpent %s over %d record(s) matching %q.\n",
			renderer.Amount(total, renderer.DefaultCurrency), count, c.keyword))
	}

	if len(budgets) > 0 {
		report := cashbook.BudgetReport(view.Rows, budgets)
		b.WriteString("\n")
		b.WriteString(renderer.BudgetReport(title, report, renderer.DefaultCurrency))
	}

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

func budgetedCategories(budgets cashbook.Budgets) []string {
	var categories []string
	for category := range budgets {
		if category != cashbook.Overall {
			categories = append(categories, category)
		}
	}
	return categories
}
