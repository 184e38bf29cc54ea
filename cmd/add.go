package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hyunwoo/cashbook"
	"github.com/hyunwoo/cashbook/date"
	"github.com/hyunwoo/cashbook/renderer"
)

type addCmd struct {
	date     string
	kind     string
	category string
	memo     string
	amount   int64
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new income or expense" }
func (*addCmd) Usage() string {
	return `cbk add -c <category> -a <amount> [-d <date>] [-k <kind>] [-m <memo>]

  Appends a record to the ledger and saves it immediately. The amount is
  in the smallest currency unit and must not be negative. The record
  gets a unique ID that is never reused, even after deletion.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the record. Several formats are accepted, e.g. 2025-01-02, 2025/1/2, 20250102.")
	f.StringVar(&c.kind, "k", "expense", "Kind of record (income, expense).")
	f.StringVar(&c.category, "c", "", "Category of the record (required).")
	f.StringVar(&c.memo, "m", "", "Free text description.")
	f.Int64Var(&c.amount, "a", -1, "Amount in the smallest currency unit (required).")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.category == "" {
		return usageError("-c category is required")
	}
	if c.amount < 0 {
		return usageError("-a amount is required and must not be negative")
	}
	on, err := date.Parse(c.date)
	if err != nil {
		return usageError(fmt.Sprintf("parsing date: %v", err))
	}
	kind, err := cashbook.ParseKind(c.kind)
	if err != nil {
		return usageError(err.Error())
	}

	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	added, err := book.Add(cashbook.Fields{
		Date:        on,
		Kind:        kind,
		Category:    c.category,
		Description: c.memo,
		Amount:      c.amount,
	})
	if err != nil {
		return fail(err)
	}
	printSuccess(os.Stdout, fmt.Sprintf("Recorded %s %s [%d] in %q on %s.",
		added.Kind, renderer.Amount(added.Amount, renderer.DefaultCurrency), added.ID, added.Category, added.Date))

	if added.Kind == cashbook.Expense {
		c.printBudgetPosition(book, added)
	}
	return subcommands.ExitSuccess
}

// printBudgetPosition reports where this month's spending stands after
// the new expense, for its category and overall. Budgets never block a
// record, they only alert.
func (c *addCmd) printBudgetPosition(book *cashbook.Book, added cashbook.Record) {
	budgets, err := loadBudgets()
	if err != nil {
		printWarning(os.Stderr, err.Error())
		return
	}
	month := book.View(cashbook.Criteria{Range: date.Monthly.Range(added.Date)})
	for _, st := range cashbook.BudgetReport(month.Rows, budgets) {
		if st.Category != added.Category && st.Category != cashbook.Overall {
			continue
		}
		line := fmt.Sprintf("%s: %s", st.Category, st.Message)
		switch st.State {
		case cashbook.BudgetExceeded:
			printError(os.Stdout, line)
		case cashbook.BudgetWarning:
			printWarning(os.Stdout, line)
		case cashbook.BudgetOK:
			printSuccess(os.Stdout, line)
		}
	}
}
