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

type budgetCmd struct {
	category string
	limit    int64
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "show or set monthly spending budgets" }
func (*budgetCmd) Usage() string {
	return `cbk budget [-c <category> -limit <amount>]

  Without flags, reports this month's spending against every budget.
  With -c and -limit, sets the monthly budget for a category; the
  special category "overall" caps total monthly spending. A limit of 0
  removes the budget. Budgets alert, they never block a record.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "c", "", "Category to budget, or \"overall\".")
	f.Int64Var(&c.limit, "limit", -1, "Monthly limit in the smallest currency unit, 0 to remove.")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	budgets, err := loadBudgets()
	if err != nil {
		return fail(err)
	}

	if c.category != "" || c.limit >= 0 {
		if c.category == "" || c.limit < 0 {
			return usageError("setting a budget requires both -c and -limit")
		}
		budgets.Set(c.category, c.limit)
		if err := saveBudgets(budgets); err != nil {
			return fail(err)
		}
		if c.limit == 0 {
			printSuccess(os.Stdout, fmt.Sprintf("Removed the budget for %q.", c.category))
		} else {
			printSuccess(os.Stdout, fmt.Sprintf("Budget for %q set to %s per month.",
				c.category, renderer.Amount(c.limit, renderer.DefaultCurrency)))
		}
		return subcommands.ExitSuccess
	}

	if len(budgets) == 0 {
		fmt.Println("No budgets set. Use 'cbk budget -c <category> -limit <amount>' to add one.")
		return subcommands.ExitSuccess
	}

	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	month := date.Monthly.Range(date.Today())
	view := book.View(cashbook.Criteria{Range: month})
	report := cashbook.BudgetReport(view.Rows, budgets)
	title := fmt.Sprintf("%s to %s", month.From, month.To)
	printMarkdown(renderer.BudgetReport(title, report, renderer.DefaultCurrency))
	return subcommands.ExitSuccess
}
