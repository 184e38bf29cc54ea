package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/hyunwoo/cashbook"
	"github.com/hyunwoo/cashbook/renderer"
)

type txCmd struct {
	filters filterFlags
	head    int
	tail    int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list records from the ledger" }
func (*txCmd) Usage() string {
	return `cbk tx [-p <period> | -s <start_date>] [-d <end_date>] [-k <kind>] [-c <category>] [-q <keyword>] [-r] [-head <n>] [-tail <n>]

  Lists records from the ledger, with options for filtering and limiting
  the output. Without any flag the whole ledger is listed in
  chronological order.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	c.filters.register(f)
	f.IntVar(&c.head, "head", 0, "Show only the first N records.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N records.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		return usageError("-head and -tail flags cannot be used together")
	}
	criteria, err := c.filters.criteria()
	if err != nil {
		return usageError(err.Error())
	}

	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	view := book.View(criteria)
	if c.head > 0 && len(view.Rows) > c.head {
		view = &cashbook.View{Criteria: view.Criteria, Rows: view.Rows[:c.head]}
	}
	if c.tail > 0 && len(view.Rows) > c.tail {
		view = &cashbook.View{Criteria: view.Criteria, Rows: view.Rows[len(view.Rows)-c.tail:]}
	}

	printMarkdown(renderer.Transactions(view, renderer.DefaultCurrency))
	return subcommands.ExitSuccess
}
