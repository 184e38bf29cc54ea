package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hyunwoo/cashbook"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the ledger file into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `cbk fmt

  Reads the ledger file, reports rows that could not be parsed, and
  writes the remaining records back in canonical order: sorted by date,
  with the standard header and column layout. Rows skipped on read are
  dropped from the rewritten file.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	if len(book.Warnings()) > 0 {
		printWarning(os.Stderr, fmt.Sprintf("%d unparseable row(s) will be dropped from the rewritten file.", len(book.Warnings())))
	}
	if err := cashbook.SaveLedger(book.Path(), book.Ledger()); err != nil {
		return fail(err)
	}
	printSuccess(os.Stdout, fmt.Sprintf("Formatted %s (%d records).", book.Path(), book.Ledger().Len()))
	return subcommands.ExitSuccess
}
