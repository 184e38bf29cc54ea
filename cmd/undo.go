package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type undoCmd struct{}

func (*undoCmd) Name() string     { return "undo" }
func (*undoCmd) Synopsis() string { return "revert the most recent mutation" }
func (*undoCmd) Usage() string {
	return `cbk undo

  Restores the ledger to its state before the most recent add, delete or
  edit save. The last 5 mutations can be undone, most recent first.
`
}

func (c *undoCmd) SetFlags(f *flag.FlagSet) {}

func (c *undoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	ok, err := book.Undo()
	if err != nil {
		return fail(err)
	}
	if !ok {
		fmt.Println("Nothing to undo.")
		return subcommands.ExitSuccess
	}
	printSuccess(os.Stdout, "Reverted the most recent change.")
	return subcommands.ExitSuccess
}
