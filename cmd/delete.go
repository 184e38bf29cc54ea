package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/hyunwoo/cashbook/renderer"
)

type deleteCmd struct {
	id   int64
	ids  string
	last bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete records by ID, or the most recent one" }
func (*deleteCmd) Usage() string {
	return `cbk delete [-id <id> | -ids <id,id,...> | -last]

  Deletes records from the ledger. There is no confirmation prompt: a
  deletion is always reversible with 'cbk undo'. IDs of deleted records
  are never reused.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.id, "id", 0, "ID of the record to delete.")
	f.StringVar(&c.ids, "ids", "", "Comma-separated IDs of the records to delete.")
	f.BoolVar(&c.last, "last", false, "Delete the most recent record.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		return fail(err)
	}

	if c.last {
		if c.id != 0 || c.ids != "" {
			return usageError("-last cannot be combined with -id or -ids")
		}
		removed, err := book.RemoveLast()
		if err != nil {
			return fail(err)
		}
		printSuccess(os.Stdout, fmt.Sprintf("Deleted [%d] %s %s %s.",
			removed.ID, removed.Date, removed.Category,
			renderer.Amount(removed.Amount, renderer.DefaultCurrency)))
		return subcommands.ExitSuccess
	}

	var ids []int64
	if c.id != 0 {
		ids = append(ids, c.id)
	}
	if c.ids != "" {
		for _, part := range strings.Split(c.ids, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return usageError(fmt.Sprintf("invalid ID %q", part))
			}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return usageError("one of -id, -ids or -last is required")
	}

	removed, err := book.Remove(ids...)
	if err != nil {
		return fail(err)
	}
	printSuccess(os.Stdout, fmt.Sprintf("Deleted %d record(s).", removed))
	if removed < len(ids) {
		printWarning(os.Stdout, fmt.Sprintf("%d ID(s) were not found in the ledger.", len(ids)-removed))
	}
	return subcommands.ExitSuccess
}
