package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/google/subcommands"
	"github.com/hyunwoo/cashbook"
	"github.com/hyunwoo/cashbook/date"
	"github.com/hyunwoo/cashbook/renderer"
)

type editCmd struct {
	filters filterFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "interactively edit or delete displayed records" }
func (*editCmd) Usage() string {
	return `cbk edit [-p <period> | -s <start_date>] [-d <end_date>] [-k <kind>] [-c <category>] [-q <keyword>]

  Displays the records matching the filters and lets you edit fields or
  mark rows for deletion. Nothing touches the ledger until you choose to
  save; the whole session is then applied as one step, reversible with a
  single undo. Rows are matched back by their ID, so editing a filtered
  list never affects records outside it.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	c.filters.register(f)
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	criteria, err := c.filters.criteria()
	if err != nil {
		return usageError(err.Error())
	}

	book, err := openBook()
	if err != nil {
		return fail(err)
	}
	view := book.View(criteria)
	if len(view.Rows) == 0 {
		fmt.Println("No records match the filters.")
		return subcommands.ExitSuccess
	}

	edits := view.Edits()
	for {
		idx, err := pickRow(view, edits)
		if err != nil {
			return fail(err)
		}
		if idx < 0 {
			break
		}
		if err := editRow(&edits[idx]); err != nil {
			return fail(err)
		}
	}

	res, err := book.SaveEdits(view, edits)
	if err != nil {
		return fail(err)
	}
	printSuccess(os.Stdout, fmt.Sprintf("Saved: %d updated, %d deleted.", res.Updated, res.Deleted))
	if res.Missed > 0 {
		printWarning(os.Stdout, fmt.Sprintf("%d row(s) no longer exist in the ledger and were skipped; the list was stale.", res.Missed))
	}
	return subcommands.ExitSuccess
}

// pickRow asks which row to work on next. It returns -1 when the user
// is done.
func pickRow(view *cashbook.View, edits []cashbook.RowEdit) (int, error) {
	options := make([]huh.Option[int], 0, len(view.Rows)+1)
	for i, r := range view.Rows {
		label := fmt.Sprintf("[%d] %s %s %s %s", r.ID, edits[i].Date, edits[i].Kind,
			edits[i].Category, renderer.Amount(edits[i].Amount, renderer.DefaultCurrency))
		if edits[i].Delete {
			label += " (will be deleted)"
		} else if edits[i].Fields != fieldsOf(r) {
			label += " (edited)"
		}
		options = append(options, huh.NewOption(label, i))
	}
	options = append(options, huh.NewOption("Save and exit", -1))

	var idx int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("Select a record").
			Options(options...).
			Value(&idx),
	))
	if err := form.Run(); err != nil {
		return 0, fmt.Errorf("failed to read selection: %w", err)
	}
	return idx, nil
}

// editRow runs the form for a single row, writing the answers back into
// the edit in place.
func editRow(e *cashbook.RowEdit) error {
	dateStr := e.Date.String()
	kindStr := e.Kind.String()
	amountStr := strconv.FormatInt(e.Amount, 10)

	var del bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Delete this record?").
			Value(&del),
		huh.NewInput().
			Title("Date").
			Value(&dateStr).
			Validate(func(s string) error {
				_, err := date.Parse(s)
				return err
			}),
		huh.NewInput().
			Title("Kind (income, expense)").
			Value(&kindStr).
			Validate(func(s string) error {
				_, err := cashbook.ParseKind(s)
				return err
			}),
		huh.NewInput().
			Title("Category").
			Value(&e.Category),
		huh.NewInput().
			Title("Description").
			Value(&e.Description),
		huh.NewInput().
			Title("Amount").
			Value(&amountStr).
			Validate(func(s string) error {
				n, err := strconv.ParseInt(s, 10, 64)
				if err != nil {
					return fmt.Errorf("not a whole amount: %q", s)
				}
				if n < 0 {
					return fmt.Errorf("amount must not be negative")
				}
				return nil
			}),
	))
	if err := form.Run(); err != nil {
		return fmt.Errorf("failed to read edits: %w", err)
	}

	e.Delete = del
	if del {
		return nil
	}
	// Validated by the form above.
	e.Date, _ = date.Parse(dateStr)
	e.Kind, _ = cashbook.ParseKind(kindStr)
	e.Amount, _ = strconv.ParseInt(amountStr, 10, 64)
	return nil
}

func fieldsOf(r cashbook.Record) cashbook.Fields {
	return cashbook.Fields{
		Date:        r.Date,
		Kind:        r.Kind,
		Category:    r.Category,
		Description: r.Description,
		Amount:      r.Amount,
	}
}
