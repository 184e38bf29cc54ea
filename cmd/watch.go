package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/subcommands"
	"github.com/hyunwoo/cashbook"
	"github.com/hyunwoo/cashbook/date"
	"github.com/hyunwoo/cashbook/renderer"
)

type watchCmd struct {
	period string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "watch the ledger file and re-display the summary on change" }
func (*watchCmd) Usage() string {
	return `cbk watch [-p <period>]

  Watches the ledger file and prints a fresh summary every time it
  changes, until interrupted. Useful next to an editor or a script
  feeding the ledger.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "month", "Period to summarize on each refresh (day, week, month, quarter, year).")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		return usageError(err.Error())
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fail(fmt.Errorf("failed to create file watcher: %w", err))
	}
	defer watcher.Close()

	// The ledger is saved atomically by renaming a temp file over it, so
	// a watch on the file itself would be lost on the first save. Watch
	// the directory and filter for the ledger's name instead.
	dir := filepath.Dir(*ledgerFile)
	base := filepath.Base(*ledgerFile)
	if err := watcher.Add(dir); err != nil {
		return fail(fmt.Errorf("failed to watch %s: %w", dir, err))
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	c.render(period)

	// Editors and atomic saves touch the file in several steps; coalesce
	// bursts of events into one refresh.
	const debounceDelay = 100 * time.Millisecond
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return subcommands.ExitSuccess

		case event, ok := <-watcher.Events:
			if !ok {
				return subcommands.ExitSuccess
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				c.render(period)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return subcommands.ExitSuccess
			}
			printWarning(os.Stderr, fmt.Sprintf("file watcher error: %v", err))
		}
	}
}

func (c *watchCmd) render(period date.Period) {
	book, err := openBook()
	if err != nil {
		printWarning(os.Stderr, err.Error())
		return
	}
	r := period.Range(date.Today())
	view := book.View(cashbook.Criteria{Range: r})
	title := fmt.Sprintf("%s to %s", r.From, r.To)
	printMarkdown(renderer.Summary(title, cashbook.Summarize(view.Rows), renderer.DefaultCurrency))
}
