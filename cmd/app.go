// Package cmd implements the CLI application to manage a cashbook.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hyunwoo/cashbook"

	// Loads a .env file from the working directory into the environment
	// before the flag defaults below are computed.
	_ "github.com/joho/godotenv/autoload"
)

// Commands is the full command set, in registration order. A main
// package registers them on a commander and executes the selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&txCmd{},
	&editCmd{},
	&deleteCmd{},
	&undoCmd{},
	&summaryCmd{},
	&budgetCmd{},
	&watchCmd{},
	&fmtCmd{},
	&topicCmd{},
}

// Environment variables overriding the file flag defaults. A .env file
// in the working directory is loaded into the environment first.
const (
	EnvLedgerFile = "CBK_LEDGER_FILE"
	EnvBudgetFile = "CBK_BUDGET_FILE"
)

// As a CLI application it has a very short lived lifecycle, so it is ok
// to use global variables.

var ledgerFile = flag.String("ledger-file", envOr(EnvLedgerFile, "ledger.csv"), "Path to the ledger file (CSV format)")
var budgetFile = flag.String("budget-file", envOr(EnvBudgetFile, "budgets.json"), "Path to the budgets file (JSON format)")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openBook is the central function to open the ledger file. Rows that
// could not be parsed are reported on stderr and skipped.
func openBook() (*cashbook.Book, error) {
	b, err := cashbook.OpenBook(*ledgerFile)
	if err != nil {
		return nil, err
	}
	for _, w := range b.Warnings() {
		printWarning(os.Stderr, w.String())
	}
	return b, nil
}

// loadBudgets loads the budgets file. A missing file yields an empty
// set, so budgets stay entirely optional.
func loadBudgets() (cashbook.Budgets, error) {
	return cashbook.LoadBudgets(*budgetFile)
}

func saveBudgets(b cashbook.Budgets) error {
	return cashbook.SaveBudgets(*budgetFile, b)
}

// fail prints the error and maps it to an exit status.
func fail(err error) subcommands.ExitStatus {
	printError(os.Stderr, err.Error())
	return subcommands.ExitFailure
}

// usageError prints the message and returns a usage exit status.
func usageError(msg string) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", msg)
	return subcommands.ExitUsageError
}
