package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/hyunwoo/cashbook/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion().Complete("cbk")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command tree for shell completion. It only
// runs when the shell asks for completions, and exits the process then.
func completion() *complete.Command {
	files := predict.Files("*")
	periods := predict.Set{"day", "week", "month", "quarter", "year"}
	kinds := predict.Set{"income", "expense"}

	filters := map[string]complete.Predictor{
		"p": periods,
		"s": predict.Nothing,
		"d": predict.Nothing,
		"k": kinds,
		"c": predict.Nothing,
		"q": predict.Nothing,
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": files,
			"budget-file": files,
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"d": predict.Nothing,
				"k": kinds,
				"c": predict.Nothing,
				"m": predict.Nothing,
				"a": predict.Nothing,
			}},
			"tx":      {Flags: filters},
			"edit":    {Flags: filters},
			"delete":  {Flags: map[string]complete.Predictor{"id": predict.Nothing, "ids": predict.Nothing, "last": predict.Nothing}},
			"undo":    {},
			"summary": {Flags: map[string]complete.Predictor{"p": periods, "d": predict.Nothing, "q": predict.Nothing}},
			"budget":  {Flags: map[string]complete.Predictor{"c": predict.Nothing, "limit": predict.Nothing}},
			"watch":   {Flags: map[string]complete.Predictor{"p": periods}},
			"fmt":     {},
			"topic":   {Args: predict.Set{"readme", "ledger", "filtering", "editing", "undo", "budgets"}},
		},
	}
}
