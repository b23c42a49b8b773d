// Command ucs explores a snapshot of unicorn companies from the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/unicorn/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion runs first: when invoked by the shell completion
	// hook it prints candidates and exits.
	completion().Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	filters := map[string]complete.Predictor{
		"industry": predict.Something,
		"country":  predict.Something,
		"founded":  predict.Something,
	}
	ranked := map[string]complete.Predictor{
		"industry": predict.Something,
		"country":  predict.Something,
		"founded":  predict.Something,
		"top":      predict.Something,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"snapshot-file": predict.Files("*.jsonl"),
		},
		Sub: map[string]*complete.Command{
			"summary":    {Flags: filters},
			"dash":       {Flags: ranked},
			"timeline":   {Flags: filters},
			"countries":  {Flags: ranked},
			"industries": {Flags: filters},
			"fetch":      {Flags: map[string]complete.Predictor{"url": predict.Something}},
			"fmt":        {Flags: map[string]complete.Predictor{"i": predict.Files("*")}},
			"serve": {Flags: map[string]complete.Predictor{
				"addr": predict.Something,
				"top":  predict.Something,
			}},
			"assist":     {},
			"topic":      {Args: predict.Set{"readme", "data", "filters", "dashboard", "*"}},
			"help":       {},
			"flags":      {},
			"commands":   {},
		},
	}
}
