package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/unicorn"
	"github.com/etnz/unicorn/renderer"
	"github.com/google/subcommands"
)

// dashCmd holds the flags for the 'dash' subcommand.
type dashCmd struct {
	filterFlags
	top int
}

func (*dashCmd) Name() string     { return "dash" }
func (*dashCmd) Synopsis() string { return "display the full analytics dashboard" }
func (*dashCmd) Usage() string {
	return `ucs dash [-top <n>] [-industry <name>] [-country <name>] [-founded <from:to>]

  Displays the full dashboard: KPI metrics, valuations over time, top
  countries by number of unicorns, and the industry distribution.

Usage Examples:
# The whole snapshot.
$ ucs dash

# Fintech unicorns founded since 2010.
$ ucs dash -industry Fintech -founded 2010:

`
}

func (c *dashCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.IntVar(&c.top, "top", unicorn.DefaultTopCountries, "Number of countries to keep in the ranking.")
}

func (c *dashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, err := c.Filter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	set, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	dashboard := unicorn.NewDashboard(set, filter, c.top)
	printMarkdown(renderer.DashboardMarkdown(dashboard))
	return subcommands.ExitSuccess
}
