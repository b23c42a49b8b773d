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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	filterFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the snapshot KPI metrics" }
func (*summaryCmd) Usage() string {
	return `ucs summary [-industry <name>] [-country <name>] [-founded <from:to>]

  Displays the headline metrics of the (filtered) snapshot: number of
  unicorns, total and average valuation, and average founding year.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	dashboard := unicorn.NewDashboard(set, filter, 0)
	printMarkdown(renderer.SummaryMarkdown(dashboard))
	return subcommands.ExitSuccess
}
