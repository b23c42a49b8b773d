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

// timelineCmd holds the flags for the 'timeline' subcommand.
type timelineCmd struct {
	filterFlags
}

func (*timelineCmd) Name() string     { return "timeline" }
func (*timelineCmd) Synopsis() string { return "display total valuations by year joined" }
func (*timelineCmd) Usage() string {
	return `ucs timeline [-industry <name>] [-country <name>] [-founded <from:to>]

  Displays, for each year companies became unicorns, how many joined and
  the sum of their valuations.
`
}

func (c *timelineCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
}

func (c *timelineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.TimelineMarkdown(dashboard))
	return subcommands.ExitSuccess
}
