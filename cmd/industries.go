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

// industriesCmd holds the flags for the 'industries' subcommand.
type industriesCmd struct {
	filterFlags
}

func (*industriesCmd) Name() string     { return "industries" }
func (*industriesCmd) Synopsis() string { return "display the industry distribution" }
func (*industriesCmd) Usage() string {
	return `ucs industries [-industry <name>] [-country <name>] [-founded <from:to>]

  Displays how the (filtered) unicorns distribute across industries.
`
}

func (c *industriesCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
}

func (c *industriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.IndustriesMarkdown(dashboard))
	return subcommands.ExitSuccess
}
