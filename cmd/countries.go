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

// countriesCmd holds the flags for the 'countries' subcommand.
type countriesCmd struct {
	filterFlags
	top int
}

func (*countriesCmd) Name() string     { return "countries" }
func (*countriesCmd) Synopsis() string { return "rank countries by number of unicorns" }
func (*countriesCmd) Usage() string {
	return `ucs countries [-top <n>] [-industry <name>] [-country <name>] [-founded <from:to>]

  Ranks countries by the number of unicorn companies they host.
`
}

func (c *countriesCmd) SetFlags(f *flag.FlagSet) {
	c.filterFlags.SetFlags(f)
	f.IntVar(&c.top, "top", unicorn.DefaultTopCountries, "Number of countries to keep in the ranking.")
}

func (c *countriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.CountriesMarkdown(dashboard))
	return subcommands.ExitSuccess
}
