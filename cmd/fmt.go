package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/unicorn"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	input string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats a snapshot file into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `ucs fmt [-i <file>]

  Validates and formats a snapshot file. This command reads all records,
  validates them, drops duplicates (last record wins), sorts them by date
  joined, and writes the result to the snapshot file in canonical JSONL
  format.

  The -i flag reads from another file (CSV, JSON or JSONL), which makes fmt
  the import path for hand-curated exports.

Usage Examples:
# Rewrites the default snapshot file in place.
$ ucs fmt

# Imports a raw CSV export into the default snapshot file.
$ ucs fmt -i unicorn_companies.csv

`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "File to read records from. Defaults to the snapshot file itself.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	input := c.input
	if input == "" {
		input = *snapshotFile
	}

	set, err := unicorn.LoadSnapshot(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load %q: %v\n", input, err)
		return subcommands.ExitFailure
	}

	if err := EncodeSnapshot(set); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not write snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted %d companies into %s\n", set.Len(), *snapshotFile)
	return subcommands.ExitSuccess
}
