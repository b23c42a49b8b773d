package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/unicorn/maven"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	url string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "downloads the unicorn snapshot" }
func (*fetchCmd) Usage() string {
	return `ucs fetch [-url <url>]

  Downloads the unicorn company snapshot and saves it to the snapshot file
  in canonical JSONL form.

  By default it fetches the Maven Unicorn Challenge dataset (March 2022
  capture). Responses are cached on disk for a day, so re-running fetch is
  cheap.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.url, "url", maven.DefaultURL, "Location of the snapshot to download (CSV or JSON export).")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	set, err := maven.Fetch(c.url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeSnapshot(set); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Fetched %d companies into %s\n", set.Len(), *snapshotFile)
	return subcommands.ExitSuccess
}
