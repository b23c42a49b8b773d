// Package cmd implements the CLI application to explore the unicorn snapshot.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/etnz/unicorn"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&dashCmd{}, "reports")
	c.Register(&timelineCmd{}, "reports")
	c.Register(&countriesCmd{}, "reports")
	c.Register(&industriesCmd{}, "reports")

	c.Register(&fetchCmd{}, "snapshot")
	c.Register(&fmtCmd{}, "snapshot")

	c.Register(&serveCmd{}, "explore")
	c.Register(&assistCmd{}, "explore")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("snapshot-file", "unicorns.jsonl", "Path to the snapshot file containing company records")

// DecodeSnapshot loads the app default snapshot file.
// If the file does not exist, it returns a new empty set.
func DecodeSnapshot() (*unicorn.Set, error) {
	set, err := unicorn.LoadSnapshot(*snapshotFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, snapshot does not exist, using an empty one instead; run 'ucs fetch' first")
		return unicorn.NewSet(), nil
	}
	return set, err
}

// EncodeSnapshot saves the set into the app default snapshot file.
func EncodeSnapshot(s *unicorn.Set) error {
	return unicorn.SaveSnapshot(*snapshotFile, s)
}
