package cmd

import (
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/unicorn"
)

// multiFlag collects a repeatable string flag; a single occurrence may also
// hold a comma-separated list.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*m = append(*m, v)
		}
	}
	return nil
}

// filterFlags holds the three dashboard filter flags shared by every report
// command.
type filterFlags struct {
	industries multiFlag
	countries  multiFlag
	founded    string
}

func (c *filterFlags) SetFlags(f *flag.FlagSet) {
	f.Var(&c.industries, "industry", "Only companies in this industry. Repeatable, or comma-separated.")
	f.Var(&c.countries, "country", "Only companies in this country. Repeatable, or comma-separated.")
	f.StringVar(&c.founded, "founded", "", "Only companies founded in this year range, e.g. 2000:2015, 2010: or :1999.")
}

// Filter parses the flags into the selection predicates.
func (c *filterFlags) Filter() (unicorn.Filter, error) {
	founded, err := unicorn.ParseYearRange(c.founded)
	if err != nil {
		return unicorn.Filter{}, fmt.Errorf("invalid -founded flag: %w", err)
	}
	return unicorn.Filter{
		Industries: c.industries,
		Countries:  c.countries,
		Founded:    founded,
	}, nil
}
