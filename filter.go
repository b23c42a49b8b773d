package unicorn

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// YearRange represents an inclusive range of founding years.
// A zero boundary is unbounded on that side.
type YearRange struct{ From, To int }

// Contains reports whether the year falls inside the range.
func (r YearRange) Contains(year int) bool {
	if r.From != 0 && year < r.From {
		return false
	}
	if r.To != 0 && year > r.To {
		return false
	}
	return true
}

// IsZero reports whether the range is unbounded on both sides.
func (r YearRange) IsZero() bool { return r.From == 0 && r.To == 0 }

func (r YearRange) String() string {
	switch {
	case r.IsZero():
		return ":"
	case r.From == 0:
		return fmt.Sprintf(":%d", r.To)
	case r.To == 0:
		return fmt.Sprintf("%d:", r.From)
	default:
		return fmt.Sprintf("%d:%d", r.From, r.To)
	}
}

// ParseYearRange parses the CLI form of a year range: "2000:2015", "2010:",
// ":1999", or a single year "2012" meaning exactly that year.
func ParseYearRange(s string) (YearRange, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == ":" {
		return YearRange{}, nil
	}
	parse := func(part string) (int, error) {
		if part == "" {
			return 0, nil
		}
		y, err := strconv.Atoi(part)
		if err != nil || y < 0 {
			return 0, fmt.Errorf("invalid year %q", part)
		}
		return y, nil
	}

	from, to, found := strings.Cut(s, ":")
	if !found {
		y, err := parse(from)
		if err != nil {
			return YearRange{}, err
		}
		return YearRange{From: y, To: y}, nil
	}

	r := YearRange{}
	var err error
	if r.From, err = parse(from); err != nil {
		return YearRange{}, err
	}
	if r.To, err = parse(to); err != nil {
		return YearRange{}, err
	}
	if r.From != 0 && r.To != 0 && r.From > r.To {
		r.From, r.To = r.To, r.From
	}
	return r, nil
}

// Filter holds the boolean predicates of the dashboard: an optional industry
// selection, an optional country selection, and an optional founding-year
// range. The zero Filter selects everything.
type Filter struct {
	Industries []string
	Countries  []string
	Founded    YearRange
}

// IsZero reports whether the filter selects everything.
func (f Filter) IsZero() bool {
	return len(f.Industries) == 0 && len(f.Countries) == 0 && f.Founded.IsZero()
}

// Match reports whether the company passes all predicates.
func (f Filter) Match(c Company) bool {
	if len(f.Industries) > 0 && !containsFold(f.Industries, c.Industry) {
		return false
	}
	if len(f.Countries) > 0 && !containsFold(f.Countries, c.Country) {
		return false
	}
	if !f.Founded.IsZero() && !f.Founded.Contains(c.Founded) {
		return false
	}
	return true
}

func containsFold(list []string, value string) bool {
	return slices.ContainsFunc(list, func(s string) bool { return strings.EqualFold(s, value) })
}

// String renders the filter for report titles, e.g.
// "industry=Fintech country=India,Brazil founded=2000:2015".
func (f Filter) String() string {
	var parts []string
	if len(f.Industries) > 0 {
		parts = append(parts, "industry="+strings.Join(f.Industries, ","))
	}
	if len(f.Countries) > 0 {
		parts = append(parts, "country="+strings.Join(f.Countries, ","))
	}
	if !f.Founded.IsZero() {
		parts = append(parts, "founded="+f.Founded.String())
	}
	return strings.Join(parts, " ")
}

// Select returns a new Set holding only the companies matching the filter.
// The result keeps the source order and is never larger than the source.
func (s *Set) Select(f Filter) *Set {
	out := NewSet()
	out.name = s.name
	for _, c := range s.companies {
		if !f.Match(c) {
			continue
		}
		// records come from a valid set, in order, without duplicates
		out.companies = append(out.companies, c)
		out.byName[c.Name] = len(out.companies) - 1
	}
	return out
}
