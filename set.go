package unicorn

import (
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"
)

// Set represents a snapshot of unicorn company records.
//
// In a Set records are always in chronological order of the date they joined
// unicorn status (ties broken by name), and a company name appears at most
// once: appending a record for a known name replaces the previous record,
// so every consumer downstream sees deduplicated data.
type Set struct {
	companies []Company
	byName    map[string]int // index in companies by company name
	name      string         // snapshot name, derived from its file
}

// NewSet creates an empty set.
func NewSet() *Set {
	return &Set{
		companies: make([]Company, 0),
		byName:    make(map[string]int),
	}
}

// Name returns the name of the snapshot this set was loaded from.
func (s *Set) Name() string { return s.name }

// Len returns the number of companies in the set.
func (s *Set) Len() int { return len(s.companies) }

// Append validates the record and inserts it in chronological position.
// A record with an already known company name replaces the previous one,
// keeping the set deduplicated.
func (s *Set) Append(companies ...Company) error {
	for _, c := range companies {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("invalid record: %w", err)
		}
		if i, exists := s.byName[c.Name]; exists {
			s.companies = slices.Delete(s.companies, i, i+1)
			s.reindex()
		}
		at := sort.Search(len(s.companies), func(i int) bool {
			x := s.companies[i]
			if x.Joined != c.Joined {
				return c.Joined.Before(x.Joined)
			}
			return x.Name >= c.Name
		})
		s.companies = slices.Insert(s.companies, at, c)
		s.reindex()
	}
	return nil
}

func (s *Set) reindex() {
	clear(s.byName)
	for i, c := range s.companies {
		s.byName[c.Name] = i
	}
}

// Get returns the record for a company name.
func (s *Set) Get(name string) (Company, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Company{}, false
	}
	return s.companies[i], true
}

// Companies returns an iterator over all records in chronological order.
func (s *Set) Companies() iter.Seq[Company] {
	return func(yield func(Company) bool) {
		for _, c := range s.companies {
			if !yield(c) {
				return
			}
		}
	}
}

// Industries returns the sorted list of distinct industries in the set.
func (s *Set) Industries() []string { return s.distinct(func(c Company) string { return c.Industry }) }

// Countries returns the sorted list of distinct countries in the set.
func (s *Set) Countries() []string { return s.distinct(func(c Company) string { return c.Country }) }

func (s *Set) distinct(key func(Company) string) []string {
	seen := make(map[string]struct{})
	for _, c := range s.companies {
		k := strings.TrimSpace(key(c))
		if k == "" {
			continue
		}
		seen[k] = struct{}{}
	}
	values := make([]string, 0, len(seen))
	for k := range seen {
		values = append(values, k)
	}
	slices.Sort(values)
	return values
}

// FoundedRange returns the oldest and most recent founding years in the set,
// ignoring records with an unknown founding year. ok is false on an empty range.
func (s *Set) FoundedRange() (min, max int, ok bool) {
	for _, c := range s.companies {
		if c.Founded == 0 {
			continue
		}
		if !ok {
			min, max, ok = c.Founded, c.Founded, true
			continue
		}
		if c.Founded < min {
			min = c.Founded
		}
		if c.Founded > max {
			max = c.Founded
		}
	}
	return min, max, ok
}

// OldestJoined returns the earliest date a company in the set joined unicorn
// status, or the zero Date on an empty set.
func (s *Set) OldestJoined() Date {
	if len(s.companies) == 0 {
		return Date{}
	}
	return s.companies[0].Joined
}
