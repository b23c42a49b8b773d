package unicorn

import "testing"

func TestParseYearRange(t *testing.T) {
	tests := []struct {
		input    string
		expected YearRange
		err      bool
	}{
		{"2000:2015", YearRange{2000, 2015}, false},
		{"2010:", YearRange{2010, 0}, false},
		{":1999", YearRange{0, 1999}, false},
		{"2012", YearRange{2012, 2012}, false},
		{"", YearRange{}, false},
		{":", YearRange{}, false},
		{"2015:2000", YearRange{2000, 2015}, false}, // inverted bounds are swapped
		{"abc:2000", YearRange{}, true},
		{"2000:xyz", YearRange{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseYearRange(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseYearRange(%q) error = %v, want err %v", tt.input, err, tt.err)
			}
			if err == nil && got != tt.expected {
				t.Errorf("ParseYearRange(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestYearRange_Contains(t *testing.T) {
	r := YearRange{2000, 2015}
	for _, y := range []int{2000, 2010, 2015} {
		if !r.Contains(y) {
			t.Errorf("Contains(%d) = false, want true", y)
		}
	}
	for _, y := range []int{1999, 2016} {
		if r.Contains(y) {
			t.Errorf("Contains(%d) = true, want false", y)
		}
	}
	open := YearRange{From: 2010}
	if !open.Contains(2030) || open.Contains(2009) {
		t.Error("open range 2010: should contain 2030 and exclude 2009")
	}
}

func TestFilter_Match(t *testing.T) {
	stripe := NewCompany("Stripe", 95e9, "Fintech", "United States", 2010, MustParseDate("2014-01-23"))

	tests := []struct {
		name     string
		filter   Filter
		expected bool
	}{
		{"zero filter matches all", Filter{}, true},
		{"industry match", Filter{Industries: []string{"Fintech"}}, true},
		{"industry match is case-insensitive", Filter{Industries: []string{"fintech"}}, true},
		{"industry mismatch", Filter{Industries: []string{"Edtech"}}, false},
		{"one of several industries", Filter{Industries: []string{"Edtech", "Fintech"}}, true},
		{"country match", Filter{Countries: []string{"United States"}}, true},
		{"country mismatch", Filter{Countries: []string{"Sweden"}}, false},
		{"founded in range", Filter{Founded: YearRange{2005, 2015}}, true},
		{"founded out of range", Filter{Founded: YearRange{2011, 0}}, false},
		{"all predicates must hold", Filter{Industries: []string{"Fintech"}, Countries: []string{"Sweden"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(stripe); got != tt.expected {
				t.Errorf("Match() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSet_Select(t *testing.T) {
	s := sampleSet(t)

	t.Run("zero filter selects everything", func(t *testing.T) {
		if got := s.Select(Filter{}); got.Len() != s.Len() {
			t.Errorf("Select(zero).Len() = %d, want %d", got.Len(), s.Len())
		}
	})

	t.Run("selection is a subset in source order", func(t *testing.T) {
		f := Filter{Industries: []string{"Fintech"}}
		sub := s.Select(f)
		if sub.Len() == 0 || sub.Len() >= s.Len() {
			t.Fatalf("Select().Len() = %d, want a strict non-empty subset of %d", sub.Len(), s.Len())
		}
		var last Date
		for c := range sub.Companies() {
			if !f.Match(c) {
				t.Errorf("company %q does not match the filter", c.Name)
			}
			if c.Joined.Before(last) {
				t.Errorf("company %q is out of order", c.Name)
			}
			last = c.Joined
			if _, ok := s.Get(c.Name); !ok {
				t.Errorf("company %q is not in the source set", c.Name)
			}
		}
	})

	t.Run("nothing matches", func(t *testing.T) {
		sub := s.Select(Filter{Countries: []string{"Atlantis"}})
		if sub.Len() != 0 {
			t.Errorf("Select().Len() = %d, want 0", sub.Len())
		}
	})

	t.Run("combined filters", func(t *testing.T) {
		sub := s.Select(Filter{
			Industries: []string{"Fintech"},
			Countries:  []string{"Brazil", "Sweden"},
			Founded:    YearRange{2005, 2013},
		})
		if sub.Len() != 2 {
			t.Fatalf("Select().Len() = %d, want 2 (Klarna and Nubank)", sub.Len())
		}
		for _, name := range []string{"Klarna", "Nubank"} {
			if _, ok := sub.Get(name); !ok {
				t.Errorf("selection should contain %q", name)
			}
		}
	})
}
