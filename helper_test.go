package unicorn

import "testing"

// sampleCompanies is a small but representative slice of the dataset: several
// industries, several countries, one company without a founding year.
func sampleCompanies() []Company {
	return []Company{
		NewCompany("Bytedance", 180e9, "Artificial intelligence", "China", 2012, MustParseDate("2017-04-07")),
		NewCompany("SpaceX", 100.3e9, "Other", "United States", 2002, MustParseDate("2012-12-01")),
		NewCompany("Stripe", 95e9, "Fintech", "United States", 2010, MustParseDate("2014-01-23")),
		NewCompany("Klarna", 45.6e9, "Fintech", "Sweden", 2005, MustParseDate("2011-12-12")),
		NewCompany("Canva", 40e9, "Internet software & services", "Australia", 2012, MustParseDate("2018-01-08")),
		NewCompany("Revolut", 33e9, "Fintech", "United Kingdom", 2015, MustParseDate("2018-04-26")),
		NewCompany("Nubank", 30e9, "Fintech", "Brazil", 2013, MustParseDate("2018-03-01")),
		NewCompany("Mystery", 1e9, "Other", "United States", 0, MustParseDate("2021-06-15")),
	}
}

// sampleSet builds a set out of sampleCompanies.
func sampleSet(t *testing.T) *Set {
	t.Helper()
	s := NewSet()
	if err := s.Append(sampleCompanies()...); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	return s
}
