package unicorn

import (
	"errors"
	"fmt"
	"strings"
)

// Company is a single unicorn company record: a privately held startup valued
// at or above one billion dollars on the day it joined the snapshot.
//
// Records are immutable facts about the snapshot date, there is no lifecycle
// beyond "loaded".
type Company struct {
	Name      string
	Valuation Money // latest known valuation, in USD
	Industry  string
	City      string
	Country   string
	Continent string
	Founded   int  // year the company was founded
	Joined    Date // date the company reached unicorn status
	Funding   Money
	Investors []string
}

// NewCompany returns a minimal valid Company, mostly useful in tests.
func NewCompany(name string, valuation float64, industry, country string, founded int, joined Date) Company {
	return Company{
		Name:      name,
		Valuation: M(valuation, "USD"),
		Industry:  industry,
		Country:   country,
		Founded:   founded,
		Joined:    joined,
	}
}

// Validate checks the basic type validity of a record before it enters a Set.
// It returns all failures at once.
func (c Company) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, errors.New("company name is required"))
	}
	if !c.Valuation.IsPositive() {
		errs = append(errs, fmt.Errorf("company %q: valuation must be positive", c.Name))
	}
	if c.Joined.IsZero() {
		errs = append(errs, fmt.Errorf("company %q: date joined is required", c.Name))
	}
	if c.Founded != 0 && !c.Joined.IsZero() && c.Founded > c.Joined.Year() {
		errs = append(errs, fmt.Errorf("company %q: founded %d is after joined %s", c.Name, c.Founded, c.Joined))
	}
	return errors.Join(errs...)
}
