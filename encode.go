package unicorn

import (
	"fmt"
	"io"
)

// This file handles encoding a Set into its canonical at-rest format:
// one company per line (JSONL), stable key order, chronological line order.

// EncodeCompany writes a single company as one JSON line.
func EncodeCompany(w io.Writer, c Company) error {
	var jw jsonObjectWriter
	jw.Append("company", c.Name)
	jw.Append("valuation", c.Valuation)
	jw.Append("joined", c.Joined)
	jw.Optional("industry", c.Industry)
	jw.Optional("city", c.City)
	jw.Optional("country", c.Country)
	jw.Optional("continent", c.Continent)
	jw.Optional("founded", c.Founded)
	if c.Funding.IsPositive() {
		jw.Append("funding", c.Funding)
	}
	jw.Optional("investors", c.Investors)

	b, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode company %q: %w", c.Name, err)
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// EncodeSet writes all companies of the set in canonical JSONL form.
func EncodeSet(w io.Writer, s *Set) error {
	for c := range s.Companies() {
		if err := EncodeCompany(w, c); err != nil {
			return err
		}
	}
	return nil
}
