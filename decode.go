package unicorn

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// companyRecord is a specialized struct for decoding one JSONL line.
type companyRecord struct {
	Company   string   `json:"company"`
	Valuation Money    `json:"valuation"`
	Joined    Date     `json:"joined"`
	Industry  string   `json:"industry"`
	City      string   `json:"city"`
	Country   string   `json:"country"`
	Continent string   `json:"continent"`
	Founded   int      `json:"founded"`
	Funding   Money    `json:"funding"`
	Investors []string `json:"investors"`
}

func (r companyRecord) toCompany() Company {
	return Company{
		Name:      r.Company,
		Valuation: r.Valuation,
		Joined:    r.Joined,
		Industry:  r.Industry,
		City:      r.City,
		Country:   r.Country,
		Continent: r.Continent,
		Founded:   r.Founded,
		Funding:   r.Funding,
		Investors: r.Investors,
	}
}

// DecodeSet decodes companies from a stream of JSONL data, one record per
// line, and returns a sorted, deduplicated Set.
func DecodeSet(r io.Reader) (*Set, error) {
	set := NewSet()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var record companyRecord
		if err := json.Unmarshal(lineBytes, &record); err != nil {
			return nil, fmt.Errorf("could not decode record at line %d: %w", line, err)
		}
		if err := set.Append(record.toCompany()); err != nil {
			return nil, fmt.Errorf("invalid record at line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

// csvHeader maps the normalized column names of the original dataset export
// to their index in the header row.
type csvHeader map[string]int

func (h csvHeader) get(row []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// DecodeCSV decodes a snapshot from the original CSV export schema
// (Company, Valuation, Date Joined, Industry, City, Country, Continent,
// Year Founded, Funding, Select Investors). Header matching is permissive:
// case-insensitive, ignoring the "($B)" style suffixes.
//
// Rows without a valuation are dropped with a warning, mirroring the
// original snapshot-cleaning behavior.
func DecodeCSV(r io.Reader) (*Set, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // raw exports are not always rectangular

	headerRow, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read CSV header: %w", err)
	}
	header := make(csvHeader, len(headerRow))
	for i, name := range headerRow {
		header[normalizeColumn(name)] = i
	}
	for _, required := range []string{"company", "valuation", "date joined"} {
		if _, ok := header[required]; !ok {
			return nil, fmt.Errorf("CSV header is missing the %q column", required)
		}
	}

	set := NewSet()
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("could not read CSV line %d: %w", line, err)
		}

		c, err := decodeCSVRow(header, row)
		if err != nil {
			log.Printf("skipping line %d: %v", line, err)
			continue
		}
		if err := set.Append(c); err != nil {
			return nil, fmt.Errorf("invalid record at line %d: %w", line, err)
		}
	}
	return set, nil
}

func decodeCSVRow(header csvHeader, row []string) (Company, error) {
	valuation, err := ParseUSD(header.get(row, "valuation"))
	if err != nil {
		return Company{}, err
	}
	if !valuation.IsPositive() {
		return Company{}, fmt.Errorf("company %q has no valuation", header.get(row, "company"))
	}

	joined, err := ParseDate(header.get(row, "date joined"))
	if err != nil {
		return Company{}, err
	}

	c := Company{
		Name:      header.get(row, "company"),
		Valuation: valuation,
		Joined:    joined,
		Industry:  header.get(row, "industry"),
		City:      header.get(row, "city"),
		Country:   header.get(row, "country"),
		Continent: header.get(row, "continent"),
	}

	if founded := header.get(row, "year founded"); founded != "" {
		if y, err := strconv.Atoi(founded); err == nil {
			c.Founded = y
		}
	}
	if funding := header.get(row, "funding"); funding != "" {
		// funding is informative only, unparseable values are kept zero
		if m, err := ParseUSD(funding); err == nil {
			c.Funding = m
		}
	}
	if investors := header.get(row, "select investors"); investors != "" {
		for _, inv := range strings.Split(investors, ",") {
			if inv = strings.TrimSpace(inv); inv != "" {
				c.Investors = append(c.Investors, inv)
			}
		}
	}
	return c, nil
}

func normalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	// "Valuation ($B)" and friends
	if i := strings.Index(name, "("); i > 0 {
		name = strings.TrimSpace(name[:i])
	}
	return name
}

// DefaultRecordsPath is the jsonpath expression locating company records in a
// JSON dataset export: a top-level array of record objects.
const DefaultRecordsPath = "$[*]"

// DecodeJSON decodes a snapshot from a JSON export. The records are located
// with the given jsonpath expression (DefaultRecordsPath when empty); each
// record object carries the same fields as the CSV schema.
func DecodeJSON(r io.Reader, path string) (*Set, error) {
	if path == "" {
		path = DefaultRecordsPath
	}

	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("could not parse JSON export: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("could not locate records at %q: %w", path, err)
	}
	records, ok := jval.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a single
		// answer: accept a single record object too.
		records = []any{jval}
	}

	set := NewSet()
	for i, rec := range records {
		fields, ok := rec.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d at %q is not an object", i, path)
		}
		c, err := decodeJSONRecord(fields)
		if err != nil {
			log.Printf("skipping record %d: %v", i, err)
			continue
		}
		if err := set.Append(c); err != nil {
			return nil, fmt.Errorf("invalid record %d: %w", i, err)
		}
	}
	return set, nil
}

func decodeJSONRecord(fields map[string]any) (Company, error) {
	str := func(keys ...string) string {
		for _, k := range keys {
			if v, ok := fields[k]; ok {
				if s, ok := v.(string); ok {
					return strings.TrimSpace(s)
				}
			}
		}
		return ""
	}

	valuation, err := ParseUSD(str("valuation", "Valuation"))
	if err != nil {
		return Company{}, err
	}
	if !valuation.IsPositive() {
		return Company{}, fmt.Errorf("company %q has no valuation", str("company", "Company"))
	}
	joined, err := ParseDate(str("joined", "date joined", "Date Joined"))
	if err != nil {
		return Company{}, err
	}

	c := Company{
		Name:      str("company", "Company"),
		Valuation: valuation,
		Joined:    joined,
		Industry:  str("industry", "Industry"),
		City:      str("city", "City"),
		Country:   str("country", "Country"),
		Continent: str("continent", "Continent"),
	}
	switch t := fields["founded"].(type) {
	case float64:
		c.Founded = int(t)
	case string:
		if y, err := strconv.Atoi(t); err == nil {
			c.Founded = y
		}
	}
	if c.Founded == 0 {
		if y, err := strconv.Atoi(str("year founded", "Year Founded")); err == nil {
			c.Founded = y
		}
	}
	return c, nil
}
