package unicorn

import (
	"slices"
	"sort"
)

// YearlyValuation is one row of the valuations-over-time breakdown: the sum
// of valuations of the companies that joined unicorn status that year.
type YearlyValuation struct {
	Year  int
	Count int
	Total Money
}

// ValuationByYear groups the set by the year each company joined unicorn
// status and sums valuations per year. Rows are in ascending year order.
func ValuationByYear(s *Set) []YearlyValuation {
	totals := make(map[int]YearlyValuation)
	for c := range s.Companies() {
		y := c.Joined.Year()
		row, ok := totals[y]
		if !ok {
			row = YearlyValuation{Year: y, Total: M(0, "USD")}
		}
		row.Count++
		row.Total = row.Total.Add(c.Valuation)
		totals[y] = row
	}

	rows := make([]YearlyValuation, 0, len(totals))
	for _, row := range totals {
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b YearlyValuation) int { return a.Year - b.Year })
	return rows
}

// Ranking is one row of a categorical breakdown (country or industry).
type Ranking struct {
	Label string
	Count int
}

// TopCountries ranks countries by number of unicorns, descending, and keeps
// the first n rows (all rows when n <= 0). Ties are broken alphabetically so
// the ranking is stable.
func TopCountries(s *Set, n int) []Ranking {
	rows := countBy(s, func(c Company) string { return c.Country })
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// IndustryBreakdown ranks all industries by number of unicorns, descending.
func IndustryBreakdown(s *Set) []Ranking {
	return countBy(s, func(c Company) string { return c.Industry })
}

func countBy(s *Set, key func(Company) string) []Ranking {
	counts := make(map[string]int)
	for c := range s.Companies() {
		k := key(c)
		if k == "" {
			k = "Unknown"
		}
		counts[k]++
	}

	rows := make([]Ranking, 0, len(counts))
	for label, count := range counts {
		rows = append(rows, Ranking{Label: label, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Label < rows[j].Label
	})
	return rows
}
