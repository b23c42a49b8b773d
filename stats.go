package unicorn

import "math"

// Stats provides the at-a-glance metrics of the dashboard for a (possibly
// filtered) set of companies.
type Stats struct {
	Count          int   // number of distinct companies
	TotalValuation Money // sum of per-company valuations
	AvgValuation   Money // TotalValuation / Count, zero when Count is 0
	AvgFounded     float64
}

// NewStats computes the dashboard metrics over the given set.
//
// The set is deduplicated by construction, so the total equals the sum of
// rows, the average equals the total divided by the count, and both are zero
// on an empty set.
func NewStats(s *Set) Stats {
	stats := Stats{
		Count:          s.Len(),
		TotalValuation: M(0, "USD"),
	}

	var foundedSum, foundedCount int
	for c := range s.Companies() {
		stats.TotalValuation = stats.TotalValuation.Add(c.Valuation)
		if c.Founded != 0 {
			foundedSum += c.Founded
			foundedCount++
		}
	}

	stats.AvgValuation = stats.TotalValuation.DivInt(stats.Count)
	if foundedCount > 0 {
		stats.AvgFounded = float64(foundedSum) / float64(foundedCount)
	}
	return stats
}

// AvgFoundedYear returns the average founding year rounded to the nearest
// year, and false when the set carries no founding year at all.
func (s Stats) AvgFoundedYear() (int, bool) {
	if s.AvgFounded == 0 {
		return 0, false
	}
	return int(math.Round(s.AvgFounded)), true
}
