package unicorn

// DefaultTopCountries is the number of rows kept in the country ranking.
const DefaultTopCountries = 15

// Dashboard bundles everything the analytics dashboard shows for one
// filtered view of the snapshot: the KPI metrics and the three breakdowns.
type Dashboard struct {
	Snapshot string // snapshot name the view was computed from
	Filter   Filter
	Total    int // size of the unfiltered snapshot

	Stats      Stats
	Timeline   []YearlyValuation
	Countries  []Ranking
	Industries []Ranking
}

// NewDashboard computes the dashboard view of the set restricted by the
// filter. topN limits the country ranking (DefaultTopCountries when <= 0).
func NewDashboard(set *Set, f Filter, topN int) *Dashboard {
	if topN <= 0 {
		topN = DefaultTopCountries
	}
	selection := set.Select(f)

	return &Dashboard{
		Snapshot:   set.Name(),
		Filter:     f,
		Total:      set.Len(),
		Stats:      NewStats(selection),
		Timeline:   ValuationByYear(selection),
		Countries:  TopCountries(selection, topN),
		Industries: IndustryBreakdown(selection),
	}
}
