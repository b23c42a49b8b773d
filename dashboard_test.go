package unicorn

import "testing"

func TestNewDashboard(t *testing.T) {
	set := sampleSet(t)
	f := Filter{Industries: []string{"Fintech"}}
	d := NewDashboard(set, f, 0)

	if d.Total != set.Len() {
		t.Errorf("Total = %d, want the unfiltered size %d", d.Total, set.Len())
	}
	if d.Stats.Count != 4 {
		t.Errorf("Stats.Count = %d, want 4 Fintech companies", d.Stats.Count)
	}
	if len(d.Countries) != 4 {
		t.Errorf("Countries has %d rows, want 4", len(d.Countries))
	}
	if len(d.Industries) != 1 || d.Industries[0].Label != "Fintech" {
		t.Errorf("Industries = %v, want a single Fintech row", d.Industries)
	}
	// Timeline covers 2011, 2014 and 2018.
	if len(d.Timeline) != 3 {
		t.Errorf("Timeline has %d rows, want 3", len(d.Timeline))
	}
}

func TestNewDashboard_TopN(t *testing.T) {
	set := sampleSet(t)
	d := NewDashboard(set, Filter{}, 2)
	if len(d.Countries) != 2 {
		t.Errorf("Countries has %d rows, want the top 2", len(d.Countries))
	}

	// topN <= 0 falls back to the default cut, larger than the sample.
	d = NewDashboard(set, Filter{}, -1)
	if len(d.Countries) != 6 {
		t.Errorf("Countries has %d rows, want all 6", len(d.Countries))
	}
}
