package unicorn

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2017-04-07", NewDate(2017, time.April, 7), false},
		{"2017-4-7", NewDate(2017, time.April, 7), false},
		{"4/7/2017", NewDate(2017, time.April, 7), false},
		{"12/1/2012", NewDate(2012, time.December, 1), false},
		{"not-a-date", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseDate(%q) error = %v, want err %v", tt.input, err, tt.err)
			}
			if err == nil && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2012, time.December, 1)
	b := NewDate(2017, time.April, 7)
	if !a.Before(b) {
		t.Errorf("%v should be before %v", a, b)
	}
	if !b.After(a) {
		t.Errorf("%v should be after %v", b, a)
	}
	if a.Before(a) || a.After(a) {
		t.Error("a date is neither before nor after itself")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2018, time.January, 8)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `"2018-01-08"` {
		t.Errorf("Marshal() = %s, want %q", b, "2018-01-08")
	}
	var got Date
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != d {
		t.Errorf("round trip = %v, want %v", got, d)
	}
}

func TestDateIsZero(t *testing.T) {
	if !(Date{}).IsZero() {
		t.Error("zero Date should be zero")
	}
	if NewDate(2022, time.March, 1).IsZero() {
		t.Error("a real date should not be zero")
	}
}
