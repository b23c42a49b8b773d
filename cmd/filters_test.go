package cmd

import (
	"flag"
	"reflect"
	"testing"

	"github.com/etnz/unicorn"
)

func TestMultiFlag(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{"repeated flag", []string{"-v", "Fintech", "-v", "Edtech"}, []string{"Fintech", "Edtech"}},
		{"comma-separated", []string{"-v", "Fintech, Edtech"}, []string{"Fintech", "Edtech"}},
		{"mixed", []string{"-v", "Fintech,Edtech", "-v", "Other"}, []string{"Fintech", "Edtech", "Other"}},
		{"empty items dropped", []string{"-v", ",Fintech,,"}, []string{"Fintech"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m multiFlag
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.Var(&m, "v", "")
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual([]string(m), tt.expected) {
				t.Errorf("multiFlag = %v, want %v", m, tt.expected)
			}
		})
	}
}

func TestFilterFlags(t *testing.T) {
	var ff filterFlags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	ff.SetFlags(fs)
	args := []string{"-industry", "Fintech", "-country", "Brazil,Sweden", "-founded", "2005:2013"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got, err := ff.Filter()
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	want := unicorn.Filter{
		Industries: []string{"Fintech"},
		Countries:  []string{"Brazil", "Sweden"},
		Founded:    unicorn.YearRange{From: 2005, To: 2013},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter() = %+v, want %+v", got, want)
	}
}

func TestFilterFlags_BadFounded(t *testing.T) {
	var ff filterFlags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	ff.SetFlags(fs)
	if err := fs.Parse([]string{"-founded", "twenty"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := ff.Filter(); err == nil {
		t.Error("Filter() should reject an invalid year range")
	}
}
