package maven

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleCSV = `Company,Valuation ($B),Date Joined,Industry,City,Country,Continent,Year Founded,Funding,Select Investors
Bytedance,$180B,4/7/2017,Artificial intelligence,Beijing,China,Asia,2012,$8B,Sequoia Capital China
Stripe,$95B,1/23/2014,Fintech,San Francisco,United States,North America,2010,$2B,Khosla Ventures
`

const sampleJSON = `[{"company":"Acme","valuation":"$2B","joined":"2020-01-02","industry":"Fintech","country":"France","founded":2015}]`

func TestFetch_CSV(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	set, err := fetch(srv.Client(), srv.URL+"/unicorn_companies_clean.csv")
	if err != nil {
		t.Fatalf("fetch() error = %v", err)
	}
	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2", set.Len())
	}
	if _, ok := set.Get("Bytedance"); !ok {
		t.Error("Get(Bytedance) not found")
	}
}

func TestFetch_JSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	set, err := fetch(srv.Client(), srv.URL+"/export.json?raw=true")
	if err != nil {
		t.Fatalf("fetch() error = %v", err)
	}
	if set.Len() != 1 {
		t.Errorf("Len() = %d, want 1", set.Len())
	}
}

func TestFetch_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	if _, err := fetch(srv.Client(), srv.URL+"/gone.csv"); err == nil {
		t.Error("fetch() should fail on a 404")
	}
}

func TestStrippedPath(t *testing.T) {
	tests := []struct{ url, want string }{
		{"https://x/export.csv", "https://x/export.csv"},
		{"https://x/export.csv?raw=true", "https://x/export.csv"},
		{"https://x/export.json#frag", "https://x/export.json"},
	}
	for _, tt := range tests {
		if got := strippedPath(tt.url); got != tt.want {
			t.Errorf("strippedPath(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestDailyCachingClient(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	client := newDailyCachingClient()
	url := srv.URL + "/cache_test.csv"
	for i := 0; i < 3; i++ {
		set, err := fetch(client, url)
		if err != nil {
			t.Fatalf("fetch() #%d error = %v", i+1, err)
		}
		if set.Len() != 2 {
			t.Errorf("fetch() #%d Len() = %d, want 2", i+1, set.Len())
		}
	}
	if hits != 1 {
		t.Errorf("origin server hit %d times, want 1 (cache miss only once)", hits)
	}
}
