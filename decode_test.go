package unicorn

import (
	"bytes"
	"strings"
	"testing"
)

const sampleCSV = `Company,Valuation ($B),Date Joined,Industry,City,Country,Continent,Year Founded,Funding,Select Investors
Bytedance,$180B,4/7/2017,Artificial intelligence,Beijing,China,Asia,2012,$8B,"Sequoia Capital China, SIG Asia Investments"
Stripe,"$95,000,000,000",1/23/2014,Fintech,San Francisco,United States,North America,2010,$2B,"Khosla Ventures, LowercaseCapital"
Stealth,None,6/15/2021,Other,,United States,North America,,,
Klarna,$45.6B,12/12/2011,Fintech,Stockholm,Sweden,Europe,2005,Unknown,Sequoia Capital
`

func TestDecodeCSV(t *testing.T) {
	set, err := DecodeCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}

	// Stealth has no valuation, the row is dropped.
	if got := set.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if _, ok := set.Get("Stealth"); ok {
		t.Error("a row without valuation should be dropped")
	}

	bd, ok := set.Get("Bytedance")
	if !ok {
		t.Fatal("Get(Bytedance) not found")
	}
	if !bd.Valuation.Equal(M(180e9, "USD")) {
		t.Errorf("Bytedance valuation = %v, want $180B", bd.Valuation)
	}
	if bd.Joined != MustParseDate("2017-04-07") {
		t.Errorf("Bytedance joined = %v, want 2017-04-07", bd.Joined)
	}
	if bd.Founded != 2012 {
		t.Errorf("Bytedance founded = %d, want 2012", bd.Founded)
	}
	if len(bd.Investors) != 2 || bd.Investors[0] != "Sequoia Capital China" {
		t.Errorf("Bytedance investors = %v, want 2 trimmed names", bd.Investors)
	}

	klarna, _ := set.Get("Klarna")
	if !klarna.Funding.IsZero() {
		t.Errorf("Klarna funding = %v, unknown funding should stay zero", klarna.Funding)
	}
}

func TestDecodeCSV_PermissiveHeader(t *testing.T) {
	// lower case, no suffixes, extra column
	csv := "company,valuation,date joined,extra\nAcme,$2B,1/2/2020,x\n"
	set, err := DecodeCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("DecodeCSV() error = %v", err)
	}
	if set.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", set.Len())
	}
}

func TestDecodeCSV_MissingColumn(t *testing.T) {
	csv := "Company,Industry\nAcme,Fintech\n"
	if _, err := DecodeCSV(strings.NewReader(csv)); err == nil {
		t.Error("DecodeCSV() should fail without a valuation column")
	}
}

func TestEncodeDecodeSet(t *testing.T) {
	set := sampleSet(t)

	var buf bytes.Buffer
	if err := EncodeSet(&buf, set); err != nil {
		t.Fatalf("EncodeSet() error = %v", err)
	}

	got, err := DecodeSet(&buf)
	if err != nil {
		t.Fatalf("DecodeSet() error = %v", err)
	}
	if got.Len() != set.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), set.Len())
	}
	for c := range set.Companies() {
		d, ok := got.Get(c.Name)
		if !ok {
			t.Errorf("company %q lost in round trip", c.Name)
			continue
		}
		if !d.Valuation.Equal(c.Valuation) || d.Joined != c.Joined || d.Founded != c.Founded {
			t.Errorf("company %q = %+v, want %+v", c.Name, d, c)
		}
	}
}

func TestEncodeCompany_StableKeys(t *testing.T) {
	var buf bytes.Buffer
	c := NewCompany("Acme", 2e9, "Fintech", "France", 2015, MustParseDate("2020-01-02"))
	if err := EncodeCompany(&buf, c); err != nil {
		t.Fatalf("EncodeCompany() error = %v", err)
	}
	want := `{"company":"Acme","valuation":{"currency":"USD","amount":2000000000},"joined":"2020-01-02","industry":"Fintech","country":"France","founded":2015}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("EncodeCompany() = %s, want %s", got, want)
	}
}

func TestDecodeSet_BadLine(t *testing.T) {
	in := `{"company":"Acme","valuation":{"currency":"USD","amount":2000000000},"joined":"2020-01-02"}
not json
`
	_, err := DecodeSet(strings.NewReader(in))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("DecodeSet() error = %v, want a line 2 failure", err)
	}
}

func TestDecodeJSON(t *testing.T) {
	in := `[
	  {"company":"Acme","valuation":"$2B","joined":"2020-01-02","industry":"Fintech","country":"France","founded":2015},
	  {"Company":"Beta","Valuation":"$1.5B","Date Joined":"3/4/2021","Industry":"Edtech","Country":"Spain","Year Founded":"2018"},
	  {"company":"Ghost","valuation":"None","joined":"2021-01-01"}
	]`
	set, err := DecodeJSON(strings.NewReader(in), "")
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (Ghost has no valuation)", set.Len())
	}
	beta, ok := set.Get("Beta")
	if !ok {
		t.Fatal("Get(Beta) not found, capitalized keys should decode")
	}
	if beta.Founded != 2018 || beta.Joined != MustParseDate("2021-03-04") {
		t.Errorf("Beta = %+v, want founded 2018 joined 2021-03-04", beta)
	}
}

func TestDecodeJSON_Path(t *testing.T) {
	in := `{"data":{"records":[{"company":"Acme","valuation":"$2B","joined":"2020-01-02"}]}}`
	set, err := DecodeJSON(strings.NewReader(in), "$.data.records[*]")
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	if set.Len() != 1 {
		t.Errorf("Len() = %d, want 1", set.Len())
	}
}
