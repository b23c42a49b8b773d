package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/unicorn"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the KPI metrics of a dashboard view.
func SummaryMarkdown(d *unicorn.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Unicorn Companies — Summary (%s)", d.Snapshot))
	if scope := d.Filter.String(); scope != "" {
		doc.PlainText(fmt.Sprintf("Filters: %s — %s of %s companies selected.",
			scope, groupInt(d.Stats.Count), groupInt(d.Total)))
	}

	doc.Table(summaryTable(d.Stats))
	return doc.String()
}

// summaryTable builds the four KPI rows shared by summary and dashboard.
func summaryTable(s unicorn.Stats) md.TableSet {
	avgFounded := "-"
	if year, ok := s.AvgFoundedYear(); ok {
		avgFounded = fmt.Sprintf("%d", year)
	}
	totalValuation, avgValuation := "-", "-"
	if s.Count > 0 {
		totalValuation = group(s.TotalValuation.Billions(1))
		avgValuation = group(s.AvgValuation.Billions(2))
	}

	return md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Unicorns", groupInt(s.Count)},
			{"Total Valuation ($B)", totalValuation},
			{"Avg. Valuation per Unicorn ($B)", avgValuation},
			{"Avg. Year Founded", avgFounded},
		},
	}
}
