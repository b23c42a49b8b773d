package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/unicorn"
	md "github.com/nao1215/markdown"
)

// DashboardMarkdown renders the full dashboard document: KPI metrics
// followed by the three breakdowns.
func DashboardMarkdown(d *unicorn.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Global Unicorn Companies — Analytics (%s)", d.Snapshot))
	if scope := d.Filter.String(); scope != "" {
		doc.PlainText(fmt.Sprintf("Filters: %s — %s of %s companies selected.",
			scope, groupInt(d.Stats.Count), groupInt(d.Total)))
	}
	doc.Table(summaryTable(d.Stats))
	if len(d.Industries) > 0 {
		doc.PlainText("Top industries: " + rankingOneLine(d.Industries, 3) + ".")
	}

	var b strings.Builder
	b.WriteString(doc.String())
	b.WriteString("\n")
	b.WriteString(TimelineMarkdown(d))
	b.WriteString("\n")
	b.WriteString(CountriesMarkdown(d))
	b.WriteString("\n")
	b.WriteString(IndustriesMarkdown(d))
	b.WriteString("\n")
	b.WriteString("Data source: Maven Unicorn Challenge (March 2022).\n")
	return b.String()
}
