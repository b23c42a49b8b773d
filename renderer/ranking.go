package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/unicorn"
	md "github.com/nao1215/markdown"
)

// CountriesMarkdown renders the top-countries breakdown as a bar-chart
// flavored table.
func CountriesMarkdown(d *unicorn.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Top Countries by Number of Unicorns")
	if len(d.Countries) == 0 {
		doc.PlainText(emptySelection(d))
		return doc.String()
	}
	doc.Table(rankingTable("Country", d.Countries))
	return doc.String()
}

// IndustriesMarkdown renders the industry distribution.
func IndustriesMarkdown(d *unicorn.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Industry Distribution")
	if len(d.Industries) == 0 {
		doc.PlainText(emptySelection(d))
		return doc.String()
	}
	doc.Table(rankingTable("Industry", d.Industries))
	return doc.String()
}

func rankingTable(label string, rows []unicorn.Ranking) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{label, "Unicorns", ""},
		Rows:   [][]string{},
	}

	max := 0
	for _, row := range rows {
		if row.Count > max {
			max = row.Count
		}
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			row.Label,
			groupInt(row.Count),
			bar(row.Count, max),
		})
	}
	return table
}

// rankingOneLine is the compact "label (count)" form used in the dashboard
// caption.
func rankingOneLine(rows []unicorn.Ranking, n int) string {
	var b bytes.Buffer
	for i, row := range rows {
		if n > 0 && i >= n {
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s (%d)", row.Label, row.Count)
	}
	return b.String()
}
