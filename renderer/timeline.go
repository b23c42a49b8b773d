package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/unicorn"
	md "github.com/nao1215/markdown"
)

// TimelineMarkdown renders the valuations-over-time breakdown: per year a
// company joined unicorn status, how many joined and the sum of their
// valuations.
func TimelineMarkdown(d *unicorn.Dashboard) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Valuations Over Time")
	if len(d.Timeline) == 0 {
		doc.PlainText(emptySelection(d))
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Year Became Unicorn", "Unicorns", "Total Valuation ($B)"},
		Rows:   [][]string{},
	}
	for _, row := range d.Timeline {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", row.Year),
			groupInt(row.Count),
			group(row.Total.Billions(1)),
		})
	}
	doc.Table(table)
	return doc.String()
}

// emptySelection is the note printed instead of an empty table.
func emptySelection(d *unicorn.Dashboard) string {
	if scope := d.Filter.String(); scope != "" {
		return fmt.Sprintf("No companies match %s.", scope)
	}
	return "The snapshot is empty."
}
