package renderer

import (
	"bytes"
	"fmt"

	"github.com/casefin/organizer"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the monthly snapshot of the base scenario.
func SummaryMarkdown(doc organizer.Document) string {
	s := organizer.BaseSummary(doc)

	var buf bytes.Buffer
	out := md.NewMarkdown(&buf)

	title := "Financial Summary"
	if doc.Profile.FullName != "" {
		title = fmt.Sprintf("Financial Summary for %s", doc.Profile.FullName)
	}
	out.H1(title)

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Monthly"},
		Rows: [][]string{
			{"Income", s.Income.String()},
			{"Expenses", s.Expenses.String()},
			{"Cash flow", s.CashFlow.SignedString()},
			{"Net worth", s.NetWorth.String()},
		},
	}
	out.Table(table)

	done := 0
	for _, item := range doc.Checklist {
		if item.Done {
			done++
		}
	}
	out.PlainText(fmt.Sprintf("Document checklist: %d of %d gathered.", done, len(doc.Checklist)))

	return out.String()
}

// ChecklistMarkdown renders the document-gathering checklist grouped in its
// stored order.
func ChecklistMarkdown(doc organizer.Document) string {
	var buf bytes.Buffer
	out := md.NewMarkdown(&buf)

	out.H1("Document Checklist")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Done", "Item", "Category"},
	}
	for _, item := range doc.Checklist {
		mark := " "
		if item.Done {
			mark = "x"
		}
		table.Rows = append(table.Rows, []string{mark, item.Label, item.Category})
	}
	out.Table(table)

	return out.String()
}
