package renderer

import (
	"bytes"

	"github.com/casefin/organizer"
	md "github.com/nao1215/markdown"
)

// ScenariosMarkdown renders the side-by-side comparison of every scenario,
// base first.
func ScenariosMarkdown(doc organizer.Document) string {
	var buf bytes.Buffer
	out := md.NewMarkdown(&buf)

	out.H1("Scenario Comparison")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Scenario", "Income", "Expenses", "Cash flow", "Net worth"},
	}
	for _, key := range organizer.ScenarioKeys(doc) {
		s := organizer.ComputeScenarioSummary(doc, key)
		name := doc.Scenarios[key].Name
		if name == "" {
			name = key
		}
		table.Rows = append(table.Rows, []string{
			name,
			s.Income.String(),
			s.Expenses.String(),
			s.CashFlow.SignedString(),
			s.NetWorth.String(),
		})
	}
	out.Table(table)

	return out.String()
}

// InsightsMarkdown renders the advisory tips as a bullet list. An empty tip
// list renders a short all-clear line instead.
func InsightsMarkdown(tips []organizer.Tip) string {
	var buf bytes.Buffer
	out := md.NewMarkdown(&buf)

	out.H1("Insights")
	if len(tips) == 0 {
		out.PlainText("No advisories. Finances look healthy on the current numbers.")
		return out.String()
	}
	lines := make([]string, 0, len(tips))
	for _, tip := range tips {
		line := tip.Text
		if tip.Action != organizer.NoAction {
			line += " (suggested action: " + tip.Action.String() + ")"
		}
		lines = append(lines, line)
	}
	out.BulletList(lines...)

	return out.String()
}
