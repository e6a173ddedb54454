package renderer

import (
	"fmt"
	"strings"

	"github.com/casefin/organizer"
)

// ReportMarkdown renders the complete case report: profile, financial
// snapshot, item inventories, scenario comparison, insights and the case
// section. today anchors the deadline lines so the output is reproducible.
func ReportMarkdown(doc organizer.Document, today organizer.Date) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Case Financial Report\n\n")
	fmt.Fprintf(&b, "Generated on %s\n\n", today)

	if doc.Profile.FullName != "" || doc.Profile.Jurisdiction != "" {
		fmt.Fprint(&b, "## Profile\n\n")
		if doc.Profile.FullName != "" {
			fmt.Fprintf(&b, "- Name: %s\n", doc.Profile.FullName)
		}
		if doc.Profile.Email != "" {
			fmt.Fprintf(&b, "- Email: %s\n", doc.Profile.Email)
		}
		if doc.Profile.Jurisdiction != "" {
			fmt.Fprintf(&b, "- Jurisdiction: %s\n", doc.Profile.Jurisdiction)
		}
		fmt.Fprintln(&b)
	}

	s := organizer.BaseSummary(doc)
	fmt.Fprint(&b, "## Monthly Snapshot\n\n")
	fmt.Fprintln(&b, "| Metric | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Income | %s |\n", s.Income)
	fmt.Fprintf(&b, "| Expenses | %s |\n", s.Expenses)
	fmt.Fprintf(&b, "| Cash flow | %s |\n", s.CashFlow.SignedString())
	fmt.Fprintf(&b, "| Net worth | %s |\n\n", s.NetWorth)

	if len(doc.Assets) > 0 {
		fmt.Fprint(&b, "## Assets\n\n")
		fmt.Fprintln(&b, "| Asset | Value |")
		fmt.Fprintln(&b, "|:---|---:|")
		var total organizer.Money
		for _, a := range doc.Assets {
			fmt.Fprintf(&b, "| %s | %s |\n", a.Name, a.Value)
			total = total.Add(a.Value)
		}
		fmt.Fprintf(&b, "| **Total** | **%s** |\n\n", total)
	}

	if len(doc.Liabilities) > 0 {
		fmt.Fprint(&b, "## Liabilities\n\n")
		fmt.Fprintln(&b, "| Liability | Balance | APR | Payment |")
		fmt.Fprintln(&b, "|:---|---:|---:|---:|")
		var total organizer.Money
		for _, l := range doc.Liabilities {
			fmt.Fprintf(&b, "| %s | %s | %s%% | %s |\n", l.Name, l.Balance, l.Rate, l.Payment)
			total = total.Add(l.Balance)
		}
		fmt.Fprintf(&b, "| **Total** | **%s** | | |\n\n", total)
	}

	writeFlows(&b, "Income", doc.Income)
	writeFlows(&b, "Expenses", doc.Expenses)

	fmt.Fprint(&b, trimHeading(ScenariosMarkdown(doc), 2))
	fmt.Fprintln(&b)

	tips := organizer.EvaluateInsights(doc, s.Income, s.Expenses, s.CashFlow)
	fmt.Fprint(&b, trimHeading(InsightsMarkdown(tips), 2))
	fmt.Fprintln(&b)

	fmt.Fprint(&b, trimHeading(DivorceMarkdown(doc, today), 2))
	fmt.Fprintln(&b)

	if doc.Notes != "" {
		fmt.Fprint(&b, "## Notes\n\n")
		fmt.Fprintf(&b, "%s\n\n", doc.Notes)
	}

	fmt.Fprint(&b, "---\n\n")
	fmt.Fprint(&b, "This report is for personal organization only. It is not legal or financial advice.\n")

	return b.String()
}

func writeFlows(b *strings.Builder, title string, items []organizer.FlowItem) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	fmt.Fprintln(b, "| Item | Amount | Frequency | Monthly |")
	fmt.Fprintln(b, "|:---|---:|:---|---:|")
	var total organizer.Money
	for _, item := range items {
		monthly := item.Frequency.ToMonthly(item.Amount)
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n", item.Name, item.Amount, item.Frequency, monthly)
		total = total.Add(monthly)
	}
	fmt.Fprintf(b, "| **Total** | | | **%s** |\n\n", total)
}

// trimHeading demotes the section's top-level heading so standalone renders
// nest under the report.
func trimHeading(section string, level int) string {
	prefix := strings.Repeat("#", level)
	if strings.HasPrefix(section, "# ") {
		return prefix + section[1:]
	}
	return section
}
