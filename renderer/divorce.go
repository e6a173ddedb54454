package renderer

import (
	"bytes"
	"fmt"

	"github.com/casefin/organizer"
	md "github.com/nao1215/markdown"
)

// DivorceMarkdown renders the case sub-document: overview, deadlines,
// disclosure progress and contacts. today anchors the "next deadline" line.
func DivorceMarkdown(doc organizer.Document, today organizer.Date) string {
	d := doc.Divorce

	var buf bytes.Buffer
	out := md.NewMarkdown(&buf)

	out.H1("Case Organizer")
	out.PlainText(fmt.Sprintf("Case type: %s. Filing state: %s. Children: %d.",
		d.CaseType, d.FilingState, d.Children))

	if next, ok := organizer.NextDeadline(doc, today); ok {
		out.PlainText(fmt.Sprintf("Next deadline: %s on %s.", next.Label, next.Date))
	}

	if len(d.Deadlines) > 0 {
		out.H2("Deadlines")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
			Header:    []string{"Date", "Deadline", "Done"},
		}
		for _, dl := range d.Deadlines {
			mark := " "
			if dl.Done {
				mark = "x"
			}
			table.Rows = append(table.Rows, []string{dl.Date.String(), dl.Label, mark})
		}
		out.Table(table)
	}

	if len(d.Disclosures) > 0 {
		out.H2(fmt.Sprintf("Disclosures (%d%% provided)", organizer.DisclosureProgress(doc)))
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
			Header:    []string{"Provided", "Item"},
		}
		for _, disc := range d.Disclosures {
			mark := " "
			if disc.Provided {
				mark = "x"
			}
			table.Rows = append(table.Rows, []string{mark, disc.Label})
		}
		out.Table(table)
	}

	if len(d.Contacts) > 0 {
		out.H2("Contacts")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
			Header:    []string{"Name", "Role", "Email", "Phone"},
		}
		for _, c := range d.Contacts {
			table.Rows = append(table.Rows, []string{c.Name, c.Role, c.Email, c.Phone})
		}
		out.Table(table)
	}

	out.H2("Support")
	out.PlainText(supportLine(d.Support))

	return out.String()
}

func supportLine(s organizer.Support) string {
	requested := func(m *organizer.Money) string {
		if m == nil {
			return "not entered"
		}
		return m.String()
	}
	start := "not set"
	if !s.StartDate.IsZero() {
		start = s.StartDate.String()
	}
	return fmt.Sprintf("Requested alimony: %s/month. Requested child support: %s/month. Start date: %s.",
		requested(s.RequestedAlimonyMonthly), requested(s.RequestedChildSupportMonthly), start)
}
