package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/casefin/organizer"
	"github.com/google/subcommands"
)

type caseCmd struct {
	caseType string
	state    string
	filing   string
	children int
}

func (*caseCmd) Name() string     { return "case" }
func (*caseCmd) Synopsis() string { return "show or update the case basics" }
func (*caseCmd) Usage() string {
	return `forg case [-type <case type>] [-state <state>] [-filing <date>] [-children <n>]

  Without flags, shows the case basics. With flags, updates the given
  fields. Case types containing "contested" mark a contested case.

Usage Examples:
$ forg case -type contested-dissolution -state WA -children 2
$ forg case -filing 2024-01-15
`
}

func (c *caseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.caseType, "type", "", "Case type, e.g. dissolution or contested-dissolution")
	f.StringVar(&c.state, "state", "", "Filing state")
	f.StringVar(&c.filing, "filing", "", "Filing date (YYYY-MM-DD), stored through the deadlines command")
	f.IntVar(&c.children, "children", -1, "Number of children involved")
}

func (c *caseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	defer CloseStore(store)

	changed := c.caseType != "" || c.state != "" || c.children >= 0
	if changed {
		store.Set(func(doc organizer.Document) organizer.Document {
			if c.caseType != "" {
				doc.Divorce.CaseType = strings.ToLower(c.caseType)
			}
			if c.state != "" {
				doc.Divorce.FilingState = c.state
			}
			if c.children >= 0 {
				doc.Divorce.Children = c.children
			}
			return doc
		})
	}
	if c.filing != "" {
		fmt.Fprintln(os.Stderr, "Note: the filing date feeds deadline generation; run: forg deadlines -build -filing", c.filing)
	}

	d := store.Document().Divorce
	fmt.Printf("Case type: %s\nFiling state: %s\nChildren: %d\nContested: %v\n",
		d.CaseType, d.FilingState, d.Children, d.IsContested())
	return subcommands.ExitSuccess
}

type supportCmd struct {
	alimony string
	child   string
	start   string
}

func (*supportCmd) Name() string     { return "support" }
func (*supportCmd) Synopsis() string { return "record the requested support amounts" }
func (*supportCmd) Usage() string {
	return `forg support [-alimony <amount>] [-child <amount>] [-start <date>]

  Records the requested monthly alimony and child support and the support
  start date. Amounts stay "not entered" until set; an explicit 0 is a
  valid entry distinct from not entered.

Usage Examples:
$ forg support -alimony 800 -child 600 -start 2024-03-01
`
}

func (c *supportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.alimony, "alimony", "", "Requested monthly alimony")
	f.StringVar(&c.child, "child", "", "Requested monthly child support")
	f.StringVar(&c.start, "start", "", "Support start date (YYYY-MM-DD)")
}

func (c *supportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	defer CloseStore(store)

	var start organizer.Date
	if c.start != "" {
		var err error
		start, err = organizer.ParseDate(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -start: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	if c.alimony != "" || c.child != "" || c.start != "" {
		store.Set(func(doc organizer.Document) organizer.Document {
			if c.alimony != "" {
				m := organizer.ParseMoney(c.alimony)
				doc.Divorce.Support.RequestedAlimonyMonthly = &m
			}
			if c.child != "" {
				m := organizer.ParseMoney(c.child)
				doc.Divorce.Support.RequestedChildSupportMonthly = &m
			}
			if c.start != "" {
				doc.Divorce.Support.StartDate = start
			}
			return doc
		})
	}

	s := store.Document().Divorce.Support
	show := func(m *organizer.Money) string {
		if m == nil {
			return "not entered"
		}
		return m.String()
	}
	startLine := "not set"
	if !s.StartDate.IsZero() {
		startLine = s.StartDate.String()
	}
	fmt.Printf("Requested alimony: %s/month\nRequested child support: %s/month\nStart date: %s\n",
		show(s.RequestedAlimonyMonthly), show(s.RequestedChildSupportMonthly), startLine)
	return subcommands.ExitSuccess
}
