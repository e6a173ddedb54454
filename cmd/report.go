package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/casefin/organizer"
	"github.com/casefin/organizer/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	zip    bool
	output string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "render the full case report" }
func (*reportCmd) Usage() string {
	return `forg report [-zip [-o <file>]]

  Renders the full case report: profile, snapshot, inventories, scenario
  comparison, insights and the case section. With -zip, writes a bundle
  archive instead, containing the report, the raw document, the deadline
  calendar and one CSV per list.

Usage Examples:
$ forg report
$ forg report -zip
$ forg report -zip -o case.zip
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.zip, "zip", false, "Write a ZIP bundle instead of printing the report")
	f.StringVar(&c.output, "o", "", "Bundle file name (defaults to a name derived from the profile)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	defer CloseStore(store)

	doc := store.Document()
	today := organizer.Today()

	if !c.zip {
		printMarkdown(renderer.ReportMarkdown(doc, today))
		return subcommands.ExitSuccess
	}

	name := c.output
	if name == "" {
		name = renderer.BundleName(doc, today)
	}
	file, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := renderer.WriteBundle(file, doc, today); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing bundle: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote report bundle %s\n", name)
	return subcommands.ExitSuccess
}

type icsCmd struct {
	output string
}

func (*icsCmd) Name() string     { return "ics" }
func (*icsCmd) Synopsis() string { return "export the case deadlines as an iCalendar file" }
func (*icsCmd) Usage() string {
	return `forg ics [-o <file>]

  Writes the case deadlines as all-day iCalendar events, suitable for
  import into any calendar application. Without -o, writes to stdout.

Usage Examples:
$ forg ics -o deadlines.ics
`
}

func (c *icsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout)")
}

func (c *icsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	defer CloseStore(store)

	out := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := renderer.WriteDeadlinesICS(out, store.Document()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing calendar: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Printf("Wrote calendar %s\n", c.output)
	}
	return subcommands.ExitSuccess
}
