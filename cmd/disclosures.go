package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/casefin/organizer"
	"github.com/google/subcommands"
)

type disclosuresCmd struct {
	build    bool
	provided string
	missing  string
}

func (*disclosuresCmd) Name() string     { return "disclosures" }
func (*disclosuresCmd) Synopsis() string { return "track the financial-disclosure checklist" }
func (*disclosuresCmd) Usage() string {
	return `forg disclosures [-build] [-provided <id> | -missing <id>]

  Without flags, lists the disclosure items and the overall progress.
  With -build, creates the standard checklist (replacing the current one).
  -provided/-missing toggle an item by id.

Usage Examples:
$ forg disclosures -build
$ forg disclosures -provided 1a2b
`
}

func (c *disclosuresCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.build, "build", false, "Create the standard disclosure checklist")
	f.StringVar(&c.provided, "provided", "", "Mark the item with this id as provided")
	f.StringVar(&c.missing, "missing", "", "Mark the item with this id as not provided")
}

func (c *disclosuresCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	defer CloseStore(store)

	switch {
	case c.build:
		d := store.Document().Divorce
		items := organizer.DefaultDisclosures(d.HasChildren())
		for i := range items {
			items[i].ID = store.IDs().NewID()
		}
		store.Set(func(doc organizer.Document) organizer.Document {
			doc.Divorce.Disclosures = items
			return doc
		})
		fmt.Printf("Created %d disclosure items\n", len(items))

	case c.provided != "", c.missing != "":
		id, provided := c.provided, true
		if c.missing != "" {
			id, provided = c.missing, false
		}
		found := false
		for _, item := range store.Document().Divorce.Disclosures {
			if item.ID == id {
				found = true
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "Error: no disclosure with id %q\n", id)
			return subcommands.ExitFailure
		}
		store.Set(func(doc organizer.Document) organizer.Document {
			for i := range doc.Divorce.Disclosures {
				if doc.Divorce.Disclosures[i].ID == id {
					doc.Divorce.Disclosures[i].Provided = provided
				}
			}
			return doc
		})
		fmt.Printf("Updated disclosure %s\n", id)
	}

	doc := store.Document()
	if len(doc.Divorce.Disclosures) == 0 {
		fmt.Println("No disclosures yet. Create them with: forg disclosures -build")
		return subcommands.ExitSuccess
	}
	for _, item := range doc.Divorce.Disclosures {
		mark := "[ ]"
		if item.Provided {
			mark = "[x]"
		}
		fmt.Printf("%s %s [%s]\n", mark, item.Label, item.ID)
	}
	fmt.Printf("\nProgress: %d%% provided\n", organizer.DisclosureProgress(doc))
	return subcommands.ExitSuccess
}
