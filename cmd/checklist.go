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

type checklistCmd struct {
	check    string
	uncheck  string
	add      string
	category string
}

func (*checklistCmd) Name() string     { return "checklist" }
func (*checklistCmd) Synopsis() string { return "show or update the document-gathering checklist" }
func (*checklistCmd) Usage() string {
	return `forg checklist [-check <id> | -uncheck <id> | -add <label> [-category <cat>]]

  Without flags, displays the checklist. With -check/-uncheck, toggles an
  item by id. With -add, appends a custom item.

Usage Examples:
$ forg checklist
$ forg checklist -add "HOA statements" -category Expenses
`
}

func (c *checklistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.check, "check", "", "Mark the item with this id as done")
	f.StringVar(&c.uncheck, "uncheck", "", "Mark the item with this id as not done")
	f.StringVar(&c.add, "add", "", "Append a custom checklist item with this label")
	f.StringVar(&c.category, "category", "Other", "Category for -add")
}

func (c *checklistCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	defer CloseStore(store)

	switch {
	case c.add != "":
		item := organizer.ChecklistItem{ID: store.IDs().NewID(), Label: c.add, Category: c.category}
		store.Set(func(doc organizer.Document) organizer.Document {
			doc.Checklist = append(doc.Checklist, item)
			return doc
		})
		fmt.Printf("Added checklist item %q [%s]\n", item.Label, item.ID)

	case c.check != "", c.uncheck != "":
		id, done := c.check, true
		if c.uncheck != "" {
			id, done = c.uncheck, false
		}
		if !hasChecklistItem(store.Document(), id) {
			fmt.Fprintf(os.Stderr, "Error: no checklist item with id %q\n", id)
			return subcommands.ExitFailure
		}
		store.Set(func(doc organizer.Document) organizer.Document {
			for i := range doc.Checklist {
				if doc.Checklist[i].ID == id {
					doc.Checklist[i].Done = done
				}
			}
			return doc
		})
		fmt.Printf("Updated checklist item %s\n", id)

	default:
		printMarkdown(renderer.ChecklistMarkdown(store.Document()))
	}
	return subcommands.ExitSuccess
}

func hasChecklistItem(doc organizer.Document, id string) bool {
	for _, item := range doc.Checklist {
		if item.ID == id {
			return true
		}
	}
	return false
}
