package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/casefin/organizer"
	"github.com/google/subcommands"
)

type wizardCmd struct{}

func (*wizardCmd) Name() string     { return "wizard" }
func (*wizardCmd) Synopsis() string { return "step through the guided case workflow" }
func (*wizardCmd) Usage() string {
	return `forg wizard [next | prev]

  Shows the current wizard step and what input is still missing. "next"
  and "prev" move through the steps; movement is clamped at both ends.

Usage Examples:
$ forg wizard
$ forg wizard next
`
}

func (c *wizardCmd) SetFlags(f *flag.FlagSet) {}

func (c *wizardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	defer CloseStore(store)

	switch f.Arg(0) {
	case "":
		// show only
	case "next":
		store.Set(func(doc organizer.Document) organizer.Document {
			doc.Divorce.WizardStep = organizer.NextStep(doc.Divorce.WizardStep)
			return doc
		})
	case "prev":
		store.Set(func(doc organizer.Document) organizer.Document {
			doc.Divorce.WizardStep = organizer.PrevStep(doc.Divorce.WizardStep)
			return doc
		})
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown wizard argument %q\n", f.Arg(0))
		return subcommands.ExitUsageError
	}

	doc := store.Document()
	current := doc.Divorce.WizardStep
	for i, step := range organizer.Steps {
		marker := "  "
		if step.ID == current {
			marker = "->"
		}
		fmt.Printf("%s %d. %s: %s\n", marker, i+1, step.Title, step.Description)
	}

	g := organizer.GuidedNext(doc)
	switch g.Kind {
	case organizer.GuidanceDone:
		fmt.Printf("\n%s\n", g.Label)
	case organizer.GuidanceAction:
		fmt.Printf("\nNext: %s (%s)\n", g.Label, wizardHint(g.Action))
	default:
		fmt.Printf("\nNext: %s (%s)\n", g.Label, g.Locator)
	}
	return subcommands.ExitSuccess
}

// wizardHint maps a guided action to the command that performs it.
func wizardHint(a organizer.GuidedAction) string {
	switch a {
	case organizer.GuidedAddContact:
		return "forg contact -name <name>"
	case organizer.GuidedBuildDisclosures:
		return "forg disclosures -build"
	default:
		return ""
	}
}
