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

type insightsCmd struct {
	apply string
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "show advisory tips, optionally applying one" }
func (*insightsCmd) Usage() string {
	return `forg insights [-apply <tip-id>]

  Evaluates the advisory rules against the current finances. Tips are
  suggestions only; nothing changes until a tip's action is applied with
  -apply.

Usage Examples:
$ forg insights
$ forg insights -apply trim10
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.apply, "apply", "", "Apply the action suggested by this tip id")
}

func (c *insightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	defer CloseStore(store)

	doc := store.Document()
	s := organizer.BaseSummary(doc)
	tips := organizer.EvaluateInsights(doc, s.Income, s.Expenses, s.CashFlow)

	if c.apply != "" {
		for _, tip := range tips {
			if tip.ID != c.apply {
				continue
			}
			return c.dispatch(store, tip)
		}
		fmt.Fprintf(os.Stderr, "Error: no current tip with id %q\n", c.apply)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.InsightsMarkdown(tips))
	return subcommands.ExitSuccess
}

// dispatch executes the action a tip suggests. The switch is exhaustive over
// the action set.
func (c *insightsCmd) dispatch(store *organizer.Store, tip organizer.Tip) subcommands.ExitStatus {
	switch tip.Action {
	case organizer.ApplyTrim10:
		store.Set(func(doc organizer.Document) organizer.Document {
			base := doc.Base()
			trim := organizer.AutoBuildScenarios(base)[2]
			doc.Scenarios[scenarioKey(trim.Name)] = trim
			return doc
		})
		fmt.Println("Added the \"Trim 10%\" scenario variant")
		return subcommands.ExitSuccess

	case organizer.ApplyRefi:
		store.Set(func(doc organizer.Document) organizer.Document {
			base := doc.Base()
			refi := organizer.AutoBuildScenarios(base)[1]
			doc.Scenarios[scenarioKey(refi.Name)] = refi
			return doc
		})
		fmt.Println("Added the \"Refi\" scenario variant")
		return subcommands.ExitSuccess

	case organizer.NoAction:
		fmt.Printf("Tip %q has no action to apply\n", tip.ID)
		return subcommands.ExitSuccess

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown action %v\n", tip.Action)
		return subcommands.ExitFailure
	}
}
