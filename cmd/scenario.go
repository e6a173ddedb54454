package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/casefin/organizer"
	"github.com/casefin/organizer/renderer"
	"github.com/google/subcommands"
)

type scenarioCmd struct {
	build bool
}

func (*scenarioCmd) Name() string     { return "scenario" }
func (*scenarioCmd) Synopsis() string { return "compare scenarios or derive the suggested variants" }
func (*scenarioCmd) Usage() string {
	return `forg scenario [-build]

  Without flags, renders the side-by-side comparison of all scenarios.
  With -build, derives the four suggested variants from the base scenario
  (Sell House, Refi, Trim 10%, Side Income) and stores them; existing
  variants with the same key are replaced.

Usage Examples:
$ forg scenario
$ forg scenario -build
`
}

func (c *scenarioCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.build, "build", false, "Derive and store the suggested scenario variants")
}

func (c *scenarioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	defer CloseStore(store)

	if c.build {
		variants := organizer.AutoBuildScenarios(store.Document().Base())
		store.Set(func(doc organizer.Document) organizer.Document {
			for _, v := range variants {
				doc.Scenarios[scenarioKey(v.Name)] = v
			}
			return doc
		})
		fmt.Printf("Built %d scenario variants from the base scenario\n", len(variants))
	}

	printMarkdown(renderer.ScenariosMarkdown(store.Document()))
	return subcommands.ExitSuccess
}

// scenarioKey derives the map key from a variant name, e.g. "Sell House"
// becomes "sell-house".
func scenarioKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}
