package cmd

import (
	"context"
	"flag"

	"github.com/casefin/organizer/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the monthly financial snapshot" }
func (*summaryCmd) Usage() string {
	return `forg summary

  Displays the monthly income, expenses, cash flow and net worth of the
  current (base) scenario, plus checklist progress.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	defer CloseStore(store)

	printMarkdown(renderer.SummaryMarkdown(store.Document()))
	return subcommands.ExitSuccess
}
