package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type undoCmd struct{}

func (*undoCmd) Name() string     { return "undo" }
func (*undoCmd) Synopsis() string { return "revert the last committed change" }
func (*undoCmd) Usage() string {
	return `forg undo

  Reverts the document to the state before the last change. Up to 10
  changes back are retained. A no-op when there is nothing to undo.
`
}

func (c *undoCmd) SetFlags(f *flag.FlagSet) {}

func (c *undoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	defer CloseStore(store)

	if !store.CanUndo() {
		fmt.Println("Nothing to undo")
		return subcommands.ExitSuccess
	}
	store.Undo()
	fmt.Println("Undone")
	return subcommands.ExitSuccess
}

type redoCmd struct{}

func (*redoCmd) Name() string     { return "redo" }
func (*redoCmd) Synopsis() string { return "re-apply the last undone change" }
func (*redoCmd) Usage() string {
	return `forg redo

  Re-applies the most recently undone change. A no-op when there is
  nothing to redo. Committing any new change clears the redo history.
`
}

func (c *redoCmd) SetFlags(f *flag.FlagSet) {}

func (c *redoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := OpenStore()
	defer CloseStore(store)

	if !store.CanRedo() {
		fmt.Println("Nothing to redo")
		return subcommands.ExitSuccess
	}
	store.Redo()
	fmt.Println("Redone")
	return subcommands.ExitSuccess
}
