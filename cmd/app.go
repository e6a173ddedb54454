// Package cmd implements the CLI application to manage a personal case and
// finance organizer document.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/casefin/organizer"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists every subcommand in registration order. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&profileCmd{},
	&addAssetCmd{},
	&addLiabilityCmd{},
	&addIncomeCmd{},
	&addExpenseCmd{},
	&checklistCmd{},
	&contactCmd{},
	&summaryCmd{},
	&scenarioCmd{},
	&insightsCmd{},
	&reportCmd{},
	&icsCmd{},
	&caseCmd{},
	&supportCmd{},
	&deadlinesCmd{},
	&disclosuresCmd{},
	&wizardCmd{},
	&undoCmd{},
	&redoCmd{},
	&exportCmd{},
	&importCmd{},
	&importCSVCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var stateFile = flag.String("f", "organizer.json", "Path to the organizer state file (JSON)")

// sessionFile is the sidecar holding the undo/redo stacks between
// invocations, next to the state file.
func sessionFile() string { return *stateFile + ".session" }

type session struct {
	Past   []organizer.Document `json:"past"`
	Future []organizer.Document `json:"future"`
}

// OpenStore loads the persisted document and the undo/redo session into a
// fresh store. A missing or unreadable session just starts empty.
func OpenStore() *organizer.Store {
	store := organizer.NewStore(&organizer.FilePersister{Path: *stateFile}, organizer.UUIDGenerator{})

	raw, err := os.ReadFile(sessionFile())
	if err != nil {
		return store
	}
	var s session
	if err := json.Unmarshal(raw, &s); err != nil {
		return store
	}
	store.SeedHistory(s.Past, s.Future)
	return store
}

// CloseStore persists the undo/redo session. The document itself is already
// saved by the store on every commit.
func CloseStore(store *organizer.Store) {
	past, future := store.History()
	if len(past) == 0 && len(future) == 0 {
		if err := os.Remove(sessionFile()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Warning: could not remove session file: %v\n", err)
		}
		return
	}
	raw, err := json.Marshal(session{Past: past, Future: future})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not encode session: %v\n", err)
		return
	}
	if err := os.WriteFile(sessionFile(), raw, 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save session: %v\n", err)
	}
}

// printMarkdown renders markdown to the terminal through glamour, falling
// back to the raw text when rendering fails (e.g. dumb terminals, pipes).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
