package cmd

import (
	"path/filepath"
	"testing"

	"github.com/casefin/organizer"
)

func useTempState(t *testing.T) {
	t.Helper()
	old := *stateFile
	*stateFile = filepath.Join(t.TempDir(), "organizer.json")
	t.Cleanup(func() { *stateFile = old })
}

func TestSessionRoundTrip(t *testing.T) {
	useTempState(t)

	// First invocation: commit a change.
	store := OpenStore()
	store.Set(func(doc organizer.Document) organizer.Document {
		doc.Notes = "first"
		return doc
	})
	CloseStore(store)

	// Second invocation: the session must make the change undoable.
	store = OpenStore()
	if got := store.Document().Notes; got != "first" {
		t.Fatalf("notes = %q, want %q", got, "first")
	}
	if !store.CanUndo() {
		t.Fatal("undo history must survive across invocations")
	}
	store.Undo()
	CloseStore(store)

	// Third invocation: the undo held, and redo is available.
	store = OpenStore()
	if got := store.Document().Notes; got != "" {
		t.Errorf("notes after undo = %q, want empty", got)
	}
	if !store.CanRedo() {
		t.Error("redo history must survive across invocations")
	}
	CloseStore(store)
}

func TestCloseStore_RemovesEmptySession(t *testing.T) {
	useTempState(t)

	store := OpenStore()
	CloseStore(store)

	store = OpenStore()
	if store.CanUndo() || store.CanRedo() {
		t.Error("fresh store must have no history")
	}
}

func TestScenarioKey(t *testing.T) {
	testCases := []struct{ in, want string }{
		{"Sell House", "sell-house"},
		{"Refi", "refi"},
		{"Trim 10%", "trim-10%"},
		{"  Side Income ", "side-income"},
	}
	for _, tc := range testCases {
		if got := scenarioKey(tc.in); got != tc.want {
			t.Errorf("scenarioKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
