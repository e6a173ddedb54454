package organizer

import (
	"fmt"
	"testing"
)

// memPersister records saves so tests can assert persistence happened.
type memPersister struct {
	loaded *Document
	saves  int
	failed bool
}

func (m *memPersister) Load() (*Document, error) {
	if m.failed {
		return nil, fmt.Errorf("corrupted state")
	}
	return m.loaded, nil
}

func (m *memPersister) Save(Document) error {
	m.saves++
	return nil
}

func newTestStore(t *testing.T) (*Store, *memPersister) {
	t.Helper()
	p := &memPersister{}
	return NewStore(p, &SeqGenerator{}), p
}

func setNotes(note string) func(Document) Document {
	return func(d Document) Document {
		d.Notes = note
		return d
	}
}

func TestStore_HistoryNeverExceedsLimit(t *testing.T) {
	s, _ := newTestStore(t)
	for i := 0; i < 25; i++ {
		s.Set(setNotes(fmt.Sprintf("note %d", i)))
		if len(s.past) > historyLimit {
			t.Fatalf("after %d commits, past has %d entries, want <= %d", i+1, len(s.past), historyLimit)
		}
		if len(s.future) != 0 {
			t.Fatalf("future not cleared after Set: %d entries", len(s.future))
		}
	}
	if len(s.past) != historyLimit {
		t.Errorf("past has %d entries, want %d", len(s.past), historyLimit)
	}
	// The oldest retained state is commit 14, commits 0..13 were dropped.
	if got := s.past[0].Notes; got != "note 14" {
		t.Errorf("oldest retained state is %q, want %q", got, "note 14")
	}
}

func TestStore_UndoRedoRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	s.Set(setNotes("first"))
	s.Set(setNotes("second"))

	s.Undo()
	if got := s.Document().Notes; got != "first" {
		t.Fatalf("after undo, notes = %q, want %q", got, "first")
	}
	s.Redo()
	if got := s.Document().Notes; got != "second" {
		t.Fatalf("after redo, notes = %q, want %q", got, "second")
	}
}

func TestStore_UndoRedoNoOpOnEmptyStacks(t *testing.T) {
	s, p := newTestStore(t)
	saves := p.saves

	s.Undo()
	s.Redo()

	if s.CanUndo() || s.CanRedo() {
		t.Error("fresh store should have empty history")
	}
	if p.saves != saves {
		t.Errorf("no-op undo/redo persisted: %d saves, want %d", p.saves, saves)
	}
}

func TestStore_SetClearsFuture(t *testing.T) {
	s, _ := newTestStore(t)
	s.Set(setNotes("a"))
	s.Set(setNotes("b"))
	s.Undo()
	if !s.CanRedo() {
		t.Fatal("expected a redoable state after undo")
	}
	s.Set(setNotes("c"))
	if s.CanRedo() {
		t.Error("Set must clear the redo stack")
	}
}

func TestStore_EverySuccessfulTransitionPersists(t *testing.T) {
	s, p := newTestStore(t)
	s.Set(setNotes("a"))
	s.Set(setNotes("b"))
	s.Undo()
	s.Redo()
	if p.saves != 4 {
		t.Errorf("got %d saves, want 4 (two sets, one undo, one redo)", p.saves)
	}
}

func TestStore_SnapshotsDoNotAlias(t *testing.T) {
	s, _ := newTestStore(t)
	s.Set(func(d Document) Document {
		d.Assets = append(d.Assets, AssetItem{ID: "a1", Name: "House", Value: M(100)})
		return d
	})
	snap := s.Document()
	snap.Assets[0].Name = "mutated"
	if got := s.Document().Assets[0].Name; got != "House" {
		t.Errorf("mutating a snapshot leaked into the store: %q", got)
	}
}

func TestNewStore_UnreadableStateFallsBackToDefaults(t *testing.T) {
	p := &memPersister{failed: true}
	s := NewStore(p, &SeqGenerator{})
	doc := s.Document()
	if _, ok := doc.Scenarios[BaseScenarioKey]; !ok {
		t.Error("default document is missing the base scenario")
	}
	if len(doc.Checklist) == 0 {
		t.Error("default document should carry the seeded checklist")
	}
}

func TestNewStore_LoadedStateIsReconciled(t *testing.T) {
	// A persisted value with a missing divorce sub-tree must be repaired.
	p := &memPersister{loaded: &Document{Notes: "kept"}}
	s := NewStore(p, &SeqGenerator{})
	doc := s.Document()
	if doc.Notes != "kept" {
		t.Errorf("loaded notes lost: %q", doc.Notes)
	}
	if doc.Divorce.CaseType != "dissolution" {
		t.Errorf("divorce sub-tree not back-filled: caseType = %q", doc.Divorce.CaseType)
	}
	if doc.Divorce.Contacts == nil || doc.Divorce.Deadlines == nil || doc.Divorce.Disclosures == nil {
		t.Error("divorce list fields must be non-nil slices")
	}
}
