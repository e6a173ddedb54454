package organizer

import "log"

// historyLimit bounds the undo history: only the last 10 committed states
// are retained.
const historyLimit = 10

// Persister is the external storage collaborator. Load returns nil when no
// document has been persisted yet.
type Persister interface {
	Load() (*Document, error)
	Save(Document) error
}

// Store owns the canonical Document and its bounded undo/redo history. It is
// the sole place mutation is committed; everything else is a pure read of
// the current document. Single-goroutine use only.
type Store struct {
	past    []Document
	present Document
	future  []Document

	persister Persister
	ids       IDGenerator
}

// NewStore loads the persisted document (reconciled with defaults) into a
// fresh store. An unreadable persisted state is logged and replaced by the
// defaults rather than failing the session.
func NewStore(p Persister, ids IDGenerator) *Store {
	loaded, err := p.Load()
	if err != nil {
		log.Printf("warning: could not load persisted document, starting fresh: %v", err)
		loaded = nil
	}
	return &Store{
		present:   Reconcile(loaded, ids),
		persister: p,
		ids:       ids,
	}
}

// IDs returns the store's id generator, for callers creating new items.
func (s *Store) IDs() IDGenerator { return s.ids }

// Document returns a snapshot of the current document. The snapshot is a
// deep copy; mutating it has no effect on the store.
func (s *Store) Document() Document { return s.present.Clone() }

// CanUndo reports whether an undo would change state.
func (s *Store) CanUndo() bool { return len(s.past) > 0 }

// CanRedo reports whether a redo would change state.
func (s *Store) CanRedo() bool { return len(s.future) > 0 }

// Set commits a new document computed by the updater from a snapshot of the
// current one. The old present is pushed onto the undo stack (oldest entry
// dropped beyond the limit) and the redo stack is cleared.
func (s *Store) Set(updater func(Document) Document) {
	next := updater(s.present.Clone())
	s.past = append(s.past, s.present)
	if len(s.past) > historyLimit {
		s.past = s.past[len(s.past)-historyLimit:]
	}
	s.present = next
	s.future = nil
	s.persist()
}

// Undo moves one step back in history. No-op when there is nothing to undo.
func (s *Store) Undo() {
	if len(s.past) == 0 {
		return
	}
	previous := s.past[len(s.past)-1]
	s.past = s.past[:len(s.past)-1]
	s.future = append([]Document{s.present}, s.future...)
	s.present = previous
	s.persist()
}

// Redo re-applies the most recently undone state. No-op when there is
// nothing to redo.
func (s *Store) Redo() {
	if len(s.future) == 0 {
		return
	}
	next := s.future[0]
	s.future = s.future[1:]
	s.past = append(s.past, s.present)
	if len(s.past) > historyLimit {
		s.past = s.past[len(s.past)-historyLimit:]
	}
	s.present = next
	s.persist()
}

// History returns snapshots of the undo and redo stacks, oldest first, for
// session persistence.
func (s *Store) History() (past, future []Document) {
	past = make([]Document, 0, len(s.past))
	for _, d := range s.past {
		past = append(past, d.Clone())
	}
	future = make([]Document, 0, len(s.future))
	for _, d := range s.future {
		future = append(future, d.Clone())
	}
	return past, future
}

// SeedHistory restores previously persisted undo/redo stacks. The past stack
// is clamped to the history limit, keeping the most recent entries.
func (s *Store) SeedHistory(past, future []Document) {
	if len(past) > historyLimit {
		past = past[len(past)-historyLimit:]
	}
	s.past = append([]Document(nil), past...)
	s.future = append([]Document(nil), future...)
}

// persist writes the present document through the persister. Persistence is
// fire-and-forget: a failure is logged and the committed transition stands.
func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(s.present); err != nil {
		log.Printf("warning: could not persist document: %v", err)
	}
}
