package organizer

import (
	"fmt"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for newly created items. Identifiers are
// assigned once at creation and never reused; the generator is injected so
// tests can assert exact ids.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator is the production generator.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// SeqGenerator yields "id-1", "id-2", ... deterministically.
type SeqGenerator struct{ n int }

func (g *SeqGenerator) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}
