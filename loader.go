package organizer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FilePersister stores the document as a single JSON file.
type FilePersister struct {
	Path string
}

// Load reads the persisted document. A missing file is not an error: it
// returns nil, meaning "start from defaults".
func (p FilePersister) Load() (*Document, error) {
	f, err := os.Open(p.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open document file %q: %w", p.Path, err)
	}
	defer f.Close()

	doc, err := DecodeDocument(f)
	if err != nil {
		return nil, fmt.Errorf("could not read document file %q: %w", p.Path, err)
	}
	return doc, nil
}

// Save writes the document back to the file, creating parent directories as
// needed.
func (p FilePersister) Save(doc Document) error {
	if dir := filepath.Dir(p.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for %q: %w", p.Path, err)
		}
	}
	f, err := os.Create(p.Path)
	if err != nil {
		return fmt.Errorf("could not open document file %q for writing: %w", p.Path, err)
	}
	defer f.Close()
	return EncodeDocument(f, doc)
}

var _ Persister = FilePersister{}
