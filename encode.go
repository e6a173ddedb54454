package organizer

import (
	"encoding/json"
	"fmt"
	"io"
)

// EncodeDocument writes the document as a single indented JSON value. The
// format is the persisted schema and the import/export schema: it should
// remain human readable and diffable.
func EncodeDocument(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("could not encode document: %w", err)
	}
	return nil
}

// DecodeDocument reads a document JSON value. The decoded value is raw:
// callers route it through Reconcile before use.
func DecodeDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not decode document: %w", err)
	}
	return &doc, nil
}
