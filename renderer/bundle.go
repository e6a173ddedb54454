package renderer

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	"github.com/casefin/organizer"
)

// WriteBundle writes a ZIP archive with the full report, the deadline
// calendar and one CSV per item list. Empty lists still produce their
// header-only CSV so the bundle layout is stable.
func WriteBundle(w io.Writer, doc organizer.Document, today organizer.Date) error {
	zw := zip.NewWriter(w)

	entries := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"document.json", func(w io.Writer) error {
			return organizer.EncodeDocument(w, doc)
		}},
		{"report.md", func(w io.Writer) error {
			_, err := io.WriteString(w, ReportMarkdown(doc, today))
			return err
		}},
		{"deadlines.ics", func(w io.Writer) error {
			return WriteDeadlinesICS(w, doc)
		}},
		{"assets.csv", func(w io.Writer) error {
			return WriteAssetsCSV(w, doc.Assets)
		}},
		{"liabilities.csv", func(w io.Writer) error {
			return WriteLiabilitiesCSV(w, doc.Liabilities)
		}},
		{"income.csv", func(w io.Writer) error {
			return WriteFlowsCSV(w, doc.Income)
		}},
		{"expenses.csv", func(w io.Writer) error {
			return WriteFlowsCSV(w, doc.Expenses)
		}},
		{"contacts.csv", func(w io.Writer) error {
			return WriteContactsCSV(w, doc.Divorce.Contacts)
		}},
	}

	for _, e := range entries {
		f, err := zw.Create(e.name)
		if err != nil {
			return fmt.Errorf("could not create %s in bundle: %w", e.name, err)
		}
		if err := e.write(f); err != nil {
			return fmt.Errorf("could not write %s in bundle: %w", e.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("could not finish bundle: %w", err)
	}
	return nil
}

// BundleName derives the archive file name from the profile.
func BundleName(doc organizer.Document, today organizer.Date) string {
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(doc.Profile.FullName), " ", "-"))
	if name == "" {
		name = "case"
	}
	return fmt.Sprintf("%s-report-%s.zip", name, today)
}
