package organizer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// this file handles the import/export format and CSV ingestion.
// Export emits the raw document JSON, optionally obfuscated with a
// passphrase. Import is fail-closed: any error leaves the caller's
// document untouched because nothing is committed until the whole file
// parsed.

// ExportDocument writes the document JSON to w, obfuscated when a
// passphrase is given.
func ExportDocument(w io.Writer, doc Document, passphrase string) error {
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, doc); err != nil {
		return err
	}
	if _, err := w.Write(Obfuscate(buf.Bytes(), passphrase)); err != nil {
		return fmt.Errorf("could not write export: %w", err)
	}
	return nil
}

// ImportDocument reads an exported file, de-obfuscating with the passphrase
// when given, and returns the reconciled document ready to replace the
// current one wholesale. On error no document is returned: the import path
// is the only fallible one and it fails closed.
func ImportDocument(r io.Reader, passphrase string, ids IDGenerator) (Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("could not read import: %w", err)
	}
	plain, err := Deobfuscate(raw, passphrase)
	if err != nil {
		return Document{}, fmt.Errorf("could not de-obfuscate import: %w", err)
	}
	loaded, err := DecodeDocument(bytes.NewReader(plain))
	if err != nil {
		return Document{}, fmt.Errorf("import failed, check password and file: %w", err)
	}
	return Reconcile(loaded, ids), nil
}

// csvRows reads r as CSV and returns one map per record keyed by the
// lower-cased header names.
func csvRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not parse CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}
	header := records[0]
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func pick(row map[string]string, names ...string) string {
	for _, n := range names {
		if v := row[n]; v != "" {
			return v
		}
	}
	return ""
}

// ImportFlowsCSV parses income or expense rows. Headers: name (or source),
// amount, frequency. Unknown frequencies fall back to monthly and bad
// amounts coerce to zero rather than failing the row.
func ImportFlowsCSV(r io.Reader, ids IDGenerator) ([]FlowItem, error) {
	rows, err := csvRows(r)
	if err != nil {
		return nil, err
	}
	items := make([]FlowItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, FlowItem{
			ID:        ids.NewID(),
			Name:      pick(row, "name", "source", "category"),
			Amount:    ParseMoney(row["amount"]),
			Frequency: ParseFrequency(row["frequency"]),
		})
	}
	return items, nil
}

// ImportAssetsCSV parses asset rows. Headers: name, value, notes.
func ImportAssetsCSV(r io.Reader, ids IDGenerator) ([]AssetItem, error) {
	rows, err := csvRows(r)
	if err != nil {
		return nil, err
	}
	items := make([]AssetItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, AssetItem{
			ID:    ids.NewID(),
			Name:  row["name"],
			Value: ParseMoney(row["value"]),
			Notes: row["notes"],
		})
	}
	return items, nil
}

// ImportLiabilitiesCSV parses liability rows. Headers: name, balance, rate,
// payment, notes.
func ImportLiabilitiesCSV(r io.Reader, ids IDGenerator) ([]LiabilityItem, error) {
	rows, err := csvRows(r)
	if err != nil {
		return nil, err
	}
	items := make([]LiabilityItem, 0, len(rows))
	for _, row := range rows {
		rate, rateErr := decimal.NewFromString(row["rate"])
		if rateErr != nil {
			rate = decimal.Zero
		}
		items = append(items, LiabilityItem{
			ID:      ids.NewID(),
			Name:    row["name"],
			Balance: ParseMoney(row["balance"]),
			Rate:    rate,
			Payment: ParseMoney(row["payment"]),
			Notes:   row["notes"],
		})
	}
	return items, nil
}

// ImportContactsCSV parses contact rows. Headers: name, email, phone, role.
// Roles are lower-cased at ingestion; an absent role defaults to attorney.
func ImportContactsCSV(r io.Reader, ids IDGenerator) ([]Contact, error) {
	rows, err := csvRows(r)
	if err != nil {
		return nil, err
	}
	contacts := make([]Contact, 0, len(rows))
	for _, row := range rows {
		role := strings.ToLower(row["role"])
		if role == "" {
			role = "attorney"
		}
		contacts = append(contacts, Contact{
			ID:    ids.NewID(),
			Name:  row["name"],
			Email: row["email"],
			Phone: row["phone"],
			Role:  role,
		})
	}
	return contacts, nil
}

var quickLineRE = regexp.MustCompile(`(?i)^([a-zA-Z ]+)\s+(\d+(?:\.\d+)?)\s+(weekly|biweekly|monthly|annual)$`)

// ParseQuickLine parses a one-line entry like "freelance 600 biweekly" into
// a flow item without an id. It returns false when the line does not match.
func ParseQuickLine(s string) (FlowItem, bool) {
	m := quickLineRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return FlowItem{}, false
	}
	return FlowItem{
		Name:      strings.TrimSpace(m[1]),
		Amount:    ParseMoney(m[2]),
		Frequency: ParseFrequency(m[3]),
	}, true
}
