package renderer

import (
	"encoding/csv"
	"io"

	"github.com/casefin/organizer"
)

// CSV writers mirror the import headers so an exported file round-trips
// through the CSV importers. Amounts are written as plain decimals, not
// formatted currency.

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	out := csv.NewWriter(w)
	if err := out.Write(header); err != nil {
		return err
	}
	if err := out.WriteAll(rows); err != nil {
		return err
	}
	out.Flush()
	return out.Error()
}

func WriteAssetsCSV(w io.Writer, items []organizer.AssetItem) error {
	rows := make([][]string, 0, len(items))
	for _, a := range items {
		rows = append(rows, []string{a.Name, a.Value.Decimal().String(), a.Notes})
	}
	return writeCSV(w, []string{"name", "value", "notes"}, rows)
}

func WriteLiabilitiesCSV(w io.Writer, items []organizer.LiabilityItem) error {
	rows := make([][]string, 0, len(items))
	for _, l := range items {
		rows = append(rows, []string{
			l.Name,
			l.Balance.Decimal().String(),
			l.Rate.String(),
			l.Payment.Decimal().String(),
			l.Notes,
		})
	}
	return writeCSV(w, []string{"name", "balance", "rate", "payment", "notes"}, rows)
}

func WriteFlowsCSV(w io.Writer, items []organizer.FlowItem) error {
	rows := make([][]string, 0, len(items))
	for _, f := range items {
		rows = append(rows, []string{f.Name, f.Amount.Decimal().String(), f.Frequency.String()})
	}
	return writeCSV(w, []string{"name", "amount", "frequency"}, rows)
}

func WriteContactsCSV(w io.Writer, contacts []organizer.Contact) error {
	rows := make([][]string, 0, len(contacts))
	for _, c := range contacts {
		rows = append(rows, []string{c.Name, c.Email, c.Phone, c.Role})
	}
	return writeCSV(w, []string{"name", "email", "phone", "role"}, rows)
}
