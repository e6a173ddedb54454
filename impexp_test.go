package organizer

import (
	"bytes"
	"strings"
	"testing"
)

func TestExportImportRoundTrip(t *testing.T) {
	for _, passphrase := range []string{"", "hunter2"} {
		t.Run("passphrase="+passphrase, func(t *testing.T) {
			orig := DefaultDocument(&SeqGenerator{})
			orig.Profile.FullName = "Pat Doe"
			orig.Assets = append(orig.Assets, AssetItem{ID: "a1", Name: "House", Value: M(350000)})
			orig.Income = append(orig.Income, FlowItem{ID: "f1", Name: "Salary", Amount: M(5000), Frequency: Monthly})

			var buf bytes.Buffer
			if err := ExportDocument(&buf, orig, passphrase); err != nil {
				t.Fatalf("ExportDocument: %v", err)
			}
			if passphrase != "" && bytes.Contains(buf.Bytes(), []byte("Pat Doe")) {
				t.Error("passphrase export should not contain plaintext")
			}

			got, err := ImportDocument(&buf, passphrase, &SeqGenerator{})
			if err != nil {
				t.Fatalf("ImportDocument: %v", err)
			}
			if got.Profile.FullName != "Pat Doe" {
				t.Errorf("full name = %q", got.Profile.FullName)
			}
			if len(got.Assets) != 1 || !got.Assets[0].Value.Equal(M(350000)) {
				t.Errorf("assets = %+v", got.Assets)
			}
			if len(got.Income) != 1 || got.Income[0].Frequency != Monthly {
				t.Errorf("income = %+v", got.Income)
			}
		})
	}
}

func TestImportDocument_FailsClosed(t *testing.T) {
	orig := DefaultDocument(&SeqGenerator{})
	var buf bytes.Buffer
	if err := ExportDocument(&buf, orig, "right"); err != nil {
		t.Fatalf("ExportDocument: %v", err)
	}
	if _, err := ImportDocument(&buf, "wrong", &SeqGenerator{}); err == nil {
		t.Error("wrong passphrase must fail the import")
	}
	if _, err := ImportDocument(strings.NewReader("{broken"), "", &SeqGenerator{}); err == nil {
		t.Error("malformed JSON must fail the import")
	}
}

func TestImportFlowsCSV(t *testing.T) {
	in := "Source, Amount, Frequency\n" +
		"Salary, 5200, monthly\n" +
		"Freelance, 600.50, biweekly\n" +
		"Mystery, abc, quarterly\n"
	items, err := ImportFlowsCSV(strings.NewReader(in), &SeqGenerator{})
	if err != nil {
		t.Fatalf("ImportFlowsCSV: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	if items[0].ID != "id-1" || items[0].Name != "Salary" || !items[0].Amount.Equal(M(5200)) {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[1].Frequency != Biweekly || items[1].Amount.String() != "$600.50" {
		t.Errorf("items[1] = %+v", items[1])
	}
	// Rows never fail: bad amounts coerce to zero, unknown frequencies
	// fall back to monthly.
	if !items[2].Amount.Equal(M(0)) || items[2].Frequency != Monthly {
		t.Errorf("items[2] = %+v", items[2])
	}
}

func TestImportLiabilitiesCSV(t *testing.T) {
	in := "name,balance,rate,payment,notes\n" +
		"Visa Card,4200,21.9,150,pay down first\n" +
		"Car Loan,11000,bad,320,\n"
	items, err := ImportLiabilitiesCSV(strings.NewReader(in), &SeqGenerator{})
	if err != nil {
		t.Fatalf("ImportLiabilitiesCSV: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Rate.String() != "21.9" || items[0].Notes != "pay down first" {
		t.Errorf("items[0] = %+v", items[0])
	}
	if !items[1].Rate.IsZero() {
		t.Errorf("bad rate should coerce to zero, got %s", items[1].Rate)
	}
}

func TestImportContactsCSV(t *testing.T) {
	in := "name,email,phone,role\n" +
		"Dana Smith,dana@example.com,555-0100,Mediator\n" +
		"Lee Jones,lee@example.com,555-0101,\n"
	contacts, err := ImportContactsCSV(strings.NewReader(in), &SeqGenerator{})
	if err != nil {
		t.Fatalf("ImportContactsCSV: %v", err)
	}
	if contacts[0].Role != "mediator" {
		t.Errorf("role = %q, want mediator", contacts[0].Role)
	}
	if contacts[1].Role != "attorney" {
		t.Errorf("missing role = %q, want attorney default", contacts[1].Role)
	}
}

func TestImportCSV_Empty(t *testing.T) {
	items, err := ImportAssetsCSV(strings.NewReader("name,value\n"), &SeqGenerator{})
	if err != nil {
		t.Fatalf("ImportAssetsCSV: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("header-only input should yield no items, got %d", len(items))
	}
}

func TestParseQuickLine(t *testing.T) {
	testCases := []struct {
		in   string
		want FlowItem
		ok   bool
	}{
		{"freelance 600 biweekly", FlowItem{Name: "freelance", Amount: M(600), Frequency: Biweekly}, true},
		{"side gig 250.75 weekly", FlowItem{Name: "side gig", Amount: M(250.75), Frequency: Weekly}, true},
		{"Bonus 1200 ANNUAL", FlowItem{Name: "Bonus", Amount: M(1200), Frequency: Annual}, true},
		{"  rent 1800 monthly  ", FlowItem{Name: "rent", Amount: M(1800), Frequency: Monthly}, true},
		{"rent 1800", FlowItem{}, false},
		{"1800 monthly", FlowItem{}, false},
		{"rent 1800 quarterly", FlowItem{}, false},
		{"", FlowItem{}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseQuickLine(tc.in)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if !ok {
				return
			}
			if got.Name != tc.want.Name || !got.Amount.Equal(tc.want.Amount) || got.Frequency != tc.want.Frequency {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
