package organizer

import (
	"reflect"
	"testing"
)

func TestComputeDeadlines(t *testing.T) {
	filing := MustParseDate("2024-01-01")

	t.Run("contested without children", func(t *testing.T) {
		got := ComputeDeadlines(filing, true, false, nil)
		if len(got) != 4 {
			t.Fatalf("got %d deadlines, want 4", len(got))
		}
		wantLabels := []string{
			"Financial disclosure due",
			"Initial disclosures exchange",
			"Parenting plan draft",
			"Mediation/settlement conference",
		}
		wantDates := []string{"2024-01-31", "2024-02-15", "2024-01-01", "2024-03-01"}
		for i := range got {
			if got[i].Label != wantLabels[i] {
				t.Errorf("deadline[%d].Label = %q, want %q", i, got[i].Label, wantLabels[i])
			}
			if got[i].Date.String() != wantDates[i] {
				t.Errorf("deadline[%d].Date = %s, want %s", i, got[i].Date, wantDates[i])
			}
		}
		// Inapplicable parenting plan is emitted at the filing date, already done.
		if !got[2].Done {
			t.Error("parenting plan must be done when there are no children")
		}
		if got[0].Done || got[1].Done || got[3].Done {
			t.Error("applicable deadlines must start not done")
		}
	})

	t.Run("uncontested with children", func(t *testing.T) {
		got := ComputeDeadlines(filing, false, true, nil)
		if len(got) != 3 {
			t.Fatalf("got %d deadlines, want 3 (no mediation)", len(got))
		}
		if got[2].Date.String() != "2024-01-21" {
			t.Errorf("parenting plan date = %s, want 2024-01-21", got[2].Date)
		}
		if got[2].Done {
			t.Error("parenting plan must not be done when there are children")
		}
	})

	t.Run("offset overrides", func(t *testing.T) {
		rules := map[string]int{
			RuleFinancialDisclosureDays: 10,
			"unknownRule":               99, // ignored
		}
		got := ComputeDeadlines(filing, false, false, rules)
		if got[0].Date.String() != "2024-01-11" {
			t.Errorf("overridden disclosure date = %s, want 2024-01-11", got[0].Date)
		}
		if got[1].Date.String() != "2024-02-15" {
			t.Errorf("non-overridden exchange date = %s, want 2024-02-15", got[1].Date)
		}
	})

	t.Run("zero filing date means today", func(t *testing.T) {
		got := ComputeDeadlines(Date{}, false, false, nil)
		want := Today().Add(30)
		if got[0].Date != want {
			t.Errorf("disclosure date = %s, want %s", got[0].Date, want)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		a := ComputeDeadlines(filing, true, true, nil)
		b := ComputeDeadlines(filing, true, true, nil)
		if !reflect.DeepEqual(a, b) {
			t.Error("equal input must yield list-equal output")
		}
	})
}

func TestDefaultDisclosures(t *testing.T) {
	without := DefaultDisclosures(false)
	if len(without) != 5 {
		t.Fatalf("got %d disclosures, want 5", len(without))
	}
	with := DefaultDisclosures(true)
	if len(with) != 6 {
		t.Fatalf("got %d disclosures, want 6", len(with))
	}
	if with[5].Label != "Childcare/education expenses" {
		t.Errorf("sixth disclosure = %q", with[5].Label)
	}
	for i, d := range with {
		if d.Provided {
			t.Errorf("disclosure[%d] must start not provided", i)
		}
		if d.ID != "" {
			t.Errorf("disclosure[%d] has id %q; ids are assigned by the caller", i, d.ID)
		}
	}
}

func TestNextDeadline(t *testing.T) {
	today := MustParseDate("2024-06-01")
	doc := Document{Divorce: Divorce{Deadlines: []Deadline{
		{ID: "d1", Label: "past", Date: MustParseDate("2024-05-01")},
		{ID: "d2", Label: "done", Date: MustParseDate("2024-07-01"), Done: true},
		{ID: "d3", Label: "later", Date: MustParseDate("2024-08-01")},
		{ID: "d4", Label: "sooner", Date: MustParseDate("2024-06-15")},
	}}}
	got, ok := NextDeadline(doc, today)
	if !ok || got.ID != "d4" {
		t.Errorf("next deadline = %+v (ok=%v), want d4", got, ok)
	}

	_, ok = NextDeadline(Document{}, today)
	if ok {
		t.Error("no deadlines should mean no next deadline")
	}
}

func TestDisclosureProgress(t *testing.T) {
	testCases := []struct {
		name     string
		provided []bool
		want     int
	}{
		{"empty", nil, 0},
		{"none provided", []bool{false, false}, 0},
		{"half", []bool{true, false}, 50},
		{"two thirds rounds", []bool{true, true, false}, 67},
		{"all", []bool{true, true}, 100},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var doc Document
			for i, p := range tc.provided {
				doc.Divorce.Disclosures = append(doc.Divorce.Disclosures, Disclosure{ID: string(rune('a' + i)), Provided: p})
			}
			if got := DisclosureProgress(doc); got != tc.want {
				t.Errorf("progress = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDivorce_IsContested(t *testing.T) {
	if (Divorce{CaseType: "dissolution"}).IsContested() {
		t.Error("dissolution is not contested")
	}
	if !(Divorce{CaseType: "contested-dissolution"}).IsContested() {
		t.Error("contested-dissolution is contested")
	}
}
