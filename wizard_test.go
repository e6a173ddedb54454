package organizer

import "testing"

func TestStepNavigation(t *testing.T) {
	testCases := []struct {
		from       Step
		next, prev Step
	}{
		{StepBasics, StepDeadlines, StepBasics},
		{StepDeadlines, StepDisclosures, StepBasics},
		{StepDisclosures, StepCheckoff, StepDeadlines},
		{StepCheckoff, StepCheckoff, StepDisclosures},
		{"bogus", StepDeadlines, StepBasics}, // unknown steps behave as basics
	}
	for _, tc := range testCases {
		if got := NextStep(tc.from); got != tc.next {
			t.Errorf("NextStep(%s) = %s, want %s", tc.from, got, tc.next)
		}
		if got := PrevStep(tc.from); got != tc.prev {
			t.Errorf("PrevStep(%s) = %s, want %s", tc.from, got, tc.prev)
		}
	}
}

func TestGuidedNext(t *testing.T) {
	// Build up a document one answered input at a time and watch the
	// resolver walk down its priority list.
	var doc Document

	assertField := func(t *testing.T, locator string) {
		t.Helper()
		g := GuidedNext(doc)
		if g.Kind != GuidanceField || g.Locator != locator {
			t.Fatalf("GuidedNext = %+v, want field %s", g, locator)
		}
	}
	assertAction := func(t *testing.T, action GuidedAction) {
		t.Helper()
		g := GuidedNext(doc)
		if g.Kind != GuidanceAction || g.Action != action {
			t.Fatalf("GuidedNext = %+v, want action %v", g, action)
		}
	}

	assertField(t, "divorce.filingState")

	doc.Divorce.FilingState = "WA"
	assertAction(t, GuidedAddContact)

	doc.Divorce.Contacts = []Contact{{ID: "c1"}}
	assertField(t, "divorce.attorneyContacts[0].name")

	doc.Divorce.Contacts[0].Name = "Dana Smith"
	assertField(t, "divorce.attorneyContacts[0].email")

	doc.Divorce.Contacts[0].Email = "dana@example.com"
	assertField(t, "divorce.attorneyContacts[0].phone")

	doc.Divorce.Contacts[0].Phone = "555-0100"
	assertField(t, "divorce.support.startDateISO")

	doc.Divorce.Support.StartDate = MustParseDate("2024-03-01")
	assertField(t, "divorce.support.requestedAlimonyMonthly")

	alimony := M(800)
	doc.Divorce.Support.RequestedAlimonyMonthly = &alimony
	assertField(t, "divorce.support.requestedChildSupportMonthly")

	child := M(0)
	doc.Divorce.Support.RequestedChildSupportMonthly = &child
	assertAction(t, GuidedBuildDisclosures)

	doc.Divorce.Disclosures = []Disclosure{
		{ID: "d1", Label: "Tax returns"},
		{ID: "d2"},
		{ID: "d3", Label: "Bank statements"},
	}
	assertField(t, "divorce.disclosures[1].label")

	doc.Divorce.Disclosures[1].Label = "Pay stubs"
	if g := GuidedNext(doc); g.Kind != GuidanceDone {
		t.Fatalf("GuidedNext = %+v, want done", g)
	}
}

func TestGuidedNext_OnlyLooksAtFirstContact(t *testing.T) {
	var doc Document
	doc.Divorce.FilingState = "OR"
	doc.Divorce.Contacts = []Contact{
		{ID: "c1", Name: "A", Email: "a@example.com", Phone: "555-0101"},
		{ID: "c2"}, // incomplete later contacts do not block
	}
	if g := GuidedNext(doc); g.Locator != "divorce.support.startDateISO" {
		t.Errorf("GuidedNext = %+v, want support start date", g)
	}
}
