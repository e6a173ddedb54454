package organizer

import "fmt"

// Step identifies a position in the guided case workflow.
type Step string

const (
	StepBasics      Step = "basics"
	StepDeadlines   Step = "deadlines"
	StepDisclosures Step = "disclosures"
	StepCheckoff    Step = "checkoff"
)

// Steps is the ordered guided workflow.
var Steps = []struct {
	ID          Step
	Title       string
	Description string
}{
	{StepBasics, "Enter basics", "Case type, state, and children"},
	{StepDeadlines, "Build deadlines", "Auto-generate key deadlines"},
	{StepDisclosures, "Build disclosures", "Create initial disclosure checklist"},
	{StepCheckoff, "Check off items", "Mark disclosures as provided"},
}

func (s Step) index() int {
	for i, step := range Steps {
		if step.ID == s {
			return i
		}
	}
	return 0
}

func (s Step) valid() bool {
	for _, step := range Steps {
		if step.ID == s {
			return true
		}
	}
	return false
}

// NextStep returns the following step, clamped at the end of the sequence.
func NextStep(s Step) Step {
	i := s.index()
	if i+1 < len(Steps) {
		return Steps[i+1].ID
	}
	return Steps[len(Steps)-1].ID
}

// PrevStep returns the preceding step, clamped at the start of the sequence.
func PrevStep(s Step) Step {
	i := s.index()
	if i > 0 {
		return Steps[i-1].ID
	}
	return Steps[0].ID
}

// GuidanceKind classifies what GuidedNext asks for.
type GuidanceKind int

const (
	// GuidanceField points at a missing input field.
	GuidanceField GuidanceKind = iota
	// GuidanceAction asks the caller to run an action.
	GuidanceAction
	// GuidanceDone means nothing is missing.
	GuidanceDone
)

// GuidedAction is the closed set of actions GuidedNext can request.
// Execution is always the caller's job.
type GuidedAction int

const (
	GuidedNone GuidedAction = iota
	GuidedAddContact
	GuidedBuildDisclosures
)

// Guidance describes the next required input of the case sub-document.
type Guidance struct {
	Kind    GuidanceKind
	Label   string
	Locator string // field path for Kind == GuidanceField
	Action  GuidedAction
}

func field(label, locator string) Guidance {
	return Guidance{Kind: GuidanceField, Label: label, Locator: locator}
}

// GuidedNext resolves what input is still missing across the case
// sub-document, by fixed priority: first unmet condition wins. It never
// mutates the document; it only describes what is missing.
func GuidedNext(doc Document) Guidance {
	d := doc.Divorce

	if d.FilingState == "" {
		return field("Enter the filing state", "divorce.filingState")
	}
	if len(d.Contacts) == 0 {
		return Guidance{Kind: GuidanceAction, Label: "Add a contact", Action: GuidedAddContact}
	}
	first := d.Contacts[0]
	switch {
	case first.Name == "":
		return field("Enter the first contact's name", "divorce.attorneyContacts[0].name")
	case first.Email == "":
		return field("Enter the first contact's email", "divorce.attorneyContacts[0].email")
	case first.Phone == "":
		return field("Enter the first contact's phone", "divorce.attorneyContacts[0].phone")
	}
	if d.Support.StartDate.IsZero() {
		return field("Enter the support start date", "divorce.support.startDateISO")
	}
	if d.Support.RequestedAlimonyMonthly == nil {
		return field("Enter the requested monthly alimony", "divorce.support.requestedAlimonyMonthly")
	}
	if d.Support.RequestedChildSupportMonthly == nil {
		return field("Enter the requested monthly child support", "divorce.support.requestedChildSupportMonthly")
	}
	if len(d.Disclosures) == 0 {
		return Guidance{Kind: GuidanceAction, Label: "Build disclosures", Action: GuidedBuildDisclosures}
	}
	for i, disc := range d.Disclosures {
		if disc.Label == "" {
			return field("Name the disclosure item", fmt.Sprintf("divorce.disclosures[%d].label", i))
		}
	}
	return Guidance{Kind: GuidanceDone, Label: "All guided inputs are complete"}
}
