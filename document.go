package organizer

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// BaseScenarioKey is the distinguished scenario key that always exists.
const BaseScenarioKey = "base"

// Profile holds the basic identity fields used on reports.
type Profile struct {
	FullName           string `json:"fullName"`
	Email              string `json:"email"`
	Jurisdiction       string `json:"jurisdiction"`
	DisclaimerAccepted bool   `json:"disclaimerAccepted"`
}

// ChecklistItem is one document-gathering task.
type ChecklistItem struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Done     bool   `json:"done"`
}

// AssetItem is something owned.
type AssetItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value Money  `json:"value"`
	Notes string `json:"notes,omitempty"`
}

// LiabilityItem is something owed.
type LiabilityItem struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Balance Money           `json:"balance"`
	Rate    decimal.Decimal `json:"rate"` // annual percentage rate
	Payment Money           `json:"payment"`
	Notes   string          `json:"notes,omitempty"`
}

// FlowItem is an income or expense entry recurring at a frequency.
type FlowItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    Money     `json:"amount"`
	Frequency Frequency `json:"frequency"`
}

// ScenarioConfig is a named hypothetical variant of housing and support
// assumptions used to project alternate financial outcomes.
type ScenarioConfig struct {
	Name                    string          `json:"name"`
	Alimony                 Money           `json:"alimony"`
	ChildSupport            Money           `json:"childSupport"`
	KeepHouse               bool            `json:"keepHouse"`
	HouseValue              Money           `json:"houseValue"`
	MortgageBalance         Money           `json:"mortgageBalance"`
	MortgagePayment         Money           `json:"mortgagePayment"`
	PropertyTaxMonthly      Money           `json:"propertyTaxMonthly"`
	InsuranceMonthly        Money           `json:"insuranceMonthly"`
	ExtraIncomeMonthly      Money           `json:"extraIncomeMonthly,omitempty"`
	ExpenseReductionPercent decimal.Decimal `json:"expenseReductionPercent,omitempty"`
}

// Contact is an attorney, paralegal or mediator involved in the case.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"` // lower-cased at ingestion
}

// Deadline is a dated case milestone.
type Deadline struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Date  Date   `json:"dateISO"`
	Done  bool   `json:"done"`
}

// Disclosure is one item of the financial-disclosure checklist.
type Disclosure struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Provided bool   `json:"provided"`
	Notes    string `json:"notes,omitempty"`
}

// Support holds the user-entered support requests. The requested amounts are
// pointers: nil means "not entered yet", distinct from an explicit zero.
type Support struct {
	RequestedAlimonyMonthly      *Money `json:"requestedAlimonyMonthly,omitempty"`
	RequestedChildSupportMonthly *Money `json:"requestedChildSupportMonthly,omitempty"`
	StartDate                    Date   `json:"startDateISO,omitempty"`
}

// Divorce is the case sub-document.
type Divorce struct {
	CaseType      string         `json:"caseType"` // lower-cased at ingestion
	FilingState   string         `json:"filingState"`
	Children      int            `json:"children"`
	Contacts      []Contact      `json:"attorneyContacts"`
	Deadlines     []Deadline     `json:"deadlines"`
	Disclosures   []Disclosure   `json:"disclosures"`
	Support       Support        `json:"support"`
	DeadlineRules map[string]int `json:"deadlineRules,omitempty"`
	WizardStep    Step           `json:"wizardStep"`
}

// Document is the single root value holding all user-entered financial and
// case data. It is immutable once committed: every change produces a new
// Document through Store.Set.
type Document struct {
	Profile     Profile                   `json:"profile"`
	Checklist   []ChecklistItem           `json:"checklist"`
	Assets      []AssetItem               `json:"assets"`
	Liabilities []LiabilityItem           `json:"liabilities"`
	Income      []FlowItem                `json:"income"`
	Expenses    []FlowItem                `json:"expenses"`
	Scenarios   map[string]ScenarioConfig `json:"scenarios"`
	Notes       string                    `json:"notes"`
	Divorce     Divorce                   `json:"divorce"`
}

// checklistSeed is the ready-to-use document-gathering checklist.
var checklistSeed = []struct{ label, category string }{
	{"Last 3 years of tax returns (federal & state)", "Income"},
	{"Recent pay stubs (last 3 months)", "Income"},
	{"Bank account statements (last 12 months)", "Assets"},
	{"Investment/retirement account statements (last 12 months)", "Assets"},
	{"Mortgage/HELOC statements and property deeds", "Assets"},
	{"Vehicle titles and loan statements", "Assets"},
	{"Credit card statements (last 12 months)", "Debts"},
	{"Personal/auto/student loan statements", "Debts"},
	{"Health insurance & medical expense records", "Expenses"},
	{"Childcare/school/tuition invoices", "Expenses"},
	{"Household bills (utilities, phone, internet)", "Expenses"},
	{"Business ownership docs (if applicable)", "Business"},
	{"Marriage/relationship agreements (if any)", "Legal"},
}

func defaultBaseScenario() ScenarioConfig {
	return ScenarioConfig{Name: "Current", KeepHouse: true}
}

func defaultDivorce(profile Profile) Divorce {
	return Divorce{
		CaseType:    "dissolution",
		FilingState: profile.Jurisdiction,
		Contacts:    []Contact{},
		Deadlines:   []Deadline{},
		Disclosures: []Disclosure{},
		WizardStep:  StepBasics,
	}
}

// DefaultDocument builds the initial document for a fresh session, with the
// checklist seeded and the base scenario in place. Ids come from the
// injected generator so tests can pin them.
func DefaultDocument(ids IDGenerator) Document {
	checklist := make([]ChecklistItem, 0, len(checklistSeed))
	for _, s := range checklistSeed {
		checklist = append(checklist, ChecklistItem{ID: ids.NewID(), Label: s.label, Category: s.category})
	}
	doc := Document{
		Profile:     Profile{Jurisdiction: "AZ"},
		Checklist:   checklist,
		Assets:      []AssetItem{},
		Liabilities: []LiabilityItem{},
		Income:      []FlowItem{},
		Expenses:    []FlowItem{},
		Scenarios:   map[string]ScenarioConfig{BaseScenarioKey: defaultBaseScenario()},
	}
	doc.Divorce = defaultDivorce(doc.Profile)
	return doc
}

// Reconcile repairs a loaded document into a structurally complete one:
// missing sub-trees are back-filled with their default shape, list fields
// are forced to non-nil slices, the base scenario is guaranteed, and
// out-of-domain numerics are clamped. A nil argument yields the default
// document. The fill order is fixed: profile, lists, scenarios, divorce.
func Reconcile(loaded *Document, ids IDGenerator) Document {
	if loaded == nil {
		return DefaultDocument(ids)
	}
	doc := loaded.Clone()

	if doc.Checklist == nil {
		doc.Checklist = []ChecklistItem{}
	}
	if doc.Assets == nil {
		doc.Assets = []AssetItem{}
	}
	if doc.Liabilities == nil {
		doc.Liabilities = []LiabilityItem{}
	}
	if doc.Income == nil {
		doc.Income = []FlowItem{}
	}
	if doc.Expenses == nil {
		doc.Expenses = []FlowItem{}
	}

	if doc.Scenarios == nil {
		doc.Scenarios = map[string]ScenarioConfig{}
	}
	if _, ok := doc.Scenarios[BaseScenarioKey]; !ok {
		doc.Scenarios[BaseScenarioKey] = defaultBaseScenario()
	}

	def := defaultDivorce(doc.Profile)
	d := &doc.Divorce
	if d.CaseType == "" {
		d.CaseType = def.CaseType
	}
	d.CaseType = strings.ToLower(d.CaseType)
	if d.FilingState == "" {
		d.FilingState = def.FilingState
	}
	if d.Children < 0 {
		d.Children = 0
	}
	if d.Contacts == nil {
		d.Contacts = []Contact{}
	}
	for i := range d.Contacts {
		d.Contacts[i].Role = strings.ToLower(d.Contacts[i].Role)
	}
	if d.Deadlines == nil {
		d.Deadlines = []Deadline{}
	}
	if d.Disclosures == nil {
		d.Disclosures = []Disclosure{}
	}
	if !d.WizardStep.valid() {
		d.WizardStep = StepBasics
	}
	return doc
}

// Clone returns a deep copy of the document. History snapshots and consumer
// reads always go through Clone so that no two Documents alias state.
func (doc Document) Clone() Document {
	out := doc
	out.Checklist = slices.Clone(doc.Checklist)
	out.Assets = slices.Clone(doc.Assets)
	out.Liabilities = slices.Clone(doc.Liabilities)
	out.Income = slices.Clone(doc.Income)
	out.Expenses = slices.Clone(doc.Expenses)
	if doc.Scenarios != nil {
		out.Scenarios = make(map[string]ScenarioConfig, len(doc.Scenarios))
		for k, v := range doc.Scenarios {
			out.Scenarios[k] = v
		}
	}
	out.Divorce.Contacts = slices.Clone(doc.Divorce.Contacts)
	out.Divorce.Deadlines = slices.Clone(doc.Divorce.Deadlines)
	out.Divorce.Disclosures = slices.Clone(doc.Divorce.Disclosures)
	if doc.Divorce.DeadlineRules != nil {
		out.Divorce.DeadlineRules = make(map[string]int, len(doc.Divorce.DeadlineRules))
		for k, v := range doc.Divorce.DeadlineRules {
			out.Divorce.DeadlineRules[k] = v
		}
	}
	if doc.Divorce.Support.RequestedAlimonyMonthly != nil {
		v := *doc.Divorce.Support.RequestedAlimonyMonthly
		out.Divorce.Support.RequestedAlimonyMonthly = &v
	}
	if doc.Divorce.Support.RequestedChildSupportMonthly != nil {
		v := *doc.Divorce.Support.RequestedChildSupportMonthly
		out.Divorce.Support.RequestedChildSupportMonthly = &v
	}
	return out
}

// Base returns the base scenario configuration.
func (doc Document) Base() ScenarioConfig { return doc.Scenarios[BaseScenarioKey] }
