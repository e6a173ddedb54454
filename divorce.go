package organizer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Deadline rule offsets, in days from the filing date. Any subset may be
// overridden through the document's deadlineRules map.
const (
	RuleFinancialDisclosureDays = "financialDisclosureDays"
	RuleInitialExchangeDays     = "initialExchangeDays"
	RuleParentingPlanDays       = "parentingPlanDays"
	RuleMediationDays           = "mediationDays"
)

// RuleOffsets holds the effective day offsets for deadline generation.
type RuleOffsets struct {
	FinancialDisclosureDays int
	InitialExchangeDays     int
	ParentingPlanDays       int
	MediationDays           int
}

// DefaultRuleOffsets returns the built-in offsets. These are planning
// defaults, not a statement of any jurisdiction's actual rules.
func DefaultRuleOffsets() RuleOffsets {
	return RuleOffsets{
		FinancialDisclosureDays: 30,
		InitialExchangeDays:     45,
		ParentingPlanDays:       20,
		MediationDays:           60,
	}
}

// apply overlays the known keys of the override map; unknown keys are ignored.
func (r RuleOffsets) apply(rules map[string]int) RuleOffsets {
	for key, days := range rules {
		switch key {
		case RuleFinancialDisclosureDays:
			r.FinancialDisclosureDays = days
		case RuleInitialExchangeDays:
			r.InitialExchangeDays = days
		case RuleParentingPlanDays:
			r.ParentingPlanDays = days
		case RuleMediationDays:
			r.MediationDays = days
		}
	}
	return r
}

// ComputeDeadlines produces the case deadlines for a filing date. A zero
// filing date means the case is being planned from today. When there are no
// children the parenting plan item is emitted at the filing date already
// done: an explicit "not applicable" encoding. The mediation conference only
// applies to contested cases. Ids are assigned by the caller.
func ComputeDeadlines(filing Date, contested, hasChildren bool, rules map[string]int) []Deadline {
	if filing.IsZero() {
		filing = Today()
	}
	offsets := DefaultRuleOffsets().apply(rules)

	parentingDays := 0
	if hasChildren {
		parentingDays = offsets.ParentingPlanDays
	}
	items := []Deadline{
		{Label: "Financial disclosure due", Date: filing.Add(offsets.FinancialDisclosureDays)},
		{Label: "Initial disclosures exchange", Date: filing.Add(offsets.InitialExchangeDays)},
		{Label: "Parenting plan draft", Date: filing.Add(parentingDays), Done: !hasChildren},
	}
	if contested {
		items = append(items, Deadline{Label: "Mediation/settlement conference", Date: filing.Add(offsets.MediationDays)})
	}
	return items
}

// DefaultDisclosures returns the standard financial-disclosure checklist.
// Ids are assigned by the caller; equal input yields list-equal output.
func DefaultDisclosures(hasChildren bool) []Disclosure {
	items := []Disclosure{
		{Label: "Income documentation (pay stubs / 1099s)"},
		{Label: "Tax returns (3 years)"},
		{Label: "Bank statements (12 months)"},
		{Label: "Retirement/investment statements (12 months)"},
		{Label: "Debt statements (12 months)"},
	}
	if hasChildren {
		items = append(items, Disclosure{Label: "Childcare/education expenses"})
	}
	return items
}

// NextDeadline returns the earliest not-done deadline strictly after today,
// or false when none is pending.
func NextDeadline(doc Document, today Date) (Deadline, bool) {
	var next Deadline
	found := false
	for _, d := range doc.Divorce.Deadlines {
		if d.Done || d.Date.IsZero() || !d.Date.After(today) {
			continue
		}
		if !found || d.Date.Before(next.Date) {
			next = d
			found = true
		}
	}
	return next, found
}

// DisclosureProgress returns the percentage of disclosures marked provided,
// rounded to the nearest integer. An empty checklist is 0.
func DisclosureProgress(doc Document) int {
	total := len(doc.Divorce.Disclosures)
	if total == 0 {
		return 0
	}
	provided := 0
	for _, d := range doc.Divorce.Disclosures {
		if d.Provided {
			provided++
		}
	}
	pct := decimal.NewFromInt(int64(provided * 100)).Div(decimal.NewFromInt(int64(total)))
	return int(pct.Round(0).IntPart())
}

// IsContested reports whether the case type marks a contested case.
// Case types are lower-cased at ingestion.
func (d Divorce) IsContested() bool {
	return strings.Contains(d.CaseType, "contested")
}

// HasChildren reports whether the case involves children.
func (d Divorce) HasChildren() bool { return d.Children > 0 }
