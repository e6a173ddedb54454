package organizer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Action describes the follow-up a tip suggests. The advisor never executes
// actions itself; callers dispatch on the value exhaustively.
type Action int

const (
	NoAction Action = iota
	// ApplyTrim10 suggests deriving a scenario with a 10% expense trim.
	ApplyTrim10
	// ApplyRefi suggests deriving the refinance scenario variant.
	ApplyRefi
)

func (a Action) String() string {
	switch a {
	case ApplyTrim10:
		return "apply-trim10"
	case ApplyRefi:
		return "apply-refi"
	default:
		return "none"
	}
}

// Tip is one advisory, non-binding suggestion.
type Tip struct {
	ID     string
	Text   string
	Action Action
}

var (
	highAPRThreshold  = decimal.NewFromInt(15)
	housingRatioLimit = decimal.NewFromFloat(0.35)
)

// EvaluateInsights runs the fixed advisory rules against the document and
// its base aggregates. Rules fire independently, in a fixed order; the
// result is empty when the finances look healthy.
func EvaluateInsights(doc Document, monthlyIncome, monthlyExpenses, cashFlow Money) []Tip {
	var tips []Tip

	if cashFlow.IsNegative() {
		tips = append(tips, Tip{
			ID:     "trim10",
			Text:   "Cash flow is negative. Try a 10% trim to non-housing expenses.",
			Action: ApplyTrim10,
		})
	}

	for _, l := range doc.Liabilities {
		if strings.Contains(strings.ToLower(l.Name), "card") && l.Rate.GreaterThan(highAPRThreshold) {
			tips = append(tips, Tip{
				ID:   "highAPR",
				Text: "High APR credit card detected. Consider consolidating or payoff plan.",
			})
			break
		}
	}

	base := doc.Base()
	if base.KeepHouse && base.MortgagePayment.GreaterThan(monthlyIncome.Mul(housingRatioLimit)) {
		tips = append(tips, Tip{
			ID:     "housingRatio",
			Text:   "Mortgage over ~35% of income. Explore refinance or sell scenario.",
			Action: ApplyRefi,
		})
	}

	return tips
}
