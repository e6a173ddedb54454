package organizer

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Summary holds the monthly projection of a scenario.
type Summary struct {
	Income   Money
	Expenses Money
	CashFlow Money
	NetWorth Money
}

var hundred = decimal.NewFromInt(100)

// ComputeScenarioSummary derives the monthly income, expenses, cash flow and
// net worth the document would have under the named scenario. Everything is
// recomputed from scratch on every call; there is no cached state. An
// unknown key is treated as an all-zero scenario.
func ComputeScenarioSummary(doc Document, key string) Summary {
	s := doc.Scenarios[key]

	// The raw income sum excludes support; each scenario re-adds its own
	// support figures so variants can move them independently.
	var income Money
	for _, item := range doc.Income {
		income = income.Add(item.Frequency.ToMonthly(item.Amount))
	}
	income = income.Add(s.Alimony).Add(s.ChildSupport).Add(s.ExtraIncomeMonthly)

	var housing Money
	if s.KeepHouse {
		housing = s.MortgagePayment.Add(s.PropertyTaxMonthly).Add(s.InsuranceMonthly)
	}

	var variable Money
	for _, item := range doc.Expenses {
		variable = variable.Add(item.Frequency.ToMonthly(item.Amount))
	}
	if !s.ExpenseReductionPercent.IsZero() {
		factor := decimal.NewFromInt(1).Sub(s.ExpenseReductionPercent.Div(hundred))
		variable = variable.Mul(factor)
	}
	expenses := variable.Add(housing)

	var assets Money
	for _, a := range doc.Assets {
		assets = assets.Add(a.Value)
	}
	if s.KeepHouse {
		assets = assets.Add(s.HouseValue).Sub(s.MortgageBalance)
	}
	var debts Money
	for _, l := range doc.Liabilities {
		debts = debts.Add(l.Balance)
	}

	return Summary{
		Income:   income,
		Expenses: expenses,
		CashFlow: income.Sub(expenses),
		NetWorth: assets.Sub(debts),
	}
}

// BaseSummary is the document-level aggregate: the summary of the base scenario.
func BaseSummary(doc Document) Summary {
	return ComputeScenarioSummary(doc, BaseScenarioKey)
}

// AutoBuildScenarios derives four suggested variants from the base scenario.
// The result order is part of the contract; callers consume it positionally.
func AutoBuildScenarios(base ScenarioConfig) []ScenarioConfig {
	sell := ScenarioConfig{
		Name:         "Sell House",
		KeepHouse:    false,
		Alimony:      base.Alimony,
		ChildSupport: base.ChildSupport,
	}

	refi := base
	refi.Name = "Refi"
	refi.KeepHouse = true
	refi.MortgagePayment = base.MortgagePayment.Mul(decimal.NewFromFloat(0.85)).Round().Max(M(0))
	refi.ExtraIncomeMonthly = M(0)
	refi.ExpenseReductionPercent = decimal.Zero

	trim := base
	trim.Name = "Trim 10%"
	trim.ExpenseReductionPercent = decimal.NewFromInt(10)

	side := base
	side.Name = "Side Income"
	side.ExtraIncomeMonthly = M(300)

	return []ScenarioConfig{sell, refi, trim, side}
}

// ScenarioKeys returns the scenario keys in display order: base first, the
// rest sorted.
func ScenarioKeys(doc Document) []string {
	keys := make([]string, 0, len(doc.Scenarios))
	for k := range doc.Scenarios {
		if k != BaseScenarioKey {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return append([]string{BaseScenarioKey}, keys...)
}
