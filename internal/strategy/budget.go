package strategy

import (
	"pitwall/internal/prices"

	"github.com/shopspring/decimal"
)

// BudgetCap is the team cost limit in millions.
var BudgetCap = decimal.NewFromInt(100)

// RosterCost sums the table prices of the given names. A name missing from
// the table contributes zero; the caller is expected to warn, not fail.
func RosterCost(table prices.Table, names []string) decimal.Decimal {
	total := decimal.Zero
	for _, name := range names {
		if price, ok := table[name]; ok {
			total = total.Add(price)
		}
	}
	return total
}

// TeamBudget is the combined cost of the selected drivers and constructors.
func TeamBudget(drivers, constructors prices.Table, roster Roster) decimal.Decimal {
	return RosterCost(drivers, roster.Drivers).Add(RosterCost(constructors, roster.Constructors))
}

// Remaining is the headroom under the cap. It goes negative when the roster
// is over budget and is deliberately not clamped.
func Remaining(budget decimal.Decimal) decimal.Decimal {
	return BudgetCap.Sub(budget)
}

// FormatMillions renders a price figure with exactly one decimal place, the
// way every budget number appears in the prompt and the UI.
func FormatMillions(d decimal.Decimal) string {
	return d.StringFixed(1)
}

// MissingNames returns the roster entries absent from the table, in roster
// order.
func MissingNames(table prices.Table, names []string) []string {
	var missing []string
	for _, name := range names {
		if _, ok := table[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
