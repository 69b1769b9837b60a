package strategy

import (
	"testing"

	"pitwall/internal/prices"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamBudgetWorkedExample(t *testing.T) {
	drivers := prices.Table{
		"A": decimal.NewFromFloat(10.0),
		"B": decimal.NewFromFloat(15.0),
	}
	constructors := prices.Table{
		"X": decimal.NewFromFloat(20.0),
	}
	roster := Roster{Drivers: []string{"A", "B"}, Constructors: []string{"X"}}

	budget := TeamBudget(drivers, constructors, roster)
	assert.Equal(t, "45.0", FormatMillions(budget))
	assert.Equal(t, "55.0", FormatMillions(Remaining(budget)))
}

func TestRosterCostMissingNameCountsZero(t *testing.T) {
	table := prices.Table{"Known": decimal.NewFromFloat(12.5)}
	cost := RosterCost(table, []string{"Known", "Typo Driver"})
	assert.Equal(t, "12.5", FormatMillions(cost))
	assert.Equal(t, []string{"Typo Driver"}, MissingNames(table, []string{"Known", "Typo Driver"}))
}

func TestRemainingUnclamped(t *testing.T) {
	budget := decimal.NewFromFloat(103.5)
	assert.Equal(t, "-3.5", FormatMillions(Remaining(budget)))
}

func TestEditedPricesOverrideDefaults(t *testing.T) {
	store := prices.NewStore()
	require.NoError(t, store.SetDriverPrice("Lando Norris", decimal.NewFromFloat(31.2)))

	roster := Roster{
		Drivers:      []string{"Lando Norris", "Max Verstappen", "Charles Leclerc", "Lewis Hamilton", "Oscar Piastri"},
		Constructors: []string{"McLaren", "Ferrari"},
	}
	budget := TeamBudget(store.Drivers(), store.Constructors(), roster)
	// 31.2 + 28.4 + 25.9 + 24.2 + 23.0 + 30.0 + 27.1
	assert.Equal(t, "189.8", FormatMillions(budget))
}

func TestFormatMillionsAlwaysOneDecimal(t *testing.T) {
	assert.Equal(t, "6.0", FormatMillions(decimal.NewFromInt(6)))
	assert.Equal(t, "7.2", FormatMillions(decimal.NewFromFloat(7.2)))
	assert.Equal(t, "0.0", FormatMillions(decimal.Zero))
}
