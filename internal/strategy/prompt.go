package strategy

import (
	"fmt"
	"strings"

	"pitwall/internal/prices"
	"pitwall/internal/results"
)

// PromptInput carries everything the prompt embeds. The lineup slices are
// the full current entity sets in seed order, independent of the roster.
type PromptInput struct {
	DriverPrices      prices.Table
	ConstructorPrices prices.Table
	DriverLineup      []string
	ConstructorLineup []string
	Roster            Roster
	FreeTransfers     int
	Dataset           results.Dataset
}

// BuildPrompt renders the complete strategy request document. It is pure:
// deterministic for a given input, no I/O. The document is self-contained;
// the model needs nothing beyond this text.
func BuildPrompt(in PromptInput) string {
	budget := TeamBudget(in.DriverPrices, in.ConstructorPrices, in.Roster)
	remaining := Remaining(budget)

	var b strings.Builder
	b.WriteString("You are an F1 Fantasy strategist. Based on 2025 rules, real data, and my current selections, generate the **best team strategy** for this week.\n\n")

	fmt.Fprintf(&b, "This is the current 2025 driver line up: %s.\n", strings.Join(in.DriverLineup, ", "))
	fmt.Fprintf(&b, "This is the current 2025 constructor line up: %s.\n\n", strings.Join(in.ConstructorLineup, ", "))

	b.WriteString("OBJECTIVE:\n")
	b.WriteString("- Suggest exactly **2 transfers** (2 OUT and 2 IN) -- drivers or constructors.\n")
	b.WriteString("  - OUT must be from my current team\n")
	b.WriteString("  - IN must be new players not already in the team\n")
	fmt.Fprintf(&b, "- Use **at most $%sM** for the 2 IN players (unless using Limitless chip).\n", FormatMillions(remaining))
	b.WriteString("- Recommend the best chip to use: Autopilot, Extra DRS Boost, No Negative, Wildcard, Limitless, Final Fix.\n")
	fmt.Fprintf(&b, "- Always assign **2x DRS Boost** to one of my current drivers: %s\n", strings.Join(in.Roster.Drivers, ", "))
	b.WriteString("- If using \"Extra DRS Boost\" chip:\n")
	b.WriteString("  - Apply **3x DRS** to one current driver. The best one you think. Preferably a top scoring driver and in a top team\n")
	b.WriteString("  - Apply **2x DRS** to a different current driver. The best one you think. Preferably a top scoring driver and in a top team\n")
	b.WriteString("- Never assign DRS to drivers not in the current team.\n")
	b.WriteString("- Never exceed $100M team cost unless using the Limitless chip.\n\n")

	fmt.Fprintf(&b, "Current Team Budget: $%sM\n", FormatMillions(budget))
	fmt.Fprintf(&b, "Budget Remaining for Transfers: $%sM\n", FormatMillions(remaining))
	fmt.Fprintf(&b, "Free Transfers Available: %d\n\n", in.FreeTransfers)

	b.WriteString("My Current Team:\n")
	fmt.Fprintf(&b, "Drivers: %s\n", strings.Join(in.Roster.Drivers, ", "))
	fmt.Fprintf(&b, "Constructors: %s\n\n", strings.Join(in.Roster.Constructors, ", "))

	b.WriteString("Driver Prices:\n")
	writePriceRows(&b, in.DriverLineup, in.DriverPrices)
	b.WriteString("\nConstructor Prices:\n")
	writePriceRows(&b, in.ConstructorLineup, in.ConstructorPrices)

	b.WriteString("\nDriver Points So Far:\n")
	writeTotals(&b, in.Dataset.DriverTotals())
	b.WriteString("\nConstructor Points So Far:\n")
	writeTotals(&b, in.Dataset.TeamTotals())

	b.WriteString("\nF1 Fantasy 2025 Rules:\n")
	b.WriteString(rules2025)

	b.WriteString("\nReturn your response in this exact format (nothing else):\n\n")
	b.WriteString("- 2 OUT: [Player/Team Name 1, Player/Team Name 2]\n")
	b.WriteString("- 2 IN: [Player/Team Name 1, Player/Team Name 2]\n")
	b.WriteString("- CHIP: (Autopilot, Extra DRS Boost, No Negative, Wildcard, Limitless, Final Fix)\n")
	b.WriteString("- BOOST:\n")
	b.WriteString("    - 2x: (Driver name from current team)\n")
	b.WriteString("    - 3x: (Driver name from current team -- only if using Extra DRS Boost)\n")
	b.WriteString("- REASON: (Short explanation)\n")
	return b.String()
}

func writePriceRows(b *strings.Builder, lineup []string, table prices.Table) {
	for _, name := range lineup {
		price, ok := table[name]
		if !ok {
			continue
		}
		fmt.Fprintf(b, "%s    %s\n", name, FormatMillions(price))
	}
}

func writeTotals(b *strings.Builder, totals []results.Total) {
	for _, t := range totals {
		fmt.Fprintf(b, "%s    %.1f\n", t.Name, t.Points)
	}
}
