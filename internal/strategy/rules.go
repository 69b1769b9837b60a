package strategy

// rules2025 is the literal ruleset embedded in every prompt. It is
// descriptive text for the model, not anything pitwall computes with.
const rules2025 = `
What's New for F1 Fantasy 2025:

**Transfers:**
- 2 free transfers per race week (1 transfer = 1 in and 1 out). Additional transfers = -10 points each.
- 1 unused transfer can carry over to the next race (max 2).
- If a driver races in Sprint but is replaced before GP Qualifying, the game may suggest a swap (counts toward your transfers).

**Chips:**
- Autopilot: Automatically assigns DRS Boost (2x) to the highest scoring driver in your team.
- Extra DRS Boost: Gives one driver a 3x multiplier. You can still assign 2x to another driver.
- No Negative: Negative points are nullified per scoring category.
- Wildcard: Unlimited transfers, still within $100M budget.
- Limitless: Unlimited transfers with no budget limit for one race week.
- Final Fix: One driver swap after Qualifying (2x DRS carries over to the new driver).

**DRS Boost (2x):**
- Can be assigned weekly to **one driver in your team**.
- If "Extra DRS Boost" chip is active, assign both a 2x and a 3x DRS Boost to two separate drivers.

**Pitstops:**
- Constructors earn points for fastest pitstop time:
  - <2.0s = 20 pts
  - 2.00-2.19s = 10 pts
  - 2.20-2.49s = 5 pts
  - 2.50-2.99s = 2 pts
  - >3.0s = 0 pts
- 5 pt bonus for fastest pitstop in race
- 15 pt bonus for breaking the world record (<1.8s)

**Disqualification Penalties:**
- Drivers receive -20 points for DNF/Not Classified
- Disqualified drivers only get -20
- Constructors receive an **additional** penalty:
  - Qualifying: -5
  - Race/Sprint: -10

**Qualifying Scoring:**
- Drivers score from 10 pts (P1) to 1 pt (P10), then 0, NC = -5
- Constructors total both drivers' points + Q2/Q3 bonuses

**Sprint & Race Scoring:**
- Position gains/losses, overtakes, Fastest Lap, Driver of the Day all add points
- Constructors total both drivers' scores
- DNF = -20, DSQ = -20 + constructor penalty
`
