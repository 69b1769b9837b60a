// Package strategy turns price tables, a roster and aggregated race results
// into a fully specified prompt and an AI recommendation.
package strategy

import (
	"errors"
	"fmt"
)

const (
	RosterDrivers      = 5
	RosterConstructors = 2
)

// ErrRosterSize marks a roster that does not have exactly 5 drivers and 2
// constructors. Nothing downstream of validation runs in that case.
var ErrRosterSize = errors.New("roster must have exactly 5 drivers and 2 constructors")

// ErrNoData marks a season with no completed-round results yet. It is an
// advisory, distinct from a failure.
var ErrNoData = errors.New("no race data available yet")

// Roster is the user's current team.
type Roster struct {
	Drivers      []string `json:"drivers"`
	Constructors []string `json:"constructors"`
}

// Validate enforces the exact 5/2 shape with distinct names.
func (r Roster) Validate() error {
	if len(r.Drivers) != RosterDrivers {
		return fmt.Errorf("%w: got %d drivers", ErrRosterSize, len(r.Drivers))
	}
	if len(r.Constructors) != RosterConstructors {
		return fmt.Errorf("%w: got %d constructors", ErrRosterSize, len(r.Constructors))
	}
	if dup := firstDuplicate(r.Drivers); dup != "" {
		return fmt.Errorf("%w: duplicate driver %q", ErrRosterSize, dup)
	}
	if dup := firstDuplicate(r.Constructors); dup != "" {
		return fmt.Errorf("%w: duplicate constructor %q", ErrRosterSize, dup)
	}
	return nil
}

func firstDuplicate(names []string) string {
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			return n
		}
		seen[n] = true
	}
	return ""
}

// Request is one user-triggered strategy action.
type Request struct {
	Roster        Roster `json:"roster"`
	FreeTransfers int    `json:"free_transfers"`
	Season        int    `json:"season"`
}

// Recommendation carries the model's raw text plus the figures the UI shows
// alongside it. Text is displayed unparsed.
type Recommendation struct {
	ID        string `json:"id"`
	Season    int    `json:"season"`
	Provider  string `json:"provider"`
	Budget    string `json:"budget"`
	Remaining string `json:"remaining"`
	Text      string `json:"text"`
}
