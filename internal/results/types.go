// Package results aggregates per-round race classifications for a season.
package results

import (
	"context"
	"sort"
	"time"
)

// Event is one scheduled round of a season.
type Event struct {
	Round int
	Name  string
	Date  time.Time
}

// Row is one participant's final classification in a round's race session.
type Row struct {
	Driver   string
	Team     string
	Position int
	Points   float64
	Round    int
}

// Dataset is the concatenation of all successfully loaded rounds of a season.
// Zero rows is a valid "no data yet" state, not an error.
type Dataset struct {
	Season        int
	Rows          []Row
	LoadedRounds  []int
	SkippedRounds []int
}

func (d Dataset) Empty() bool { return len(d.Rows) == 0 }

// Total is an aggregated points figure for one driver or team.
type Total struct {
	Name   string
	Points float64
}

// DriverTotals sums points per driver, ordered by descending points, then
// name for a stable listing.
func (d Dataset) DriverTotals() []Total {
	return totals(d.Rows, func(r Row) string { return r.Driver })
}

// TeamTotals sums points per team.
func (d Dataset) TeamTotals() []Total {
	return totals(d.Rows, func(r Row) string { return r.Team })
}

func totals(rows []Row, key func(Row) string) []Total {
	sums := make(map[string]float64)
	for _, r := range rows {
		sums[key(r)] += r.Points
	}
	out := make([]Total, 0, len(sums))
	for name, pts := range sums {
		out = append(out, Total{Name: name, Points: pts})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Source is the upstream race results provider.
type Source interface {
	Schedule(ctx context.Context, season int) ([]Event, error)
	RaceClassification(ctx context.Context, season, round int) ([]Row, error)
}

// RoundCache persists settled round classifications so they survive process
// restarts. Implementations treat an absent round as (nil, false, nil).
type RoundCache interface {
	Get(ctx context.Context, season, round int) ([]Row, bool, error)
	Put(ctx context.Context, season, round int, rows []Row) error
}
