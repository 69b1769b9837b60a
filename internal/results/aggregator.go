package results

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"pitwall/internal/logger"

	"golang.org/x/sync/singleflight"
)

// Aggregator fetches and concatenates race classifications for every round
// of a season whose date has passed. Results are memoized per season for the
// lifetime of the process; Invalidate drops a season so the next call
// refetches.
type Aggregator struct {
	source Source
	rounds RoundCache // optional, may be nil
	now    func() time.Time

	mu    sync.RWMutex
	memo  map[int]Dataset
	group singleflight.Group
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithRoundCache adds a persistent cache of settled rounds consulted before
// the network.
func WithRoundCache(c RoundCache) Option {
	return func(a *Aggregator) { a.rounds = c }
}

// WithClock overrides the completed-round boundary clock.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

func NewAggregator(source Source, opts ...Option) *Aggregator {
	a := &Aggregator{
		source: source,
		now:    time.Now,
		memo:   make(map[int]Dataset),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate returns the season's dataset, computing it at most once per
// season per process. Concurrent calls for the same season share one fetch.
// An individual round that fails to load is skipped and counted; only a
// schedule fetch failure aborts the whole operation.
func (a *Aggregator) Aggregate(ctx context.Context, season int) (Dataset, error) {
	a.mu.RLock()
	ds, ok := a.memo[season]
	a.mu.RUnlock()
	if ok {
		return ds, nil
	}

	v, err, _ := a.group.Do(strconv.Itoa(season), func() (any, error) {
		a.mu.RLock()
		cached, hit := a.memo[season]
		a.mu.RUnlock()
		if hit {
			return cached, nil
		}
		built, err := a.build(ctx, season)
		if err != nil {
			return Dataset{}, err
		}
		a.mu.Lock()
		a.memo[season] = built
		a.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return Dataset{}, err
	}
	return v.(Dataset), nil
}

// Invalidate drops a season from the memo so the next Aggregate refetches.
func (a *Aggregator) Invalidate(season int) {
	a.mu.Lock()
	delete(a.memo, season)
	a.mu.Unlock()
}

func (a *Aggregator) build(ctx context.Context, season int) (Dataset, error) {
	schedule, err := a.source.Schedule(ctx, season)
	if err != nil {
		return Dataset{}, fmt.Errorf("fetching %d schedule: %w", season, err)
	}
	now := a.now()
	ds := Dataset{Season: season}
	for _, event := range schedule {
		// Strictly before now: a round dated today does not count as
		// completed yet.
		if !event.Date.Before(now) {
			continue
		}
		rows, err := a.loadRound(ctx, season, event.Round)
		if err != nil {
			// Best effort: a broken round contributes nothing and must not
			// sink the rest of the season.
			logger.Warnf("round %d of %d skipped: %v", event.Round, season, err)
			ds.SkippedRounds = append(ds.SkippedRounds, event.Round)
			continue
		}
		for i := range rows {
			rows[i].Round = event.Round
		}
		ds.Rows = append(ds.Rows, rows...)
		ds.LoadedRounds = append(ds.LoadedRounds, event.Round)
	}
	logger.Infof("season %d aggregated: %d rows, %d rounds loaded, %d skipped",
		season, len(ds.Rows), len(ds.LoadedRounds), len(ds.SkippedRounds))
	return ds, nil
}

func (a *Aggregator) loadRound(ctx context.Context, season, round int) ([]Row, error) {
	if a.rounds != nil {
		rows, ok, err := a.rounds.Get(ctx, season, round)
		if err != nil {
			logger.Warnf("round cache read failed for %d/%d: %v", season, round, err)
		} else if ok {
			return rows, nil
		}
	}
	rows, err := a.source.RaceClassification(ctx, season, round)
	if err != nil {
		return nil, err
	}
	if a.rounds != nil && len(rows) > 0 {
		if err := a.rounds.Put(ctx, season, round, rows); err != nil {
			logger.Warnf("round cache write failed for %d/%d: %v", season, round, err)
		}
	}
	return rows, nil
}
