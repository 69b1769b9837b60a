package results

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu            sync.Mutex
	schedule      []Event
	scheduleErr   error
	scheduleCalls int
	roundRows     map[int][]Row
	roundErrs     map[int]error
	roundCalls    map[int]int
}

func (f *fakeSource) Schedule(ctx context.Context, season int) ([]Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduleCalls++
	if f.scheduleErr != nil {
		return nil, f.scheduleErr
	}
	return f.schedule, nil
}

func (f *fakeSource) RaceClassification(ctx context.Context, season, round int) ([]Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.roundCalls == nil {
		f.roundCalls = make(map[int]int)
	}
	f.roundCalls[round]++
	if err := f.roundErrs[round]; err != nil {
		return nil, err
	}
	return f.roundRows[round], nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testSchedule() []Event {
	return []Event{
		{Round: 1, Name: "Australian Grand Prix", Date: day(2025, time.March, 16)},
		{Round: 2, Name: "Chinese Grand Prix", Date: day(2025, time.March, 23)},
		{Round: 3, Name: "Japanese Grand Prix", Date: day(2025, time.April, 6)},
	}
}

func TestAggregateFiltersCompletedRoundsStrictly(t *testing.T) {
	src := &fakeSource{
		schedule: testSchedule(),
		roundRows: map[int][]Row{
			1: {{Driver: "A", Team: "T", Position: 1, Points: 25}},
			2: {{Driver: "B", Team: "T", Position: 1, Points: 25}},
		},
	}
	// "Now" is exactly round 2's date: round 2 is not completed yet.
	agg := NewAggregator(src, WithClock(fixedClock(day(2025, time.March, 23))))

	ds, err := agg.Aggregate(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ds.LoadedRounds)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, 1, ds.Rows[0].Round)
}

func TestAggregateSkipsFailedRounds(t *testing.T) {
	src := &fakeSource{
		schedule: testSchedule(),
		roundRows: map[int][]Row{
			1: {{Driver: "A", Team: "T1", Position: 1, Points: 25}},
			3: {{Driver: "C", Team: "T3", Position: 1, Points: 25}},
		},
		roundErrs: map[int]error{2: errors.New("session data missing")},
	}
	agg := NewAggregator(src, WithClock(fixedClock(day(2025, time.May, 1))))

	ds, err := agg.Aggregate(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ds.LoadedRounds)
	assert.Equal(t, []int{2}, ds.SkippedRounds)
	assert.Len(t, ds.Rows, 2)
}

func TestAggregateAllRoundsFailingYieldsEmptyDataset(t *testing.T) {
	boom := errors.New("provider down")
	src := &fakeSource{
		schedule:  testSchedule(),
		roundErrs: map[int]error{1: boom, 2: boom, 3: boom},
	}
	agg := NewAggregator(src, WithClock(fixedClock(day(2025, time.May, 1))))

	ds, err := agg.Aggregate(context.Background(), 2025)
	require.NoError(t, err)
	assert.True(t, ds.Empty())
	assert.Empty(t, ds.LoadedRounds)
	assert.Equal(t, []int{1, 2, 3}, ds.SkippedRounds)
}

func TestAggregateMemoizedPerSeason(t *testing.T) {
	src := &fakeSource{
		schedule: testSchedule(),
		roundRows: map[int][]Row{
			1: {{Driver: "A", Team: "T", Position: 1, Points: 25}},
			2: {{Driver: "B", Team: "T", Position: 1, Points: 25}},
			3: {{Driver: "C", Team: "T", Position: 1, Points: 25}},
		},
	}
	agg := NewAggregator(src, WithClock(fixedClock(day(2025, time.May, 1))))

	first, err := agg.Aggregate(context.Background(), 2025)
	require.NoError(t, err)
	second, err := agg.Aggregate(context.Background(), 2025)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.scheduleCalls)
	for round, calls := range src.roundCalls {
		assert.Equalf(t, 1, calls, "round %d fetched more than once", round)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	src := &fakeSource{
		schedule: testSchedule()[:1],
		roundRows: map[int][]Row{
			1: {{Driver: "A", Team: "T", Position: 1, Points: 25}},
		},
	}
	agg := NewAggregator(src, WithClock(fixedClock(day(2025, time.May, 1))))

	_, err := agg.Aggregate(context.Background(), 2025)
	require.NoError(t, err)
	agg.Invalidate(2025)
	_, err = agg.Aggregate(context.Background(), 2025)
	require.NoError(t, err)

	assert.Equal(t, 2, src.scheduleCalls)
	assert.Equal(t, 2, src.roundCalls[1])
}

func TestAggregateScheduleFailureIsAnError(t *testing.T) {
	src := &fakeSource{scheduleErr: errors.New("network unreachable")}
	agg := NewAggregator(src)

	_, err := agg.Aggregate(context.Background(), 2025)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network unreachable")
}

type fakeRoundCache struct {
	mu   sync.Mutex
	data map[[2]int][]Row
	gets int
	puts int
}

func (f *fakeRoundCache) Get(ctx context.Context, season, round int) ([]Row, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	rows, ok := f.data[[2]int{season, round}]
	return rows, ok, nil
}

func (f *fakeRoundCache) Put(ctx context.Context, season, round int, rows []Row) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	if f.data == nil {
		f.data = make(map[[2]int][]Row)
	}
	f.data[[2]int{season, round}] = rows
	return nil
}

func TestAggregatePrefersRoundCache(t *testing.T) {
	cached := &fakeRoundCache{data: map[[2]int][]Row{
		{2025, 1}: {{Driver: "Cached", Team: "T", Position: 1, Points: 25}},
	}}
	src := &fakeSource{schedule: testSchedule()[:1]}
	agg := NewAggregator(src,
		WithClock(fixedClock(day(2025, time.May, 1))),
		WithRoundCache(cached),
	)

	ds, err := agg.Aggregate(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "Cached", ds.Rows[0].Driver)
	// The network source is never consulted for a cached round.
	assert.Empty(t, src.roundCalls)
}

func TestDatasetTotals(t *testing.T) {
	ds := Dataset{Rows: []Row{
		{Driver: "A", Team: "T1", Points: 25},
		{Driver: "B", Team: "T1", Points: 18},
		{Driver: "A", Team: "T1", Points: 10},
		{Driver: "C", Team: "T2", Points: 18},
	}}
	drivers := ds.DriverTotals()
	require.Len(t, drivers, 3)
	assert.Equal(t, Total{Name: "A", Points: 35}, drivers[0])
	// Equal points tie-break on name.
	assert.Equal(t, Total{Name: "B", Points: 18}, drivers[1])
	assert.Equal(t, Total{Name: "C", Points: 18}, drivers[2])

	teams := ds.TeamTotals()
	require.Len(t, teams, 2)
	assert.Equal(t, Total{Name: "T1", Points: 53}, teams[0])
}
