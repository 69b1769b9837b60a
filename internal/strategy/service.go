package strategy

import (
	"context"
	"fmt"
	"strings"

	"pitwall/internal/gateway/provider"
	"pitwall/internal/logger"
	"pitwall/internal/prices"
	"pitwall/internal/results"

	"github.com/google/uuid"
)

// Aggregator is the slice of the results aggregator the service depends on.
type Aggregator interface {
	Aggregate(ctx context.Context, season int) (results.Dataset, error)
	Invalidate(season int)
}

// Service runs the whole pipeline for one user action: validate, aggregate,
// build the prompt, dispatch once.
type Service struct {
	store         *prices.Store
	agg           Aggregator
	model         provider.ModelProvider
	defaultSeason int
}

func NewService(store *prices.Store, agg Aggregator, model provider.ModelProvider, defaultSeason int) *Service {
	return &Service{store: store, agg: agg, model: model, defaultSeason: defaultSeason}
}

// Season resolves a request season, falling back to the configured default.
func (s *Service) Season(requested int) int {
	if requested > 0 {
		return requested
	}
	return s.defaultSeason
}

// Standings returns the aggregated season dataset for display.
func (s *Service) Standings(ctx context.Context, season int) (results.Dataset, error) {
	return s.agg.Aggregate(ctx, s.Season(season))
}

// InvalidateSeason drops the cached dataset for a season.
func (s *Service) InvalidateSeason(season int) {
	s.agg.Invalidate(s.Season(season))
}

// Recommend executes one strategy request. An invalid roster blocks the
// pipeline before any fetch; an empty dataset stops it with ErrNoData before
// any prompt is built; a dispatch failure is returned verbatim and nothing is
// cached, so the next user action simply tries again.
func (s *Service) Recommend(ctx context.Context, req Request) (Recommendation, error) {
	if err := req.Roster.Validate(); err != nil {
		return Recommendation{}, err
	}
	season := s.Season(req.Season)

	dataset, err := s.agg.Aggregate(ctx, season)
	if err != nil {
		return Recommendation{}, fmt.Errorf("aggregating %d results: %w", season, err)
	}
	if dataset.Empty() {
		return Recommendation{}, ErrNoData
	}

	driverTable := s.store.Drivers()
	constructorTable := s.store.Constructors()
	warnUnknown(driverTable, req.Roster.Drivers, "driver")
	warnUnknown(constructorTable, req.Roster.Constructors, "constructor")

	budget := TeamBudget(driverTable, constructorTable, req.Roster)
	prompt := BuildPrompt(PromptInput{
		DriverPrices:      driverTable,
		ConstructorPrices: constructorTable,
		DriverLineup:      s.store.DriverNames(),
		ConstructorLineup: s.store.ConstructorNames(),
		Roster:            req.Roster,
		FreeTransfers:     req.FreeTransfers,
		Dataset:           dataset,
	})

	id := uuid.NewString()
	logger.Infof("strategy request %s: season=%d budget=%s remaining=%s provider=%s",
		id, season, FormatMillions(budget), FormatMillions(Remaining(budget)), s.model.ID())
	logger.LogLLMRequest(s.model.ID(), id, prompt, "")

	text, err := s.model.Generate(ctx, prompt)
	if err != nil {
		return Recommendation{}, fmt.Errorf("strategy request failed: %w", err)
	}
	logger.LogLLMResponse(s.model.ID(), id, text)
	logger.InfoBlock(text)

	return Recommendation{
		ID:        id,
		Season:    season,
		Provider:  s.model.ID(),
		Budget:    FormatMillions(budget),
		Remaining: FormatMillions(Remaining(budget)),
		Text:      text,
	}, nil
}

// warnUnknown surfaces roster names that are absent from the price table.
// They still count as zero cost; the warning exists so a typo does not pass
// silently.
func warnUnknown(table prices.Table, names []string, kind string) {
	missing := MissingNames(table, names)
	if len(missing) == 0 {
		return
	}
	logger.Warnf("roster %ss not in price table (priced at 0): %s", kind, strings.Join(missing, ", "))
}
