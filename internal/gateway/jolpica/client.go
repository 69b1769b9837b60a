// Package jolpica consumes the Jolpica (Ergast-compatible) F1 REST API for
// season schedules and race classifications.
package jolpica

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pitwall/internal/config"
	"pitwall/internal/pkg/text"
	"pitwall/internal/results"

	"github.com/tidwall/gjson"
)

// Client wraps the subset of the Jolpica REST API pitwall needs.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a results provider client from configuration.
func NewClient(cfg config.ResultsConfig) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if raw == "" {
		return nil, fmt.Errorf("results.base_url cannot be empty")
	}
	if _, err := url.Parse(raw); err != nil {
		return nil, fmt.Errorf("parsing results.base_url failed: %w", err)
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    raw,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// SetHTTPClient sets the HTTP client for testing.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Schedule returns the full event schedule for a season.
func (c *Client) Schedule(ctx context.Context, season int) ([]results.Event, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/%d.json?limit=100", c.baseURL, season))
	if err != nil {
		return nil, err
	}
	races := gjson.GetBytes(body, "MRData.RaceTable.Races")
	if !races.Exists() {
		return nil, fmt.Errorf("season %d: schedule payload missing RaceTable", season)
	}
	var events []results.Event
	var parseErr error
	races.ForEach(func(_, race gjson.Result) bool {
		round := int(race.Get("round").Int())
		// Dates are calendar days; the completed-round boundary compares
		// them timezone-naive, so the time component is ignored on purpose.
		date, err := time.Parse("2006-01-02", race.Get("date").String())
		if err != nil {
			parseErr = fmt.Errorf("season %d round %d: bad date %q", season, round, race.Get("date").String())
			return false
		}
		events = append(events, results.Event{
			Round: round,
			Name:  race.Get("raceName").String(),
			Date:  date,
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return events, nil
}

// RaceClassification returns the final race standings of one round.
func (c *Client) RaceClassification(ctx context.Context, season, round int) ([]results.Row, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/%d/%d/results.json?limit=100", c.baseURL, season, round))
	if err != nil {
		return nil, err
	}
	classification := gjson.GetBytes(body, "MRData.RaceTable.Races.0.Results")
	if !classification.Exists() {
		return nil, fmt.Errorf("season %d round %d: no race classification", season, round)
	}
	var rows []results.Row
	classification.ForEach(func(_, res gjson.Result) bool {
		given := res.Get("Driver.givenName").String()
		family := res.Get("Driver.familyName").String()
		rows = append(rows, results.Row{
			Driver:   strings.TrimSpace(given + " " + family),
			Team:     res.Get("Constructor.name").String(),
			Position: int(res.Get("position").Int()),
			Points:   res.Get("points").Float(),
		})
		return true
	})
	if len(rows) == 0 {
		return nil, fmt.Errorf("season %d round %d: empty race classification", season, round)
	}
	return rows, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		snippet := text.Truncate(strings.TrimSpace(string(body)), 256)
		return nil, fmt.Errorf("GET %s: status=%d: %s", rawURL, resp.StatusCode, snippet)
	}
	return io.ReadAll(resp.Body)
}
