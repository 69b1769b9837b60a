package jolpica

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitwall/internal/config"
)

const scheduleBody = `{
  "MRData": {
    "RaceTable": {
      "season": "2025",
      "Races": [
        {"round": "1", "raceName": "Australian Grand Prix", "date": "2025-03-16"},
        {"round": "2", "raceName": "Chinese Grand Prix", "date": "2025-03-23"}
      ]
    }
  }
}`

const resultsBody = `{
  "MRData": {
    "RaceTable": {
      "Races": [
        {
          "round": "1",
          "Results": [
            {
              "position": "1",
              "points": "25",
              "Driver": {"givenName": "Lando", "familyName": "Norris"},
              "Constructor": {"name": "McLaren"}
            },
            {
              "position": "2",
              "points": "18",
              "Driver": {"givenName": "Max", "familyName": "Verstappen"},
              "Constructor": {"name": "Red Bull Racing"}
            }
          ]
        }
      ]
    }
  }
}`

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(config.ResultsConfig{BaseURL: srv.URL, TimeoutSeconds: 5})
	require.NoError(t, err)
	client.SetHTTPClient(srv.Client())
	return client
}

func TestSchedule(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(scheduleBody))
	}))

	events, err := client.Schedule(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, "/2025.json", gotPath)
	require.Len(t, events, 2)
	assert.Equal(t, 1, events[0].Round)
	assert.Equal(t, "Australian Grand Prix", events[0].Name)
	assert.Equal(t, time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC), events[0].Date)
	assert.Equal(t, 2, events[1].Round)
}

func TestScheduleBadDate(t *testing.T) {
	body := `{"MRData":{"RaceTable":{"Races":[{"round":"1","raceName":"X","date":"yesterday"}]}}}`
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))

	_, err := client.Schedule(context.Background(), 2025)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad date")
}

func TestRaceClassification(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(resultsBody))
	}))

	rows, err := client.RaceClassification(context.Background(), 2025, 1)
	require.NoError(t, err)
	assert.Equal(t, "/2025/1/results.json", gotPath)
	require.Len(t, rows, 2)
	assert.Equal(t, "Lando Norris", rows[0].Driver)
	assert.Equal(t, "McLaren", rows[0].Team)
	assert.Equal(t, 1, rows[0].Position)
	assert.Equal(t, 25.0, rows[0].Points)
	assert.Equal(t, "Max Verstappen", rows[1].Driver)
}

func TestRaceClassificationEmpty(t *testing.T) {
	body := `{"MRData":{"RaceTable":{"Races":[]}}}`
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))

	_, err := client.RaceClassification(context.Background(), 2025, 9)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no race classification")
}

func TestNon200StatusIsAnError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))

	_, err := client.Schedule(context.Background(), 2025)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestNewClientRejectsEmptyBaseURL(t *testing.T) {
	_, err := NewClient(config.ResultsConfig{BaseURL: "  "})
	require.Error(t, err)
}
