package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"pitwall/internal/prices"
	"pitwall/internal/strategy"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type handlers struct {
	prices   *prices.Store
	strategy *strategy.Service
	season   int
}

func (h *handlers) register(r *gin.Engine) {
	r.GET("/", h.index)
	api := r.Group("/api")
	api.GET("/prices", h.listPrices)
	api.PUT("/prices/drivers/:name", h.setDriverPrice)
	api.PUT("/prices/constructors/:name", h.setConstructorPrice)
	api.GET("/standings", h.standings)
	api.GET("/standings/chart", h.standingsChart)
	api.POST("/strategy", h.recommend)
	api.POST("/results/invalidate", h.invalidate)
}

type priceRow struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

func (h *handlers) listPrices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"drivers":      priceRows(h.prices.DriverNames(), h.prices.Drivers()),
		"constructors": priceRows(h.prices.ConstructorNames(), h.prices.Constructors()),
	})
}

func priceRows(order []string, table prices.Table) []priceRow {
	rows := make([]priceRow, 0, len(order))
	for _, name := range order {
		rows = append(rows, priceRow{Name: name, Price: strategy.FormatMillions(table[name])})
	}
	return rows
}

type setPriceRequest struct {
	Price float64 `json:"price"`
}

func (h *handlers) setDriverPrice(c *gin.Context) {
	h.setPrice(c, h.prices.SetDriverPrice)
}

func (h *handlers) setConstructorPrice(c *gin.Context) {
	h.setPrice(c, h.prices.SetConstructorPrice)
}

func (h *handlers) setPrice(c *gin.Context, set func(string, decimal.Decimal) error) {
	var req setPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be {\"price\": <number>}"})
		return
	}
	name := c.Param("name")
	if err := set(name, decimal.NewFromFloat(req.Price)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "name": name})
}

type totalRow struct {
	Name   string  `json:"name"`
	Points float64 `json:"points"`
}

func (h *handlers) standings(c *gin.Context) {
	season := h.querySeason(c)
	dataset, err := h.strategy.Standings(c.Request.Context(), season)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	drivers := make([]totalRow, 0)
	for _, t := range dataset.DriverTotals() {
		drivers = append(drivers, totalRow{Name: t.Name, Points: t.Points})
	}
	constructors := make([]totalRow, 0)
	for _, t := range dataset.TeamTotals() {
		constructors = append(constructors, totalRow{Name: t.Name, Points: t.Points})
	}
	c.JSON(http.StatusOK, gin.H{
		"season":         dataset.Season,
		"no_data":        dataset.Empty(),
		"drivers":        drivers,
		"constructors":   constructors,
		"loaded_rounds":  dataset.LoadedRounds,
		"skipped_rounds": dataset.SkippedRounds,
	})
}

func (h *handlers) recommend(c *gin.Context) {
	var req strategy.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	req.FreeTransfers = clampTransfers(req.FreeTransfers)

	rec, err := h.strategy.Recommend(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "ok", "recommendation": rec})
	case errors.Is(err, strategy.ErrRosterSize):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, strategy.ErrNoData):
		// Advisory, not a failure: the season simply has no completed rounds.
		c.JSON(http.StatusOK, gin.H{"status": "no_data", "message": "No race data available yet."})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}

func (h *handlers) invalidate(c *gin.Context) {
	season := h.querySeason(c)
	h.strategy.InvalidateSeason(season)
	c.JSON(http.StatusOK, gin.H{"status": "ok", "season": h.strategy.Season(season)})
}

func (h *handlers) querySeason(c *gin.Context) int {
	raw := c.Query("season")
	if raw == "" {
		return h.season
	}
	season, err := strconv.Atoi(raw)
	if err != nil {
		return h.season
	}
	return season
}

// The UI bounds the free transfer input to 0..3; the API enforces the same.
func clampTransfers(n int) int {
	if n < 0 {
		return 0
	}
	if n > 3 {
		return 3
	}
	return n
}
