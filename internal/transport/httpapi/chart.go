package httpapi

import (
	"fmt"
	"net/http"

	"pitwall/internal/results"

	"github.com/gin-gonic/gin"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// standingsChart renders the season's point totals as two bar charts on one
// page.
func (h *handlers) standingsChart(c *gin.Context) {
	season := h.querySeason(c)
	dataset, err := h.strategy.Standings(c.Request.Context(), season)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if dataset.Empty() {
		c.JSON(http.StatusOK, gin.H{"status": "no_data", "message": "No race data available yet."})
		return
	}

	page := components.NewPage()
	page.SetPageTitle(fmt.Sprintf("F1 %d standings", dataset.Season))
	page.AddCharts(
		totalsBar(fmt.Sprintf("Driver Points %d", dataset.Season), dataset.DriverTotals()),
		totalsBar(fmt.Sprintf("Constructor Points %d", dataset.Season), dataset.TeamTotals()),
	)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func totalsBar(title string, totals []results.Total) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "1200px",
			Height: "500px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Left: "left"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 40}}),
	)
	names := make([]string, 0, len(totals))
	points := make([]opts.BarData, 0, len(totals))
	for _, t := range totals {
		names = append(names, t.Name)
		points = append(points, opts.BarData{Value: t.Points})
	}
	bar.SetXAxis(names)
	bar.AddSeries("Points", points)
	return bar
}
