package controllers

import (
	"net/http"
	"strconv"
	"time"

	"calorietrack/services"
	"calorietrack/utils"

	"github.com/gin-gonic/gin"
)

type ChartController struct {
	Agg    *services.AggregateService
	Mass   *services.MassService
	Budget *services.BudgetService
}

func NewChartController(agg *services.AggregateService, mass *services.MassService, budget *services.BudgetService) *ChartController {
	return &ChartController{Agg: agg, Mass: mass, Budget: budget}
}

// GET /summary/today — today's calorie/macro totals, zero-valued when empty.
func (h *ChartController) SummaryToday(c *gin.Context) {
	sum, err := h.Agg.SumForToday(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sum)
}

// GET /summary/by-date — per-day calorie totals, ascending.
func (h *ChartController) SummaryByDate(c *gin.Context) {
	rows, err := h.Agg.SumByDate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /summary/weekly — last 7 days against the calorie budget.
func (h *ChartController) Weekly(c *gin.Context) {
	profile, err := h.Budget.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	days, err := h.Agg.WeeklyOverview(c.Request.Context(), profile.CalorieBudget)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, days)
}

// GET /charts/mass?days_ahead=7 — mass samples, fitted trend series and the
// projected future points.
func (h *ChartController) MassTrend(c *gin.Context) {
	daysAhead := queryInt(c, "days_ahead", 7)

	masses, err := h.Mass.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	points := make([]utils.Point, 0, len(masses))
	for _, m := range masses {
		points = append(points, utils.Point{X: float64(m.MeasuredAt.UnixMilli()), Y: m.Value})
	}

	c.JSON(http.StatusOK, gin.H{
		"points":     points,
		"trend":      utils.TrendSeries(points, daysAhead),
		"projection": utils.Project(points, daysAhead, utils.OneDayMillis),
	})
}

// GET /charts/calories?days_ahead=7 — per-day calorie series with trend.
func (h *ChartController) CalorieTrend(c *gin.Context) {
	daysAhead := queryInt(c, "days_ahead", 7)

	byDate, err := h.Agg.SumByDate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	points := make([]utils.Point, 0, len(byDate))
	for _, d := range byDate {
		t, err := time.ParseInLocation("2006-01-02", d.Date, time.Local)
		if err != nil {
			continue
		}
		points = append(points, utils.Point{X: float64(t.UnixMilli()), Y: float64(d.Calorie)})
	}

	c.JSON(http.StatusOK, gin.H{
		"points":     points,
		"trend":      utils.TrendSeries(points, daysAhead),
		"projection": utils.Project(points, daysAhead, utils.OneDayMillis),
	})
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(def)))
	if err != nil || v < 0 {
		return def
	}
	return v
}
