package services

import (
	"context"
	"math"
	"sort"
	"time"

	"calorietrack/models"

	"gorm.io/gorm"
)

// AggregateService computes derived views over the product log. Every query
// recomputes from the full record set; nothing is cached, so results always
// reflect exactly the records present at read time.
type AggregateService struct{ db *gorm.DB }

func NewAggregateService(db *gorm.DB) *AggregateService { return &AggregateService{db: db} }

// SumNutrients totals calorie and macro grams across the given products.
// An empty slice sums to the zero-valued set.
func SumNutrients(rows []models.Product) models.NutrientSet {
	var out models.NutrientSet
	for _, p := range rows {
		out.Calorie += p.Calorie
		out.Protein += p.Protein
		out.Fats += p.Fats
		out.Carbs += p.Carbs
	}
	return out
}

// GroupCaloriesByDay buckets products by calendar day and sums calories per
// bucket, one entry per distinct day, ordered by date ascending.
func GroupCaloriesByDay(rows []models.Product) []models.DayCalorieSum {
	byDay := make(map[string]int)
	for _, p := range rows {
		byDay[p.EatenAt.Format("2006-01-02")] += p.Calorie
	}

	out := make([]models.DayCalorieSum, 0, len(byDay))
	for date, cal := range byDay {
		out = append(out, models.DayCalorieSum{Date: date, Calorie: cal})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// SumForToday totals today's records in the local timezone. A day with no
// records yields the all-zero set, not an absence.
func (s *AggregateService) SumForToday(ctx context.Context) (models.NutrientSet, error) {
	start := dayStart(time.Now())
	end := start.AddDate(0, 0, 1)

	var rows []models.Product
	if err := s.db.WithContext(ctx).
		Where("eaten_at >= ? AND eaten_at < ?", start, end).
		Find(&rows).Error; err != nil {
		return models.NutrientSet{}, err
	}
	return SumNutrients(rows), nil
}

// SumByDate recomputes the all-time per-day calorie series.
func (s *AggregateService) SumByDate(ctx context.Context) ([]models.DayCalorieSum, error) {
	var rows []models.Product
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return GroupCaloriesByDay(rows), nil
}

// Summary bundles both aggregates for push delivery.
func (s *AggregateService) Summary(ctx context.Context) (DailySummary, error) {
	today, err := s.SumForToday(ctx)
	if err != nil {
		return DailySummary{}, err
	}
	byDate, err := s.SumByDate(ctx)
	if err != nil {
		return DailySummary{}, err
	}
	return DailySummary{Today: today, ByDate: byDate}, nil
}

// WeekDay is one day of the rolling weekly overview.
type WeekDay struct {
	Date          string  `json:"date"`
	Calorie       int     `json:"calorie"`
	BudgetPercent float64 `json:"budget_percent"`
}

// WeeklyOverview reports the last seven calendar days against the calorie
// budget. Days without records appear with zero intake.
func (s *AggregateService) WeeklyOverview(ctx context.Context, budget int) ([]WeekDay, error) {
	end := dayStart(time.Now()).AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -7)

	var rows []models.Product
	if err := s.db.WithContext(ctx).
		Where("eaten_at >= ? AND eaten_at < ?", start, end).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	idx := make(map[string]int)
	for _, d := range GroupCaloriesByDay(rows) {
		idx[d.Date] = d.Calorie
	}

	out := make([]WeekDay, 0, 7)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		cal := idx[key]
		out = append(out, WeekDay{Date: key, Calorie: cal, BudgetPercent: pct(cal, budget)})
	}
	return out, nil
}

func pct(actual, budget int) float64 {
	if budget <= 0 {
		return 0
	}
	return math.Round(float64(actual)/float64(budget)*10000) / 100
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
