package services

import (
	"context"
	"fmt"
	"time"

	"calorietrack/models"

	"gorm.io/gorm"
)

// ProductService owns the food log. Writes that need nutrient data run the
// lookup first and persist its result as one record; a failed lookup rejects
// the write instead of recording zeros.
type ProductService struct {
	db        *gorm.DB
	nutrition *NutritionService
	agg       *AggregateService
	hub       *SummaryHub
}

func NewProductService(db *gorm.DB, n *NutritionService, agg *AggregateService, hub *SummaryHub) *ProductService {
	return &ProductService{db: db, nutrition: n, agg: agg, hub: hub}
}

// publishSummary pushes freshly recomputed aggregates to subscribers after a
// successful write. Recompute failures only cost the notification; the write
// itself has already been committed.
func publishSummary(ctx context.Context, agg *AggregateService, hub *SummaryHub) {
	if agg == nil || hub == nil {
		return
	}
	if sum, err := agg.Summary(ctx); err == nil {
		hub.Publish(sum)
	}
}

// AddWithNutrition resolves "<amount> of <name>" through the nutrition API
// and logs the result under the given meal slot, timestamped now.
func (s *ProductService) AddWithNutrition(ctx context.Context, name, amount, meal string) (*models.Product, error) {
	if !models.ValidMealSlot(meal) {
		return nil, fmt.Errorf("invalid meal slot %q", meal)
	}

	nut, err := s.nutrition.Lookup(ctx, LookupQuery(amount, name))
	if err != nil {
		return nil, err
	}

	p := &models.Product{
		Name:    name,
		Amount:  amount,
		Meal:    meal,
		Calorie: nut.Calorie,
		Protein: nut.Protein,
		Fats:    nut.Fats,
		Carbs:   nut.Carbs,
		EatenAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}

	publishSummary(ctx, s.agg, s.hub)
	return p, nil
}

// Add logs a product with already-known nutrient values, used when
// materializing recipe line items whose nutrients were resolved at the time
// the line item was created.
func (s *ProductService) Add(ctx context.Context, name, amount, meal string, calorie int, protein, fats, carbs float64) (*models.Product, error) {
	p := &models.Product{
		Name:    name,
		Amount:  amount,
		Meal:    meal,
		Calorie: calorie,
		Protein: protein,
		Fats:    fats,
		Carbs:   carbs,
		EatenAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}

	publishSummary(ctx, s.agg, s.hub)
	return p, nil
}

// AddAt inserts a record with an explicit timestamp and known nutrients,
// used by the seeding endpoint.
func (s *ProductService) AddAt(ctx context.Context, name, amount, meal string, calorie int, protein, fats, carbs float64, at time.Time) error {
	p := &models.Product{
		Name:    name,
		Amount:  amount,
		Meal:    meal,
		Calorie: calorie,
		Protein: protein,
		Fats:    fats,
		Carbs:   carbs,
		EatenAt: at,
	}
	return s.db.WithContext(ctx).Create(p).Error
}

// UpdateWithNutrition re-runs the lookup for the new name/amount and
// rewrites the record's nutrients together with it. The id and original
// timestamp are stable.
func (s *ProductService) UpdateWithNutrition(ctx context.Context, id uint, name, amount string) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}

	nut, err := s.nutrition.Lookup(ctx, LookupQuery(amount, name))
	if err != nil {
		return nil, err
	}

	p.Name = name
	p.Amount = amount
	p.Calorie = nut.Calorie
	p.Protein = nut.Protein
	p.Fats = nut.Fats
	p.Carbs = nut.Carbs
	if err := s.db.WithContext(ctx).Save(&p).Error; err != nil {
		return nil, err
	}

	publishSummary(ctx, s.agg, s.hub)
	return &p, nil
}

func (s *ProductService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var p models.Product
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProductService) ListAll(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	err := s.db.WithContext(ctx).Order("eaten_at ASC").Find(&rows).Error
	return rows, err
}

// ListToday returns the records of the current local calendar day.
func (s *ProductService) ListToday(ctx context.Context) ([]models.Product, error) {
	start := dayStart(time.Now())
	end := start.AddDate(0, 0, 1)

	var rows []models.Product
	err := s.db.WithContext(ctx).
		Where("eaten_at >= ? AND eaten_at < ?", start, end).
		Order("eaten_at ASC").
		Find(&rows).Error
	return rows, err
}

func (s *ProductService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&models.Product{}, id).Error; err != nil {
		return err
	}
	publishSummary(ctx, s.agg, s.hub)
	return nil
}

// DeleteAll clears the entire food log.
func (s *ProductService) DeleteAll(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
		return err
	}
	publishSummary(ctx, s.agg, s.hub)
	return nil
}
