package services

import (
	"context"
	"errors"
	"time"

	"calorietrack/models"

	"gorm.io/gorm"
)

// MassService manages body-mass samples. At most one logical measurement is
// surfaced per calendar day: logging twice on the same day updates today's
// sample in place instead of duplicating it.
type MassService struct {
	db  *gorm.DB
	agg *AggregateService
	hub *SummaryHub
}

func NewMassService(db *gorm.DB, agg *AggregateService, hub *SummaryHub) *MassService {
	return &MassService{db: db, agg: agg, hub: hub}
}

// Add records today's body mass, replacing an existing sample for the same
// calendar day.
func (s *MassService) Add(ctx context.Context, value float64) (*models.Mass, error) {
	now := time.Now()
	start := dayStart(now)
	end := start.AddDate(0, 0, 1)

	var m models.Mass
	err := s.db.WithContext(ctx).
		Where("measured_at >= ? AND measured_at < ?", start, end).
		First(&m).Error
	switch {
	case err == nil:
		m.Value = value
		if err := s.db.WithContext(ctx).Save(&m).Error; err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		m = models.Mass{Value: value, MeasuredAt: now}
		if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	publishSummary(ctx, s.agg, s.hub)
	return &m, nil
}

// AddAt records a sample with an explicit timestamp, used by the seeding
// endpoint.
func (s *MassService) AddAt(ctx context.Context, value float64, at time.Time) (*models.Mass, error) {
	m := &models.Mass{Value: value, MeasuredAt: at}
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MassService) ListAll(ctx context.Context) ([]models.Mass, error) {
	var rows []models.Mass
	err := s.db.WithContext(ctx).Order("measured_at ASC").Find(&rows).Error
	return rows, err
}

// TodayMass returns today's sample, or nil when none was logged yet.
func (s *MassService) TodayMass(ctx context.Context) (*models.Mass, error) {
	start := dayStart(time.Now())
	end := start.AddDate(0, 0, 1)

	var m models.Mass
	err := s.db.WithContext(ctx).
		Where("measured_at >= ? AND measured_at < ?", start, end).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MassService) UpdateByID(ctx context.Context, id uint, value float64) error {
	return s.db.WithContext(ctx).
		Model(&models.Mass{}).
		Where("id = ?", id).
		Update("value", value).Error
}

func (s *MassService) DeleteByID(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Mass{}, id).Error
}

func (s *MassService) DeleteAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("1 = 1").Delete(&models.Mass{}).Error
}
