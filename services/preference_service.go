package services

import (
	"context"
	"errors"
	"strconv"

	"calorietrack/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PreferenceService is a durable key-value store for profile settings.
// Reads fall back to the given default when a key was never written.
type PreferenceService struct{ db *gorm.DB }

func NewPreferenceService(db *gorm.DB) *PreferenceService { return &PreferenceService{db: db} }

func (s *PreferenceService) GetString(ctx context.Context, key, def string) (string, error) {
	return getString(s.db.WithContext(ctx), key, def)
}

func (s *PreferenceService) GetInt(ctx context.Context, key string, def int) (int, error) {
	return getInt(s.db.WithContext(ctx), key, def)
}

func (s *PreferenceService) PutString(ctx context.Context, key, value string) error {
	return putString(s.db.WithContext(ctx), key, value)
}

func (s *PreferenceService) PutInt(ctx context.Context, key string, value int) error {
	return putString(s.db.WithContext(ctx), key, strconv.Itoa(value))
}

// tx-scoped variants let the budget recompute write its whole profile in one
// transaction.

func getString(db *gorm.DB, key, def string) (string, error) {
	var p models.Preference
	err := db.First(&p, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	return p.Value, nil
}

func getInt(db *gorm.DB, key string, def int) (int, error) {
	raw, err := getString(db, key, "")
	if err != nil || raw == "" {
		return def, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def, nil
	}
	return n, nil
}

func putString(db *gorm.DB, key, value string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&models.Preference{Key: key, Value: value}).Error
}
