package services

import (
	"testing"

	"calorietrack/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory database with the full schema.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Product{},
		&models.Recipe{},
		&models.RecipeItem{},
		&models.Mass{},
		&models.Preference{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
