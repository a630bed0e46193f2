package services

import (
	"context"
	"fmt"

	"calorietrack/models"

	"gorm.io/gorm"
)

// RecipeService manages named ingredient bundles and their line items.
type RecipeService struct {
	db        *gorm.DB
	nutrition *NutritionService
	products  *ProductService
}

func NewRecipeService(db *gorm.DB, n *NutritionService, products *ProductService) *RecipeService {
	return &RecipeService{db: db, nutrition: n, products: products}
}

func (s *RecipeService) Create(ctx context.Context, name string) (*models.Recipe, error) {
	r := &models.Recipe{Name: name}
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RecipeService) Rename(ctx context.Context, id uint, name string) error {
	return s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		Update("name", name).Error
}

func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	var rows []models.Recipe
	err := s.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (s *RecipeService) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	var r models.Recipe
	err := s.db.WithContext(ctx).Preload("Items").First(&r, id).Error
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Delete removes a recipe and cascades to all its line items.
func (s *RecipeService) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
}

// AddItemWithNutrition resolves the ingredient through the nutrition API and
// stores it under the recipe. The parent must exist.
func (s *RecipeService) AddItemWithNutrition(ctx context.Context, recipeID uint, name, amount string) (*models.RecipeItem, error) {
	var r models.Recipe
	if err := s.db.WithContext(ctx).First(&r, recipeID).Error; err != nil {
		return nil, fmt.Errorf("recipe %d: %w", recipeID, err)
	}

	nut, err := s.nutrition.Lookup(ctx, LookupQuery(amount, name))
	if err != nil {
		return nil, err
	}

	item := &models.RecipeItem{
		RecipeID: recipeID,
		Name:     name,
		Amount:   amount,
		Calorie:  nut.Calorie,
		Protein:  nut.Protein,
		Fats:     nut.Fats,
		Carbs:    nut.Carbs,
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *RecipeService) ListItems(ctx context.Context, recipeID uint) ([]models.RecipeItem, error) {
	var rows []models.RecipeItem
	err := s.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Find(&rows).Error
	return rows, err
}

func (s *RecipeService) ItemCount(ctx context.Context, recipeID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.RecipeItem{}).
		Where("recipe_id = ?", recipeID).
		Count(&n).Error
	return n, err
}

func (s *RecipeService) DeleteItem(ctx context.Context, itemID uint) error {
	return s.db.WithContext(ctx).Delete(&models.RecipeItem{}, itemID).Error
}

// ApplyToLog materializes each line item of the recipe as a food record
// under the chosen meal slot, dated now. Nutrients were resolved when the
// line items were created, so no lookup runs here.
func (s *RecipeService) ApplyToLog(ctx context.Context, recipeID uint, meal string) ([]models.Product, error) {
	if !models.ValidMealSlot(meal) {
		return nil, fmt.Errorf("invalid meal slot %q", meal)
	}

	items, err := s.ListItems(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	out := make([]models.Product, 0, len(items))
	for _, it := range items {
		p, err := s.products.Add(ctx, it.Name, it.Amount, meal, it.Calorie, it.Protein, it.Fats, it.Carbs)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}
