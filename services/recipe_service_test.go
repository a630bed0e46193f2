package services

import (
	"context"
	"testing"

	"calorietrack/models"
)

func TestDeleteRecipeCascadesToItems(t *testing.T) {
	db := testDB(t)
	svc := NewRecipeService(db, nil, nil)
	ctx := context.Background()

	r, err := svc.Create(ctx, "Overnight oats")
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	other, err := svc.Create(ctx, "Chili")
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}

	for _, it := range []models.RecipeItem{
		{RecipeID: r.ID, Name: "oats", Amount: "80g", Calorie: 300},
		{RecipeID: r.ID, Name: "milk", Amount: "200ml", Calorie: 98},
		{RecipeID: other.ID, Name: "beans", Amount: "400g", Calorie: 450},
	} {
		if err := db.Create(&it).Error; err != nil {
			t.Fatalf("insert item: %v", err)
		}
	}

	if err := svc.Delete(ctx, r.ID); err != nil {
		t.Fatalf("delete recipe: %v", err)
	}

	items, err := svc.ListItems(ctx, r.ID)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("deleted recipe still has %d items", len(items))
	}

	if _, err := svc.Get(ctx, r.ID); err == nil {
		t.Error("deleted recipe still readable")
	}

	// the other recipe's items are untouched
	kept, err := svc.ListItems(ctx, other.ID)
	if err != nil {
		t.Fatalf("list kept items: %v", err)
	}
	if len(kept) != 1 {
		t.Errorf("unrelated recipe has %d items, want 1", len(kept))
	}
}
