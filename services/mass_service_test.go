package services

import (
	"context"
	"testing"
	"time"

	"calorietrack/models"
)

func TestAddMassUpdatesSameDayInPlace(t *testing.T) {
	db := testDB(t)
	svc := NewMassService(db, nil, nil)
	ctx := context.Background()

	first, err := svc.Add(ctx, 72.4)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}

	second, err := svc.Add(ctx, 71.8)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("same-day re-add created a new row: id %d then %d", first.ID, second.ID)
	}

	var count int64
	if err := db.Model(&models.Mass{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("found %d rows for one calendar day, want 1", count)
	}

	today, err := svc.TodayMass(ctx)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if today == nil || today.Value != 71.8 {
		t.Errorf("today's measurement = %+v, want value 71.8", today)
	}
}

func TestAddMassDifferentDaysKeepsHistory(t *testing.T) {
	db := testDB(t)
	svc := NewMassService(db, nil, nil)
	ctx := context.Background()

	if _, err := svc.AddAt(ctx, 70.0, time.Now().AddDate(0, 0, -3)); err != nil {
		t.Fatalf("seed earlier sample: %v", err)
	}
	if _, err := svc.Add(ctx, 71.5); err != nil {
		t.Fatalf("add today: %v", err)
	}

	rows, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d samples, want 2", len(rows))
	}
	if rows[0].Value != 70.0 || rows[1].Value != 71.5 {
		t.Errorf("samples out of order: %v then %v", rows[0].Value, rows[1].Value)
	}
}
