package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testNutritionService(srv *httptest.Server) *NutritionService {
	return &NutritionService{
		baseURL: srv.URL,
		apiKey:  "test-key",
		client:  &http.Client{Timeout: 2 * time.Second},
	}
}

func TestLookupSumsItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Api-Key"); got != "test-key" {
			t.Errorf("api key header = %q", got)
		}
		if got := r.URL.Query().Get("query"); got != "136g of rice" {
			t.Errorf("query = %q, want %q", got, "136g of rice")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[
			{"calories":176.4,"protein_g":3.5,"fat_total_g":0.4,"carbohydrates_total_g":38.4},
			{"calories":10.0,"protein_g":0.5,"fat_total_g":0.1,"carbohydrates_total_g":1.6}
		]}`))
	}))
	defer srv.Close()

	svc := testNutritionService(srv)
	got, err := svc.Lookup(context.Background(), LookupQuery("136g", "rice"))
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	if got.Calorie != 186 {
		t.Errorf("calorie = %d, want 186", got.Calorie)
	}
	if got.Protein != 4.0 {
		t.Errorf("protein = %v, want 4.0", got.Protein)
	}
	if got.Fats != 0.5 {
		t.Errorf("fats = %v, want 0.5", got.Fats)
	}
	if got.Carbs != 40.0 {
		t.Errorf("carbs = %v, want 40.0", got.Carbs)
	}
}

func TestLookupEmptyItemsYieldsZeros(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	got, err := testNutritionService(srv).Lookup(context.Background(), "1g of unobtainium")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if got != (NutrientTotals{}) {
		t.Errorf("got %+v, want zero totals", got)
	}
}

func TestLookupServerErrorIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := testNutritionService(srv).Lookup(context.Background(), "136g of rice"); err == nil {
		t.Fatal("expected error for 500 response, got nil")
	}
}

func TestLookupQuery(t *testing.T) {
	if got := LookupQuery("136g", "rice"); got != "136g of rice" {
		t.Errorf("LookupQuery = %q", got)
	}
}
