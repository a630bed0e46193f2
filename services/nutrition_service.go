package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// NutritionService resolves a free-text quantity+food query against a
// CalorieNinjas-compatible nutrition API.
type NutritionService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewNutritionService() *NutritionService {
	base := os.Getenv("NUTRITION_API_URL")
	if base == "" {
		base = "https://api.calorieninjas.com/v1/nutrition"
	}
	return &NutritionService{
		baseURL: base,
		apiKey:  os.Getenv("NUTRITION_API_KEY"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NutrientTotals is one combined lookup result, summed across every item the
// API matched in the query.
type NutrientTotals struct {
	Calorie int     `json:"calorie"`
	Protein float64 `json:"protein"`
	Fats    float64 `json:"fats"`
	Carbs   float64 `json:"carbs"`
}

type nutritionResponse struct {
	Items []struct {
		Calories  float64 `json:"calories"`
		ProteinG  float64 `json:"protein_g"`
		FatTotalG float64 `json:"fat_total_g"`
		CarbsG    float64 `json:"carbohydrates_total_g"`
	} `json:"items"`
}

// LookupQuery builds the query text the API expects, e.g. "136g of rice".
func LookupQuery(amount, name string) string {
	return fmt.Sprintf("%s of %s", amount, name)
}

// Lookup calls the nutrition API and sums the matched items into one totals
// record. Transport and non-200 failures are returned as errors so callers
// can reject the triggering write; a successful response with no items
// legitimately yields zero totals.
func (s *NutritionService) Lookup(ctx context.Context, query string) (NutrientTotals, error) {
	u := fmt.Sprintf("%s?query=%s", s.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return NutrientTotals{}, fmt.Errorf("failed to create nutrition request: %w", err)
	}
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return NutrientTotals{}, fmt.Errorf("failed to call nutrition API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NutrientTotals{}, fmt.Errorf("failed to read nutrition response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return NutrientTotals{}, fmt.Errorf("nutrition API error %d: %s", resp.StatusCode, string(body))
	}

	var nr nutritionResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return NutrientTotals{}, fmt.Errorf("failed to parse nutrition JSON: %w", err)
	}

	var out NutrientTotals
	var cal float64
	for _, it := range nr.Items {
		cal += it.Calories
		out.Protein += it.ProteinG
		out.Fats += it.FatTotalG
		out.Carbs += it.CarbsG
	}
	out.Calorie = int(cal)
	return out, nil
}
