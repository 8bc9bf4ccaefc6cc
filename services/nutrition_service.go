package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// NutritionService is the Edamam food-database client. It feeds the food
// logging flow: search resolves a label to a food id, analyze returns the
// macro snapshot that gets written onto the FoodLog row.
type NutritionService struct {
	foodAppID, foodAppKey   string
	nutriAppID, nutriAppKey string
	client                  *http.Client
}

func NewNutritionService() *NutritionService {
	return &NutritionService{
		foodAppID:   os.Getenv("EDAMAM_APP_ID"),
		foodAppKey:  os.Getenv("EDAMAM_APP_KEY"),
		nutriAppID:  os.Getenv("EDAMAM_NUTRI_APP_ID"),
		nutriAppKey: os.Getenv("EDAMAM_NUTRI_APP_KEY"),
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type FoodHit struct {
	FoodID   string `json:"food_id"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// MacroSummary is what the ledger needs out of a nutrition lookup:
// integer calories plus decimal macro grams.
type MacroSummary struct {
	Calories int             `json:"calories"`
	Carbs    decimal.Decimal `json:"carbs"`
	Protein  decimal.Decimal `json:"protein"`
	Fat      decimal.Decimal `json:"fat"`
}

type foodParserResponse struct {
	Hints []struct {
		Food struct {
			FoodID   string `json:"foodId"`
			Label    string `json:"label"`
			Category string `json:"category"`
		} `json:"food"`
	} `json:"hints"`
}

// SearchFoods calls the Edamam Food Database parser endpoint.
func (s *NutritionService) SearchFoods(query string) ([]FoodHit, error) {
	u := fmt.Sprintf(
		"https://api.edamam.com/api/food-database/v2/parser?ingr=%s&app_id=%s&app_key=%s",
		url.QueryEscape(query), s.foodAppID, s.foodAppKey,
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call Edamam parser: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Edamam parser response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("edamam parser API error %d: %s", resp.StatusCode, string(body))
	}

	var pr foodParserResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse Edamam parser JSON: %w", err)
	}

	results := make([]FoodHit, 0, len(pr.Hints))
	for _, h := range pr.Hints {
		results = append(results, FoodHit{
			FoodID:   h.Food.FoodID,
			Label:    h.Food.Label,
			Category: h.Food.Category,
		})
	}
	return results, nil
}

type nutritionResponse struct {
	TotalNutrients map[string]struct {
		Quantity float64 `json:"quantity"`
	} `json:"totalNutrients"`
}

// AnalyzeFood calls the nutrients endpoint for a single ingredient and
// condenses the response into the macro fields the ledger consumes.
func (s *NutritionService) AnalyzeFood(foodID, measureURI string, qty float64) (*MacroSummary, error) {
	payload := map[string]interface{}{
		"ingredients": []map[string]interface{}{{
			"quantity":   qty,
			"measureURI": measureURI,
			"foodId":     foodID,
		}},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal nutrition payload: %w", err)
	}

	u := fmt.Sprintf(
		"https://api.edamam.com/api/food-database/v2/nutrients?app_id=%s&app_key=%s",
		s.nutriAppID, s.nutriAppKey,
	)

	req, err := http.NewRequest("POST", u, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create nutrition request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Edamam nutrition API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutrition response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("edamam nutrition API error %d: %s", resp.StatusCode, string(body))
	}

	var nr nutritionResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("failed to parse nutrition JSON: %w", err)
	}

	grams := func(key string) decimal.Decimal {
		// rounded to 0.01g; finer resolution is noise from the API
		return decimal.NewFromFloat(nr.TotalNutrients[key].Quantity).Round(2)
	}
	return &MacroSummary{
		Calories: int(decimal.NewFromFloat(nr.TotalNutrients["ENERC_KCAL"].Quantity).Round(0).IntPart()),
		Carbs:    grams("CHOCDF"),
		Protein:  grams("PROCNT"),
		Fat:      grams("FAT"),
	}, nil
}
