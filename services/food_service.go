package services

import (
	"fmt"
)

// FoodService bundles the lookup paths a client can take before logging a
// food: free-text search, photo recognition, and macro preview.
type FoodService struct {
	nut *NutritionService
	rek *RekognitionService
}

func NewFoodService(nut *NutritionService, rek *RekognitionService) *FoodService {
	return &FoodService{nut: nut, rek: rek}
}

type FoodPreview struct {
	FoodID     string       `json:"food_id"`
	MeasureURI string       `json:"measure_uri"`
	Quantity   float64      `json:"quantity"`
	Macros     MacroSummary `json:"macros"`
}

// Search manually
func (s *FoodService) Search(query string) ([]FoodHit, error) {
	return s.nut.SearchFoods(query)
}

// Recognize via image → returns candidate foods for the top label
func (s *FoodService) Recognize(base64Img string) ([]FoodHit, error) {
	labels, err := s.rek.RecognizeLabels(base64Img)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no labels detected")
	}
	return s.nut.SearchFoods(labels[0])
}

// Preview resolves the macro snapshot a client would log, without writing
// anything. The same numbers go onto the FoodLog row if the client commits.
func (s *FoodService) Preview(foodID, measureURI string, qty float64) (*FoodPreview, error) {
	if foodID == "" || measureURI == "" || qty <= 0 {
		return nil, fmt.Errorf("food_id, measure_uri and positive quantity are required")
	}
	m, err := s.nut.AnalyzeFood(foodID, measureURI, qty)
	if err != nil {
		return nil, err
	}
	return &FoodPreview{
		FoodID:     foodID,
		MeasureURI: measureURI,
		Quantity:   qty,
		Macros:     *m,
	}, nil
}
