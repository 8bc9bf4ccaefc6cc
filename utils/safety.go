package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Per-entry sanity thresholds. A single logged item past these is almost
// always a data-entry mistake (grams vs servings) or genuinely worth a
// nudge, so we attach a warning instead of rejecting the entry.
const (
	maxEntryCalories = 2000
	maxEntryFatG     = 100
	maxEntryCarbsG   = 250
	maxEntryProteinG = 150
)

// AssessFoodEntry returns human-readable warnings for one food-intake
// entry. An empty slice means nothing looked off.
func AssessFoodEntry(calories int, carbs, protein, fat decimal.Decimal) []string {
	var warnings []string

	if calories > maxEntryCalories {
		warnings = append(warnings, fmt.Sprintf("very high calories for a single entry (%d kcal)", calories))
	}
	if fat.GreaterThan(decimal.NewFromInt(maxEntryFatG)) {
		warnings = append(warnings, fmt.Sprintf("high fat (%s g)", fat))
	}
	if carbs.GreaterThan(decimal.NewFromInt(maxEntryCarbsG)) {
		warnings = append(warnings, fmt.Sprintf("high carbohydrates (%s g)", carbs))
	}
	if protein.GreaterThan(decimal.NewFromInt(maxEntryProteinG)) {
		warnings = append(warnings, fmt.Sprintf("high protein (%s g)", protein))
	}

	// macro energy exceeding the stated calories means the numbers disagree
	macroKcal := carbs.Mul(decimal.NewFromInt(4)).
		Add(protein.Mul(decimal.NewFromInt(4))).
		Add(fat.Mul(decimal.NewFromInt(9)))
	if calories > 0 && macroKcal.GreaterThan(decimal.NewFromInt(int64(calories)).Mul(decimal.RequireFromString("1.2"))) {
		warnings = append(warnings, "macros add up to more energy than the stated calories")
	}

	return warnings
}
