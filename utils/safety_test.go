package utils_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"backend/utils"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAssessFoodEntryClean(t *testing.T) {
	t.Parallel()
	w := utils.AssessFoodEntry(450, d("50"), d("25"), d("12"))
	if len(w) != 0 {
		t.Fatalf("expected no warnings, got %v", w)
	}
}

func TestAssessFoodEntryHighCalories(t *testing.T) {
	t.Parallel()
	w := utils.AssessFoodEntry(2400, d("100"), d("40"), d("60"))
	if len(w) == 0 {
		t.Fatal("expected a calorie warning")
	}
}

func TestAssessFoodEntryMacroMismatch(t *testing.T) {
	t.Parallel()
	// 100g carbs + 50g protein + 50g fat = 1050 kcal of macros vs 300 stated
	w := utils.AssessFoodEntry(300, d("100"), d("50"), d("50"))
	found := false
	for _, msg := range w {
		if msg == "macros add up to more energy than the stated calories" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected macro mismatch warning, got %v", w)
	}
}
