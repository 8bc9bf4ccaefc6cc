package ledger_test

import (
	"testing"

	"backend/ledger"
)

func TestExerciseCaloriesRunningHigh(t *testing.T) {
	t.Parallel()
	cfg := ledger.DefaultConfig()

	// 8.0 x 1.2 = 9.6 MET; 9.6 x 70 x 0.5h = 336
	got := cfg.ExerciseCalories(ledger.Running, ledger.IntensityHigh, 30, dec("70"), nil)
	if got != 336 {
		t.Fatalf("running/high/30min/70kg = %d, want 336", got)
	}
}

func TestExerciseCaloriesIntensityScaling(t *testing.T) {
	t.Parallel()
	cfg := ledger.DefaultConfig()

	// walking low: 3.5 x 0.8 = 2.8 MET; 2.8 x 70 x 0.75h = 147
	if got := cfg.ExerciseCalories(ledger.Walking, ledger.IntensityLow, 45, dec("70"), nil); got != 147 {
		t.Fatalf("walking/low/45min = %d, want 147", got)
	}
	// medium leaves base MET untouched: 6.0 x 80 x 1h = 480
	if got := cfg.ExerciseCalories(ledger.WeightTraining, ledger.IntensityMedium, 60, dec("80"), nil); got != 480 {
		t.Fatalf("weight_training/medium/60min = %d, want 480", got)
	}
}

func TestExerciseCaloriesSexCorrection(t *testing.T) {
	t.Parallel()
	cfg := ledger.DefaultConfig()

	male := ledger.Male
	female := ledger.Female

	base := cfg.ExerciseCalories(ledger.Running, ledger.IntensityHigh, 30, dec("70"), nil)
	withMale := cfg.ExerciseCalories(ledger.Running, ledger.IntensityHigh, 30, dec("70"), &male)
	if base != withMale {
		t.Fatalf("male correction must be identity: %d vs %d", base, withMale)
	}

	// 336 x 0.95 = 319.2 -> 319
	withFemale := cfg.ExerciseCalories(ledger.Running, ledger.IntensityHigh, 30, dec("70"), &female)
	if withFemale != 319 {
		t.Fatalf("female-corrected calories = %d, want 319", withFemale)
	}
}

func TestExerciseCaloriesZeroDuration(t *testing.T) {
	t.Parallel()
	cfg := ledger.DefaultConfig()
	if got := cfg.ExerciseCalories(ledger.Yoga, ledger.IntensityLow, 0, dec("70"), nil); got != 0 {
		t.Fatalf("zero duration should burn zero, got %d", got)
	}
}

func TestExerciseCaloriesUnknownTypeFallsBack(t *testing.T) {
	t.Parallel()
	cfg := ledger.DefaultConfig()
	unknown := cfg.ExerciseCalories(ledger.ExerciseType("parkour"), ledger.IntensityMedium, 30, dec("70"), nil)
	walking := cfg.ExerciseCalories(ledger.Walking, ledger.IntensityMedium, 30, dec("70"), nil)
	if unknown != walking {
		t.Fatalf("unknown type should use the walking MET: %d vs %d", unknown, walking)
	}
}
