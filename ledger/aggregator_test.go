package ledger_test

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"backend/ledger"
)

var testDay = time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)

func newTestAggregator() *ledger.Aggregator {
	return ledger.NewAggregator(ledger.NewMemoryStore())
}

func food(calories int, carbs, protein, fat string) ledger.FoodContribution {
	return ledger.FoodContribution{
		Calories: calories,
		Carbs:    dec(carbs),
		Protein:  dec(protein),
		Fat:      dec(fat),
	}
}

func TestGetOrCreateStampsSnapshotOnce(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	l, err := agg.GetOrCreate(1, testDay, ledger.Snapshot{BMR: 1650, TDEE: 2550})
	if err != nil {
		t.Fatalf("get-or-create: %v", err)
	}
	if l.BMR != 1650 || l.TDEE != 2550 {
		t.Fatalf("snapshot not stamped: bmr=%d tdee=%d", l.BMR, l.TDEE)
	}
	if l.TotalCaloriesIn != 0 || l.ExerciseCount != 0 || l.SleepDuration != nil {
		t.Fatalf("fresh ledger must be empty: %+v", l)
	}
	if l.NetCalories != -2550 {
		t.Fatalf("fresh net = %d, want -2550", l.NetCalories)
	}

	// a later snapshot must not overwrite the stamped baseline
	l, err = agg.GetOrCreate(1, testDay, ledger.Snapshot{BMR: 1700, TDEE: 2600})
	if err != nil {
		t.Fatalf("second get-or-create: %v", err)
	}
	if l.BMR != 1650 || l.TDEE != 2550 {
		t.Fatalf("existing snapshot overwritten: bmr=%d tdee=%d", l.BMR, l.TDEE)
	}
}

func TestDeltaAgainstAbsentDayMaterializes(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	// no GetOrCreate first: late-sync events may arrive in any order
	l, err := agg.RemoveExercise(7, testDay, ledger.Snapshot{BMR: 1500, TDEE: 1800}, ledger.ExerciseContribution{Calories: 100, DurationMinutes: 20})
	if err != nil {
		t.Fatalf("remove against absent day: %v", err)
	}
	if l.BMR != 1500 {
		t.Fatalf("auto-created ledger missing snapshot, bmr=%d", l.BMR)
	}
	if l.ExerciseCount != 0 {
		t.Fatalf("count must floor at zero, got %d", l.ExerciseCount)
	}
}

func TestFoodEndToEnd(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()
	snap := ledger.Snapshot{BMR: 1650, TDEE: 2000}

	breakfast := food(400, "50", "20", "10")
	dinner := food(600, "70", "30", "20")

	if _, err := agg.AddFood(1, testDay, snap, breakfast); err != nil {
		t.Fatalf("add breakfast: %v", err)
	}
	if _, err := agg.AddFood(1, testDay, snap, dinner); err != nil {
		t.Fatalf("add dinner: %v", err)
	}
	l, err := agg.RemoveFood(1, testDay, snap, breakfast)
	if err != nil {
		t.Fatalf("delete breakfast: %v", err)
	}

	if l.TotalCaloriesIn != 600 {
		t.Fatalf("total in = %d, want 600", l.TotalCaloriesIn)
	}
	if !l.TotalCarbs.Equal(dec("70")) || !l.TotalProtein.Equal(dec("30")) || !l.TotalFat.Equal(dec("20")) {
		t.Fatalf("macros after delete: carbs=%s protein=%s fat=%s", l.TotalCarbs, l.TotalProtein, l.TotalFat)
	}
	if l.NetCalories != 600-2000 {
		t.Fatalf("net = %d, want %d", l.NetCalories, 600-2000)
	}
}

func TestMacroRatios(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	l, err := agg.AddFood(1, testDay, ledger.Snapshot{}, food(400, "50", "20", "10"))
	if err != nil {
		t.Fatalf("add food: %v", err)
	}
	// 50g x 4 / 400 = 0.5, 20g x 4 / 400 = 0.2, 10g x 9 / 400 = 0.225
	if l.CarbsRatio == nil || !l.CarbsRatio.Equal(dec("0.5")) {
		t.Fatalf("carbs ratio = %v, want 0.5", l.CarbsRatio)
	}
	if l.ProteinRatio == nil || !l.ProteinRatio.Equal(dec("0.2")) {
		t.Fatalf("protein ratio = %v, want 0.2", l.ProteinRatio)
	}
	if l.FatRatio == nil || !l.FatRatio.Equal(dec("0.225")) {
		t.Fatalf("fat ratio = %v, want 0.225", l.FatRatio)
	}
}

func TestMacroRatiosUndefinedAtZeroIntake(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()
	snap := ledger.Snapshot{}

	c := food(400, "50", "20", "10")
	if _, err := agg.AddFood(1, testDay, snap, c); err != nil {
		t.Fatalf("add: %v", err)
	}
	l, err := agg.RemoveFood(1, testDay, snap, c)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if l.TotalCaloriesIn != 0 {
		t.Fatalf("intake should be back to zero, got %d", l.TotalCaloriesIn)
	}
	if l.CarbsRatio != nil || l.ProteinRatio != nil || l.FatRatio != nil {
		t.Fatal("ratios must be absent when intake is zero")
	}
}

func TestExerciseConservation(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()
	snap := ledger.Snapshot{BMR: 1600, TDEE: 2200}

	before, err := agg.GetOrCreate(2, testDay, snap)
	if err != nil {
		t.Fatalf("get-or-create: %v", err)
	}

	sessions := []ledger.ExerciseContribution{
		{Calories: 336, DurationMinutes: 30},
		{Calories: 147, DurationMinutes: 45},
		{Calories: 480, DurationMinutes: 60},
	}
	for _, s := range sessions {
		if _, err := agg.AddExercise(2, testDay, snap, s); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	var after *ledger.DailyLedger
	for _, s := range sessions {
		if after, err = agg.RemoveExercise(2, testDay, snap, s); err != nil {
			t.Fatalf("remove: %v", err)
		}
	}

	if after.TotalCaloriesOut != before.TotalCaloriesOut ||
		after.ExerciseMinutes != before.ExerciseMinutes ||
		after.ExerciseCount != before.ExerciseCount ||
		after.NetCalories != before.NetCalories {
		t.Fatalf("net-zero sequence changed totals: before=%+v after=%+v", before, after)
	}
}

func TestUpdateExerciseEqualsRemoveThenAdd(t *testing.T) {
	t.Parallel()
	snap := ledger.Snapshot{BMR: 1600, TDEE: 2200}
	old := ledger.ExerciseContribution{Calories: 336, DurationMinutes: 30}
	upd := ledger.ExerciseContribution{Calories: 480, DurationMinutes: 60}

	viaDelta := newTestAggregator()
	if _, err := viaDelta.AddExercise(1, testDay, snap, old); err != nil {
		t.Fatalf("add: %v", err)
	}
	a, err := viaDelta.UpdateExercise(1, testDay, snap, old, upd)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	viaPair := newTestAggregator()
	if _, err := viaPair.AddExercise(1, testDay, snap, old); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := viaPair.RemoveExercise(1, testDay, snap, old); err != nil {
		t.Fatalf("remove: %v", err)
	}
	b, err := viaPair.AddExercise(1, testDay, snap, upd)
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}

	if a.TotalCaloriesOut != b.TotalCaloriesOut || a.ExerciseMinutes != b.ExerciseMinutes ||
		a.ExerciseCount != b.ExerciseCount || a.NetCalories != b.NetCalories {
		t.Fatalf("delta update diverged from remove+add: %+v vs %+v", a, b)
	}
}

func TestNetCaloriesFormula(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()
	snap := ledger.Snapshot{BMR: 1650, TDEE: 2550}

	if _, err := agg.AddFood(1, testDay, snap, food(2000, "250", "100", "60")); err != nil {
		t.Fatalf("add food: %v", err)
	}
	l, err := agg.AddExercise(1, testDay, snap, ledger.ExerciseContribution{Calories: 336, DurationMinutes: 30})
	if err != nil {
		t.Fatalf("add exercise: %v", err)
	}

	// intake - tdee - burn; exercise subtracts on top of the TDEE baseline
	want := 2000 - 2550 - 336
	if l.NetCalories != want {
		t.Fatalf("net = %d, want %d", l.NetCalories, want)
	}
}

func TestUpdateSleepReplacesInPlace(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()
	snap := ledger.Snapshot{}

	if _, err := agg.UpdateSleep(1, testDay, snap, 300, ledger.SleepBad); err != nil {
		t.Fatalf("first sleep write: %v", err)
	}
	l, err := agg.UpdateSleep(1, testDay, snap, 465, ledger.SleepExcellent)
	if err != nil {
		t.Fatalf("second sleep write: %v", err)
	}
	if l.SleepDuration == nil || *l.SleepDuration != 465 {
		t.Fatalf("sleep duration = %v, want 465", l.SleepDuration)
	}
	if l.SleepStatus == nil || *l.SleepStatus != ledger.SleepExcellent {
		t.Fatalf("sleep status = %v, want excellent", l.SleepStatus)
	}
}

func TestUpdateBodyMeasurement(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	bf := dec("19.5")
	l, err := agg.UpdateBodyMeasurement(1, testDay, ledger.Snapshot{}, dec("71.3"), &bf)
	if err != nil {
		t.Fatalf("body write: %v", err)
	}
	if l.Weight == nil || !l.Weight.Equal(dec("71.3")) {
		t.Fatalf("weight = %v, want 71.3", l.Weight)
	}
	if l.BodyFatPct == nil || !l.BodyFatPct.Equal(dec("19.5")) {
		t.Fatalf("body fat = %v, want 19.5", l.BodyFatPct)
	}

	// a later measurement without body fat clears the snapshot field
	l, err = agg.UpdateBodyMeasurement(1, testDay, ledger.Snapshot{}, dec("71.1"), nil)
	if err != nil {
		t.Fatalf("second body write: %v", err)
	}
	if l.BodyFatPct != nil {
		t.Fatalf("body fat should be cleared, got %v", l.BodyFatPct)
	}
}

func TestRefreshMetabolicSnapshot(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()

	if _, err := agg.AddFood(1, testDay, ledger.Snapshot{BMR: 1650, TDEE: 2550}, food(500, "60", "25", "15")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	l, err := agg.RefreshMetabolicSnapshot(1, testDay, ledger.Snapshot{BMR: 1580, TDEE: 2449})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if l.BMR != 1580 || l.TDEE != 2449 {
		t.Fatalf("snapshot not refreshed: bmr=%d tdee=%d", l.BMR, l.TDEE)
	}
	if l.NetCalories != 500-2449 {
		t.Fatalf("net not recomputed after refresh: %d", l.NetCalories)
	}
	if l.TotalCaloriesIn != 500 {
		t.Fatalf("refresh must not touch totals: %d", l.TotalCaloriesIn)
	}
}

func TestTimestampedDayNormalized(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()
	snap := ledger.Snapshot{}

	noon := time.Date(2026, 3, 14, 12, 30, 0, 0, time.Local)
	if _, err := agg.AddFood(1, noon, snap, food(100, "10", "5", "2")); err != nil {
		t.Fatalf("add with time-of-day: %v", err)
	}
	l, err := agg.Get(1, testDay)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if l == nil || l.TotalCaloriesIn != 100 {
		t.Fatalf("day with time-of-day must hit the midnight bucket, got %+v", l)
	}
}

func TestGetAbsentDay(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()
	l, err := agg.Get(1, testDay)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if l != nil {
		t.Fatalf("absent day should be nil, got %+v", l)
	}
}

func TestDaysAreIndependent(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()
	snap := ledger.Snapshot{}
	nextDay := testDay.AddDate(0, 0, 1)

	if _, err := agg.AddFood(1, testDay, snap, food(400, "50", "20", "10")); err != nil {
		t.Fatalf("day one: %v", err)
	}
	if _, err := agg.AddFood(1, nextDay, snap, food(600, "70", "30", "20")); err != nil {
		t.Fatalf("day two: %v", err)
	}

	one, _ := agg.Get(1, testDay)
	two, _ := agg.Get(1, nextDay)
	if one.TotalCaloriesIn != 400 || two.TotalCaloriesIn != 600 {
		t.Fatalf("cross-day bleed: %d / %d", one.TotalCaloriesIn, two.TotalCaloriesIn)
	}
}

func TestConcurrentSameKeyMutations(t *testing.T) {
	t.Parallel()
	agg := newTestAggregator()
	snap := ledger.Snapshot{BMR: 1600, TDEE: 2000}

	const workers = 16
	const rounds = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				if _, err := agg.AddFood(1, testDay, snap, food(10, "1", "1", "1")); err != nil {
					t.Errorf("add food: %v", err)
					return
				}
				if _, err := agg.AddExercise(1, testDay, snap, ledger.ExerciseContribution{Calories: 5, DurationMinutes: 1}); err != nil {
					t.Errorf("add exercise: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	l, err := agg.Get(1, testDay)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	wantIn := workers * rounds * 10
	wantOut := workers * rounds * 5
	wantCount := workers * rounds
	if l.TotalCaloriesIn != wantIn {
		t.Fatalf("lost update on intake: got %d, want %d", l.TotalCaloriesIn, wantIn)
	}
	if l.TotalCaloriesOut != wantOut || l.ExerciseCount != wantCount {
		t.Fatalf("lost update on exercise: out=%d count=%d, want %d/%d", l.TotalCaloriesOut, l.ExerciseCount, wantOut, wantCount)
	}
	if !l.TotalCarbs.Equal(decimal.NewFromInt(int64(wantCount))) {
		t.Fatalf("lost update on macros: carbs=%s, want %d", l.TotalCarbs, wantCount)
	}
}

func TestConcurrentDistinctKeys(t *testing.T) {
	t.Parallel()
	store := ledger.NewMemoryStore()
	agg := ledger.NewAggregator(store)
	snap := ledger.Snapshot{}

	const users = 8
	var wg sync.WaitGroup
	for u := uint(1); u <= users; u++ {
		wg.Add(1)
		go func(u uint) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				if _, err := agg.AddFood(u, testDay, snap, food(int(u), "0", "0", "0")); err != nil {
					t.Errorf("user %d: %v", u, err)
					return
				}
			}
		}(u)
	}
	wg.Wait()

	if store.Len() != users {
		t.Fatalf("expected %d day records, got %d", users, store.Len())
	}
	for u := uint(1); u <= users; u++ {
		l, _ := agg.Get(u, testDay)
		if l.TotalCaloriesIn != int(u)*25 {
			t.Fatalf("user %d intake = %d, want %d", u, l.TotalCaloriesIn, int(u)*25)
		}
	}
}
