package ledger

import (
	"sync"
	"testing"
	"time"
)

func (a *Aggregator) lockCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.locks)
}

func TestKeyLocksEvictedWhenIdle(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(NewMemoryStore())
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local)

	for uid := uint(1); uid <= 50; uid++ {
		for d := 0; d < 10; d++ {
			if _, err := agg.AddFood(uid, day.AddDate(0, 0, d), Snapshot{}, FoodContribution{Calories: 100}); err != nil {
				t.Fatalf("AddFood: %v", err)
			}
		}
	}
	if n := agg.lockCount(); n != 0 {
		t.Fatalf("lock map should be empty after all mutations finished, has %d entries", n)
	}
}

func TestKeyLocksEvictedAfterConcurrentContention(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(NewMemoryStore())
	day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.Local)

	var wg sync.WaitGroup
	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				if _, err := agg.AddExercise(7, day, Snapshot{}, ExerciseContribution{Calories: 10, DurationMinutes: 1}); err != nil {
					t.Errorf("AddExercise: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	if n := agg.lockCount(); n != 0 {
		t.Fatalf("contended key should be evicted once released, lock map has %d entries", n)
	}

	l, err := agg.Get(7, day)
	if err != nil || l == nil {
		t.Fatalf("Get: %v, %v", l, err)
	}
	if l.TotalCaloriesOut != 16*50*10 {
		t.Fatalf("eviction must not lose serialization: calories out %d", l.TotalCaloriesOut)
	}
}
