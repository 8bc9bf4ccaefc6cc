package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Store is the persistence boundary the aggregator writes through. Load
// returns (nil, nil) when no record exists for the key. Implementations
// must make a Save visible to the next Load on the same key; everything
// else (durability, retries) is theirs to decide.
type Store interface {
	Load(userID uint, day time.Time) (*DailyLedger, error)
	Save(l *DailyLedger) error
}

// Snapshot is the metabolic baseline in force when a day record is first
// materialized.
type Snapshot struct {
	BMR  int
	TDEE int
}

// FoodContribution is the signed quantity a single food-intake event adds
// to a day.
type FoodContribution struct {
	Calories int
	Carbs    decimal.Decimal
	Protein  decimal.Decimal
	Fat      decimal.Decimal
}

// ExerciseContribution is the signed quantity a single exercise event adds
// to a day.
type ExerciseContribution struct {
	Calories        int
	DurationMinutes int
}

// Aggregator applies event contributions to DailyLedger records. All
// mutations on the same (user, day) key are serialized through a per-key
// mutex so concurrent read-modify-write cycles cannot interleave and break
// the totals-equal-sum-of-events invariant. Different keys proceed in
// parallel.
type Aggregator struct {
	store Store

	mu    sync.Mutex
	locks map[string]*keyLock
}

// keyLock is refcounted so entries can be evicted from the lock map as
// soon as nobody holds or waits on them; the map stays bounded by the
// number of in-flight mutations, not by the number of days ever touched.
type keyLock struct {
	sync.Mutex
	refs int
}

func NewAggregator(store Store) *Aggregator {
	return &Aggregator{store: store, locks: make(map[string]*keyLock)}
}

func dayKey(userID uint, day time.Time) string {
	return fmt.Sprintf("%d|%s", userID, day.Format("2006-01-02"))
}

func (a *Aggregator) acquire(key string) *keyLock {
	a.mu.Lock()
	l, ok := a.locks[key]
	if !ok {
		l = &keyLock{}
		a.locks[key] = l
	}
	l.refs++
	a.mu.Unlock()

	l.Lock()
	return l
}

func (a *Aggregator) release(key string, l *keyLock) {
	l.Unlock()

	a.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(a.locks, key)
	}
	a.mu.Unlock()
}

func normalizeDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}

// mutate runs fn against a working copy of the day's record under the key
// lock and persists the result. The stored record is untouched when fn or
// Save fails, so every mutation is all-or-nothing.
func (a *Aggregator) mutate(userID uint, day time.Time, snap Snapshot, fn func(l *DailyLedger) error) (*DailyLedger, error) {
	day = normalizeDay(day)
	key := dayKey(userID, day)
	lock := a.acquire(key)
	defer a.release(key, lock)

	current, err := a.store.Load(userID, day)
	if err != nil {
		return nil, err
	}
	var work *DailyLedger
	if current == nil {
		work = NewDailyLedger(userID, day, snap.BMR, snap.TDEE)
	} else {
		work = current.Clone()
	}

	if err := fn(work); err != nil {
		return nil, err
	}
	work.recompute()

	if err := a.store.Save(work); err != nil {
		return nil, err
	}
	return work.Clone(), nil
}

// GetOrCreate materializes the day record if absent and returns it. The
// snapshot stamps bmr/tdee only on first creation.
func (a *Aggregator) GetOrCreate(userID uint, day time.Time, snap Snapshot) (*DailyLedger, error) {
	return a.mutate(userID, day, snap, func(*DailyLedger) error { return nil })
}

// Get returns the day record without materializing it; nil when absent.
func (a *Aggregator) Get(userID uint, day time.Time) (*DailyLedger, error) {
	day = normalizeDay(day)
	key := dayKey(userID, day)
	lock := a.acquire(key)
	defer a.release(key, lock)

	l, err := a.store.Load(userID, day)
	if err != nil || l == nil {
		return nil, err
	}
	return l.Clone(), nil
}

// AddFood applies one food-intake event's contribution.
func (a *Aggregator) AddFood(userID uint, day time.Time, snap Snapshot, c FoodContribution) (*DailyLedger, error) {
	return a.mutate(userID, day, snap, func(l *DailyLedger) error {
		l.TotalCaloriesIn += c.Calories
		l.TotalCarbs = l.TotalCarbs.Add(c.Carbs)
		l.TotalProtein = l.TotalProtein.Add(c.Protein)
		l.TotalFat = l.TotalFat.Add(c.Fat)
		return nil
	})
}

// RemoveFood subtracts the contribution an event added when it was
// created. The caller supplies the original values; the aggregator does
// not look the event up itself.
func (a *Aggregator) RemoveFood(userID uint, day time.Time, snap Snapshot, c FoodContribution) (*DailyLedger, error) {
	return a.mutate(userID, day, snap, func(l *DailyLedger) error {
		l.TotalCaloriesIn -= c.Calories
		l.TotalCarbs = l.TotalCarbs.Sub(c.Carbs)
		l.TotalProtein = l.TotalProtein.Sub(c.Protein)
		l.TotalFat = l.TotalFat.Sub(c.Fat)
		return nil
	})
}

// UpdateFood applies the difference between an event's old and new
// contribution in one step, so no intermediate state is ever stored.
func (a *Aggregator) UpdateFood(userID uint, day time.Time, snap Snapshot, old, upd FoodContribution) (*DailyLedger, error) {
	return a.mutate(userID, day, snap, func(l *DailyLedger) error {
		l.TotalCaloriesIn += upd.Calories - old.Calories
		l.TotalCarbs = l.TotalCarbs.Add(upd.Carbs).Sub(old.Carbs)
		l.TotalProtein = l.TotalProtein.Add(upd.Protein).Sub(old.Protein)
		l.TotalFat = l.TotalFat.Add(upd.Fat).Sub(old.Fat)
		return nil
	})
}

// AddExercise applies one exercise event's contribution.
func (a *Aggregator) AddExercise(userID uint, day time.Time, snap Snapshot, c ExerciseContribution) (*DailyLedger, error) {
	return a.mutate(userID, day, snap, func(l *DailyLedger) error {
		l.TotalCaloriesOut += c.Calories
		l.ExerciseMinutes += c.DurationMinutes
		l.ExerciseCount++
		return nil
	})
}

// RemoveExercise is the inverse of AddExercise with the original
// contribution values. ExerciseCount floors at zero.
func (a *Aggregator) RemoveExercise(userID uint, day time.Time, snap Snapshot, c ExerciseContribution) (*DailyLedger, error) {
	return a.mutate(userID, day, snap, func(l *DailyLedger) error {
		l.TotalCaloriesOut -= c.Calories
		l.ExerciseMinutes -= c.DurationMinutes
		if l.ExerciseCount > 0 {
			l.ExerciseCount--
		}
		return nil
	})
}

// UpdateExercise applies new-minus-old as a single delta.
func (a *Aggregator) UpdateExercise(userID uint, day time.Time, snap Snapshot, old, upd ExerciseContribution) (*DailyLedger, error) {
	return a.mutate(userID, day, snap, func(l *DailyLedger) error {
		l.TotalCaloriesOut += upd.Calories - old.Calories
		l.ExerciseMinutes += upd.DurationMinutes - old.DurationMinutes
		return nil
	})
}

// UpdateSleep replaces the day's single sleep entry.
func (a *Aggregator) UpdateSleep(userID uint, day time.Time, snap Snapshot, durationMinutes int, status SleepStatus) (*DailyLedger, error) {
	return a.mutate(userID, day, snap, func(l *DailyLedger) error {
		l.SleepDuration = &durationMinutes
		l.SleepStatus = &status
		return nil
	})
}

// UpdateBodyMeasurement replaces the day's body snapshot.
func (a *Aggregator) UpdateBodyMeasurement(userID uint, day time.Time, snap Snapshot, weightKg decimal.Decimal, bodyFatPct *decimal.Decimal) (*DailyLedger, error) {
	return a.mutate(userID, day, snap, func(l *DailyLedger) error {
		l.Weight = &weightKg
		l.BodyFatPct = bodyFatPct
		return nil
	})
}

// RefreshMetabolicSnapshot overwrites a day's stamped bmr/tdee on explicit
// request (the only path that ever rewrites them). Batch corrections call
// this once per day rather than holding any cross-day lock.
func (a *Aggregator) RefreshMetabolicSnapshot(userID uint, day time.Time, snap Snapshot) (*DailyLedger, error) {
	return a.mutate(userID, day, snap, func(l *DailyLedger) error {
		l.BMR = snap.BMR
		l.TDEE = snap.TDEE
		return nil
	})
}
