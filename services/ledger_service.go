package services

import (
	"time"

	"backend/ledger"
	"backend/models"
	"backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LedgerService fronts the metabolic ledger core for the rest of the
// backend: it resolves logical days, derives the user's current metabolic
// snapshot, funnels every mutation through the aggregator, and fans the
// fresh day record out to websockets and alerting.
type LedgerService struct {
	db  *gorm.DB
	cfg ledger.Config
	agg *ledger.Aggregator
	rt  *RealtimeHub
}

func NewLedgerService(db *gorm.DB, cfg ledger.Config, rt *RealtimeHub) *LedgerService {
	return &LedgerService{
		db:  db,
		cfg: cfg,
		agg: ledger.NewAggregator(NewLedgerStore(db)),
		rt:  rt,
	}
}

func (s *LedgerService) Resolver() ledger.Resolver { return s.cfg.Resolver() }
func (s *LedgerService) Config() ledger.Config     { return s.cfg }

// SnapshotFor computes the metabolic baseline currently in force for a
// user. BMR/TDEE are zero until the profile carries enough data, which
// keeps pre-onboarding ledgers honest instead of guessing.
func (s *LedgerService) SnapshotFor(u *models.User) ledger.Snapshot {
	if u.WeightKg.IsZero() || u.Birthday.IsZero() {
		return ledger.Snapshot{}
	}
	age := utils.CalculateAge(u.Birthday)
	bmr := ledger.ComputeBMR(u.WeightKg, u.HeightCm, age, ledger.Sex(u.Sex), u.BodyFatPct)
	tdee := s.cfg.ComputeTDEE(bmr, ledger.ActivityLevel(u.ActivityLevel))
	return ledger.Snapshot{
		BMR:  int(bmr.Round(0).IntPart()),
		TDEE: int(tdee.Round(0).IntPart()),
	}
}

// dayOf truncates a timestamp to the local midnight the day-keyed tables
// store. Plain calendar truncation; cutoff-aware resolution is only for
// classifying new events.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sexOf returns the profile sex for the exercise-calorie correction, nil
// when the profile doesn't state one.
func sexOf(u *models.User) *ledger.Sex {
	switch u.Sex {
	case string(ledger.Male), string(ledger.Female):
		sx := ledger.Sex(u.Sex)
		return &sx
	}
	return nil
}

// GetDay returns the ledger for one logical day. Absent days come back as
// an empty record with the current snapshot, without being persisted —
// only contributing events materialize a day.
func (s *LedgerService) GetDay(u *models.User, day time.Time) (*ledger.DailyLedger, error) {
	day = dayOf(day)
	l, err := s.agg.Get(u.ID, day)
	if err != nil {
		return nil, err
	}
	if l == nil {
		snap := s.SnapshotFor(u)
		l = ledger.NewDailyLedger(u.ID, day, snap.BMR, snap.TDEE)
	}
	return l, nil
}

// Range lists persisted day records between from and to inclusive.
func (s *LedgerService) Range(userID uint, from, to time.Time) ([]models.DailyLedgerRecord, error) {
	var recs []models.DailyLedgerRecord
	err := s.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&recs).Error
	return recs, err
}

func (s *LedgerService) AddFood(u *models.User, day time.Time, c ledger.FoodContribution) (*ledger.DailyLedger, error) {
	l, err := s.agg.AddFood(u.ID, day, s.SnapshotFor(u), c)
	return s.afterMutation(u, l, err)
}

func (s *LedgerService) RemoveFood(u *models.User, day time.Time, c ledger.FoodContribution) (*ledger.DailyLedger, error) {
	l, err := s.agg.RemoveFood(u.ID, day, s.SnapshotFor(u), c)
	return s.afterMutation(u, l, err)
}

func (s *LedgerService) UpdateFood(u *models.User, day time.Time, old, upd ledger.FoodContribution) (*ledger.DailyLedger, error) {
	l, err := s.agg.UpdateFood(u.ID, day, s.SnapshotFor(u), old, upd)
	return s.afterMutation(u, l, err)
}

func (s *LedgerService) AddExercise(u *models.User, day time.Time, c ledger.ExerciseContribution) (*ledger.DailyLedger, error) {
	l, err := s.agg.AddExercise(u.ID, day, s.SnapshotFor(u), c)
	return s.afterMutation(u, l, err)
}

func (s *LedgerService) RemoveExercise(u *models.User, day time.Time, c ledger.ExerciseContribution) (*ledger.DailyLedger, error) {
	l, err := s.agg.RemoveExercise(u.ID, day, s.SnapshotFor(u), c)
	return s.afterMutation(u, l, err)
}

func (s *LedgerService) UpdateExercise(u *models.User, day time.Time, old, upd ledger.ExerciseContribution) (*ledger.DailyLedger, error) {
	l, err := s.agg.UpdateExercise(u.ID, day, s.SnapshotFor(u), old, upd)
	return s.afterMutation(u, l, err)
}

func (s *LedgerService) UpdateSleep(u *models.User, day time.Time, durationMinutes int) (*ledger.DailyLedger, error) {
	status := s.cfg.ClassifySleep(durationMinutes)
	l, err := s.agg.UpdateSleep(u.ID, day, s.SnapshotFor(u), durationMinutes, status)
	return s.afterMutation(u, l, err)
}

func (s *LedgerService) UpdateBodyMeasurement(u *models.User, day time.Time, weightKg decimal.Decimal, bodyFatPct *decimal.Decimal) (*ledger.DailyLedger, error) {
	l, err := s.agg.UpdateBodyMeasurement(u.ID, day, s.SnapshotFor(u), weightKg, bodyFatPct)
	return s.afterMutation(u, l, err)
}

// RecalculateRange re-stamps BMR/TDEE for every persisted day in the
// range from the user's current profile. One per-day transaction each, no
// cross-day lock, so a month-long correction cannot wedge live traffic.
func (s *LedgerService) RecalculateRange(u *models.User, from, to time.Time) (int, error) {
	recs, err := s.Range(u.ID, from, to)
	if err != nil {
		return 0, err
	}
	snap := s.SnapshotFor(u)
	for _, rec := range recs {
		if _, err := s.agg.RefreshMetabolicSnapshot(u.ID, rec.Date, snap); err != nil {
			return 0, err
		}
	}
	return len(recs), nil
}

// afterMutation publishes the recomputed day and raises threshold alerts.
// Delivery failures never fail the mutation itself.
func (s *LedgerService) afterMutation(u *models.User, l *ledger.DailyLedger, err error) (*ledger.DailyLedger, error) {
	if err != nil {
		return nil, err
	}
	if s.rt != nil {
		s.rt.BroadcastLedgerUpdate(u.ID, l)
	}
	s.checkNetAlert(u, l)
	return l, nil
}

func (s *LedgerService) checkNetAlert(u *models.User, l *ledger.DailyLedger) {
	var goal models.DailyGoal
	if err := s.db.Where("user_id = ?", u.ID).First(&goal).Error; err != nil {
		return
	}
	if goal.NetCaloriesLimit == 0 || l.NetCalories <= goal.NetCaloriesLimit {
		return
	}
	EmitAlert(u.ID, "net_calories", l.Date,
		"Net calories for "+l.Date.Format("2006-01-02")+" are over your limit")
}
