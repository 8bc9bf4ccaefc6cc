package services

import (
	"errors"
	"time"

	"backend/ledger"
	"backend/models"

	"gorm.io/gorm"
)

// dbLedgerStore adapts the daily_ledger_records table to the core's Store
// interface. All domain<->row mapping lives here; the core never sees gorm.
type dbLedgerStore struct {
	db *gorm.DB
}

func NewLedgerStore(db *gorm.DB) ledger.Store {
	return &dbLedgerStore{db: db}
}

func (s *dbLedgerStore) Load(userID uint, day time.Time) (*ledger.DailyLedger, error) {
	var rec models.DailyLedgerRecord
	err := s.db.
		Where("user_id = ? AND date = ?", userID, day).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return recordToLedger(&rec), nil
}

func (s *dbLedgerStore) Save(l *ledger.DailyLedger) error {
	var rec models.DailyLedgerRecord
	err := s.db.
		Where("user_id = ? AND date = ?", l.UserID, l.Date).
		First(&rec).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	applyLedgerToRecord(l, &rec)
	if rec.ID == 0 {
		return s.db.Create(&rec).Error
	}
	return s.db.Save(&rec).Error
}

func recordToLedger(rec *models.DailyLedgerRecord) *ledger.DailyLedger {
	l := &ledger.DailyLedger{
		UserID:           rec.UserID,
		Date:             rec.Date,
		TotalCaloriesIn:  rec.TotalCaloriesIn,
		TotalCarbs:       rec.TotalCarbs,
		TotalProtein:     rec.TotalProtein,
		TotalFat:         rec.TotalFat,
		CarbsRatio:       rec.CarbsRatio,
		ProteinRatio:     rec.ProteinRatio,
		FatRatio:         rec.FatRatio,
		BMR:              rec.BMR,
		TDEE:             rec.TDEE,
		TotalCaloriesOut: rec.TotalCaloriesOut,
		ExerciseMinutes:  rec.ExerciseMinutes,
		ExerciseCount:    rec.ExerciseCount,
		NetCalories:      rec.NetCalories,
		SleepDuration:    rec.SleepDurationMin,
		Weight:           rec.WeightKg,
		BodyFatPct:       rec.BodyFatPct,
	}
	if rec.SleepStatus != nil {
		st := ledger.SleepStatus(*rec.SleepStatus)
		l.SleepStatus = &st
	}
	return l
}

func applyLedgerToRecord(l *ledger.DailyLedger, rec *models.DailyLedgerRecord) {
	rec.UserID = l.UserID
	rec.Date = l.Date
	rec.TotalCaloriesIn = l.TotalCaloriesIn
	rec.TotalCarbs = l.TotalCarbs
	rec.TotalProtein = l.TotalProtein
	rec.TotalFat = l.TotalFat
	rec.CarbsRatio = l.CarbsRatio
	rec.ProteinRatio = l.ProteinRatio
	rec.FatRatio = l.FatRatio
	rec.BMR = l.BMR
	rec.TDEE = l.TDEE
	rec.TotalCaloriesOut = l.TotalCaloriesOut
	rec.ExerciseMinutes = l.ExerciseMinutes
	rec.ExerciseCount = l.ExerciseCount
	rec.NetCalories = l.NetCalories
	rec.SleepDurationMin = l.SleepDuration
	rec.WeightKg = l.Weight
	rec.BodyFatPct = l.BodyFatPct
	if l.SleepStatus != nil {
		st := string(*l.SleepStatus)
		rec.SleepStatus = &st
	} else {
		rec.SleepStatus = nil
	}
}
