package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BodyService struct {
	ledger *LedgerService
}

func NewBodyService(ls *LedgerService) *BodyService {
	return &BodyService{ledger: ls}
}

// UpsertMeasurement stores the day's body snapshot and refreshes the
// profile values future metabolic snapshots are computed from. Already
// stamped days keep their BMR/TDEE; use Recalculate for an explicit
// retroactive correction.
func (s *BodyService) UpsertMeasurement(u *models.User, measuredAt time.Time, weightKg decimal.Decimal, bodyFatPct *decimal.Decimal) (*models.BodyMeasurement, error) {
	if weightKg.LessThanOrEqual(decimal.Zero) {
		return nil, errors.New("weight must be positive")
	}
	if bodyFatPct != nil && (bodyFatPct.IsNegative() || bodyFatPct.GreaterThan(decimal.NewFromInt(100))) {
		return nil, errors.New("body fat percent must be between 0 and 100")
	}
	day := s.ledger.Resolver().LogicalDay(measuredAt)

	var prev models.BodyMeasurement
	hadPrev := true
	if err := config.DB.
		Where("user_id = ? AND date = ?", u.ID, day).
		First(&prev).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		hadPrev = false
	}
	prevWeight, prevBodyFat := u.WeightKg, u.BodyFatPct

	row := models.BodyMeasurement{
		UserID:     u.ID,
		Date:       day,
		WeightKg:   weightKg,
		BodyFatPct: bodyFatPct,
	}
	err := withCompensation(
		func() error {
			return config.DB.
				Where("user_id = ? AND date = ?", u.ID, day).
				Assign(row).
				FirstOrCreate(&row).Error
		},
		func() error {
			// profile refresh and ledger delta ride together; a ledger
			// failure puts the profile values back
			return withCompensation(
				func() error {
					u.WeightKg = weightKg
					u.BodyFatPct = bodyFatPct
					return config.DB.Save(u).Error
				},
				func() error {
					_, err := s.ledger.UpdateBodyMeasurement(u, day, weightKg, bodyFatPct)
					return err
				},
				func() error {
					u.WeightKg = prevWeight
					u.BodyFatPct = prevBodyFat
					return config.DB.Save(u).Error
				},
			)
		},
		func() error {
			if hadPrev {
				return config.DB.Save(&prev).Error
			}
			return config.DB.Unscoped().Delete(&row).Error
		},
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Recalculate re-stamps BMR/TDEE across a date range from the current
// profile. Returns how many day records were touched.
func (s *BodyService) Recalculate(u *models.User, from, to time.Time) (int, error) {
	return s.ledger.RecalculateRange(u, from, to)
}

func (s *BodyService) GetMeasurement(u *models.User, day time.Time) (*models.BodyMeasurement, error) {
	var row models.BodyMeasurement
	err := config.DB.
		Where("user_id = ? AND date = ?", u.ID, dayOf(day)).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *BodyService) ListMeasurements(u *models.User, from, to time.Time) ([]models.BodyMeasurement, error) {
	var rows []models.BodyMeasurement
	err := config.DB.
		Where("user_id = ? AND date >= ? AND date <= ?", u.ID, from, to).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}
