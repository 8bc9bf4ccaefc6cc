package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

type SleepService struct {
	ledger *LedgerService
}

func NewSleepService(ls *LedgerService) *SleepService {
	return &SleepService{ledger: ls}
}

// UpsertSleep records the night's sleep for the logical day the wake-up
// time falls on. One entry per day; a second write replaces the first, on
// the row and on the ledger alike.
func (s *SleepService) UpsertSleep(u *models.User, wokeAt time.Time, durationMinutes int) (*models.SleepLog, error) {
	if durationMinutes < 1 {
		return nil, errors.New("duration must be at least 1 minute")
	}
	day := s.ledger.Resolver().LogicalDay(wokeAt)
	status := s.ledger.Config().ClassifySleep(durationMinutes)

	var prev models.SleepLog
	hadPrev := true
	if err := config.DB.
		Where("user_id = ? AND date = ?", u.ID, day).
		First(&prev).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		hadPrev = false
	}

	row := models.SleepLog{
		UserID:          u.ID,
		Date:            day,
		DurationMinutes: durationMinutes,
		Status:          string(status),
	}
	err := withCompensation(
		func() error {
			return config.DB.
				Where("user_id = ? AND date = ?", u.ID, day).
				Assign(row).
				FirstOrCreate(&row).Error
		},
		func() error {
			_, err := s.ledger.UpdateSleep(u, day, durationMinutes)
			return err
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

func (s *SleepService) GetSleep(u *models.User, day time.Time) (*models.SleepLog, error) {
	var row models.SleepLog
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

func (s *SleepService) ListSleepRange(u *models.User, from, to time.Time) ([]models.SleepLog, error) {
	var rows []models.SleepLog
	err := config.DB.
		Where("user_id = ? AND date >= ? AND date <= ?", u.ID, from, to).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}
