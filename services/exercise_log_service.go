package services

import (
	"errors"
	"strings"
	"time"

	"backend/config"
	"backend/ledger"
	"backend/models"
)

type ExerciseLogService struct {
	ledger *LedgerService
}

func NewExerciseLogService(ls *LedgerService) *ExerciseLogService {
	return &ExerciseLogService{ledger: ls}
}

type ExerciseLogInput struct {
	Type            string    `json:"type"`
	Intensity       string    `json:"intensity"`
	DurationMinutes int       `json:"duration_minutes"`
	PerformedAt     time.Time `json:"performed_at"`
}

func (in *ExerciseLogInput) normalize() error {
	in.Type = strings.ToLower(strings.TrimSpace(in.Type))
	if in.Type == "" {
		return errors.New("exercise type is required")
	}
	in.Intensity = strings.ToLower(strings.TrimSpace(in.Intensity))
	if in.Intensity == "" {
		in.Intensity = string(ledger.IntensityMedium)
	}
	switch ledger.Intensity(in.Intensity) {
	case ledger.IntensityLow, ledger.IntensityMedium, ledger.IntensityHigh:
	default:
		return errors.New("intensity must be low, medium or high")
	}
	if in.DurationMinutes < 1 {
		return errors.New("duration must be at least 1 minute")
	}
	if in.PerformedAt.IsZero() {
		in.PerformedAt = time.Now()
	}
	return nil
}

func exerciseContributionOf(row *models.ExerciseLog) ledger.ExerciseContribution {
	return ledger.ExerciseContribution{
		Calories:        row.CaloriesBurned,
		DurationMinutes: row.DurationMinutes,
	}
}

// AddExercise computes the session's burn from the MET table, snapshots
// it on the row, and applies the contribution to the day's ledger.
func (s *ExerciseLogService) AddExercise(u *models.User, in ExerciseLogInput) (*models.ExerciseLog, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}
	day := s.ledger.Resolver().LogicalDay(in.PerformedAt)
	calories := s.ledger.Config().ExerciseCalories(
		ledger.ExerciseType(in.Type),
		ledger.Intensity(in.Intensity),
		in.DurationMinutes,
		u.WeightKg,
		sexOf(u),
	)

	row := &models.ExerciseLog{
		UserID:          u.ID,
		Date:            day,
		PerformedAt:     in.PerformedAt,
		Type:            in.Type,
		Intensity:       in.Intensity,
		DurationMinutes: in.DurationMinutes,
		CaloriesBurned:  calories,
	}
	if err := config.DB.Create(row).Error; err != nil {
		return nil, err
	}
	if _, err := s.ledger.AddExercise(u, day, exerciseContributionOf(row)); err != nil {
		config.DB.Delete(row)
		return nil, err
	}
	return row, nil
}

// UpdateExercise recomputes the burn for the edited session and applies
// the new-minus-old delta; a changed logical day becomes a remove on the
// old day plus an add on the new one.
func (s *ExerciseLogService) UpdateExercise(u *models.User, id uint, in ExerciseLogInput) (*models.ExerciseLog, error) {
	if err := in.normalize(); err != nil {
		return nil, err
	}

	var row models.ExerciseLog
	if err := config.DB.
		Where("id = ? AND user_id = ?", id, u.ID).
		First(&row).Error; err != nil {
		return nil, err
	}

	old := exerciseContributionOf(&row)
	oldDay := row.Date
	newDay := s.ledger.Resolver().LogicalDay(in.PerformedAt)
	calories := s.ledger.Config().ExerciseCalories(
		ledger.ExerciseType(in.Type),
		ledger.Intensity(in.Intensity),
		in.DurationMinutes,
		u.WeightKg,
		sexOf(u),
	)
	updated := ledger.ExerciseContribution{Calories: calories, DurationMinutes: in.DurationMinutes}
	prev := row

	row.Date = newDay
	row.PerformedAt = in.PerformedAt
	row.Type = in.Type
	row.Intensity = in.Intensity
	row.DurationMinutes = in.DurationMinutes
	row.CaloriesBurned = calories

	var applyDelta func() error
	if oldDay.Equal(newDay) {
		applyDelta = func() error {
			_, err := s.ledger.UpdateExercise(u, oldDay, old, updated)
			return err
		}
	} else {
		// cross-day move: the old day is restored if the new day's add fails
		applyDelta = func() error {
			return withCompensation(
				func() error { _, err := s.ledger.RemoveExercise(u, oldDay, old); return err },
				func() error { _, err := s.ledger.AddExercise(u, newDay, updated); return err },
				func() error { _, err := s.ledger.AddExercise(u, oldDay, old); return err },
			)
		}
	}

	err := withCompensation(
		func() error { return config.DB.Save(&row).Error },
		applyDelta,
		func() error { return config.DB.Save(&prev).Error },
	)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteExercise reverses the stored contribution, then drops the row. A
// failed row delete re-adds the contribution.
func (s *ExerciseLogService) DeleteExercise(u *models.User, id uint) error {
	var row models.ExerciseLog
	if err := config.DB.
		Where("id = ? AND user_id = ?", id, u.ID).
		First(&row).Error; err != nil {
		return err
	}

	c := exerciseContributionOf(&row)
	return withCompensation(
		func() error { _, err := s.ledger.RemoveExercise(u, row.Date, c); return err },
		func() error { return config.DB.Delete(&row).Error },
		func() error { _, err := s.ledger.AddExercise(u, row.Date, c); return err },
	)
}

func (s *ExerciseLogService) ListExerciseByDay(u *models.User, day time.Time) ([]models.ExerciseLog, error) {
	var rows []models.ExerciseLog
	err := config.DB.
		Where("user_id = ? AND date = ?", u.ID, dayOf(day)).
		Order("performed_at ASC").
		Find(&rows).Error
	return rows, err
}

func (s *ExerciseLogService) ListRecentExercise(u *models.User, limit int) ([]models.ExerciseLog, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []models.ExerciseLog
	err := config.DB.
		Where("user_id = ?", u.ID).
		Order("performed_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
