package services

import (
	"errors"
	"strings"
	"time"

	"backend/config"
	"backend/ledger"
	"backend/models"
	"backend/utils"

	"github.com/shopspring/decimal"
)

type FoodLogService struct {
	ledger *LedgerService
}

func NewFoodLogService(ls *LedgerService) *FoodLogService {
	return &FoodLogService{ledger: ls}
}

type FoodLogInput struct {
	Label    string          `json:"label"`
	AteAt    time.Time       `json:"ate_at"`
	Calories int             `json:"calories"`
	Carbs    decimal.Decimal `json:"carbs"`
	Protein  decimal.Decimal `json:"protein"`
	Fat      decimal.Decimal `json:"fat"`
	Photo    string          `json:"photo,omitempty"` // base64 data URI
}

func (in FoodLogInput) validate() error {
	if strings.TrimSpace(in.Label) == "" {
		return errors.New("label is required")
	}
	if in.Calories < 0 {
		return errors.New("calories must not be negative")
	}
	if in.Carbs.IsNegative() || in.Protein.IsNegative() || in.Fat.IsNegative() {
		return errors.New("macro grams must not be negative")
	}
	if in.AteAt.IsZero() {
		return errors.New("ate_at is required")
	}
	return nil
}

func (in FoodLogInput) contribution() ledger.FoodContribution {
	return ledger.FoodContribution{
		Calories: in.Calories,
		Carbs:    in.Carbs,
		Protein:  in.Protein,
		Fat:      in.Fat,
	}
}

func contributionOf(row *models.FoodLog) ledger.FoodContribution {
	return ledger.FoodContribution{
		Calories: row.Calories,
		Carbs:    row.Carbs,
		Protein:  row.Protein,
		Fat:      row.Fat,
	}
}

// AddFood creates the event row, then applies its contribution to the
// day's ledger. If the ledger write fails the row is rolled back, so the
// totals always equal the sum of extant events.
func (s *FoodLogService) AddFood(u *models.User, in FoodLogInput) (*models.FoodLog, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	day := s.ledger.Resolver().LogicalDay(in.AteAt)

	row := &models.FoodLog{
		UserID:   u.ID,
		Date:     day,
		AteAt:    in.AteAt,
		Label:    strings.TrimSpace(in.Label),
		Calories: in.Calories,
		Carbs:    in.Carbs,
		Protein:  in.Protein,
		Fat:      in.Fat,
		Warnings: strings.Join(utils.AssessFoodEntry(in.Calories, in.Carbs, in.Protein, in.Fat), "; "),
	}
	if in.Photo != "" {
		url, err := utils.UploadBase64ImageToS3(in.Photo, "meal-photos/"+u.UserID)
		if err != nil {
			return nil, err
		}
		row.PhotoURL = url
	}

	if err := config.DB.Create(row).Error; err != nil {
		return nil, err
	}
	if _, err := s.ledger.AddFood(u, day, in.contribution()); err != nil {
		config.DB.Delete(row)
		return nil, err
	}
	return row, nil
}

// UpdateFood edits an event. Same-day edits go through the single-delta
// path; a changed logical day reverses the old contribution on the old
// day and adds the new one to the new day.
func (s *FoodLogService) UpdateFood(u *models.User, id uint, in FoodLogInput) (*models.FoodLog, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var row models.FoodLog
	if err := config.DB.
		Where("id = ? AND user_id = ?", id, u.ID).
		First(&row).Error; err != nil {
		return nil, err
	}

	old := contributionOf(&row)
	oldDay := row.Date
	newDay := s.ledger.Resolver().LogicalDay(in.AteAt)
	prev := row

	row.Date = newDay
	row.AteAt = in.AteAt
	row.Label = strings.TrimSpace(in.Label)
	row.Calories = in.Calories
	row.Carbs = in.Carbs
	row.Protein = in.Protein
	row.Fat = in.Fat
	row.Warnings = strings.Join(utils.AssessFoodEntry(in.Calories, in.Carbs, in.Protein, in.Fat), "; ")

	var applyDelta func() error
	if oldDay.Equal(newDay) {
		applyDelta = func() error {
			_, err := s.ledger.UpdateFood(u, oldDay, old, in.contribution())
			return err
		}
	} else {
		// cross-day move: the old day is restored if the new day's add fails
		applyDelta = func() error {
			return withCompensation(
				func() error { _, err := s.ledger.RemoveFood(u, oldDay, old); return err },
				func() error { _, err := s.ledger.AddFood(u, newDay, in.contribution()); return err },
				func() error { _, err := s.ledger.AddFood(u, oldDay, old); return err },
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

// DeleteFood reads the event first (the aggregator trusts the caller for
// the original contribution), reverses it, then removes the row. A failed
// row delete re-adds the contribution so totals keep matching the rows.
func (s *FoodLogService) DeleteFood(u *models.User, id uint) error {
	var row models.FoodLog
	if err := config.DB.
		Where("id = ? AND user_id = ?", id, u.ID).
		First(&row).Error; err != nil {
		return err
	}

	c := contributionOf(&row)
	return withCompensation(
		func() error { _, err := s.ledger.RemoveFood(u, row.Date, c); return err },
		func() error { return config.DB.Delete(&row).Error },
		func() error { _, err := s.ledger.AddFood(u, row.Date, c); return err },
	)
}

func (s *FoodLogService) GetFood(u *models.User, id uint) (*models.FoodLog, error) {
	var row models.FoodLog
	err := config.DB.
		Where("id = ? AND user_id = ?", id, u.ID).
		First(&row).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &row, nil
}

func (s *FoodLogService) ListFoodByDay(u *models.User, day time.Time) ([]models.FoodLog, error) {
	var rows []models.FoodLog
	err := config.DB.
		Where("user_id = ? AND date = ?", u.ID, dayOf(day)).
		Order("ate_at ASC").
		Find(&rows).Error
	return rows, err
}

func (s *FoodLogService) ListRecentFood(u *models.User, limit int) ([]models.FoodLog, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []models.FoodLog
	err := config.DB.
		Where("user_id = ?", u.ID).
		Order("ate_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
