package services

import (
	"errors"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

func GetGoals(userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.DailyGoal{UserID: userID}, nil
		}
		return nil, err
	}
	return &goal, nil
}

func UpsertGoals(userID uint, caloriesIn, caloriesOut, exerciseMinutes, sleepMinutes, netLimit int) error {
	var goal models.DailyGoal
	err := config.DB.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{
			UserID:           userID,
			CaloriesIn:       caloriesIn,
			CaloriesOut:      caloriesOut,
			ExerciseMinutes:  exerciseMinutes,
			SleepMinutes:     sleepMinutes,
			NetCaloriesLimit: netLimit,
		}
		return config.DB.Create(&goal).Error
	}
	if err != nil {
		return err
	}

	goal.CaloriesIn = caloriesIn
	goal.CaloriesOut = caloriesOut
	goal.ExerciseMinutes = exerciseMinutes
	goal.SleepMinutes = sleepMinutes
	goal.NetCaloriesLimit = netLimit

	return config.DB.Save(&goal).Error
}
