package models

import (
	"gorm.io/gorm"
)

// DailyGoal holds each user's daily energy targets, used by analytics
// percentages and the net-calorie alert threshold.
type DailyGoal struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`

	CaloriesIn       int // e.g. 2200 kcal intake target
	CaloriesOut      int // e.g. 400 kcal exercise target
	ExerciseMinutes  int // e.g. 60
	SleepMinutes     int // e.g. 480
	NetCaloriesLimit int // alert when the day's net balance exceeds this
}
