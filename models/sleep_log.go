package models

import (
	"time"

	"gorm.io/gorm"
)

// SleepLog holds at most one entry per (user, logical day); writes replace
// in place.
type SleepLog struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex:idx_sleep_user_day;not null"`
	Date   time.Time `gorm:"uniqueIndex:idx_sleep_user_day;not null"`

	DurationMinutes int
	Status          string `gorm:"size:16"` // bad | soso | good | excellent | oversleep
}
