package models

import (
	"time"

	"gorm.io/gorm"
)

// ExerciseLog is one exercise session. CaloriesBurned is computed from the
// MET table at write time and stored, so removal and edits can reverse the
// exact contribution that entered the day's ledger.
type ExerciseLog struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null"`
	Date        time.Time `gorm:"index;not null"` // logical day
	PerformedAt time.Time

	Type            string `gorm:"size:32"` // walking | running | ...
	Intensity       string `gorm:"size:8"`  // low | medium | high
	DurationMinutes int
	CaloriesBurned  int
}
