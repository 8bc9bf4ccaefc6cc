package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UserID    string `gorm:"uniqueIndex;not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FirstName string
	LastName  string

	// metabolic profile — feeds the BMR/TDEE snapshot on ledger creation
	Birthday      time.Time
	Sex           string           `gorm:"size:8"`  // "male" | "female"
	HeightCm      decimal.Decimal  `gorm:"type:decimal(5,1)"`
	WeightKg      decimal.Decimal  `gorm:"type:decimal(5,1)"`
	BodyFatPct    *decimal.Decimal `gorm:"type:decimal(4,1)"`
	ActivityLevel string           `gorm:"size:16"` // sedentary | light | moderate | active | very_active

	FitnessGoals   string
	ProfilePicture string
	Onboarded      bool

	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
	Disabled      bool
}
