package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailyLedgerRecord is the storage row behind ledger.DailyLedger. The
// domain<->row mapping lives in services; the ledger core itself never
// sees gorm.
type DailyLedgerRecord struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex:idx_ledger_user_day;not null"`
	Date   time.Time `gorm:"uniqueIndex:idx_ledger_user_day;not null"`

	TotalCaloriesIn int
	TotalCarbs      decimal.Decimal `gorm:"type:decimal(8,2)"`
	TotalProtein    decimal.Decimal `gorm:"type:decimal(8,2)"`
	TotalFat        decimal.Decimal `gorm:"type:decimal(8,2)"`

	CarbsRatio   *decimal.Decimal `gorm:"type:decimal(8,6)"`
	ProteinRatio *decimal.Decimal `gorm:"type:decimal(8,6)"`
	FatRatio     *decimal.Decimal `gorm:"type:decimal(8,6)"`

	BMR  int
	TDEE int

	TotalCaloriesOut int
	ExerciseMinutes  int
	ExerciseCount    int
	NetCalories      int

	SleepDurationMin *int
	SleepStatus      *string `gorm:"size:16"`

	WeightKg   *decimal.Decimal `gorm:"type:decimal(5,1)"`
	BodyFatPct *decimal.Decimal `gorm:"type:decimal(4,1)"`
}
