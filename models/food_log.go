package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FoodLog is one food-intake event. Nutrition values are snapshotted at
// log time so later edits to the food catalog never change past days, and
// so a delete can hand the aggregator the exact contribution to reverse.
type FoodLog struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"` // logical day, local midnight
	AteAt  time.Time // wall-clock timestamp of the meal

	Label    string
	Calories int
	Carbs    decimal.Decimal `gorm:"type:decimal(7,2)"` // grams
	Protein  decimal.Decimal `gorm:"type:decimal(7,2)"`
	Fat      decimal.Decimal `gorm:"type:decimal(7,2)"`

	PhotoURL string
	Warnings string // semicolon-separated intake warnings
}
