package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BodyMeasurement is the latest body snapshot for a logical day; one row
// per (user, day), replaced in place.
type BodyMeasurement struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex:idx_body_user_day;not null"`
	Date   time.Time `gorm:"uniqueIndex:idx_body_user_day;not null"`

	WeightKg   decimal.Decimal  `gorm:"type:decimal(5,1)"`
	BodyFatPct *decimal.Decimal `gorm:"type:decimal(4,1)"`
}
