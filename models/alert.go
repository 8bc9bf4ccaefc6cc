package models

import "time"

type Alert struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Type      string    `gorm:"size:24"` // "net_calories" | "oversleep" | "info"
	Day       time.Time // ledger day the alert refers to
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
}
