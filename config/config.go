package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"backend/ledger"
	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Ledger carries the injected constants (cutoff hour, MET table, sleep
// tiers, activity multipliers) for the metabolic ledger core.
var Ledger ledger.Config

func InitDB() {
	err := godotenv.Load()
	if err != nil {
		log.Fatalf("Error loading .env file")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.FoodLog{},
		&models.ExerciseLog{},
		&models.SleepLog{},
		&models.BodyMeasurement{},
		&models.DailyLedgerRecord{},
		&models.DailyGoal{},
		&models.Alert{},
		&models.UserDevice{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// InitLedgerConfig loads the ledger constants, letting .env override the
// day-boundary cutoff (LEDGER_CUTOFF_HOUR, default 2).
func InitLedgerConfig() {
	Ledger = ledger.DefaultConfig()
	if v := os.Getenv("LEDGER_CUTOFF_HOUR"); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil || h < 0 || h > 23 {
			log.Fatalf("invalid LEDGER_CUTOFF_HOUR %q", v)
		}
		Ledger.CutoffHour = h
	}
}
