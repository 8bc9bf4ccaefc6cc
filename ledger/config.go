package ledger

import "github.com/shopspring/decimal"

type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "very_active"
)

type ExerciseType string

const (
	Walking        ExerciseType = "walking"
	Running        ExerciseType = "running"
	Cycling        ExerciseType = "cycling"
	Swimming       ExerciseType = "swimming"
	WeightTraining ExerciseType = "weight_training"
	Yoga           ExerciseType = "yoga"
)

type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

// SleepTiers holds the lower bound (minutes) of each tier above Bad.
type SleepTiers struct {
	Soso      int
	Good      int
	Excellent int
	Oversleep int
}

// Config carries every tunable the ledger core uses. Callers construct it
// once at startup and treat it as read-only afterwards.
type Config struct {
	// CutoffHour is the local hour before which an event still belongs to
	// the previous calendar day.
	CutoffHour int

	SleepTiers SleepTiers

	ActivityMultipliers  map[ActivityLevel]decimal.Decimal
	METTable             map[ExerciseType]decimal.Decimal
	IntensityMultipliers map[Intensity]decimal.Decimal

	// FemaleCorrection scales exercise calories when the subject is female.
	// Applied uniformly whenever sex is known.
	FemaleCorrection decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		CutoffHour: 2,
		SleepTiers: SleepTiers{Soso: 330, Good: 390, Excellent: 450, Oversleep: 541},
		ActivityMultipliers: map[ActivityLevel]decimal.Decimal{
			Sedentary:  decimal.RequireFromString("1.2"),
			Light:      decimal.RequireFromString("1.375"),
			Moderate:   decimal.RequireFromString("1.55"),
			Active:     decimal.RequireFromString("1.725"),
			VeryActive: decimal.RequireFromString("1.9"),
		},
		METTable: map[ExerciseType]decimal.Decimal{
			Walking:        decimal.RequireFromString("3.5"),
			Running:        decimal.RequireFromString("8.0"),
			Cycling:        decimal.RequireFromString("7.5"),
			Swimming:       decimal.RequireFromString("7.0"),
			WeightTraining: decimal.RequireFromString("6.0"),
			Yoga:           decimal.RequireFromString("3.0"),
		},
		IntensityMultipliers: map[Intensity]decimal.Decimal{
			IntensityLow:    decimal.RequireFromString("0.8"),
			IntensityMedium: decimal.RequireFromString("1.0"),
			IntensityHigh:   decimal.RequireFromString("1.2"),
		},
		FemaleCorrection: decimal.RequireFromString("0.95"),
	}
}
