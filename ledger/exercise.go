package ledger

import "github.com/shopspring/decimal"

var sixty = decimal.NewFromInt(60)

// ExerciseCalories computes the energy burned by a session from its
// MET-equivalent: table MET for the type, scaled by intensity, then
// kcal = MET x weightKg x hours, rounded to the nearest whole calorie.
// When sex is known the configured female correction is applied; passing
// nil skips it. Total over all non-negative durations — minimum-duration
// enforcement is the caller's validation concern.
func (c Config) ExerciseCalories(typ ExerciseType, intensity Intensity, durationMinutes int, weightKg decimal.Decimal, sex *Sex) int {
	base, ok := c.METTable[typ]
	if !ok {
		base = c.METTable[Walking]
	}
	mult, ok := c.IntensityMultipliers[intensity]
	if !ok {
		mult = c.IntensityMultipliers[IntensityMedium]
	}

	kcal := base.Mul(mult).
		Mul(weightKg).
		Mul(decimal.NewFromInt(int64(durationMinutes))).
		Div(sixty)
	if sex != nil && *sex == Female {
		kcal = kcal.Mul(c.FemaleCorrection)
	}
	return int(kcal.Round(0).IntPart())
}
