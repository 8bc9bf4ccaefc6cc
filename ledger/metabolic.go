package ledger

import "github.com/shopspring/decimal"

// Formula constants. Decimal rather than float64 because BMR/TDEE results
// feed ledger totals that accumulate over years of daily updates and are
// compared for equality in tests.
var (
	katchBase  = decimal.NewFromInt(370)
	katchSlope = decimal.RequireFromString("21.6")

	mifflinWeight = decimal.NewFromInt(10)
	mifflinHeight = decimal.RequireFromString("6.25")
	mifflinAge    = decimal.NewFromInt(5)
	mifflinMale   = decimal.NewFromInt(5)
	mifflinFemale = decimal.NewFromInt(161)

	hundred = decimal.NewFromInt(100)
)

// ComputeBMR picks the formula by data availability: Katch-McArdle when a
// body-fat percentage is known, Mifflin-St Jeor otherwise. Inputs are not
// validated here; plausibility checks belong to the caller.
func ComputeBMR(weightKg, heightCm decimal.Decimal, age int, sex Sex, bodyFatPct *decimal.Decimal) decimal.Decimal {
	if bodyFatPct != nil {
		leanMass := weightKg.Mul(hundred.Sub(*bodyFatPct)).Div(hundred)
		return katchBase.Add(katchSlope.Mul(leanMass))
	}

	bmr := mifflinWeight.Mul(weightKg).
		Add(mifflinHeight.Mul(heightCm)).
		Sub(mifflinAge.Mul(decimal.NewFromInt(int64(age))))
	if sex == Male {
		return bmr.Add(mifflinMale)
	}
	return bmr.Sub(mifflinFemale)
}

// ComputeTDEE scales a BMR by the activity multiplier for the given level.
// Unknown levels fall back to sedentary rather than zeroing the ledger's
// energy baseline.
func (c Config) ComputeTDEE(bmr decimal.Decimal, level ActivityLevel) decimal.Decimal {
	mult, ok := c.ActivityMultipliers[level]
	if !ok {
		mult = c.ActivityMultipliers[Sedentary]
	}
	return bmr.Mul(mult)
}
