package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Energy density per macro gram (Atwater factors).
var (
	kcalPerGramCarb    = decimal.NewFromInt(4)
	kcalPerGramProtein = decimal.NewFromInt(4)
	kcalPerGramFat     = decimal.NewFromInt(9)
)

// DailyLedger is the per-user-per-day aggregate: running totals over the
// day's food, exercise, sleep and body-measurement events plus the fields
// derived from them. One record exists per (UserID, Date) and Date is
// always a local midnight produced by Resolver.LogicalDay.
type DailyLedger struct {
	UserID uint
	Date   time.Time

	TotalCaloriesIn int
	TotalCarbs      decimal.Decimal
	TotalProtein    decimal.Decimal
	TotalFat        decimal.Decimal

	// Macro energy share of intake; nil while TotalCaloriesIn == 0.
	CarbsRatio   *decimal.Decimal
	ProteinRatio *decimal.Decimal
	FatRatio     *decimal.Decimal

	// Metabolic baseline stamped when the record is first materialized.
	// Not recomputed retroactively unless explicitly refreshed.
	BMR  int
	TDEE int

	TotalCaloriesOut int
	ExerciseMinutes  int
	ExerciseCount    int

	NetCalories int

	SleepDuration *int
	SleepStatus   *SleepStatus

	Weight     *decimal.Decimal
	BodyFatPct *decimal.Decimal
}

// NewDailyLedger returns the zero-total Active record for a key.
func NewDailyLedger(userID uint, date time.Time, bmr, tdee int) *DailyLedger {
	l := &DailyLedger{
		UserID:       userID,
		Date:         date,
		TotalCarbs:   decimal.Zero,
		TotalProtein: decimal.Zero,
		TotalFat:     decimal.Zero,
		BMR:          bmr,
		TDEE:         tdee,
	}
	l.recompute()
	return l
}

// recompute refreshes every derived field from the running totals. Called
// after each applied delta so the record never exposes a stale ratio or
// net balance.
func (l *DailyLedger) recompute() {
	if l.TotalCaloriesIn == 0 {
		l.CarbsRatio, l.ProteinRatio, l.FatRatio = nil, nil, nil
	} else {
		in := decimal.NewFromInt(int64(l.TotalCaloriesIn))
		carbs := l.TotalCarbs.Mul(kcalPerGramCarb).Div(in)
		protein := l.TotalProtein.Mul(kcalPerGramProtein).Div(in)
		fat := l.TotalFat.Mul(kcalPerGramFat).Div(in)
		l.CarbsRatio, l.ProteinRatio, l.FatRatio = &carbs, &protein, &fat
	}

	// Exercise burn counts on top of TDEE. The TDEE multipliers already
	// fold some activity in, so this double-counts a little; kept because
	// the stored field is defined this way and consumers rely on it.
	l.NetCalories = l.TotalCaloriesIn - l.TDEE - l.TotalCaloriesOut
}

// Clone returns an independent copy so an in-flight mutation can be
// discarded without the stored record ever holding partial state.
func (l *DailyLedger) Clone() *DailyLedger {
	cp := *l
	cp.CarbsRatio = cloneDec(l.CarbsRatio)
	cp.ProteinRatio = cloneDec(l.ProteinRatio)
	cp.FatRatio = cloneDec(l.FatRatio)
	cp.Weight = cloneDec(l.Weight)
	cp.BodyFatPct = cloneDec(l.BodyFatPct)
	if l.SleepDuration != nil {
		d := *l.SleepDuration
		cp.SleepDuration = &d
	}
	if l.SleepStatus != nil {
		s := *l.SleepStatus
		cp.SleepStatus = &s
	}
	return &cp
}

func cloneDec(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
