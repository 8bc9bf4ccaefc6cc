package ledger

import "time"

// Resolver maps a wall-clock timestamp to the logical calendar day it
// belongs to. Events before CutoffHour (default 02:00) count toward the
// previous day, so a midnight snack lands on the day it "belongs" to.
type Resolver struct {
	CutoffHour int
}

func (c Config) Resolver() Resolver { return Resolver{CutoffHour: c.CutoffHour} }

// LogicalDay returns the calendar date (local midnight) the timestamp is
// attributed to. Exactly CutoffHour:00:00 belongs to the current day;
// 00:00:00 belongs to the previous one. Works in whatever location t
// carries; no timezone conversion is done here.
func (r Resolver) LogicalDay(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if t.Hour() >= r.CutoffHour {
		return day
	}
	prev := day.AddDate(0, 0, -1)
	// Stepping back a day never raises the year. If it did, the arithmetic
	// wrapped at the representable minimum; fall back to the truncated day.
	// Before/After are not trustworthy on a wrapped value, years are.
	if prev.Year() > day.Year() {
		return day
	}
	return prev
}
