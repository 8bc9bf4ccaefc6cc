package ledger

type SleepStatus string

const (
	SleepBad       SleepStatus = "bad"
	SleepSoso      SleepStatus = "soso"
	SleepGood      SleepStatus = "good"
	SleepExcellent SleepStatus = "excellent"
	SleepOversleep SleepStatus = "oversleep"
)

// ClassifySleep maps a sleep duration in minutes to a quality tier. Total
// over all integers: negative durations fall in the open-ended Bad range.
func (c Config) ClassifySleep(durationMinutes int) SleepStatus {
	switch {
	case durationMinutes < c.SleepTiers.Soso:
		return SleepBad
	case durationMinutes < c.SleepTiers.Good:
		return SleepSoso
	case durationMinutes < c.SleepTiers.Excellent:
		return SleepGood
	case durationMinutes < c.SleepTiers.Oversleep:
		return SleepExcellent
	default:
		return SleepOversleep
	}
}
