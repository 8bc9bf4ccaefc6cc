package ledger_test

import (
	"testing"

	"backend/ledger"
)

func TestClassifySleepTiers(t *testing.T) {
	t.Parallel()
	cfg := ledger.DefaultConfig()

	cases := []struct {
		minutes int
		want    ledger.SleepStatus
	}{
		{-60, ledger.SleepBad},
		{0, ledger.SleepBad},
		{329, ledger.SleepBad},
		{330, ledger.SleepSoso},
		{389, ledger.SleepSoso},
		{390, ledger.SleepGood},
		{449, ledger.SleepGood},
		{450, ledger.SleepExcellent},
		{540, ledger.SleepExcellent},
		{541, ledger.SleepOversleep},
		{720, ledger.SleepOversleep},
	}
	for _, tc := range cases {
		if got := cfg.ClassifySleep(tc.minutes); got != tc.want {
			t.Fatalf("ClassifySleep(%d) = %s, want %s", tc.minutes, got, tc.want)
		}
	}
}
