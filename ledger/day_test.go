package ledger_test

import (
	"testing"
	"time"

	"backend/ledger"
)

func TestLogicalDayCutoffBoundaries(t *testing.T) {
	t.Parallel()
	r := ledger.DefaultConfig().Resolver()

	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	prev := time.Date(2026, 3, 13, 0, 0, 0, 0, time.Local)

	cases := []struct {
		name string
		ts   time.Time
		want time.Time
	}{
		{"one second before cutoff", time.Date(2026, 3, 14, 1, 59, 59, 0, time.Local), prev},
		{"exactly at cutoff", time.Date(2026, 3, 14, 2, 0, 0, 0, time.Local), day},
		{"midnight", time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local), prev},
		{"just after cutoff", time.Date(2026, 3, 14, 2, 0, 1, 0, time.Local), day},
		{"late evening", time.Date(2026, 3, 14, 23, 59, 59, 0, time.Local), day},
		{"mid afternoon", time.Date(2026, 3, 14, 15, 30, 0, 0, time.Local), day},
	}
	for _, tc := range cases {
		got := r.LogicalDay(tc.ts)
		if !got.Equal(tc.want) {
			t.Fatalf("%s: LogicalDay(%v) = %v, want %v", tc.name, tc.ts, got, tc.want)
		}
	}
}

func TestLogicalDayIgnoresMinutesAndSeconds(t *testing.T) {
	t.Parallel()
	r := ledger.DefaultConfig().Resolver()

	a := r.LogicalDay(time.Date(2026, 7, 1, 1, 0, 0, 0, time.Local))
	b := r.LogicalDay(time.Date(2026, 7, 1, 1, 59, 59, 999999999, time.Local))
	if !a.Equal(b) {
		t.Fatalf("same hour must resolve identically: %v vs %v", a, b)
	}
	if a.Hour() != 0 || a.Minute() != 0 || a.Second() != 0 {
		t.Fatalf("logical day must be a midnight, got %v", a)
	}
}

func TestLogicalDayDeterministic(t *testing.T) {
	t.Parallel()
	r := ledger.DefaultConfig().Resolver()
	ts := time.Date(2026, 1, 2, 1, 15, 42, 0, time.Local)
	if !r.LogicalDay(ts).Equal(r.LogicalDay(ts)) {
		t.Fatal("LogicalDay must be deterministic for the same timestamp")
	}
}

func TestLogicalDayCustomCutoff(t *testing.T) {
	t.Parallel()
	r := ledger.Resolver{CutoffHour: 4}

	got := r.LogicalDay(time.Date(2026, 5, 10, 3, 30, 0, 0, time.Local))
	want := time.Date(2026, 5, 9, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("3:30 with cutoff 4 should be previous day, got %v", got)
	}

	got = r.LogicalDay(time.Date(2026, 5, 10, 4, 0, 0, 0, time.Local))
	want = time.Date(2026, 5, 10, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("4:00 with cutoff 4 should be same day, got %v", got)
	}
}

func TestLogicalDayAtRepresentableMinimum(t *testing.T) {
	t.Parallel()
	r := ledger.DefaultConfig().Resolver()

	// Midnight on the earliest representable day: stepping back a day
	// wraps AddDate to the far positive future, and the wrapped value even
	// compares Before the original, so only the year check catches it.
	// The fallback is the timestamp's own day.
	min := time.Date(-292277022399, 1, 1, 0, 0, 0, 0, time.UTC)
	got := r.LogicalDay(min)
	if !got.Equal(min) {
		t.Fatalf("LogicalDay at time minimum must fall back to the truncated day, got %v", got)
	}
	if got.Year() > min.Year() {
		t.Fatalf("wrapped date leaked out of LogicalDay: %v", got)
	}
}

func TestLogicalDayMonthAndYearBoundaries(t *testing.T) {
	t.Parallel()
	r := ledger.DefaultConfig().Resolver()

	got := r.LogicalDay(time.Date(2026, 1, 1, 0, 30, 0, 0, time.Local))
	want := time.Date(2025, 12, 31, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("new year 00:30 should resolve to Dec 31, got %v", got)
	}

	got = r.LogicalDay(time.Date(2026, 3, 1, 1, 0, 0, 0, time.Local))
	want = time.Date(2026, 2, 28, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("Mar 1 01:00 should resolve to Feb 28, got %v", got)
	}
}
