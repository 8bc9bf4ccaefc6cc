package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"backend/ledger"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeBMRKatchMcArdle(t *testing.T) {
	t.Parallel()
	bf := dec("20")
	// lean mass 70 x 0.8 = 56, bmr = 370 + 21.6 x 56
	got := ledger.ComputeBMR(dec("70"), dec("175"), 30, ledger.Male, &bf)
	if !got.Equal(dec("1579.6")) {
		t.Fatalf("Katch-McArdle BMR = %s, want 1579.6", got)
	}
}

func TestComputeBMRKatchMcArdleIgnoresSexAndHeight(t *testing.T) {
	t.Parallel()
	bf := dec("20")
	male := ledger.ComputeBMR(dec("70"), dec("175"), 30, ledger.Male, &bf)
	female := ledger.ComputeBMR(dec("70"), dec("160"), 45, ledger.Female, &bf)
	if !male.Equal(female) {
		t.Fatalf("Katch-McArdle depends only on weight and body fat: %s vs %s", male, female)
	}
}

func TestComputeBMRMifflinStJeor(t *testing.T) {
	t.Parallel()
	// 10x70 + 6.25x175 - 5x30 + 5
	got := ledger.ComputeBMR(dec("70"), dec("175"), 30, ledger.Male, nil)
	if !got.Equal(dec("1648.75")) {
		t.Fatalf("Mifflin-St Jeor male BMR = %s, want 1648.75", got)
	}

	// female constant is -161 instead of +5
	got = ledger.ComputeBMR(dec("70"), dec("175"), 30, ledger.Female, nil)
	if !got.Equal(dec("1482.75")) {
		t.Fatalf("Mifflin-St Jeor female BMR = %s, want 1482.75", got)
	}
}

func TestComputeTDEE(t *testing.T) {
	t.Parallel()
	cfg := ledger.DefaultConfig()

	cases := []struct {
		level ledger.ActivityLevel
		want  string
	}{
		{ledger.Sedentary, "1200"},
		{ledger.Light, "1375"},
		{ledger.Moderate, "1550"},
		{ledger.Active, "1725"},
		{ledger.VeryActive, "1900"},
	}
	for _, tc := range cases {
		got := cfg.ComputeTDEE(dec("1000"), tc.level)
		if !got.Equal(dec(tc.want)) {
			t.Fatalf("TDEE(1000, %s) = %s, want %s", tc.level, got, tc.want)
		}
	}

	// unknown level falls back to sedentary instead of zeroing the baseline
	got := cfg.ComputeTDEE(dec("1000"), ledger.ActivityLevel("couch"))
	if !got.Equal(dec("1200")) {
		t.Fatalf("unknown level TDEE = %s, want sedentary 1200", got)
	}
}

func TestComputeTDEEExactDecimal(t *testing.T) {
	t.Parallel()
	cfg := ledger.DefaultConfig()
	bmr := ledger.ComputeBMR(dec("70"), dec("175"), 30, ledger.Male, nil)
	got := cfg.ComputeTDEE(bmr, ledger.Moderate)
	if !got.Equal(dec("2555.5625")) {
		t.Fatalf("TDEE(1648.75, moderate) = %s, want 2555.5625", got)
	}
}
