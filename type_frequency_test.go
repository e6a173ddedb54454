package organizer

import (
	"math"
	"testing"
)

func TestFrequency_ToMonthly(t *testing.T) {
	testCases := []struct {
		name      string
		frequency string
		amount    float64
		want      float64
	}{
		{name: "weekly", frequency: "weekly", amount: 100, want: 100 * 52.0 / 12.0},
		{name: "biweekly", frequency: "biweekly", amount: 100, want: 100 * 26.0 / 12.0},
		{name: "annual", frequency: "annual", amount: 100, want: 100.0 / 12.0},
		{name: "monthly", frequency: "monthly", amount: 100, want: 100},
		{name: "unknown falls back to monthly", frequency: "bogus", amount: 100, want: 100},
		{name: "empty falls back to monthly", frequency: "", amount: 100, want: 100},
		{name: "upper case is accepted", frequency: "WEEKLY", amount: 100, want: 100 * 52.0 / 12.0},
		{name: "zero stays zero", frequency: "weekly", amount: 0, want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseFrequency(tc.frequency).ToMonthly(M(tc.amount)).InexactFloat64()
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("toMonthly(%v, %q) = %v, want %v", tc.amount, tc.frequency, got, tc.want)
			}
		})
	}
}

func TestParseFrequency_RoundTrip(t *testing.T) {
	for _, f := range []Frequency{Weekly, Biweekly, Monthly, Annual} {
		if got := ParseFrequency(f.String()); got != f {
			t.Errorf("ParseFrequency(%q) = %v, want %v", f.String(), got, f)
		}
	}
}

func TestMoney_USDFormatting(t *testing.T) {
	testCases := []struct {
		amount float64
		want   string
	}{
		{1234.56, "$1,234.56"},
		{0, "$0.00"},
		{-50, "-$50.00"},
	}
	for _, tc := range testCases {
		if got := M(tc.amount).String(); got != tc.want {
			t.Errorf("M(%v).String() = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestParseMoney_CoercesBadInputToZero(t *testing.T) {
	for _, s := range []string{"", "abc", "12,34"} {
		if got := ParseMoney(s); !got.IsZero() {
			t.Errorf("ParseMoney(%q) = %v, want zero", s, got)
		}
	}
	if got := ParseMoney("12.50").InexactFloat64(); got != 12.5 {
		t.Errorf("ParseMoney(12.50) = %v", got)
	}
}
