package payroll

import (
	"math"
	"testing"
)

func TestAnnualTaxFirstBracket(t *testing.T) {
	got := FiveBracketSchedule.AnnualTax(5090, DefaultTaxUnit)
	if !approx(got, 407.2) {
		t.Fatalf("expected 407.2, got %v", got)
	}
}

func TestAnnualTaxThirdBracketMatchesClosedForm(t *testing.T) {
	uit := DefaultTaxUnit
	base := 25 * uit
	want := 5*uit*0.08 + 15*uit*0.14 + (base-20*uit)*0.17

	if got := FiveBracketSchedule.AnnualTax(base, uit); !approx(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAnnualTaxTopBracket(t *testing.T) {
	uit := DefaultTaxUnit
	base := 60 * uit
	want := 5*uit*0.08 + 15*uit*0.14 + 15*uit*0.17 + 10*uit*0.20 + (base-45*uit)*0.30

	if got := FiveBracketSchedule.AnnualTax(base, uit); !approx(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestAnnualTaxContinuousAtBoundaries(t *testing.T) {
	uit := DefaultTaxUnit
	for _, ceiling := range []float64{5, 20, 35, 45} {
		at := FiveBracketSchedule.AnnualTax(ceiling*uit, uit)
		below := FiveBracketSchedule.AnnualTax(ceiling*uit-0.01, uit)
		above := FiveBracketSchedule.AnnualTax(ceiling*uit+0.01, uit)

		// A cent either side moves the tax by at most a cent times the top rate.
		if math.Abs(at-below) > 0.01*0.30+1e-9 || math.Abs(above-at) > 0.01*0.30+1e-9 {
			t.Fatalf("discontinuity at %v UIT: below=%v at=%v above=%v", ceiling, below, at, above)
		}
	}
}

func TestAnnualTaxNonPositiveBase(t *testing.T) {
	if got := FiveBracketSchedule.AnnualTax(0, DefaultTaxUnit); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := FiveBracketSchedule.AnnualTax(-10, DefaultTaxUnit); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestBracketFor(t *testing.T) {
	uit := DefaultTaxUnit
	cases := []struct {
		base float64
		want int
	}{
		{0, -1},
		{5090, 0},
		{5 * uit, 0},
		{5*uit + 1, 1},
		{30 * uit, 2},
		{40 * uit, 3},
		{100 * uit, 4},
	}
	for _, tc := range cases {
		if got := FiveBracketSchedule.BracketFor(tc.base, uit); got != tc.want {
			t.Fatalf("base %v: expected bracket %d, got %d", tc.base, tc.want, got)
		}
	}
}

func TestTaxScheduleValidate(t *testing.T) {
	if err := FiveBracketSchedule.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bounded := TaxSchedule{{UpToTaxUnits: 5, Rate: 0.08}, {UpToTaxUnits: 10, Rate: 0.1}}
	if err := bounded.Validate(); err != ErrInvalidSchedule {
		t.Fatalf("expected ErrInvalidSchedule for bounded schedule, got %v", err)
	}

	unordered := TaxSchedule{{UpToTaxUnits: 10, Rate: 0.08}, {UpToTaxUnits: 5, Rate: 0.1}, {UpToTaxUnits: math.Inf(1), Rate: 0.2}}
	if err := unordered.Validate(); err != ErrInvalidSchedule {
		t.Fatalf("expected ErrInvalidSchedule for unordered schedule, got %v", err)
	}

	if err := (TaxSchedule{}).Validate(); err != ErrInvalidSchedule {
		t.Fatalf("expected ErrInvalidSchedule for empty schedule, got %v", err)
	}
}
