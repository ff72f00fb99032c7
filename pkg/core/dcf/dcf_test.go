package dcf

import (
	"errors"
	"math"
	"testing"
)

func TestProjectFCF(t *testing.T) {
	// 28000 at 20% growth:
	// Year 1: 33600, Year 2: 40320, Year 3: 48384, Year 4: 58060.8, Year 5: 69672.96
	flows := ProjectFCF(28000, 0.20, 5)

	if len(flows) != 5 {
		t.Fatalf("expected 5 flows, got %d", len(flows))
	}
	if math.Abs(flows[0]-33600) > 1e-9 {
		t.Errorf("year 1 FCF expected 33600, got %f", flows[0])
	}
	for tt := range flows {
		expected := 28000 * math.Pow(1.20, float64(tt+1))
		if math.Abs(flows[tt]-expected) > 1e-6 {
			t.Errorf("year %d FCF expected %f, got %f", tt+1, expected, flows[tt])
		}
	}
}

func TestProjectFCFNegativeGrowth(t *testing.T) {
	// Growth at or below -100% is computed exactly as given, not clamped.
	flows := ProjectFCF(1000, -1.5, 3)

	// 1000 * (-0.5) = -500, then 250, then -125: alternating signs.
	expected := []float64{-500, 250, -125}
	for i, want := range expected {
		if math.Abs(flows[i]-want) > 1e-9 {
			t.Errorf("year %d expected %f, got %f", i+1, want, flows[i])
		}
	}
}

func TestProjectFCFZeroYears(t *testing.T) {
	if flows := ProjectFCF(1000, 0.1, 0); flows != nil {
		t.Errorf("expected nil for zero years, got %v", flows)
	}
}

func TestDiscountFactors(t *testing.T) {
	factors, err := DiscountFactors(0.11, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for tt := range factors {
		expected := 1 / math.Pow(1.11, float64(tt+1))
		if math.Abs(factors[tt]-expected) > 1e-12 {
			t.Errorf("factor year %d expected %f, got %f", tt+1, expected, factors[tt])
		}
	}
}

func TestDiscountFactorsInvalidRate(t *testing.T) {
	for _, wacc := range []float64{-1.0, -1.5, -2.0} {
		_, err := DiscountFactors(wacc, 5)
		if !errors.Is(err, ErrInvalidRate) {
			t.Errorf("wacc %f: expected ErrInvalidRate, got %v", wacc, err)
		}
	}
}

func TestPresentValues(t *testing.T) {
	flows := []float64{100, 200, 300}
	factors := []float64{0.9, 0.8, 0.7}

	pvs := PresentValues(flows, factors)
	expected := []float64{90, 160, 210}
	for i, want := range expected {
		if math.Abs(pvs[i]-want) > 1e-9 {
			t.Errorf("pv %d expected %f, got %f", i, want, pvs[i])
		}
	}
}

func TestTerminalValue(t *testing.T) {
	// TV = 69672.96 * 1.03 / (0.11 - 0.03)
	tv, pvTV, err := TerminalValue(69672.96, 0.03, 0.11, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectedTV := 69672.96 * 1.03 / 0.08
	if math.Abs(tv-expectedTV) > 1e-6 {
		t.Errorf("TV expected %f, got %f", expectedTV, tv)
	}

	expectedPV := expectedTV / math.Pow(1.11, 5)
	if math.Abs(pvTV-expectedPV) > 1e-6 {
		t.Errorf("PV(TV) expected %f, got %f", expectedPV, pvTV)
	}
}

func TestTerminalValueRejectsInvertedRates(t *testing.T) {
	cases := []struct{ wacc, g float64 }{
		{0.05, 0.05}, // equal: denominator zero
		{0.04, 0.05}, // inverted: denominator negative
		{0.00, 0.03},
	}
	for _, c := range cases {
		_, _, err := TerminalValue(1000, c.g, c.wacc, 5)
		if !errors.Is(err, ErrInvalidAssumptions) {
			t.Errorf("wacc=%f g=%f: expected ErrInvalidAssumptions, got %v", c.wacc, c.g, err)
		}
	}
}
