package dcf

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func validAssumptions() ValuationAssumptions {
	return ValuationAssumptions{
		RevenueGrowthRate:  0.20,
		FCFMargin:          0.35,
		TerminalGrowthRate: 0.03,
		WACC:               0.11,
		ProjectionYears:    5,
	}
}

func TestValidateAccepts(t *testing.T) {
	r := Validate(validAssumptions())
	if !r.IsValid() {
		t.Fatalf("expected valid, got errors: %v", r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", r.Warnings)
	}
}

func TestValidateRejectsInvertedRates(t *testing.T) {
	// Any wacc <= terminal growth must be a hard error.
	pairs := []struct{ wacc, g float64 }{
		{0.03, 0.03},
		{0.02, 0.03},
		{0.05, 0.10},
		{0.0, 0.0},
		{-0.01, 0.02},
	}
	for _, p := range pairs {
		a := validAssumptions()
		a.WACC = p.wacc
		a.TerminalGrowthRate = p.g

		r := Validate(a)
		if r.IsValid() {
			t.Errorf("wacc=%f g=%f: expected rejection", p.wacc, p.g)
			continue
		}
		found := false
		for _, e := range r.Errors {
			if strings.Contains(e, "terminal growth must be below discount rate") {
				found = true
			}
		}
		if !found {
			t.Errorf("wacc=%f g=%f: missing the rate-ordering error, got %v", p.wacc, p.g, r.Errors)
		}
	}
}

func TestValidateProjectionYearsRange(t *testing.T) {
	for _, years := range []int{0, -1, 21, 100} {
		a := validAssumptions()
		a.ProjectionYears = years
		if Validate(a).IsValid() {
			t.Errorf("years=%d: expected rejection", years)
		}
	}
	for _, years := range []int{1, 10, 20} {
		a := validAssumptions()
		a.ProjectionYears = years
		if !Validate(a).IsValid() {
			t.Errorf("years=%d: expected acceptance", years)
		}
	}
}

func TestValidateAccumulatesAllErrors(t *testing.T) {
	a := ValuationAssumptions{
		RevenueGrowthRate:  0.20,
		TerminalGrowthRate: 0.05,
		WACC:               -0.02, // both non-positive and below terminal growth
		ProjectionYears:    0,
	}
	r := Validate(a)
	if len(r.Errors) < 3 {
		t.Errorf("expected all three hard errors accumulated, got %v", r.Errors)
	}
}

func TestValidateSoftWarnings(t *testing.T) {
	a := validAssumptions()
	a.RevenueGrowthRate = 1.5 // above 100%
	a.FCFMargin = -0.1

	r := Validate(a)
	if !r.IsValid() {
		t.Fatalf("plausibility bounds must stay soft, got hard errors: %v", r.Errors)
	}
	if len(r.Warnings) != 2 {
		t.Errorf("expected two warnings, got %v", r.Warnings)
	}
}

func TestValidateNonFinite(t *testing.T) {
	a := validAssumptions()
	a.WACC = math.NaN()
	if Validate(a).IsValid() {
		t.Error("NaN wacc must be a hard error")
	}

	a = validAssumptions()
	a.RevenueGrowthRate = math.Inf(1)
	if Validate(a).IsValid() {
		t.Error("infinite growth must be a hard error")
	}
}

func TestValidateCompany(t *testing.T) {
	c := CompanyData{Ticker: "NVDA", StockPrice: 145, SharesOutstanding: 24000, CurrentFCF: 28000}
	if err := ValidateCompany(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c.SharesOutstanding = 0
	if err := ValidateCompany(c); !errors.Is(err, ErrInvalidCompanyData) {
		t.Errorf("zero shares: expected ErrInvalidCompanyData, got %v", err)
	}

	c.SharesOutstanding = 24000
	c.StockPrice = -1
	if err := ValidateCompany(c); !errors.Is(err, ErrInvalidCompanyData) {
		t.Errorf("negative price: expected ErrInvalidCompanyData, got %v", err)
	}
}
