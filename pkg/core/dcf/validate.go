package dcf

import (
	"fmt"
	"math"
)

// Accepted range for the explicit projection period.
const (
	MinProjectionYears = 1
	MaxProjectionYears = 20
)

// ValidationResult separates hard failures (the run must not proceed) from
// soft warnings (plausibility bounds worth surfacing but not fatal).
type ValidationResult struct {
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// IsValid reports whether the assumptions carry no hard errors.
func (r ValidationResult) IsValid() bool { return len(r.Errors) == 0 }

// Validate inspects a set of assumptions and accumulates every failure
// instead of stopping at the first. The wacc > terminal growth check is the
// load-bearing one: violating it makes the Gordon growth denominator zero or
// negative.
func Validate(a ValuationAssumptions) ValidationResult {
	var r ValidationResult

	if !finite(a.WACC) || !finite(a.TerminalGrowthRate) || !finite(a.RevenueGrowthRate) || !finite(a.FCFMargin) {
		r.Errors = append(r.Errors, "assumptions contain non-finite values")
		return r
	}

	if a.WACC <= a.TerminalGrowthRate {
		r.Errors = append(r.Errors, "terminal growth must be below discount rate")
	}
	if a.ProjectionYears < MinProjectionYears || a.ProjectionYears > MaxProjectionYears {
		r.Errors = append(r.Errors, fmt.Sprintf("projection years must be between %d and %d, got %d",
			MinProjectionYears, MaxProjectionYears, a.ProjectionYears))
	}
	if a.WACC <= 0 {
		r.Errors = append(r.Errors, "discount rate must be positive")
	}

	// Plausibility bounds. Out-of-range values are suspicious but the math
	// is still defined, so they stay soft.
	if a.RevenueGrowthRate < -0.5 || a.RevenueGrowthRate > 1.0 {
		r.Warnings = append(r.Warnings, "revenue growth rate should be between -50% and 100%")
	}
	if a.TerminalGrowthRate < 0 || a.TerminalGrowthRate > 0.05 {
		r.Warnings = append(r.Warnings, "terminal growth rate should be between 0% and 5%")
	}
	if a.FCFMargin < 0 || a.FCFMargin > 1.0 {
		r.Warnings = append(r.Warnings, "FCF margin should be between 0% and 100%")
	}

	return r
}

// ValidateCompany checks the market snapshot. Shares outstanding and price
// are divisors downstream, so non-positive values are hard errors.
func ValidateCompany(c CompanyData) error {
	if !finite(c.StockPrice) || !finite(c.SharesOutstanding) || !finite(c.CurrentFCF) || !finite(c.NetDebt) {
		return fmt.Errorf("%w: company data contains non-finite values", ErrInvalidCompanyData)
	}
	if c.SharesOutstanding <= 0 {
		return fmt.Errorf("%w: shares outstanding must be positive, got %v", ErrInvalidCompanyData, c.SharesOutstanding)
	}
	if c.StockPrice <= 0 {
		return fmt.Errorf("%w: stock price must be positive, got %v", ErrInvalidCompanyData, c.StockPrice)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
