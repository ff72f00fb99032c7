package dcf

import (
	"fmt"
	"math"
)

// TerminalValue capitalizes the final explicit-year cash flow into a growing
// perpetuity and discounts it back to today.
//
// FORMULA: TV = FCF_N × (1 + g) / (r - g)
//
//	PV(TV) = TV / (1 + r)^N
//
// The orchestrator validates r > g before calling; the check here is defense
// in depth for direct callers, since an uncontrolled denominator silently
// flips the sign of the whole valuation.
func TerminalValue(finalYearFCF, terminalGrowth, wacc float64, years int) (tv, pvTV float64, err error) {
	if wacc <= terminalGrowth {
		return 0, 0, fmt.Errorf("%w: terminal growth %v must be below discount rate %v",
			ErrInvalidAssumptions, terminalGrowth, wacc)
	}
	tv = finalYearFCF * (1 + terminalGrowth) / (wacc - terminalGrowth)
	pvTV = tv / math.Pow(1+wacc, float64(years))
	return tv, pvTV, nil
}
