package dcf

import (
	"fmt"
	"math"
)

// DiscountFactors returns the factor converting each explicit-period cash
// flow to present value.
//
// FORMULA: DF_t = 1 / (1 + r)^t, t = 1..years
func DiscountFactors(wacc float64, years int) ([]float64, error) {
	if wacc <= -1 {
		return nil, fmt.Errorf("%w: discount rate must be greater than -100%%, got %v", ErrInvalidRate, wacc)
	}
	if years <= 0 {
		return nil, nil
	}
	factors := make([]float64, years)
	for t := range factors {
		factors[t] = 1 / math.Pow(1+wacc, float64(t+1))
	}
	return factors, nil
}

// PresentValues multiplies each cash flow by its discount factor,
// index-aligned with the inputs.
func PresentValues(flows, factors []float64) []float64 {
	n := len(flows)
	if len(factors) < n {
		n = len(factors)
	}
	pvs := make([]float64, n)
	for t := 0; t < n; t++ {
		pvs[t] = flows[t] * factors[t]
	}
	return pvs
}
