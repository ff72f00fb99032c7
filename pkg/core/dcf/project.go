package dcf

// ProjectFCF projects free cash flow over the explicit forecast period.
//
// FORMULA: FCF_t = base × (1 + g)^t, t = 1..years
//
// Growth is applied exactly as given: a rate at or below -100% produces
// non-positive or sign-alternating flows, which is the caller's problem to
// flag, not ours to clamp.
func ProjectFCF(baseFCF, growthRate float64, years int) []float64 {
	if years <= 0 {
		return nil
	}
	flows := make([]float64, years)
	prev := baseFCF
	for t := range flows {
		prev *= 1 + growthRate
		flows[t] = prev
	}
	return flows
}
