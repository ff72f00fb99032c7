package dcf

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PerformValuation runs one full DCF with the default neutral band:
// projection, discounting, terminal value, and the equity bridge. It refuses
// to run when the validator reports hard errors and never returns a
// partially computed result.
func PerformValuation(company CompanyData, assumptions ValuationAssumptions) (*ValuationResult, error) {
	return PerformValuationWithBand(company, assumptions, DefaultNeutralBand)
}

// PerformValuationWithBand is PerformValuation with an explicit neutral band
// for the assessment label.
func PerformValuationWithBand(company CompanyData, assumptions ValuationAssumptions, neutralBand float64) (*ValuationResult, error) {
	if err := ValidateCompany(company); err != nil {
		return nil, err
	}
	if v := Validate(assumptions); !v.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAssumptions, strings.Join(v.Errors, "; "))
	}

	// Seed is the company's trailing FCF. The FCF margin assumption rides
	// along for revenue-based variants but is not re-applied per year.
	flows := ProjectFCF(company.CurrentFCF, assumptions.RevenueGrowthRate, assumptions.ProjectionYears)

	factors, err := DiscountFactors(assumptions.WACC, assumptions.ProjectionYears)
	if err != nil {
		return nil, err
	}

	rows := make([]ProjectionRow, len(flows))
	var pvSum float64
	for t := range flows {
		pv := flows[t] * factors[t]
		rows[t] = ProjectionRow{
			Year:           t + 1,
			FCF:            flows[t],
			DiscountFactor: factors[t],
			PresentValue:   pv,
		}
		pvSum += pv
	}

	tv, pvTV, err := TerminalValue(flows[len(flows)-1], assumptions.TerminalGrowthRate, assumptions.WACC, assumptions.ProjectionYears)
	if err != nil {
		return nil, err
	}

	ev := pvSum + pvTV
	equity := ev - company.NetDebt
	fairValue := equity / company.SharesOutstanding
	upside := (fairValue - company.StockPrice) / company.StockPrice

	res := &ValuationResult{
		RunID:             uuid.NewString(),
		Company:           company,
		Assumptions:       assumptions,
		Projections:       rows,
		TerminalValue:     tv,
		PVTerminalValue:   pvTV,
		PVFCFSum:          pvSum,
		EnterpriseValue:   ev,
		EquityValue:       equity,
		FairValuePerShare: fairValue,
		UpsideDownside:    upside,
		Assessment:        Assess(upside, neutralBand),
	}
	if ev != 0 {
		res.FCFContribution = pvSum / ev
		res.TerminalContribution = pvTV / ev
	}
	if company.CurrentFCF > 0 {
		res.EVToFCF = ev / company.CurrentFCF
	}
	return res, nil
}

// Assess maps an upside fraction to the qualitative verdict. The neutral
// band is symmetric around the current price.
func Assess(upside, neutralBand float64) string {
	switch {
	case upside > neutralBand:
		return AssessmentUndervalued
	case upside < -neutralBand:
		return AssessmentOvervalued
	default:
		return AssessmentFairlyValued
	}
}
