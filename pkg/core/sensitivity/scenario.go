package sensitivity

import (
	"dcf_valuation/pkg/core/dcf"
)

// Scenario is a named assumption set, typically a bull/base/bear variant of
// the same company.
type Scenario struct {
	Name        string                   `json:"name"`
	Assumptions dcf.ValuationAssumptions `json:"assumptions"`
}

// LabeledResult pairs a scenario name with its valuation outcome. Err is set
// when that scenario's assumptions were rejected; other scenarios still run.
type LabeledResult struct {
	Label  string
	Result *dcf.ValuationResult
	Err    string
}

// RunScenarios values each scenario independently, preserving input order.
func RunScenarios(company dcf.CompanyData, scenarios []Scenario) []LabeledResult {
	out := make([]LabeledResult, len(scenarios))
	for i, s := range scenarios {
		out[i] = LabeledResult{Label: s.Name}
		res, err := dcf.PerformValuation(company, s.Assumptions)
		if err != nil {
			out[i].Err = err.Error()
			continue
		}
		out[i].Result = res
	}
	return out
}

// ScenarioSummary is one row of a side-by-side scenario comparison.
type ScenarioSummary struct {
	Scenario             string  `json:"scenario"`
	FairValue            float64 `json:"fair_value"`
	Upside               float64 `json:"upside"`
	EnterpriseValue      float64 `json:"enterprise_value"`
	TerminalContribution float64 `json:"terminal_contribution"`
	Assessment           string  `json:"assessment"`
	Err                  string  `json:"error,omitempty"`
}

// CompareValuations tabulates already-computed runs side by side. Pure
// aggregation, no recomputation.
func CompareValuations(results []LabeledResult) []ScenarioSummary {
	summaries := make([]ScenarioSummary, len(results))
	for i, lr := range results {
		summaries[i] = ScenarioSummary{Scenario: lr.Label, Err: lr.Err}
		if lr.Result == nil {
			continue
		}
		summaries[i].FairValue = lr.Result.FairValuePerShare
		summaries[i].Upside = lr.Result.UpsideDownside
		summaries[i].EnterpriseValue = lr.Result.EnterpriseValue
		summaries[i].TerminalContribution = lr.Result.TerminalContribution
		summaries[i].Assessment = lr.Result.Assessment
	}
	return summaries
}
