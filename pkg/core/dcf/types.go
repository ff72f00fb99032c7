// Package dcf implements a single-stage discounted cash flow valuation:
// explicit free cash flow projection, per-year discounting, Gordon growth
// terminal value, and the equity bridge down to a fair value per share.
package dcf

// CompanyData is the market snapshot a valuation runs against. It is a plain
// value struct: every component receives its own copy and nothing mutates it.
type CompanyData struct {
	Ticker            string  `json:"ticker"`
	CompanyName       string  `json:"company_name"`
	StockPrice        float64 `json:"stock_price"`
	SharesOutstanding float64 `json:"shares_outstanding"` // millions
	CurrentFCF        float64 `json:"current_fcf"`        // millions, trailing
	NetDebt           float64 `json:"net_debt"`           // millions, negative = net cash
}

// MarketCap returns the current market capitalization.
func (c CompanyData) MarketCap() float64 {
	return c.StockPrice * c.SharesOutstanding
}

// ValuationAssumptions holds the modeling parameters for one scenario.
// Sensitivity sweeps derive new instances by copying and overriding fields;
// value semantics make that a plain struct copy.
type ValuationAssumptions struct {
	RevenueGrowthRate  float64 `json:"revenue_growth_rate"`
	FCFMargin          float64 `json:"fcf_margin"`
	TerminalGrowthRate float64 `json:"terminal_growth_rate"`
	WACC               float64 `json:"wacc"`
	ProjectionYears    int     `json:"projection_years"`
}

// ProjectionRow is one forecast year of the explicit period.
type ProjectionRow struct {
	Year           int     `json:"year"`
	FCF            float64 `json:"fcf"`
	DiscountFactor float64 `json:"discount_factor"`
	PresentValue   float64 `json:"present_value"`
}

// Assessment labels for the fair value vs. market price verdict.
const (
	AssessmentUndervalued  = "UNDERVALUED"
	AssessmentOvervalued   = "OVERVALUED"
	AssessmentFairlyValued = "FAIRLY VALUED"
)

// DefaultNeutralBand is the symmetric band around the market price inside
// which a valuation is labeled fairly valued.
const DefaultNeutralBand = 0.10

// ValuationResult is the output of one full valuation run. The engine holds
// no reference to it after returning.
type ValuationResult struct {
	RunID string `json:"run_id"`

	Company     CompanyData          `json:"company"`
	Assumptions ValuationAssumptions `json:"assumptions"`

	Projections []ProjectionRow `json:"projections"`

	TerminalValue   float64 `json:"terminal_value"`
	PVTerminalValue float64 `json:"pv_terminal_value"`
	PVFCFSum        float64 `json:"pv_fcf_sum"`

	EnterpriseValue   float64 `json:"enterprise_value"`
	EquityValue       float64 `json:"equity_value"`
	FairValuePerShare float64 `json:"fair_value_per_share"`

	// UpsideDownside is (fair value - price) / price, as a fraction.
	UpsideDownside float64 `json:"upside_downside"`
	Assessment     string  `json:"assessment"`

	// Contribution fractions sum to 1 for any valid run.
	FCFContribution      float64 `json:"fcf_contribution"`
	TerminalContribution float64 `json:"terminal_contribution"`

	// EVToFCF is the implied EV multiple on current FCF; zero when the
	// company's trailing FCF is not positive.
	EVToFCF float64 `json:"ev_to_fcf,omitempty"`
}
