// Command demo walks through the full valuation toolkit on two example
// companies: a single valuation with a console report, one-way and two-way
// sensitivity, bull/base/bear scenario comparison, and Excel/chart exports.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"dcf_valuation/pkg/chart"
	"dcf_valuation/pkg/core/dcf"
	"dcf_valuation/pkg/core/input"
	"dcf_valuation/pkg/core/sensitivity"
	"dcf_valuation/pkg/export"
	"dcf_valuation/pkg/report"
)

func main() {
	godotenv.Load()

	outDir := flag.String("out", "out", "Directory for Excel and chart artifacts")
	analysisPath := flag.String("f", "", "Hjson analysis file overriding the built-in example")
	flag.Parse()

	nvidia := dcf.CompanyData{
		Ticker:            "NVDA",
		CompanyName:       "NVIDIA Corporation",
		StockPrice:        145.00,
		SharesOutstanding: 24000,
		CurrentFCF:        28000,
		NetDebt:           -8000, // net cash
	}
	base := dcf.ValuationAssumptions{
		RevenueGrowthRate:  0.20,
		FCFMargin:          0.35,
		TerminalGrowthRate: 0.03,
		WACC:               0.11,
		ProjectionYears:    5,
	}

	if *analysisPath != "" {
		analysis, err := input.LoadAnalysis(*analysisPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		warnings, err := analysis.Validate()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		for _, w := range warnings {
			fmt.Printf("Warning: %s\n", w)
		}
		nvidia = analysis.Company
		base = analysis.Assumptions
	}

	res, err := dcf.PerformValuation(nvidia, base)
	if err != nil {
		fmt.Printf("Error: valuation failed: %v\n", err)
		os.Exit(1)
	}
	report.WriteSummary(os.Stdout, res)

	// One-way sweeps.
	fmt.Println("\nWACC SENSITIVITY:")
	waccPoints, _ := sensitivity.OneWay(nvidia, base, sensitivity.ParamWACC,
		[]float64{0.09, 0.10, 0.11, 0.12, 0.13})
	report.WriteSensitivityTable(os.Stdout, sensitivity.ParamWACC, waccPoints)

	fmt.Println("\nREVENUE GROWTH SENSITIVITY:")
	growthPoints, _ := sensitivity.OneWay(nvidia, base, sensitivity.ParamRevenueGrowth,
		[]float64{0.10, 0.15, 0.20, 0.25, 0.30})
	report.WriteSensitivityTable(os.Stdout, sensitivity.ParamRevenueGrowth, growthPoints)

	// Two-way grid.
	fmt.Println("\nTWO-WAY SENSITIVITY: WACC vs Revenue Growth:")
	grid, err := sensitivity.TwoWay(context.Background(), nvidia, base,
		sensitivity.ParamWACC, []float64{0.09, 0.10, 0.11, 0.12, 0.13},
		sensitivity.ParamRevenueGrowth, []float64{0.15, 0.18, 0.20, 0.22, 0.25})
	if err != nil {
		fmt.Printf("Error: two-way sensitivity failed: %v\n", err)
		os.Exit(1)
	}
	report.WriteGrid(os.Stdout, grid)

	// Bull/base/bear comparison.
	fmt.Println("\nSCENARIO ANALYSIS:")
	bull := base
	bull.RevenueGrowthRate = 0.30
	bull.TerminalGrowthRate = 0.035
	bull.WACC = 0.10
	bear := base
	bear.RevenueGrowthRate = 0.10
	bear.TerminalGrowthRate = 0.025
	bear.WACC = 0.13

	labeled := sensitivity.RunScenarios(nvidia, []sensitivity.Scenario{
		{Name: "Bear Case", Assumptions: bear},
		{Name: "Base Case", Assumptions: base},
		{Name: "Bull Case", Assumptions: bull},
	})
	report.WriteComparison(os.Stdout, sensitivity.CompareValuations(labeled))

	// Second example: a net-cash megacap at lower growth.
	apple := dcf.CompanyData{
		Ticker:            "AAPL",
		CompanyName:       "Apple Inc.",
		StockPrice:        235.00,
		SharesOutstanding: 15200,
		CurrentFCF:        110000,
		NetDebt:           -60000,
	}
	appleAssumptions := dcf.ValuationAssumptions{
		RevenueGrowthRate:  0.08,
		FCFMargin:          0.30,
		TerminalGrowthRate: 0.025,
		WACC:               0.09,
		ProjectionYears:    5,
	}
	appleRes, err := dcf.PerformValuation(apple, appleAssumptions)
	if err != nil {
		fmt.Printf("Error: valuation failed: %v\n", err)
		os.Exit(1)
	}
	report.WriteSummary(os.Stdout, appleRes)

	// Artifacts.
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Printf("Error: creating output dir: %v\n", err)
		os.Exit(1)
	}

	xlsxPath := filepath.Join(*outDir, strings.ToLower(res.Company.Ticker)+"_dcf.xlsx")
	if err := export.ToFile(res, grid, xlsxPath); err != nil {
		fmt.Printf("Error: excel export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nExcel workbook written to %s\n", xlsxPath)

	tornado := tornadoBars(nvidia, base)
	chartDir := filepath.Join(*outDir, "charts")
	if err := chart.RenderAll(chartDir, res, grid, tornado); err != nil {
		fmt.Printf("Error: chart rendering failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Charts written to %s\n", chartDir)
}

// tornadoBars sweeps each rate +/-20% around its base value and collects the
// resulting fair value span.
func tornadoBars(company dcf.CompanyData, base dcf.ValuationAssumptions) []chart.TornadoBar {
	params := []struct {
		p    sensitivity.Parameter
		base float64
	}{
		{sensitivity.ParamWACC, base.WACC},
		{sensitivity.ParamRevenueGrowth, base.RevenueGrowthRate},
		{sensitivity.ParamTerminalGrowth, base.TerminalGrowthRate},
	}

	var bars []chart.TornadoBar
	for _, pr := range params {
		points, err := sensitivity.OneWay(company, base, pr.p,
			[]float64{pr.base * 0.8, pr.base * 1.2})
		if err != nil || points[0].Err != "" || points[1].Err != "" {
			continue
		}
		lo, hi := points[0].FairValue, points[1].FairValue
		if lo > hi {
			lo, hi = hi, lo
		}
		bars = append(bars, chart.TornadoBar{Param: pr.p, Low: lo, High: hi})
	}
	return bars
}
