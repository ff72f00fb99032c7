package chart

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dcf_valuation/pkg/core/dcf"
	"dcf_valuation/pkg/core/sensitivity"
)

func chartFixtures(t *testing.T) (*dcf.ValuationResult, *sensitivity.Grid) {
	t.Helper()
	company := dcf.CompanyData{
		Ticker:            "NVDA",
		CompanyName:       "NVIDIA Corporation",
		StockPrice:        145.00,
		SharesOutstanding: 24000,
		CurrentFCF:        28000,
		NetDebt:           -8000,
	}
	assumptions := dcf.ValuationAssumptions{
		RevenueGrowthRate:  0.20,
		FCFMargin:          0.35,
		TerminalGrowthRate: 0.03,
		WACC:               0.11,
		ProjectionYears:    5,
	}

	res, err := dcf.PerformValuation(company, assumptions)
	require.NoError(t, err)

	grid, err := sensitivity.TwoWay(context.Background(), company, assumptions,
		sensitivity.ParamWACC, []float64{0.09, 0.11, 0.13},
		sensitivity.ParamTerminalGrowth, []float64{0.02, 0.03})
	require.NoError(t, err)
	return res, grid
}

func TestFCFProjectionRenders(t *testing.T) {
	res, _ := chartFixtures(t)
	var buf bytes.Buffer
	require.NoError(t, FCFProjection(res).Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "NVDA")
	assert.Contains(t, out, "Year 5")
}

func TestValueBridgeRenders(t *testing.T) {
	res, _ := chartFixtures(t)
	var buf bytes.Buffer
	require.NoError(t, ValueBridge(res).Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "Enterprise Value")
	assert.Contains(t, out, "Equity Value")
}

func TestSensitivityHeatmapRenders(t *testing.T) {
	_, grid := chartFixtures(t)
	var buf bytes.Buffer
	require.NoError(t, SensitivityHeatmap(grid).Render(&buf))
	out := buf.String()
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "Fair Value Per Share")
}

func TestTornadoRenders(t *testing.T) {
	res, _ := chartFixtures(t)
	bars := []TornadoBar{
		{Param: sensitivity.ParamWACC, Low: 22.0, High: 41.0},
		{Param: sensitivity.ParamRevenueGrowth, Low: 25.0, High: 36.0},
	}
	var buf bytes.Buffer
	require.NoError(t, Tornado(res.FairValuePerShare, bars).Render(&buf))
	assert.Contains(t, buf.String(), "Tornado Chart")
}

func TestRenderAll(t *testing.T) {
	res, grid := chartFixtures(t)
	dir := filepath.Join(t.TempDir(), "charts")

	bars := []TornadoBar{{Param: sensitivity.ParamWACC, Low: 22.0, High: 41.0}}
	require.NoError(t, RenderAll(dir, res, grid, bars))

	for _, name := range []string{
		"fcf_projections.html",
		"value_bridge.html",
		"sensitivity_heatmap.html",
		"tornado.html",
	} {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(raw), "echarts", name)
	}
}
