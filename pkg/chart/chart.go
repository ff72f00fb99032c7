// Package chart renders valuation artifacts as self-contained HTML charts:
// FCF projection bars, a value bridge, a two-way sensitivity heatmap, and a
// tornado chart. All numbers come in precomputed; this package only plots.
package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"dcf_valuation/pkg/core/dcf"
	"dcf_valuation/pkg/core/sensitivity"
)

// FCFProjection plots projected FCF and its present value per forecast year.
func FCFProjection(res *dcf.ValuationResult) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    fmt.Sprintf("FCF Projections: %s", res.Company.Ticker),
		Subtitle: "Projected vs. present value, $M",
	}))

	years := make([]string, len(res.Projections))
	fcf := make([]opts.BarData, len(res.Projections))
	pv := make([]opts.BarData, len(res.Projections))
	for i, p := range res.Projections {
		years[i] = fmt.Sprintf("Year %d", p.Year)
		fcf[i] = opts.BarData{Value: p.FCF}
		pv[i] = opts.BarData{Value: p.PresentValue}
	}

	bar.SetXAxis(years).
		AddSeries("Projected FCF", fcf).
		AddSeries("PV of FCF", pv)
	return bar
}

// ValueBridge plots the path from discounted cash flows to equity value.
func ValueBridge(res *dcf.ValuationResult) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    fmt.Sprintf("Value Bridge: %s", res.Company.Ticker),
		Subtitle: "$M",
	}))

	labels := []string{"PV of FCF", "PV of Terminal Value", "Enterprise Value", "Less: Net Debt", "Equity Value"}
	data := []opts.BarData{
		{Value: res.PVFCFSum},
		{Value: res.PVTerminalValue},
		{Value: res.EnterpriseValue},
		{Value: -res.Company.NetDebt},
		{Value: res.EquityValue},
	}
	bar.SetXAxis(labels).AddSeries("Value", data)
	return bar
}

// SensitivityHeatmap plots a two-way grid as fair value per share over the
// (Param1, Param2) plane. Cells with errors are omitted, leaving holes.
func SensitivityHeatmap(grid *sensitivity.Grid) *charts.HeatMap {
	hm := charts.NewHeatMap()

	xLabels := make([]string, len(grid.Values2))
	for j, v := range grid.Values2 {
		xLabels[j] = fmt.Sprintf("%.1f%%", v*100)
	}
	yLabels := make([]string, len(grid.Values1))
	for i, v := range grid.Values1 {
		yLabels[i] = fmt.Sprintf("%.1f%%", v*100)
	}

	var data []opts.HeatMapData
	min, max := 0.0, 0.0
	first := true
	for i, row := range grid.Cells {
		for j, cell := range row {
			if cell.Err != "" {
				continue
			}
			if first || cell.FairValue < min {
				min = cell.FairValue
			}
			if first || cell.FairValue > max {
				max = cell.FairValue
			}
			first = false
			data = append(data, opts.HeatMapData{Value: [3]interface{}{j, i, cell.FairValue}})
		}
	}

	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Sensitivity: Fair Value Per Share",
			Subtitle: fmt.Sprintf("%s (rows) vs %s (columns)", grid.Param1, grid.Param2),
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: xLabels}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: yLabels}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(min),
			Max:        float32(max),
		}),
	)
	hm.AddSeries("fair value", data)
	return hm
}

// TornadoBar is one parameter's fair value span for the tornado chart,
// produced upstream by one-way sensitivity sweeps.
type TornadoBar struct {
	Param sensitivity.Parameter
	Low   float64
	High  float64
}

// Tornado plots each parameter's downside-to-upside fair value span as
// horizontal bars around the base-case value.
func Tornado(baseFairValue float64, bars []TornadoBar) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Tornado Chart: Fair Value Impact",
		Subtitle: fmt.Sprintf("Base case $%.2f", baseFairValue),
	}))

	labels := make([]string, len(bars))
	low := make([]opts.BarData, len(bars))
	high := make([]opts.BarData, len(bars))
	for i, b := range bars {
		labels[i] = string(b.Param)
		low[i] = opts.BarData{Value: b.Low}
		high[i] = opts.BarData{Value: b.High}
	}

	bar.SetXAxis(labels).
		AddSeries("Low", low).
		AddSeries("High", high)
	bar.XYReversal()
	return bar
}

// RenderAll writes every chart for a run into dir. The grid and tornado bars
// are optional.
func RenderAll(dir string, res *dcf.ValuationResult, grid *sensitivity.Grid, tornado []TornadoBar) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating chart dir: %w", err)
	}

	render := func(name string, r interface{ Render(w io.Writer) error }) error {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		defer f.Close()
		return r.Render(f)
	}

	if err := render("fcf_projections.html", FCFProjection(res)); err != nil {
		return err
	}
	if err := render("value_bridge.html", ValueBridge(res)); err != nil {
		return err
	}
	if grid != nil {
		if err := render("sensitivity_heatmap.html", SensitivityHeatmap(grid)); err != nil {
			return err
		}
	}
	if len(tornado) > 0 {
		if err := render("tornado.html", Tornado(res.FairValuePerShare, tornado)); err != nil {
			return err
		}
	}
	return nil
}
