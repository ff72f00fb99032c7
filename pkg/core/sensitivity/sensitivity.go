// Package sensitivity re-runs the valuation engine across perturbed
// assumption sets to produce one-way tables, two-way grids, and scenario
// comparisons. Every cell is an independent full valuation: the result is a
// rational function of the rates, so interpolating or differentiating would
// introduce approximation error for no gain.
package sensitivity

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"dcf_valuation/pkg/core/dcf"
)

// Parameter names a sweepable assumption field.
type Parameter string

const (
	ParamWACC           Parameter = "wacc"
	ParamRevenueGrowth  Parameter = "revenue_growth_rate"
	ParamTerminalGrowth Parameter = "terminal_growth_rate"
	ParamFCFMargin      Parameter = "fcf_margin"
)

// apply returns a copy of base with the named parameter overridden. Pure
// value construction; the base is never touched, so parallel sweeps cannot
// race on shared assumptions.
func apply(base dcf.ValuationAssumptions, p Parameter, v float64) (dcf.ValuationAssumptions, error) {
	switch p {
	case ParamWACC:
		base.WACC = v
	case ParamRevenueGrowth:
		base.RevenueGrowthRate = v
	case ParamTerminalGrowth:
		base.TerminalGrowthRate = v
	case ParamFCFMargin:
		base.FCFMargin = v
	default:
		return base, fmt.Errorf("unknown sensitivity parameter %q", p)
	}
	return base, nil
}

// Point is one entry of a one-way sweep. Err is set when that single run was
// rejected by the validator; the sweep itself continues past it.
type Point struct {
	Value      float64 `json:"value"`
	FairValue  float64 `json:"fair_value"`
	Upside     float64 `json:"upside"`
	Assessment string  `json:"assessment"`
	Err        string  `json:"error,omitempty"`
}

// OneWay sweeps a single parameter across values, preserving input order.
// The returned error covers malformed requests only (unknown parameter);
// per-value validation failures land in the corresponding Point.
func OneWay(company dcf.CompanyData, base dcf.ValuationAssumptions, param Parameter, values []float64) ([]Point, error) {
	if _, err := apply(base, param, base.WACC); err != nil {
		return nil, err
	}

	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{Value: v}

		a, _ := apply(base, param, v)
		res, err := dcf.PerformValuation(company, a)
		if err != nil {
			points[i].Err = err.Error()
			continue
		}
		points[i].FairValue = res.FairValuePerShare
		points[i].Upside = res.UpsideDownside
		points[i].Assessment = res.Assessment
	}
	return points, nil
}

// Cell is one entry of a two-way grid.
type Cell struct {
	FairValue float64 `json:"fair_value"`
	Err       string  `json:"error,omitempty"`
}

// Grid is a two-way sensitivity table. Rows vary Param1, columns Param2;
// Cells[i][j] corresponds to (Values1[i], Values2[j]).
type Grid struct {
	Param1  Parameter `json:"param1"`
	Param2  Parameter `json:"param2"`
	Values1 []float64 `json:"values1"`
	Values2 []float64 `json:"values2"`
	Cells   [][]Cell  `json:"cells"`
}

// TwoWay evaluates every (v1, v2) combination as an independent valuation.
// Rows run in parallel with a bounded worker count; a cell whose perturbed
// assumptions are invalid (a wacc sweep crossing the terminal growth rate is
// the common case) records its error and leaves the rest of the grid intact.
func TwoWay(ctx context.Context, company dcf.CompanyData, base dcf.ValuationAssumptions,
	p1 Parameter, values1 []float64, p2 Parameter, values2 []float64) (*Grid, error) {

	if _, err := apply(base, p1, base.WACC); err != nil {
		return nil, err
	}
	if _, err := apply(base, p2, base.WACC); err != nil {
		return nil, err
	}
	if p1 == p2 {
		return nil, fmt.Errorf("two-way sensitivity needs two distinct parameters, got %q twice", p1)
	}

	grid := &Grid{
		Param1:  p1,
		Param2:  p2,
		Values1: values1,
		Values2: values2,
		Cells:   make([][]Cell, len(values1)),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, v1 := range values1 {
		i, v1 := i, v1
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rowBase, _ := apply(base, p1, v1)
			row := make([]Cell, len(values2))
			for j, v2 := range values2 {
				a, _ := apply(rowBase, p2, v2)
				res, err := dcf.PerformValuation(company, a)
				if err != nil {
					row[j].Err = err.Error()
					continue
				}
				row[j].FairValue = res.FairValuePerShare
			}
			grid.Cells[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return grid, nil
}
