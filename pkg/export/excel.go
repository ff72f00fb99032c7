// Package export serializes valuation results into a multi-sheet Excel
// workbook. It treats the engine strictly as a data producer: no numbers are
// derived here beyond formatting.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"dcf_valuation/pkg/core/dcf"
	"dcf_valuation/pkg/core/sensitivity"
)

const (
	sheetSummary     = "Executive Summary"
	sheetProjections = "FCF Projections"
	sheetSensitivity = "Sensitivity Analysis"
)

// Workbook builds an in-memory workbook for a valuation run. The grid is
// optional; when present a third sheet carries the two-way matrix.
func Workbook(res *dcf.ValuationResult, grid *sensitivity.Grid) (*excelize.File, error) {
	f := excelize.NewFile()

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeSummarySheet(f, styles, res); err != nil {
		return nil, err
	}
	if err := writeProjectionsSheet(f, styles, res); err != nil {
		return nil, err
	}
	if grid != nil {
		if err := writeSensitivitySheet(f, styles, grid); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// ToFile writes the workbook to disk.
func ToFile(res *dcf.ValuationResult, grid *sensitivity.Grid, path string) error {
	f, err := Workbook(res, grid)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

type styleSet struct {
	title     int
	header    int
	subheader int
	highlight int
}

func newStyles(f *excelize.File) (styleSet, error) {
	var s styleSet
	var err error

	s.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return s, err
	}
	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err != nil {
		return s, err
	}
	s.subheader, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return s, err
	}
	s.highlight, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"FFF2CC"}, Pattern: 1},
	})
	return s, err
}

func writeSummarySheet(f *excelize.File, styles styleSet, res *dcf.ValuationResult) error {
	sheet := sheetSummary
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	c := res.Company
	a := res.Assumptions
	row := 1

	setPair := func(label string, value interface{}) {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), value)
		row++
	}
	setSection := func(title string) {
		cell := fmt.Sprintf("A%d", row)
		f.SetCellValue(sheet, cell, title)
		f.SetCellStyle(sheet, cell, cell, styles.subheader)
		row++
	}

	titleCell := fmt.Sprintf("A%d", row)
	f.SetCellValue(sheet, titleCell, fmt.Sprintf("DCF VALUATION: %s", c.CompanyName))
	f.SetCellStyle(sheet, titleCell, titleCell, styles.title)
	row += 2

	setSection("COMPANY INFORMATION")
	setPair("Ticker", c.Ticker)
	setPair("Company Name", c.CompanyName)
	setPair("Current Stock Price", c.StockPrice)
	setPair("Shares Outstanding (M)", c.SharesOutstanding)
	setPair("Market Cap ($M)", c.MarketCap())
	setPair("Current FCF ($M)", c.CurrentFCF)
	setPair("Net Debt ($M)", c.NetDebt)
	row++

	setSection("VALUATION ASSUMPTIONS")
	setPair("Revenue Growth Rate", a.RevenueGrowthRate)
	setPair("Terminal Growth Rate", a.TerminalGrowthRate)
	setPair("WACC (Discount Rate)", a.WACC)
	setPair("Projection Period (Years)", a.ProjectionYears)
	row++

	setSection("VALUATION RESULTS")
	setPair("Enterprise Value ($M)", res.EnterpriseValue)
	setPair("Less: Net Debt ($M)", c.NetDebt)
	setPair("Equity Value ($M)", res.EquityValue)
	row++

	highlightFrom := row
	setPair("Fair Value Per Share", res.FairValuePerShare)
	setPair("Current Market Price", c.StockPrice)
	setPair("Upside/(Downside)", res.UpsideDownside)
	setPair("Assessment", res.Assessment)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", highlightFrom), fmt.Sprintf("B%d", row-1), styles.highlight)

	f.SetColWidth(sheet, "A", "A", 30)
	f.SetColWidth(sheet, "B", "B", 20)
	return nil
}

func writeProjectionsSheet(f *excelize.File, styles styleSet, res *dcf.ValuationResult) error {
	sheet := sheetProjections
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", "FREE CASH FLOW PROJECTIONS")
	f.SetCellStyle(sheet, "A1", "A1", styles.title)

	headers := []string{"Year", "FCF ($M)", "Growth Rate", "Discount Factor", "PV of FCF ($M)"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"3", h)
	}
	f.SetCellStyle(sheet, "A3", "E3", styles.header)

	for i, p := range res.Projections {
		r := 4 + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), p.Year)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r), p.FCF)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", r), res.Assumptions.RevenueGrowthRate)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", r), p.DiscountFactor)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", r), p.PresentValue)
	}

	tvRow := 4 + len(res.Projections) + 1
	f.SetCellValue(sheet, fmt.Sprintf("A%d", tvRow), "Terminal Value")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", tvRow), res.TerminalValue)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", tvRow+1), "PV of Terminal Value")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", tvRow+1), res.PVTerminalValue)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", tvRow), fmt.Sprintf("B%d", tvRow+1), styles.highlight)

	f.SetColWidth(sheet, "A", "E", 18)
	return nil
}

func writeSensitivitySheet(f *excelize.File, styles styleSet, grid *sensitivity.Grid) error {
	sheet := sheetSensitivity
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", fmt.Sprintf("SENSITIVITY ANALYSIS: %s vs %s", grid.Param1, grid.Param2))
	f.SetCellStyle(sheet, "A1", "A1", styles.title)

	// Column headers carry Param2 values.
	for j, v2 := range grid.Values2 {
		col, _ := excelize.ColumnNumberToName(j + 2)
		f.SetCellValue(sheet, col+"3", v2)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(grid.Values2) + 1)
	f.SetCellStyle(sheet, "B3", lastCol+"3", styles.header)

	for i, v1 := range grid.Values1 {
		r := 4 + i
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), v1)
		for j, cell := range grid.Cells[i] {
			col, _ := excelize.ColumnNumberToName(j + 2)
			if cell.Err != "" {
				f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, r), "n/a")
				continue
			}
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, r), cell.FairValue)
		}
	}
	f.SetCellStyle(sheet, "A4", fmt.Sprintf("A%d", 3+len(grid.Values1)), styles.subheader)
	return nil
}
