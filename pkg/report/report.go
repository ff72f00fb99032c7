// Package report renders valuation output for humans: a console summary,
// sensitivity and scenario tables, and a Markdown/HTML variant of the
// summary. Pure formatting over results the engine already computed.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"dcf_valuation/pkg/core/dcf"
	"dcf_valuation/pkg/core/sensitivity"
)

const rule = "================================================================================"

// WriteSummary prints the full valuation report to w.
func WriteSummary(w io.Writer, res *dcf.ValuationResult) {
	c := res.Company
	a := res.Assumptions

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "DCF VALUATION ANALYSIS: %s (%s)\n", c.CompanyName, c.Ticker)
	fmt.Fprintf(w, "%s\n\n", rule)

	fmt.Fprintln(w, "COMPANY INFORMATION:")
	fmt.Fprintf(w, "  Current Stock Price:        $%.2f\n", c.StockPrice)
	fmt.Fprintf(w, "  Shares Outstanding:         %.0fM\n", c.SharesOutstanding)
	fmt.Fprintf(w, "  Market Cap:                 $%.0fM\n", c.MarketCap())
	fmt.Fprintf(w, "  Current FCF:                $%.0fM\n", c.CurrentFCF)

	fmt.Fprintln(w, "\nKEY ASSUMPTIONS:")
	fmt.Fprintf(w, "  Revenue Growth Rate:        %.1f%%\n", a.RevenueGrowthRate*100)
	fmt.Fprintf(w, "  Terminal Growth Rate:       %.1f%%\n", a.TerminalGrowthRate*100)
	fmt.Fprintf(w, "  WACC (Discount Rate):       %.1f%%\n", a.WACC*100)
	fmt.Fprintf(w, "  Projection Period:          %d years\n", a.ProjectionYears)
	fmt.Fprintf(w, "  Net Debt/(Cash):            $%.0fM\n", c.NetDebt)

	fmt.Fprintln(w, "\nFREE CASH FLOW PROJECTIONS:")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Year", "FCF ($M)", "Discount Factor", "PV of FCF ($M)"})
	table.SetBorder(false)
	for _, row := range res.Projections {
		table.Append([]string{
			fmt.Sprintf("%d", row.Year),
			fmt.Sprintf("%.0f", row.FCF),
			fmt.Sprintf("%.4f", row.DiscountFactor),
			fmt.Sprintf("%.0f", row.PresentValue),
		})
	}
	table.Render()

	fmt.Fprintln(w, "\nVALUATION BREAKDOWN:")
	fmt.Fprintf(w, "  PV of Projected FCF:        $%.0fM (%.1f%%)\n", res.PVFCFSum, res.FCFContribution*100)
	fmt.Fprintf(w, "  Terminal Value:             $%.0fM\n", res.TerminalValue)
	fmt.Fprintf(w, "  PV of Terminal Value:       $%.0fM (%.1f%%)\n", res.PVTerminalValue, res.TerminalContribution*100)
	fmt.Fprintf(w, "  Enterprise Value:           $%.0fM\n", res.EnterpriseValue)
	fmt.Fprintf(w, "  Less: Net Debt:             $%.0fM\n", c.NetDebt)
	fmt.Fprintf(w, "  Equity Value:               $%.0fM\n", res.EquityValue)

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintf(w, "FAIR VALUE PER SHARE:         $%.2f\n", res.FairValuePerShare)
	fmt.Fprintf(w, "Current Market Price:         $%.2f\n", c.StockPrice)
	fmt.Fprintf(w, "Upside/(Downside):            %+.1f%%\n", res.UpsideDownside*100)
	fmt.Fprintf(w, "Assessment:                   %s\n", res.Assessment)
	fmt.Fprintf(w, "%s\n", rule)

	if res.EVToFCF > 0 {
		fmt.Fprintf(w, "EV/FCF Multiple:              %.2fx\n", res.EVToFCF)
	}
}

// WriteSensitivityTable prints a one-way sweep.
func WriteSensitivityTable(w io.Writer, param sensitivity.Parameter, points []sensitivity.Point) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{string(param), "Fair Value", "Upside/(Downside)", "Assessment"})
	table.SetBorder(false)
	for _, p := range points {
		if p.Err != "" {
			table.Append([]string{fmt.Sprintf("%.1f%%", p.Value*100), "n/a", "n/a", "invalid"})
			continue
		}
		table.Append([]string{
			fmt.Sprintf("%.1f%%", p.Value*100),
			fmt.Sprintf("$%.2f", p.FairValue),
			fmt.Sprintf("%+.1f%%", p.Upside*100),
			p.Assessment,
		})
	}
	table.Render()
}

// WriteGrid prints a two-way sensitivity matrix with Param2 across columns.
func WriteGrid(w io.Writer, grid *sensitivity.Grid) {
	header := []string{string(grid.Param1) + " \\ " + string(grid.Param2)}
	for _, v2 := range grid.Values2 {
		header = append(header, fmt.Sprintf("%.1f%%", v2*100))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	for i, v1 := range grid.Values1 {
		row := []string{fmt.Sprintf("%.1f%%", v1*100)}
		for _, cell := range grid.Cells[i] {
			if cell.Err != "" {
				row = append(row, "n/a")
				continue
			}
			row = append(row, fmt.Sprintf("$%.2f", cell.FairValue))
		}
		table.Append(row)
	}
	table.Render()
}

// WriteComparison prints scenario summaries side by side.
func WriteComparison(w io.Writer, summaries []sensitivity.ScenarioSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Scenario", "Fair Value", "Upside/(Downside)", "Enterprise Value", "Terminal Value %", "Assessment"})
	table.SetBorder(false)
	for _, s := range summaries {
		if s.Err != "" {
			table.Append([]string{s.Scenario, "n/a", "n/a", "n/a", "n/a", "invalid"})
			continue
		}
		table.Append([]string{
			s.Scenario,
			fmt.Sprintf("$%.2f", s.FairValue),
			fmt.Sprintf("%+.1f%%", s.Upside*100),
			fmt.Sprintf("$%.0fM", s.EnterpriseValue),
			fmt.Sprintf("%.1f%%", s.TerminalContribution*100),
			s.Assessment,
		})
	}
	table.Render()
}

// Markdown renders the valuation summary as a Markdown document.
func Markdown(res *dcf.ValuationResult) string {
	c := res.Company
	var b strings.Builder

	fmt.Fprintf(&b, "# DCF Valuation: %s (%s)\n\n", c.CompanyName, c.Ticker)
	fmt.Fprintf(&b, "**Fair value per share:** $%.2f (market: $%.2f, %+.1f%%): %s\n\n",
		res.FairValuePerShare, c.StockPrice, res.UpsideDownside*100, res.Assessment)

	b.WriteString("| Year | FCF ($M) | Discount Factor | PV of FCF ($M) |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, row := range res.Projections {
		fmt.Fprintf(&b, "| %d | %.0f | %.4f | %.0f |\n", row.Year, row.FCF, row.DiscountFactor, row.PresentValue)
	}

	fmt.Fprintf(&b, "\n- PV of projected FCF: $%.0fM (%.1f%%)\n", res.PVFCFSum, res.FCFContribution*100)
	fmt.Fprintf(&b, "- PV of terminal value: $%.0fM (%.1f%%)\n", res.PVTerminalValue, res.TerminalContribution*100)
	fmt.Fprintf(&b, "- Enterprise value: $%.0fM\n", res.EnterpriseValue)
	fmt.Fprintf(&b, "- Equity value: $%.0fM\n", res.EquityValue)
	return b.String()
}

// markdownRenderer carries the GFM extension so projection tables come out
// as real HTML tables.
var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

// HTML converts the Markdown summary into an HTML fragment.
func HTML(res *dcf.ValuationResult) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(Markdown(res)), &buf); err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}
	return buf.Bytes(), nil
}
