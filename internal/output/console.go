package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	headingStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	labelStyle    = lipgloss.NewStyle().Width(26).Foreground(lipgloss.Color("#A8A8A8"))
	valueStyle    = lipgloss.NewStyle().Bold(true)
	includedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	excludedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	noteStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#A8A8A8"))
)

// UrgencyStyle colors an urgency level
func UrgencyStyle(level domain.UrgencyLevel) lipgloss.Style {
	colors := map[domain.UrgencyLevel]string{
		domain.UrgencyLow:      "#04B575",
		domain.UrgencyModerate: "#F2C94C",
		domain.UrgencyElevated: "#F2994A",
		domain.UrgencyHigh:     "#FF5F87",
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors[level]))
}

// ConsoleFormatter renders a styled, human-readable report
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.BatchReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, titleStyle.Render(fmt.Sprintf("ESTIMATES (%d rate tables)", report.DataYear)))
	fmt.Fprintln(&buf, strings.Repeat("=", 60))

	for _, res := range report.Results {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, headingStyle.Render(fmt.Sprintf("%s [%s]", res.Name, res.Kind)))
		switch {
		case res.Premium != nil:
			WritePremium(&buf, res.Premium)
		case res.Payroll != nil:
			WritePayroll(&buf, res.Payroll)
		case res.Advisory != nil:
			WriteAdvisory(&buf, res.Advisory)
		}
	}
	return buf.Bytes(), nil
}

func writeLine(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "  %s %s\n", labelStyle.Render(label), valueStyle.Render(value))
}

func writeList(buf *bytes.Buffer, heading string, items []string) {
	fmt.Fprintf(buf, "  %s\n", heading)
	for _, item := range items {
		fmt.Fprintf(buf, "    • %s\n", item)
	}
}

// WritePremium renders an insurance premium estimate
func WritePremium(buf *bytes.Buffer, r *domain.RatingResult) {
	writeLine(buf, "Monthly premium:", FormatWholeCurrency(r.MonthlyPremium))
	writeLine(buf, "Annual premium:", FormatWholeCurrency(r.AnnualPremium))
	writeList(buf, "Coverage summary:", r.CoverageSummary)
	fmt.Fprintf(buf, "  Coverage details (%d of %d included):\n", r.IncludedCount(), len(r.CoverageDetails))
	for _, d := range r.CoverageDetails {
		mark := includedStyle.Render("✓")
		if !d.Included {
			mark = excludedStyle.Render("✗")
		}
		fmt.Fprintf(buf, "    %s %s\n", mark, d.Label)
	}
	writeList(buf, "Rating factors:", r.RatingFactors)
}

// WritePayroll renders a take-home pay estimate
func WritePayroll(buf *bytes.Buffer, r *domain.PayrollResult) {
	b := r.Breakdown
	writeLine(buf, "Gross pay per check:", FormatCurrency(r.GrossPayPerCheck))
	writeLine(buf, "Federal tax per check:", FormatCurrency(r.FederalTaxPerCheck))
	writeLine(buf, "State tax per check:", FormatCurrency(r.StateTaxPerCheck))
	writeLine(buf, "FICA per check:", FormatCurrency(r.FICAPerCheck))
	writeLine(buf, "Net pay per check:", FormatCurrency(r.NetPayPerCheck))
	writeLine(buf, "Monthly net pay:", FormatCurrency(r.MonthlyNetPay))
	writeLine(buf, "Annual net pay:", FormatCurrency(r.AnnualNetPay))
	writeLine(buf, "Effective tax rate:", FormatPercentage(r.EffectiveTaxRate))
	fmt.Fprintf(buf, "  %s\n", noteStyle.Render(fmt.Sprintf(
		"Annual: gross %s, taxable %s, federal %s, FICA %s, state %s over %d pay periods",
		FormatCurrency(b.AnnualGross), FormatCurrency(b.TaxableIncome), FormatCurrency(b.FederalTax),
		FormatCurrency(b.TotalFICA()), FormatCurrency(b.StateTax), b.PeriodsPerYear)))
	if b.AdditionalMedicare.GreaterThan(decimal.Zero) {
		fmt.Fprintf(buf, "  %s\n", noteStyle.Render("Includes Additional Medicare of "+FormatCurrency(b.AdditionalMedicare)))
	}
}

// WriteAdvisory renders a wage-claim advisory
func WriteAdvisory(buf *bytes.Buffer, r *domain.WageAdvisoryResult) {
	writeLine(buf, "Urgency:", UrgencyStyle(r.UrgencyLevel).Render(strings.ToUpper(string(r.UrgencyLevel))))
	fmt.Fprintf(buf, "  %s\n", r.StatusSummary)
	writeList(buf, "Potential wage categories:", r.WageCategories)
	writeList(buf, "Common factors:", r.CommonFactors)
	fmt.Fprintf(buf, "  Time considerations: %s\n", r.TimeConsiderations)
	fmt.Fprintf(buf, "  State note: %s\n", noteStyle.Render(r.StateNote))
}
