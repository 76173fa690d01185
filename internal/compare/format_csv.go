package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Gross Per Check",
		"Net Per Check",
		"Annual Net",
		"Total Taxes",
		"Effective Rate",
		"Net Per Check Diff",
		"Annual Net Diff",
		"Annual Net % Change",
		"Tax Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.Result.GrossPayPerCheck.StringFixed(2),
		result.NetPerCheck.StringFixed(2),
		result.AnnualNet.StringFixed(2),
		result.TotalTaxes.StringFixed(2),
		result.Result.EffectiveTaxRate.StringFixed(2),
		result.NetPerCheckDiff.StringFixed(2),
		result.AnnualNetDiff.StringFixed(2),
		result.AnnualNetPctDiff.StringFixed(2),
		result.TaxDiffFromBase.StringFixed(2),
	}
}
