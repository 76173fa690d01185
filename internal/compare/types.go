package compare

import (
	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one payroll scenario with its deltas from the base
type ComparisonResult struct {
	ScenarioName string               `json:"scenario_name"`
	Description  string               `json:"description,omitempty"`
	Input        domain.PayrollInput  `json:"input"`
	Result       domain.PayrollResult `json:"result"`

	// Key Metrics
	NetPerCheck decimal.Decimal `json:"net_per_check"`
	AnnualNet   decimal.Decimal `json:"annual_net"`
	TotalTaxes  decimal.Decimal `json:"total_taxes"`

	// Comparison to Base
	NetPerCheckDiff   decimal.Decimal `json:"net_per_check_diff"`
	AnnualNetDiff     decimal.Decimal `json:"annual_net_diff"`
	AnnualNetPctDiff  decimal.Decimal `json:"annual_net_pct_diff"`
	TaxDiffFromBase   decimal.Decimal `json:"tax_diff_from_base"`
	EffectiveRateDiff decimal.Decimal `json:"effective_rate_diff"`
}

// ComparisonSet is the base scenario plus its alternatives
type ComparisonSet struct {
	BaseResult         *ComparisonResult  `json:"base_result"`
	AlternativeResults []ComparisonResult `json:"alternative_results"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"config_path,omitempty"`
}

// MetricsCalculator extracts key metrics from payroll results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the headline metrics for a scenario
func (mc *MetricsCalculator) CalculateMetrics(name string, in domain.PayrollInput, res domain.PayrollResult) ComparisonResult {
	b := res.Breakdown
	return ComparisonResult{
		ScenarioName: name,
		Input:        in,
		Result:       res,
		NetPerCheck:  res.NetPayPerCheck,
		AnnualNet:    res.AnnualNetPay,
		TotalTaxes:   b.FederalTax.Add(b.TotalFICA()).Add(b.StateTax),
	}
}

// CalculateComparison computes deltas between a scenario and the base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.NetPerCheckDiff = scenario.NetPerCheck.Sub(base.NetPerCheck)
	scenario.AnnualNetDiff = scenario.AnnualNet.Sub(base.AnnualNet)
	if !base.AnnualNet.IsZero() {
		scenario.AnnualNetPctDiff = scenario.AnnualNetDiff.
			Div(base.AnnualNet).
			Mul(decimal.NewFromInt(100))
	}
	scenario.TaxDiffFromBase = scenario.TotalTaxes.Sub(base.TotalTaxes)
	scenario.EffectiveRateDiff = scenario.Result.EffectiveTaxRate.Sub(base.Result.EffectiveTaxRate)
	return scenario
}

// GenerateRecommendations highlights the best alternatives
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	// Highest take-home pay
	best := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.AnnualNet.GreaterThan(best.AnnualNet) {
			best = alt
		}
	}
	if best != compSet.BaseResult {
		recommendations = append(recommendations,
			"Highest Take-Home: "+best.ScenarioName+" adds $"+best.AnnualNetDiff.StringFixed(2)+
				" per year ($"+best.NetPerCheckDiff.StringFixed(2)+" per check)")
	}

	// Lowest tax bill
	lowest := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TotalTaxes.LessThan(lowest.TotalTaxes) {
			lowest = alt
		}
	}
	if lowest != compSet.BaseResult {
		recommendations = append(recommendations,
			"Lowest Taxes: "+lowest.ScenarioName+" saves $"+lowest.TaxDiffFromBase.Neg().StringFixed(2)+" per year in taxes")
	}

	return recommendations
}
