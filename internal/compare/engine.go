package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/estimators/internal/calculation"
	"github.com/rgehrsitz/estimators/internal/domain"
)

// BaseScenarioName labels the unmodified input in a comparison
const BaseScenarioName = "base"

// CompareEngine orchestrates payroll what-if comparisons
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *TemplateRegistry
}

// NewCompareEngine creates a new comparison engine with the built-in templates
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  CreateBuiltInTemplates(),
	}
}

// Compare runs the base input and every scenario. A scenario applies its
// template first, then its explicit overrides.
func (ce *CompareEngine) Compare(ctx context.Context, cmp *domain.PayrollComparison) (*ComparisonSet, error) {
	baseRes, err := ce.CalcEngine.EstimatePayroll(cmp.Base)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}
	base := ce.MetricsCalculator.CalculateMetrics(BaseScenarioName, cmp.Base, baseRes)

	alternatives := make([]ComparisonResult, 0, len(cmp.Scenarios))
	for _, sc := range cmp.Scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		in := cmp.Base
		description := ""
		if sc.Template != "" {
			tmpl, ok := ce.TemplateRegistry.Get(sc.Template)
			if !ok {
				return nil, fmt.Errorf("scenario %s: %w", sc.Name, domain.InvalidCategory("template", sc.Template))
			}
			in = tmpl.Apply(in)
			description = tmpl.Description
		}
		in = sc.Overrides.Apply(in)

		res, err := ce.CalcEngine.EstimatePayroll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", sc.Name, err)
		}

		alt := ce.MetricsCalculator.CalculateMetrics(sc.Name, in, res)
		alt.Description = description
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(alt, base))
	}

	compSet := &ComparisonSet{
		BaseResult:         &base,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet, nil
}

// CompareTemplates compares the base input against named templates
func (ce *CompareEngine) CompareTemplates(ctx context.Context, base domain.PayrollInput, templates []string) (*ComparisonSet, error) {
	cmp := &domain.PayrollComparison{Base: base}
	for _, name := range templates {
		cmp.Scenarios = append(cmp.Scenarios, domain.PayrollScenario{Name: name, Template: name})
	}
	return ce.Compare(ctx, cmp)
}
