package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/shopspring/decimal"
)

// SolveAll reaches the same target by raising each variable alone, starting
// from its current value
func (s *Solver) SolveAll(
	ctx context.Context,
	base domain.PayrollInput,
	m TargetMeasure,
	target decimal.Decimal,
) (*MultiResult, error) {
	var results []Result
	var lastErr error

	for _, v := range Variables {
		current := baseValue(base, v)
		req := Request{
			Base:        base,
			Variable:    v,
			Measure:     m,
			Target:      target,
			Constraints: Constraints{Min: &current},
		}

		result, err := s.Solve(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Unreachable through this variable; try the others
			lastErr = err
			continue
		}
		if result.Success {
			results = append(results, *result)
		}
	}

	if len(results) == 0 {
		return nil, &BreakEvenError{
			Operation: "solve_all",
			Message:   "no variable reaches the target",
			Cause:     lastErr,
		}
	}

	mr := &MultiResult{Results: results}
	mr.Recommendations = generateRecommendations(mr)
	return mr, nil
}

func generateRecommendations(mr *MultiResult) []string {
	var recommendations []string
	for _, r := range mr.Results {
		if !r.ChangeFromBase.IsPositive() {
			return []string{"Current paycheck already meets the target"}
		}
		switch r.Request.Variable {
		case SolveSalary:
			recommendations = append(recommendations, fmt.Sprintf("Raise salary by $%s to $%s",
				r.ChangeFromBase.StringFixed(2), r.Value.StringFixed(2)))
		case SolveBonus:
			recommendations = append(recommendations, fmt.Sprintf("Add $%s in annual bonus",
				r.ChangeFromBase.StringFixed(2)))
		case SolveOvertimeHours:
			recommendations = append(recommendations, fmt.Sprintf("Work %s more overtime hours per pay period",
				r.ChangeFromBase.StringFixed(1)))
		}
	}
	return recommendations
}
