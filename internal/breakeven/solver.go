package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/estimators/internal/calculation"
	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solver finds the payroll input that produces a target take-home figure.
// Take-home pay never decreases as salary, bonus or overtime grows, so a
// bisection over the variable converges.
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

type sample struct {
	value    decimal.Decimal
	input    domain.PayrollInput
	payroll  domain.PayrollResult
	achieved decimal.Decimal
}

// Solve bisects between the lower bound and an upper bound that reaches
// the target. Without an explicit Max the upper bound doubles until it does.
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := req.Base.Validate(); err != nil {
		return nil, &BreakEvenError{Operation: "validate_request", Message: "invalid base paycheck", Cause: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	lo := decimal.Zero
	if req.Constraints.Min != nil {
		lo = *req.Constraints.Min
	}
	low, err := s.evaluate(req, lo)
	if err != nil {
		return nil, err
	}
	if low.achieved.GreaterThanOrEqual(req.Target) {
		return s.result(req, low, true, 0, "Target already met at the lower bound"), nil
	}

	high, err := s.upperBound(ctx, req, &lo)
	if err != nil {
		return nil, err
	}
	hi := high.value

	iterations := 0
	for iterations < req.MaxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iterations++

		mid := lo.Add(hi).Div(two)
		p, err := s.evaluate(req, mid)
		if err != nil {
			return nil, err
		}

		gap := p.achieved.Sub(req.Target)
		if gap.Abs().LessThanOrEqual(req.Tolerance) {
			return s.result(req, p, true, iterations,
				fmt.Sprintf("Converged to target within $%s", req.Tolerance.StringFixed(2))), nil
		}
		if gap.IsNegative() {
			lo = mid
		} else {
			hi = mid
			high = p
		}
	}

	return s.result(req, high, false, iterations,
		fmt.Sprintf("Max iterations (%d) reached", req.MaxIterations)), nil
}

// upperBound returns a sample at or above the target. lo is raised to the
// last bound that fell short. Doubling stops at domain.MaxAmount, the largest
// input the engine accepts.
func (s *Solver) upperBound(ctx context.Context, req Request, lo *decimal.Decimal) (sample, error) {
	if req.Constraints.Max != nil {
		p, err := s.evaluate(req, *req.Constraints.Max)
		if err != nil {
			return sample{}, err
		}
		if p.achieved.LessThan(req.Target) {
			return sample{}, &BreakEvenError{
				Operation: "solve",
				Message: fmt.Sprintf("%s at most %s falls short of target %s",
					req.Variable, req.Constraints.Max.String(), req.Target.StringFixed(2)),
				Cause: ErrUnreachable,
			}
		}
		return p, nil
	}

	hi := decimal.Min(decimal.Max(*lo, decimal.NewFromInt(1)).Mul(two), domain.MaxAmount)
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return sample{}, err
		}
		p, err := s.evaluate(req, hi)
		if err != nil {
			return sample{}, err
		}
		if p.achieved.GreaterThanOrEqual(req.Target) {
			return p, nil
		}
		if i >= s.Options.MaxExpansions || hi.GreaterThanOrEqual(domain.MaxAmount) {
			return sample{}, &BreakEvenError{
				Operation: "solve",
				Message:   fmt.Sprintf("raising %s cannot reach target %s", req.Variable, req.Target.StringFixed(2)),
				Cause:     ErrUnreachable,
			}
		}
		*lo = hi
		hi = decimal.Min(hi.Mul(two), domain.MaxAmount)
	}
}

func (s *Solver) evaluate(req Request, v decimal.Decimal) (sample, error) {
	in := req.Base
	setValue(&in, req.Variable, v)
	res, err := s.CalcEngine.EstimatePayroll(in)
	if err != nil {
		return sample{}, &BreakEvenError{Operation: "evaluate", Message: "failed to calculate paycheck", Cause: err}
	}
	return sample{value: v, input: in, payroll: res, achieved: measure(res, req.Measure)}, nil
}

func (s *Solver) result(req Request, p sample, success bool, iterations int, info string) *Result {
	return &Result{
		Request:         req,
		Success:         success,
		Iterations:      iterations,
		ConvergenceInfo: info,
		Value:           p.value,
		Input:           p.input,
		Payroll:         p.payroll,
		Achieved:        p.achieved,
		ChangeFromBase:  p.value.Sub(baseValue(req.Base, req.Variable)),
	}
}

func baseValue(in domain.PayrollInput, v SolveVariable) decimal.Decimal {
	switch v {
	case SolveBonus:
		return in.Bonus
	case SolveOvertimeHours:
		return in.OvertimeHours
	default:
		return in.AnnualSalary
	}
}

func setValue(in *domain.PayrollInput, v SolveVariable, value decimal.Decimal) {
	switch v {
	case SolveBonus:
		in.Bonus = value
	case SolveOvertimeHours:
		in.OvertimeHours = value
	default:
		in.AnnualSalary = value
	}
}

func measure(res domain.PayrollResult, m TargetMeasure) decimal.Decimal {
	switch m {
	case TargetMonthlyNet:
		return res.MonthlyNetPay
	case TargetAnnualNet:
		return res.AnnualNetPay
	default:
		return res.NetPayPerCheck
	}
}
