package breakeven

import (
	"errors"

	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrUnreachable is returned when no value of the solved variable within its
// bounds reaches the target
var ErrUnreachable = errors.New("target not reachable")

// SolveVariable is the payroll input the solver adjusts
type SolveVariable string

const (
	SolveSalary        SolveVariable = "salary"
	SolveBonus         SolveVariable = "bonus"
	SolveOvertimeHours SolveVariable = "overtime_hours"
)

// Variables lists every solvable input
var Variables = []SolveVariable{SolveSalary, SolveBonus, SolveOvertimeHours}

// TargetMeasure is the take-home figure the solver matches
type TargetMeasure string

const (
	TargetNetPerCheck TargetMeasure = "net_per_check"
	TargetMonthlyNet  TargetMeasure = "monthly_net"
	TargetAnnualNet   TargetMeasure = "annual_net"
)

// Constraints bound the solved variable
type Constraints struct {
	Min *decimal.Decimal `json:"min,omitempty"`
	Max *decimal.Decimal `json:"max,omitempty"`
}

// Request asks for the value of Variable that makes Measure reach Target
type Request struct {
	Base          domain.PayrollInput `json:"base"`
	Variable      SolveVariable       `json:"variable"`
	Measure       TargetMeasure       `json:"measure"`
	Target        decimal.Decimal     `json:"target"`
	Constraints   Constraints         `json:"constraints"`
	MaxIterations int                 `json:"max_iterations,omitempty"`
	Tolerance     decimal.Decimal     `json:"tolerance"`
}

// Result is the solved input and the paycheck it produces
type Result struct {
	Request         Request `json:"request"`
	Success         bool    `json:"success"`
	Iterations      int     `json:"iterations"`
	ConvergenceInfo string  `json:"convergence_info"`

	Value    decimal.Decimal      `json:"value"`
	Input    domain.PayrollInput  `json:"input"`
	Payroll  domain.PayrollResult `json:"payroll"`
	Achieved decimal.Decimal      `json:"achieved"`

	// Increase over the base input's value of the solved variable
	ChangeFromBase decimal.Decimal `json:"change_from_base"`
}

// MultiResult solves the same target with each variable in turn
type MultiResult struct {
	Results         []Result `json:"results"`
	Recommendations []string `json:"recommendations"`
}

// SolverOptions configures the bisection
type SolverOptions struct {
	Tolerance     decimal.Decimal // Allowed gap between achieved and target
	MaxIterations int
	MaxExpansions int // Doublings of the upper bound when Max is unset
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromFloat(0.01),
		MaxIterations: 100,
		MaxExpansions: 40,
	}
}

// Validate checks if the request is internally consistent
func (r *Request) Validate() error {
	switch r.Variable {
	case SolveSalary, SolveBonus, SolveOvertimeHours:
	default:
		return &BreakEvenError{Operation: "validate_request", Message: "unsupported variable " + string(r.Variable), Cause: domain.ErrInvalidCategory}
	}
	switch r.Measure {
	case TargetNetPerCheck, TargetMonthlyNet, TargetAnnualNet:
	default:
		return &BreakEvenError{Operation: "validate_request", Message: "unsupported measure " + string(r.Measure), Cause: domain.ErrInvalidCategory}
	}
	if !r.Target.IsPositive() {
		return &BreakEvenError{Operation: "validate_request", Message: "target must be positive", Cause: domain.ErrInvalidInput}
	}
	if err := domain.RequireNonNegative("target", r.Target); err != nil {
		return &BreakEvenError{Operation: "validate_request", Message: "invalid target", Cause: err}
	}
	if err := domain.RequireNonNegative("tolerance", r.Tolerance); err != nil {
		return &BreakEvenError{Operation: "validate_request", Message: "invalid tolerance", Cause: err}
	}
	c := r.Constraints
	for _, b := range []*decimal.Decimal{c.Min, c.Max} {
		if b == nil {
			continue
		}
		if err := domain.RequireNonNegative("bound", *b); err != nil {
			return &BreakEvenError{Operation: "validate_constraints", Message: "invalid bound", Cause: err}
		}
	}
	if c.Min != nil && c.Max != nil && c.Min.GreaterThan(*c.Max) {
		return &BreakEvenError{Operation: "validate_constraints", Message: "min cannot be greater than max", Cause: domain.ErrInvalidInput}
	}
	return nil
}

// BreakEvenError represents errors from the solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
