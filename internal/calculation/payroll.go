package calculation

import (
	"fmt"

	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PayrollEngine estimates take-home pay from one year's payroll rules
type PayrollEngine struct {
	table   domain.PayrollTable
	federal *FederalTaxCalculator
	fica    *FICACalculator
	state   StateTaxPolicy
}

// NewPayrollEngine validates the payroll rules and wires the tax calculators
func NewPayrollEngine(table domain.PayrollTable) (*PayrollEngine, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	state, err := NewStateTaxPolicy(table.StateTax)
	if err != nil {
		return nil, err
	}
	return &PayrollEngine{
		table:   table,
		federal: NewFederalTaxCalculator(table),
		fica:    NewFICACalculator(table.FICA),
		state:   state,
	}, nil
}

// TaxYear returns the year the payroll rules describe
func (pe *PayrollEngine) TaxYear() int {
	return pe.table.TaxYear
}

// StatePolicy returns the configured state tax policy
func (pe *PayrollEngine) StatePolicy() StateTaxPolicy {
	return pe.state
}

// AnnualOvertime annualizes per-period overtime at the salary's implied
// hourly rate: salary / standard hours × rate × hours × periods
func (pe *PayrollEngine) AnnualOvertime(in domain.PayrollInput, periods int) decimal.Decimal {
	if !in.OvertimeHours.IsPositive() {
		return decimal.Zero
	}
	return in.AnnualSalary.
		Mul(in.OvertimeRate).
		Mul(in.OvertimeHours).
		Mul(decimal.NewFromInt(int64(periods))).
		Div(pe.table.StandardWorkHours)
}

// ComputeTakeHome calculates per-check, monthly and annual net pay
func (pe *PayrollEngine) ComputeTakeHome(in domain.PayrollInput) (domain.PayrollResult, error) {
	if err := in.Validate(); err != nil {
		return domain.PayrollResult{}, err
	}
	periods, err := in.PayFrequency.PeriodsPerYear()
	if err != nil {
		return domain.PayrollResult{}, err
	}

	// 1. Gross pay
	overtime := pe.AnnualOvertime(in, periods)
	gross := in.AnnualSalary.Add(in.Bonus).Add(overtime)

	// 2. Federal income tax
	taxable, err := pe.federal.TaxableIncome(gross, in.PreTaxDeductions, in.FilingStatus, in.Allowances)
	if err != nil {
		return domain.PayrollResult{}, err
	}
	federalTax, err := pe.federal.CalculateFederalTax(taxable, in.FilingStatus)
	if err != nil {
		return domain.PayrollResult{}, fmt.Errorf("federal tax: %w", err)
	}

	// 3. FICA on gross wages
	ss, medicare, additional := pe.fica.CalculateFICA(gross)

	// 4. State tax on wages less pre-tax deductions
	stateTax := pe.state.CalculateStateTax(in.State, gross.Sub(in.PreTaxDeductions))

	breakdown := domain.PayrollBreakdown{
		PeriodsPerYear:     periods,
		AnnualGross:        gross,
		AnnualOvertime:     overtime,
		TaxableIncome:      taxable,
		FederalTax:         federalTax,
		SocialSecurityTax:  ss,
		MedicareTax:        medicare,
		AdditionalMedicare: additional,
		StateTax:           stateTax,
	}
	fica := breakdown.TotalFICA()
	annualNet := gross.Sub(federalTax).Sub(fica).Sub(stateTax)

	effectiveRate := decimal.Zero
	if gross.IsPositive() {
		effectiveRate = gross.Sub(annualNet).Div(gross).Mul(hundred)
	}

	n := decimal.NewFromInt(int64(periods))
	return domain.PayrollResult{
		GrossPayPerCheck:   gross.Div(n),
		FederalTaxPerCheck: federalTax.Div(n),
		StateTaxPerCheck:   stateTax.Div(n),
		FICAPerCheck:       fica.Div(n),
		NetPayPerCheck:     annualNet.Div(n),
		MonthlyNetPay:      annualNet.Div(monthsPerYear),
		AnnualNetPay:       annualNet,
		EffectiveTaxRate:   effectiveRate,
		Breakdown:          breakdown,
	}, nil
}
