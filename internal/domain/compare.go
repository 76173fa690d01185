package domain

import "github.com/shopspring/decimal"

// PayrollOverrides replaces selected fields of a base PayrollInput. Nil
// fields keep the base value.
type PayrollOverrides struct {
	AnnualSalary     *decimal.Decimal `yaml:"annual_salary,omitempty" json:"annual_salary,omitempty"`
	PayFrequency     *PayFrequency    `yaml:"pay_frequency,omitempty" json:"pay_frequency,omitempty"`
	FilingStatus     *FilingStatus    `yaml:"filing_status,omitempty" json:"filing_status,omitempty"`
	State            *string          `yaml:"state,omitempty" json:"state,omitempty"`
	PreTaxDeductions *decimal.Decimal `yaml:"pre_tax_deductions,omitempty" json:"pre_tax_deductions,omitempty"`
	OvertimeHours    *decimal.Decimal `yaml:"overtime_hours,omitempty" json:"overtime_hours,omitempty"`
	OvertimeRate     *decimal.Decimal `yaml:"overtime_rate,omitempty" json:"overtime_rate,omitempty"`
	Bonus            *decimal.Decimal `yaml:"bonus,omitempty" json:"bonus,omitempty"`
	Allowances       *int             `yaml:"allowances,omitempty" json:"allowances,omitempty"`
}

// Apply returns a copy of base with the overrides applied
func (o PayrollOverrides) Apply(base PayrollInput) PayrollInput {
	out := base
	if o.AnnualSalary != nil {
		out.AnnualSalary = *o.AnnualSalary
	}
	if o.PayFrequency != nil {
		out.PayFrequency = *o.PayFrequency
	}
	if o.FilingStatus != nil {
		out.FilingStatus = *o.FilingStatus
	}
	if o.State != nil {
		out.State = *o.State
	}
	if o.PreTaxDeductions != nil {
		out.PreTaxDeductions = *o.PreTaxDeductions
	}
	if o.OvertimeHours != nil {
		out.OvertimeHours = *o.OvertimeHours
	}
	if o.OvertimeRate != nil {
		out.OvertimeRate = *o.OvertimeRate
	}
	if o.Bonus != nil {
		out.Bonus = *o.Bonus
	}
	if o.Allowances != nil {
		out.Allowances = *o.Allowances
	}
	return out
}

// PayrollScenario is a named what-if. Template names a built-in adjustment
// applied before Overrides.
type PayrollScenario struct {
	Name      string           `yaml:"name" json:"name"`
	Template  string           `yaml:"template,omitempty" json:"template,omitempty"`
	Overrides PayrollOverrides `yaml:"overrides,omitempty" json:"overrides,omitempty"`
}

// PayrollComparison is the content of a comparison file
type PayrollComparison struct {
	Base      PayrollInput      `yaml:"base" json:"base"`
	Scenarios []PayrollScenario `yaml:"scenarios" json:"scenarios"`
}
