package domain

import "github.com/shopspring/decimal"

// PayrollInput holds the paycheck calculator inputs. All amounts are annual
// except OvertimeHours, which is per pay period.
type PayrollInput struct {
	AnnualSalary     decimal.Decimal `yaml:"annual_salary" json:"annual_salary"`
	PayFrequency     PayFrequency    `yaml:"pay_frequency" json:"pay_frequency"`
	FilingStatus     FilingStatus    `yaml:"filing_status" json:"filing_status"`
	State            string          `yaml:"state" json:"state"`
	PreTaxDeductions decimal.Decimal `yaml:"pre_tax_deductions" json:"pre_tax_deductions"`
	OvertimeHours    decimal.Decimal `yaml:"overtime_hours" json:"overtime_hours"`
	OvertimeRate     decimal.Decimal `yaml:"overtime_rate" json:"overtime_rate"`
	Bonus            decimal.Decimal `yaml:"bonus" json:"bonus"`
	Allowances       int             `yaml:"allowances,omitempty" json:"allowances,omitempty"`
}

// Validate checks categorical fields and rejects negative amounts
func (in PayrollInput) Validate() error {
	if err := in.PayFrequency.Validate(); err != nil {
		return err
	}
	if err := in.FilingStatus.Validate(); err != nil {
		return err
	}
	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"annual salary", in.AnnualSalary},
		{"pre-tax deductions", in.PreTaxDeductions},
		{"overtime hours", in.OvertimeHours},
		{"overtime rate", in.OvertimeRate},
		{"bonus", in.Bonus},
		{"allowances", decimal.NewFromInt(int64(in.Allowances))},
	}
	for _, a := range amounts {
		if err := RequireNonNegative(a.name, a.value); err != nil {
			return err
		}
	}
	return nil
}

// PayrollResult is the take-home estimate. Per-check figures are annual
// figures divided by the number of pay periods.
type PayrollResult struct {
	GrossPayPerCheck   decimal.Decimal `yaml:"gross_pay_per_check" json:"gross_pay_per_check"`
	FederalTaxPerCheck decimal.Decimal `yaml:"federal_tax_per_check" json:"federal_tax_per_check"`
	StateTaxPerCheck   decimal.Decimal `yaml:"state_tax_per_check" json:"state_tax_per_check"`
	FICAPerCheck       decimal.Decimal `yaml:"fica_per_check" json:"fica_per_check"`
	NetPayPerCheck     decimal.Decimal `yaml:"net_pay_per_check" json:"net_pay_per_check"`
	MonthlyNetPay      decimal.Decimal `yaml:"monthly_net_pay" json:"monthly_net_pay"`
	AnnualNetPay       decimal.Decimal `yaml:"annual_net_pay" json:"annual_net_pay"`
	EffectiveTaxRate   decimal.Decimal `yaml:"effective_tax_rate" json:"effective_tax_rate"` // percent

	Breakdown PayrollBreakdown `yaml:"breakdown" json:"breakdown"`
}

// PayrollBreakdown carries the annual figures behind a PayrollResult
type PayrollBreakdown struct {
	PeriodsPerYear     int             `yaml:"periods_per_year" json:"periods_per_year"`
	AnnualGross        decimal.Decimal `yaml:"annual_gross" json:"annual_gross"`
	AnnualOvertime     decimal.Decimal `yaml:"annual_overtime" json:"annual_overtime"`
	TaxableIncome      decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`
	FederalTax         decimal.Decimal `yaml:"federal_tax" json:"federal_tax"`
	SocialSecurityTax  decimal.Decimal `yaml:"social_security_tax" json:"social_security_tax"`
	MedicareTax        decimal.Decimal `yaml:"medicare_tax" json:"medicare_tax"`
	AdditionalMedicare decimal.Decimal `yaml:"additional_medicare" json:"additional_medicare"`
	StateTax           decimal.Decimal `yaml:"state_tax" json:"state_tax"`
}

// TotalFICA returns Social Security plus Medicare (including any surcharge)
func (b PayrollBreakdown) TotalFICA() decimal.Decimal {
	return b.SocialSecurityTax.Add(b.MedicareTax).Add(b.AdditionalMedicare)
}
