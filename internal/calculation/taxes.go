package calculation

import (
	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Federal brackets and standard deductions are the provisional 2026 figures
//    for single, married filing jointly and head of household. No indexing.
// 2. Social Security is 6.2% of wages up to the wage base; Medicare is 1.45% of
//    all wages. The 0.9% Additional Medicare surcharge is applied only when
//    enabled in the rate book.
// 3. State tax is an estimate: a flat rate (4.5% by default) or a per-state
//    graduated schedule applied to wages less pre-tax deductions and a fixed
//    exemption.

// ProgressiveTax applies a bracket schedule to income. Each bracket taxes the
// slice of income between the previous limit and its own UpTo; a zero UpTo is
// the open top bracket.
func ProgressiveTax(brackets []domain.TaxBracket, income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}

	tax := decimal.Zero
	lower := decimal.Zero
	for _, bracket := range brackets {
		upper := income
		if !bracket.UpTo.IsZero() {
			upper = decimal.Min(income, bracket.UpTo)
		}
		if upper.GreaterThan(lower) {
			tax = tax.Add(upper.Sub(lower).Mul(bracket.Rate))
		}
		if bracket.UpTo.IsZero() || income.LessThanOrEqual(bracket.UpTo) {
			break
		}
		lower = bracket.UpTo
	}
	return tax
}

// FederalTaxCalculator handles federal income tax calculations
type FederalTaxCalculator struct {
	Year               int
	StandardDeductions map[domain.FilingStatus]decimal.Decimal
	Brackets           map[domain.FilingStatus][]domain.TaxBracket
	AllowanceValue     decimal.Decimal
}

// NewFederalTaxCalculator creates a federal tax calculator from payroll rules
func NewFederalTaxCalculator(table domain.PayrollTable) *FederalTaxCalculator {
	return &FederalTaxCalculator{
		Year:               table.TaxYear,
		StandardDeductions: table.StandardDeductions,
		Brackets:           table.Brackets,
		AllowanceValue:     table.AllowanceValue,
	}
}

// TaxableIncome subtracts pre-tax deductions, the standard deduction and any
// allowances from gross pay, flooring at zero
func (ftc *FederalTaxCalculator) TaxableIncome(gross, preTax decimal.Decimal, status domain.FilingStatus, allowances int) (decimal.Decimal, error) {
	deduction, ok := ftc.StandardDeductions[status]
	if !ok {
		return decimal.Zero, domain.InvalidCategory("filing status", string(status))
	}
	allowanceTotal := ftc.AllowanceValue.Mul(decimal.NewFromInt(int64(allowances)))
	taxable := gross.Sub(preTax).Sub(deduction).Sub(allowanceTotal)
	if taxable.IsNegative() {
		return decimal.Zero, nil
	}
	return taxable, nil
}

// CalculateFederalTax calculates federal income tax on taxable income
func (ftc *FederalTaxCalculator) CalculateFederalTax(taxable decimal.Decimal, status domain.FilingStatus) (decimal.Decimal, error) {
	brackets, ok := ftc.Brackets[status]
	if !ok {
		return decimal.Zero, domain.InvalidCategory("filing status", string(status))
	}
	return ProgressiveTax(brackets, taxable), nil
}

// FICACalculator handles FICA tax calculations
type FICACalculator struct {
	SSWageBase          decimal.Decimal
	SSRate              decimal.Decimal
	MedicareRate        decimal.Decimal
	AdditionalEnabled   bool
	AdditionalRate      decimal.Decimal
	HighIncomeThreshold decimal.Decimal
}

// NewFICACalculator creates a new FICA calculator with configurable values
func NewFICACalculator(rules domain.FICARules) *FICACalculator {
	return &FICACalculator{
		SSWageBase:          rules.SocialSecurityWageBase,
		SSRate:              rules.SocialSecurityRate,
		MedicareRate:        rules.MedicareRate,
		AdditionalEnabled:   rules.AdditionalMedicare.Enabled,
		AdditionalRate:      rules.AdditionalMedicare.Rate,
		HighIncomeThreshold: rules.AdditionalMedicare.Threshold,
	}
}

// CalculateFICA returns the Social Security, Medicare and Additional Medicare
// amounts on annual wages
func (fc *FICACalculator) CalculateFICA(wages decimal.Decimal) (ss, medicare, additional decimal.Decimal) {
	if !wages.IsPositive() {
		return decimal.Zero, decimal.Zero, decimal.Zero
	}

	// Social Security tax (capped)
	ss = decimal.Min(wages, fc.SSWageBase).Mul(fc.SSRate)

	// Medicare tax (no cap)
	medicare = wages.Mul(fc.MedicareRate)

	additional = decimal.Zero
	if fc.AdditionalEnabled && wages.GreaterThan(fc.HighIncomeThreshold) {
		additional = wages.Sub(fc.HighIncomeThreshold).Mul(fc.AdditionalRate)
	}
	return ss, medicare, additional
}

// StateTaxPolicy estimates annual state income tax
type StateTaxPolicy interface {
	// CalculateStateTax taxes wages (gross less pre-tax deductions) for a state
	CalculateStateTax(state string, wages decimal.Decimal) decimal.Decimal
	Mode() domain.StateTaxMode
}

// NewStateTaxPolicy builds the policy selected by the rules
func NewStateTaxPolicy(rules domain.StateTaxRules) (StateTaxPolicy, error) {
	flat := &FlatStateTax{Rate: rules.FlatRate, Exemption: rules.Exemption}
	switch rules.Mode {
	case domain.StateTaxFlat:
		return flat, nil
	case domain.StateTaxGraduated:
		return &GraduatedStateTax{Schedules: rules.Schedules, Fallback: flat}, nil
	default:
		return nil, domain.InvalidCategory("state tax mode", string(rules.Mode))
	}
}

// FlatStateTax applies one rate everywhere
type FlatStateTax struct {
	Rate      decimal.Decimal
	Exemption decimal.Decimal
}

// Mode implements StateTaxPolicy
func (f *FlatStateTax) Mode() domain.StateTaxMode { return domain.StateTaxFlat }

// CalculateStateTax implements StateTaxPolicy
func (f *FlatStateTax) CalculateStateTax(_ string, wages decimal.Decimal) decimal.Decimal {
	return f.base(wages).Mul(f.Rate)
}

func (f *FlatStateTax) base(wages decimal.Decimal) decimal.Decimal {
	base := wages.Sub(f.Exemption)
	if base.IsNegative() {
		return decimal.Zero
	}
	return base
}

// GraduatedStateTax applies a per-state bracket schedule. States without a
// schedule are taxed by the flat fallback.
type GraduatedStateTax struct {
	Schedules map[string][]domain.TaxBracket
	Fallback  *FlatStateTax
}

// Mode implements StateTaxPolicy
func (g *GraduatedStateTax) Mode() domain.StateTaxMode { return domain.StateTaxGraduated }

// CalculateStateTax implements StateTaxPolicy
func (g *GraduatedStateTax) CalculateStateTax(state string, wages decimal.Decimal) decimal.Decimal {
	schedule, ok := g.Schedules[state]
	if !ok {
		return g.Fallback.CalculateStateTax(state, wages)
	}
	return ProgressiveTax(schedule, g.Fallback.base(wages))
}
