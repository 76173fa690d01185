package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Validate checks that a rating table is complete enough to price every
// tier and category it declares.
func (t RatingTable) Validate() error {
	switch t.Basis {
	case BasisFlat, BasisPerThousand:
	case BasisFloorPlusMarginal:
		if err := RequireNonNegative("marginal threshold", t.MarginalThreshold); err != nil {
			return err
		}
		if err := RequireNonNegative("marginal rate per thousand", t.MarginalPerThousand); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%s: unknown rate basis %q", t.Product, t.Basis)
	}

	if len(t.BaseRates) == 0 {
		return fmt.Errorf("%s: at least one base rate is required", t.Product)
	}
	for tier, rate := range t.BaseRates {
		if err := RequireNonNegative(fmt.Sprintf("%s base rate for %s", t.Product, tier), rate); err != nil {
			return err
		}
		if _, ok := t.CoverageSummaries[tier]; !ok {
			return fmt.Errorf("%s: coverage summary missing for tier %s", t.Product, tier)
		}
		if _, ok := t.CoverageDetails[tier]; !ok {
			return fmt.Errorf("%s: coverage details missing for tier %s", t.Product, tier)
		}
	}

	if len(t.CategoryMultipliers) == 0 {
		return fmt.Errorf("%s: at least one category multiplier is required", t.Product)
	}
	for category, m := range t.CategoryMultipliers {
		if err := RequireNonNegative(fmt.Sprintf("%s multiplier for %s", t.Product, category), m); err != nil {
			return err
		}
		if _, ok := t.RatingFactors[category]; !ok {
			return fmt.Errorf("%s: rating factors missing for category %s", t.Product, category)
		}
	}
	for region, m := range t.RegionMultipliers {
		if err := RequireNonNegative(fmt.Sprintf("%s multiplier for region %s", t.Product, region), m); err != nil {
			return err
		}
	}

	for i, band := range t.AgeBands {
		last := i == len(t.AgeBands)-1
		if band.Below.IsZero() != last {
			return fmt.Errorf("%s: only the last age band may be open-ended", t.Product)
		}
		if i > 0 && !last && band.Below.LessThanOrEqual(t.AgeBands[i-1].Below) {
			return fmt.Errorf("%s: age bands must be in ascending order", t.Product)
		}
		if err := RequireNonNegative("age band multiplier", band.Multiplier); err != nil {
			return err
		}
	}
	return nil
}

// ValidateBrackets checks that a bracket schedule ascends and ends with an
// open-ended bracket.
func ValidateBrackets(name string, brackets []TaxBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%s: no brackets defined", name)
	}
	prev := decimal.Zero
	for i, b := range brackets {
		last := i == len(brackets)-1
		if err := RequireNonNegative(fmt.Sprintf("%s bracket %d limit", name, i+1), b.UpTo); err != nil {
			return err
		}
		if err := RequireNonNegative(fmt.Sprintf("%s bracket %d rate", name, i+1), b.Rate); err != nil {
			return err
		}
		if b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("%s: bracket %d rate must be between 0 and 1", name, i+1)
		}
		if last {
			if !b.UpTo.IsZero() {
				return fmt.Errorf("%s: top bracket must be open-ended", name)
			}
			break
		}
		if b.UpTo.LessThanOrEqual(prev) {
			return fmt.Errorf("%s: bracket %d limit %s must exceed %s", name, i+1, b.UpTo, prev)
		}
		prev = b.UpTo
	}
	return nil
}

// Validate checks the payroll rules for internal consistency
func (t PayrollTable) Validate() error {
	if !t.StandardWorkHours.IsPositive() {
		return fmt.Errorf("standard work hours must be positive")
	}
	for _, status := range FilingStatuses {
		if _, ok := t.StandardDeductions[status]; !ok {
			return fmt.Errorf("standard deduction missing for filing status %s", status)
		}
		if err := ValidateBrackets(fmt.Sprintf("federal brackets (%s)", status), t.Brackets[status]); err != nil {
			return err
		}
	}
	if err := RequireNonNegative("allowance value", t.AllowanceValue); err != nil {
		return err
	}
	if err := RequireNonNegative("social security wage base", t.FICA.SocialSecurityWageBase); err != nil {
		return err
	}
	if t.FICA.AdditionalMedicare.Enabled && !t.FICA.AdditionalMedicare.Threshold.IsPositive() {
		return fmt.Errorf("additional medicare threshold must be positive when enabled")
	}
	switch t.StateTax.Mode {
	case StateTaxFlat:
	case StateTaxGraduated:
		for state, schedule := range t.StateTax.Schedules {
			if err := ValidateBrackets("state schedule "+state, schedule); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown state tax mode %q", t.StateTax.Mode)
	}
	if err := RequireNonNegative("state tax exemption", t.StateTax.Exemption); err != nil {
		return err
	}
	return nil
}

// Validate checks that every wage type and time bucket has advisory text
func (t AdvisoryTable) Validate() error {
	for _, w := range WageTypes {
		if t.WageLabels[w] == "" {
			return fmt.Errorf("wage label missing for %s", w)
		}
		if len(t.WageCategories[w]) == 0 {
			return fmt.Errorf("wage categories missing for %s", w)
		}
		if len(t.CommonFactors[w]) == 0 {
			return fmt.Errorf("common factors missing for %s", w)
		}
	}
	for _, b := range TimeBuckets {
		rules, ok := t.TimeBuckets[b]
		if !ok || rules.Label == "" {
			return fmt.Errorf("time bucket %s is not described", b)
		}
		if !rules.Urgency.Valid() {
			return fmt.Errorf("time bucket %s has invalid urgency %q", b, rules.Urgency)
		}
	}
	if t.DefaultStateNote == "" {
		return fmt.Errorf("default state note is required")
	}
	return nil
}

// Validate checks every table in the rate book
func (rb *RateBook) Validate() error {
	for _, t := range []RatingTable{rb.Auto, rb.Home, rb.Renters} {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("rating table: %w", err)
		}
	}
	if err := rb.Payroll.Validate(); err != nil {
		return fmt.Errorf("payroll: %w", err)
	}
	if err := rb.Advisory.Validate(); err != nil {
		return fmt.Errorf("wage advisory: %w", err)
	}
	return nil
}
