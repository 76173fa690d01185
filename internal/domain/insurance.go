package domain

import "github.com/shopspring/decimal"

// AutoInput holds the car insurance estimator inputs
type AutoInput struct {
	DriverAge     decimal.Decimal `yaml:"driver_age" json:"driver_age"`
	State         string          `yaml:"state" json:"state"`
	VehicleType   VehicleType     `yaml:"vehicle_type" json:"vehicle_type"`
	CoverageLevel CoverageTier    `yaml:"coverage_level" json:"coverage_level"`
}

// HomeInput holds the homeowners insurance estimator inputs
type HomeInput struct {
	HomeValue     decimal.Decimal `yaml:"home_value" json:"home_value"`
	State         string          `yaml:"state" json:"state"`
	HomeType      HomeType        `yaml:"home_type" json:"home_type"`
	CoverageLevel CoverageTier    `yaml:"coverage_level" json:"coverage_level"`
}

// RentersInput holds the renters insurance estimator inputs
type RentersInput struct {
	PersonalPropertyValue decimal.Decimal `yaml:"personal_property_value" json:"personal_property_value"`
	State                 string          `yaml:"state" json:"state"`
	UnitType              UnitType        `yaml:"unit_type" json:"unit_type"`
	CoverageLevel         CoverageTier    `yaml:"coverage_level" json:"coverage_level"`
}

// CoverageDetail is a single protection line and whether the tier includes it
type CoverageDetail struct {
	Label    string `yaml:"label" json:"label"`
	Included bool   `yaml:"included" json:"included"`
}

// RatingResult is the premium estimate for any insurance product.
// MonthlyPremium is rounded independently from AnnualPremium, so
// MonthlyPremium*12 may differ from AnnualPremium by up to 6.
type RatingResult struct {
	Product         Product          `yaml:"product" json:"product"`
	MonthlyPremium  decimal.Decimal  `yaml:"monthly_premium" json:"monthly_premium"`
	AnnualPremium   decimal.Decimal  `yaml:"annual_premium" json:"annual_premium"`
	CoverageSummary []string         `yaml:"coverage_summary" json:"coverage_summary"`
	RatingFactors   []string         `yaml:"rating_factors" json:"rating_factors"`
	CoverageDetails []CoverageDetail `yaml:"coverage_details" json:"coverage_details"`
}

// IncludedCount returns how many coverage lines the tier includes
func (r RatingResult) IncludedCount() int {
	n := 0
	for _, d := range r.CoverageDetails {
		if d.Included {
			n++
		}
	}
	return n
}
