package domain

import (
	"github.com/shopspring/decimal"
)

// RateBook contains every static table the estimators read. It is built once
// (defaults plus an optional YAML overlay) and handed read-only to the engines.
type RateBook struct {
	Metadata RateBookMetadata `yaml:"metadata" json:"metadata"`
	Auto     RatingTable      `yaml:"auto" json:"auto"`
	Home     RatingTable      `yaml:"home" json:"home"`
	Renters  RatingTable      `yaml:"renters" json:"renters"`
	Payroll  PayrollTable     `yaml:"payroll" json:"payroll"`
	Advisory AdvisoryTable    `yaml:"wage_advisory" json:"wage_advisory"`
}

// RateBookMetadata contains information about the rate data
type RateBookMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// RateBasis selects how a rating table turns a coverage tier into a base rate
type RateBasis string

const (
	// BasisFlat uses the tier's base rate as the annual amount
	BasisFlat RateBasis = "flat"
	// BasisPerThousand multiplies the tier rate by insured value / 1000
	BasisPerThousand RateBasis = "per_thousand"
	// BasisFloorPlusMarginal adds a per-thousand charge above a value threshold
	BasisFloorPlusMarginal RateBasis = "floor_plus_marginal"
)

// AgeBand applies Multiplier to ages below Below. A zero Below marks the
// open-ended last band.
type AgeBand struct {
	Below      decimal.Decimal `yaml:"below" json:"below"`
	Multiplier decimal.Decimal `yaml:"multiplier" json:"multiplier"`
}

// RatingTable parameterizes one insurance product line
type RatingTable struct {
	Product             Product                           `yaml:"product" json:"product"`
	Basis               RateBasis                         `yaml:"basis" json:"basis"`
	BaseRates           map[CoverageTier]decimal.Decimal  `yaml:"base_rates" json:"base_rates"`
	MarginalThreshold   decimal.Decimal                   `yaml:"marginal_threshold" json:"marginal_threshold"`
	MarginalPerThousand decimal.Decimal                   `yaml:"marginal_per_thousand" json:"marginal_per_thousand"`
	RegionMultipliers   map[string]decimal.Decimal        `yaml:"region_multipliers" json:"region_multipliers"`
	CategoryMultipliers map[string]decimal.Decimal        `yaml:"category_multipliers" json:"category_multipliers"`
	AgeBands            []AgeBand                         `yaml:"age_bands,omitempty" json:"age_bands,omitempty"`
	CoverageSummaries   map[CoverageTier][]string         `yaml:"coverage_summaries" json:"coverage_summaries"`
	CoverageDetails     map[CoverageTier][]CoverageDetail `yaml:"coverage_details" json:"coverage_details"`
	RatingFactors       map[string][]string               `yaml:"rating_factors" json:"rating_factors"`
}

// TaxBracket taxes income up to UpTo at Rate. A zero UpTo marks the
// open-ended top bracket.
type TaxBracket struct {
	UpTo decimal.Decimal `yaml:"up_to" json:"up_to"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// PayrollTable contains the federal, FICA and state rules for one tax year
type PayrollTable struct {
	TaxYear            int                              `yaml:"tax_year" json:"tax_year"`
	StandardWorkHours  decimal.Decimal                  `yaml:"standard_work_hours" json:"standard_work_hours"`
	StandardDeductions map[FilingStatus]decimal.Decimal `yaml:"standard_deductions" json:"standard_deductions"`
	Brackets           map[FilingStatus][]TaxBracket    `yaml:"brackets" json:"brackets"`
	AllowanceValue     decimal.Decimal                  `yaml:"allowance_value" json:"allowance_value"`
	FICA               FICARules                        `yaml:"fica" json:"fica"`
	StateTax           StateTaxRules                    `yaml:"state_tax" json:"state_tax"`
}

// FICARules contains Social Security and Medicare rates
type FICARules struct {
	SocialSecurityRate     decimal.Decimal         `yaml:"social_security_rate" json:"social_security_rate"`
	SocialSecurityWageBase decimal.Decimal         `yaml:"social_security_wage_base" json:"social_security_wage_base"`
	MedicareRate           decimal.Decimal         `yaml:"medicare_rate" json:"medicare_rate"`
	AdditionalMedicare     AdditionalMedicareRules `yaml:"additional_medicare" json:"additional_medicare"`
}

// AdditionalMedicareRules describes the surcharge on earnings above Threshold.
// Disabled by default; see DESIGN.md.
type AdditionalMedicareRules struct {
	Enabled   bool            `yaml:"enabled" json:"enabled"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
}

// StateTaxMode selects the state income tax policy
type StateTaxMode string

const (
	StateTaxFlat      StateTaxMode = "flat"
	StateTaxGraduated StateTaxMode = "graduated"
)

// StateTaxRules configures the state tax policy. Exemption is subtracted from
// gross pay less pre-tax deductions before any rate applies. In graduated mode,
// states without a schedule fall back to FlatRate.
type StateTaxRules struct {
	Mode      StateTaxMode            `yaml:"mode" json:"mode"`
	FlatRate  decimal.Decimal         `yaml:"flat_rate" json:"flat_rate"`
	Exemption decimal.Decimal         `yaml:"exemption" json:"exemption"`
	Schedules map[string][]TaxBracket `yaml:"schedules,omitempty" json:"schedules,omitempty"`
}

// TimeBucketRules describes one time-since-owed bucket
type TimeBucketRules struct {
	Label   string       `yaml:"label" json:"label"`
	Note    string       `yaml:"note" json:"note"`
	Urgency UrgencyLevel `yaml:"urgency" json:"urgency"`
}

// AdvisoryTable contains the wage-claim advisory text
type AdvisoryTable struct {
	WageLabels       map[WageType]string               `yaml:"wage_labels" json:"wage_labels"`
	WageCategories   map[WageType][]string             `yaml:"wage_categories" json:"wage_categories"`
	CommonFactors    map[WageType][]string             `yaml:"common_factors" json:"common_factors"`
	TimeBuckets      map[TimeSinceOwed]TimeBucketRules `yaml:"time_buckets" json:"time_buckets"`
	StateNotes       map[string]string                 `yaml:"state_notes" json:"state_notes"`
	DefaultStateNote string                            `yaml:"default_state_note" json:"default_state_note"`
}
