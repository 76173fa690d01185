package domain

// WageAdvisoryInput holds the wage-claim eligibility checker inputs
type WageAdvisoryInput struct {
	WageType      WageType      `yaml:"wage_type" json:"wage_type"`
	TimeSinceOwed TimeSinceOwed `yaml:"time_since_owed" json:"time_since_owed"`
	State         string        `yaml:"state" json:"state"`
	PayFrequency  PayFrequency  `yaml:"pay_frequency" json:"pay_frequency"`
}

// WageAdvisoryResult is purely descriptive; no monetary figures are produced
type WageAdvisoryResult struct {
	StatusSummary      string       `yaml:"status_summary" json:"status_summary"`
	UrgencyLevel       UrgencyLevel `yaml:"urgency_level" json:"urgency_level"`
	WageCategories     []string     `yaml:"wage_categories" json:"wage_categories"`
	CommonFactors      []string     `yaml:"common_factors" json:"common_factors"`
	TimeConsiderations string       `yaml:"time_considerations" json:"time_considerations"`
	StateNote          string       `yaml:"state_note" json:"state_note"`
}
