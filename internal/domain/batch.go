package domain

import "fmt"

// EstimateKind names which estimator handles a request
type EstimateKind string

const (
	KindAuto         EstimateKind = "auto"
	KindHome         EstimateKind = "home"
	KindRenters      EstimateKind = "renters"
	KindPayroll      EstimateKind = "payroll"
	KindWageAdvisory EstimateKind = "wage_advisory"
)

// EstimateRequest is one named entry of a batch file. Exactly one of the
// product inputs must be set.
type EstimateRequest struct {
	Name         string             `yaml:"name" json:"name"`
	Auto         *AutoInput         `yaml:"auto,omitempty" json:"auto,omitempty"`
	Home         *HomeInput         `yaml:"home,omitempty" json:"home,omitempty"`
	Renters      *RentersInput      `yaml:"renters,omitempty" json:"renters,omitempty"`
	Payroll      *PayrollInput      `yaml:"payroll,omitempty" json:"payroll,omitempty"`
	WageAdvisory *WageAdvisoryInput `yaml:"wage_advisory,omitempty" json:"wage_advisory,omitempty"`
}

// Kind reports which input is set
func (r EstimateRequest) Kind() (EstimateKind, error) {
	var kinds []EstimateKind
	if r.Auto != nil {
		kinds = append(kinds, KindAuto)
	}
	if r.Home != nil {
		kinds = append(kinds, KindHome)
	}
	if r.Renters != nil {
		kinds = append(kinds, KindRenters)
	}
	if r.Payroll != nil {
		kinds = append(kinds, KindPayroll)
	}
	if r.WageAdvisory != nil {
		kinds = append(kinds, KindWageAdvisory)
	}
	switch len(kinds) {
	case 0:
		return "", fmt.Errorf("%w: estimate %q has no input", ErrInvalidInput, r.Name)
	case 1:
		return kinds[0], nil
	default:
		return "", fmt.Errorf("%w: estimate %q sets %d inputs, expected exactly one", ErrInvalidInput, r.Name, len(kinds))
	}
}

// Batch is a list of estimate requests evaluated in order
type Batch struct {
	Estimates []EstimateRequest `yaml:"estimates" json:"estimates"`
}

// EstimateResult holds the outcome of one request; only the field matching
// Kind is populated.
type EstimateResult struct {
	Name     string              `yaml:"name" json:"name"`
	Kind     EstimateKind        `yaml:"kind" json:"kind"`
	Premium  *RatingResult       `yaml:"premium,omitempty" json:"premium,omitempty"`
	Payroll  *PayrollResult      `yaml:"payroll,omitempty" json:"payroll,omitempty"`
	Advisory *WageAdvisoryResult `yaml:"wage_advisory,omitempty" json:"wage_advisory,omitempty"`
}

// BatchReport is the result of running a Batch
type BatchReport struct {
	DataYear int              `yaml:"data_year" json:"data_year"`
	Results  []EstimateResult `yaml:"results" json:"results"`
}
