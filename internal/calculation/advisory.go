package calculation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rgehrsitz/estimators/internal/domain"
)

const statusSummaryTemplate = "Based on your inputs, you may have an unpaid %s claim for wages owed %s. " +
	"This eligibility check highlights potential wage categories and key legal factors. " +
	"Eligibility depends on state law and specific circumstances—this is not a legal determination."

// AdvisoryEngine produces descriptive wage-claim guidance. It computes no
// monetary amounts.
type AdvisoryEngine struct {
	table domain.AdvisoryTable
}

// NewAdvisoryEngine validates the advisory text table
func NewAdvisoryEngine(table domain.AdvisoryTable) (*AdvisoryEngine, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &AdvisoryEngine{table: table}, nil
}

// UrgencyFor maps a time bucket to its urgency level
func (ae *AdvisoryEngine) UrgencyFor(owed domain.TimeSinceOwed) (domain.UrgencyLevel, error) {
	rules, ok := ae.table.TimeBuckets[owed]
	if !ok {
		return "", domain.InvalidCategory("time since owed", string(owed))
	}
	return rules.Urgency, nil
}

// StateNote returns the note for a state, or the default note
func (ae *AdvisoryEngine) StateNote(state string) string {
	if note, ok := ae.table.StateNotes[state]; ok {
		return note
	}
	return ae.table.DefaultStateNote
}

// Assess builds the advisory for a wage situation
func (ae *AdvisoryEngine) Assess(in domain.WageAdvisoryInput) (domain.WageAdvisoryResult, error) {
	if err := in.WageType.Validate(); err != nil {
		return domain.WageAdvisoryResult{}, err
	}
	if err := in.TimeSinceOwed.Validate(); err != nil {
		return domain.WageAdvisoryResult{}, err
	}
	// Pay frequency does not change the advice but must still be a known value
	if in.PayFrequency != "" {
		if err := in.PayFrequency.Validate(); err != nil {
			return domain.WageAdvisoryResult{}, err
		}
	}

	bucket, ok := ae.table.TimeBuckets[in.TimeSinceOwed]
	if !ok {
		return domain.WageAdvisoryResult{}, domain.InvalidCategory("time since owed", string(in.TimeSinceOwed))
	}
	label, ok := ae.table.WageLabels[in.WageType]
	if !ok {
		return domain.WageAdvisoryResult{}, domain.InvalidCategory("wage type", string(in.WageType))
	}

	return domain.WageAdvisoryResult{
		StatusSummary:      fmt.Sprintf(statusSummaryTemplate, label, strings.ToLower(bucket.Label)),
		UrgencyLevel:       bucket.Urgency,
		WageCategories:     slices.Clone(ae.table.WageCategories[in.WageType]),
		CommonFactors:      slices.Clone(ae.table.CommonFactors[in.WageType]),
		TimeConsiderations: bucket.Note,
		StateNote:          ae.StateNote(in.State),
	}, nil
}
