package calculation

import (
	"testing"

	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdvisoryEngine(t *testing.T) *AdvisoryEngine {
	t.Helper()
	ae, err := NewAdvisoryEngine(DefaultAdvisoryTable())
	require.NoError(t, err)
	return ae
}

func TestUrgencyFor(t *testing.T) {
	ae := newAdvisoryEngine(t)

	expected := map[domain.TimeSinceOwed]domain.UrgencyLevel{
		domain.OwedLessThan30:    domain.UrgencyLow,
		domain.Owed30To90:        domain.UrgencyModerate,
		domain.Owed90To180:       domain.UrgencyElevated,
		domain.Owed180To365:      domain.UrgencyHigh,
		domain.OwedMoreThanAYear: domain.UrgencyHigh,
	}
	for owed, want := range expected {
		got, err := ae.UrgencyFor(owed)
		require.NoError(t, err)
		assert.Equal(t, want, got, owed)
	}

	_, err := ae.UrgencyFor("yesterday")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestAssess_EveryCombination(t *testing.T) {
	ae := newAdvisoryEngine(t)

	count := 0
	for _, wageType := range domain.WageTypes {
		for _, owed := range domain.TimeBuckets {
			res, err := ae.Assess(domain.WageAdvisoryInput{
				WageType:      wageType,
				TimeSinceOwed: owed,
				State:         "OH",
				PayFrequency:  domain.PayBiWeekly,
			})
			require.NoError(t, err)
			assert.NotEmpty(t, res.StatusSummary)
			assert.NotEmpty(t, res.WageCategories)
			assert.NotEmpty(t, res.CommonFactors)
			assert.NotEmpty(t, res.TimeConsiderations)
			assert.True(t, res.UrgencyLevel.Valid())
			count++
		}
	}
	assert.Equal(t, 20, count)
}

func TestAssess_Text(t *testing.T) {
	ae := newAdvisoryEngine(t)

	res, err := ae.Assess(domain.WageAdvisoryInput{
		WageType:      domain.WageOvertime,
		TimeSinceOwed: domain.OwedLessThan30,
		State:         "CA",
		PayFrequency:  domain.PayWeekly,
	})
	require.NoError(t, err)

	assert.Equal(t, "Based on your inputs, you may have an unpaid overtime wages claim for wages owed less than 30 days. "+
		"This eligibility check highlights potential wage categories and key legal factors. "+
		"Eligibility depends on state law and specific circumstances—this is not a legal determination.", res.StatusSummary)
	assert.Equal(t, domain.UrgencyLow, res.UrgencyLevel)
	assert.Equal(t, "Hours worked over 40 per week", res.WageCategories[0])
	assert.Len(t, res.CommonFactors, 5)
	assert.Contains(t, res.StateNote, "waiting time penalties")
}

func TestAssess_LowercasesTimeLabel(t *testing.T) {
	ae := newAdvisoryEngine(t)

	res, err := ae.Assess(domain.WageAdvisoryInput{WageType: domain.WageFinalPay, TimeSinceOwed: domain.OwedMoreThanAYear, State: "NY"})
	require.NoError(t, err)
	assert.Contains(t, res.StatusSummary, "unpaid final pay claim for wages owed over 1 year.")
	assert.Equal(t, domain.UrgencyHigh, res.UrgencyLevel)
}

func TestAssess_UnknownStateUsesDefaultNote(t *testing.T) {
	ae := newAdvisoryEngine(t)

	res, err := ae.Assess(domain.WageAdvisoryInput{WageType: domain.WageCommissions, TimeSinceOwed: domain.Owed90To180, State: "WY"})
	require.NoError(t, err)
	assert.Equal(t, DefaultAdvisoryTable().DefaultStateNote, res.StateNote)
}

func TestAssess_InvalidCategory(t *testing.T) {
	ae := newAdvisoryEngine(t)

	inputs := []domain.WageAdvisoryInput{
		{WageType: "tips", TimeSinceOwed: domain.Owed30To90},
		{WageType: domain.WageOvertime, TimeSinceOwed: "forever"},
		{WageType: domain.WageOvertime, TimeSinceOwed: domain.Owed30To90, PayFrequency: "hourly"},
	}
	for _, in := range inputs {
		_, err := ae.Assess(in)
		assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	}
}

func TestAssess_ResultsDoNotAliasTables(t *testing.T) {
	ae := newAdvisoryEngine(t)
	in := domain.WageAdvisoryInput{WageType: domain.WageMinimumWage, TimeSinceOwed: domain.Owed30To90, State: "GA"}

	first, err := ae.Assess(in)
	require.NoError(t, err)
	first.WageCategories[0] = "changed"

	second, err := ae.Assess(in)
	require.NoError(t, err)
	assert.Equal(t, "Federal minimum wage compliance", second.WageCategories[0])
}
