package calculation

import (
	"testing"

	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressiveTax(t *testing.T) {
	single := DefaultPayrollTable().Brackets[domain.FilingSingle]

	tests := []struct {
		name     string
		income   decimal.Decimal
		expected decimal.Decimal
	}{
		{"zero income", decimal.Zero, decimal.Zero},
		{"negative income", decimal.NewFromInt(-500), decimal.Zero},
		{"inside first bracket", decimal.NewFromInt(10000), decimal.NewFromInt(1000)},
		{"first bracket boundary", decimal.NewFromInt(11925), decimal.NewFromFloat(1192.50)},
		// 1192.50 + 36550 × 0.12 + 11525 × 0.22
		{"third bracket", decimal.NewFromInt(60000), decimal.NewFromInt(8114)},
		// 1192.50 + 4386 + 12072.50 + 22548 + 17032 + 131538.75 + 0.37 × 373650
		{"top bracket", decimal.NewFromInt(1000000), decimal.RequireFromString("327020.25")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressiveTax(single, tt.income)
			assert.True(t, got.Equal(tt.expected), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestFederalTaxCalculator_TaxableIncome(t *testing.T) {
	table := DefaultPayrollTable()
	calc := NewFederalTaxCalculator(table)

	taxable, err := calc.TaxableIncome(decimal.NewFromInt(75000), decimal.NewFromInt(5000), domain.FilingMarried, 0)
	require.NoError(t, err)
	assert.True(t, taxable.Equal(decimal.NewFromInt(40000)))

	taxable, err = calc.TaxableIncome(decimal.NewFromInt(10000), decimal.Zero, domain.FilingHead, 0)
	require.NoError(t, err)
	assert.True(t, taxable.IsZero(), "taxable income floors at zero")

	_, err = calc.TaxableIncome(decimal.NewFromInt(10000), decimal.Zero, "widowed", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	table.AllowanceValue = decimal.NewFromInt(4300)
	calc = NewFederalTaxCalculator(table)
	taxable, err = calc.TaxableIncome(decimal.NewFromInt(75000), decimal.Zero, domain.FilingSingle, 2)
	require.NoError(t, err)
	assert.True(t, taxable.Equal(decimal.NewFromInt(51400)), "75000 - 15000 - 2 × 4300, got %s", taxable)
}

func TestFICACalculator(t *testing.T) {
	rules := DefaultPayrollTable().FICA

	t.Run("below wage base", func(t *testing.T) {
		ss, medicare, additional := NewFICACalculator(rules).CalculateFICA(decimal.NewFromInt(75000))
		assert.True(t, ss.Equal(decimal.NewFromInt(4650)))
		assert.True(t, medicare.Equal(decimal.NewFromFloat(1087.50)))
		assert.True(t, additional.IsZero())
	})

	t.Run("social security caps at wage base", func(t *testing.T) {
		ss, medicare, additional := NewFICACalculator(rules).CalculateFICA(decimal.NewFromInt(300000))
		assert.True(t, ss.Equal(decimal.RequireFromString("10918.20")), "got %s", ss)
		assert.True(t, medicare.Equal(decimal.NewFromInt(4350)))
		assert.True(t, additional.IsZero(), "surcharge is off by default")
	})

	t.Run("additional medicare when enabled", func(t *testing.T) {
		enabled := rules
		enabled.AdditionalMedicare.Enabled = true
		_, _, additional := NewFICACalculator(enabled).CalculateFICA(decimal.NewFromInt(300000))
		assert.True(t, additional.Equal(decimal.NewFromInt(900)), "got %s", additional)

		_, _, additional = NewFICACalculator(enabled).CalculateFICA(decimal.NewFromInt(200000))
		assert.True(t, additional.IsZero(), "threshold itself is not surcharged")
	})

	t.Run("zero wages", func(t *testing.T) {
		ss, medicare, additional := NewFICACalculator(rules).CalculateFICA(decimal.Zero)
		assert.True(t, ss.IsZero())
		assert.True(t, medicare.IsZero())
		assert.True(t, additional.IsZero())
	})
}

func TestStateTaxPolicy(t *testing.T) {
	rules := DefaultPayrollTable().StateTax

	flat, err := NewStateTaxPolicy(rules)
	require.NoError(t, err)
	assert.Equal(t, domain.StateTaxFlat, flat.Mode())
	assert.True(t, flat.CalculateStateTax("TX", decimal.NewFromInt(75000)).Equal(decimal.NewFromInt(3285)))
	assert.True(t, flat.CalculateStateTax("TX", decimal.NewFromInt(1500)).IsZero(), "below the exemption")
	assert.True(t, flat.CalculateStateTax("TX", decimal.NewFromInt(-3000)).IsZero(), "pre-tax deductions above gross")

	rules.Mode = domain.StateTaxGraduated
	rules.Schedules = map[string][]domain.TaxBracket{
		"CA": {
			{UpTo: decimal.NewFromInt(10000), Rate: decimal.NewFromFloat(0.01)},
			{Rate: decimal.NewFromFloat(0.05)},
		},
	}
	graduated, err := NewStateTaxPolicy(rules)
	require.NoError(t, err)
	assert.Equal(t, domain.StateTaxGraduated, graduated.Mode())
	// (75000 - 2000): 10000 × 0.01 + 63000 × 0.05
	assert.True(t, graduated.CalculateStateTax("CA", decimal.NewFromInt(75000)).Equal(decimal.NewFromInt(3250)))
	assert.True(t, graduated.CalculateStateTax("TX", decimal.NewFromInt(75000)).Equal(decimal.NewFromInt(3285)), "falls back to flat")

	rules.Mode = "progressive"
	_, err = NewStateTaxPolicy(rules)
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}
