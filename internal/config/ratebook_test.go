package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRateBookLoader_EmptyPathUsesDefaults(t *testing.T) {
	book, err := NewRateBookLoader().Load("")
	require.NoError(t, err)
	assert.Equal(t, 2026, book.Metadata.DataYear)
	assert.True(t, book.Auto.RegionMultipliers["MI"].Equal(decimal.NewFromFloat(1.45)))
}

func TestRateBookLoader_Overlay(t *testing.T) {
	path := writeFile(t, "rates.yaml", `
metadata:
  data_year: 2027
  description: test overlay
auto:
  region_multipliers:
    AK: 1.30
payroll:
  fica:
    additional_medicare:
      enabled: true
  state_tax:
    mode: graduated
    schedules:
      CA:
        - up_to: 10000
          rate: 0.01
        - rate: 0.05
`)

	book, err := NewRateBookLoader().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2027, book.Metadata.DataYear)
	assert.True(t, book.Auto.RegionMultipliers["AK"].Equal(decimal.NewFromFloat(1.30)))
	assert.True(t, book.Auto.RegionMultipliers["CA"].Equal(decimal.NewFromFloat(1.25)), "untouched keys survive the overlay")
	assert.Len(t, book.Auto.AgeBands, 6)

	assert.True(t, book.Payroll.FICA.AdditionalMedicare.Enabled)
	assert.True(t, book.Payroll.FICA.AdditionalMedicare.Rate.Equal(decimal.NewFromFloat(0.009)))
	assert.Equal(t, domain.StateTaxGraduated, book.Payroll.StateTax.Mode)
	require.Len(t, book.Payroll.StateTax.Schedules["CA"], 2)
	assert.True(t, book.Payroll.StateTax.Schedules["CA"][1].UpTo.IsZero())
	assert.True(t, book.Payroll.StateTax.FlatRate.Equal(decimal.NewFromFloat(0.045)))
}

func TestRateBookLoader_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"malformed yaml", "auto: [", "failed to parse YAML"},
		{"wrong product", "home:\n  product: auto\n", `home table declares product "auto"`},
		{"unknown basis", "renters:\n  basis: sliding\n", "unknown rate basis"},
		{"negative multiplier", "home:\n  category_multipliers:\n    condo: -1\n", "cannot be negative"},
		{"huge multiplier", "home:\n  category_multipliers:\n    condo: 1e100000000\n", "out of range"},
		{"huge bracket limit", "payroll:\n  brackets:\n    single:\n      - up_to: 1e100000000\n        rate: 0.1\n      - rate: 0.2\n", "out of range"},
		{"open bracket in the middle", "payroll:\n  brackets:\n    single:\n      - rate: 0.1\n      - up_to: 5000\n        rate: 0.2\n", "must exceed"},
		{"unknown state tax mode", "payroll:\n  state_tax:\n    mode: progressive\n", "unknown state tax mode"},
		{"missing advisory urgency", "wage_advisory:\n  time_buckets:\n    less-30:\n      label: soon\n", "invalid urgency"},
		{"bad data year", "metadata:\n  data_year: 0\n", "data_year must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRateBookLoader().Parse([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRateBookLoader_MissingFile(t *testing.T) {
	_, err := NewRateBookLoader().LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRateBookLoader_DumpRoundTrip(t *testing.T) {
	loader := NewRateBookLoader()
	book, err := loader.Load("")
	require.NoError(t, err)

	out, err := loader.Dump(book)
	require.NoError(t, err)
	assert.Contains(t, string(out), "wage_advisory:")

	reloaded, err := loader.Parse(out)
	require.NoError(t, err)
	assert.True(t, reloaded.Home.BaseRates[domain.TierPremium].Equal(decimal.NewFromFloat(7.5)))
	assert.Equal(t, book.Advisory.StateNotes, reloaded.Advisory.StateNotes)
}
