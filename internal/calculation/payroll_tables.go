package calculation

import (
	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/shopspring/decimal"
)

func brackets(limits []int64, rates []float64) []domain.TaxBracket {
	out := make([]domain.TaxBracket, len(rates))
	for i, rate := range rates {
		out[i] = domain.TaxBracket{Rate: decimal.NewFromFloat(rate)}
		if i < len(limits) {
			out[i].UpTo = decimal.NewFromInt(limits[i])
		}
	}
	return out
}

var federalRates2026 = []float64{0.10, 0.12, 0.22, 0.24, 0.32, 0.35, 0.37}

// DefaultPayrollTable returns the provisional 2026 payroll rules
func DefaultPayrollTable() domain.PayrollTable {
	return domain.PayrollTable{
		TaxYear:           2026,
		StandardWorkHours: decimal.NewFromInt(2080),
		StandardDeductions: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:  decimal.NewFromInt(15000),
			domain.FilingMarried: decimal.NewFromInt(30000),
			domain.FilingHead:    decimal.NewFromInt(22500),
		},
		Brackets: map[domain.FilingStatus][]domain.TaxBracket{
			domain.FilingSingle:  brackets([]int64{11925, 48475, 103350, 197300, 250525, 626350}, federalRates2026),
			domain.FilingMarried: brackets([]int64{23850, 96950, 206700, 394600, 501050, 751600}, federalRates2026),
			domain.FilingHead:    brackets([]int64{17000, 64850, 103350, 197300, 250500, 626350}, federalRates2026),
		},
		AllowanceValue: decimal.Zero,
		FICA: domain.FICARules{
			SocialSecurityRate:     decimal.NewFromFloat(0.062),
			SocialSecurityWageBase: decimal.NewFromInt(176100),
			MedicareRate:           decimal.NewFromFloat(0.0145),
			AdditionalMedicare: domain.AdditionalMedicareRules{
				Enabled:   false,
				Rate:      decimal.NewFromFloat(0.009),
				Threshold: decimal.NewFromInt(200000),
			},
		},
		StateTax: domain.StateTaxRules{
			Mode:      domain.StateTaxFlat,
			FlatRate:  decimal.NewFromFloat(0.045),
			Exemption: decimal.NewFromInt(2000),
		},
	}
}
