package calculation

import "github.com/rgehrsitz/estimators/internal/domain"

// DefaultDataYear is the year the built-in tables describe
const DefaultDataYear = 2026

// DefaultRateBook returns the built-in tables. Each call returns fresh maps,
// so callers may overlay values without affecting other rate books.
func DefaultRateBook() *domain.RateBook {
	return &domain.RateBook{
		Metadata: domain.RateBookMetadata{
			DataYear:    DefaultDataYear,
			Description: "Built-in 2026 estimator tables",
		},
		Auto:     DefaultAutoTable(),
		Home:     DefaultHomeTable(),
		Renters:  DefaultRentersTable(),
		Payroll:  DefaultPayrollTable(),
		Advisory: DefaultAdvisoryTable(),
	}
}
