package calculation

import (
	"fmt"

	"github.com/rgehrsitz/estimators/internal/domain"
)

// InsuranceRater prices the three insurance product lines
type InsuranceRater struct {
	Auto    *RatingEngine
	Home    *RatingEngine
	Renters *RatingEngine
}

// NewInsuranceRater builds a rating engine per product from the rate book
func NewInsuranceRater(book *domain.RateBook) (*InsuranceRater, error) {
	auto, err := NewRatingEngine(book.Auto)
	if err != nil {
		return nil, fmt.Errorf("auto rating table: %w", err)
	}
	home, err := NewRatingEngine(book.Home)
	if err != nil {
		return nil, fmt.Errorf("home rating table: %w", err)
	}
	renters, err := NewRatingEngine(book.Renters)
	if err != nil {
		return nil, fmt.Errorf("renters rating table: %w", err)
	}
	return &InsuranceRater{Auto: auto, Home: home, Renters: renters}, nil
}

// RateAuto prices car insurance
func (ir *InsuranceRater) RateAuto(in domain.AutoInput) (domain.RatingResult, error) {
	age := in.DriverAge
	return ir.Auto.Rate(RatingRequest{
		Tier:     in.CoverageLevel,
		Region:   in.State,
		Category: string(in.VehicleType),
		Age:      &age,
	})
}

// RateHome prices homeowners insurance
func (ir *InsuranceRater) RateHome(in domain.HomeInput) (domain.RatingResult, error) {
	return ir.Home.Rate(RatingRequest{
		Tier:     in.CoverageLevel,
		Region:   in.State,
		Category: string(in.HomeType),
		Exposure: in.HomeValue,
	})
}

// RateRenters prices renters insurance
func (ir *InsuranceRater) RateRenters(in domain.RentersInput) (domain.RatingResult, error) {
	return ir.Renters.Rate(RatingRequest{
		Tier:     in.CoverageLevel,
		Region:   in.State,
		Category: string(in.UnitType),
		Exposure: in.PersonalPropertyValue,
	})
}
