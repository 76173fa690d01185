package calculation

import (
	"fmt"
	"slices"

	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	neutralMultiplier = decimal.NewFromInt(1)
	thousand          = decimal.NewFromInt(1000)
	monthsPerYear     = decimal.NewFromInt(12)
)

// RatingRequest is the product-neutral input to RatingEngine.Rate
type RatingRequest struct {
	Tier     domain.CoverageTier
	Region   string
	Category string
	Exposure decimal.Decimal  // insured value; ignored by flat tables
	Age      *decimal.Decimal // required when the table has age bands
}

// RatingEngine prices one insurance product line from its rating table.
// The table is treated as read-only after construction.
type RatingEngine struct {
	table domain.RatingTable
}

// NewRatingEngine validates the table and returns an engine for it
func NewRatingEngine(table domain.RatingTable) (*RatingEngine, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &RatingEngine{table: table}, nil
}

// Product returns the product line this engine prices
func (re *RatingEngine) Product() domain.Product {
	return re.table.Product
}

// Rate computes the annual and monthly premium for a request:
//
//	annual  = round(base × region × category [× age])
//	monthly = round(annual / 12)
func (re *RatingEngine) Rate(req RatingRequest) (domain.RatingResult, error) {
	base, err := re.BaseRate(req.Tier, req.Exposure)
	if err != nil {
		return domain.RatingResult{}, err
	}

	categoryMultiplier, ok := re.table.CategoryMultipliers[req.Category]
	if !ok {
		return domain.RatingResult{}, domain.InvalidCategory(re.categoryField(), req.Category)
	}

	premium := base.Mul(re.RegionMultiplier(req.Region)).Mul(categoryMultiplier)

	if len(re.table.AgeBands) > 0 {
		if req.Age == nil {
			return domain.RatingResult{}, fmt.Errorf("%w: %s rating requires an age", domain.ErrInvalidInput, re.table.Product)
		}
		if err := domain.RequireNonNegative("age", *req.Age); err != nil {
			return domain.RatingResult{}, err
		}
		premium = premium.Mul(re.AgeMultiplier(*req.Age))
	}

	annual := premium.Round(0)
	monthly := annual.Div(monthsPerYear).Round(0)

	return domain.RatingResult{
		Product:         re.table.Product,
		MonthlyPremium:  monthly,
		AnnualPremium:   annual,
		CoverageSummary: slices.Clone(re.table.CoverageSummaries[req.Tier]),
		RatingFactors:   slices.Clone(re.table.RatingFactors[req.Category]),
		CoverageDetails: slices.Clone(re.table.CoverageDetails[req.Tier]),
	}, nil
}

// BaseRate returns the annualized base rate for a tier before any multiplier
func (re *RatingEngine) BaseRate(tier domain.CoverageTier, exposure decimal.Decimal) (decimal.Decimal, error) {
	rate, ok := re.table.BaseRates[tier]
	if !ok {
		return decimal.Zero, domain.InvalidCategory(fmt.Sprintf("%s coverage level", re.table.Product), string(tier))
	}

	switch re.table.Basis {
	case domain.BasisPerThousand:
		if err := domain.RequireNonNegative("insured value", exposure); err != nil {
			return decimal.Zero, err
		}
		return exposure.Div(thousand).Mul(rate), nil
	case domain.BasisFloorPlusMarginal:
		if err := domain.RequireNonNegative("insured value", exposure); err != nil {
			return decimal.Zero, err
		}
		if exposure.GreaterThan(re.table.MarginalThreshold) {
			extraThousands := exposure.Sub(re.table.MarginalThreshold).Div(thousand)
			rate = rate.Add(extraThousands.Mul(re.table.MarginalPerThousand))
		}
		return rate, nil
	default:
		return rate, nil
	}
}

// RegionMultiplier returns the multiplier for a region code. Unknown codes
// are rated as neutral (1.00).
func (re *RatingEngine) RegionMultiplier(region string) decimal.Decimal {
	if m, ok := re.table.RegionMultipliers[region]; ok {
		return m
	}
	return neutralMultiplier
}

// AgeMultiplier walks the age bands in order; each band covers [previous, Below)
func (re *RatingEngine) AgeMultiplier(age decimal.Decimal) decimal.Decimal {
	return ageMultiplier(re.table.AgeBands, age)
}

func ageMultiplier(bands []domain.AgeBand, age decimal.Decimal) decimal.Decimal {
	for _, band := range bands {
		if band.Below.IsZero() || age.LessThan(band.Below) {
			return band.Multiplier
		}
	}
	return neutralMultiplier
}

func (re *RatingEngine) categoryField() string {
	switch re.table.Product {
	case domain.ProductAuto:
		return "vehicle type"
	case domain.ProductHome:
		return "home type"
	case domain.ProductRenters:
		return "unit type"
	default:
		return "category"
	}
}

// HasRegion reports whether the table carries a multiplier for region
func (re *RatingEngine) HasRegion(region string) bool {
	_, ok := re.table.RegionMultipliers[region]
	return ok
}
