package calculation

import (
	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/shopspring/decimal"
)

// RATING TABLE ASSUMPTIONS:
//
// 1. State multipliers are simplified averages of published premium data.
//    States not listed rate at 1.00.
// 2. Auto base rates are annual amounts; home base rates are per $1000 of
//    dwelling value; renters base rates are a floor plus $0.50 per $1000 of
//    personal property above $20,000.
// 3. Descriptive text does not influence the computed premium.

func decimalTable(values map[string]float64) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(values))
	for k, v := range values {
		out[k] = decimal.NewFromFloat(v)
	}
	return out
}

// DefaultAutoTable returns the 2026 car insurance rating table
func DefaultAutoTable() domain.RatingTable {
	return domain.RatingTable{
		Product: domain.ProductAuto,
		Basis:   domain.BasisFlat,
		BaseRates: map[domain.CoverageTier]decimal.Decimal{
			domain.TierMinimum:  decimal.NewFromInt(840),
			domain.TierStandard: decimal.NewFromInt(1440),
			domain.TierFull:     decimal.NewFromInt(2160),
		},
		RegionMultipliers: decimalTable(map[string]float64{
			"MI": 1.45, "LA": 1.40, "FL": 1.35, "NY": 1.30, "CA": 1.25,
			"NJ": 1.28, "TX": 1.20, "GA": 1.18, "AZ": 1.15, "CO": 1.12,
			"PA": 1.10, "IL": 1.08, "OH": 1.05, "VA": 1.02, "WA": 1.00,
			"NC": 0.98, "TN": 0.95, "IN": 0.92, "WI": 0.90, "IA": 0.88,
			"ID": 0.85, "ME": 0.85, "VT": 0.82, "NH": 0.80,
		}),
		CategoryMultipliers: decimalTable(map[string]float64{
			string(domain.VehicleSedan):    1.00,
			string(domain.VehicleSUV):      1.10,
			string(domain.VehicleTruck):    1.08,
			string(domain.VehicleSports):   1.45,
			string(domain.VehicleLuxury):   1.55,
			string(domain.VehicleElectric): 1.15,
		}),
		// Younger and older drivers pay more
		AgeBands: []domain.AgeBand{
			{Below: decimal.NewFromInt(20), Multiplier: decimal.NewFromFloat(1.85)},
			{Below: decimal.NewFromInt(25), Multiplier: decimal.NewFromFloat(1.55)},
			{Below: decimal.NewFromInt(30), Multiplier: decimal.NewFromFloat(1.20)},
			{Below: decimal.NewFromInt(65), Multiplier: decimal.NewFromFloat(1.00)},
			{Below: decimal.NewFromInt(75), Multiplier: decimal.NewFromFloat(1.15)},
			{Below: decimal.Zero, Multiplier: decimal.NewFromFloat(1.35)},
		},
		CoverageSummaries: map[domain.CoverageTier][]string{
			domain.TierMinimum: {
				"State-required liability coverage only",
				"Covers damage you cause to others",
				"No coverage for your own vehicle",
				"Lowest premium, highest out-of-pocket risk",
			},
			domain.TierStandard: {
				"Liability plus collision coverage",
				"Covers damage to your vehicle in accidents",
				"Includes uninsured motorist protection",
				"Balanced coverage and cost",
			},
			domain.TierFull: {
				"Comprehensive liability and collision",
				"Covers theft, vandalism, weather damage",
				"Lower deductibles available",
				"Maximum protection, higher premium",
			},
		},
		CoverageDetails: map[domain.CoverageTier][]domain.CoverageDetail{
			domain.TierMinimum: coverageLines(
				[]string{"Bodily Injury Liability", "Property Damage Liability", "Collision Coverage", "Comprehensive Coverage", "Uninsured Motorist", "Medical Payments"},
				true, true, false, false, false, false),
			domain.TierStandard: coverageLines(
				[]string{"Bodily Injury Liability", "Property Damage Liability", "Collision Coverage", "Comprehensive Coverage", "Uninsured Motorist", "Medical Payments"},
				true, true, true, false, true, true),
			domain.TierFull: coverageLines(
				[]string{"Bodily Injury Liability", "Property Damage Liability", "Collision Coverage", "Comprehensive Coverage", "Uninsured Motorist", "Medical Payments"},
				true, true, true, true, true, true),
		},
		RatingFactors: map[string][]string{
			string(domain.VehicleSedan): {
				"Standard vehicle classification",
				"Average repair costs",
				"Common replacement parts availability",
				"Moderate theft risk profile",
				"Typical safety ratings considered",
			},
			string(domain.VehicleSUV): {
				"Higher ride height considerations",
				"Increased repair costs",
				"Rollover risk factor",
				"Family vehicle safety credits possible",
				"Higher replacement value",
			},
			string(domain.VehicleTruck): {
				"Work vehicle classification",
				"Higher repair costs for body damage",
				"Usage pattern considerations",
				"Cargo liability factors",
				"Moderate theft risk",
			},
			string(domain.VehicleSports): {
				"High-performance vehicle surcharge",
				"Increased accident risk statistics",
				"Expensive repair costs",
				"Higher theft target",
				"Speed-related claim frequency",
			},
			string(domain.VehicleLuxury): {
				"Premium vehicle classification",
				"Specialized repair requirements",
				"High replacement part costs",
				"Elevated theft risk",
				"Advanced technology repair costs",
			},
			string(domain.VehicleElectric): {
				"Specialized battery/drivetrain repairs",
				"Limited repair facility availability",
				"Higher replacement costs",
				"Emerging vehicle data considerations",
				"Potential eco-vehicle discounts",
			},
		},
	}
}

// DefaultHomeTable returns the 2026 homeowners insurance rating table
func DefaultHomeTable() domain.RatingTable {
	labels := []string{"Dwelling Coverage", "Personal Property", "Liability Protection", "Additional Living Expenses", "Water Backup", "Scheduled Valuables"}
	return domain.RatingTable{
		Product: domain.ProductHome,
		Basis:   domain.BasisPerThousand,
		BaseRates: map[domain.CoverageTier]decimal.Decimal{
			domain.TierBasic:    decimal.NewFromFloat(3.50),
			domain.TierStandard: decimal.NewFromFloat(5.00),
			domain.TierPremium:  decimal.NewFromFloat(7.50),
		},
		// Weighted toward weather and disaster exposure
		RegionMultipliers: decimalTable(map[string]float64{
			"FL": 1.80, "LA": 1.75, "TX": 1.45, "OK": 1.40, "KS": 1.35,
			"MS": 1.30, "AL": 1.25, "SC": 1.20, "NC": 1.15, "GA": 1.12,
			"CA": 1.35, "CO": 1.10, "AZ": 1.05, "NV": 1.00, "NM": 1.00,
			"NY": 1.08, "NJ": 1.10, "PA": 0.95, "OH": 0.92, "MI": 0.95,
			"IL": 0.98, "WI": 0.90, "MN": 0.88, "IA": 0.85, "IN": 0.90,
			"VT": 0.82, "NH": 0.85, "ME": 0.88, "ID": 0.80, "OR": 0.95,
			"WA": 0.92, "UT": 0.85,
		}),
		CategoryMultipliers: decimalTable(map[string]float64{
			string(domain.HomeSingleFamily): 1.00,
			string(domain.HomeCondo):        0.65,
			string(domain.HomeTownhouse):    0.85,
			string(domain.HomeMobile):       1.45,
		}),
		CoverageSummaries: map[domain.CoverageTier][]string{
			domain.TierBasic: {
				"Dwelling coverage for major perils",
				"Limited personal property protection",
				"Basic liability coverage",
				"Lower premiums, higher deductibles",
			},
			domain.TierStandard: {
				"Comprehensive dwelling protection",
				"Personal property replacement cost",
				"Extended liability coverage",
				"Additional living expenses included",
			},
			domain.TierPremium: {
				"Guaranteed replacement cost coverage",
				"High-value personal property riders",
				"Umbrella liability protection",
				"Water backup and service line coverage",
			},
		},
		CoverageDetails: map[domain.CoverageTier][]domain.CoverageDetail{
			domain.TierBasic:    coverageLines(labels, true, true, true, false, false, false),
			domain.TierStandard: coverageLines(labels, true, true, true, true, false, false),
			domain.TierPremium:  coverageLines(labels, true, true, true, true, true, true),
		},
		RatingFactors: map[string][]string{
			string(domain.HomeSingleFamily): {
				"Full structure responsibility",
				"Lot size and outbuildings",
				"Roof age and condition",
				"Distance to fire station",
				"Home security systems",
			},
			string(domain.HomeCondo): {
				"HOA master policy coverage",
				"Unit-only interior coverage",
				"Shared structure exclusions",
				"Assessment coverage options",
				"Lower overall exposure",
			},
			string(domain.HomeTownhouse): {
				"Shared wall considerations",
				"Individual structure portions",
				"HOA common area factors",
				"Fire spread risk",
				"Foundation responsibility",
			},
			string(domain.HomeMobile): {
				"Specialized construction risk",
				"Wind/storm vulnerability",
				"Anchoring requirements",
				"Transportation damage history",
				"Limited insurer availability",
			},
		},
	}
}

// DefaultRentersTable returns the 2026 renters insurance rating table
func DefaultRentersTable() domain.RatingTable {
	labels := []string{"Personal Property", "Liability Protection", "Medical Payments", "Additional Living Expenses", "Identity Theft", "Valuable Items Rider"}
	return domain.RatingTable{
		Product: domain.ProductRenters,
		Basis:   domain.BasisFloorPlusMarginal,
		BaseRates: map[domain.CoverageTier]decimal.Decimal{
			domain.TierBasic:    decimal.NewFromInt(144),
			domain.TierStandard: decimal.NewFromInt(216),
			domain.TierPremium:  decimal.NewFromInt(324),
		},
		MarginalThreshold:   decimal.NewFromInt(20000),
		MarginalPerThousand: decimal.NewFromFloat(0.50),
		RegionMultipliers: decimalTable(map[string]float64{
			"FL": 1.45, "LA": 1.40, "TX": 1.25, "OK": 1.20, "MS": 1.18,
			"AL": 1.15, "GA": 1.12, "SC": 1.10, "NC": 1.08, "TN": 1.05,
			"CA": 1.20, "NY": 1.15, "NJ": 1.12, "MA": 1.08, "CT": 1.05,
			"PA": 0.98, "OH": 0.95, "MI": 0.98, "IL": 1.00, "WI": 0.92,
			"MN": 0.90, "IA": 0.88, "IN": 0.92, "MO": 0.95, "CO": 1.02,
			"AZ": 1.00, "NV": 0.98, "WA": 0.95, "OR": 0.92, "UT": 0.90,
			"ID": 0.85, "VT": 0.88, "NH": 0.90, "ME": 0.92,
		}),
		CategoryMultipliers: decimalTable(map[string]float64{
			string(domain.UnitApartment): 1.00,
			string(domain.UnitHouse):     1.15,
			string(domain.UnitCondo):     0.95,
			string(domain.UnitRoom):      0.80,
		}),
		CoverageSummaries: map[domain.CoverageTier][]string{
			domain.TierBasic: {
				"Personal property protection",
				"Basic liability coverage ($100k)",
				"Named perils only coverage",
				"Most affordable option",
			},
			domain.TierStandard: {
				"Personal property replacement cost",
				"Higher liability limits ($300k)",
				"Additional living expenses",
				"Broader peril coverage",
			},
			domain.TierPremium: {
				"Extended replacement cost",
				"Maximum liability ($500k)",
				"Identity theft protection",
				"Valuable items coverage",
			},
		},
		CoverageDetails: map[domain.CoverageTier][]domain.CoverageDetail{
			domain.TierBasic:    coverageLines(labels, true, true, true, false, false, false),
			domain.TierStandard: coverageLines(labels, true, true, true, true, false, false),
			domain.TierPremium:  coverageLines(labels, true, true, true, true, true, true),
		},
		RatingFactors: map[string][]string{
			string(domain.UnitApartment): {
				"Multi-unit building factors",
				"Floor level considerations",
				"Building security features",
				"Sprinkler system presence",
				"Proximity to neighbors",
			},
			string(domain.UnitHouse): {
				"Single-family rental exposure",
				"Yard/outdoor liability",
				"Larger square footage",
				"Detached structure risks",
				"Property maintenance factors",
			},
			string(domain.UnitCondo): {
				"HOA insurance overlap",
				"Unit-specific coverage",
				"Shared amenity access",
				"Building age factors",
				"Association rules compliance",
			},
			string(domain.UnitRoom): {
				"Shared living space",
				"Limited liability exposure",
				"Roommate considerations",
				"Reduced coverage needs",
				"Personal space limits",
			},
		},
	}
}

// coverageLines pairs labels with included flags in order
func coverageLines(labels []string, included ...bool) []domain.CoverageDetail {
	lines := make([]domain.CoverageDetail, len(labels))
	for i, label := range labels {
		lines[i] = domain.CoverageDetail{Label: label, Included: i < len(included) && included[i]}
	}
	return lines
}
