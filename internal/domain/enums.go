package domain

import "fmt"

// Product identifies an insurance product line
type Product string

const (
	ProductAuto    Product = "auto"
	ProductHome    Product = "home"
	ProductRenters Product = "renters"
)

// CoverageTier is a named level of insurance coverage. Each product accepts
// only the tiers present in its rating table.
type CoverageTier string

const (
	TierMinimum  CoverageTier = "minimum"
	TierBasic    CoverageTier = "basic"
	TierStandard CoverageTier = "standard"
	TierFull     CoverageTier = "full"
	TierPremium  CoverageTier = "premium"
)

// VehicleType classifies the insured vehicle
type VehicleType string

const (
	VehicleSedan    VehicleType = "sedan"
	VehicleSUV      VehicleType = "suv"
	VehicleTruck    VehicleType = "truck"
	VehicleSports   VehicleType = "sports"
	VehicleLuxury   VehicleType = "luxury"
	VehicleElectric VehicleType = "electric"
)

// HomeType classifies the insured dwelling
type HomeType string

const (
	HomeSingleFamily HomeType = "single-family"
	HomeCondo        HomeType = "condo"
	HomeTownhouse    HomeType = "townhouse"
	HomeMobile       HomeType = "mobile"
)

// UnitType classifies a rented unit
type UnitType string

const (
	UnitApartment UnitType = "apartment"
	UnitHouse     UnitType = "house"
	UnitCondo     UnitType = "condo"
	UnitRoom      UnitType = "room"
)

// PayFrequency is how often a paycheck is issued
type PayFrequency string

const (
	PayWeekly      PayFrequency = "weekly"
	PayBiWeekly    PayFrequency = "bi-weekly"
	PaySemiMonthly PayFrequency = "semi-monthly"
	PayMonthly     PayFrequency = "monthly"
)

// PayFrequencies lists the supported frequencies in display order
var PayFrequencies = []PayFrequency{PayWeekly, PayBiWeekly, PaySemiMonthly, PayMonthly}

// PeriodsPerYear returns the number of paychecks issued per year
func (f PayFrequency) PeriodsPerYear() (int, error) {
	switch f {
	case PayWeekly:
		return 52, nil
	case PayBiWeekly:
		return 26, nil
	case PaySemiMonthly:
		return 24, nil
	case PayMonthly:
		return 12, nil
	default:
		return 0, InvalidCategory("pay frequency", string(f))
	}
}

// FilingStatus is the federal income tax filing status
type FilingStatus string

const (
	FilingSingle  FilingStatus = "single"
	FilingMarried FilingStatus = "married"
	FilingHead    FilingStatus = "head"
)

// FilingStatuses lists the supported statuses
var FilingStatuses = []FilingStatus{FilingSingle, FilingMarried, FilingHead}

// WageType is the kind of unpaid wage being assessed
type WageType string

const (
	WageOvertime    WageType = "overtime"
	WageMinimumWage WageType = "minimum-wage"
	WageCommissions WageType = "commissions"
	WageFinalPay    WageType = "final-pay"
)

// WageTypes lists the supported wage types
var WageTypes = []WageType{WageOvertime, WageMinimumWage, WageCommissions, WageFinalPay}

// TimeSinceOwed buckets how long wages have been outstanding
type TimeSinceOwed string

const (
	OwedLessThan30    TimeSinceOwed = "less-30"
	Owed30To90        TimeSinceOwed = "30-90"
	Owed90To180       TimeSinceOwed = "90-180"
	Owed180To365      TimeSinceOwed = "180-365"
	OwedMoreThanAYear TimeSinceOwed = "over-365"
)

// TimeBuckets lists the time buckets from shortest to longest
var TimeBuckets = []TimeSinceOwed{OwedLessThan30, Owed30To90, Owed90To180, Owed180To365, OwedMoreThanAYear}

// UrgencyLevel classifies how pressing a wage claim is
type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyModerate UrgencyLevel = "moderate"
	UrgencyElevated UrgencyLevel = "elevated"
	UrgencyHigh     UrgencyLevel = "high"
)

// Valid reports whether the urgency level is one of the known levels
func (u UrgencyLevel) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyModerate, UrgencyElevated, UrgencyHigh:
		return true
	}
	return false
}

func (u UrgencyLevel) String() string { return string(u) }

func (p Product) String() string { return string(p) }

// Validate checks that the frequency is supported
func (f PayFrequency) Validate() error {
	_, err := f.PeriodsPerYear()
	return err
}

// Validate checks that the filing status is supported
func (s FilingStatus) Validate() error {
	switch s {
	case FilingSingle, FilingMarried, FilingHead:
		return nil
	}
	return InvalidCategory("filing status", string(s))
}

// Validate checks that the wage type is supported
func (w WageType) Validate() error {
	for _, t := range WageTypes {
		if t == w {
			return nil
		}
	}
	return InvalidCategory("wage type", string(w))
}

// Validate checks that the time bucket is supported
func (t TimeSinceOwed) Validate() error {
	for _, b := range TimeBuckets {
		if b == t {
			return nil
		}
	}
	return InvalidCategory("time since owed", string(t))
}

// ParseProduct converts a name into a Product
func ParseProduct(name string) (Product, error) {
	switch Product(name) {
	case ProductAuto, ProductHome, ProductRenters:
		return Product(name), nil
	}
	return "", fmt.Errorf("%w: unknown product %q", ErrInvalidCategory, name)
}
