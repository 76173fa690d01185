package tui

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/estimators/internal/domain"
)

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func tiers(values ...domain.CoverageTier) []string { return stringsOf(values) }

func stateField(value string) *field {
	return newTextField("state", "State", value, "CA", 2)
}

func newPage(scene Scene) *form {
	switch scene {
	case SceneAuto:
		return newForm(
			newTextField("age", "Driver age", "30", "30", 3),
			stateField("CA"),
			newChoiceField("vehicle", "Vehicle type", stringsOf([]domain.VehicleType{
				domain.VehicleSedan, domain.VehicleSUV, domain.VehicleTruck,
				domain.VehicleSports, domain.VehicleLuxury, domain.VehicleElectric,
			}), string(domain.VehicleSedan)),
			newChoiceField("coverage", "Coverage level",
				tiers(domain.TierMinimum, domain.TierStandard, domain.TierFull), string(domain.TierStandard)),
		)
	case SceneHome:
		return newForm(
			newTextField("value", "Home value", "300000", "300000", 12),
			stateField("CA"),
			newChoiceField("type", "Home type", stringsOf([]domain.HomeType{
				domain.HomeSingleFamily, domain.HomeCondo, domain.HomeTownhouse, domain.HomeMobile,
			}), string(domain.HomeSingleFamily)),
			newChoiceField("coverage", "Coverage level",
				tiers(domain.TierBasic, domain.TierStandard, domain.TierPremium), string(domain.TierStandard)),
		)
	case SceneRenters:
		return newForm(
			newTextField("value", "Personal property", "25000", "25000", 10),
			stateField("CA"),
			newChoiceField("type", "Unit type", stringsOf([]domain.UnitType{
				domain.UnitApartment, domain.UnitHouse, domain.UnitCondo, domain.UnitRoom,
			}), string(domain.UnitApartment)),
			newChoiceField("coverage", "Coverage level",
				tiers(domain.TierBasic, domain.TierStandard, domain.TierPremium), string(domain.TierStandard)),
		)
	case ScenePayroll:
		fields := []*field{
			newTextField("salary", "Annual salary", "60000", "60000", 12),
			newChoiceField("frequency", "Pay frequency", stringsOf(domain.PayFrequencies), string(domain.PayBiWeekly)),
			newChoiceField("status", "Filing status", stringsOf(domain.FilingStatuses), string(domain.FilingSingle)),
			stateField("CA"),
			newTextField("pretax", "Pre-tax deductions", "", "0", 10),
			newTextField("ot_hours", "Overtime hrs/period", "", "0", 5),
			newTextField("ot_rate", "Overtime multiplier", "1.5", "1.5", 4),
			newTextField("bonus", "Annual bonus", "", "0", 10),
		}
		for _, f := range fields[4:] {
			f.optional = true
		}
		return newForm(fields...)
	default:
		return newForm(
			newChoiceField("wage", "Wage type", stringsOf(domain.WageTypes), string(domain.WageOvertime)),
			newChoiceField("owed", "Time since owed", stringsOf(domain.TimeBuckets), string(domain.OwedLessThan30)),
			stateField("CA"),
			newChoiceField("frequency", "Pay frequency", stringsOf(domain.PayFrequencies), string(domain.PayBiWeekly)),
		)
	}
}

// request converts a page into an estimate request
func request(scene Scene, f *form) (domain.EstimateRequest, error) {
	req := domain.EstimateRequest{Name: scene.String()}
	state := strings.ToUpper(f.text("state"))

	switch scene {
	case SceneAuto:
		age, err := f.amount("age")
		if err != nil {
			return req, err
		}
		req.Auto = &domain.AutoInput{
			DriverAge:     age,
			State:         state,
			VehicleType:   domain.VehicleType(f.text("vehicle")),
			CoverageLevel: domain.CoverageTier(f.text("coverage")),
		}
	case SceneHome:
		value, err := f.amount("value")
		if err != nil {
			return req, err
		}
		req.Home = &domain.HomeInput{
			HomeValue:     value,
			State:         state,
			HomeType:      domain.HomeType(f.text("type")),
			CoverageLevel: domain.CoverageTier(f.text("coverage")),
		}
	case SceneRenters:
		value, err := f.amount("value")
		if err != nil {
			return req, err
		}
		req.Renters = &domain.RentersInput{
			PersonalPropertyValue: value,
			State:                 state,
			UnitType:              domain.UnitType(f.text("type")),
			CoverageLevel:         domain.CoverageTier(f.text("coverage")),
		}
	case ScenePayroll:
		in := domain.PayrollInput{
			PayFrequency: domain.PayFrequency(f.text("frequency")),
			FilingStatus: domain.FilingStatus(f.text("status")),
			State:        state,
		}
		targets := []struct {
			key string
			dst *decimal.Decimal
		}{
			{"salary", &in.AnnualSalary},
			{"pretax", &in.PreTaxDeductions},
			{"ot_hours", &in.OvertimeHours},
			{"ot_rate", &in.OvertimeRate},
			{"bonus", &in.Bonus},
		}
		for _, t := range targets {
			v, err := f.amount(t.key)
			if err != nil {
				return req, err
			}
			*t.dst = v
		}
		req.Payroll = &in
	case SceneWageCheck:
		req.WageAdvisory = &domain.WageAdvisoryInput{
			WageType:      domain.WageType(f.text("wage")),
			TimeSinceOwed: domain.TimeSinceOwed(f.text("owed")),
			State:         state,
			PayFrequency:  domain.PayFrequency(f.text("frequency")),
		}
	}
	return req, nil
}
