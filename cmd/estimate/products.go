package main

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/estimators/internal/domain"
)

func autoCmd(a *app) *cobra.Command {
	var (
		age                      float64
		state, vehicle, coverage string
	)
	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Estimate an auto insurance premium",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			driverAge, err := domain.DecimalFromFloat("driver age", age)
			if err != nil {
				return err
			}
			return a.runOne(cmd, domain.EstimateRequest{Name: "auto", Auto: &domain.AutoInput{
				DriverAge:     driverAge,
				State:         strings.ToUpper(state),
				VehicleType:   domain.VehicleType(vehicle),
				CoverageLevel: domain.CoverageTier(coverage),
			}})
		},
	}
	cmd.Flags().Float64Var(&age, "age", 30, "Driver age in years")
	cmd.Flags().StringVar(&state, "state", "CA", "Two-letter state code")
	cmd.Flags().StringVar(&vehicle, "vehicle", "sedan", "Vehicle type (sedan, suv, truck, sports, luxury, electric)")
	cmd.Flags().StringVar(&coverage, "coverage", "standard", "Coverage level (minimum, standard, full)")
	return cmd
}

func homeCmd(a *app) *cobra.Command {
	var (
		value                     float64
		state, homeType, coverage string
	)
	cmd := &cobra.Command{
		Use:   "home",
		Short: "Estimate a homeowners insurance premium",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			homeValue, err := domain.DecimalFromFloat("home value", value)
			if err != nil {
				return err
			}
			return a.runOne(cmd, domain.EstimateRequest{Name: "home", Home: &domain.HomeInput{
				HomeValue:     homeValue,
				State:         strings.ToUpper(state),
				HomeType:      domain.HomeType(homeType),
				CoverageLevel: domain.CoverageTier(coverage),
			}})
		},
	}
	cmd.Flags().Float64Var(&value, "value", 300000, "Insured home value in dollars")
	cmd.Flags().StringVar(&state, "state", "CA", "Two-letter state code")
	cmd.Flags().StringVar(&homeType, "type", "single-family", "Home type (single-family, condo, townhouse, mobile)")
	cmd.Flags().StringVar(&coverage, "coverage", "standard", "Coverage level (basic, standard, premium)")
	return cmd
}

func rentersCmd(a *app) *cobra.Command {
	var (
		value                     float64
		state, unitType, coverage string
	)
	cmd := &cobra.Command{
		Use:   "renters",
		Short: "Estimate a renters insurance premium",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			property, err := domain.DecimalFromFloat("personal property value", value)
			if err != nil {
				return err
			}
			return a.runOne(cmd, domain.EstimateRequest{Name: "renters", Renters: &domain.RentersInput{
				PersonalPropertyValue: property,
				State:                 strings.ToUpper(state),
				UnitType:              domain.UnitType(unitType),
				CoverageLevel:         domain.CoverageTier(coverage),
			}})
		},
	}
	cmd.Flags().Float64Var(&value, "value", 25000, "Personal property value in dollars")
	cmd.Flags().StringVar(&state, "state", "CA", "Two-letter state code")
	cmd.Flags().StringVar(&unitType, "unit", "apartment", "Unit type (apartment, house, condo, room)")
	cmd.Flags().StringVar(&coverage, "coverage", "standard", "Coverage level (basic, standard, premium)")
	return cmd
}

// payrollFlags are the paycheck inputs shared by paycheck and gross-up
type payrollFlags struct {
	salary, pretax, otHours, otRate, bonus float64
	frequency, filing, state               string
	allowances                             int
}

func (pf *payrollFlags) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&pf.salary, "salary", 60000, "Annual salary")
	cmd.Flags().StringVar(&pf.frequency, "frequency", "bi-weekly", "Pay frequency (weekly, bi-weekly, semi-monthly, monthly)")
	cmd.Flags().StringVar(&pf.filing, "filing", "single", "Filing status (single, married, head)")
	cmd.Flags().StringVar(&pf.state, "state", "CA", "Two-letter state code")
	cmd.Flags().Float64Var(&pf.pretax, "pretax", 0, "Annual pre-tax deductions")
	cmd.Flags().Float64Var(&pf.otHours, "ot-hours", 0, "Overtime hours per pay period")
	cmd.Flags().Float64Var(&pf.otRate, "ot-rate", 1.5, "Overtime pay multiplier")
	cmd.Flags().Float64Var(&pf.bonus, "bonus", 0, "Annual bonus")
	cmd.Flags().IntVar(&pf.allowances, "allowances", 0, "Withholding allowances")
}

func (pf *payrollFlags) input() (domain.PayrollInput, error) {
	in := domain.PayrollInput{
		PayFrequency: domain.PayFrequency(pf.frequency),
		FilingStatus: domain.FilingStatus(pf.filing),
		State:        strings.ToUpper(pf.state),
		Allowances:   pf.allowances,
	}
	amounts := []struct {
		name  string
		value float64
		dst   *decimal.Decimal
	}{
		{"annual salary", pf.salary, &in.AnnualSalary},
		{"pre-tax deductions", pf.pretax, &in.PreTaxDeductions},
		{"overtime hours", pf.otHours, &in.OvertimeHours},
		{"overtime rate", pf.otRate, &in.OvertimeRate},
		{"bonus", pf.bonus, &in.Bonus},
	}
	for _, amt := range amounts {
		d, err := domain.DecimalFromFloat(amt.name, amt.value)
		if err != nil {
			return in, err
		}
		*amt.dst = d
	}
	return in, nil
}

func paycheckCmd(a *app) *cobra.Command {
	var pf payrollFlags
	cmd := &cobra.Command{
		Use:   "paycheck",
		Short: "Estimate take-home pay per paycheck",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := pf.input()
			if err != nil {
				return err
			}
			return a.runOne(cmd, domain.EstimateRequest{Name: "paycheck", Payroll: &in})
		},
	}
	pf.bind(cmd)
	return cmd
}

func wageCheckCmd(a *app) *cobra.Command {
	var wageType, owed, state, frequency string
	cmd := &cobra.Command{
		Use:   "wage-check",
		Short: "Assess an unpaid wage situation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOne(cmd, domain.EstimateRequest{Name: "wage-check", WageAdvisory: &domain.WageAdvisoryInput{
				WageType:      domain.WageType(wageType),
				TimeSinceOwed: domain.TimeSinceOwed(owed),
				State:         strings.ToUpper(state),
				PayFrequency:  domain.PayFrequency(frequency),
			}})
		},
	}
	cmd.Flags().StringVar(&wageType, "wage-type", "overtime", "Wage type (overtime, minimum-wage, commissions, final-pay)")
	cmd.Flags().StringVar(&owed, "owed", "less-30", "Time since owed (less-30, 30-90, 90-180, 180-365, over-365)")
	cmd.Flags().StringVar(&state, "state", "CA", "Two-letter state code")
	cmd.Flags().StringVar(&frequency, "frequency", "", "Pay frequency (optional)")
	return cmd
}
