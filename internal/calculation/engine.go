package calculation

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/estimators/internal/domain"
)

// CalculationEngine orchestrates every estimator against one rate book
type CalculationEngine struct {
	Rater    *InsuranceRater
	Payroll  *PayrollEngine
	Advisory *AdvisoryEngine
	RateBook *domain.RateBook
	Logger   Logger
	Debug    bool // Enable debug output for detailed calculations
}

// NewCalculationEngine creates a calculation engine using the built-in tables
func NewCalculationEngine() *CalculationEngine {
	ce, err := NewCalculationEngineWithRateBook(DefaultRateBook())
	if err != nil {
		// The built-in tables are covered by tests
		panic(fmt.Sprintf("built-in rate book is invalid: %v", err))
	}
	return ce
}

// NewCalculationEngineWithRateBook creates a calculation engine from a
// validated rate book
func NewCalculationEngineWithRateBook(book *domain.RateBook) (*CalculationEngine, error) {
	if book == nil {
		return nil, fmt.Errorf("%w: rate book is required", domain.ErrInvalidInput)
	}
	rater, err := NewInsuranceRater(book)
	if err != nil {
		return nil, err
	}
	payroll, err := NewPayrollEngine(book.Payroll)
	if err != nil {
		return nil, fmt.Errorf("payroll rules: %w", err)
	}
	advisory, err := NewAdvisoryEngine(book.Advisory)
	if err != nil {
		return nil, fmt.Errorf("wage advisory table: %w", err)
	}
	return &CalculationEngine{
		Rater:    rater,
		Payroll:  payroll,
		Advisory: advisory,
		RateBook: book,
		Logger:   NopLogger{},
	}, nil
}

// SetLogger sets the logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// DataYear returns the year of the loaded tables
func (ce *CalculationEngine) DataYear() int {
	return ce.RateBook.Metadata.DataYear
}

// EstimateAuto prices car insurance
func (ce *CalculationEngine) EstimateAuto(in domain.AutoInput) (domain.RatingResult, error) {
	res, err := ce.Rater.RateAuto(in)
	if err != nil {
		return res, fmt.Errorf("auto estimate: %w", err)
	}
	ce.warnUnratedRegion(ce.Rater.Auto, in.State)
	if ce.Debug {
		ce.Logger.Debugf("auto: age=%s state=%s vehicle=%s tier=%s region×%s age×%s annual=%s",
			in.DriverAge, in.State, in.VehicleType, in.CoverageLevel,
			ce.Rater.Auto.RegionMultiplier(in.State), ce.Rater.Auto.AgeMultiplier(in.DriverAge), res.AnnualPremium)
	}
	return res, nil
}

// EstimateHome prices homeowners insurance
func (ce *CalculationEngine) EstimateHome(in domain.HomeInput) (domain.RatingResult, error) {
	res, err := ce.Rater.RateHome(in)
	if err != nil {
		return res, fmt.Errorf("home estimate: %w", err)
	}
	ce.warnUnratedRegion(ce.Rater.Home, in.State)
	if ce.Debug {
		ce.Logger.Debugf("home: value=%s state=%s type=%s tier=%s region×%s annual=%s",
			in.HomeValue, in.State, in.HomeType, in.CoverageLevel,
			ce.Rater.Home.RegionMultiplier(in.State), res.AnnualPremium)
	}
	return res, nil
}

// EstimateRenters prices renters insurance
func (ce *CalculationEngine) EstimateRenters(in domain.RentersInput) (domain.RatingResult, error) {
	res, err := ce.Rater.RateRenters(in)
	if err != nil {
		return res, fmt.Errorf("renters estimate: %w", err)
	}
	ce.warnUnratedRegion(ce.Rater.Renters, in.State)
	if ce.Debug {
		ce.Logger.Debugf("renters: property=%s state=%s unit=%s tier=%s region×%s annual=%s",
			in.PersonalPropertyValue, in.State, in.UnitType, in.CoverageLevel,
			ce.Rater.Renters.RegionMultiplier(in.State), res.AnnualPremium)
	}
	return res, nil
}

// EstimatePayroll computes take-home pay
func (ce *CalculationEngine) EstimatePayroll(in domain.PayrollInput) (domain.PayrollResult, error) {
	res, err := ce.Payroll.ComputeTakeHome(in)
	if err != nil {
		return res, fmt.Errorf("payroll estimate: %w", err)
	}
	if ce.Debug {
		b := res.Breakdown
		ce.Logger.Debugf("payroll: gross=%s taxable=%s federal=%s fica=%s state=%s (%s) net=%s",
			b.AnnualGross.StringFixed(2), b.TaxableIncome.StringFixed(2), b.FederalTax.StringFixed(2),
			b.TotalFICA().StringFixed(2), b.StateTax.StringFixed(2), ce.Payroll.StatePolicy().Mode(),
			res.AnnualNetPay.StringFixed(2))
	}
	return res, nil
}

// AssessWages produces wage-claim guidance
func (ce *CalculationEngine) AssessWages(in domain.WageAdvisoryInput) (domain.WageAdvisoryResult, error) {
	res, err := ce.Advisory.Assess(in)
	if err != nil {
		return res, fmt.Errorf("wage advisory: %w", err)
	}
	if ce.Debug {
		ce.Logger.Debugf("wage advisory: type=%s owed=%s state=%s urgency=%s",
			in.WageType, in.TimeSinceOwed, in.State, res.UrgencyLevel)
	}
	return res, nil
}

// Estimate evaluates a single named request
func (ce *CalculationEngine) Estimate(req domain.EstimateRequest) (domain.EstimateResult, error) {
	kind, err := req.Kind()
	if err != nil {
		return domain.EstimateResult{}, err
	}
	out := domain.EstimateResult{Name: req.Name, Kind: kind}

	switch kind {
	case domain.KindAuto:
		res, err := ce.EstimateAuto(*req.Auto)
		if err != nil {
			return out, err
		}
		out.Premium = &res
	case domain.KindHome:
		res, err := ce.EstimateHome(*req.Home)
		if err != nil {
			return out, err
		}
		out.Premium = &res
	case domain.KindRenters:
		res, err := ce.EstimateRenters(*req.Renters)
		if err != nil {
			return out, err
		}
		out.Premium = &res
	case domain.KindPayroll:
		res, err := ce.EstimatePayroll(*req.Payroll)
		if err != nil {
			return out, err
		}
		out.Payroll = &res
	case domain.KindWageAdvisory:
		res, err := ce.AssessWages(*req.WageAdvisory)
		if err != nil {
			return out, err
		}
		out.Advisory = &res
	}
	return out, nil
}

// RunBatch evaluates every request in order. It stops at the first failing
// request or when ctx is cancelled.
func (ce *CalculationEngine) RunBatch(ctx context.Context, batch *domain.Batch) (*domain.BatchReport, error) {
	if batch == nil {
		return nil, fmt.Errorf("%w: batch is required", domain.ErrInvalidInput)
	}
	report := &domain.BatchReport{
		DataYear: ce.DataYear(),
		Results:  make([]domain.EstimateResult, 0, len(batch.Estimates)),
	}
	for i, req := range batch.Estimates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := ce.Estimate(req)
		if err != nil {
			return nil, fmt.Errorf("estimate %d (%s): %w", i+1, req.Name, err)
		}
		report.Results = append(report.Results, res)
	}
	ce.Logger.Infof("evaluated %d estimates", len(report.Results))
	return report, nil
}

func (ce *CalculationEngine) warnUnratedRegion(re *RatingEngine, state string) {
	switch {
	case !domain.IsJurisdiction(state):
		ce.Logger.Warnf("%s: unknown state %q, rating at 1.00", re.Product(), state)
	case !re.HasRegion(state):
		ce.Logger.Debugf("%s: no region multiplier for %s, rating at 1.00", re.Product(), state)
	}
}
