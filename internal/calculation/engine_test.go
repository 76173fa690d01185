package calculation

import (
	"context"
	"fmt"
	"testing"

	"github.com/rgehrsitz/estimators/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures log lines for assertions
type recordingLogger struct {
	debug, info, warn, errs []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.debug = append(l.debug, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Infof(format string, args ...any) {
	l.info = append(l.info, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warn = append(l.warn, fmt.Sprintf(format, args...))
}
func (l *recordingLogger) Errorf(format string, args ...any) {
	l.errs = append(l.errs, fmt.Sprintf(format, args...))
}

func TestNewCalculationEngine(t *testing.T) {
	engine := NewCalculationEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Rater, "Should initialize insurance rater")
	assert.NotNil(t, engine.Payroll, "Should initialize payroll engine")
	assert.NotNil(t, engine.Advisory, "Should initialize advisory engine")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.Equal(t, DefaultDataYear, engine.DataYear())
}

func TestDefaultRateBook_Validates(t *testing.T) {
	book := DefaultRateBook()
	require.NoError(t, book.Validate())

	// Fresh maps on every call
	book.Auto.RegionMultipliers["CA"] = decimal.NewFromInt(9)
	assert.True(t, DefaultRateBook().Auto.RegionMultipliers["CA"].Equal(decimal.NewFromFloat(1.25)))
}

func TestNewCalculationEngineWithRateBook_Errors(t *testing.T) {
	_, err := NewCalculationEngineWithRateBook(nil)
	assert.Error(t, err)

	book := DefaultRateBook()
	book.Payroll.StandardWorkHours = decimal.Zero
	_, err = NewCalculationEngineWithRateBook(book)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "payroll rules")
}

func TestCalculationEngine_SetLogger(t *testing.T) {
	engine := NewCalculationEngine()

	customLogger := &recordingLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestCalculationEngine_WarnsOnUnknownState(t *testing.T) {
	engine := NewCalculationEngine()
	logger := &recordingLogger{}
	engine.SetLogger(logger)

	_, err := engine.EstimateAuto(domain.AutoInput{DriverAge: decimal.NewFromInt(40), State: "XX", VehicleType: domain.VehicleSedan, CoverageLevel: domain.TierFull})
	require.NoError(t, err)
	require.Len(t, logger.warn, 1)
	assert.Contains(t, logger.warn[0], `unknown state "XX"`)

	// A real state with no multiplier is not worth a warning
	_, err = engine.EstimateAuto(domain.AutoInput{DriverAge: decimal.NewFromInt(40), State: "AK", VehicleType: domain.VehicleSedan, CoverageLevel: domain.TierFull})
	require.NoError(t, err)
	assert.Len(t, logger.warn, 1)
}

func TestCalculationEngine_DebugLogging(t *testing.T) {
	engine := NewCalculationEngine()
	logger := &recordingLogger{}
	engine.SetLogger(logger)
	engine.Debug = true

	_, err := engine.EstimatePayroll(baselinePayroll())
	require.NoError(t, err)
	require.NotEmpty(t, logger.debug)
	assert.Contains(t, logger.debug[0], "gross=75000.00")
	assert.Contains(t, logger.debug[0], "(flat)")
}

func TestCalculationEngine_EstimateWrapsErrors(t *testing.T) {
	engine := NewCalculationEngine()

	_, err := engine.EstimateHome(domain.HomeInput{HomeValue: decimal.NewFromInt(1), HomeType: "igloo", CoverageLevel: domain.TierBasic})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	assert.Contains(t, err.Error(), "home estimate")
}

func sampleBatch() *domain.Batch {
	return &domain.Batch{Estimates: []domain.EstimateRequest{
		{Name: "car", Auto: &domain.AutoInput{DriverAge: decimal.NewFromInt(35), State: "CA", VehicleType: domain.VehicleSedan, CoverageLevel: domain.TierStandard}},
		{Name: "house", Home: &domain.HomeInput{HomeValue: decimal.NewFromInt(300000), State: "FL", HomeType: domain.HomeSingleFamily, CoverageLevel: domain.TierStandard}},
		{Name: "apartment", Renters: &domain.RentersInput{PersonalPropertyValue: decimal.NewFromInt(30000), State: "IL", UnitType: domain.UnitApartment, CoverageLevel: domain.TierStandard}},
		{Name: "paycheck", Payroll: func() *domain.PayrollInput { in := baselinePayroll(); return &in }()},
		{Name: "wages", WageAdvisory: &domain.WageAdvisoryInput{WageType: domain.WageOvertime, TimeSinceOwed: domain.OwedMoreThanAYear, State: "CA"}},
	}}
}

func TestCalculationEngine_RunBatch(t *testing.T) {
	engine := NewCalculationEngine()
	logger := &recordingLogger{}
	engine.SetLogger(logger)

	report, err := engine.RunBatch(context.Background(), sampleBatch())
	require.NoError(t, err)
	require.Len(t, report.Results, 5)
	assert.Equal(t, DefaultDataYear, report.DataYear)

	assert.Equal(t, domain.KindAuto, report.Results[0].Kind)
	require.NotNil(t, report.Results[0].Premium)
	assert.True(t, report.Results[0].Premium.AnnualPremium.Equal(decimal.NewFromInt(1800)))

	assert.Equal(t, domain.KindHome, report.Results[1].Kind)
	assert.True(t, report.Results[1].Premium.AnnualPremium.Equal(decimal.NewFromInt(2700)))

	assert.Equal(t, domain.KindRenters, report.Results[2].Kind)
	assert.True(t, report.Results[2].Premium.AnnualPremium.Equal(decimal.NewFromInt(221)))

	assert.Equal(t, domain.KindPayroll, report.Results[3].Kind)
	require.NotNil(t, report.Results[3].Payroll)
	assert.Nil(t, report.Results[3].Premium)

	assert.Equal(t, domain.KindWageAdvisory, report.Results[4].Kind)
	require.NotNil(t, report.Results[4].Advisory)
	assert.Equal(t, domain.UrgencyHigh, report.Results[4].Advisory.UrgencyLevel)

	assert.Contains(t, logger.info, "evaluated 5 estimates")
}

func TestCalculationEngine_RunBatchStopsOnError(t *testing.T) {
	engine := NewCalculationEngine()
	batch := sampleBatch()
	batch.Estimates[2].Renters.UnitType = "tent"

	report, err := engine.RunBatch(context.Background(), batch)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	assert.Contains(t, err.Error(), "estimate 3 (apartment)")
}

func TestCalculationEngine_RunBatchRejectsAmbiguousRequest(t *testing.T) {
	engine := NewCalculationEngine()
	batch := sampleBatch()
	batch.Estimates[0].Home = batch.Estimates[1].Home

	_, err := engine.RunBatch(context.Background(), batch)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalculationEngine_RunBatchRejectsNilBatch(t *testing.T) {
	report, err := NewCalculationEngine().RunBatch(context.Background(), nil)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCalculationEngine_RunBatchHonoursCancellation(t *testing.T) {
	engine := NewCalculationEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := engine.RunBatch(ctx, sampleBatch())
	assert.Nil(t, report)
	assert.ErrorIs(t, err, context.Canceled)
}
