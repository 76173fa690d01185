package server

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rgehrsitz/estimators/internal/calculation"
	"github.com/rgehrsitz/estimators/internal/compare"
	"github.com/rgehrsitz/estimators/internal/breakeven"
	"github.com/rgehrsitz/estimators/internal/domain"
)

func newTestServer(t *testing.T) (*Server, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	return New(calculation.NewCalculationEngine(), zap.New(core)), logs
}

func do(s *Server, method, path, body string) *fasthttp.RequestCtx {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	s.Handler(&ctx)
	return &ctx
}

func decodeBody[T any](t *testing.T, ctx *fasthttp.RequestCtx) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &v), string(ctx.Response.Body()))
	return v
}

func TestHandler_Auto(t *testing.T) {
	s, logs := newTestServer(t)

	ctx := do(s, "POST", "/v1/auto", `{"driver_age":35,"state":"CA","vehicle_type":"sedan","coverage_level":"standard"}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))

	assert.Contains(t, string(ctx.Response.Body()), `"annual_premium":1800`, "amounts are JSON numbers")

	res := decodeBody[domain.RatingResult](t, ctx)
	assert.Equal(t, domain.ProductAuto, res.Product)
	assert.True(t, res.AnnualPremium.Equal(decimal.NewFromInt(1800)), res.AnnualPremium.String())
	assert.True(t, res.MonthlyPremium.Equal(decimal.NewFromInt(150)))

	requestID := string(ctx.Response.Header.Peek(RequestIDHeader))
	assert.Len(t, requestID, 36)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, requestID, fields["request_id"])
	assert.Equal(t, "/v1/auto", fields["path"])
	assert.EqualValues(t, 200, fields["status"])
}

func TestHandler_EchoesRequestID(t *testing.T) {
	s, _ := newTestServer(t)

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod("GET")
	ctx.Request.SetRequestURI("/healthz")
	ctx.Request.Header.Set(RequestIDHeader, "abc-123")
	s.Handler(&ctx)

	assert.Equal(t, "abc-123", string(ctx.Response.Header.Peek(RequestIDHeader)))
	health := decodeBody[healthResponse](t, &ctx)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, calculation.DefaultDataYear, health.DataYear)
}

func TestHandler_Products(t *testing.T) {
	s, _ := newTestServer(t)

	t.Run("home", func(t *testing.T) {
		ctx := do(s, "POST", "/v1/home", `{"home_value":300000,"state":"FL","home_type":"single-family","coverage_level":"standard"}`)
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
		res := decodeBody[domain.RatingResult](t, ctx)
		assert.True(t, res.AnnualPremium.Equal(decimal.NewFromInt(2700)))
		assert.True(t, res.MonthlyPremium.Equal(decimal.NewFromInt(225)))
	})

	t.Run("renters", func(t *testing.T) {
		ctx := do(s, "POST", "/v1/renters", `{"personal_property_value":30000,"state":"IL","unit_type":"apartment","coverage_level":"standard"}`)
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
		res := decodeBody[domain.RatingResult](t, ctx)
		assert.True(t, res.AnnualPremium.Equal(decimal.NewFromInt(221)))
	})

	t.Run("payroll", func(t *testing.T) {
		ctx := do(s, "POST", "/v1/payroll", `{"annual_salary":75000,"pay_frequency":"monthly","filing_status":"single","state":"TX"}`)
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
		res := decodeBody[domain.PayrollResult](t, ctx)
		assert.True(t, res.AnnualNetPay.Equal(decimal.RequireFromString("57863.5")), res.AnnualNetPay.String())
	})

	t.Run("wage advisory", func(t *testing.T) {
		ctx := do(s, "POST", "/v1/wage-advisory", `{"wage_type":"overtime","time_since_owed":"90-180","state":"CA"}`)
		require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
		res := decodeBody[domain.WageAdvisoryResult](t, ctx)
		assert.Equal(t, domain.UrgencyElevated, res.UrgencyLevel)
		assert.NotEmpty(t, res.StateNote)
	})

	t.Run("jurisdictions", func(t *testing.T) {
		ctx := do(s, "GET", "/v1/jurisdictions", "")
		res := decodeBody[jurisdictionsResponse](t, ctx)
		assert.Len(t, res.Jurisdictions, 51)
	})
}

func TestHandler_BatchAndCompare(t *testing.T) {
	s, _ := newTestServer(t)

	ctx := do(s, "POST", "/v1/batch", `{"estimates":[
		{"name":"car","auto":{"driver_age":35,"state":"CA","vehicle_type":"sedan","coverage_level":"standard"}},
		{"name":"pay","payroll":{"annual_salary":75000,"pay_frequency":"monthly","filing_status":"single","state":"TX"}}
	]}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))
	report := decodeBody[domain.BatchReport](t, ctx)
	require.Len(t, report.Results, 2)
	assert.Equal(t, domain.KindAuto, report.Results[0].Kind)
	assert.Equal(t, domain.KindPayroll, report.Results[1].Kind)

	ctx = do(s, "POST", "/v1/payroll/compare", `{
		"base":{"annual_salary":75000,"pay_frequency":"monthly","filing_status":"single","state":"TX"},
		"scenarios":[{"name":"bonus","template":"bonus_5k"}]
	}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))
	set := decodeBody[compare.ComparisonSet](t, ctx)
	require.Len(t, set.AlternativeResults, 1)
	assert.True(t, set.AlternativeResults[0].AnnualNetDiff.Equal(decimal.RequireFromString("3292.5")))
}

func TestHandler_GrossUp(t *testing.T) {
	s, logs := newTestServer(t)
	base := `"base":{"annual_salary":75000,"pay_frequency":"monthly","filing_status":"single","state":"TX","overtime_rate":1.5}`

	ctx := do(s, "POST", "/v1/payroll/gross-up", `{`+base+`,"variable":"bonus","measure":"annual_net","target":61156}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))
	res := decodeBody[breakeven.Result](t, ctx)
	assert.True(t, res.Success)
	assert.InDelta(t, 5000, res.Value.InexactFloat64(), 1)

	ctx = do(s, "POST", "/v1/payroll/gross-up", `{`+base+`,"variable":"all","measure":"annual_net","target":61156}`)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))
	multi := decodeBody[breakeven.MultiResult](t, ctx)
	assert.Len(t, multi.Results, 3)
	assert.Len(t, multi.Recommendations, 3)

	ctx = do(s, "POST", "/v1/payroll/gross-up", `{`+base+`,"variable":"salary","measure":"annual_net","target":61156,"constraints":{"max":1000}}`)
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())
	assert.Contains(t, decodeBody[ErrorResponse](t, ctx).Message, "not reachable")

	ctx = do(s, "POST", "/v1/payroll/gross-up", `{`+base+`,"variable":"all","measure":"gross","target":100}`)
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())

	// No variable can reach 9e11 net once overtime pays nothing
	noOvertime := `"base":{"annual_salary":0,"pay_frequency":"monthly","filing_status":"single","state":"TX","overtime_rate":0}`
	ctx = do(s, "POST", "/v1/payroll/gross-up", `{`+noOvertime+`,"variable":"all","measure":"annual_net","target":900000000000}`)
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode(), string(ctx.Response.Body()))
	assert.Contains(t, decodeBody[ErrorResponse](t, ctx).Message, "no variable reaches the target")

	ctx = do(s, "POST", "/v1/payroll/gross-up", `{`+noOvertime+`,"variable":"all","measure":"annual_net","target":"1e30"}`)
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode(), string(ctx.Response.Body()))

	assert.Empty(t, logs.FilterMessage("estimate failed").All())
}

func TestHandler_Errors(t *testing.T) {
	s, logs := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"malformed json", "POST", "/v1/auto", `{"driver_age":`, fasthttp.StatusBadRequest},
		{"empty body", "POST", "/v1/payroll", "", fasthttp.StatusBadRequest},
		{"unknown vehicle", "POST", "/v1/auto", `{"driver_age":35,"state":"CA","vehicle_type":"boat","coverage_level":"standard"}`, fasthttp.StatusUnprocessableEntity},
		{"negative salary", "POST", "/v1/payroll", `{"annual_salary":-1,"pay_frequency":"monthly","filing_status":"single"}`, fasthttp.StatusUnprocessableEntity},
		{"huge driver age", "POST", "/v1/auto", `{"driver_age":"1e100000000","state":"CA","vehicle_type":"sedan","coverage_level":"standard"}`, fasthttp.StatusUnprocessableEntity},
		{"huge salary", "POST", "/v1/payroll", `{"annual_salary":1e400,"pay_frequency":"monthly","filing_status":"single"}`, fasthttp.StatusUnprocessableEntity},
		{"huge batch value", "POST", "/v1/batch", `{"estimates":[{"name":"x","home":{"home_value":"1e100000000","state":"CA","home_type":"condo","coverage_level":"basic"}}]}`, fasthttp.StatusUnprocessableEntity},
		{"empty batch", "POST", "/v1/batch", `{"estimates":[]}`, fasthttp.StatusUnprocessableEntity},
		{"batch entry without input", "POST", "/v1/batch", `{"estimates":[{"name":"x"}]}`, fasthttp.StatusUnprocessableEntity},
		{"compare without scenarios", "POST", "/v1/payroll/compare", `{"base":{"annual_salary":1,"pay_frequency":"monthly","filing_status":"single"}}`, fasthttp.StatusUnprocessableEntity},
		{"wrong method", "GET", "/v1/auto", "", fasthttp.StatusMethodNotAllowed},
		{"unknown path", "GET", "/v2/auto", "", fasthttp.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := do(s, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, ctx.Response.StatusCode(), string(ctx.Response.Body()))

			resp := decodeBody[ErrorResponse](t, ctx)
			assert.Equal(t, tt.status, resp.Status)
			assert.NotEmpty(t, resp.Message)
			assert.Equal(t, string(ctx.Response.Header.Peek(RequestIDHeader)), resp.RequestID)
		})
	}

	assert.Equal(t, "POST", string(do(s, "GET", "/v1/home", "").Response.Header.Peek("Allow")))
	assert.Empty(t, logs.FilterMessage("estimate failed").All())
}
