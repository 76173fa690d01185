// Package server exposes the estimators over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/rgehrsitz/estimators/internal/breakeven"
	"github.com/rgehrsitz/estimators/internal/calculation"
	"github.com/rgehrsitz/estimators/internal/compare"
	"github.com/rgehrsitz/estimators/internal/domain"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

type handlerFunc func(ctx *fasthttp.RequestCtx) (any, error)

type route struct {
	method string
	handle handlerFunc
}

// Server routes estimate requests to a CalculationEngine
type Server struct {
	engine  *calculation.CalculationEngine
	compare *compare.CompareEngine
	solver  *breakeven.Solver
	log     *zap.Logger
	routes  map[string]route

	// baseCtx bounds batch and compare runs; cancelled on shutdown
	baseCtx context.Context
}

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

// badRequest marks errors caused by an unreadable body
type badRequest struct{ err error }

func (b badRequest) Error() string { return "invalid request body: " + b.err.Error() }
func (b badRequest) Unwrap() error { return b.err }

// New creates a Server. A nil logger disables request logging.
func New(engine *calculation.CalculationEngine, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		engine:  engine,
		compare: compare.NewCompareEngine(engine),
		solver:  breakeven.NewDefaultSolver(engine),
		log:     log,
		baseCtx: context.Background(),
	}
	s.routes = map[string]route{
		"/healthz":             {fasthttp.MethodGet, s.handleHealth},
		"/v1/jurisdictions":    {fasthttp.MethodGet, s.handleJurisdictions},
		"/v1/auto":             {fasthttp.MethodPost, s.handleAuto},
		"/v1/home":             {fasthttp.MethodPost, s.handleHome},
		"/v1/renters":          {fasthttp.MethodPost, s.handleRenters},
		"/v1/payroll":          {fasthttp.MethodPost, s.handlePayroll},
		"/v1/payroll/compare":  {fasthttp.MethodPost, s.handleCompare},
		"/v1/payroll/gross-up": {fasthttp.MethodPost, s.handleGrossUp},
		"/v1/wage-advisory":    {fasthttp.MethodPost, s.handleWageAdvisory},
		"/v1/batch":            {fasthttp.MethodPost, s.handleBatch},
	}
	return s
}

// Handler is the fasthttp entry point
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	requestID := string(ctx.Request.Header.Peek(RequestIDHeader))
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx.Response.Header.Set(RequestIDHeader, requestID)

	path := string(ctx.Path())
	status := s.dispatch(ctx, path, requestID)

	s.log.Info("request",
		zap.String("request_id", requestID),
		zap.String("method", string(ctx.Method())),
		zap.String("path", path),
		zap.Int("status", status),
		zap.Duration("duration", time.Since(start)),
	)
}

func (s *Server) dispatch(ctx *fasthttp.RequestCtx, path, requestID string) int {
	r, ok := s.routes[path]
	if !ok {
		return s.writeError(ctx, fasthttp.StatusNotFound, "no route for "+path, requestID)
	}
	if string(ctx.Method()) != r.method {
		ctx.Response.Header.Set("Allow", r.method)
		return s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed", requestID)
	}

	body, err := r.handle(ctx)
	if err != nil {
		status := statusFor(err)
		if status == fasthttp.StatusInternalServerError {
			s.log.Error("estimate failed", zap.String("request_id", requestID), zap.Error(err))
		}
		return s.writeError(ctx, status, err.Error(), requestID)
	}
	return s.writeJSON(ctx, fasthttp.StatusOK, body)
}

func statusFor(err error) int {
	var br badRequest
	switch {
	case errors.As(err, &br):
		return fasthttp.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCategory), errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, breakeven.ErrUnreachable):
		return fasthttp.StatusUnprocessableEntity
	default:
		return fasthttp.StatusInternalServerError
	}
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, body any) int {
	data, err := json.Marshal(body)
	if err != nil {
		s.log.Error("encode response", zap.Error(err))
		ctx.Error(`{"status":500,"message":"encode response"}`, fasthttp.StatusInternalServerError)
		ctx.SetContentType("application/json")
		return fasthttp.StatusInternalServerError
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
	return status
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message, requestID string) int {
	return s.writeJSON(ctx, status, ErrorResponse{Status: status, Message: message, RequestID: requestID})
}

func decode(ctx *fasthttp.RequestCtx, v any) error {
	body := ctx.PostBody()
	if len(body) == 0 {
		return badRequest{errors.New("empty body")}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return badRequest{err}
	}
	return nil
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &fasthttp.Server{
		Handler:      s.Handler,
		Name:         "estimate",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.baseCtx = ctx

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr), zap.Int("data_year", s.engine.DataYear()))
		errCh <- srv.ListenAndServe(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
		s.log.Info("shutting down")
		return srv.Shutdown()
	}
}
