package server

import (
	"fmt"

	"github.com/valyala/fasthttp"

	"github.com/rgehrsitz/estimators/internal/breakeven"
	"github.com/rgehrsitz/estimators/internal/domain"
)

type healthResponse struct {
	Status   string `json:"status"`
	DataYear int    `json:"data_year"`
}

type jurisdictionsResponse struct {
	Jurisdictions []string `json:"jurisdictions"`
}

func (s *Server) handleHealth(*fasthttp.RequestCtx) (any, error) {
	return healthResponse{Status: "ok", DataYear: s.engine.DataYear()}, nil
}

func (s *Server) handleJurisdictions(*fasthttp.RequestCtx) (any, error) {
	return jurisdictionsResponse{Jurisdictions: domain.Jurisdictions}, nil
}

func (s *Server) handleAuto(ctx *fasthttp.RequestCtx) (any, error) {
	var in domain.AutoInput
	if err := decode(ctx, &in); err != nil {
		return nil, err
	}
	return s.engine.EstimateAuto(in)
}

func (s *Server) handleHome(ctx *fasthttp.RequestCtx) (any, error) {
	var in domain.HomeInput
	if err := decode(ctx, &in); err != nil {
		return nil, err
	}
	return s.engine.EstimateHome(in)
}

func (s *Server) handleRenters(ctx *fasthttp.RequestCtx) (any, error) {
	var in domain.RentersInput
	if err := decode(ctx, &in); err != nil {
		return nil, err
	}
	return s.engine.EstimateRenters(in)
}

func (s *Server) handlePayroll(ctx *fasthttp.RequestCtx) (any, error) {
	var in domain.PayrollInput
	if err := decode(ctx, &in); err != nil {
		return nil, err
	}
	return s.engine.EstimatePayroll(in)
}

func (s *Server) handleWageAdvisory(ctx *fasthttp.RequestCtx) (any, error) {
	var in domain.WageAdvisoryInput
	if err := decode(ctx, &in); err != nil {
		return nil, err
	}
	return s.engine.AssessWages(in)
}

func (s *Server) handleCompare(ctx *fasthttp.RequestCtx) (any, error) {
	var cmp domain.PayrollComparison
	if err := decode(ctx, &cmp); err != nil {
		return nil, err
	}
	if len(cmp.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios provided", domain.ErrInvalidInput)
	}
	return s.compare.Compare(s.baseCtx, &cmp)
}

func (s *Server) handleBatch(ctx *fasthttp.RequestCtx) (any, error) {
	var batch domain.Batch
	if err := decode(ctx, &batch); err != nil {
		return nil, err
	}
	if len(batch.Estimates) == 0 {
		return nil, fmt.Errorf("%w: no estimates provided", domain.ErrInvalidInput)
	}
	return s.engine.RunBatch(s.baseCtx, &batch)
}

// solveAll in the variable field raises each input in turn
const solveAll = "all"

func (s *Server) handleGrossUp(ctx *fasthttp.RequestCtx) (any, error) {
	var req breakeven.Request
	if err := decode(ctx, &req); err != nil {
		return nil, err
	}
	if req.Variable == solveAll {
		return s.solver.SolveAll(s.baseCtx, req.Base, req.Measure, req.Target)
	}
	return s.solver.Solve(s.baseCtx, req)
}
