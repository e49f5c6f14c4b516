// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/fake-survey-generator/middleware"
	"github.com/danielhkuo/fake-survey-generator/models"
	"github.com/danielhkuo/fake-survey-generator/store"
	"github.com/danielhkuo/fake-survey-generator/survey"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type SurveyHandler struct {
	store store.Store
}

func NewSurveyHandler(st store.Store) *SurveyHandler {
	return &SurveyHandler{store: st}
}

// CreateSurvey handles POST /surveys
// Builds the survey, adds its options and calculates the outcome in one go
func (h *SurveyHandler) CreateSurvey(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSurveyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Reject unknown distributions before anything is built
	kind, err := survey.ParseDistribution(req.Distribution)
	if err != nil {
		writeError(w, err, "failed to parse distribution")
		return
	}

	s, err := survey.New(req.Topic, req.NumberOfRespondents, req.RespondentType)
	if err != nil {
		writeError(w, err, "failed to create survey")
		return
	}

	for _, opt := range req.Options {
		if err := s.AddOption(opt.OptionText, opt.PreferredRank); err != nil {
			writeError(w, err, "failed to add option")
			return
		}
	}

	strategy, err := s.StrategyFor(kind)
	if err != nil {
		writeError(w, err, "failed to pick strategy")
		return
	}
	result, err := s.CalculateOutcome(strategy)
	if err != nil {
		writeError(w, err, "failed to calculate outcome")
		return
	}

	if err := h.store.Save(r.Context(), s); err != nil {
		writeError(w, err, "failed to save survey")
		return
	}

	slog.Info("survey created",
		"survey_id", s.ID(),
		"options", len(result.Options),
		"respondents", result.NumberOfRespondents,
		"distribution", kind,
	)

	middleware.JSONResponse(w, http.StatusCreated, toSurveyResult(result))
}

// GetSurvey handles GET /surveys/{id}
func (h *SurveyHandler) GetSurvey(w http.ResponseWriter, r *http.Request) {
	s, ok := h.load(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toSurveyResult(s.Result()))
}

// ListSurveys handles GET /surveys?limit=N
func (h *SurveyHandler) ListSurveys(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxListLimit)
	}

	summaries, err := h.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, err, "failed to list surveys")
		return
	}

	resp := models.ListSurveysResponse{
		Surveys: make([]models.SurveySummary, 0, len(summaries)),
		Count:   len(summaries),
	}
	for _, sum := range summaries {
		resp.Surveys = append(resp.Surveys, models.SurveySummary{
			ID:                  sum.ID,
			Topic:               sum.Topic,
			NumberOfRespondents: sum.NumberOfRespondents,
			RespondentType:      sum.RespondentType,
			CreatedOn:           sum.CreatedOn,
			OptionCount:         sum.OptionCount,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// AddOption handles POST /surveys/{id}/options
// Existing vote counts are kept; recalculate to include the new option
func (h *SurveyHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	var req models.AddOptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	s, ok := h.load(w, r)
	if !ok {
		return
	}

	if err := s.AddOption(req.OptionText, req.PreferredRank); err != nil {
		writeError(w, err, "failed to add option")
		return
	}

	if err := h.store.Save(r.Context(), s); err != nil {
		writeError(w, err, "failed to save survey")
		return
	}

	slog.Info("option added", "survey_id", s.ID(), "option_count", len(s.Options()))

	middleware.JSONResponse(w, http.StatusCreated, toSurveyResult(s.Result()))
}

// CalculateOutcome handles POST /surveys/{id}/outcome
func (h *SurveyHandler) CalculateOutcome(w http.ResponseWriter, r *http.Request) {
	// An empty body means the default distribution
	var req models.CalculateOutcomeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	kind, err := survey.ParseDistribution(req.Distribution)
	if err != nil {
		writeError(w, err, "failed to parse distribution")
		return
	}

	s, ok := h.load(w, r)
	if !ok {
		return
	}

	strategy, err := s.StrategyFor(kind)
	if err != nil {
		writeError(w, err, "failed to pick strategy")
		return
	}
	result, err := s.CalculateOutcome(strategy)
	if err != nil {
		writeError(w, err, "failed to calculate outcome")
		return
	}

	if err := h.store.Save(r.Context(), s); err != nil {
		writeError(w, err, "failed to save survey")
		return
	}

	slog.Info("outcome calculated", "survey_id", s.ID(), "distribution", kind)

	middleware.JSONResponse(w, http.StatusOK, toSurveyResult(result))
}

// load fetches the survey named by the {id} path parameter, writing the
// error response itself when it fails
func (h *SurveyHandler) load(w http.ResponseWriter, r *http.Request) (*survey.Survey, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "survey id is required")
		return nil, false
	}

	s, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, err, "failed to load survey")
		return nil, false
	}
	return s, true
}

// writeError maps domain and store errors onto HTTP status codes
func writeError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, survey.ErrValidation):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Survey not found")
	case errors.Is(err, store.ErrConflict):
		middleware.ErrorResponse(w, http.StatusConflict, "Survey was modified by another request, retry")
	default:
		slog.Error(logMsg, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toSurveyResult(res survey.Result) models.SurveyResult {
	out := models.SurveyResult{
		ID:                  res.ID,
		Topic:               res.Topic,
		NumberOfRespondents: res.NumberOfRespondents,
		RespondentType:      res.RespondentType,
		CreatedOn:           res.CreatedOn,
		TotalVotes:          res.TotalVotes(),
		Options:             make([]models.SurveyOption, 0, len(res.Options)),
	}
	for _, opt := range res.Options {
		out.Options = append(out.Options, models.SurveyOption{
			OptionText:           opt.Text,
			PreferredOutcomeRank: opt.PreferredRank,
			NumberOfVotes:        opt.Votes,
		})
	}
	return out
}
