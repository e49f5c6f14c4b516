// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/fake-survey-generator/middleware"
	"github.com/danielhkuo/fake-survey-generator/models"
	"github.com/danielhkuo/fake-survey-generator/store"
)

type ResultsHandler struct {
	store store.Store
	now   func() time.Time
}

func NewResultsHandler(st store.Store) *ResultsHandler {
	return &ResultsHandler{store: st, now: time.Now}
}

// GetPreview handles GET /surveys/{id}/preview
// Returns a compact, human-readable card for link previews
func (h *ResultsHandler) GetPreview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "survey id is required")
		return
	}

	s, err := h.store.Get(r.Context(), id)
	if err != nil {
		writeError(w, err, "failed to load survey")
		return
	}

	result := s.Result()
	resp := models.SurveyPreviewResponse{
		Topic:       result.Topic,
		Respondents: humanize.Comma(int64(result.NumberOfRespondents)) + " " + result.RespondentType,
		OptionCount: len(result.Options),
		Age:         humanize.RelTime(result.CreatedOn, h.now(), "ago", "from now"),
	}

	// No leader until votes have been calculated
	if leader, ok := result.Leader(); ok && leader.Votes > 0 {
		resp.Leader = leader.Text
		resp.LeaderVotes = humanize.Comma(int64(leader.Votes)) + " votes"
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetEvents handles GET /surveys/{id}/events
func (h *ResultsHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "survey id is required")
		return
	}

	// 404 for unknown surveys rather than an empty list
	if _, err := h.store.Get(r.Context(), id); err != nil {
		writeError(w, err, "failed to load survey")
		return
	}

	records, err := h.store.ListEvents(r.Context(), id)
	if err != nil {
		writeError(w, err, "failed to list events")
		return
	}

	resp := models.SurveyEventsResponse{
		SurveyID: id,
		Events:   make([]models.SurveyEvent, 0, len(records)),
	}
	for _, rec := range records {
		resp.Events = append(resp.Events, models.SurveyEvent{
			ID:          rec.ID,
			Type:        rec.Type,
			Payload:     rec.Payload,
			OccurredAt:  rec.OccurredAt,
			PublishedAt: rec.PublishedAt,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
