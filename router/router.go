// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/danielhkuo/fake-survey-generator/cliparse"
	"github.com/danielhkuo/fake-survey-generator/handlers"
	"github.com/danielhkuo/fake-survey-generator/middleware"
	"github.com/danielhkuo/fake-survey-generator/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	// Initialize handlers
	st := store.NewSQLStore(db)
	surveyHandler := handlers.NewSurveyHandler(st)
	resultsHandler := handlers.NewResultsHandler(st)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			slog.Error("health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("database unavailable"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/surveys", func(r chi.Router) {
		r.Post("/", middleware.WithLogging(surveyHandler.CreateSurvey))
		r.Get("/", middleware.WithLogging(surveyHandler.ListSurveys))

		r.Get("/{id}", middleware.WithLogging(surveyHandler.GetSurvey))
		r.Post("/{id}/options", middleware.WithLogging(surveyHandler.AddOption))
		r.Post("/{id}/outcome", middleware.WithLogging(surveyHandler.CalculateOutcome))

		// Read-only views
		r.Get("/{id}/preview", middleware.WithLogging(resultsHandler.GetPreview))
		r.Get("/{id}/events", middleware.WithLogging(resultsHandler.GetEvents))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fake-survey-generator API v1"))
	})

	return r
}
