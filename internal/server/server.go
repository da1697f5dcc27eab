// Package server exposes the job pipeline as a small JSON API.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jimezsa/jobfeed/internal/catalog"
	"github.com/jimezsa/jobfeed/internal/export"
	"github.com/jimezsa/jobfeed/internal/fetch"
	"github.com/jimezsa/jobfeed/internal/models"
	"github.com/rs/zerolog"
)

type Server struct {
	Loader          *fetch.Loader
	Logger          zerolog.Logger
	DefaultCategory string
}

type jobsResponse struct {
	catalog.View
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

type jobResponse struct {
	models.Job
	Share []export.ShareLink `json:"share"`
}

type categoriesResponse struct {
	Categories []catalog.CategoryCount `json:"categories"`
}

func (s Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/jobs", s.handleListJobs)
		r.Get("/jobs/{id}", s.handleGetJob)
		r.Get("/categories", s.handleCategories)
		r.Get("/status", s.handleStatus)
		r.Post("/reload", s.handleReload)
	})

	return r
}

func (s Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.Logger.Debug().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("http request")
	})
}

func (s Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := models.ListParams{
		Query:    query.Get("q"),
		Category: firstNonEmpty(query.Get("category"), s.DefaultCategory, catalog.CategoryAll),
		Page:     1,
	}
	if raw := strings.TrimSpace(query.Get("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			writeErr(w, http.StatusBadRequest, errors.New("page must be an integer"))
			return
		}
		params.Page = page
	}

	snap := s.Loader.Snapshot()
	view, err := catalog.Query(snap.Jobs, params)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, jobsResponse{
		View:    view,
		Loading: snap.Loading(),
		Error:   snap.Error,
	})
}

func (s Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, job := range s.Loader.Snapshot().Jobs {
		if job.ID == id {
			writeJSON(w, http.StatusOK, jobResponse{Job: job, Share: export.ShareLinks(job)})
			return
		}
	}
	writeErr(w, http.StatusNotFound, errors.New("job not found"))
}

func (s Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, categoriesResponse{Categories: catalog.Stats(s.Loader.Snapshot().Jobs)})
}

func (s Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Loader.Snapshot())
}

func (s Server) handleReload(w http.ResponseWriter, r *http.Request) {
	err := s.Loader.Load(context.WithoutCancel(r.Context()))
	switch {
	case errors.Is(err, fetch.ErrInFlight):
		writeErr(w, http.StatusConflict, err)
	case errors.Is(err, fetch.ErrClosed):
		writeErr(w, http.StatusServiceUnavailable, err)
	case err != nil:
		writeErr(w, http.StatusBadGateway, errors.New(fetch.FailureMessage))
	default:
		writeJSON(w, http.StatusOK, s.Loader.Snapshot())
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
