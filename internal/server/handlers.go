package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jerdaw/kingston-care-connect/internal/crisis"
	"github.com/jerdaw/kingston-care-connect/internal/metrics"
	"github.com/jerdaw/kingston-care-connect/internal/models"
	"github.com/jerdaw/kingston-care-connect/internal/storage"
)

// searchRequest is the POST /api/v1/search body.
type searchRequest struct {
	Query       string              `json:"query"`
	Category    string              `json:"category,omitempty"`
	Location    *models.Location    `json:"location,omitempty"`
	OpenNow     bool                `json:"open_now,omitempty"`
	UserContext *models.UserContext `json:"user_context,omitempty"`
	Limit       int                 `json:"limit,omitempty"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	opts := &models.SearchOptions{
		Location:    req.Location,
		OpenNow:     req.OpenNow,
		UserContext: req.UserContext,
	}
	if req.Category != "" {
		category, ok := models.ParseCategory(req.Category)
		if !ok {
			s.respondError(w, http.StatusBadRequest, "unknown category: "+req.Category)
			return
		}
		opts.Category = category
	}

	s.logger.Debug("search request",
		zap.String("query", req.Query),
		zap.String("category", req.Category),
		zap.Bool("open_now", req.OpenNow),
	)

	start := time.Now()
	results, err := s.engine.Search(r.Context(), req.Query, opts)
	if err != nil {
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// The safety override lives here, at the API boundary: the engine ranks
	// purely on relevance and crisis services are lifted afterwards.
	isCrisis := crisis.Detect(req.Query)
	if isCrisis {
		metrics.CrisisDetectionsTotal.Inc()
		results = crisis.Promote(results)
	}

	total := len(results)
	limit := req.Limit
	if limit <= 0 {
		limit = s.cfg.Search.DefaultLimit
	}
	if limit > s.cfg.Search.MaxLimit {
		limit = s.cfg.Search.MaxLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}

	s.respondJSON(w, http.StatusOK, &models.SearchResponse{
		Results:   results,
		Total:     total,
		QueryTime: time.Since(start).Milliseconds(),
		Query:     req.Query,
		Crisis:    isCrisis,
	})
}

func (s *Server) handleGetService(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	svc, err := s.store.GetService(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "service not found")
			return
		}
		s.logger.Error("get service failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, svc)
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"categories": models.AllCategories()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	count, err := s.store.CountServices(r.Context())
	if err != nil {
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"services": count,
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
