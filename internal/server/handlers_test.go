package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/jerdaw/kingston-care-connect/internal/config"
	"github.com/jerdaw/kingston-care-connect/internal/models"
	"github.com/jerdaw/kingston-care-connect/internal/ranking"
	"github.com/jerdaw/kingston-care-connect/internal/search"
	"github.com/jerdaw/kingston-care-connect/internal/storage"
)

// memStore serves a fixed service slice.
type memStore struct {
	services []*models.Service
}

func (s *memStore) LoadServices(ctx context.Context) ([]*models.Service, error) {
	return s.services, nil
}

func (s *memStore) GetService(ctx context.Context, id string) (*models.Service, error) {
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *memStore) PutService(ctx context.Context, svc *models.Service) error {
	s.services = append(s.services, svc)
	return nil
}

func (s *memStore) CountServices(ctx context.Context) (int64, error) {
	return int64(len(s.services)), nil
}

func (s *memStore) Close() error { return nil }

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	store := &memStore{services: storage.SeedServices()}
	cache := storage.NewServiceCache(store)
	scorer := ranking.NewScorer(&cfg.Ranking)
	engine := search.NewEngine(cache, nil, scorer, &cfg.Search, zap.NewNop())

	srv := NewServer(engine, store, cfg, zap.NewNop())
	return srv, srv.Router()
}

func postSearch(t *testing.T, handler http.Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeSearch(t *testing.T, rec *httptest.ResponseRecorder) *models.SearchResponse {
	t.Helper()
	var resp models.SearchResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return &resp
}

func TestHandleSearch(t *testing.T) {
	_, handler := newTestServer(t)

	rec := postSearch(t, handler, map[string]interface{}{"query": "I am hungry"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decodeSearch(t, rec)
	if len(resp.Results) == 0 {
		t.Fatal("expected results for a hunger query")
	}
	if resp.Results[0].Service.Category != models.CategoryFood {
		t.Errorf("top category = %s, want Food", resp.Results[0].Service.Category)
	}
	if resp.Crisis {
		t.Error("hunger query flagged as crisis")
	}
	if resp.Query != "I am hungry" {
		t.Errorf("echoed query = %q", resp.Query)
	}
}

func TestHandleSearch_CrisisOverride(t *testing.T) {
	_, handler := newTestServer(t)

	rec := postSearch(t, handler, map[string]interface{}{"query": "I want to kill myself"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decodeSearch(t, rec)
	if !resp.Crisis {
		t.Fatal("crisis flag not set")
	}
	if len(resp.Results) == 0 {
		t.Fatal("expected results")
	}
	top := resp.Results[0]
	if top.Service.Category != models.CategoryCrisis {
		t.Errorf("top category = %s, want Crisis", top.Service.Category)
	}
	found := false
	for _, reason := range top.MatchReasons {
		if reason == "Crisis Detected (Safety Boost)" {
			found = true
		}
	}
	if !found {
		t.Errorf("promoted result lacks safety reason: %v", top.MatchReasons)
	}
}

func TestHandleSearch_CategoryFilter(t *testing.T) {
	_, handler := newTestServer(t)

	rec := postSearch(t, handler, map[string]interface{}{"query": "", "category": "Housing"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	resp := decodeSearch(t, rec)
	if len(resp.Results) == 0 {
		t.Fatal("expected housing results")
	}
	for _, r := range resp.Results {
		if r.Service.Category != models.CategoryHousing {
			t.Errorf("result %s has category %s", r.Service.ID, r.Service.Category)
		}
	}
}

func TestHandleSearch_UnknownCategory(t *testing.T) {
	_, handler := newTestServer(t)

	rec := postSearch(t, handler, map[string]interface{}{"query": "help", "category": "Spaceships"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleSearch_InvalidBody(t *testing.T) {
	_, handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleSearch_LimitClamped(t *testing.T) {
	_, handler := newTestServer(t)

	rec := postSearch(t, handler, map[string]interface{}{"query": "", "category": "Food", "limit": 1})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeSearch(t, rec)
	if len(resp.Results) != 1 {
		t.Errorf("got %d results, want 1", len(resp.Results))
	}
	if resp.Total < 2 {
		t.Errorf("total = %d, want the unclamped count", resp.Total)
	}
}

func TestHandleGetService(t *testing.T) {
	_, handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/partners-in-mission-food-bank", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var svc models.Service
	if err := json.NewDecoder(rec.Body).Decode(&svc); err != nil {
		t.Fatal(err)
	}
	if svc.ID != "partners-in-mission-food-bank" {
		t.Errorf("id = %s", svc.ID)
	}
}

func TestHandleGetService_NotFound(t *testing.T) {
	_, handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services/no-such-id", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandleCategories(t *testing.T) {
	_, handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Categories []models.Category `json:"categories"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Categories) != 12 {
		t.Errorf("got %d categories, want 12", len(resp.Categories))
	}
}

func TestHandleHealth(t *testing.T) {
	_, handler := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status field = %v", resp["status"])
	}
}
