// Package search implements the lazy hybrid search orchestrator: a lexical
// pass over the cached service set, a confidence-gated semantic pass, and a
// final geographic re-rank.
package search

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/jerdaw/kingston-care-connect/internal/config"
	"github.com/jerdaw/kingston-care-connect/internal/embedding"
	"github.com/jerdaw/kingston-care-connect/internal/geo"
	"github.com/jerdaw/kingston-care-connect/internal/metrics"
	"github.com/jerdaw/kingston-care-connect/internal/models"
	"github.com/jerdaw/kingston-care-connect/internal/ranking"
	"github.com/jerdaw/kingston-care-connect/internal/storage"
	"github.com/jerdaw/kingston-care-connect/internal/textproc"
	"github.com/jerdaw/kingston-care-connect/internal/vector"
)

// Match-reason strings for the semantic phase.
const (
	semanticBoostReason  = "Semantic Boost"
	semanticRescueReason = "Semantic Rescue"
	filterMatchReason    = "Filter Match"
)

// Engine runs hybrid (lexical + semantic) search over the service directory.
// The semantic phase is lazy: it only runs when the lexical pass is not
// confident, and it degrades to lexical-only when no embedder is available.
type Engine struct {
	cache    *storage.ServiceCache
	embedder embedding.Embedder
	scorer   *ranking.Scorer
	cfg      *config.SearchConfig
	logger   *zap.Logger
	now      func() time.Time
}

// NewEngine creates a search engine. embedder may be nil, which disables the
// semantic phase.
func NewEngine(
	cache *storage.ServiceCache,
	embedder embedding.Embedder,
	scorer *ranking.Scorer,
	cfg *config.SearchConfig,
	logger *zap.Logger,
) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cache:    cache,
		embedder: embedder,
		scorer:   scorer,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the engine's clock; used by tests exercising the
// open-now filter.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Search runs the full pipeline and returns ranked results. Results hold
// pointers into the shared cached service set and must not be mutated.
func (e *Engine) Search(ctx context.Context, query string, opts *models.SearchOptions) ([]*models.SearchResult, error) {
	start := time.Now()
	defer func() {
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
	}()

	services, err := e.cache.Load(ctx)
	if err != nil {
		return nil, err
	}
	candidates := e.filter(services, opts)

	tokens := textproc.Tokenize(query)
	if e.cfg.SynonymExpansionOrDefault() {
		tokens = textproc.ExpandSynonyms(tokens)
	}

	if len(tokens) == 0 {
		if opts.HasFilters() {
			results := filterMatches(candidates)
			e.finish(results, opts)
			metrics.SearchesTotal.WithLabelValues("filter").Inc()
			return results, nil
		}
		metrics.SearchesTotal.WithLabelValues("empty").Inc()
		return []*models.SearchResult{}, nil
	}

	results, byID := e.lexicalPass(candidates, tokens, opts)

	mode := "lexical"
	if e.shouldRunSemantic(results, opts) {
		merged, ran := e.semanticMerge(ctx, query, opts, candidates, results, byID)
		if ran {
			results = merged
			mode = "semantic"
		}
	} else if len(results) > 0 {
		metrics.LazyGateSkipsTotal.Inc()
	}

	if len(results) == 0 {
		metrics.SearchesTotal.WithLabelValues("empty").Inc()
		return []*models.SearchResult{}, nil
	}

	e.finish(results, opts)
	metrics.SearchesTotal.WithLabelValues(mode).Inc()
	return results, nil
}

// filter applies hard filters: unverified services never surface, category
// must match when set, and open-now drops services whose recorded hours miss
// the query instant (services without hours data are kept).
func (e *Engine) filter(services []*models.Service, opts *models.SearchOptions) []*models.Service {
	now := e.now()
	candidates := make([]*models.Service, 0, len(services))
	for _, svc := range services {
		if svc.Verification == models.VerificationL0 {
			continue
		}
		if opts != nil && opts.Category != "" && svc.Category != opts.Category {
			continue
		}
		if opts != nil && opts.OpenNow && svc.Hours.HasHours() && !svc.Hours.OpenAt(now) {
			continue
		}
		candidates = append(candidates, svc)
	}
	return candidates
}

// filterMatches builds uniform results for a filter-only search, in data-set
// order.
func filterMatches(candidates []*models.Service) []*models.SearchResult {
	results := make([]*models.SearchResult, 0, len(candidates))
	for _, svc := range candidates {
		results = append(results, &models.SearchResult{
			Service:      svc,
			Score:        1,
			MatchReasons: []string{filterMatchReason},
		})
	}
	return results
}

// lexicalPass scores every candidate and returns the non-zero hits sorted by
// score, plus an index by service ID for the semantic merge.
func (e *Engine) lexicalPass(candidates []*models.Service, tokens []string, opts *models.SearchOptions) ([]*models.SearchResult, map[string]*models.SearchResult) {
	results := make([]*models.SearchResult, 0, len(candidates))
	byID := make(map[string]*models.SearchResult)
	for _, svc := range candidates {
		score, reasons := e.scorer.Score(svc, tokens, opts)
		if score <= 0 {
			continue
		}
		r := &models.SearchResult{Service: svc, Score: score, MatchReasons: reasons}
		results = append(results, r)
		byID[svc.ID] = r
	}
	sortByScore(results)
	return results, byID
}

// shouldRunSemantic is the confidence gate: a top lexical score at or above
// the threshold means the lexical answer is good enough. A vector override
// always forces the semantic phase.
func (e *Engine) shouldRunSemantic(results []*models.SearchResult, opts *models.SearchOptions) bool {
	if opts != nil && opts.VectorOverride != nil {
		return true
	}
	if len(results) == 0 {
		return true
	}
	return results[0].Score < e.cfg.ConfidenceThreshold
}

// semanticMerge embeds the raw query, scores every candidate embedding by
// cosine similarity, and folds vector scores into the lexical results.
// Returns (results, false) untouched when no query vector can be obtained.
func (e *Engine) semanticMerge(
	ctx context.Context,
	query string,
	opts *models.SearchOptions,
	candidates []*models.Service,
	results []*models.SearchResult,
	byID map[string]*models.SearchResult,
) ([]*models.SearchResult, bool) {
	var override []float32
	if opts != nil {
		override = opts.VectorOverride
	}
	queryVec := e.queryVector(ctx, query, override)
	if queryVec == nil {
		return results, false
	}

	vectorWeight := e.scorer.Config().VectorWeight
	for _, svc := range candidates {
		if len(svc.Embedding) == 0 {
			continue
		}
		sim := vector.Cosine(queryVec, svc.Embedding)
		if sim < e.cfg.SimilarityFloor {
			continue
		}
		vscore := sim * vectorWeight
		if r, ok := byID[svc.ID]; ok {
			r.Score += vscore
			if vscore > e.cfg.MaterialityThreshold {
				r.MatchReasons = append(r.MatchReasons, semanticBoostReason)
			}
			continue
		}
		if vscore > e.cfg.RescueThreshold {
			r := &models.SearchResult{
				Service:      svc,
				Score:        vscore,
				MatchReasons: []string{semanticRescueReason},
			}
			results = append(results, r)
			byID[svc.ID] = r
		}
	}
	sortByScore(results)
	return results, true
}

// queryVector resolves the query embedding: an explicit override wins,
// otherwise the embedder is consulted. Returns nil when the semantic phase
// must be skipped.
func (e *Engine) queryVector(ctx context.Context, query string, override []float32) []float32 {
	if override != nil {
		return override
	}
	if e.embedder == nil {
		return nil
	}
	vec, err := e.embedder.Embed(ctx, query)
	if err != nil {
		e.logger.Warn("query embedding failed, degrading to lexical results", zap.Error(err))
		return nil
	}
	return vec
}

// finish applies the final ordering: geographic re-rank when a location is
// given, score order otherwise.
func (e *Engine) finish(results []*models.SearchResult, opts *models.SearchOptions) {
	if opts != nil && opts.Location != nil {
		geo.SortByDistance(results, *opts.Location, e.cfg.ScoreGap)
		return
	}
	sortByScore(results)
}

func sortByScore(results []*models.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}
