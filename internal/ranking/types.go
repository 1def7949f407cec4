// Package ranking provides the weighted lexical scorer and score multipliers
// for service search.
package ranking

import (
	"time"

	"github.com/jerdaw/kingston-care-connect/internal/models"
)

// ScoringContext carries everything needed to score one service for one query.
type ScoringContext struct {
	// Service is the service being scored.
	Service *models.Service
	// Tokens are the (optionally synonym-expanded) query tokens.
	Tokens []string
	// Options are the caller-supplied search options; may be nil.
	Options *models.SearchOptions
	// Now is the query instant used for freshness checks.
	Now time.Time
}

// Multiplier adjusts a base score multiplicatively. Apply returns the new
// score and a human-readable reason, or "" when the score was left unchanged.
type Multiplier interface {
	Apply(ctx *ScoringContext, score float64) (float64, string)
	// Name returns the name of the multiplier for debugging/logging.
	Name() string
}
