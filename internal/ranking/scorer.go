package ranking

import (
	"fmt"
	"strings"
	"time"

	"github.com/jerdaw/kingston-care-connect/internal/models"
)

// Scorer computes the lexical relevance of a service for a token set, then
// applies the configured multipliers. It is safe for concurrent use.
type Scorer struct {
	config      *RankingConfig
	multipliers []Multiplier
	now         func() time.Time
}

// NewScorer creates a Scorer with the given configuration.
func NewScorer(config *RankingConfig) *Scorer {
	if config == nil {
		config = DefaultRankingConfig()
	}
	config.ApplyDefaults()

	return &Scorer{
		config:      config,
		multipliers: DefaultMultipliers(config),
		now:         time.Now,
	}
}

// WithMultipliers sets custom multipliers.
func (s *Scorer) WithMultipliers(multipliers []Multiplier) *Scorer {
	s.multipliers = multipliers
	return s
}

// WithClock sets the time source used for freshness checks.
func (s *Scorer) WithClock(now func() time.Time) *Scorer {
	s.now = now
	return s
}

// Config returns the ranking configuration.
func (s *Scorer) Config() *RankingConfig {
	return s.config
}

// Score scores one service against the token set. Field checks accumulate
// independently; multipliers run after the additive base. Empty token input
// yields zero with no reasons, never an error.
func (s *Scorer) Score(svc *models.Service, tokens []string, opts *models.SearchOptions) (float64, []string) {
	if svc == nil || len(tokens) == 0 {
		return 0, nil
	}

	var score float64
	var reasons []string

	score, reasons = s.scoreSynthetic(svc, tokens, score, reasons)
	score, reasons = s.scoreName(svc, tokens, score, reasons)
	score, reasons = s.scoreIdentityTags(svc, tokens, score, reasons)
	score, reasons = s.scoreDescription(svc, tokens, score, reasons)

	if score == 0 {
		return 0, nil
	}

	ctx := &ScoringContext{Service: svc, Tokens: tokens, Options: opts, Now: s.now()}
	for _, m := range s.multipliers {
		var reason string
		score, reason = m.Apply(ctx, score)
		if reason != "" {
			reasons = append(reasons, reason)
		}
	}

	return score, reasons
}

// scoreSynthetic awards the synthetic-query weight per language, breaking
// after the first matching phrase in each language so a single rich intent
// list cannot run the score up.
func (s *Scorer) scoreSynthetic(svc *models.Service, tokens []string, score float64, reasons []string) (float64, []string) {
	for _, phrases := range [][]string{svc.Synthetic.EN, svc.Synthetic.FR} {
		for _, phrase := range phrases {
			if phraseContainsAnyToken(phrase, tokens) {
				score += s.config.SyntheticQueryWeight
				reasons = append(reasons, fmt.Sprintf("Intent Match: %q", phrase))
				break
			}
		}
	}
	return score, reasons
}

func (s *Scorer) scoreName(svc *models.Service, tokens []string, score float64, reasons []string) (float64, []string) {
	nameEN := strings.ToLower(svc.Name.EN)
	nameFR := strings.ToLower(svc.Name.FR)
	for _, tok := range tokens {
		if strings.Contains(nameEN, tok) || strings.Contains(nameFR, tok) {
			score += s.config.NameWeight
			reasons = append(reasons, "Name Match: "+tok)
		}
	}
	return score, reasons
}

func (s *Scorer) scoreIdentityTags(svc *models.Service, tokens []string, score float64, reasons []string) (float64, []string) {
	for _, tok := range tokens {
		for _, tag := range svc.IdentityTags {
			if strings.Contains(strings.ToLower(tag), tok) {
				score += s.config.IdentityTagWeight
				reasons = append(reasons, "Identity Tag Match: "+tok)
				break
			}
		}
	}
	return score, reasons
}

// scoreDescription awards the description weight once per token found, summed
// and reported as a single combined reason to keep the reason list readable.
func (s *Scorer) scoreDescription(svc *models.Service, tokens []string, score float64, reasons []string) (float64, []string) {
	descEN := strings.ToLower(svc.Description.EN)
	descFR := strings.ToLower(svc.Description.FR)
	matched := 0
	for _, tok := range tokens {
		if strings.Contains(descEN, tok) || strings.Contains(descFR, tok) {
			matched++
		}
	}
	if matched > 0 {
		score += float64(matched) * s.config.DescriptionWeight
		reasons = append(reasons, fmt.Sprintf("Description Match (%d terms)", matched))
	}
	return score, reasons
}

// phraseContainsAnyToken reports whether the lowercased phrase contains any
// of the tokens as a substring.
func phraseContainsAnyToken(phrase string, tokens []string) bool {
	lower := strings.ToLower(phrase)
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}
