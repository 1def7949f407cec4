package ranking

import (
	"fmt"
	"math"

	"github.com/jerdaw/kingston-care-connect/internal/models"
)

// VerificationMultiplier boosts provider-confirmed records. L1 and L0 get no
// bonus and no penalty; L0 never reaches scoring because it is filtered
// upstream, but the value is defined regardless.
type VerificationMultiplier struct {
	config *RankingConfig
}

// NewVerificationMultiplier creates a new VerificationMultiplier.
func NewVerificationMultiplier(config *RankingConfig) *VerificationMultiplier {
	return &VerificationMultiplier{config: config}
}

// Name returns the multiplier name.
func (m *VerificationMultiplier) Name() string {
	return "verification"
}

// Apply applies the verification multiplier to the base score.
func (m *VerificationMultiplier) Apply(ctx *ScoringContext, score float64) (float64, string) {
	if score == 0 || ctx.Service == nil {
		return score, ""
	}
	factor := m.factor(ctx.Service.Verification)
	if factor == 1.0 {
		return score, ""
	}
	return score * factor, "Verification Boost"
}

func (m *VerificationMultiplier) factor(level models.VerificationLevel) float64 {
	switch level {
	case models.VerificationL3:
		return m.config.VerificationL3Multiplier
	case models.VerificationL2:
		return m.config.VerificationL2Multiplier
	default:
		return 1.0
	}
}

// FreshnessMultiplier adjusts the score by how recently the record was
// verified: a small boost inside the fresh window, neutral inside the neutral
// window, and a small penalty beyond it or when no verification date exists.
type FreshnessMultiplier struct {
	config *RankingConfig
}

// NewFreshnessMultiplier creates a new FreshnessMultiplier.
func NewFreshnessMultiplier(config *RankingConfig) *FreshnessMultiplier {
	return &FreshnessMultiplier{config: config}
}

// Name returns the multiplier name.
func (m *FreshnessMultiplier) Name() string {
	return "freshness"
}

// Apply applies the freshness multiplier to the base score.
func (m *FreshnessMultiplier) Apply(ctx *ScoringContext, score float64) (float64, string) {
	if score == 0 || ctx.Service == nil {
		return score, ""
	}
	if ctx.Service.LastVerified == nil {
		return score * m.config.StalenessMultiplier, "Stale Data Penalty"
	}
	days := int(ctx.Now.Sub(*ctx.Service.LastVerified).Hours() / 24)
	switch {
	case days <= m.config.FreshWindowDays:
		return score * m.config.FreshnessMultiplier, "Fresh Data Boost"
	case days <= m.config.NeutralWindowDays:
		return score, ""
	default:
		return score * m.config.StalenessMultiplier, "Stale Data Penalty"
	}
}

// IdentityBoostMultiplier applies the opted-in personalization boost: a fixed
// percentage per identity tag shared with the searcher, capped. Without an
// explicit opt-in the score is never touched.
type IdentityBoostMultiplier struct {
	config *RankingConfig
}

// NewIdentityBoostMultiplier creates a new IdentityBoostMultiplier.
func NewIdentityBoostMultiplier(config *RankingConfig) *IdentityBoostMultiplier {
	return &IdentityBoostMultiplier{config: config}
}

// Name returns the multiplier name.
func (m *IdentityBoostMultiplier) Name() string {
	return "identity_boost"
}

// Apply applies the personalization boost to the base score.
func (m *IdentityBoostMultiplier) Apply(ctx *ScoringContext, score float64) (float64, string) {
	if score == 0 || ctx.Service == nil || ctx.Options == nil {
		return score, ""
	}
	matches := ctx.Options.UserContext.MatchingIdentities(ctx.Service.IdentityTags)
	if matches == 0 {
		return score, ""
	}
	boost := math.Min(m.config.IdentityBoostCap, m.config.IdentityBoostPerTag*float64(matches))
	reason := fmt.Sprintf("Identity Boost (+%d%%)", int(math.Round(boost*100)))
	return score * (1 + boost), reason
}

// DefaultMultipliers returns the standard multiplier chain: verification,
// then freshness, then personalization.
func DefaultMultipliers(config *RankingConfig) []Multiplier {
	return []Multiplier{
		NewVerificationMultiplier(config),
		NewFreshnessMultiplier(config),
		NewIdentityBoostMultiplier(config),
	}
}
