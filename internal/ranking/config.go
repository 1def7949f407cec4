package ranking

// RankingConfig holds all weights and thresholds for the lexical scorer and
// its multipliers. The relative magnitudes of the field weights encode design
// intent: an explicit intent-phrase match outranks raw keyword presence in
// free text, and a vector hit outranks everything lexical.
type RankingConfig struct {
	// Additive field weights
	VectorWeight         float64 `yaml:"vector_weight"`          // default: 100
	SyntheticQueryWeight float64 `yaml:"synthetic_query_weight"` // default: 50
	NameWeight           float64 `yaml:"name_weight"`            // default: 30
	IdentityTagWeight    float64 `yaml:"identity_tag_weight"`    // default: 20
	DescriptionWeight    float64 `yaml:"description_weight"`     // default: 10

	// Verification multipliers. L1 and L0 are implicitly 1.0; L0 services are
	// filtered out before scoring but the multiplier is still defined for them.
	VerificationL3Multiplier float64 `yaml:"verification_l3_multiplier"` // default: 1.3
	VerificationL2Multiplier float64 `yaml:"verification_l2_multiplier"` // default: 1.15

	// Freshness multipliers keyed on days since last verification.
	FreshWindowDays     int     `yaml:"fresh_window_days"`     // default: 30
	NeutralWindowDays   int     `yaml:"neutral_window_days"`   // default: 90
	FreshnessMultiplier float64 `yaml:"freshness_multiplier"`  // default: 1.1
	StalenessMultiplier float64 `yaml:"staleness_multiplier"`  // default: 0.9

	// Personalization boost, applied only for opted-in users.
	IdentityBoostPerTag float64 `yaml:"identity_boost_per_tag"` // default: 0.1
	IdentityBoostCap    float64 `yaml:"identity_boost_cap"`     // default: 0.3
}

// DefaultRankingConfig returns the default ranking configuration.
func DefaultRankingConfig() *RankingConfig {
	return &RankingConfig{
		VectorWeight:         100,
		SyntheticQueryWeight: 50,
		NameWeight:           30,
		IdentityTagWeight:    20,
		DescriptionWeight:    10,

		VerificationL3Multiplier: 1.3,
		VerificationL2Multiplier: 1.15,

		FreshWindowDays:     30,
		NeutralWindowDays:   90,
		FreshnessMultiplier: 1.1,
		StalenessMultiplier: 0.9,

		IdentityBoostPerTag: 0.1,
		IdentityBoostCap:    0.3,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *RankingConfig) ApplyDefaults() {
	defaults := DefaultRankingConfig()

	if c.VectorWeight == 0 {
		c.VectorWeight = defaults.VectorWeight
	}
	if c.SyntheticQueryWeight == 0 {
		c.SyntheticQueryWeight = defaults.SyntheticQueryWeight
	}
	if c.NameWeight == 0 {
		c.NameWeight = defaults.NameWeight
	}
	if c.IdentityTagWeight == 0 {
		c.IdentityTagWeight = defaults.IdentityTagWeight
	}
	if c.DescriptionWeight == 0 {
		c.DescriptionWeight = defaults.DescriptionWeight
	}
	if c.VerificationL3Multiplier == 0 {
		c.VerificationL3Multiplier = defaults.VerificationL3Multiplier
	}
	if c.VerificationL2Multiplier == 0 {
		c.VerificationL2Multiplier = defaults.VerificationL2Multiplier
	}
	if c.FreshWindowDays == 0 {
		c.FreshWindowDays = defaults.FreshWindowDays
	}
	if c.NeutralWindowDays == 0 {
		c.NeutralWindowDays = defaults.NeutralWindowDays
	}
	if c.FreshnessMultiplier == 0 {
		c.FreshnessMultiplier = defaults.FreshnessMultiplier
	}
	if c.StalenessMultiplier == 0 {
		c.StalenessMultiplier = defaults.StalenessMultiplier
	}
	if c.IdentityBoostPerTag == 0 {
		c.IdentityBoostPerTag = defaults.IdentityBoostPerTag
	}
	if c.IdentityBoostCap == 0 {
		c.IdentityBoostCap = defaults.IdentityBoostCap
	}
}
