package models

import "strings"

// AgeGroup is a self-declared age bracket used for personalization.
type AgeGroup string

const (
	AgeGroupYouth  AgeGroup = "youth"
	AgeGroupAdult  AgeGroup = "adult"
	AgeGroupSenior AgeGroup = "senior"
)

// UserContext is the personalization signal for a search. It is always
// user-asserted and only takes effect when HasOptedIn is true; identity is
// never inferred.
type UserContext struct {
	AgeGroup   AgeGroup `json:"age_group,omitempty"`
	Identities []string `json:"identities,omitempty"`
	HasOptedIn bool     `json:"has_opted_in"`
}

// MatchingIdentities returns how many of the user's identities appear in
// tags (case-insensitive). Returns 0 when the user has not opted in.
func (u *UserContext) MatchingIdentities(tags []string) int {
	if u == nil || !u.HasOptedIn || len(u.Identities) == 0 {
		return 0
	}
	count := 0
	for _, identity := range u.Identities {
		for _, tag := range tags {
			if strings.EqualFold(identity, tag) {
				count++
				break
			}
		}
	}
	return count
}

// SearchOptions configures a search. The zero value means no filters and no
// boosts.
type SearchOptions struct {
	// Category restricts results to one category when non-empty.
	Category Category `json:"category,omitempty"`
	// Location enables geographic re-ranking when set.
	Location *Location `json:"location,omitempty"`
	// VectorOverride supplies a precomputed query embedding. When set, the
	// confidence gate is bypassed and the semantic phase always runs.
	VectorOverride []float32 `json:"vector_override,omitempty"`
	// OpenNow drops services whose recorded hours do not cover the query
	// instant. Services without hours data are kept.
	OpenNow bool `json:"open_now,omitempty"`
	// UserContext enables personalization boosting when the user opted in.
	UserContext *UserContext `json:"user_context,omitempty"`
}

// HasFilters reports whether any hard filter is active, which determines how
// an empty query is handled.
func (o *SearchOptions) HasFilters() bool {
	if o == nil {
		return false
	}
	return o.Category != "" || o.Location != nil || o.OpenNow
}
