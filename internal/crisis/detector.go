// Package crisis implements the safety gate: detecting self-harm, violence,
// and emergency language in queries and forcing crisis resources to the top
// of results. It is policy, not relevance, and is applied at the API
// boundary rather than inside the search engine.
package crisis

import (
	"strings"

	"github.com/jerdaw/kingston-care-connect/internal/models"
)

// crisisPhrases is the fixed bilingual phrase list. Matching is substring,
// case-insensitive, and deliberately over-broad: a false positive surfaces
// crisis lines to someone who did not need them, a false negative hides them
// from someone who did.
var crisisPhrases = []string{
	// Self-harm
	"suicide",
	"suicidal",
	"kill myself",
	"end my life",
	"want to die",
	"self harm",
	"self-harm",
	"hurt myself",
	"me suicider",
	"me tuer",
	"mettre fin à mes jours",

	// Substance emergencies
	"overdose",
	"od right now",
	"surdose",

	// Violence
	"domestic violence",
	"being abused",
	"abusive partner",
	"partner hits",
	"sexual assault",
	"violence conjugale",
	"agression sexuelle",

	// General emergency language
	"emergency",
	"in danger",
	"urgence",
	"en danger",
}

// Detect reports whether the raw query contains crisis language. Pure,
// stateless, deterministic; operates on the raw query so phrasing lost to
// tokenization ("kill myself") is still caught.
func Detect(query string) bool {
	lower := strings.ToLower(query)
	for _, phrase := range crisisPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// promotedReason is appended to every result lifted by the safety override.
const promotedReason = "Crisis Detected (Safety Boost)"

// Promote moves all Crisis-category results ahead of everything else,
// preserving relative order within each group, and tags the promoted results
// with a safety reason. Scores are left untouched: the override is an
// ordering policy, not a relevance signal.
func Promote(results []*models.SearchResult) []*models.SearchResult {
	if len(results) == 0 {
		return results
	}
	promoted := make([]*models.SearchResult, 0, len(results))
	rest := make([]*models.SearchResult, 0, len(results))
	for _, r := range results {
		if r.Service != nil && r.Service.Category == models.CategoryCrisis {
			r.MatchReasons = append(r.MatchReasons, promotedReason)
			promoted = append(promoted, r)
		} else {
			rest = append(rest, r)
		}
	}
	return append(promoted, rest...)
}
