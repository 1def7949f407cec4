package ranking

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/jerdaw/kingston-care-connect/internal/models"
)

func daysAgo(n int) *time.Time {
	t := time.Now().Add(-time.Duration(n) * 24 * time.Hour)
	return &t
}

// neutralService returns a service whose multipliers are all 1.0 (L1,
// neutral-window verification date), so tests see pure field weights.
func neutralService() *models.Service {
	return &models.Service{
		ID:           "food-bank",
		Name:         models.LocalizedText{EN: "Partners in Mission Food Bank", FR: "Banque alimentaire de Kingston"},
		Description:  models.LocalizedText{EN: "Provides emergency food hampers to anyone in need.", FR: "Offre des paniers de nourriture d'urgence."},
		Category:     models.CategoryFood,
		Verification: models.VerificationL1,
		IdentityTags: []string{"Families", "Newcomers"},
		Synthetic: models.SyntheticQueries{
			EN: []string{"i am hungry", "need food for my family"},
			FR: []string{"j'ai faim"},
		},
		LastVerified: daysAgo(60),
	}
}

func TestScorer_Score_FieldWeights(t *testing.T) {
	scorer := NewScorer(nil)

	tests := []struct {
		name      string
		tokens    []string
		wantScore float64
	}{
		{"empty tokens", nil, 0},
		{"synthetic only", []string{"hungry"}, 50},
		{"french synthetic", []string{"faim"}, 50},
		{"synthetic plus name plus description", []string{"food"}, 90},
		{"synthetic breaks after first phrase per language", []string{"hungry", "food"}, 90},
		{"identity tag", []string{"newcomer"}, 20},
		{"no overlap", []string{"zamboni"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, reasons := scorer.Score(neutralService(), tt.tokens, nil)
			if score != tt.wantScore {
				t.Errorf("Score(%v) = %v, want %v (reasons: %v)", tt.tokens, score, tt.wantScore, reasons)
			}
			if tt.wantScore == 0 && len(reasons) != 0 {
				t.Errorf("zero score should carry no reasons, got %v", reasons)
			}
		})
	}
}

func TestScorer_Score_Reasons(t *testing.T) {
	scorer := NewScorer(nil)
	_, reasons := scorer.Score(neutralService(), []string{"food"}, nil)

	wantSubstrings := []string{"Intent Match", "Name Match: food", "Description Match"}
	for _, want := range wantSubstrings {
		found := false
		for _, r := range reasons {
			if strings.Contains(r, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("reasons %v missing %q", reasons, want)
		}
	}
}

func TestScorer_Score_AppliesMultipliers(t *testing.T) {
	scorer := NewScorer(nil)
	svc := neutralService()
	svc.Verification = models.VerificationL3
	svc.LastVerified = daysAgo(5)
	opts := &models.SearchOptions{
		UserContext: &models.UserContext{
			HasOptedIn: true,
			Identities: []string{"Newcomers"},
		},
	}

	score, reasons := scorer.Score(svc, []string{"hungry"}, opts)
	want := 50.0 * 1.3 * 1.1 * 1.1
	if math.Abs(score-want) > 1e-9 {
		t.Errorf("Score = %v, want %v", score, want)
	}
	joined := strings.Join(reasons, "|")
	for _, want := range []string{"Verification Boost", "Fresh Data Boost", "Identity Boost (+10%)"} {
		if !strings.Contains(joined, want) {
			t.Errorf("reasons %v missing %q", reasons, want)
		}
	}
}

func TestScorer_Score_NilService(t *testing.T) {
	scorer := NewScorer(nil)
	if score, reasons := scorer.Score(nil, []string{"food"}, nil); score != 0 || reasons != nil {
		t.Errorf("nil service should score zero, got %v %v", score, reasons)
	}
}

func TestNewScorer_DefaultsPreserveWeightOrdering(t *testing.T) {
	cfg := NewScorer(nil).Config()
	if !(cfg.VectorWeight > cfg.SyntheticQueryWeight &&
		cfg.SyntheticQueryWeight > cfg.NameWeight &&
		cfg.NameWeight > cfg.IdentityTagWeight &&
		cfg.IdentityTagWeight > cfg.DescriptionWeight) {
		t.Errorf("default weights lost their relative ordering: %+v", cfg)
	}
}
