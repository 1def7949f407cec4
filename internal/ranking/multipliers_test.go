package ranking

import (
	"math"
	"testing"
	"time"

	"github.com/jerdaw/kingston-care-connect/internal/models"
)

func ctxForService(svc *models.Service, opts *models.SearchOptions) *ScoringContext {
	return &ScoringContext{Service: svc, Options: opts, Now: time.Now()}
}

func TestVerificationMultiplier_Apply(t *testing.T) {
	mult := NewVerificationMultiplier(DefaultRankingConfig())
	base := 100.0

	tests := []struct {
		level      models.VerificationLevel
		want       float64
		wantReason string
	}{
		{models.VerificationL3, 130, "Verification Boost"},
		{models.VerificationL2, 115, "Verification Boost"},
		{models.VerificationL1, 100, ""},
		// L0 is filtered out before scoring ever runs, but the multiplier
		// still defines a value for it: identical to L1.
		{models.VerificationL0, 100, ""},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			svc := &models.Service{Verification: tt.level}
			got, reason := mult.Apply(ctxForService(svc, nil), base)
			if math.Abs(got-tt.want) > 1e-9 || reason != tt.wantReason {
				t.Errorf("Apply(%s) = (%v, %q), want (%v, %q)", tt.level, got, reason, tt.want, tt.wantReason)
			}
		})
	}
}

func TestFreshnessMultiplier_Apply(t *testing.T) {
	mult := NewFreshnessMultiplier(DefaultRankingConfig())
	base := 100.0

	tests := []struct {
		name       string
		verified   *time.Time
		want       float64
		wantReason string
	}{
		{"verified last week", daysAgo(7), 110, "Fresh Data Boost"},
		{"exactly at fresh window", daysAgo(30), 110, "Fresh Data Boost"},
		{"inside neutral window", daysAgo(60), 100, ""},
		{"exactly at neutral window", daysAgo(90), 100, ""},
		{"stale", daysAgo(120), 90, "Stale Data Penalty"},
		{"never verified", nil, 90, "Stale Data Penalty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &models.Service{LastVerified: tt.verified}
			got, reason := mult.Apply(ctxForService(svc, nil), base)
			if math.Abs(got-tt.want) > 1e-9 || reason != tt.wantReason {
				t.Errorf("Apply(%s) = (%v, %q), want (%v, %q)", tt.name, got, reason, tt.want, tt.wantReason)
			}
		})
	}
}

func TestIdentityBoostMultiplier_Apply(t *testing.T) {
	mult := NewIdentityBoostMultiplier(DefaultRankingConfig())
	base := 100.0
	svc := &models.Service{
		IdentityTags: []string{"Indigenous", "Youth", "Newcomers", "Francophone"},
	}

	tests := []struct {
		name       string
		opts       *models.SearchOptions
		want       float64
		wantReason string
	}{
		{"nil options", nil, 100, ""},
		{
			"not opted in",
			&models.SearchOptions{UserContext: &models.UserContext{Identities: []string{"Youth"}}},
			100, "",
		},
		{
			"one matching tag",
			&models.SearchOptions{UserContext: &models.UserContext{HasOptedIn: true, Identities: []string{"youth"}}},
			110, "Identity Boost (+10%)",
		},
		{
			"two matching tags",
			&models.SearchOptions{UserContext: &models.UserContext{HasOptedIn: true, Identities: []string{"Youth", "Indigenous"}}},
			120, "Identity Boost (+20%)",
		},
		{
			"boost caps at thirty percent",
			&models.SearchOptions{UserContext: &models.UserContext{HasOptedIn: true, Identities: []string{"Youth", "Indigenous", "Newcomers", "Francophone"}}},
			130, "Identity Boost (+30%)",
		},
		{
			"opted in but no overlap",
			&models.SearchOptions{UserContext: &models.UserContext{HasOptedIn: true, Identities: []string{"Senior"}}},
			100, "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := mult.Apply(ctxForService(svc, tt.opts), base)
			if math.Abs(got-tt.want) > 1e-9 || reason != tt.wantReason {
				t.Errorf("Apply() = (%v, %q), want (%v, %q)", got, reason, tt.want, tt.wantReason)
			}
		})
	}
}

func TestMultipliers_ZeroScorePassesThrough(t *testing.T) {
	svc := &models.Service{Verification: models.VerificationL3, IdentityTags: []string{"Youth"}}
	opts := &models.SearchOptions{UserContext: &models.UserContext{HasOptedIn: true, Identities: []string{"Youth"}}}
	ctx := ctxForService(svc, opts)
	for _, m := range DefaultMultipliers(DefaultRankingConfig()) {
		if got, reason := m.Apply(ctx, 0); got != 0 || reason != "" {
			t.Errorf("%s.Apply(0) = (%v, %q), want (0, \"\")", m.Name(), got, reason)
		}
	}
}
