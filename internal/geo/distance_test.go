package geo

import (
	"math"
	"testing"

	"github.com/jerdaw/kingston-care-connect/internal/models"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
		tolerance              float64
	}{
		{"same point", 44.2312, -76.486, 44.2312, -76.486, 0, 0.001},
		{"kingston to toronto", 44.2312, -76.486, 43.6532, -79.3832, 241, 5},
		{"kingston to ottawa", 44.2312, -76.486, 45.4215, -75.6972, 147, 5},
		{"across the equator", 1, 0, -1, 0, 222.4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("DistanceKm() = %v, want %v ± %v", got, tt.want, tt.tolerance)
			}
		})
	}
}

func located(id string, score, lat, lng float64) *models.SearchResult {
	return &models.SearchResult{
		Service: &models.Service{ID: id, Location: &models.Location{Lat: lat, Lng: lng}},
		Score:   score,
	}
}

func unlocated(id string, score float64) *models.SearchResult {
	return &models.SearchResult{Service: &models.Service{ID: id}, Score: score}
}

func ids(results []*models.SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Service.ID
	}
	return out
}

func TestSortByDistance(t *testing.T) {
	user := models.Location{Lat: 44.2312, Lng: -76.486}

	tests := []struct {
		name    string
		results []*models.SearchResult
		want    []string
	}{
		{
			"closer first when scores are comparable",
			[]*models.SearchResult{
				located("far", 50, 45.4215, -75.6972),
				located("near", 40, 44.24, -76.49),
			},
			[]string{"near", "far"},
		},
		{
			"large score gap beats distance",
			[]*models.SearchResult{
				located("relevant-far", 120, 45.4215, -75.6972),
				located("weak-near", 10, 44.24, -76.49),
			},
			[]string{"relevant-far", "weak-near"},
		},
		{
			"missing coordinates sort last",
			[]*models.SearchResult{
				unlocated("nowhere", 45),
				located("near", 40, 44.24, -76.49),
			},
			[]string{"near", "nowhere"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SortByDistance(tt.results, user, 50)
			got := ids(tt.results)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("order = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
