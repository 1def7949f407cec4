// Package geo provides haversine distance and distance-based re-ranking.
package geo

import (
	"math"
	"sort"

	"github.com/jerdaw/kingston-care-connect/internal/models"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometres between two
// points given in decimal degrees.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// SortByDistance re-orders results by distance from the user location, except
// that a result whose score exceeds another's by more than scoreGap stays
// ahead of it regardless of distance: a markedly more relevant service is
// never demoted below a marginally closer one. Results without coordinates
// sort as infinitely far. The sort is stable.
func SortByDistance(results []*models.SearchResult, loc models.Location, scoreGap float64) {
	distances := make(map[*models.SearchResult]float64, len(results))
	for _, r := range results {
		distances[r] = distanceTo(r, loc)
	}
	sort.SliceStable(results, func(i, j int) bool {
		gap := results[i].Score - results[j].Score
		if gap > scoreGap {
			return true
		}
		if gap < -scoreGap {
			return false
		}
		return distances[results[i]] < distances[results[j]]
	})
}

func distanceTo(r *models.SearchResult, loc models.Location) float64 {
	if r.Service == nil || r.Service.Location == nil {
		return math.Inf(1)
	}
	return DistanceKm(loc.Lat, loc.Lng, r.Service.Location.Lat, r.Service.Location.Lng)
}
