package models

// SearchResult is a single ranked hit. Results are built fresh per query and
// never persisted.
type SearchResult struct {
	Service *Service `json:"service"`
	Score   float64  `json:"score"`
	// MatchReasons explains, in order, why this service matched.
	MatchReasons []string `json:"match_reasons"`
}

// SearchResponse is the payload returned by the HTTP search endpoint.
type SearchResponse struct {
	Results   []*SearchResult `json:"results"`
	Total     int             `json:"total"`
	QueryTime int64           `json:"query_time_ms"`
	Query     string          `json:"query"`
	// Crisis indicates the safety override was applied to the ordering.
	Crisis bool `json:"crisis,omitempty"`
}
