package models

// ScoredProduct is a single ranked hit with its computed score.
type ScoredProduct struct {
	Product *Product `json:"product"`
	Score   float64  `json:"score"`
	Rank    int      `json:"rank"`
	// Signals holds the per-signal score contributions when the caller
	// requested a breakdown; nil otherwise.
	Signals map[string]int `json:"signals,omitempty"`
}

// RecommendResponse is the response for search, rank, recommend, and trending calls.
type RecommendResponse struct {
	Results   []*ScoredProduct `json:"results"`
	Total     int              `json:"total"`
	Query     string           `json:"query,omitempty"`
	Route     string           `json:"route,omitempty"`
	Note      string           `json:"note,omitempty"`
	QueryTime int64            `json:"query_time_ms"`
}
