package models

// SearchRequest is a raw catalog search with hard filters.
type SearchRequest struct {
	Keywords string   `json:"keywords,omitempty"`
	Budget   *float64 `json:"budget,omitempty"`
	Region   string   `json:"region,omitempty"`
	Color    string   `json:"color,omitempty"`
	Fit      string   `json:"fit,omitempty"`
	Style    string   `json:"style,omitempty"`
	Limit    int      `json:"limit,omitempty"`
}

// Validate normalizes the request limit. Zero means no truncation was
// requested; negative limits are treated as zero.
func (r *SearchRequest) Validate() {
	if r.Limit < 0 {
		r.Limit = 0
	}
}

// RankRequest re-ranks a catalog subset with the full query context.
// When IDs is empty the whole catalog is ranked.
type RankRequest struct {
	Context QueryContext `json:"context"`
	IDs     []string     `json:"ids,omitempty"`
}

// TrendRequest asks for the current trending items.
type TrendRequest struct {
	Region string `json:"region,omitempty"`
	Event  string `json:"event,omitempty"`
	TopK   int    `json:"top_k,omitempty"`
}

// Validate applies the default top-k when unset.
func (r *TrendRequest) Validate() {
	if r.TopK == 0 {
		r.TopK = 10
	}
}
