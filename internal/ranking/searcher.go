// Package ranking implements candidate filtering and the scoring engines that
// order catalog products for a query.
package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/stylekart/erabu/internal/models"
	"github.com/stylekart/erabu/pkg/utils"
)

// missingPriceSentinel sorts products without a price after every priced one.
const missingPriceSentinel = math.MaxFloat64

// Searcher applies hard candidate filters and relevance ordering over a catalog.
type Searcher struct{}

// NewSearcher creates a Searcher.
func NewSearcher() *Searcher {
	return &Searcher{}
}

// Search filters products by the request's hard constraints and returns the
// survivors with their relevance scores, ordered by relevance desc, popularity
// desc, rating desc, price asc. Absent request fields impose no constraint,
// and ties keep the original catalog order.
func (s *Searcher) Search(products []*models.Product, req *models.SearchRequest) []*models.ScoredProduct {
	keywords := utils.Normalize(req.Keywords)
	tokens := strings.Fields(keywords)
	region := utils.Normalize(req.Region)
	color := utils.Normalize(req.Color)
	fit := utils.Normalize(req.Fit)
	style := utils.Normalize(req.Style)

	matched := make([]*models.ScoredProduct, 0, len(products))
	for _, p := range products {
		if req.Budget != nil && p.Price != nil && *p.Price > *req.Budget {
			continue
		}
		blob := p.SearchBlob()
		if keywords != "" && !keywordMatch(blob, keywords, tokens) {
			continue
		}
		if color != "" && !colorMatch(p, blob, color) {
			continue
		}
		if fit != "" && !strings.Contains(blob, fit) {
			continue
		}
		if style != "" && !strings.Contains(blob, style) {
			continue
		}
		matched = append(matched, &models.ScoredProduct{
			Product: p,
			Score:   float64(relevance(blob, tokens, region)),
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Product.Popularity != b.Product.Popularity {
			return a.Product.Popularity > b.Product.Popularity
		}
		if a.Product.Rating != b.Product.Rating {
			return a.Product.Rating > b.Product.Rating
		}
		return sortPrice(a.Product) < sortPrice(b.Product)
	})

	for i, m := range matched {
		m.Rank = i + 1
	}
	return matched
}

// keywordMatch reports whether the full keyword string, or any single token of
// it, appears in the blob. A single matching word is enough: the filter is
// deliberately loose to keep recall high, relevance ordering sorts it out.
func keywordMatch(blob, keywords string, tokens []string) bool {
	if strings.Contains(blob, keywords) {
		return true
	}
	for _, tok := range tokens {
		if strings.Contains(blob, tok) {
			return true
		}
	}
	return false
}

// colorMatch reports whether color is one of the product's colors or appears
// anywhere in the blob.
func colorMatch(p *models.Product, blob, color string) bool {
	for _, c := range p.LowerColors() {
		if c == color {
			return true
		}
	}
	return strings.Contains(blob, color)
}

// relevance counts keyword tokens found in the blob, plus one for a region hit.
func relevance(blob string, tokens []string, region string) int {
	score := 0
	for _, tok := range tokens {
		if strings.Contains(blob, tok) {
			score++
		}
	}
	if region != "" && strings.Contains(blob, region) {
		score++
	}
	return score
}

func sortPrice(p *models.Product) float64 {
	if p.Price == nil {
		return missingPriceSentinel
	}
	return *p.Price
}
