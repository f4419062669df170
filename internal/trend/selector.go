// Package trend selects trending catalog items from region, event, and
// global viral keyword sets.
package trend

import (
	"sort"
	"strings"

	"github.com/stylekart/erabu/internal/models"
	"github.com/stylekart/erabu/pkg/utils"
)

// Scores are kept in integer half-credits so that the 0.5 partial-credit case
// stays exactly reproducible: a whole-phrase hit is worth 2 halves, a partial
// hit 1 half, and the fixed boosts are doubled to match.
const (
	phraseHalves    = 2
	partialHalves   = 1
	tagBoostHalves  = 4
	popBoostHalves  = 4
	rateBoostHalves = 3
	popThreshold    = 85
	ratingThreshold = 4.5
)

// Selector scores the whole catalog against an assembled trend keyword set
// and returns a deduplicated top-K.
type Selector struct {
	keywords Keywords
}

// NewSelector creates a selector over the given keyword table, or the
// built-in table when nil.
func NewSelector(keywords Keywords) *Selector {
	if keywords == nil {
		keywords = DefaultKeywords()
	}
	return &Selector{keywords: keywords}
}

// assemble builds the trend keyword set for a call: the region's list when
// the label is known, the metro list again when region is exactly "metro",
// the event's list when known, and always the global viral baseline.
func (s *Selector) assemble(region, event string) []string {
	var phrases []string
	if list, ok := s.keywords[region]; ok {
		phrases = append(phrases, list...)
	}
	if region == metroKey {
		phrases = append(phrases, s.keywords[metroKey]...)
	}
	if list, ok := s.keywords[event]; ok {
		phrases = append(phrases, list...)
	}
	phrases = append(phrases, s.keywords[viralKey]...)
	return phrases
}

// Trending scores every product against the assembled trend keywords and
// returns at most topK results, unique by id, best first. Ties keep catalog
// order. A topK of zero or less yields no results. Unknown region or event
// labels contribute nothing beyond the viral baseline.
func (s *Selector) Trending(products []*models.Product, region, event string, topK int) []*models.ScoredProduct {
	if topK <= 0 {
		return nil
	}

	region = utils.Normalize(region)
	event = utils.Normalize(event)
	phrases := s.assemble(region, event)

	scored := make([]*models.ScoredProduct, 0, len(products))
	for _, p := range products {
		halves := s.matchHalves(p.SearchBlob(), phrases)

		tags := p.LowerTags()
		if containsString(tags, "trending") || containsString(tags, "viral") {
			halves += tagBoostHalves
		}
		if p.Popularity > popThreshold {
			halves += popBoostHalves
		}
		if p.Rating >= ratingThreshold {
			halves += rateBoostHalves
		}

		scored = append(scored, &models.ScoredProduct{
			Product: p,
			Score:   float64(halves) / 2,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	// Dedup by id, first (best) occurrence wins. Products without an id are
	// always distinct.
	seen := make(map[string]bool, topK)
	out := make([]*models.ScoredProduct, 0, topK)
	for _, sp := range scored {
		id := sp.Product.ID
		if id != "" {
			if seen[id] {
				continue
			}
			seen[id] = true
		}
		sp.Rank = len(out) + 1
		out = append(out, sp)
		if len(out) >= topK {
			break
		}
	}
	return out
}

// matchHalves tallies trend phrase hits against the blob: a whole phrase
// found earns full credit, otherwise any single word of the phrase earns the
// partial half-credit. Credits add up across phrases.
func (s *Selector) matchHalves(blob string, phrases []string) int {
	halves := 0
	for _, phrase := range phrases {
		phrase = strings.ToLower(phrase)
		if strings.Contains(blob, phrase) {
			halves += phraseHalves
			continue
		}
		for _, word := range strings.Fields(phrase) {
			if strings.Contains(blob, word) {
				halves += partialHalves
				break
			}
		}
	}
	return halves
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
