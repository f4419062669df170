package ranking

import (
	"sort"
	"strings"

	"github.com/stylekart/erabu/internal/models"
	"github.com/stylekart/erabu/pkg/utils"
)

// Color palettes that flatter each skin-tone family.
var (
	warmPalette = []string{"beige", "brown", "olive", "maroon", "rust", "mustard"}
	coolPalette = []string{"blue", "grey", "black", "white", "navy", "silver"}

	warmSkinTones = map[string]bool{"warm": true, "tan": true, "medium warm": true}
	coolSkinTones = map[string]bool{"cool": true, "fair": true, "light cool": true}
)

// HarmonyRanker computes the additive harmony score: popularity, rating,
// budget fit, region, keyword relevance, event/occasion match, outfit
// templates, color harmony, skin tone, gender alignment, trend tags, and
// versatility. Every signal contributes only when its context field is present.
type HarmonyRanker struct {
	weights *Weights
}

// NewHarmonyRanker creates a ranker with the given weights, or defaults when nil.
func NewHarmonyRanker(weights *Weights) *HarmonyRanker {
	if weights == nil {
		weights = DefaultWeights()
	}
	weights.ApplyDefaults()
	return &HarmonyRanker{weights: weights}
}

// harmonyQuery is the normalized, pre-tokenized form of a QueryContext.
type harmonyQuery struct {
	budget          *float64
	region          string
	tokens          []string
	event           string
	templates       []string
	preferredColors []string
	dominantColors  []string
	skinTone        string
	gender          string
}

func newHarmonyQuery(qc *models.QueryContext) *harmonyQuery {
	q := &harmonyQuery{}
	if qc == nil {
		return q
	}
	q.budget = qc.Budget
	q.region = utils.Normalize(qc.Region)
	q.tokens = utils.Tokenize(qc.UserText)
	q.event = utils.Normalize(qc.Event)
	q.templates = lowerAll(qc.OutfitTemplates)
	q.preferredColors = lowerAll(qc.PreferredColors)
	if qc.Profile != nil {
		q.dominantColors = lowerAll(qc.Profile.DominantColors)
		q.skinTone = utils.Normalize(qc.Profile.SkinTone)
		q.gender = utils.Normalize(qc.Profile.Gender)
	}
	return q
}

func lowerAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// Rank scores the candidates and returns them ordered by harmony score
// descending. The sort is stable and has no secondary key: ties keep the
// candidates' input order, which already encodes the caller's priorities.
func (r *HarmonyRanker) Rank(candidates []*models.Product, qc *models.QueryContext) []*models.ScoredProduct {
	return r.rank(candidates, qc, false)
}

// RankWithBreakdown is Rank with per-signal contributions attached to each result.
func (r *HarmonyRanker) RankWithBreakdown(candidates []*models.Product, qc *models.QueryContext) []*models.ScoredProduct {
	return r.rank(candidates, qc, true)
}

func (r *HarmonyRanker) rank(candidates []*models.Product, qc *models.QueryContext, breakdown bool) []*models.ScoredProduct {
	q := newHarmonyQuery(qc)

	results := make([]*models.ScoredProduct, 0, len(candidates))
	for _, p := range candidates {
		var signals map[string]int
		if breakdown {
			signals = make(map[string]int)
		}
		results = append(results, &models.ScoredProduct{
			Product: p,
			Score:   float64(r.score(p, q, signals)),
			Signals: signals,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	for i, res := range results {
		res.Rank = i + 1
	}
	return results
}

// score computes the harmony score for one product. When signals is non-nil,
// each non-zero contribution is recorded under its signal name.
func (r *HarmonyRanker) score(p *models.Product, q *harmonyQuery, signals map[string]int) int {
	w := r.weights
	s := 0
	add := func(name string, v int) {
		s += v
		if signals != nil && v != 0 {
			signals[name] = signals[name] + v
		}
	}

	title := strings.ToLower(p.Title)
	category := strings.ToLower(p.Category)
	style := strings.ToLower(p.Style)
	gender := strings.ToLower(p.Gender)
	tags := p.LowerTags()
	tagBlob := strings.Join(tags, " ")
	colors := p.LowerColors()

	// Popularity and rating are the core weight every product starts from.
	add("popularity", int(p.Popularity))
	add("rating", int(p.Rating*10))

	if q.budget != nil && p.Price != nil {
		if *p.Price <= *q.budget {
			add("budget", w.BudgetFitBoost)
		} else {
			add("budget", -w.OverBudgetPenalty)
		}
	}

	if q.region != "" && strings.Contains(p.SearchBlob(), q.region) {
		add("region", w.RegionBoost)
	}

	for _, tok := range q.tokens {
		if strings.Contains(title, tok) || strings.Contains(tagBlob, tok) || strings.Contains(category, tok) {
			add("keywords", w.KeywordBoost)
		}
		if strings.Contains(style, tok) {
			add("keywords", w.StyleBoost)
		}
	}

	if q.event != "" {
		if containsString(p.Occasions(), q.event) {
			add("event", w.OccasionBoost)
		} else if strings.Contains(title, q.event) || strings.Contains(tagBlob, q.event) || strings.Contains(category, q.event) {
			add("event", w.PartialEventBoost)
		}
	}

	// Templates earn a single credit: the first match stops the scan.
	for _, tpl := range q.templates {
		if strings.Contains(title, tpl) || strings.Contains(tagBlob, tpl) || strings.Contains(category, tpl) {
			add("template", w.TemplateBoost)
			break
		}
	}

	// Color signals are likewise single-credit, but preferred and dominant
	// colors are independent and may both fire.
	for _, pc := range q.preferredColors {
		if containsString(colors, pc) || strings.Contains(title, pc) {
			add("color", w.PreferredColorBoost)
			break
		}
	}
	for _, dc := range q.dominantColors {
		if containsString(colors, dc) {
			add("color", w.DominantColorBoost)
			break
		}
	}

	if warmSkinTones[q.skinTone] && anyColorIn(colors, warmPalette) {
		add("skin_tone", w.SkinToneBoost)
	} else if coolSkinTones[q.skinTone] && anyColorIn(colors, coolPalette) {
		add("skin_tone", w.SkinToneBoost)
	}

	if genderKnown(q.gender) && genderKnown(gender) {
		if gender == q.gender {
			add("gender", w.GenderBoost)
		} else {
			add("gender", -w.GenderPenalty)
		}
	}

	if containsString(tags, "viral") || containsString(tags, "trending") {
		add("trend", w.TrendTagBoost)
	}

	if len(tags) >= w.VersatilityMinTags {
		add("versatility", w.VersatilityBoost)
	}

	return s
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func anyColorIn(colors, palette []string) bool {
	for _, p := range palette {
		if containsString(colors, p) {
			return true
		}
	}
	return false
}

func genderKnown(g string) bool {
	return g != "" && g != "unknown"
}
