// Package recommend orchestrates intent detection, candidate search, and the
// scoring engines into the end-to-end recommendation pipelines.
package recommend

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/stylekart/erabu/internal/catalog"
	"github.com/stylekart/erabu/internal/config"
	"github.com/stylekart/erabu/internal/intent"
	"github.com/stylekart/erabu/internal/models"
	"github.com/stylekart/erabu/internal/ranking"
	"github.com/stylekart/erabu/internal/trend"
	"github.com/stylekart/erabu/pkg/utils"
)

// Engine wires the catalog store, the intent detectors, and the three scoring
// engines into one service facade. All methods are safe for concurrent use.
type Engine struct {
	store    *catalog.Store
	searcher *ranking.Searcher
	harmony  *ranking.HarmonyRanker
	trends   *trend.Selector
	events   *intent.EventDetector
	regions  *intent.RegionDetector
	gifts    *intent.GiftDetector
	budgets  *intent.BudgetDetector
	search   config.SearchConfig
	logger   *zap.Logger
}

// New creates an engine over the given store and configuration.
func New(store *catalog.Store, cfg *config.Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	weights := cfg.Ranking
	return &Engine{
		store:    store,
		searcher: ranking.NewSearcher(),
		harmony:  ranking.NewHarmonyRanker(&weights),
		trends:   trend.NewSelector(nil),
		events:   intent.NewEventDetector(),
		regions:  intent.NewRegionDetector(),
		gifts:    intent.NewGiftDetector(),
		budgets:  intent.NewBudgetDetector(),
		search:   cfg.Search,
		logger:   logger,
	}
}

// Search runs a filtered catalog search and returns results capped by the
// request limit and the configured maximum.
func (e *Engine) Search(req *models.SearchRequest) *models.RecommendResponse {
	start := time.Now()
	req.Validate()

	results := e.searcher.Search(e.store.Products(), req)
	total := len(results)
	results = e.truncate(results, req.Limit)

	e.logger.Debug("search",
		zap.String("keywords", req.Keywords),
		zap.Int("matched", total),
		zap.Int("returned", len(results)))

	return &models.RecommendResponse{
		Results:   results,
		Total:     total,
		Query:     req.Keywords,
		Route:     intent.RouteSearch,
		QueryTime: time.Since(start).Milliseconds(),
	}
}

// Rank scores a catalog subset with the full query context. An empty id list
// ranks the whole catalog; unknown ids are ignored. Signal breakdowns are
// included when requested.
func (e *Engine) Rank(req *models.RankRequest, breakdown bool) *models.RecommendResponse {
	start := time.Now()

	candidates := e.store.Products()
	if len(req.IDs) > 0 {
		wanted := make(map[string]bool, len(req.IDs))
		for _, id := range req.IDs {
			wanted[id] = true
		}
		subset := make([]*models.Product, 0, len(req.IDs))
		for _, p := range candidates {
			if wanted[p.ID] {
				subset = append(subset, p)
			}
		}
		candidates = subset
	}

	var results []*models.ScoredProduct
	if breakdown {
		results = e.harmony.RankWithBreakdown(candidates, &req.Context)
	} else {
		results = e.harmony.Rank(candidates, &req.Context)
	}

	return &models.RecommendResponse{
		Results:   results,
		Total:     len(results),
		Query:     req.Context.UserText,
		QueryTime: time.Since(start).Milliseconds(),
	}
}

// Trending returns the current trending items for a region and event.
func (e *Engine) Trending(req *models.TrendRequest) *models.RecommendResponse {
	start := time.Now()

	results := e.trends.Trending(e.store.Products(), req.Region, req.Event, req.TopK)

	return &models.RecommendResponse{
		Results:   results,
		Total:     len(results),
		Route:     intent.RouteTrend,
		QueryTime: time.Since(start).Milliseconds(),
	}
}

// Recommend answers a free-text query end to end: it routes the text to a
// pipeline, extracts whatever intent the pipeline needs, and returns ranked
// results. The profile, when given, seeds the vision pipeline.
func (e *Engine) Recommend(text string, profile *models.VisualProfile) *models.RecommendResponse {
	start := time.Now()

	route := intent.Route(text)
	if profile != nil {
		route = intent.RouteVision
	}

	var (
		results []*models.ScoredProduct
		note    string
	)

	switch route {
	case intent.RouteVision:
		results, note = e.recommendVision(text, profile)

	case intent.RouteEvent:
		event, templates := e.events.Detect(text)
		region := e.regions.Detect(text)
		results = e.searcher.Search(e.store.Products(), &models.SearchRequest{
			Keywords: strings.Join(templates, " "),
			Region:   region,
		})
		note = fmt.Sprintf("event: %s", event)

	case intent.RouteTrend:
		region := e.regions.Detect(text)
		event, _ := e.events.Detect(text)
		results = e.trends.Trending(e.store.Products(), region, event, e.search.DefaultTopK)
		note = "trending items"

	case intent.RouteBudget:
		budget := e.budgets.Extract(text)
		results = e.searcher.Search(e.store.Products(), &models.SearchRequest{
			Keywords: text,
			Budget:   budget,
		})
		if budget != nil {
			results = e.harmony.Rank(scoredProducts(results), &models.QueryContext{
				UserText: text,
				Budget:   budget,
			})
			note = fmt.Sprintf("budget: %.0f", *budget)
		} else {
			note = "budget: unspecified"
		}

	case intent.RouteGift:
		recipient, templates := e.gifts.Detect(text)
		results = e.searcher.Search(e.store.Products(), &models.SearchRequest{
			Keywords: strings.Join(templates, " "),
		})
		note = fmt.Sprintf("gift ideas for %s", recipient)

	default:
		route = intent.RouteSearch
		region := e.regions.Detect(text)
		budget := e.budgets.Extract(text)
		candidates := e.searcher.Search(e.store.Products(), &models.SearchRequest{
			Keywords: text,
			Budget:   budget,
			Region:   region,
		})
		results = e.harmony.Rank(scoredProducts(candidates), &models.QueryContext{
			UserText: text,
			Region:   region,
			Budget:   budget,
		})
		note = "search results"
	}

	results = e.truncate(results, e.search.DefaultLimit)

	e.logger.Info("recommend",
		zap.String("route", route),
		zap.String("text", utils.Truncate(text, 80)),
		zap.Int("results", len(results)))

	return &models.RecommendResponse{
		Results:   results,
		Total:     len(results),
		Query:     text,
		Route:     route,
		Note:      note,
		QueryTime: time.Since(start).Milliseconds(),
	}
}

// recommendVision builds a keyword seed from the visual profile, folds in
// detected event templates and the user's own words, then searches and
// harmony-ranks with the profile attached.
func (e *Engine) recommendVision(text string, profile *models.VisualProfile) ([]*models.ScoredProduct, string) {
	var seed []string
	if profile != nil {
		seed = append(seed, profile.OutfitRecommendations...)
		seed = append(seed, profile.DominantColors...)
	}

	event, templates := e.events.Detect(text)
	budget := e.budgets.Extract(text)
	region := e.regions.Detect(text)

	seed = append(seed, templates...)
	seed = append(seed, utils.Tokenize(text)...)
	keywords := strings.Join(dedupWords(seed), " ")

	candidates := e.searcher.Search(e.store.Products(), &models.SearchRequest{
		Keywords: keywords,
		Budget:   budget,
		Region:   region,
	})

	var preferred, outfits []string
	if profile != nil {
		preferred = profile.DominantColors
		outfits = profile.OutfitRecommendations
	}
	results := e.harmony.Rank(scoredProducts(candidates), &models.QueryContext{
		UserText:        text,
		Budget:          budget,
		Region:          region,
		Event:           event,
		PreferredColors: preferred,
		OutfitTemplates: outfits,
		Profile:         profile,
	})
	return results, fmt.Sprintf("vision query: %s", keywords)
}

// truncate caps results at limit, bounded by the configured maximum. A zero
// limit applies only the maximum.
func (e *Engine) truncate(results []*models.ScoredProduct, limit int) []*models.ScoredProduct {
	if e.search.MaxLimit > 0 && (limit == 0 || limit > e.search.MaxLimit) {
		limit = e.search.MaxLimit
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// scoredProducts unwraps search hits back into products for re-ranking.
func scoredProducts(results []*models.ScoredProduct) []*models.Product {
	out := make([]*models.Product, len(results))
	for i, r := range results {
		out[i] = r.Product
	}
	return out
}

// dedupWords drops repeated words while keeping first-seen order.
func dedupWords(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
