package intent

import (
	"strings"

	"github.com/stylekart/erabu/pkg/utils"
)

// Route labels name the recommendation pipeline a query should take.
const (
	RouteVision = "vision"
	RouteEvent  = "event"
	RouteTrend  = "trend"
	RouteBudget = "budget"
	RouteGift   = "gift"
	RouteRegion = "region"
	RouteSearch = "search"
)

var routerRules = []struct {
	route string
	words []string
}{
	{RouteVision, []string{"upload image", ".jpg", ".png", "image", "photo", "pic", "selfie"}},
	{RouteEvent, []string{"farewell", "wedding", "party", "date", "interview", "birthday"}},
	{RouteTrend, []string{"trend", "trending", "viral", "fashion trend", "what's trending"}},
	{RouteBudget, []string{"under", "budget", "cheap", "less than", "₹", "rupees", "rs", "affordable"}},
	{RouteGift, []string{"gift", "present", "surprise", "for him", "for her"}},
	{RouteRegion, []string{"delhi", "punjab", "kerala", "mumbai", "bangalore", "north", "south", "east", "west"}},
}

// Route picks the pipeline for a query. The first rule whose keywords appear
// in the text wins; anything unmatched falls through to plain search.
func Route(text string) string {
	t := utils.Normalize(text)
	if t == "" {
		return RouteSearch
	}
	for _, rule := range routerRules {
		for _, w := range rule.words {
			if strings.Contains(t, w) {
				return rule.route
			}
		}
	}
	return RouteSearch
}
