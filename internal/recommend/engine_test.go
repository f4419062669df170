package recommend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stylekart/erabu/internal/catalog"
	"github.com/stylekart/erabu/internal/config"
	"github.com/stylekart/erabu/internal/intent"
	"github.com/stylekart/erabu/internal/models"
)

const testCatalogJSON = `[
	{"id": "jeans", "title": "Baggy Jeans", "category": "jeans", "style": "baggy",
	 "tags": ["denim", "streetwear"], "colors": ["blue"], "occasion": "casual",
	 "price": 1200, "popularity": 90, "rating": 4.8, "gender": "unisex"},
	{"id": "gown", "title": "Satin Gown", "category": "dresses", "material": "satin",
	 "tags": ["partywear", "elegant"], "colors": ["maroon"], "occasion": ["wedding", "reception"],
	 "price": 2500, "popularity": 70, "rating": 4.5, "gender": "female"},
	{"id": "kurta", "title": "Yellow Kurta", "category": "ethnic", "tags": ["ethnic", "traditional"],
	 "colors": ["yellow"], "occasion": ["haldi", "festival"], "price": 800,
	 "popularity": 60, "rating": 4.2},
	{"id": "hoodie", "title": "Oversized Hoodie", "category": "hoodies",
	 "tags": ["viral", "streetwear"], "colors": ["black"], "occasion": "casual",
	 "price": 900, "popularity": 95, "rating": 4.6, "gender": "unisex"},
	{"id": "watch", "title": "Leather Strap Watch", "category": "accessories",
	 "tags": ["watch", "gift"], "colors": ["brown"], "price": 1500,
	 "popularity": 50, "rating": 4.0, "gender": "male"}
]`

func testEngine(t *testing.T) *Engine {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(testCatalogJSON), 0o644); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}
	store := catalog.NewStore(path, nil)
	if err := store.Reload(); err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	return New(store, config.Default(), nil)
}

func TestEngineSearch(t *testing.T) {
	e := testEngine(t)

	resp := e.Search(&models.SearchRequest{Keywords: "streetwear"})
	if resp.Total != 2 {
		t.Fatalf("total = %d, want 2", resp.Total)
	}
	for _, r := range resp.Results {
		if r.Product.ID != "jeans" && r.Product.ID != "hoodie" {
			t.Errorf("unexpected hit %s", r.Product.ID)
		}
	}
	if resp.Route != intent.RouteSearch {
		t.Errorf("route = %q", resp.Route)
	}
}

func TestEngineSearchLimit(t *testing.T) {
	e := testEngine(t)

	resp := e.Search(&models.SearchRequest{Limit: 2})
	if len(resp.Results) != 2 {
		t.Errorf("got %d results, want 2", len(resp.Results))
	}
	if resp.Total != 5 {
		t.Errorf("total = %d, want 5 (pre-truncation)", resp.Total)
	}
}

func TestEngineRankSubset(t *testing.T) {
	e := testEngine(t)

	resp := e.Rank(&models.RankRequest{
		Context: models.QueryContext{UserText: "wedding gown"},
		IDs:     []string{"gown", "kurta", "missing"},
	}, false)

	if resp.Total != 2 {
		t.Fatalf("total = %d, want 2 (unknown id ignored)", resp.Total)
	}
	if resp.Results[0].Product.ID != "gown" {
		t.Errorf("first = %s, want gown", resp.Results[0].Product.ID)
	}
}

func TestEngineRankWholeCatalog(t *testing.T) {
	e := testEngine(t)

	resp := e.Rank(&models.RankRequest{}, false)
	if resp.Total != 5 {
		t.Errorf("total = %d, want the whole catalog", resp.Total)
	}
}

func TestEngineRankBreakdown(t *testing.T) {
	e := testEngine(t)

	resp := e.Rank(&models.RankRequest{
		Context: models.QueryContext{UserText: "jeans"},
		IDs:     []string{"jeans"},
	}, true)

	if len(resp.Results) != 1 {
		t.Fatalf("got %d results", len(resp.Results))
	}
	if resp.Results[0].Signals == nil {
		t.Error("breakdown should include signals")
	}
}

func TestEngineTrending(t *testing.T) {
	e := testEngine(t)

	resp := e.Trending(&models.TrendRequest{Region: "metro", TopK: 3})
	if len(resp.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(resp.Results))
	}
	if resp.Results[0].Product.ID != "hoodie" {
		t.Errorf("first = %s, want hoodie (viral tag + popularity + rating)", resp.Results[0].Product.ID)
	}
}

func TestEngineRecommendRoutes(t *testing.T) {
	e := testEngine(t)

	tests := []struct {
		name  string
		text  string
		route string
	}{
		{"event", "wedding outfit ideas", intent.RouteEvent},
		{"trend", "what's trending these days", intent.RouteTrend},
		{"budget", "jeans under 1500", intent.RouteBudget},
		{"gift", "gift for my brother", intent.RouteGift},
		{"default search", "black hoodie", intent.RouteSearch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := e.Recommend(tt.text, nil)
			if resp.Route != tt.route {
				t.Errorf("route = %q, want %q", resp.Route, tt.route)
			}
			if len(resp.Results) == 0 {
				t.Errorf("no results for %q", tt.text)
			}
		})
	}
}

func TestEngineRecommendEventFindsOccasionwear(t *testing.T) {
	e := testEngine(t)

	resp := e.Recommend("need something for a wedding", nil)
	if len(resp.Results) != 2 {
		t.Fatalf("got %d results, want the two occasionwear items", len(resp.Results))
	}
	seen := map[string]bool{}
	for _, r := range resp.Results {
		seen[r.Product.ID] = true
	}
	if !seen["gown"] || !seen["kurta"] {
		t.Errorf("results = %v, want gown and kurta", seen)
	}
}

func TestEngineRecommendBudgetFiltersPrice(t *testing.T) {
	e := testEngine(t)

	resp := e.Recommend("streetwear under 1000", nil)
	if len(resp.Results) == 0 {
		t.Fatal("no results")
	}
	for _, r := range resp.Results {
		if r.Product.Price != nil && *r.Product.Price > 1000 {
			t.Errorf("%s priced %.0f exceeds the budget", r.Product.ID, *r.Product.Price)
		}
	}
}

func TestEngineRecommendVisionProfile(t *testing.T) {
	e := testEngine(t)

	profile := &models.VisualProfile{
		DominantColors:        []string{"yellow"},
		SkinTone:              "warm",
		Gender:                "female",
		OutfitRecommendations: []string{"kurta"},
	}
	resp := e.Recommend("something for haldi", profile)

	if resp.Route != intent.RouteVision {
		t.Fatalf("route = %q, want vision", resp.Route)
	}
	if len(resp.Results) == 0 {
		t.Fatal("no results")
	}
	if resp.Results[0].Product.ID != "kurta" {
		t.Errorf("first = %s, want kurta (color + template + occasion match)", resp.Results[0].Product.ID)
	}
}

func TestDedupWords(t *testing.T) {
	got := dedupWords([]string{"Red", "kurta", "red", "", " kurta ", "gown"})
	want := []string{"red", "kurta", "gown"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}
