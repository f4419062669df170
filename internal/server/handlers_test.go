package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/stylekart/erabu/internal/catalog"
	"github.com/stylekart/erabu/internal/config"
	"github.com/stylekart/erabu/internal/models"
	"github.com/stylekart/erabu/internal/recommend"
)

const serverCatalogJSON = `[
	{"id": "jeans", "title": "Baggy Jeans", "tags": ["denim", "streetwear"],
	 "colors": ["blue"], "price": 1200, "popularity": 90, "rating": 4.8},
	{"id": "hoodie", "title": "Oversized Hoodie", "tags": ["viral"],
	 "colors": ["black"], "price": 900, "popularity": 95, "rating": 4.6}
]`

func testServer(t *testing.T) (*Server, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(serverCatalogJSON), 0o644); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}
	store := catalog.NewStore(path, nil)
	if err := store.Reload(); err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	cfg := config.Default()
	engine := recommend.New(store, cfg, nil)
	return NewServer(engine, store, &cfg.Server, zap.NewNop()), path
}

func doRequest(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) *models.RecommendResponse {
	t.Helper()
	var resp models.RecommendResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return &resp
}

func TestHandleSearch(t *testing.T) {
	s, _ := testServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/search", `{"keywords": "hoodie"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	if resp.Total != 1 || resp.Results[0].Product.ID != "hoodie" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHandleSearchBadBody(t *testing.T) {
	s, _ := testServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/search", "{broken")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleRecommend(t *testing.T) {
	s, _ := testServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/recommend", `{"text": "baggy jeans"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	if resp.Route == "" || len(resp.Results) == 0 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestHandleRecommendEmptyRequest(t *testing.T) {
	s, _ := testServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/recommend", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleRank(t *testing.T) {
	s, _ := testServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/v1/rank?breakdown=true",
		`{"context": {"user_text": "jeans"}, "ids": ["jeans"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	if resp.Total != 1 {
		t.Fatalf("total = %d, want 1", resp.Total)
	}
	if resp.Results[0].Signals == nil {
		t.Error("breakdown=true should include signals")
	}
}

func TestHandleTrending(t *testing.T) {
	s, _ := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/trending?region=metro&top_k=1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	if len(resp.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(resp.Results))
	}
	if resp.Results[0].Product.ID != "hoodie" {
		t.Errorf("first = %s, want hoodie", resp.Results[0].Product.ID)
	}
}

func TestHandleTrendingExplicitZero(t *testing.T) {
	s, _ := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/trending?top_k=0", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeResponse(t, rec)
	if len(resp.Results) != 0 {
		t.Errorf("top_k=0 should return nothing, got %d", len(resp.Results))
	}
}

func TestHandleTrendingBadTopK(t *testing.T) {
	s, _ := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/trending?top_k=lots", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleCatalogReload(t *testing.T) {
	s, path := testServer(t)

	updated := `[{"id": "new", "title": "New Arrival Kurta"}]`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatalf("rewriting catalog: %v", err)
	}

	rec := doRequest(t, s, http.MethodPost, "/api/v1/catalog/reload", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["products"] != float64(1) {
		t.Errorf("products = %v, want 1", body["products"])
	}
	if body["version"] != float64(2) {
		t.Errorf("version = %v, want 2", body["version"])
	}
}

func TestHandleStatusAndHealth(t *testing.T) {
	s, _ := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/v1/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding status: %v", err)
	}
	if body["products"] != float64(2) {
		t.Errorf("products = %v, want 2", body["products"])
	}

	rec = doRequest(t, s, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d", rec.Code)
	}
}
