package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stylekart/erabu/internal/models"
)

func sampleResponse() *models.RecommendResponse {
	price := 1200.0
	return &models.RecommendResponse{
		Query:     "baggy jeans",
		Route:     "search",
		Note:      "search results",
		Total:     1,
		QueryTime: 7,
		Results: []*models.ScoredProduct{
			{
				Rank:  1,
				Score: 121,
				Product: &models.Product{
					ID:    "jeans",
					Title: "Baggy Jeans",
					Tags:  []string{"denim", "streetwear"},
					Price: &price,
				},
			},
		},
	}
}

func TestWriteResults_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, sampleResponse(), OutputJSON); err != nil {
		t.Fatalf("WriteResults(json): %v", err)
	}

	var decoded models.RecommendResponse
	if err := json.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Query != "baggy jeans" || decoded.QueryTime != 7 {
		t.Errorf("decoded query=%q query_time=%d", decoded.Query, decoded.QueryTime)
	}
	if len(decoded.Results) != 1 || decoded.Results[0].Product.ID != "jeans" {
		t.Errorf("decoded results: %+v", decoded.Results)
	}
}

func TestWriteResults_text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, sampleResponse(), OutputText); err != nil {
		t.Fatalf("WriteResults(text): %v", err)
	}
	out := buf.String()
	for _, sub := range []string{"Found 1 results", "7ms", "route: search", "Rank: 1", "ID: jeans", "Baggy Jeans", "₹1200", "denim, streetwear"} {
		if !strings.Contains(out, sub) {
			t.Errorf("text output missing %q:\n%s", sub, out)
		}
	}
}

func TestWriteResults_textEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, &models.RecommendResponse{}, OutputText); err != nil {
		t.Fatalf("WriteResults(text): %v", err)
	}
	if !strings.Contains(buf.String(), "Found 0 results") {
		t.Errorf("empty response output: %q", buf.String())
	}
}

func TestWriteResults_unknownFormatTreatedAsText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, sampleResponse(), OutputFormat("unknown")); err != nil {
		t.Fatalf("WriteResults(unknown): %v", err)
	}
	if !strings.Contains(buf.String(), "Found") {
		t.Errorf("unknown format should fall back to text; got %q", buf.String())
	}
}
