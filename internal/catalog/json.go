package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/stylekart/erabu/internal/models"
)

// loadJSON reads a JSON catalog: either a top-level array of products or an
// object with a "products" array. Records that fail to decode are skipped so
// one malformed entry does not take the whole catalog down.
func loadJSON(path string) ([]*models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		var wrapper struct {
			Products []json.RawMessage `json:"products"`
		}
		if werr := json.Unmarshal(data, &wrapper); werr != nil {
			return nil, fmt.Errorf("parsing catalog: %w", err)
		}
		raws = wrapper.Products
	}

	products := make([]*models.Product, 0, len(raws))
	for _, raw := range raws {
		var p models.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			continue
		}
		products = append(products, &p)
	}
	return products, nil
}
