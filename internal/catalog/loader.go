package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/stylekart/erabu/internal/models"
)

// LoadFile reads products from a catalog file, dispatching on the extension.
// JSON, Excel workbooks, and SQLite databases are supported. Products that
// arrive without an id get one assigned so dedup and rank lookups work.
func LoadFile(path string) ([]*models.Product, error) {
	var (
		products []*models.Product
		err      error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		products, err = loadJSON(path)
	case ".xlsx", ".xlsm":
		products, err = loadExcel(path)
	case ".db", ".sqlite", ".sqlite3":
		products, err = loadSQLite(path)
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if p.ID == "" {
			p.ID = uuid.New().String()
		}
	}
	return products, nil
}

// splitList breaks a delimited cell or column value into trimmed entries.
// Both "|" and "," are accepted as separators.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	sep := ","
	if strings.Contains(raw, "|") {
		sep = "|"
	}
	var out []string
	for _, part := range strings.Split(raw, sep) {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
