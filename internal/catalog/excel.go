package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/stylekart/erabu/internal/models"
)

// loadExcel reads products from the first sheet of a workbook. The first row
// is the header; columns are matched by name, so column order does not
// matter. Rows without a title are skipped.
func loadExcel(path string) ([]*models.Product, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	cols := make(map[string]int)
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	cell := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var products []*models.Product
	for _, row := range rows[1:] {
		title := cell(row, "title")
		if title == "" {
			continue
		}
		p := &models.Product{
			ID:        cell(row, "id"),
			Title:     title,
			Category:  cell(row, "category"),
			Material:  cell(row, "material"),
			Style:     cell(row, "style"),
			Gender:    cell(row, "gender"),
			Tags:      splitList(cell(row, "tags")),
			Colors:    splitList(cell(row, "colors")),
			Occasion:  models.StringList(splitList(cell(row, "occasion"))),
			ImagePath: cell(row, "image"),
		}
		if v := cell(row, "price"); v != "" {
			if price, err := strconv.ParseFloat(v, 64); err == nil {
				p.Price = &price
			}
		}
		if v := cell(row, "popularity"); v != "" {
			if pop, err := strconv.ParseFloat(v, 64); err == nil {
				p.Popularity = pop
			}
		}
		if v := cell(row, "rating"); v != "" {
			if rating, err := strconv.ParseFloat(v, 64); err == nil {
				p.Rating = rating
			}
		}
		products = append(products, p)
	}
	return products, nil
}
