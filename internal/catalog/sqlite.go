package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/stylekart/erabu/internal/models"
)

// loadSQLite reads products from the products table of a SQLite database.
// List columns (tags, colors, occasion) hold either a JSON array or a
// delimited string; both decode the same way.
func loadSQLite(path string) ([]*models.Product, error) {
	db, err := sql.Open("sqlite3", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT id, title, category, material, style, gender,
		       tags, colors, occasion, price, popularity, rating, image_path
		FROM products`)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		var p models.Product
		var category, material, style, gender, imagePath sql.NullString
		var tags, colors, occasion sql.NullString
		var price, popularity, rating sql.NullFloat64
		if err := rows.Scan(&p.ID, &p.Title, &category, &material, &style, &gender,
			&tags, &colors, &occasion, &price, &popularity, &rating, &imagePath); err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}

		p.Category = category.String
		p.Material = material.String
		p.Style = style.String
		p.Gender = gender.String
		p.ImagePath = imagePath.String
		p.Tags = decodeList(tags)
		p.Colors = decodeList(colors)
		p.Occasion = models.StringList(decodeList(occasion))
		if price.Valid {
			v := price.Float64
			p.Price = &v
		}
		p.Popularity = popularity.Float64
		p.Rating = rating.Float64

		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}
	return products, nil
}

// decodeList parses a list column: JSON array first, delimited string second.
func decodeList(col sql.NullString) []string {
	if !col.Valid || col.String == "" {
		return nil
	}
	var list []string
	if err := json.Unmarshal([]byte(col.String), &list); err == nil {
		return list
	}
	return splitList(col.String)
}
