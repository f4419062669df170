// Package models defines core data structures for products, queries, and ranked results.
package models

import (
	"encoding/json"
	"strings"
)

// StringList is a slice of strings that also accepts a single JSON string on
// unmarshal. Catalog sources are inconsistent about whether occasion is a
// string or a list, so both decode into the same shape.
type StringList []string

// UnmarshalJSON accepts either "wedding" or ["wedding","reception"].
func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*l = nil
			return nil
		}
		*l = StringList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = StringList(many)
	return nil
}

// Product is a single catalog entry. All fields except ID are optional;
// absent strings match as empty and absent numbers disable the signals
// that depend on them.
type Product struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Category   string     `json:"category,omitempty"`
	Material   string     `json:"material,omitempty"`
	Style      string     `json:"style,omitempty"`
	Gender     string     `json:"gender,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
	Colors     []string   `json:"colors,omitempty"`
	Occasion   StringList `json:"occasion,omitempty"`
	Price      *float64   `json:"price,omitempty"`
	Popularity float64    `json:"popularity,omitempty"`
	Rating     float64    `json:"rating,omitempty"`
	ImagePath  string     `json:"image_path,omitempty"`
}

// SearchBlob returns the lower-cased, space-joined concatenation of every
// searchable text field: title, category, material, style, gender, tags,
// colors, and occasions. Field order is fixed so repeated calls over an
// unchanged product produce identical blobs, which keeps scores reproducible.
func (p *Product) SearchBlob() string {
	parts := make([]string, 0, 5+len(p.Tags)+len(p.Colors)+len(p.Occasion))
	parts = append(parts, p.Title, p.Category, p.Material, p.Style, p.Gender)
	parts = append(parts, p.Tags...)
	parts = append(parts, p.Colors...)
	parts = append(parts, p.Occasion...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Occasions returns the product's occasion values lower-cased.
func (p *Product) Occasions() []string {
	if len(p.Occasion) == 0 {
		return nil
	}
	out := make([]string, len(p.Occasion))
	for i, o := range p.Occasion {
		out[i] = strings.ToLower(o)
	}
	return out
}

// LowerColors returns the product's colors lower-cased.
func (p *Product) LowerColors() []string {
	if len(p.Colors) == 0 {
		return nil
	}
	out := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = strings.ToLower(c)
	}
	return out
}

// LowerTags returns the product's tags lower-cased.
func (p *Product) LowerTags() []string {
	if len(p.Tags) == 0 {
		return nil
	}
	out := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		out[i] = strings.ToLower(t)
	}
	return out
}

// VisualProfile is the attribute bundle produced by an external vision
// analyzer. Unknown or absent values disable the corresponding signals.
type VisualProfile struct {
	DominantColors        []string `json:"dominant_colors,omitempty"`
	SkinTone              string   `json:"skin_tone,omitempty"`
	Gender                string   `json:"gender,omitempty"`
	OutfitRecommendations []string `json:"outfit_recommendations,omitempty"`
}

// QueryContext carries all inputs to a single ranking call. Every field is
// optional; a missing field zeroes only the signal that depends on it.
type QueryContext struct {
	UserText        string         `json:"user_text,omitempty"`
	Budget          *float64       `json:"budget,omitempty"`
	Region          string         `json:"region,omitempty"`
	Event           string         `json:"event,omitempty"`
	PreferredColors []string       `json:"preferred_colors,omitempty"`
	OutfitTemplates []string       `json:"outfit_templates,omitempty"`
	Profile         *VisualProfile `json:"visual_profile,omitempty"`
}
