// Package cli provides output utilities for the command line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/stylekart/erabu/internal/models"
)

// OutputFormat is the format for result output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteResults writes a recommendation response to w in the given format.
// Use OutputJSON for parseable output consumable by other apps.
func WriteResults(w io.Writer, response *models.RecommendResponse, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	default:
		writeResultsText(w, response)
		return nil
	}
}

func writeResultsText(w io.Writer, response *models.RecommendResponse) {
	fmt.Fprintf(w, "\nFound %d results in %dms", response.Total, response.QueryTime)
	if response.Route != "" {
		fmt.Fprintf(w, " (route: %s)", response.Route)
	}
	fmt.Fprintln(w)
	if response.Note != "" {
		fmt.Fprintf(w, "%s\n", response.Note)
	}
	fmt.Fprintln(w)
	for _, result := range response.Results {
		writeOneResult(w, result)
	}
}

func writeOneResult(w io.Writer, result *models.ScoredProduct) {
	p := result.Product
	fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
	fmt.Fprintf(w, "Rank: %d | Score: %.2f\n", result.Rank, result.Score)
	fmt.Fprintf(w, "ID: %s\n", p.ID)
	if p.Title != "" {
		title := p.Title
		if p.Price != nil {
			title = fmt.Sprintf("%s — ₹%.0f", title, *p.Price)
		}
		fmt.Fprintf(w, "Title: %s\n", title)
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(p.Tags, ", "))
	}
	if p.ImagePath != "" {
		fmt.Fprintf(w, "Image: %s\n", p.ImagePath)
	}
	fmt.Fprintln(w)
}

// PrintResults prints results to stdout in text format.
func PrintResults(response *models.RecommendResponse) {
	_ = WriteResults(os.Stdout, response, OutputText)
}
