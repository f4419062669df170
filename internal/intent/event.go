// Package intent detects the shopper's intent from free text: the occasion
// they are dressing for, their region, a gift recipient, and a budget. The
// keyword tables are data, not behavior: detectors hold them as immutable
// lookups built once at startup.
package intent

import (
	"strings"

	"github.com/stylekart/erabu/pkg/utils"
)

// EventDetector maps free text to a canonical event label and the search
// templates associated with it.
type EventDetector struct {
	events map[string][]string
	fuzzy  map[string]string
	// order fixes the iteration order over events so detection is deterministic.
	order      []string
	fuzzyOrder []string
}

// NewEventDetector creates a detector with the built-in event tables.
func NewEventDetector() *EventDetector {
	events := map[string][]string{
		"farewell":   {"dress", "satin", "blazer", "partywear", "western"},
		"wedding":    {"wedding", "lehenga", "sherwani", "ethnic", "traditional"},
		"engagement": {"engagement", "gown", "sherwani", "ethnic"},
		"haldi":      {"yellow", "ethnic", "kurta", "lehenga"},
		"mehendi":    {"green", "lehenga", "ethnic"},
		"reception":  {"gown", "ethnic", "partywear"},
		"party":      {"party", "shimmer", "jumpsuit", "co-ord", "club"},
		"birthday":   {"party", "casual", "dress"},
		"interview":  {"formal", "shirt", "trousers", "blazer"},
		"office":     {"formal", "office", "shirt", "blazer"},
		"date":       {"casual", "dress", "shirt", "chinos"},
		"gym":        {"sports", "activewear", "tshirt", "trackpants"},
		"festival":   {"ethnic", "traditional", "kurta"},
		"casual":     {"casual", "tshirt", "jeans"},
	}
	order := []string{
		"farewell", "wedding", "engagement", "haldi", "mehendi", "reception",
		"party", "birthday", "interview", "office", "date", "gym", "festival", "casual",
	}

	fuzzy := map[string]string{
		"goodbye":          "farewell",
		"college farewell": "farewell",
		"office farewell":  "farewell",
		"marriage":         "wedding",
		"shaadi":           "wedding",
		"shadi":            "wedding",
		"wedding ceremony": "wedding",
		"sagai":            "engagement",
		"ring ceremony":    "engagement",
		"mehndi":           "mehendi",
		"club":             "party",
		"nightout":         "party",
		"bday":             "birthday",
		"job":              "interview",
		"formal":           "interview",
		"work":             "office",
		"dating":           "date",
		"workout":          "gym",
		"fitness":          "gym",
		"ethnic day":       "festival",
		"regular":          "casual",
	}
	fuzzyOrder := []string{
		"goodbye", "college farewell", "office farewell",
		"marriage", "shaadi", "shadi", "wedding ceremony",
		"sagai", "ring ceremony", "mehndi",
		"club", "nightout", "bday",
		"job", "formal", "work", "dating",
		"workout", "fitness", "ethnic day", "regular",
	}

	return &EventDetector{events: events, fuzzy: fuzzy, order: order, fuzzyOrder: fuzzyOrder}
}

// Templates returns the search templates for a canonical event label.
func (d *EventDetector) Templates(event string) []string {
	return d.events[event]
}

// Detect returns the canonical event mentioned in text plus its search
// templates. Direct event names win over fuzzy synonyms; a small pattern
// fallback guesses from garment words when neither matches. Empty results
// mean no event was found.
func (d *EventDetector) Detect(text string) (string, []string) {
	t := utils.Normalize(text)
	if t == "" {
		return "", nil
	}

	for _, ev := range d.order {
		if strings.Contains(t, ev) {
			return ev, d.events[ev]
		}
	}

	for _, key := range d.fuzzyOrder {
		if strings.Contains(t, key) {
			ev := d.fuzzy[key]
			return ev, d.events[ev]
		}
	}

	switch {
	case strings.Contains(t, "dress"):
		return "party", d.events["party"]
	case strings.Contains(t, "ethnic"), strings.Contains(t, "kurta"), strings.Contains(t, "lehenga"):
		return "festival", d.events["festival"]
	case strings.Contains(t, "blazer"):
		return "interview", d.events["interview"]
	}

	return "", nil
}
