package intent

import (
	"strings"

	"github.com/stylekart/erabu/pkg/utils"
)

// GiftDetector maps gift-recipient mentions in free text to a canonical
// recipient label and the search templates for gifting that recipient.
type GiftDetector struct {
	recipients map[string][]string
	fuzzy      map[string]string
	order      []string
	fuzzyOrder []string
}

// NewGiftDetector creates a detector with the built-in recipient tables.
func NewGiftDetector() *GiftDetector {
	recipients := map[string][]string{
		"girl":          {"women", "women's", "female", "earrings", "handbag", "bracelet", "beauty", "cute"},
		"boy":           {"men", "male", "watch", "wallet", "perfume", "shoes", "sneakers"},
		"mom":           {"women", "ethnic", "saree", "kurti", "jewellery", "handbag"},
		"dad":           {"men", "formal", "shirt", "belt", "smartwatch", "formal shoes"},
		"friend_female": {"women", "casual", "handbag", "bracelet", "dress"},
		"friend_male":   {"men", "casual", "hoodie", "watch", "wallet"},
		"friend":        {"gift", "unisex", "hoodie", "perfume", "accessory"},
		"sister":        {"women", "earrings", "kurti", "bracelet", "cute gifts"},
		"brother":       {"men", "tshirt", "hoodie", "wallet", "shoes"},
		"wife":          {"women", "dress", "jewellery", "gown", "handbag"},
		"husband":       {"men", "watch", "shirt", "wallet"},
	}
	order := []string{
		"girl", "boy", "mom", "dad", "friend_female", "friend_male",
		"friend", "sister", "brother", "wife", "husband",
	}

	fuzzy := map[string]string{
		"girlfriend":    "girl",
		"gf":            "girl",
		"gurl":          "girl",
		"boyfriend":     "boy",
		"bf":            "boy",
		"mother":        "mom",
		"mumma":         "mom",
		"amma":          "mom",
		"father":        "dad",
		"papa":          "dad",
		"sis":           "sister",
		"didi":          "sister",
		"bro":           "brother",
		"bhai":          "brother",
		"wifey":         "wife",
		"hubby":         "husband",
		"female friend": "friend_female",
		"male friend":   "friend_male",
		"bestie":        "friend",
		"parents":       "mom",
		"family":        "friend",
	}
	fuzzyOrder := []string{
		"girlfriend", "gf", "gurl", "boyfriend", "bf",
		"mother", "mumma", "amma", "father", "papa",
		"sis", "didi", "bro", "bhai", "wifey", "hubby",
		"female friend", "male friend", "bestie", "parents", "family",
	}

	return &GiftDetector{recipients: recipients, fuzzy: fuzzy, order: order, fuzzyOrder: fuzzyOrder}
}

// Detect returns the canonical gift recipient mentioned in text plus the
// search templates for them. Direct labels win over fuzzy synonyms; "her"
// and "him" act as last-resort hints. Empty results mean no recipient.
func (d *GiftDetector) Detect(text string) (string, []string) {
	t := utils.Normalize(text)
	if t == "" {
		return "", nil
	}

	for _, key := range d.order {
		if strings.Contains(t, key) {
			return key, d.recipients[key]
		}
	}

	for _, word := range d.fuzzyOrder {
		if strings.Contains(t, word) {
			key := d.fuzzy[word]
			return key, d.recipients[key]
		}
	}

	if strings.Contains(t, "her") {
		return "girl", d.recipients["girl"]
	}
	if strings.Contains(t, "him") {
		return "boy", d.recipients["boy"]
	}

	return "", nil
}
