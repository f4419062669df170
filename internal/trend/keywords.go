package trend

// Keywords maps region, seasonal, and event labels to the trend phrases
// associated with them. The table is assembled once at startup and treated
// as immutable; selectors receive it as a parameter.
type Keywords map[string][]string

// viralKey is the global baseline bucket included in every trending call.
const viralKey = "viral"

// metroKey boosts streetwear styles shared across the big metros.
const metroKey = "metro"

// DefaultKeywords returns the built-in trend table.
func DefaultKeywords() Keywords {
	return Keywords{
		// Fashion-wide viral items.
		viralKey: {
			"oversized hoodie", "co-ord set", "chunky sneakers",
			"plaid skirt", "baggy jeans", "oversized tee",
		},

		// Seasonal trends.
		"winter":  {"puffer jacket", "turtleneck", "long coat", "sweatshirt"},
		"summer":  {"cotton dress", "shorts", "linen shirt", "tank top"},
		"monsoon": {"windcheater", "quick dry", "waterproof jacket"},

		// Event-driven trends.
		"farewell": {"bodycon dress", "satin gown", "blazer"},
		"wedding":  {"lehenga", "sherwani", "ethnic wear", "gown"},
		"haldi":    {"yellow kurta", "yellow lehenga", "ethnic"},
		"mehendi":  {"green kurta", "green lehenga", "ethnic"},
		"party":    {"shimmer", "jumpsuit", "co-ord", "clubwear"},
		"casual":   {"tshirt", "hoodie", "shirt", "jeans"},

		// Regional preferences.
		"north":  {"hoodie", "puffer jacket", "kurtas", "ethnic wear"},
		"south":  {"linen shirt", "cotton kurta", "lightweight tee"},
		"mumbai": {"oversized tee", "cargo pants", "sneakers"},
		"blr":    {"co-ord set", "techwear jacket", "minimal sneakers"},
		metroKey: {"oversized", "streetwear", "baggy"},
		"east":   {"windcheater", "printed kurti", "sneakers"},
		"west":   {"denim jacket", "kurti", "pastel tees"},
	}
}
