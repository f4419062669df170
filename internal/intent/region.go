package intent

import (
	"strings"

	"github.com/stylekart/erabu/pkg/utils"
)

// RegionDetector maps cities, states, slang, and abbreviations in free text
// to a normalized region bucket: north/south/east/west/central/metro.
type RegionDetector struct {
	regions    map[string][]string
	shorts     map[string]string
	order      []string
	shortOrder []string
}

// NewRegionDetector creates a detector with the built-in region tables.
func NewRegionDetector() *RegionDetector {
	regions := map[string][]string{
		"north": {
			"delhi", "new delhi", "ncr",
			"punjab", "chandigarh", "amritsar", "jalandhar",
			"haryana", "gurgaon", "gurugram", "faridabad",
			"uttarakhand", "dehradun", "haridwar",
			"himachal", "shimla", "manali",
			"uttar pradesh", "lucknow", "kanpur", "noida", "ghaziabad",
		},
		"south": {
			"tamil", "tamil nadu", "chennai",
			"karnataka", "bangalore", "bengaluru", "mysore",
			"kerala", "kochi", "trivandrum",
			"andhra", "andhra pradesh", "vijayawada", "visakhapatnam", "vizag",
			"telangana", "hyderabad",
		},
		"east": {
			"kolkata", "bengal", "west bengal",
			"odisha", "bhubaneswar",
			"assam", "guwahati",
			"tripura", "agartala",
		},
		"west": {
			"gujarat", "surat", "rajkot", "ahmedabad",
			"maharashtra", "pune", "nagpur", "nashik",
			"goa", "west",
		},
		"central": {
			"madhya pradesh", "bhopal", "indore",
			"chhattisgarh", "raipur",
		},
		// Metro cities get trend-boosted street styles regardless of compass direction.
		"metro": {
			"mumbai", "bombay",
			"delhi", "bangalore", "bengaluru",
			"chennai", "hyderabad", "pune", "kolkata",
		},
	}
	order := []string{"north", "south", "east", "west", "central", "metro"}

	shorts := map[string]string{
		"mum":   "mumbai",
		"bom":   "mumbai",
		"blr":   "bangalore",
		"hyd":   "hyderabad",
		"gzb":   "ghaziabad",
		"ggn":   "gurgaon",
		"vizag": "visakhapatnam",
		"kol":   "kolkata",
		"ahm":   "ahmedabad",
	}
	shortOrder := []string{"mum", "bom", "blr", "hyd", "gzb", "ggn", "vizag", "kol", "ahm"}

	return &RegionDetector{regions: regions, shorts: shorts, order: order, shortOrder: shortOrder}
}

// Detect returns the normalized region bucket mentioned in text, or "" when
// no region is recognized. Slang shortcuts resolve through the full city name
// so "blr" lands in the same bucket as "bangalore".
func (d *RegionDetector) Detect(text string) string {
	t := utils.Normalize(text)
	if t == "" {
		return ""
	}

	for _, short := range d.shortOrder {
		if strings.Contains(t, short) {
			return d.bucketFor(d.shorts[short])
		}
	}

	for _, region := range d.order {
		for _, w := range d.regions[region] {
			if strings.Contains(t, w) {
				return region
			}
		}
	}
	return ""
}

// bucketFor converts a full city name to its region bucket.
func (d *RegionDetector) bucketFor(city string) string {
	for _, region := range d.order {
		for _, w := range d.regions[region] {
			if w == city {
				return region
			}
		}
	}
	return ""
}
