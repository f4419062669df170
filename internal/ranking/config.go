package ranking

// Weights holds the signal contributions for the harmony ranker.
// Penalties are stored as positive magnitudes and subtracted where they apply.
type Weights struct {
	BudgetFitBoost      int `yaml:"budget_fit_boost"`      // default: 25
	OverBudgetPenalty   int `yaml:"over_budget_penalty"`   // default: 20
	RegionBoost         int `yaml:"region_boost"`          // default: 10
	KeywordBoost        int `yaml:"keyword_boost"`         // default: 6
	StyleBoost          int `yaml:"style_boost"`           // default: 4
	OccasionBoost       int `yaml:"occasion_boost"`        // default: 15
	PartialEventBoost   int `yaml:"partial_event_boost"`   // default: 10
	TemplateBoost       int `yaml:"template_boost"`        // default: 12
	PreferredColorBoost int `yaml:"preferred_color_boost"` // default: 10
	DominantColorBoost  int `yaml:"dominant_color_boost"`  // default: 7
	SkinToneBoost       int `yaml:"skin_tone_boost"`       // default: 8
	GenderBoost         int `yaml:"gender_boost"`          // default: 8
	GenderPenalty       int `yaml:"gender_penalty"`        // default: 6
	TrendTagBoost       int `yaml:"trend_tag_boost"`       // default: 10
	VersatilityBoost    int `yaml:"versatility_boost"`     // default: 5
	VersatilityMinTags  int `yaml:"versatility_min_tags"`  // default: 4
}

// DefaultWeights returns the default harmony weights.
func DefaultWeights() *Weights {
	return &Weights{
		BudgetFitBoost:      25,
		OverBudgetPenalty:   20,
		RegionBoost:         10,
		KeywordBoost:        6,
		StyleBoost:          4,
		OccasionBoost:       15,
		PartialEventBoost:   10,
		TemplateBoost:       12,
		PreferredColorBoost: 10,
		DominantColorBoost:  7,
		SkinToneBoost:       8,
		GenderBoost:         8,
		GenderPenalty:       6,
		TrendTagBoost:       10,
		VersatilityBoost:    5,
		VersatilityMinTags:  4,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (w *Weights) ApplyDefaults() {
	defaults := DefaultWeights()

	if w.BudgetFitBoost == 0 {
		w.BudgetFitBoost = defaults.BudgetFitBoost
	}
	if w.OverBudgetPenalty == 0 {
		w.OverBudgetPenalty = defaults.OverBudgetPenalty
	}
	if w.RegionBoost == 0 {
		w.RegionBoost = defaults.RegionBoost
	}
	if w.KeywordBoost == 0 {
		w.KeywordBoost = defaults.KeywordBoost
	}
	if w.StyleBoost == 0 {
		w.StyleBoost = defaults.StyleBoost
	}
	if w.OccasionBoost == 0 {
		w.OccasionBoost = defaults.OccasionBoost
	}
	if w.PartialEventBoost == 0 {
		w.PartialEventBoost = defaults.PartialEventBoost
	}
	if w.TemplateBoost == 0 {
		w.TemplateBoost = defaults.TemplateBoost
	}
	if w.PreferredColorBoost == 0 {
		w.PreferredColorBoost = defaults.PreferredColorBoost
	}
	if w.DominantColorBoost == 0 {
		w.DominantColorBoost = defaults.DominantColorBoost
	}
	if w.SkinToneBoost == 0 {
		w.SkinToneBoost = defaults.SkinToneBoost
	}
	if w.GenderBoost == 0 {
		w.GenderBoost = defaults.GenderBoost
	}
	if w.GenderPenalty == 0 {
		w.GenderPenalty = defaults.GenderPenalty
	}
	if w.TrendTagBoost == 0 {
		w.TrendTagBoost = defaults.TrendTagBoost
	}
	if w.VersatilityBoost == 0 {
		w.VersatilityBoost = defaults.VersatilityBoost
	}
	if w.VersatilityMinTags == 0 {
		w.VersatilityMinTags = defaults.VersatilityMinTags
	}
}
