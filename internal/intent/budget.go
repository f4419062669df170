package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/stylekart/erabu/pkg/utils"
)

// BudgetDetector pulls a spending cap out of free text. It understands
// ranges ("500-1500", "600 to 1200"), shorthand ("2k", "5 thousand"),
// currency prefixes (₹/rs/inr/$), bare amounts, and cheapness keywords.
type BudgetDetector struct{}

// NewBudgetDetector creates a budget detector.
func NewBudgetDetector() *BudgetDetector {
	return &BudgetDetector{}
}

var (
	rangeRe    = regexp.MustCompile(`(\d+)\s*(?:-|to|upto|–|—)\s*(\d+)`)
	thousandRe = regexp.MustCompile(`(\d+(\.\d+)?)\s*(k|thousand)`)
	currencyRe = regexp.MustCompile(`(₹|rs\.?|inr|\$)\s*(\d+)`)
	numberRe   = regexp.MustCompile(`\d+`)
)

// cheapWords trigger the fallback budget when no number appears.
var cheapWords = []string{"cheap", "affordable", "low budget", "budget", "underbudget"}

// fallbackBudget is assumed when the shopper only says "cheap" or similar.
const fallbackBudget = 1000

// minBudget filters out sizes and ages mistaken for amounts.
const minBudget = 100

// Extract returns the budget found in text, or nil when no budget is
// expressed. A range collapses to its integer midpoint. Standalone numbers
// below 100 are treated as sizes, not money.
func (d *BudgetDetector) Extract(text string) *float64 {
	t := utils.Normalize(text)
	if t == "" {
		return nil
	}

	if m := rangeRe.FindStringSubmatch(t); m != nil {
		low, _ := strconv.Atoi(m[1])
		high, _ := strconv.Atoi(m[2])
		return budgetValue(float64((low + high) / 2))
	}

	if m := thousandRe.FindStringSubmatch(t); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		return budgetValue(float64(int(num * 1000)))
	}

	if m := currencyRe.FindStringSubmatch(t); m != nil {
		val, _ := strconv.Atoi(m[2])
		return budgetValue(float64(val))
	}

	// The budget is usually the largest number in the sentence.
	best := 0
	for _, raw := range numberRe.FindAllString(t, -1) {
		if n, err := strconv.Atoi(raw); err == nil && n > best {
			best = n
		}
	}
	if best >= minBudget {
		return budgetValue(float64(best))
	}

	for _, w := range cheapWords {
		if strings.Contains(t, w) {
			return budgetValue(fallbackBudget)
		}
	}

	return nil
}

func budgetValue(v float64) *float64 {
	return &v
}
