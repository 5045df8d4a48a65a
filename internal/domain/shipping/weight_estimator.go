package shipping

import "strings"

// DefaultEstimatedGrams is used when neither category nor title match
const DefaultEstimatedGrams = 500

// categoryWeights holds base weight estimates per marketplace category
var categoryWeights = map[string]int{
	"cell phones & smartphones": 200,
	"video games & consoles":    800,
	"cameras & photo":           600,
	"consumer electronics":      500,
	"toys & hobbies":            400,
	"jewelry & watches":         100,
	"clothing":                  300,
	"books":                     250,
	"collectibles":              200,
}

// titleWeights overrides the category estimate when a keyword appears in the
// listing title. First match wins, in this order.
var titleWeights = []struct {
	keyword string
	grams   int
}{
	{"nintendo switch", 800},
	{"iphone", 200},
	{"camera", 600},
	{"headphone", 300},
	{"watch", 100},
	{"laptop", 2000},
	{"tablet", 500},
	{"book", 250},
	{"card", 50},
	{"figure", 150},
}

// EstimateWeight guesses an item's packed weight in grams from its category
// and title. A title keyword beats the category base; unknown inputs fall
// back to DefaultEstimatedGrams.
func EstimateWeight(category, title string) int {
	grams := DefaultEstimatedGrams
	if base, ok := categoryWeights[strings.ToLower(strings.TrimSpace(category))]; ok {
		grams = base
	}

	titleLower := strings.ToLower(title)
	for _, tw := range titleWeights {
		if strings.Contains(titleLower, tw.keyword) {
			return tw.grams
		}
	}
	return grams
}
