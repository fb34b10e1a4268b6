// README: Static keyword tables backing category derivation and fallbacks.
package planner

import "strings"

// queryRule maps a task phrase to the provider queries worth trying for it.
// Rules are checked in order; the first phrase contained in the task wins.
type queryRule struct {
	phrase  string
	queries []string
}

var taskQueryRules = []queryRule{
	{"get coffee", []string{"coffee", "cafe", "coffee shop"}},
	{"buy coffee", []string{"coffee", "cafe", "coffee shop"}},
	{"get breakfast", []string{"breakfast", "cafe", "restaurant", "coffee shop"}},
	{"buy bouquets", []string{"florist", "flower shop", "gift shop"}},
	{"buy flowers", []string{"florist", "flower shop", "gift shop"}},
	{"buy groceries", []string{"grocery", "supermarket", "market", "convenience store"}},
	{"visit post office", []string{"post office", "courier", "shipping"}},
	{"meet friend", []string{"cafe", "restaurant", "park", "coffee shop"}},
	{"go shopping", []string{"shop", "mall", "market", "store", "shopping center"}},
	{"get food", []string{"restaurant", "food", "dining", "eatery"}},
	{"go to gym", []string{"gym", "fitness", "health club", "fitness center"}},
	{"visit park", []string{"park", "garden", "recreation", "playground"}},
	{"go to bank", []string{"bank", "atm", "financial", "credit union"}},
	{"get medicine", []string{"pharmacy", "drugstore", "chemist", "medical store"}},
	{"buy clothes", []string{"clothing store", "fashion", "apparel", "boutique"}},
	{"get haircut", []string{"salon", "barber", "hair salon", "beauty salon"}},
	{"watch movie", []string{"cinema", "movie theater", "multiplex", "theater"}},
	{"get gas", []string{"gas station", "petrol pump", "fuel station"}},
	{"buy books", []string{"bookstore", "library", "book shop"}},
	{"get nails done", []string{"nail salon", "beauty salon", "spa"}},
	{"buy electronics", []string{"electronics store", "mobile shop", "computer store"}},
}

// categoryRule maps a task to a keyword family when no task phrase matched.
type categoryRule struct {
	category string
	keywords []string
}

var taskCategoryRules = []categoryRule{
	{"coffee", []string{"coffee", "cafe", "breakfast", "coffee shop", "espresso"}},
	{"food", []string{"restaurant", "food", "dining", "eatery", "bistro", "kitchen"}},
	{"shopping", []string{"shop", "store", "mall", "market", "shopping center", "plaza"}},
	{"groceries", []string{"grocery", "supermarket", "market", "convenience store", "food store"}},
	{"flowers", []string{"florist", "flower", "garden center", "flower shop", "nursery"}},
	{"post", []string{"post office", "courier", "shipping", "mail", "logistics"}},
	{"bank", []string{"bank", "atm", "financial", "credit union", "savings"}},
	{"pharmacy", []string{"pharmacy", "drugstore", "chemist", "medical store", "health store"}},
	{"park", []string{"park", "garden", "recreation", "playground", "green space"}},
	{"gym", []string{"gym", "fitness", "health club", "fitness center", "workout"}},
	{"entertainment", []string{"cinema", "theater", "museum", "gallery", "amusement"}},
	{"transport", []string{"bus stop", "train station", "taxi stand", "transport hub"}},
	{"beauty", []string{"salon", "spa", "beauty salon", "nail salon", "barber"}},
	{"clothing", []string{"clothing store", "fashion", "apparel", "boutique", "outlet"}},
	{"electronics", []string{"electronics store", "mobile shop", "computer store", "tech store"}},
	{"automotive", []string{"gas station", "car wash", "auto repair", "dealership"}},
}

var stopWords = map[string]bool{
	"get": true, "buy": true, "go": true, "to": true, "the": true,
	"a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "for": true, "of": true,
	"with": true, "by": true,
}

// extractTaskKeywords derives search terms for a task without LLM help:
// exact phrase table, then keyword families, then a stop-word-filtered
// tokenization capped at 3 terms.
func extractTaskKeywords(task string) []string {
	taskLower := strings.ToLower(task)

	for _, rule := range taskQueryRules {
		if strings.Contains(taskLower, rule.phrase) {
			return rule.queries
		}
	}

	for _, rule := range taskCategoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(taskLower, kw) {
				return rule.keywords
			}
		}
	}

	var keywords []string
	for _, word := range strings.FieldsFunc(taskLower, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if stopWords[word] || len(word) <= 2 {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == 3 {
			break
		}
	}
	return keywords
}

// fallbackPlace is a synthetic stand-in used when every search strategy
// comes back empty.
type fallbackPlace struct {
	name      string
	category  string
	distanceM float64
	rating    float64
}

var fallbackPlaces = []struct {
	category string
	places   []fallbackPlace
}{
	{"coffee", []fallbackPlace{
		{"Local Coffee Shop", "Cafe", 200, 4.2},
		{"Corner Café", "Cafe", 450, 4.0},
		{"Morning Brew", "Coffee Shop", 800, 4.3},
	}},
	{"cafe", []fallbackPlace{
		{"Local Coffee Shop", "Cafe", 200, 4.2},
		{"Corner Café", "Cafe", 450, 4.0},
		{"Morning Brew", "Coffee Shop", 800, 4.3},
	}},
	{"florist", []fallbackPlace{
		{"Flower Paradise", "Florist", 300, 4.5},
		{"Garden Blooms", "Florist", 600, 4.1},
		{"Fresh Flowers", "Florist", 1200, 4.3},
	}},
	{"grocery", []fallbackPlace{
		{"Local Market", "Grocery Store", 150, 4.0},
		{"Fresh Foods", "Supermarket", 400, 4.2},
		{"City Mart", "Convenience Store", 700, 3.8},
	}},
	{"restaurant", []fallbackPlace{
		{"Local Restaurant", "Restaurant", 250, 4.1},
		{"Food Corner", "Restaurant", 500, 4.3},
		{"Tasty Bites", "Restaurant", 900, 4.0},
	}},
	{"park", []fallbackPlace{
		{"Central Park", "Park", 300, 4.4},
		{"Garden Square", "Garden", 600, 4.1},
		{"Riverside Walk", "Walking Trail", 800, 4.5},
	}},
}
