package grocery

import (
	"bestbefore-backend/domain"
	"strings"
)

var categoryKeywords = []struct {
	name     string
	keywords []string
}{
	{"Meat", []string{"beef", "chicken", "pork", "turkey", "veal", "lamb", "ground meat", "steak", "sausage"}},
	{"Fish", []string{"fish", "salmon", "tuna", "cod", "tilapia", "shrimp", "seafood", "crab", "lobster"}},
	{"Produce", []string{
		"vegetable", "fruit", "tomato", "lettuce", "onion", "garlic", "pepper", "carrot",
		"broccoli", "cabbage", "spinach", "apple", "orange", "banana", "herb", "lemon",
	}},
	{"Dairy", []string{"milk", "cheese", "yogurt", "butter", "cream", "dairy", "ice cream"}},
	{"Grains", []string{"rice", "pasta", "bread", "flour", "cereal", "oat", "grain", "wheat", "barley"}},
	{"Condiments", []string{"sauce", "oil", "vinegar", "ketchup", "mustard", "mayo", "dressing", "seasoning", "spice"}},
}

var pantryKeywords = []string{
	"salt", "pepper", "sugar", "flour", "oil", "vinegar", "spice", "herb", "seasoning",
	"stock", "pasta", "rice", "grain", "canned", "dried", "baking", "sauce",
}

// CategorizeIngredients groups ingredients by shopping-aisle category.
// Keyword order matters: "pepper sauce" is Produce, not Condiments, because
// the produce keywords are checked first. Empty categories are omitted.
func CategorizeIngredients(ingredients []domain.GroceryIngredient) map[string][]domain.GroceryIngredient {
	out := make(map[string][]domain.GroceryIngredient)
	for _, ing := range ingredients {
		category := DetermineCategory(ing.Name)
		out[category] = append(out[category], ing)
	}
	return out
}

// DetermineCategory picks the first category with a keyword contained in
// the ingredient name, defaulting to Other.
func DetermineCategory(name string) string {
	lower := strings.ToLower(name)
	for _, category := range categoryKeywords {
		for _, keyword := range category.keywords {
			if strings.Contains(lower, keyword) {
				return category.name
			}
		}
	}
	return "Other"
}

// IsPantryItem reports whether an ingredient is a typical pantry staple the
// shopper probably already has.
func IsPantryItem(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range pantryKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
