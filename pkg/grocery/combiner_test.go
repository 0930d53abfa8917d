package grocery

import (
	"bestbefore-backend/domain"
	"testing"
)

func TestAddQuantities(t *testing.T) {
	tests := []struct {
		name string
		q1   string
		q2   string
		want string
	}{
		{"same unit", "300 g", "200 g", "500 g"},
		{"grams plus kilograms", "500 g", "1 kg", "1.5 kg"},
		{"kilograms sum to whole", "1 kg", "1000 g", "2 kg"},
		{"stays in grams below a kilo", "300 g", "400 g", "700 g"},
		{"milliliters plus liters", "500 ml", "1 l", "1.5 l"},
		{"volume stays in milliliters", "200 ml", "300 ml", "500 ml"},
		{"pieces", "2 pieces", "3 pieces", "5 pieces"},
		{"single piece pluralizes", "1 piece", "1 piece", "2 pieces"},
		{"sized pieces", "2 large", "1 large", "3 large"},
		{"multiplier forms", "2x 1 can", "3x 1 can", "5x 1 can"},
		{"as needed yields the other", "as needed", "2 tbsp", "2 tbsp"},
		{"both as needed", "as needed", "as needed", "as needed"},
		{"incompatible units join", "2 cloves", "1 bunch", "2 cloves + 1 bunch"},
		{"weight and volume never mix", "100 g", "100 ml", "100 g + 100 ml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddQuantities(tt.q1, tt.q2); got != tt.want {
				t.Errorf("AddQuantities(%q, %q) = %q, want %q", tt.q1, tt.q2, got, tt.want)
			}
		})
	}
}

func TestScaleIngredients(t *testing.T) {
	in := []domain.GroceryIngredient{
		{Name: "Rice", Quantity: "200 g"},
		{Name: "Eggs", Quantity: "2 pieces"},
		{Name: "Salt", Quantity: "as needed"},
		{Name: "Bay leaf", Quantity: "a handful"},
	}

	got := ScaleIngredients(in, 3)
	if len(got) != 4 {
		t.Fatalf("expected 4 ingredients, got %d", len(got))
	}
	if got[0].Quantity != "600 g" {
		t.Errorf("rice = %q, want 600 g", got[0].Quantity)
	}
	if got[1].Quantity != "6 pieces" {
		t.Errorf("eggs = %q, want 6 pieces", got[1].Quantity)
	}
	if got[2].Quantity != "as needed" {
		t.Errorf("salt = %q, as needed must not scale", got[2].Quantity)
	}
	if got[3].Quantity != "3x a handful" {
		t.Errorf("bay leaf = %q, unparseable quantities gain a multiplier prefix", got[3].Quantity)
	}
}

func TestScaleIngredientsSingleServingUntouched(t *testing.T) {
	in := []domain.GroceryIngredient{{Name: "Rice", Quantity: "200 g"}}
	got := ScaleIngredients(in, 1)
	if got[0].Quantity != "200 g" {
		t.Errorf("quantity = %q, servings of 1 must not rescale", got[0].Quantity)
	}
}

func TestCombineIngredientsFoldsDuplicates(t *testing.T) {
	in := []domain.GroceryIngredient{
		{Name: "Onion", Quantity: "2 pieces"},
		{Name: "onion", Quantity: "1 piece"},
		{Name: "Garlic", Quantity: "3 cloves"},
	}

	got := CombineIngredients(in)
	if len(got) != 2 {
		t.Fatalf("expected 2 combined ingredients, got %d", len(got))
	}
	if got[0].Name != "Onion" {
		t.Errorf("Name = %q, first-seen casing must win", got[0].Name)
	}
	if got[0].Quantity != "3 pieces" {
		t.Errorf("Quantity = %q, want 3 pieces", got[0].Quantity)
	}
}

func TestDetermineCategory(t *testing.T) {
	tests := []struct{ name, want string }{
		{"Chicken breast", "Meat"},
		{"Salmon fillet", "Fish"},
		{"Red bell pepper", "Produce"},
		{"Cheddar cheese", "Dairy"},
		{"Basmati rice", "Grains"},
		{"Soy sauce", "Condiments"},
		{"Aluminium foil", "Other"},
	}
	for _, tt := range tests {
		if got := DetermineCategory(tt.name); got != tt.want {
			t.Errorf("DetermineCategory(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestIsPantryItem(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Olive oil", true},
		{"Sea salt", true},
		{"Canned tomatoes", true},
		{"Fresh salmon", false},
		{"Milk", false},
	}
	for _, tt := range tests {
		if got := IsPantryItem(tt.name); got != tt.want {
			t.Errorf("IsPantryItem(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
