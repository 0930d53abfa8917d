package advice

import "testing"

func TestFindClosestFoodType(t *testing.T) {
	canonical := []string{"Apple", "Apple Pie Filling", "Banana", "Milk", "Oat Milk"}

	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{"exact match", "Banana", "Banana", true},
		{"exact match beats substrings", "apple", "Apple", true},
		{"case insensitive exact", "MILK", "Milk", true},
		{"input contained in candidate", "app", "Apple", true},
		{"candidate contained in input", "fresh oat milk carton", "Milk", true},
		{"shortest substring wins", "milk", "Milk", true},
		{"no match", "durian", "", false},
		{"empty input", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindClosestFoodType(tt.input, canonical)
			if found != tt.found || got != tt.want {
				t.Errorf("FindClosestFoodType(%q) = (%q, %v), want (%q, %v)",
					tt.input, got, found, tt.want, tt.found)
			}
		})
	}
}

func TestFindClosestFoodTypeEmptyList(t *testing.T) {
	if got, found := FindClosestFoodType("apple", nil); found {
		t.Errorf("expected no match on empty list, got %q", got)
	}
}
