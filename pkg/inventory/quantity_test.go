package inventory

import "testing"

func TestMergeQuantities(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want string
	}{
		{"same unit sums", "300g", "200g", "500g"},
		{"same unit with decimals", "1.5kg", "0.5kg", "2kg"},
		{"same spelled unit", "2 items", "3 items", "5items"},
		{"different units join", "500g", "2 items", "500g + 2 items"},
		{"non numeric joins", "a pinch", "200g", "a pinch + 200g"},
		{"second non numeric joins", "200g", "a pinch", "200g + a pinch"},
		{"already merged appends", "500g + 2 items", "1 box", "500g + 2 items + 1 box"},
		{"merged never re-sums", "300g + 200g", "100g", "300g + 200g + 100g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergeQuantities(tt.a, tt.b); got != tt.want {
				t.Errorf("MergeQuantities(%q, %q) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMergeQuantitiesGrowsByAppending(t *testing.T) {
	merged := MergeQuantities("500g", "2 items")
	merged = MergeQuantities(merged, "300g")
	merged = MergeQuantities(merged, "1 box")

	want := "500g + 2 items + 300g + 1 box"
	if merged != want {
		t.Errorf("repeated merge = %q, want %q", merged, want)
	}
}
