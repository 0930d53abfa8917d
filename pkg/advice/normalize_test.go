package advice

import (
	"bestbefore-backend/domain"
	"testing"
)

func TestNormalizeAdviceNumericMethod(t *testing.T) {
	tests := []struct {
		name            string
		raw             string
		wantFridge      int
		wantPantry      int
		wantRecommended domain.Location
	}{
		{"method 1 recommends fridge", `{"method": 1, "fridge": 5, "pantry": 10}`, 5, 10, domain.LocationRefrigerator},
		{"method 0 recommends pantry", `{"method": 0, "fridge": 3, "pantry": 21}`, 3, 21, domain.LocationPantry},
		{"method 2 recommends pantry", `{"method": 2, "fridge": 4, "pantry": 8}`, 4, 8, domain.LocationPantry},
		{"missing day counts take defaults", `{"method": 1}`, 7, 14, domain.LocationRefrigerator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAdvice("Milk", []byte(tt.raw), domain.AdviceSourceDatabase)
			if err != nil {
				t.Fatalf("NormalizeAdvice: %v", err)
			}
			if got.FridgeDays != tt.wantFridge || got.PantryDays != tt.wantPantry {
				t.Errorf("days = (%d, %d), want (%d, %d)",
					got.FridgeDays, got.PantryDays, tt.wantFridge, tt.wantPantry)
			}
			if got.Recommended != tt.wantRecommended {
				t.Errorf("recommended = %q, want %q", got.Recommended, tt.wantRecommended)
			}
		})
	}
}

func TestNormalizeAdviceStringMethod(t *testing.T) {
	got, err := NormalizeAdvice("Milk", []byte(`{"method": "fridge", "days": 5}`), domain.AdviceSourceClaude)
	if err != nil {
		t.Fatalf("NormalizeAdvice: %v", err)
	}
	if got.FridgeDays != 5 {
		t.Errorf("FridgeDays = %d, want the supplied 5", got.FridgeDays)
	}
	if got.PantryDays != domain.DefaultPantryDays {
		t.Errorf("PantryDays = %d, want default %d", got.PantryDays, domain.DefaultPantryDays)
	}
	if got.Recommended != domain.LocationRefrigerator {
		t.Errorf("Recommended = %q, want refrigerator", got.Recommended)
	}

	got, err = NormalizeAdvice("Rice", []byte(`{"method": "pantry", "days": 30}`), domain.AdviceSourceClaude)
	if err != nil {
		t.Fatalf("NormalizeAdvice: %v", err)
	}
	if got.PantryDays != 30 {
		t.Errorf("PantryDays = %d, want the supplied 30", got.PantryDays)
	}
	if got.FridgeDays != domain.DefaultFridgeDays {
		t.Errorf("FridgeDays = %d, want default %d", got.FridgeDays, domain.DefaultFridgeDays)
	}
	if got.Recommended != domain.LocationPantry {
		t.Errorf("Recommended = %q, want pantry", got.Recommended)
	}
}

func TestNormalizeAdviceRejectsMalformedPayloads(t *testing.T) {
	for _, raw := range []string{`{}`, `{"method": true}`, `not json`} {
		if _, err := NormalizeAdvice("Milk", []byte(raw), domain.AdviceSourceClaude); err == nil {
			t.Errorf("expected error for payload %q", raw)
		}
	}
}
