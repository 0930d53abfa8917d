package advice

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/entities"
	"bestbefore-backend/internal/utils/anthropic"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type mockAdviceRepository struct {
	storage map[string]*entities.FoodStorage
	types   []string
}

func (m *mockAdviceRepository) GetFoodStorage(ctx context.Context, foodType string) (*entities.FoodStorage, error) {
	if row, ok := m.storage[strings.ToLower(foodType)]; ok {
		return row, nil
	}
	return nil, errors.New("record not found")
}

func (m *mockAdviceRepository) GetFoodTypes(ctx context.Context) ([]string, error) {
	return m.types, nil
}

func claudeStub(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") == "" {
			t.Error("missing x-api-key header")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"content":[{"type":"text","text":%q}]}`, reply)
	}))
}

func TestGetStorageAdviceFromDatabase(t *testing.T) {
	repo := &mockAdviceRepository{storage: map[string]*entities.FoodStorage{
		"milk": {Type: "Milk", FridgeDays: 5, PantryDays: 2, Method: 1},
	}}
	service := NewAdviceService(repo, anthropic.NewClientWith("", "", "", nil))

	got, err := service.GetStorageAdvice(context.Background(), "Milk")
	if err != nil {
		t.Fatalf("GetStorageAdvice: %v", err)
	}
	if got.Source != domain.AdviceSourceDatabase {
		t.Errorf("Source = %q, want database", got.Source)
	}
	if got.FridgeDays != 5 || got.PantryDays != 2 {
		t.Errorf("days = (%d, %d), want (5, 2)", got.FridgeDays, got.PantryDays)
	}
	if got.Recommended != domain.LocationRefrigerator {
		t.Errorf("Recommended = %q, want refrigerator", got.Recommended)
	}
}

func TestGetStorageAdviceFallsBackToClaude(t *testing.T) {
	server := claudeStub(t, `{"days": 4, "method": "fridge"}`)
	defer server.Close()

	repo := &mockAdviceRepository{storage: map[string]*entities.FoodStorage{}}
	client := anthropic.NewClientWith("test-key", "test-model", server.URL, server.Client())
	service := NewAdviceService(repo, client)

	got, err := service.GetStorageAdvice(context.Background(), "Durian")
	if err != nil {
		t.Fatalf("GetStorageAdvice: %v", err)
	}
	if got.Source != domain.AdviceSourceClaude {
		t.Errorf("Source = %q, want claude", got.Source)
	}
	if got.FridgeDays != 4 {
		t.Errorf("FridgeDays = %d, want 4", got.FridgeDays)
	}
	if got.Recommended != domain.LocationRefrigerator {
		t.Errorf("Recommended = %q, want refrigerator", got.Recommended)
	}
}

func TestGetStorageAdviceDefaultsWhenAllSourcesFail(t *testing.T) {
	repo := &mockAdviceRepository{storage: map[string]*entities.FoodStorage{}}
	// Unconfigured client: no API key, so the model is never consulted.
	service := NewAdviceService(repo, anthropic.NewClientWith("", "", "", nil))

	got, err := service.GetStorageAdvice(context.Background(), "Durian")
	if err != nil {
		t.Fatalf("GetStorageAdvice: %v", err)
	}
	if got.Source != domain.AdviceSourceDatabaseDefault {
		t.Errorf("Source = %q, want database_default", got.Source)
	}
	if got.FridgeDays != domain.DefaultFridgeDays || got.PantryDays != domain.DefaultPantryDays {
		t.Errorf("days = (%d, %d), want defaults", got.FridgeDays, got.PantryDays)
	}
}

func TestGetStorageAdviceRejectsEmptyType(t *testing.T) {
	service := NewAdviceService(&mockAdviceRepository{}, anthropic.NewClientWith("", "", "", nil))

	if _, err := service.GetStorageAdvice(context.Background(), "  "); !errors.Is(err, domain.ErrFoodTypeRequired) {
		t.Errorf("expected ErrFoodTypeRequired, got %v", err)
	}
}

func TestAdviceForItemFuzzyMatchesFirst(t *testing.T) {
	repo := &mockAdviceRepository{
		storage: map[string]*entities.FoodStorage{
			"apple": {Type: "Apple", FridgeDays: 21, PantryDays: 7, Method: 1},
		},
		types: []string{"Apple", "Apple Pie Filling", "Banana"},
	}
	service := NewAdviceService(repo, anthropic.NewClientWith("", "", "", nil))

	got, err := service.AdviceForItem(context.Background(), "green apples")
	if err != nil {
		t.Fatalf("AdviceForItem: %v", err)
	}
	if got.FoodType != "Apple" {
		t.Errorf("FoodType = %q, want fuzzy-matched Apple", got.FoodType)
	}
	if got.Source != domain.AdviceSourceDatabase {
		t.Errorf("Source = %q, want database", got.Source)
	}
}
