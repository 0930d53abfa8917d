package detection

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/internal/utils/anthropic"
	"bestbefore-backend/pkg/inventory"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeInventoryService struct {
	store    *inventory.MemoryStore
	persists int
}

func (f *fakeInventoryService) AddItem(ctx context.Context, userID string, req domain.AddInventoryItemRequest) (domain.InventoryItem, error) {
	return domain.InventoryItem{}, nil
}

func (f *fakeInventoryService) UpdateItem(ctx context.Context, userID, itemID string, req domain.UpdateInventoryItemRequest) error {
	return nil
}

func (f *fakeInventoryService) RemoveItem(ctx context.Context, userID, itemID string) error {
	return nil
}

func (f *fakeInventoryService) GetItems(ctx context.Context, userID string, location string) ([]domain.InventoryItem, error) {
	return f.store.Items(), nil
}

func (f *fakeInventoryService) ClearAll(ctx context.Context, userID string) error { return nil }

func (f *fakeInventoryService) SendExpiryReminders(ctx context.Context, userID string, withinDays int) (domain.SendRemindersResponse, error) {
	return domain.SendRemindersResponse{}, nil
}

func (f *fakeInventoryService) StoreFor(ctx context.Context, userID string) (inventory.Store, error) {
	return f.store, nil
}

func (f *fakeInventoryService) Persist(ctx context.Context, userID string) error {
	f.persists++
	return nil
}

type fakeAdviceProvider struct {
	advice map[string]domain.StorageAdvice
}

func (f *fakeAdviceProvider) AdviceForItem(ctx context.Context, name string) (domain.StorageAdvice, error) {
	if adv, ok := f.advice[name]; ok {
		return adv, nil
	}
	return domain.StorageAdvice{}, errors.New("no advice")
}

func visionStub(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"content":[{"type":"text","text":%q}]}`, reply)
	}))
}

func testImage() string {
	return base64.StdEncoding.EncodeToString([]byte("not really a jpeg"))
}

func TestDetectProduceAddsItemsToInventory(t *testing.T) {
	server := visionStub(t, `{"apple": 3, "banana": 2}`)
	defer server.Close()

	inv := &fakeInventoryService{store: inventory.NewMemoryStore()}
	provider := &fakeAdviceProvider{advice: map[string]domain.StorageAdvice{
		"apple": {FoodType: "Apple", FridgeDays: 21, PantryDays: 7, Recommended: domain.LocationRefrigerator, Source: domain.AdviceSourceDatabase},
	}}
	service := NewDetectionService(
		anthropic.NewClientWith("test-key", "test-model", server.URL, server.Client()),
		provider, inv, nil,
	)

	res, err := service.DetectProduce(context.Background(), "user-1", domain.DetectProduceRequest{
		Images: []string{testImage()},
	})
	if err != nil {
		t.Fatalf("DetectProduce: %v", err)
	}

	if res.TotalItems != 5 {
		t.Errorf("TotalItems = %d, want 5", res.TotalItems)
	}
	if res.ProduceCounts["apple"] != 3 || res.ProduceCounts["banana"] != 2 {
		t.Errorf("ProduceCounts = %v", res.ProduceCounts)
	}
	if len(res.AddedItems) != 2 {
		t.Fatalf("AddedItems = %d, want 2", len(res.AddedItems))
	}
	if inv.persists != 1 {
		t.Errorf("Persist called %d times, want 1", inv.persists)
	}

	// Apple carries database advice recommending the fridge; banana has no
	// advice and lands in the pantry with defaults.
	apple, found := inv.store.FindByNameAndLocation("Apple", domain.LocationRefrigerator)
	if !found {
		t.Fatal("apple missing from the fridge")
	}
	if apple.Quantity != "3" {
		t.Errorf("apple quantity = %q, want 3", apple.Quantity)
	}
	if _, found := inv.store.FindByNameAndLocation("Banana", domain.LocationPantry); !found {
		t.Error("banana missing from the pantry")
	}

	for _, item := range res.AddedItems {
		if item.Name == "Banana" && item.Source != domain.AdviceSourceDefault {
			t.Errorf("banana source = %q, want default", item.Source)
		}
	}
}

func TestDetectProduceAcceptsDataURL(t *testing.T) {
	server := visionStub(t, `{"apple": 1}`)
	defer server.Close()

	inv := &fakeInventoryService{store: inventory.NewMemoryStore()}
	service := NewDetectionService(
		anthropic.NewClientWith("test-key", "test-model", server.URL, server.Client()),
		&fakeAdviceProvider{}, inv, nil,
	)

	res, err := service.DetectProduce(context.Background(), "user-1", domain.DetectProduceRequest{
		Image: "data:image/png;base64," + testImage(),
	})
	if err != nil {
		t.Fatalf("DetectProduce: %v", err)
	}
	if res.TotalItems != 1 {
		t.Errorf("TotalItems = %d, want 1", res.TotalItems)
	}
}

func TestDetectProduceErrors(t *testing.T) {
	inv := &fakeInventoryService{store: inventory.NewMemoryStore()}
	ctx := context.Background()

	t.Run("no images", func(t *testing.T) {
		service := NewDetectionService(anthropic.NewClientWith("k", "m", "", nil), &fakeAdviceProvider{}, inv, nil)
		if _, err := service.DetectProduce(ctx, "u", domain.DetectProduceRequest{}); !errors.Is(err, domain.ErrNoImagesProvided) {
			t.Errorf("err = %v, want ErrNoImagesProvided", err)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		service := NewDetectionService(anthropic.NewClientWith("", "", "", nil), &fakeAdviceProvider{}, inv, nil)
		_, err := service.DetectProduce(ctx, "u", domain.DetectProduceRequest{Images: []string{testImage()}})
		if !errors.Is(err, domain.ErrDetectionNotConfigured) {
			t.Errorf("err = %v, want ErrDetectionNotConfigured", err)
		}
	})

	t.Run("invalid encoding", func(t *testing.T) {
		service := NewDetectionService(anthropic.NewClientWith("k", "m", "", nil), &fakeAdviceProvider{}, inv, nil)
		_, err := service.DetectProduce(ctx, "u", domain.DetectProduceRequest{Images: []string{"%%% not base64 %%%"}})
		if !errors.Is(err, domain.ErrInvalidImageEncoding) {
			t.Errorf("err = %v, want ErrInvalidImageEncoding", err)
		}
	})

	t.Run("every model call fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()
		service := NewDetectionService(
			anthropic.NewClientWith("test-key", "test-model", server.URL, server.Client()),
			&fakeAdviceProvider{}, inv, nil,
		)
		_, err := service.DetectProduce(ctx, "u", domain.DetectProduceRequest{Images: []string{testImage(), testImage()}})
		if !errors.Is(err, domain.ErrDetectionModelFailed) {
			t.Errorf("err = %v, want ErrDetectionModelFailed", err)
		}
	})
}

func TestDetectProduceEmptyResultIsSuccess(t *testing.T) {
	server := visionStub(t, `{}`)
	defer server.Close()

	inv := &fakeInventoryService{store: inventory.NewMemoryStore()}
	service := NewDetectionService(
		anthropic.NewClientWith("test-key", "test-model", server.URL, server.Client()),
		&fakeAdviceProvider{}, inv, nil,
	)

	res, err := service.DetectProduce(context.Background(), "u", domain.DetectProduceRequest{
		Images: []string{testImage()},
	})
	if err != nil {
		t.Fatalf("DetectProduce: %v", err)
	}
	if !res.Success || res.TotalItems != 0 || len(res.AddedItems) != 0 {
		t.Errorf("empty frame must succeed with empty counts, got %+v", res)
	}
	if len(inv.store.Items()) != 0 {
		t.Error("nothing may be inserted when no produce is seen")
	}
	if inv.persists != 0 {
		t.Error("nothing to persist when no produce is seen")
	}
}

func TestDetectProduceSkipsFailingImages(t *testing.T) {
	// The first frame fails upstream; the second answers normally. The batch
	// must carry on and return the second frame's counts.
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"content":[{"type":"text","text":%q}]}`, `{"apple": 2}`)
	}))
	defer server.Close()

	inv := &fakeInventoryService{store: inventory.NewMemoryStore()}
	service := NewDetectionService(
		anthropic.NewClientWith("test-key", "test-model", server.URL, server.Client()),
		&fakeAdviceProvider{}, inv, nil,
	)

	res, err := service.DetectProduce(context.Background(), "u", domain.DetectProduceRequest{
		Images: []string{testImage(), testImage()},
	})
	if err != nil {
		t.Fatalf("DetectProduce: %v", err)
	}
	if calls != 2 {
		t.Errorf("upstream calls = %d, the failed frame must not stop the batch", calls)
	}
	if res.ProduceCounts["apple"] != 2 || res.TotalItems != 2 {
		t.Errorf("counts = %v, want the healthy frame's apples", res.ProduceCounts)
	}
	if _, found := inv.store.FindByNameAndLocation("Apple", domain.LocationPantry); !found {
		t.Error("apple missing from the inventory")
	}
}

func TestDetectProduceSkipsUndecodableImages(t *testing.T) {
	server := visionStub(t, `{"banana": 1}`)
	defer server.Close()

	inv := &fakeInventoryService{store: inventory.NewMemoryStore()}
	service := NewDetectionService(
		anthropic.NewClientWith("test-key", "test-model", server.URL, server.Client()),
		&fakeAdviceProvider{}, inv, nil,
	)

	res, err := service.DetectProduce(context.Background(), "u", domain.DetectProduceRequest{
		Images: []string{"%%% not base64 %%%", testImage()},
	})
	if err != nil {
		t.Fatalf("DetectProduce: %v", err)
	}
	if res.ProduceCounts["banana"] != 1 {
		t.Errorf("counts = %v, want the decodable frame's banana", res.ProduceCounts)
	}
}

func TestParseProduceCounts(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  map[string]int
	}{
		{"plain json", `{"apple": 3, "banana": 2}`, map[string]int{"apple": 3, "banana": 2}},
		{"json inside prose", "Here is the produce: {\"apple\": 1}", map[string]int{"apple": 1}},
		{"zero counts dropped", `{"apple": 0, "banana": 2}`, map[string]int{"banana": 2}},
		{"scraped pairs", "apple: 3, banana: 2", map[string]int{"apple": 3, "banana": 2}},
		{"nothing usable", "no produce visible", map[string]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseProduceCounts(tt.reply)
			if len(got) != len(tt.want) {
				t.Fatalf("parseProduceCounts(%q) = %v, want %v", tt.reply, got, tt.want)
			}
			for name, count := range tt.want {
				if got[name] != count {
					t.Errorf("count[%q] = %d, want %d", name, got[name], count)
				}
			}
		})
	}
}
