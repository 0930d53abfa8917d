package inventory

import (
	"bestbefore-backend/domain"
	"testing"
	"time"
)

func addTestItem(s *MemoryStore, name string, location domain.Location, days int) domain.InventoryItem {
	return s.AddItem(domain.InventoryItemInput{
		Name:       name,
		Quantity:   "1",
		Location:   location,
		ExpiryDate: time.Now().AddDate(0, 0, days),
	})
}

func TestStoreAddPreservesInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	addTestItem(s, "milk", domain.LocationRefrigerator, 5)
	addTestItem(s, "bread", domain.LocationPantry, 3)
	addTestItem(s, "eggs", domain.LocationRefrigerator, 10)

	items := s.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"Milk", "Bread", "Eggs"} {
		if items[i].Name != want {
			t.Errorf("items[%d].Name = %q, want %q", i, items[i].Name, want)
		}
	}
}

func TestStoreAddAllowsDuplicateNames(t *testing.T) {
	s := NewMemoryStore()
	first := addTestItem(s, "milk", domain.LocationRefrigerator, 5)
	second := addTestItem(s, "milk", domain.LocationRefrigerator, 5)

	if first.ID == second.ID {
		t.Error("duplicate names must still get unique ids")
	}
	if len(s.Items()) != 2 {
		t.Errorf("expected 2 items, got %d", len(s.Items()))
	}
}

func TestStoreUpdateUnknownIDIsNoOp(t *testing.T) {
	s := NewMemoryStore()
	addTestItem(s, "milk", domain.LocationRefrigerator, 5)

	name := "cheese"
	s.UpdateItem("no-such-id", domain.InventoryItemPatch{Name: &name})

	items := s.Items()
	if len(items) != 1 || items[0].Name != "Milk" {
		t.Errorf("update with unknown id mutated the store: %+v", items)
	}
}

func TestStoreRemoveUnknownIDIsNoOp(t *testing.T) {
	s := NewMemoryStore()
	addTestItem(s, "milk", domain.LocationRefrigerator, 5)

	s.RemoveItem("no-such-id")

	if len(s.Items()) != 1 {
		t.Errorf("remove with unknown id mutated the store")
	}
}

func TestStoreItemsByLocation(t *testing.T) {
	s := NewMemoryStore()
	addTestItem(s, "milk", domain.LocationRefrigerator, 5)
	addTestItem(s, "bread", domain.LocationPantry, 3)
	addTestItem(s, "eggs", domain.LocationRefrigerator, 10)

	fridge := s.ItemsByLocation(domain.LocationRefrigerator)
	if len(fridge) != 2 {
		t.Fatalf("expected 2 fridge items, got %d", len(fridge))
	}
	if fridge[0].Name != "Milk" || fridge[1].Name != "Eggs" {
		t.Errorf("fridge items out of order: %q, %q", fridge[0].Name, fridge[1].Name)
	}
}

func TestStoreFindByNameAndLocationIsCaseInsensitive(t *testing.T) {
	s := NewMemoryStore()
	addTestItem(s, "milk", domain.LocationRefrigerator, 5)

	if _, found := s.FindByNameAndLocation("MILK", domain.LocationRefrigerator); !found {
		t.Error("expected case-insensitive match on name")
	}
	if _, found := s.FindByNameAndLocation("milk", domain.LocationPantry); found {
		t.Error("match must be scoped to the location")
	}
}

func TestStoreRefreshDaysLeft(t *testing.T) {
	s := NewMemoryStore()
	item := addTestItem(s, "milk", domain.LocationRefrigerator, 5)

	// Push the expiry and confirm DaysLeft only changes after a refresh.
	newExpiry := time.Now().AddDate(0, 0, 10)
	s.UpdateItem(item.ID, domain.InventoryItemPatch{ExpiryDate: &newExpiry})
	s.RefreshDaysLeft()

	refreshed := s.Items()[0]
	if refreshed.DaysLeft != 10 {
		t.Errorf("DaysLeft after refresh = %d, want 10", refreshed.DaysLeft)
	}
}

func TestStoreClearAll(t *testing.T) {
	s := NewMemoryStore()
	addTestItem(s, "milk", domain.LocationRefrigerator, 5)
	addTestItem(s, "bread", domain.LocationPantry, 3)

	s.ClearAll()

	if len(s.Items()) != 0 {
		t.Errorf("expected empty store after ClearAll, got %d items", len(s.Items()))
	}
}

func TestStoreAddIdentifiedItemDefaultsToPantry(t *testing.T) {
	s := NewMemoryStore()
	item := s.AddIdentifiedItem("banana", "3", 7)

	if item.Location != domain.LocationPantry {
		t.Errorf("identified item location = %q, want pantry", item.Location)
	}
	if item.Name != "Banana" {
		t.Errorf("identified item name = %q, want capitalized", item.Name)
	}
	if item.DaysLeft != 7 {
		t.Errorf("identified item DaysLeft = %d, want 7", item.DaysLeft)
	}
}

func TestStoreReorderItemAcrossLocations(t *testing.T) {
	s := NewMemoryStore()
	milk := addTestItem(s, "milk", domain.LocationRefrigerator, 5)
	addTestItem(s, "bread", domain.LocationPantry, 3)
	addTestItem(s, "rice", domain.LocationPantry, 30)

	s.ReorderItem(milk.ID, domain.LocationPantry, 1)

	pantry := s.ItemsByLocation(domain.LocationPantry)
	if len(pantry) != 3 {
		t.Fatalf("expected 3 pantry items, got %d", len(pantry))
	}
	if pantry[1].ID != milk.ID {
		t.Errorf("expected milk at pantry index 1, got %q", pantry[1].Name)
	}
	if len(s.ItemsByLocation(domain.LocationRefrigerator)) != 0 {
		t.Error("milk should have left the fridge")
	}
}

func TestStoreReorderItemOutOfRangeGoesLast(t *testing.T) {
	s := NewMemoryStore()
	a := addTestItem(s, "a", domain.LocationPantry, 1)
	addTestItem(s, "b", domain.LocationPantry, 1)

	s.ReorderItem(a.ID, domain.LocationPantry, 99)

	pantry := s.ItemsByLocation(domain.LocationPantry)
	if pantry[len(pantry)-1].ID != a.ID {
		t.Errorf("expected a at the end, got order %v", pantry)
	}
}

func TestCapitalizeName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"milk", "Milk"},
		{" milk ", "Milk"},
		{"", ""},
		{"Milk", "Milk"},
	}
	for _, tt := range tests {
		if got := CapitalizeName(tt.in); got != tt.want {
			t.Errorf("CapitalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
