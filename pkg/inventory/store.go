package inventory

import (
	"bestbefore-backend/domain"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type (
	// Store is the single source of truth for one household's tracked food
	// items. All operations are synchronous and in-memory; an unknown id is
	// a silent no-op, never an error. Callers needing confirmation must
	// re-query.
	Store interface {
		AddItem(input domain.InventoryItemInput) domain.InventoryItem
		UpdateItem(id string, patch domain.InventoryItemPatch)
		RemoveItem(id string)
		Items() []domain.InventoryItem
		ItemsByLocation(location domain.Location) []domain.InventoryItem
		FindByNameAndLocation(name string, location domain.Location) (domain.InventoryItem, bool)
		ClearAll()
		RefreshDaysLeft()
		AddIdentifiedItem(name, quantity string, expiryDays int) domain.InventoryItem
		ReorderItem(id string, location domain.Location, targetIndex int)
	}

	// MemoryStore keeps items in insertion order. It is safe for concurrent
	// use by handlers and the detection pipeline.
	MemoryStore struct {
		mu    sync.Mutex
		items []domain.InventoryItem
	}
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith seeds a store with existing items, preserving order.
// Used when rehydrating a household inventory from its persisted snapshot.
func NewMemoryStoreWith(items []domain.InventoryItem) *MemoryStore {
	s := &MemoryStore{items: make([]domain.InventoryItem, len(items))}
	copy(s.items, items)
	return s
}

func (s *MemoryStore) AddItem(input domain.InventoryItemInput) domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.InventoryItem{
		ID:         uuid.NewString(),
		Name:       CapitalizeName(input.Name),
		Quantity:   input.Quantity,
		Location:   input.Location,
		ExpiryDate: input.ExpiryDate,
		DaysLeft:   daysUntil(input.ExpiryDate, time.Now()),
	}
	s.items = append(s.items, item)
	return item
}

func (s *MemoryStore) UpdateItem(id string, patch domain.InventoryItemPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.items[i].Name = CapitalizeName(*patch.Name)
		}
		if patch.Quantity != nil {
			s.items[i].Quantity = *patch.Quantity
		}
		if patch.Location != nil {
			s.items[i].Location = *patch.Location
		}
		if patch.ExpiryDate != nil {
			s.items[i].ExpiryDate = *patch.ExpiryDate
			s.items[i].DaysLeft = daysUntil(*patch.ExpiryDate, time.Now())
		}
		return
	}
}

func (s *MemoryStore) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *MemoryStore) Items() []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.InventoryItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *MemoryStore) ItemsByLocation(location domain.Location) []domain.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.InventoryItem, 0)
	for _, item := range s.items {
		if item.Location == location {
			out = append(out, item)
		}
	}
	return out
}

// FindByNameAndLocation performs the case-insensitive name+location join
// used to reconcile display entries against the store. Linear search,
// first match wins.
func (s *MemoryStore) FindByNameAndLocation(name string, location domain.Location) (domain.InventoryItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lower := strings.ToLower(strings.TrimSpace(name))
	for _, item := range s.items {
		if item.Location == location && strings.ToLower(item.Name) == lower {
			return item, true
		}
	}
	return domain.InventoryItem{}, false
}

func (s *MemoryStore) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
}

// RefreshDaysLeft recomputes every item's DaysLeft from its expiry date.
// DaysLeft is never trusted as stored state; consumers call this before
// displaying.
func (s *MemoryStore) RefreshDaysLeft() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for i := range s.items {
		s.items[i].DaysLeft = daysUntil(s.items[i].ExpiryDate, now)
	}
}

// AddIdentifiedItem is the convenience constructor used by the detection
// pipeline: the expiry date is now plus the advised day count, and the
// location defaults to the pantry until advice says otherwise.
func (s *MemoryStore) AddIdentifiedItem(name, quantity string, expiryDays int) domain.InventoryItem {
	return s.AddItem(domain.InventoryItemInput{
		Name:       name,
		Quantity:   quantity,
		Location:   domain.LocationPantry,
		ExpiryDate: time.Now().AddDate(0, 0, expiryDays),
	})
}

// ReorderItem moves an item so it sits at targetIndex among the items of
// the given location, setting the location as a side effect. Unknown ids
// are ignored; an out-of-range index places the item last.
func (s *MemoryStore) ReorderItem(id string, location domain.Location, targetIndex int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from := -1
	for i := range s.items {
		if s.items[i].ID == id {
			from = i
			break
		}
	}
	if from == -1 {
		return
	}

	item := s.items[from]
	item.Location = location
	s.items = append(s.items[:from], s.items[from+1:]...)

	// The global insertion point is the position of the targetIndex-th item
	// of the target location, counted over the remaining items.
	pos := len(s.items)
	count := 0
	for i := range s.items {
		if s.items[i].Location != location {
			continue
		}
		if count == targetIndex {
			pos = i
			break
		}
		count++
	}

	s.items = append(s.items, domain.InventoryItem{})
	copy(s.items[pos+1:], s.items[pos:])
	s.items[pos] = item
}

// CapitalizeName upper-cases the first letter for display. Matching stays
// case-insensitive everywhere.
func CapitalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func daysUntil(expiry time.Time, now time.Time) int {
	return int(math.Ceil(expiry.Sub(now).Hours() / 24))
}
