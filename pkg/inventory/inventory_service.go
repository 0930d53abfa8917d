package inventory

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/entities"
	"bestbefore-backend/internal/utils/mailing"
	"bestbefore-backend/pkg/user"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type (
	InventoryService interface {
		AddItem(ctx context.Context, userID string, req domain.AddInventoryItemRequest) (domain.InventoryItem, error)
		UpdateItem(ctx context.Context, userID, itemID string, req domain.UpdateInventoryItemRequest) error
		RemoveItem(ctx context.Context, userID, itemID string) error
		GetItems(ctx context.Context, userID string, location string) ([]domain.InventoryItem, error)
		ClearAll(ctx context.Context, userID string) error
		SendExpiryReminders(ctx context.Context, userID string, withinDays int) (domain.SendRemindersResponse, error)

		// StoreFor exposes the household's live store to collaborating
		// services (reconciliation, detection). Persist writes its snapshot
		// back after those services mutate it.
		StoreFor(ctx context.Context, userID string) (Store, error)
		Persist(ctx context.Context, userID string) error
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		userRepository      user.UserRepository

		mu     sync.Mutex
		stores map[string]*MemoryStore
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, userRepository user.UserRepository) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		userRepository:      userRepository,
		stores:              make(map[string]*MemoryStore),
	}
}

func (s *inventoryService) StoreFor(ctx context.Context, userID string) (Store, error) {
	return s.memoryStoreFor(ctx, userID)
}

func (s *inventoryService) memoryStoreFor(ctx context.Context, userID string) (*MemoryStore, error) {
	s.mu.Lock()
	if store, ok := s.stores[userID]; ok {
		s.mu.Unlock()
		return store, nil
	}
	s.mu.Unlock()

	rows, err := s.inventoryRepository.GetItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.InventoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.InventoryItem{
			ID:         row.ID.String(),
			Name:       row.Name,
			Quantity:   row.Quantity,
			Location:   domain.Location(row.Location),
			ExpiryDate: row.ExpiryDate,
		})
	}

	store := NewMemoryStoreWith(items)
	store.RefreshDaysLeft()

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.stores[userID]; ok {
		return existing, nil
	}
	s.stores[userID] = store
	return store, nil
}

func (s *inventoryService) Persist(ctx context.Context, userID string) error {
	s.mu.Lock()
	store, ok := s.stores[userID]
	s.mu.Unlock()
	if !ok {
		return nil
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	items := store.Items()
	rows := make([]*entities.FoodItem, 0, len(items))
	for i, item := range items {
		itemUUID, err := uuid.Parse(item.ID)
		if err != nil {
			itemUUID = uuid.New()
		}
		rows = append(rows, &entities.FoodItem{
			ID:         itemUUID,
			UserID:     userUUID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Location:   string(item.Location),
			ExpiryDate: item.ExpiryDate,
			Position:   i,
		})
	}

	return s.inventoryRepository.ReplaceItems(ctx, userID, rows)
}

func (s *inventoryService) AddItem(ctx context.Context, userID string, req domain.AddInventoryItemRequest) (domain.InventoryItem, error) {
	store, err := s.memoryStoreFor(ctx, userID)
	if err != nil {
		return domain.InventoryItem{}, err
	}

	location := domain.Location(req.Location)
	if !location.Valid() {
		return domain.InventoryItem{}, domain.ErrInvalidLocation
	}

	expiryDate := time.Now().AddDate(0, 0, req.ExpiryDays)
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.InventoryItem{}, err
		}
		expiryDate = parsed
	}

	item := store.AddItem(domain.InventoryItemInput{
		Name:       req.Name,
		Quantity:   req.Quantity,
		Location:   location,
		ExpiryDate: expiryDate,
	})

	if err := s.Persist(ctx, userID); err != nil {
		return domain.InventoryItem{}, err
	}
	return item, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, userID, itemID string, req domain.UpdateInventoryItemRequest) error {
	store, err := s.memoryStoreFor(ctx, userID)
	if err != nil {
		return err
	}

	// The store treats unknown ids as silent no-ops, so existence is
	// checked here where the caller expects a 4xx.
	if !storeHasItem(store, itemID) {
		return domain.ErrInventoryItemMissing
	}

	patch := domain.InventoryItemPatch{}
	if req.Name != "" {
		patch.Name = &req.Name
	}
	if req.Quantity != "" {
		patch.Quantity = &req.Quantity
	}
	if req.Location != "" {
		location := domain.Location(req.Location)
		if !location.Valid() {
			return domain.ErrInvalidLocation
		}
		patch.Location = &location
	}
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return err
		}
		patch.ExpiryDate = &parsed
	}

	store.UpdateItem(itemID, patch)
	return s.Persist(ctx, userID)
}

func (s *inventoryService) RemoveItem(ctx context.Context, userID, itemID string) error {
	store, err := s.memoryStoreFor(ctx, userID)
	if err != nil {
		return err
	}

	store.RemoveItem(itemID)
	return s.Persist(ctx, userID)
}

func (s *inventoryService) GetItems(ctx context.Context, userID string, location string) ([]domain.InventoryItem, error) {
	store, err := s.memoryStoreFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	store.RefreshDaysLeft()

	if location == "" || location == "all" {
		return store.Items(), nil
	}
	loc := domain.Location(location)
	if !loc.Valid() {
		return nil, domain.ErrInvalidLocation
	}
	return store.ItemsByLocation(loc), nil
}

func (s *inventoryService) ClearAll(ctx context.Context, userID string) error {
	store, err := s.memoryStoreFor(ctx, userID)
	if err != nil {
		return err
	}

	store.ClearAll()
	return s.Persist(ctx, userID)
}

func (s *inventoryService) SendExpiryReminders(ctx context.Context, userID string, withinDays int) (domain.SendRemindersResponse, error) {
	if withinDays <= 0 {
		withinDays = 3
	}

	store, err := s.memoryStoreFor(ctx, userID)
	if err != nil {
		return domain.SendRemindersResponse{}, err
	}
	store.RefreshDaysLeft()

	var expiring []domain.InventoryItem
	for _, item := range store.Items() {
		if item.DaysLeft <= withinDays {
			expiring = append(expiring, item)
		}
	}

	owner, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.SendRemindersResponse{}, domain.ErrUserNotFound
	}

	if len(expiring) == 0 {
		return domain.SendRemindersResponse{ItemCount: 0, SentTo: owner.Email}, nil
	}

	var list strings.Builder
	for _, item := range expiring {
		list.WriteString(fmt.Sprintf(
			"<li>%s (%s) — expires %s</li>",
			item.Name, item.Quantity, item.ExpiryDate.Format("2006-01-02"),
		))
	}
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>The following items in your inventory expire within %d days:</p><ul>%s</ul><p>— BestBefore</p>",
		owner.Name, withinDays, list.String(),
	)

	if err := mailing.SendMail(owner.Email, "BestBefore expiry reminders", body); err != nil {
		return domain.SendRemindersResponse{}, err
	}

	return domain.SendRemindersResponse{ItemCount: len(expiring), SentTo: owner.Email}, nil
}

func storeHasItem(store Store, itemID string) bool {
	for _, item := range store.Items() {
		if item.ID == itemID {
			return true
		}
	}
	return false
}
