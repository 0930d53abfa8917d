package domain

import (
	"errors"
	"time"
)

// Location is where a tracked item is kept. Every item has exactly one of
// the two values; there is no third bucket.
type Location string

const (
	LocationRefrigerator Location = "refrigerator"
	LocationPantry       Location = "pantry"
)

func (l Location) Valid() bool {
	return l == LocationRefrigerator || l == LocationPantry
}

var (
	MessageSuccessAddInventoryItem    = "inventory item added successfully"
	MessageSuccessUpdateInventoryItem = "inventory item updated successfully"
	MessageSuccessDeleteInventoryItem = "inventory item deleted successfully"
	MessageSuccessGetInventoryItems   = "inventory items retrieved successfully"
	MessageSuccessClearInventory      = "inventory cleared successfully"
	MessageSuccessSendReminders       = "expiry reminders sent successfully"

	MessageFailedAddInventoryItem    = "failed to add inventory item"
	MessageFailedUpdateInventoryItem = "failed to update inventory item"
	MessageFailedDeleteInventoryItem = "failed to delete inventory item"
	MessageFailedGetInventoryItems   = "failed to retrieve inventory items"
	MessageFailedClearInventory      = "failed to clear inventory"
	MessageFailedSendReminders       = "failed to send expiry reminders"

	ErrInvalidLocation      = errors.New("location must be refrigerator or pantry")
	ErrInventoryItemMissing = errors.New("inventory item not found")
)

type (
	// InventoryItem is one tracked entry in a household inventory. DaysLeft
	// is derived from ExpiryDate and only meaningful after a refresh; it is
	// never the source of truth.
	InventoryItem struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		Quantity   string    `json:"quantity"`
		Location   Location  `json:"location"`
		ExpiryDate time.Time `json:"expiry_date"`
		DaysLeft   int       `json:"days_left"`
	}

	// InventoryItemInput carries the caller-supplied fields of a new item.
	InventoryItemInput struct {
		Name       string    `json:"name"`
		Quantity   string    `json:"quantity"`
		Location   Location  `json:"location"`
		ExpiryDate time.Time `json:"expiry_date"`
	}

	// InventoryItemPatch merges non-nil fields into an existing item.
	InventoryItemPatch struct {
		Name       *string    `json:"name,omitempty"`
		Quantity   *string    `json:"quantity,omitempty"`
		Location   *Location  `json:"location,omitempty"`
		ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	}

	AddInventoryItemRequest struct {
		Name       string `json:"name" validate:"required"`
		Quantity   string `json:"quantity" validate:"required"`
		Location   string `json:"location" validate:"required,oneof=refrigerator pantry"`
		ExpiryDays int    `json:"expiry_days" validate:"omitempty,min=0"`
		ExpiryDate string `json:"expiry_date" validate:"omitempty"`
	}

	UpdateInventoryItemRequest struct {
		Name       string `json:"name" validate:"omitempty"`
		Quantity   string `json:"quantity" validate:"omitempty"`
		Location   string `json:"location" validate:"omitempty,oneof=refrigerator pantry"`
		ExpiryDate string `json:"expiry_date" validate:"omitempty"`
	}

	SendRemindersRequest struct {
		WithinDays int `json:"within_days" validate:"omitempty,min=1,max=30"`
	}

	SendRemindersResponse struct {
		ItemCount int    `json:"item_count"`
		SentTo    string `json:"sent_to"`
	}
)
