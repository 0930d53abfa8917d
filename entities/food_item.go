package entities

import (
	"github.com/google/uuid"
	"time"
)

// FoodItem is the persisted snapshot of one inventory entry. The live
// inventory is held in memory per owner and written back here after every
// mutation; Position preserves insertion order across reloads.
type FoodItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID `gorm:"index" json:"user_id"`
	Name       string    `json:"name"`
	Quantity   string    `json:"quantity"`
	Location   string    `json:"location"` // "refrigerator" or "pantry"
	ExpiryDate time.Time `json:"expiry_date"`
	Position   int       `json:"position"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
