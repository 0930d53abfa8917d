package inventory

import (
	"bestbefore-backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		GetItems(ctx context.Context, userID string) ([]*entities.FoodItem, error)
		ReplaceItems(ctx context.Context, userID string, items []*entities.FoodItem) error
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) GetItems(ctx context.Context, userID string) ([]*entities.FoodItem, error) {
	var items []*entities.FoodItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ReplaceItems writes a full snapshot of one household's inventory. The
// in-memory store is authoritative; rows are swapped wholesale inside a
// transaction so a reload never observes a partial state.
func (r *inventoryRepository) ReplaceItems(ctx context.Context, userID string, items []*entities.FoodItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&entities.FoodItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(items).Error
	})
}
