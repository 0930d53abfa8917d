package advice

import (
	"bestbefore-backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AdviceRepository interface {
		GetFoodStorage(ctx context.Context, foodType string) (*entities.FoodStorage, error)
		GetFoodTypes(ctx context.Context) ([]string, error)
	}

	adviceRepository struct {
		db *gorm.DB
	}
)

func NewAdviceRepository(db *gorm.DB) AdviceRepository {
	return &adviceRepository{
		db: db,
	}
}

func (r *adviceRepository) GetFoodStorage(ctx context.Context, foodType string) (*entities.FoodStorage, error) {
	var storage entities.FoodStorage
	if err := r.db.WithContext(ctx).
		Where("LOWER(type) = LOWER(?)", foodType).
		First(&storage).Error; err != nil {
		return nil, err
	}
	return &storage, nil
}

func (r *adviceRepository) GetFoodTypes(ctx context.Context) ([]string, error) {
	var types []string
	if err := r.db.WithContext(ctx).
		Model(&entities.FoodStorage{}).
		Distinct("type").
		Order("type ASC").
		Pluck("type", &types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
