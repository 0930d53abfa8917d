package grocery

import (
	"bestbefore-backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	GroceryRepository interface {
		GetDishIngredients(ctx context.Context, dish string) (*entities.DishIngredient, error)
		GetDishes(ctx context.Context) ([]*entities.Dish, error)
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

func (r *groceryRepository) GetDishIngredients(ctx context.Context, dish string) (*entities.DishIngredient, error) {
	var row entities.DishIngredient
	if err := r.db.WithContext(ctx).
		Where("LOWER(dish) = LOWER(?)", dish).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *groceryRepository) GetDishes(ctx context.Context) ([]*entities.Dish, error) {
	var dishes []*entities.Dish
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&dishes).Error; err != nil {
		return nil, err
	}
	return dishes, nil
}
