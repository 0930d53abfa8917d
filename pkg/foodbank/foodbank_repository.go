package foodbank

import (
	"bestbefore-backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	// nearbyRow carries the distance column the raw query adds to the
	// geospatial table's fields.
	nearbyRow struct {
		entities.FoodBank
		Distance float64 `json:"distance"`
	}

	FoodBankRepository interface {
		GetAll(ctx context.Context) ([]*entities.FoodBank, error)
		GetByID(ctx context.Context, id uint) (*entities.FoodBank, error)
		GetNearby(ctx context.Context, lat, lng, radiusKm float64) ([]*nearbyRow, error)
	}

	foodBankRepository struct {
		db *gorm.DB
	}
)

func NewFoodBankRepository(db *gorm.DB) FoodBankRepository {
	return &foodBankRepository{db: db}
}

func (r *foodBankRepository) GetAll(ctx context.Context) ([]*entities.FoodBank, error) {
	var banks []*entities.FoodBank
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&banks).Error; err != nil {
		return nil, err
	}
	return banks, nil
}

func (r *foodBankRepository) GetByID(ctx context.Context, id uint) (*entities.FoodBank, error) {
	var bank entities.FoodBank
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bank).Error; err != nil {
		return nil, err
	}
	return &bank, nil
}

func (r *foodBankRepository) GetNearby(ctx context.Context, lat, lng, radiusKm float64) ([]*nearbyRow, error) {
	var rows []*nearbyRow

	// Uses PostgreSQL's earthdistance extension:
	// CREATE EXTENSION IF NOT EXISTS "earthdistance" CASCADE;
	// CREATE EXTENSION IF NOT EXISTS "cube";
	query := `
		SELECT *,
		       earth_distance(ll_to_earth(?, ?), ll_to_earth(latitude, longitude)) as distance
		FROM geospatial
		WHERE earth_box(ll_to_earth(?, ?), ?) @> ll_to_earth(latitude, longitude)
		ORDER BY distance ASC
	`

	radiusMeters := radiusKm * 1000

	if err := r.db.WithContext(ctx).
		Raw(query, lat, lng, lat, lng, radiusMeters).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
