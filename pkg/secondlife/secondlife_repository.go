package secondlife

import (
	"bestbefore-backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	SecondLifeRepository interface {
		GetMethods(ctx context.Context, ingredient string, page, limit int) ([]*entities.SecondLifeMethod, int64, error)
		GetMethodByID(ctx context.Context, methodID int) (*entities.SecondLifeMethod, error)
	}

	secondLifeRepository struct {
		db *gorm.DB
	}
)

func NewSecondLifeRepository(db *gorm.DB) SecondLifeRepository {
	return &secondLifeRepository{db: db}
}

func (r *secondLifeRepository) GetMethods(ctx context.Context, ingredient string, page, limit int) ([]*entities.SecondLifeMethod, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.SecondLifeMethod{})
	if ingredient != "" {
		query = query.Where("ingredient ILIKE ?", "%"+ingredient+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var methods []*entities.SecondLifeMethod
	if err := query.
		Order("method_id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&methods).Error; err != nil {
		return nil, 0, err
	}
	return methods, total, nil
}

func (r *secondLifeRepository) GetMethodByID(ctx context.Context, methodID int) (*entities.SecondLifeMethod, error) {
	var method entities.SecondLifeMethod
	if err := r.db.WithContext(ctx).
		Where("method_id = ?", methodID).
		First(&method).Error; err != nil {
		return nil, err
	}
	return &method, nil
}
