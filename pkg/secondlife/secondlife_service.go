package secondlife

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/entities"
	"context"
)

const (
	defaultPage  = 1
	defaultLimit = 12
	maxLimit     = 50
)

type (
	SecondLifeService interface {
		// GetItems lists repurposing ideas, optionally filtered by a
		// case-insensitive ingredient substring.
		GetItems(ctx context.Context, ingredient string, page, limit int) (domain.SecondLifeListResponse, error)
		GetItem(ctx context.Context, methodID int) (domain.SecondLifeItem, error)
	}

	secondLifeService struct {
		secondLifeRepository SecondLifeRepository
	}
)

func NewSecondLifeService(secondLifeRepository SecondLifeRepository) SecondLifeService {
	return &secondLifeService{
		secondLifeRepository: secondLifeRepository,
	}
}

func (s *secondLifeService) GetItems(ctx context.Context, ingredient string, page, limit int) (domain.SecondLifeListResponse, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}

	methods, total, err := s.secondLifeRepository.GetMethods(ctx, ingredient, page, limit)
	if err != nil {
		return domain.SecondLifeListResponse{}, err
	}

	items := make([]domain.SecondLifeItem, 0, len(methods))
	for _, method := range methods {
		items = append(items, itemFromEntity(method))
	}

	return domain.SecondLifeListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *secondLifeService) GetItem(ctx context.Context, methodID int) (domain.SecondLifeItem, error) {
	method, err := s.secondLifeRepository.GetMethodByID(ctx, methodID)
	if err != nil {
		return domain.SecondLifeItem{}, domain.ErrSecondLifeItemNotFound
	}
	return itemFromEntity(method), nil
}

func itemFromEntity(method *entities.SecondLifeMethod) domain.SecondLifeItem {
	return domain.SecondLifeItem{
		MethodID:       method.MethodID,
		MethodName:     method.MethodName,
		IsCombo:        method.IsCombo,
		MethodCategory: method.MethodCategory,
		Ingredient:     method.Ingredient,
		Description:    method.Description,
		Picture:        method.Picture,
	}
}
