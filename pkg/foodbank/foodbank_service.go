package foodbank

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/entities"
	"context"
)

type (
	FoodBankService interface {
		GetFoodBanks(ctx context.Context) ([]domain.FoodBankSummary, error)
		GetFoodBank(ctx context.Context, id uint) (domain.FoodBankDetail, error)
		GetNearby(ctx context.Context, req domain.NearbyFoodBanksRequest) ([]domain.NearbyFoodBank, error)
	}

	foodBankService struct {
		foodBankRepository FoodBankRepository
	}
)

func NewFoodBankService(foodBankRepository FoodBankRepository) FoodBankService {
	return &foodBankService{
		foodBankRepository: foodBankRepository,
	}
}

func (s *foodBankService) GetFoodBanks(ctx context.Context) ([]domain.FoodBankSummary, error) {
	banks, err := s.foodBankRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.FoodBankSummary, 0, len(banks))
	for _, bank := range banks {
		out = append(out, summaryFromEntity(bank))
	}
	return out, nil
}

func (s *foodBankService) GetFoodBank(ctx context.Context, id uint) (domain.FoodBankDetail, error) {
	bank, err := s.foodBankRepository.GetByID(ctx, id)
	if err != nil {
		return domain.FoodBankDetail{}, domain.ErrFoodBankNotFound
	}

	return domain.FoodBankDetail{
		ID:             bank.ID,
		Name:           bank.Name,
		Latitude:       bank.Latitude,
		Longitude:      bank.Longitude,
		Type:           bank.Type,
		Address:        bank.Address,
		OperatingHours: ParseOperatingHours(bank.HoursOfOperation),
	}, nil
}

func (s *foodBankService) GetNearby(ctx context.Context, req domain.NearbyFoodBanksRequest) ([]domain.NearbyFoodBank, error) {
	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		return nil, domain.ErrInvalidCoordinates
	}

	rows, err := s.foodBankRepository.GetNearby(ctx, req.Latitude, req.Longitude, req.Radius)
	if err != nil {
		return nil, err
	}

	out := make([]domain.NearbyFoodBank, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.NearbyFoodBank{
			FoodBankSummary: summaryFromEntity(&row.FoodBank),
			Distance:        row.Distance,
		})
	}
	return out, nil
}

func summaryFromEntity(bank *entities.FoodBank) domain.FoodBankSummary {
	return domain.FoodBankSummary{
		ID:        bank.ID,
		Name:      bank.Name,
		Latitude:  bank.Latitude,
		Longitude: bank.Longitude,
		Type:      bank.Type,
		Address:   bank.Address,
	}
}
