package advice

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/entities"
	"bestbefore-backend/internal/utils/anthropic"
	"context"
	"log"
	"strings"
)

type (
	AdviceService interface {
		// GetStorageAdvice resolves advice for an exact food type: reference
		// table first, then the model, then the built-in default. It never
		// returns an error for a lookup miss, only for an empty type.
		GetStorageAdvice(ctx context.Context, foodType string) (domain.StorageAdvice, error)

		// AdviceForItem fuzzy-matches a free-form item name to a known food
		// type before resolving advice. This is the entry point used by the
		// reconciler and the detection pipeline.
		AdviceForItem(ctx context.Context, name string) (domain.StorageAdvice, error)

		FoodTypes(ctx context.Context) ([]string, error)
	}

	adviceService struct {
		adviceRepository AdviceRepository
		claude           *anthropic.Client
	}
)

func NewAdviceService(adviceRepository AdviceRepository, claude *anthropic.Client) AdviceService {
	return &adviceService{
		adviceRepository: adviceRepository,
		claude:           claude,
	}
}

func (s *adviceService) GetStorageAdvice(ctx context.Context, foodType string) (domain.StorageAdvice, error) {
	foodType = strings.TrimSpace(foodType)
	if foodType == "" {
		return domain.StorageAdvice{}, domain.ErrFoodTypeRequired
	}

	if storage, err := s.adviceRepository.GetFoodStorage(ctx, foodType); err == nil {
		return adviceFromStorage(storage), nil
	}

	if s.claude != nil && s.claude.Configured() {
		if adv, err := AskClaudeForAdvice(ctx, s.claude, foodType); err == nil {
			return adv, nil
		} else {
			log.Printf("storage advice fallback failed for %q: %v", foodType, err)
		}
	}

	// No source reachable. The reference table's convention is to recommend
	// the fridge when nothing else is known.
	return domain.StorageAdvice{
		FoodType:    foodType,
		FridgeDays:  domain.DefaultFridgeDays,
		PantryDays:  domain.DefaultPantryDays,
		Recommended: domain.LocationRefrigerator,
		Source:      domain.AdviceSourceDatabaseDefault,
	}, nil
}

func (s *adviceService) AdviceForItem(ctx context.Context, name string) (domain.StorageAdvice, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.StorageAdvice{}, domain.ErrFoodTypeRequired
	}

	foodType := name
	if types, err := s.adviceRepository.GetFoodTypes(ctx); err == nil {
		if matched, ok := FindClosestFoodType(name, types); ok {
			foodType = matched
		}
	}

	return s.GetStorageAdvice(ctx, foodType)
}

func (s *adviceService) FoodTypes(ctx context.Context) ([]string, error) {
	return s.adviceRepository.GetFoodTypes(ctx)
}

// adviceFromStorage maps a reference-table row into the normalized shape.
// Method 1 recommends the fridge, anything else the pantry; zero day counts
// take the defaults.
func adviceFromStorage(storage *entities.FoodStorage) domain.StorageAdvice {
	out := domain.StorageAdvice{
		FoodType:    storage.Type,
		FridgeDays:  storage.FridgeDays,
		PantryDays:  storage.PantryDays,
		Recommended: domain.LocationPantry,
		Source:      domain.AdviceSourceDatabase,
	}
	if out.FridgeDays <= 0 {
		out.FridgeDays = domain.DefaultFridgeDays
	}
	if out.PantryDays <= 0 {
		out.PantryDays = domain.DefaultPantryDays
	}
	if storage.Method == 1 {
		out.Recommended = domain.LocationRefrigerator
	}
	return out
}
