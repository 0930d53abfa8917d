package grocery

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/internal/utils/anthropic"
	"context"
	"encoding/json"
	"fmt"
	"log"
)

const ingredientsMaxTokens = 800

type (
	GroceryService interface {
		// GenerateList builds a combined, categorized shopping list from the
		// selected meals. Dishes missing from the catalog fall back to a
		// model-generated ingredient list; dishes that still resolve nothing
		// are reported, not failed.
		GenerateList(ctx context.Context, req domain.GenerateGroceryListRequest) (domain.GroceryListResponse, error)
	}

	groceryService struct {
		groceryRepository GroceryRepository
		claude            *anthropic.Client
	}
)

func NewGroceryService(groceryRepository GroceryRepository, claude *anthropic.Client) GroceryService {
	return &groceryService{
		groceryRepository: groceryRepository,
		claude:            claude,
	}
}

func (s *groceryService) GenerateList(ctx context.Context, req domain.GenerateGroceryListRequest) (domain.GroceryListResponse, error) {
	if len(req.SelectedMeals) == 0 {
		return domain.GroceryListResponse{}, domain.ErrNoMealsSelected
	}

	var all []domain.GroceryIngredient
	dishes := []string{}
	missing := []string{}

	for _, meal := range req.SelectedMeals {
		if meal.Name == "" {
			continue
		}
		servings := meal.Quantity
		if servings <= 0 {
			servings = 1
		}

		ingredients, dishName, err := s.ingredientsFor(ctx, meal.Name)
		if err != nil {
			missing = append(missing, meal.Name)
			continue
		}

		dishes = append(dishes, dishName)
		all = append(all, ScaleIngredients(ingredients, servings)...)
	}

	combined := CombineIngredients(all)

	shopping := make([]domain.GroceryIngredient, 0, len(combined))
	pantry := make([]domain.GroceryIngredient, 0)
	for _, ing := range combined {
		if IsPantryItem(ing.Name) {
			pantry = append(pantry, ing)
		} else {
			shopping = append(shopping, ing)
		}
	}

	return domain.GroceryListResponse{
		Success:         len(dishes) > 0,
		Dishes:          dishes,
		MissingDishes:   missing,
		ItemsByCategory: CategorizeIngredients(shopping),
		PantryItems:     pantry,
	}, nil
}

// ingredientsFor resolves a dish's ingredient list from the catalog, then
// from the model when the catalog has no row.
func (s *groceryService) ingredientsFor(ctx context.Context, dish string) ([]domain.GroceryIngredient, string, error) {
	if row, err := s.groceryRepository.GetDishIngredients(ctx, dish); err == nil {
		var ingredients []domain.GroceryIngredient
		if err := json.Unmarshal([]byte(row.Ingredients), &ingredients); err != nil {
			log.Printf("grocery: malformed ingredient list for dish %q: %v", row.Dish, err)
			return nil, "", err
		}
		return ingredients, row.Dish, nil
	}

	if s.claude == nil || !s.claude.Configured() {
		return nil, "", domain.ErrDishNotFound
	}
	ingredients, err := s.askClaudeForIngredients(ctx, dish)
	if err != nil {
		return nil, "", domain.ErrDishNotFound
	}
	return ingredients, dish, nil
}

func (s *groceryService) askClaudeForIngredients(ctx context.Context, dish string) ([]domain.GroceryIngredient, error) {
	prompt := fmt.Sprintf(
		`List the ingredients to cook %s for one serving. Respond with ONLY a JSON object in this exact format: {"ingredients": [{"name": "<ingredient>", "quantity": "<amount with unit, or 'as needed'>"}]}`,
		dish,
	)

	reply, err := s.claude.CompleteText(ctx, prompt, ingredientsMaxTokens)
	if err != nil {
		return nil, err
	}
	raw := anthropic.ExtractJSON(reply)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in model reply for dish %q", dish)
	}

	var decoded struct {
		Ingredients []domain.GroceryIngredient `json:"ingredients"`
	}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, err
	}
	if len(decoded.Ingredients) == 0 {
		return nil, fmt.Errorf("model returned no ingredients for dish %q", dish)
	}
	return decoded.Ingredients, nil
}
