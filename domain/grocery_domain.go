package domain

import (
	"errors"
)

var (
	MessageSuccessGenerateGroceryList = "grocery list generated successfully"
	MessageFailedGenerateGroceryList  = "failed to generate grocery list"

	ErrNoMealsSelected = errors.New("no meals selected")
	ErrDishNotFound    = errors.New("no matching dish found")
)

type (
	SelectedMeal struct {
		Name     string `json:"name" validate:"required"`
		Quantity int    `json:"quantity" validate:"omitempty,min=1"`
	}

	GenerateGroceryListRequest struct {
		SelectedMeals []SelectedMeal `json:"selected_meals" validate:"required,min=1,dive"`
	}

	GroceryIngredient struct {
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
	}

	GroceryListResponse struct {
		Success         bool                           `json:"success"`
		Dishes          []string                       `json:"dishes"`
		MissingDishes   []string                       `json:"missing_dishes"`
		ItemsByCategory map[string][]GroceryIngredient `json:"items_by_category"`
		PantryItems     []GroceryIngredient            `json:"pantry_items,omitempty"`
	}
)
