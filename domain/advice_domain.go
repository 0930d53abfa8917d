package domain

import (
	"errors"
)

const (
	DefaultFridgeDays = 7
	DefaultPantryDays = 14

	AdviceSourceDatabase        = "database"
	AdviceSourceClaude          = "claude"
	AdviceSourceDatabaseDefault = "database_default"
	AdviceSourceDefault         = "default"
)

var (
	MessageSuccessGetStorageAdvice = "storage advice retrieved successfully"
	MessageSuccessGetFoodTypes     = "food types retrieved successfully"

	MessageFailedGetStorageAdvice = "failed to retrieve storage advice"
	MessageFailedGetFoodTypes     = "failed to retrieve food types"

	ErrFoodTypeRequired = errors.New("food type is required")
	ErrNoFoodTypeMatch  = errors.New("no matching food type found")
)

type (
	// StorageAdvice is the single normalized shape every advice source is
	// decoded into at the boundary. Both day counts are always populated;
	// missing values fall back to the 7/14 defaults.
	StorageAdvice struct {
		FoodType    string   `json:"food_type"`
		FridgeDays  int      `json:"fridge"`
		PantryDays  int      `json:"pantry"`
		Recommended Location `json:"recommended"`
		Source      string   `json:"source"`
	}

	StorageAdviceRequest struct {
		FoodType string `json:"food_type" validate:"required"`
	}

	FoodTypesResponse struct {
		FoodTypes []string `json:"food_types"`
	}
)

// DaysFor returns the storage duration for one location.
func (a StorageAdvice) DaysFor(loc Location) int {
	if loc == LocationRefrigerator {
		return a.FridgeDays
	}
	return a.PantryDays
}

// DefaultStorageAdvice is the record substituted when no advice source can
// be reached: 7 fridge days, 14 pantry days, pantry recommended.
func DefaultStorageAdvice(foodType string) StorageAdvice {
	return StorageAdvice{
		FoodType:    foodType,
		FridgeDays:  DefaultFridgeDays,
		PantryDays:  DefaultPantryDays,
		Recommended: LocationPantry,
		Source:      AdviceSourceDefault,
	}
}
