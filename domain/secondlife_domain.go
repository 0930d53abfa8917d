package domain

import (
	"errors"
)

var (
	MessageSuccessGetSecondLifeItems = "second life items retrieved successfully"
	MessageSuccessGetSecondLifeItem  = "second life item retrieved successfully"

	MessageFailedGetSecondLifeItems = "failed to retrieve second life items"
	MessageFailedGetSecondLifeItem  = "failed to retrieve second life item"

	ErrSecondLifeItemNotFound = errors.New("item not found")
)

type (
	SecondLifeItem struct {
		MethodID       int    `json:"method_id"`
		MethodName     string `json:"method_name"`
		IsCombo        string `json:"is_combo"`
		MethodCategory string `json:"method_category"`
		Ingredient     string `json:"ingredient"`
		Description    string `json:"description"`
		Picture        string `json:"picture"`
	}

	SecondLifeListResponse struct {
		Items []SecondLifeItem `json:"items"`
		Total int64            `json:"total"`
		Page  int              `json:"page"`
		Limit int              `json:"limit"`
	}
)
