package domain

import (
	"errors"
)

var (
	MessageSuccessGetFoodBanks   = "food banks retrieved successfully"
	MessageSuccessGetFoodBank    = "food bank retrieved successfully"
	MessageSuccessNearbyFoodBank = "nearby food banks retrieved successfully"

	MessageFailedGetFoodBanks   = "failed to retrieve food banks"
	MessageFailedGetFoodBank    = "failed to retrieve food bank"
	MessageFailedNearbyFoodBank = "failed to retrieve nearby food banks"

	ErrFoodBankNotFound   = errors.New("food bank not found")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

type (
	// DaySchedule is one weekday's opening window.
	DaySchedule struct {
		IsOpen bool   `json:"is_open"`
		Hours  string `json:"hours,omitempty"`
	}

	// OperatingHours is the structured form of a location's free-text
	// hours-of-operation string.
	OperatingHours struct {
		Is24Hours     bool                   `json:"is_24_hours"`
		Days          []string               `json:"days"`
		Hours         string                 `json:"hours,omitempty"`
		RawText       string                 `json:"raw_text"`
		DailySchedule map[string]DaySchedule `json:"daily_schedule"`
	}

	FoodBankSummary struct {
		ID        uint    `json:"id"`
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Type      string  `json:"type"`
		Address   string  `json:"address"`
	}

	FoodBankDetail struct {
		ID             uint           `json:"id"`
		Name           string         `json:"name"`
		Latitude       float64        `json:"latitude"`
		Longitude      float64        `json:"longitude"`
		Type           string         `json:"type"`
		Address        string         `json:"address"`
		OperatingHours OperatingHours `json:"operating_hours"`
	}

	NearbyFoodBanksRequest struct {
		Latitude  float64 `json:"latitude" validate:"required"`
		Longitude float64 `json:"longitude" validate:"required"`
		Radius    float64 `json:"radius" validate:"required,min=1,max=50"`
	}

	NearbyFoodBank struct {
		FoodBankSummary
		Distance float64 `json:"distance"` // meters
	}
)
