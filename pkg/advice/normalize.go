package advice

import (
	"bestbefore-backend/domain"
	"encoding/json"
	"errors"
)

// Advice payloads arrive in two shapes. The reference table (and older
// clients) carry a numeric method with both day counts:
//
//	{"method": 1, "fridge": 5, "pantry": 2}
//
// where method 1 recommends the fridge and anything else the pantry. The
// model fallback carries a string method with a single day count for the
// recommended location:
//
//	{"method": "fridge", "days": 5}
//
// NormalizeAdvice folds both into the one StorageAdvice shape, filling any
// missing day count with the 7/14 defaults.
func NormalizeAdvice(foodType string, raw []byte, source string) (domain.StorageAdvice, error) {
	var payload struct {
		Method json.RawMessage `json:"method"`
		Fridge int             `json:"fridge"`
		Pantry int             `json:"pantry"`
		Days   int             `json:"days"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domain.StorageAdvice{}, err
	}
	if payload.Method == nil {
		return domain.StorageAdvice{}, errors.New("advice payload has no method")
	}

	out := domain.StorageAdvice{
		FoodType:   foodType,
		FridgeDays: domain.DefaultFridgeDays,
		PantryDays: domain.DefaultPantryDays,
		Source:     source,
	}

	var methodInt int
	if err := json.Unmarshal(payload.Method, &methodInt); err == nil {
		if payload.Fridge > 0 {
			out.FridgeDays = payload.Fridge
		}
		if payload.Pantry > 0 {
			out.PantryDays = payload.Pantry
		}
		if methodInt == 1 {
			out.Recommended = domain.LocationRefrigerator
		} else {
			out.Recommended = domain.LocationPantry
		}
		return out, nil
	}

	var methodStr string
	if err := json.Unmarshal(payload.Method, &methodStr); err != nil {
		return domain.StorageAdvice{}, errors.New("advice payload method is neither int nor string")
	}

	switch methodStr {
	case "fridge", "refrigerator":
		out.Recommended = domain.LocationRefrigerator
		if payload.Days > 0 {
			out.FridgeDays = payload.Days
		}
	default:
		out.Recommended = domain.LocationPantry
		if payload.Days > 0 {
			out.PantryDays = payload.Days
		}
	}
	return out, nil
}
