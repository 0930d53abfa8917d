package domain

import (
	"errors"
)

var (
	MessageSuccessDetectProduce = "produce detected successfully"
	MessageFailedDetectProduce  = "failed to detect produce"

	ErrNoImagesProvided       = errors.New("no images provided")
	ErrDetectionModelFailed   = errors.New("produce detection model failed")
	ErrInvalidImageEncoding   = errors.New("invalid image encoding")
	ErrDetectionNotConfigured = errors.New("detection model is not configured")
)

type (
	DetectProduceRequest struct {
		Image  string   `json:"image" validate:"omitempty"`
		Images []string `json:"images" validate:"omitempty,dive,required"`
	}

	// DetectedItem is one identified produce entry, already enriched with
	// storage advice and inserted into the caller's inventory.
	DetectedItem struct {
		Name         string   `json:"name"`
		Count        int      `json:"count"`
		FoodType     string   `json:"food_type,omitempty"`
		Location     Location `json:"location"`
		DurationDays int      `json:"duration_days"`
		Source       string   `json:"source"`
	}

	DetectProduceResponse struct {
		Success       bool           `json:"success"`
		Detections    []any          `json:"detections"` // no bounding boxes from the vision model
		ProduceCounts map[string]int `json:"produce_counts"`
		TotalItems    int            `json:"total_items"`
		AddedItems    []DetectedItem `json:"added_items"`
	}
)
