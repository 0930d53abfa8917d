package domain

import (
	"errors"
)

const (
	BucketFridge = "fridge"
	BucketPantry = "pantry"

	ReconcileStateApplied              = "applied"
	ReconcileStateAwaitingConfirmation = "awaiting-user-confirmation"
)

var (
	MessageSuccessGetBuckets     = "storage buckets retrieved successfully"
	MessageSuccessAddBucketItem  = "item added successfully"
	MessageSuccessResolveItem    = "item confirmed successfully"
	MessageSuccessEditBucketItem = "item updated successfully"
	MessageSuccessDeleteBucket   = "item removed successfully"
	MessageSuccessMoveBucketItem = "item moved successfully"

	MessageFailedAddBucketItem  = "failed to add item"
	MessageFailedResolveItem    = "failed to confirm item"
	MessageFailedEditBucketItem = "failed to update item"
	MessageFailedDeleteBucket   = "failed to remove item"
	MessageFailedMoveBucketItem = "failed to move item"

	ErrInvalidBucket          = errors.New("bucket must be fridge or pantry")
	ErrBucketEntryNotFound    = errors.New("bucket entry not found")
	ErrPendingDecisionUnknown = errors.New("pending decision not found or already resolved")
)

type (
	// BucketEntry is one row of the fridge/pantry display view. Duration and
	// source are typed fields; Label is the rendered
	// "<name> (<N> days, <source>)" string, a display concern only.
	BucketEntry struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Quantity     string `json:"quantity"`
		DurationDays int    `json:"duration_days"`
		Source       string `json:"source,omitempty"`
		Bucket       string `json:"bucket"`
		Label        string `json:"label"`
	}

	BucketsResponse struct {
		Fridge []BucketEntry `json:"fridge"`
		Pantry []BucketEntry `json:"pantry"`
	}

	AddBucketItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Quantity string `json:"quantity" validate:"omitempty"`
		Bucket   string `json:"bucket" validate:"required,oneof=fridge pantry"`
	}

	// AddBucketItemResponse reports either the applied entry or a pending
	// decision the user must resolve because the recommended bucket differs
	// from the chosen one.
	AddBucketItemResponse struct {
		State             string       `json:"state"`
		Entry             *BucketEntry `json:"entry,omitempty"`
		PendingID         string       `json:"pending_id,omitempty"`
		ChosenBucket      string       `json:"chosen_bucket,omitempty"`
		RecommendedBucket string       `json:"recommended_bucket,omitempty"`
		RecommendedDays   int          `json:"recommended_days,omitempty"`
		Warning           string       `json:"warning,omitempty"`
	}

	ResolveDecisionRequest struct {
		PendingID         string `json:"pending_id" validate:"required,uuid"`
		UseRecommendation bool   `json:"use_recommendation"`
	}

	EditBucketItemRequest struct {
		Name     string `json:"name" validate:"omitempty"`
		Quantity string `json:"quantity" validate:"omitempty"`
	}

	EditBucketItemResponse struct {
		Entry   BucketEntry `json:"entry"`
		Warning string      `json:"warning,omitempty"`
	}

	MoveBucketItemRequest struct {
		TargetBucket string `json:"target_bucket" validate:"required,oneof=fridge pantry"`
		TargetIndex  int    `json:"target_index" validate:"min=0"`
	}

	MoveBucketItemResponse struct {
		Moved   bool        `json:"moved"`
		Entry   BucketEntry `json:"entry"`
		Warning string      `json:"warning,omitempty"`
	}
)

// BucketToLocation maps a display bucket to the inventory location enum.
func BucketToLocation(bucket string) Location {
	if bucket == BucketFridge {
		return LocationRefrigerator
	}
	return LocationPantry
}

// LocationToBucket maps an inventory location to its display bucket.
func LocationToBucket(loc Location) string {
	if loc == LocationRefrigerator {
		return BucketFridge
	}
	return BucketPantry
}
