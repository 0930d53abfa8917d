package reconcile

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/pkg/inventory"
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const warningAdviceUnavailable = "storage advice unavailable, using defaults"

type (
	// AdviceProvider resolves storage advice for a free-form item name.
	// Failures are expected and recovered from; the reconciler never lets
	// an advice error abort a user action.
	AdviceProvider interface {
		AdviceForItem(ctx context.Context, name string) (domain.StorageAdvice, error)
	}

	entryMeta struct {
		DurationDays int
		Source       string
	}

	pendingAdd struct {
		Name         string
		Quantity     string
		ChosenBucket string
		Advice       domain.StorageAdvice
		Warning      string
	}

	// Reconciler keeps one household's fridge/pantry display view consistent
	// with its inventory store. The store is the single authority; the
	// bucketed view is derived from it, with per-item duration and source
	// kept as typed metadata keyed by item id.
	Reconciler struct {
		store  inventory.Store
		advice AdviceProvider

		mu      sync.Mutex
		meta    map[string]entryMeta
		pending map[string]pendingAdd
	}
)

func NewReconciler(store inventory.Store, advice AdviceProvider) *Reconciler {
	return &Reconciler{
		store:   store,
		advice:  advice,
		meta:    make(map[string]entryMeta),
		pending: make(map[string]pendingAdd),
	}
}

// Buckets derives the two-bucket display view from the store. Entries with
// an empty name are logged and skipped, never surfaced or removed.
func (r *Reconciler) Buckets() domain.BucketsResponse {
	r.store.RefreshDaysLeft()

	r.mu.Lock()
	defer r.mu.Unlock()

	out := domain.BucketsResponse{
		Fridge: []domain.BucketEntry{},
		Pantry: []domain.BucketEntry{},
	}
	for _, item := range r.store.Items() {
		if strings.TrimSpace(item.Name) == "" {
			log.Printf("skipping bucket entry with empty name: %s", item.ID)
			continue
		}
		entry := r.entryForLocked(item)
		if entry.Bucket == domain.BucketFridge {
			out.Fridge = append(out.Fridge, entry)
		} else {
			out.Pantry = append(out.Pantry, entry)
		}
	}
	return out
}

// entryForLocked builds the display entry for one item. Items hydrated from
// a persisted snapshot have no metadata yet; their remaining days stand in
// for the advised duration until the next advice-bearing action.
func (r *Reconciler) entryForLocked(item domain.InventoryItem) domain.BucketEntry {
	meta, ok := r.meta[item.ID]
	if !ok {
		meta = entryMeta{DurationDays: item.DaysLeft}
	}
	return domain.BucketEntry{
		ID:           item.ID,
		Name:         item.Name,
		Quantity:     item.Quantity,
		DurationDays: meta.DurationDays,
		Source:       meta.Source,
		Bucket:       domain.LocationToBucket(item.Location),
		Label:        RenderLabel(item.Name, meta.DurationDays, meta.Source),
	}
}

func (r *Reconciler) entryFor(item domain.InventoryItem) domain.BucketEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entryForLocked(item)
}

// Add fetches advice for the new item and either applies it directly or,
// when the recommended bucket differs from the user's choice, parks the
// action as a pending decision for the confirmation dialog.
func (r *Reconciler) Add(ctx context.Context, req domain.AddBucketItemRequest) (domain.AddBucketItemResponse, error) {
	if req.Bucket != domain.BucketFridge && req.Bucket != domain.BucketPantry {
		return domain.AddBucketItemResponse{}, domain.ErrInvalidBucket
	}
	name, _, _, _ := BareName(req.Name)
	if name == "" {
		return domain.AddBucketItemResponse{}, domain.ErrFoodTypeRequired
	}
	quantity := strings.TrimSpace(req.Quantity)
	if quantity == "" {
		quantity = "1"
	}

	warning := ""
	adv, err := r.advice.AdviceForItem(ctx, name)
	if err != nil {
		adv = domain.DefaultStorageAdvice(name)
		warning = warningAdviceUnavailable
	}

	recommendedBucket := domain.LocationToBucket(adv.Recommended)
	if recommendedBucket != req.Bucket {
		pendingID := uuid.NewString()
		r.mu.Lock()
		r.pending[pendingID] = pendingAdd{
			Name:         name,
			Quantity:     quantity,
			ChosenBucket: req.Bucket,
			Advice:       adv,
			Warning:      warning,
		}
		r.mu.Unlock()

		return domain.AddBucketItemResponse{
			State:             domain.ReconcileStateAwaitingConfirmation,
			PendingID:         pendingID,
			ChosenBucket:      req.Bucket,
			RecommendedBucket: recommendedBucket,
			RecommendedDays:   adv.DaysFor(adv.Recommended),
			Warning:           warning,
		}, nil
	}

	entry := r.apply(name, quantity, req.Bucket, adv)
	return domain.AddBucketItemResponse{
		State:   domain.ReconcileStateApplied,
		Entry:   &entry,
		Warning: warning,
	}, nil
}

// Resolve finishes a pending add after the user picked a side of the
// confirmation dialog. Either path applies; resolving twice fails.
func (r *Reconciler) Resolve(req domain.ResolveDecisionRequest) (domain.AddBucketItemResponse, error) {
	r.mu.Lock()
	pending, ok := r.pending[req.PendingID]
	if ok {
		delete(r.pending, req.PendingID)
	}
	r.mu.Unlock()
	if !ok {
		return domain.AddBucketItemResponse{}, domain.ErrPendingDecisionUnknown
	}

	bucket := pending.ChosenBucket
	if req.UseRecommendation {
		bucket = domain.LocationToBucket(pending.Advice.Recommended)
	}

	entry := r.apply(pending.Name, pending.Quantity, bucket, pending.Advice)
	return domain.AddBucketItemResponse{
		State:   domain.ReconcileStateApplied,
		Entry:   &entry,
		Warning: pending.Warning,
	}, nil
}

// apply inserts the item at the resolved bucket with the bucket-specific
// duration. A same-name item already in that bucket absorbs the quantity
// instead of creating a duplicate row.
func (r *Reconciler) apply(name, quantity, bucket string, adv domain.StorageAdvice) domain.BucketEntry {
	location := domain.BucketToLocation(bucket)
	days := adv.DaysFor(location)

	if existing, found := r.store.FindByNameAndLocation(name, location); found {
		merged := inventory.MergeQuantities(existing.Quantity, quantity)
		r.store.UpdateItem(existing.ID, domain.InventoryItemPatch{Quantity: &merged})

		r.mu.Lock()
		r.meta[existing.ID] = entryMeta{DurationDays: days, Source: adv.Source}
		r.mu.Unlock()

		existing.Quantity = merged
		return r.entryFor(existing)
	}

	item := r.store.AddItem(domain.InventoryItemInput{
		Name:       name,
		Quantity:   quantity,
		Location:   location,
		ExpiryDate: time.Now().AddDate(0, 0, days),
	})

	r.mu.Lock()
	r.meta[item.ID] = entryMeta{DurationDays: days, Source: adv.Source}
	r.mu.Unlock()

	return r.entryFor(item)
}

// Edit updates an entry's quantity and, when the name changed, re-runs the
// advice lookup on the new name. A failed lookup keeps the previous
// duration and source; it never resets them to defaults.
func (r *Reconciler) Edit(ctx context.Context, entryID string, req domain.EditBucketItemRequest) (domain.EditBucketItemResponse, error) {
	item, found := r.findByID(entryID)
	if !found {
		return domain.EditBucketItemResponse{}, domain.ErrBucketEntryNotFound
	}

	patch := domain.InventoryItemPatch{}
	warning := ""

	if req.Quantity != "" && req.Quantity != item.Quantity {
		patch.Quantity = &req.Quantity
	}

	newName, _, _, _ := BareName(req.Name)
	if newName != "" && !strings.EqualFold(newName, item.Name) {
		patch.Name = &newName

		if adv, err := r.advice.AdviceForItem(ctx, newName); err == nil {
			days := adv.DaysFor(item.Location)
			expiry := time.Now().AddDate(0, 0, days)
			patch.ExpiryDate = &expiry

			r.mu.Lock()
			r.meta[item.ID] = entryMeta{DurationDays: days, Source: adv.Source}
			r.mu.Unlock()
		} else {
			warning = warningAdviceUnavailable
		}
	}

	r.store.UpdateItem(entryID, patch)

	updated, _ := r.findByID(entryID)
	return domain.EditBucketItemResponse{
		Entry:   r.entryFor(updated),
		Warning: warning,
	}, nil
}

// Delete removes an entry from the view and the store. A missing store
// match is tolerated silently.
func (r *Reconciler) Delete(entryID string) {
	r.mu.Lock()
	delete(r.meta, entryID)
	r.mu.Unlock()

	r.store.RemoveItem(entryID)
}

// Move handles drag-and-drop. Dropping onto the current bucket and index is
// a no-op, short-circuited before any mutation or advice call. A cross-bucket
// move re-fetches advice on the bare name to get the target bucket's
// duration; the source bucket's duration is never reused.
func (r *Reconciler) Move(ctx context.Context, entryID string, req domain.MoveBucketItemRequest) (domain.MoveBucketItemResponse, error) {
	if req.TargetBucket != domain.BucketFridge && req.TargetBucket != domain.BucketPantry {
		return domain.MoveBucketItemResponse{}, domain.ErrInvalidBucket
	}

	item, found := r.findByID(entryID)
	if !found {
		return domain.MoveBucketItemResponse{}, domain.ErrBucketEntryNotFound
	}

	currentBucket := domain.LocationToBucket(item.Location)
	currentIndex := r.indexInBucket(entryID, item.Location)

	if req.TargetBucket == currentBucket && req.TargetIndex == currentIndex {
		return domain.MoveBucketItemResponse{
			Moved: false,
			Entry: r.entryFor(item),
		}, nil
	}

	targetLocation := domain.BucketToLocation(req.TargetBucket)

	if req.TargetBucket == currentBucket {
		r.store.ReorderItem(entryID, targetLocation, req.TargetIndex)
		updated, _ := r.findByID(entryID)
		return domain.MoveBucketItemResponse{
			Moved: true,
			Entry: r.entryFor(updated),
		}, nil
	}

	warning := ""
	days := domain.DefaultPantryDays
	source := domain.AdviceSourceDefault
	if targetLocation == domain.LocationRefrigerator {
		days = domain.DefaultFridgeDays
	}

	if adv, err := r.advice.AdviceForItem(ctx, item.Name); err == nil {
		days = adv.DaysFor(targetLocation)
		source = adv.Source
	} else {
		warning = warningAdviceUnavailable
	}

	expiry := time.Now().AddDate(0, 0, days)
	r.store.UpdateItem(entryID, domain.InventoryItemPatch{ExpiryDate: &expiry})
	r.store.ReorderItem(entryID, targetLocation, req.TargetIndex)

	r.mu.Lock()
	r.meta[entryID] = entryMeta{DurationDays: days, Source: source}
	r.mu.Unlock()

	updated, _ := r.findByID(entryID)
	return domain.MoveBucketItemResponse{
		Moved:   true,
		Entry:   r.entryFor(updated),
		Warning: warning,
	}, nil
}

func (r *Reconciler) findByID(id string) (domain.InventoryItem, bool) {
	for _, item := range r.store.Items() {
		if item.ID == id {
			return item, true
		}
	}
	return domain.InventoryItem{}, false
}

func (r *Reconciler) indexInBucket(id string, location domain.Location) int {
	index := 0
	for _, item := range r.store.ItemsByLocation(location) {
		if item.ID == id {
			return index
		}
		index++
	}
	return -1
}
