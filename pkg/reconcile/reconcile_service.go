package reconcile

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/pkg/inventory"
	"context"
	"sync"
)

type (
	ReconcileService interface {
		Buckets(ctx context.Context, userID string) (domain.BucketsResponse, error)
		AddItem(ctx context.Context, userID string, req domain.AddBucketItemRequest) (domain.AddBucketItemResponse, error)
		ResolveDecision(ctx context.Context, userID string, req domain.ResolveDecisionRequest) (domain.AddBucketItemResponse, error)
		EditItem(ctx context.Context, userID, entryID string, req domain.EditBucketItemRequest) (domain.EditBucketItemResponse, error)
		DeleteItem(ctx context.Context, userID, entryID string) error
		MoveItem(ctx context.Context, userID, entryID string, req domain.MoveBucketItemRequest) (domain.MoveBucketItemResponse, error)
	}

	reconcileService struct {
		inventoryService inventory.InventoryService
		advice           AdviceProvider

		mu          sync.Mutex
		reconcilers map[string]*Reconciler
	}
)

func NewReconcileService(inventoryService inventory.InventoryService, advice AdviceProvider) ReconcileService {
	return &reconcileService{
		inventoryService: inventoryService,
		advice:           advice,
		reconcilers:      make(map[string]*Reconciler),
	}
}

// reconcilerFor returns the household's reconciler, creating it over the
// household's live store on first use. One reconciler per household keeps
// pending decisions scoped to their owner.
func (s *reconcileService) reconcilerFor(ctx context.Context, userID string) (*Reconciler, error) {
	s.mu.Lock()
	if r, ok := s.reconcilers[userID]; ok {
		s.mu.Unlock()
		return r, nil
	}
	s.mu.Unlock()

	store, err := s.inventoryService.StoreFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.reconcilers[userID]; ok {
		return r, nil
	}
	r := NewReconciler(store, s.advice)
	s.reconcilers[userID] = r
	return r, nil
}

func (s *reconcileService) Buckets(ctx context.Context, userID string) (domain.BucketsResponse, error) {
	r, err := s.reconcilerFor(ctx, userID)
	if err != nil {
		return domain.BucketsResponse{}, err
	}
	return r.Buckets(), nil
}

func (s *reconcileService) AddItem(ctx context.Context, userID string, req domain.AddBucketItemRequest) (domain.AddBucketItemResponse, error) {
	r, err := s.reconcilerFor(ctx, userID)
	if err != nil {
		return domain.AddBucketItemResponse{}, err
	}

	resp, err := r.Add(ctx, req)
	if err != nil {
		return domain.AddBucketItemResponse{}, err
	}
	if resp.State == domain.ReconcileStateApplied {
		if err := s.inventoryService.Persist(ctx, userID); err != nil {
			return domain.AddBucketItemResponse{}, err
		}
	}
	return resp, nil
}

func (s *reconcileService) ResolveDecision(ctx context.Context, userID string, req domain.ResolveDecisionRequest) (domain.AddBucketItemResponse, error) {
	r, err := s.reconcilerFor(ctx, userID)
	if err != nil {
		return domain.AddBucketItemResponse{}, err
	}

	resp, err := r.Resolve(req)
	if err != nil {
		return domain.AddBucketItemResponse{}, err
	}
	if err := s.inventoryService.Persist(ctx, userID); err != nil {
		return domain.AddBucketItemResponse{}, err
	}
	return resp, nil
}

func (s *reconcileService) EditItem(ctx context.Context, userID, entryID string, req domain.EditBucketItemRequest) (domain.EditBucketItemResponse, error) {
	r, err := s.reconcilerFor(ctx, userID)
	if err != nil {
		return domain.EditBucketItemResponse{}, err
	}

	resp, err := r.Edit(ctx, entryID, req)
	if err != nil {
		return domain.EditBucketItemResponse{}, err
	}
	if err := s.inventoryService.Persist(ctx, userID); err != nil {
		return domain.EditBucketItemResponse{}, err
	}
	return resp, nil
}

func (s *reconcileService) DeleteItem(ctx context.Context, userID, entryID string) error {
	r, err := s.reconcilerFor(ctx, userID)
	if err != nil {
		return err
	}

	r.Delete(entryID)
	return s.inventoryService.Persist(ctx, userID)
}

func (s *reconcileService) MoveItem(ctx context.Context, userID, entryID string, req domain.MoveBucketItemRequest) (domain.MoveBucketItemResponse, error) {
	r, err := s.reconcilerFor(ctx, userID)
	if err != nil {
		return domain.MoveBucketItemResponse{}, err
	}

	resp, err := r.Move(ctx, entryID, req)
	if err != nil {
		return domain.MoveBucketItemResponse{}, err
	}
	if resp.Moved {
		if err := s.inventoryService.Persist(ctx, userID); err != nil {
			return domain.MoveBucketItemResponse{}, err
		}
	}
	return resp, nil
}
