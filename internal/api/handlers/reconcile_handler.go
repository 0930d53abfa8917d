package handlers

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/internal/api/presenters"
	"bestbefore-backend/pkg/reconcile"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReconcileHandler interface {
		GetBuckets(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		ResolveDecision(c *fiber.Ctx) error
		EditItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		MoveItem(c *fiber.Ctx) error
	}

	reconcileHandler struct {
		reconcileService reconcile.ReconcileService
		validator        *validator.Validate
	}
)

func NewReconcileHandler(reconcileService reconcile.ReconcileService, validator *validator.Validate) ReconcileHandler {
	return &reconcileHandler{
		reconcileService: reconcileService,
		validator:        validator,
	}
}

func (h *reconcileHandler) GetBuckets(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.reconcileService.Buckets(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBuckets)
}

func (h *reconcileHandler) AddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddBucketItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddBucketItem, err)
	}

	res, err := h.reconcileService.AddItem(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddBucketItem, err)
	}

	status := fiber.StatusCreated
	if res.State == domain.ReconcileStateAwaitingConfirmation {
		status = fiber.StatusAccepted
	}
	return presenters.SuccessResponse(c, res, status, domain.MessageSuccessAddBucketItem)
}

func (h *reconcileHandler) ResolveDecision(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ResolveDecisionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedResolveItem, err)
	}

	res, err := h.reconcileService.ResolveDecision(c.Context(), userID, *req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrPendingDecisionUnknown) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedResolveItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessResolveItem)
}

func (h *reconcileHandler) EditItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")
	req := new(domain.EditBucketItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEditBucketItem, err)
	}

	res, err := h.reconcileService.EditItem(c.Context(), userID, entryID, *req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrBucketEntryNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedEditBucketItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessEditBucketItem)
}

func (h *reconcileHandler) DeleteItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	if err := h.reconcileService.DeleteItem(c.Context(), userID, entryID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteBucket, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteBucket)
}

func (h *reconcileHandler) MoveItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")
	req := new(domain.MoveBucketItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMoveBucketItem, err)
	}

	res, err := h.reconcileService.MoveItem(c.Context(), userID, entryID, *req)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrBucketEntryNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedMoveBucketItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessMoveBucketItem)
}
