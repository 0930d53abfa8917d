package handlers

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/internal/api/presenters"
	"bestbefore-backend/pkg/detection"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DetectionHandler interface {
		DetectProduce(c *fiber.Ctx) error
	}

	detectionHandler struct {
		detectionService detection.DetectionService
		validator        *validator.Validate
	}
)

func NewDetectionHandler(detectionService detection.DetectionService, validator *validator.Validate) DetectionHandler {
	return &detectionHandler{
		detectionService: detectionService,
		validator:        validator,
	}
}

func (h *detectionHandler) DetectProduce(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.DetectProduceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDetectProduce, err)
	}

	res, err := h.detectionService.DetectProduce(c.Context(), userID, *req)
	if err != nil {
		status := fiber.StatusBadRequest
		switch {
		case errors.Is(err, domain.ErrDetectionNotConfigured):
			status = fiber.StatusServiceUnavailable
		case errors.Is(err, domain.ErrDetectionModelFailed):
			status = fiber.StatusBadGateway
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedDetectProduce, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDetectProduce)
}
