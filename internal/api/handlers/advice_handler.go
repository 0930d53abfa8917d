package handlers

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/internal/api/presenters"
	"bestbefore-backend/pkg/advice"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AdviceHandler interface {
		GetStorageAdvice(c *fiber.Ctx) error
		GetFoodTypes(c *fiber.Ctx) error
	}

	adviceHandler struct {
		adviceService advice.AdviceService
		validator     *validator.Validate
	}
)

func NewAdviceHandler(adviceService advice.AdviceService, validator *validator.Validate) AdviceHandler {
	return &adviceHandler{
		adviceService: adviceService,
		validator:     validator,
	}
}

func (h *adviceHandler) GetStorageAdvice(c *fiber.Ctx) error {
	req := new(domain.StorageAdviceRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStorageAdvice, err)
	}

	res, err := h.adviceService.GetStorageAdvice(c.Context(), req.FoodType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStorageAdvice, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStorageAdvice)
}

func (h *adviceHandler) GetFoodTypes(c *fiber.Ctx) error {
	foodTypes, err := h.adviceService.FoodTypes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodTypes, err)
	}

	res := domain.FoodTypesResponse{FoodTypes: foodTypes}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodTypes)
}
