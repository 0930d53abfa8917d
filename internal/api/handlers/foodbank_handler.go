package handlers

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/internal/api/presenters"
	"bestbefore-backend/pkg/foodbank"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodBankHandler interface {
		GetFoodBanks(c *fiber.Ctx) error
		GetFoodBank(c *fiber.Ctx) error
		GetNearby(c *fiber.Ctx) error
	}

	foodBankHandler struct {
		foodBankService foodbank.FoodBankService
		validator       *validator.Validate
	}
)

func NewFoodBankHandler(foodBankService foodbank.FoodBankService, validator *validator.Validate) FoodBankHandler {
	return &foodBankHandler{
		foodBankService: foodBankService,
		validator:       validator,
	}
}

func (h *foodBankHandler) GetFoodBanks(c *fiber.Ctx) error {
	res, err := h.foodBankService.GetFoodBanks(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetFoodBanks, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodBanks)
}

func (h *foodBankHandler) GetFoodBank(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFoodBank, err)
	}

	res, err := h.foodBankService.GetFoodBank(c.Context(), uint(id))
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrFoodBankNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetFoodBank, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFoodBank)
}

func (h *foodBankHandler) GetNearby(c *fiber.Ctx) error {
	req := new(domain.NearbyFoodBanksRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNearbyFoodBank, err)
	}

	res, err := h.foodBankService.GetNearby(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNearbyFoodBank, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessNearbyFoodBank)
}
