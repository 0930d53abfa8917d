package handlers

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/internal/api/presenters"
	"bestbefore-backend/pkg/secondlife"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	SecondLifeHandler interface {
		GetItems(c *fiber.Ctx) error
		GetItem(c *fiber.Ctx) error
	}

	secondLifeHandler struct {
		secondLifeService secondlife.SecondLifeService
	}
)

func NewSecondLifeHandler(secondLifeService secondlife.SecondLifeService) SecondLifeHandler {
	return &secondLifeHandler{
		secondLifeService: secondLifeService,
	}
}

func (h *secondLifeHandler) GetItems(c *fiber.Ctx) error {
	ingredient := c.Query("ingredient")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 12)

	res, err := h.secondLifeService.GetItems(c.Context(), ingredient, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSecondLifeItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSecondLifeItems)
}

func (h *secondLifeHandler) GetItem(c *fiber.Ctx) error {
	methodID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSecondLifeItem, err)
	}

	res, err := h.secondLifeService.GetItem(c.Context(), methodID)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrSecondLifeItemNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGetSecondLifeItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSecondLifeItem)
}
