package handlers

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/internal/api/presenters"
	"bestbefore-backend/pkg/calendar"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CalendarHandler interface {
		GenerateCalendar(c *fiber.Ctx) error
		DownloadCalendar(c *fiber.Ctx) error
		ListCalendars(c *fiber.Ctx) error
	}

	calendarHandler struct {
		calendarService calendar.CalendarService
		validator       *validator.Validate
	}
)

func NewCalendarHandler(calendarService calendar.CalendarService, validator *validator.Validate) CalendarHandler {
	return &calendarHandler{
		calendarService: calendarService,
		validator:       validator,
	}
}

func (h *calendarHandler) GenerateCalendar(c *fiber.Ctx) error {
	req := new(domain.GenerateCalendarRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateCalendar, err)
	}

	res, err := h.calendarService.Generate(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateCalendar, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessGenerateCalendar)
}

func (h *calendarHandler) DownloadCalendar(c *fiber.Ctx) error {
	calendarID := c.Params("id")

	body, err := h.calendarService.Download(c.Context(), calendarID)
	if err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrCalendarNotFound) {
			status = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, status, domain.MessageFailedGenerateCalendar, err)
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="bestbefore_reminders.ics"`)
	return c.Send(body)
}

func (h *calendarHandler) ListCalendars(c *fiber.Ctx) error {
	res := h.calendarService.List(c.Context())
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessListCalendars)
}
