package domain

import (
	"errors"
)

var (
	MessageSuccessGenerateCalendar = "calendar generated successfully"
	MessageSuccessListCalendars    = "calendars retrieved successfully"

	MessageFailedGenerateCalendar = "failed to generate calendar"

	ErrCalendarMissingItems = errors.New("missing items")
	ErrCalendarNotFound     = errors.New("calendar not found")
	ErrInvalidCalendarID    = errors.New("invalid calendar ID")
)

type (
	CalendarItemRequest struct {
		Name         string `json:"name" validate:"required"`
		ExpiryDate   string `json:"expiry_date" validate:"required"` // days from today
		Quantity     int    `json:"quantity" validate:"omitempty,min=1"`
		ReminderDays int    `json:"reminder_days" validate:"omitempty,min=0"`
		ReminderTime string `json:"reminder_time" validate:"omitempty"`
	}

	GenerateCalendarRequest struct {
		Items        []CalendarItemRequest `json:"items" validate:"required,min=1,dive"`
		ReminderDays int                   `json:"reminder_days" validate:"omitempty,min=0"`
		ReminderTime string                `json:"reminder_time" validate:"omitempty"`
	}

	CalendarItem struct {
		Name         string `json:"name"`
		Quantity     int    `json:"quantity"`
		ExpiryDate   string `json:"expiry_date"` // ISO date
		ReminderDays int    `json:"reminder_days"`
		ReminderTime string `json:"reminder_time"`
	}

	GenerateCalendarResponse struct {
		Status      string         `json:"status"`
		CalendarID  string         `json:"calendar_id"`
		CalendarURL string         `json:"calendar_url"`
		Items       []CalendarItem `json:"items"`
	}

	ListCalendarsResponse struct {
		Status    string `json:"status"`
		Count     int    `json:"count"`
		Calendars []any  `json:"calendars"`
	}
)
