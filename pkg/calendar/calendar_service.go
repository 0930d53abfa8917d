package calendar

import (
	"bestbefore-backend/domain"
	"bestbefore-backend/internal/utils"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	defaultReminderDays = 2
	defaultReminderTime = "20:00"
)

type (
	CalendarService interface {
		// Generate validates the selected items, stores the rendered calendar
		// in memory under a fresh id and returns the download URL.
		Generate(ctx context.Context, req domain.GenerateCalendarRequest) (domain.GenerateCalendarResponse, error)

		// Download returns the rendered .ics body for a previously generated
		// calendar.
		Download(ctx context.Context, calendarID string) ([]byte, error)

		List(ctx context.Context) domain.ListCalendarsResponse
	}

	// calendarService keeps generated calendars in memory only. Calendars
	// are one-shot downloads; a restart invalidating old links is accepted.
	calendarService struct {
		mu        sync.Mutex
		calendars map[string][]byte
	}
)

func NewCalendarService() CalendarService {
	return &calendarService{
		calendars: make(map[string][]byte),
	}
}

func (s *calendarService) Generate(ctx context.Context, req domain.GenerateCalendarRequest) (domain.GenerateCalendarResponse, error) {
	if len(req.Items) == 0 {
		return domain.GenerateCalendarResponse{}, domain.ErrCalendarMissingItems
	}

	reminderDays := req.ReminderDays
	if reminderDays <= 0 {
		reminderDays = defaultReminderDays
	}
	reminderTime := req.ReminderTime
	if reminderTime == "" {
		reminderTime = defaultReminderTime
	}

	now := time.Now().UTC()
	items := make([]domain.CalendarItem, 0, len(req.Items))
	for _, item := range req.Items {
		days, err := strconv.Atoi(strings.TrimSpace(item.ExpiryDate))
		if err != nil {
			log.Printf("calendar: skipping item %q with invalid expiry %q", item.Name, item.ExpiryDate)
			continue
		}

		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		itemReminderDays := item.ReminderDays
		if itemReminderDays <= 0 {
			itemReminderDays = reminderDays
		}
		itemReminderTime := item.ReminderTime
		if itemReminderTime == "" {
			itemReminderTime = reminderTime
		}

		items = append(items, domain.CalendarItem{
			Name:         item.Name,
			Quantity:     quantity,
			ExpiryDate:   now.AddDate(0, 0, days).Format("2006-01-02"),
			ReminderDays: itemReminderDays,
			ReminderTime: itemReminderTime,
		})
	}
	if len(items) == 0 {
		return domain.GenerateCalendarResponse{}, domain.ErrCalendarMissingItems
	}

	body := RenderICS(items)
	calendarID := uuid.NewString()

	s.mu.Lock()
	s.calendars[calendarID] = body
	s.mu.Unlock()

	return domain.GenerateCalendarResponse{
		Status:      "success",
		CalendarID:  calendarID,
		CalendarURL: fmt.Sprintf("%s/api/v1/calendar/%s/download", utils.GetConfig("APP_URL"), calendarID),
		Items:       items,
	}, nil
}

func (s *calendarService) Download(ctx context.Context, calendarID string) ([]byte, error) {
	if _, err := uuid.Parse(calendarID); err != nil {
		return nil, domain.ErrInvalidCalendarID
	}

	s.mu.Lock()
	body, ok := s.calendars[calendarID]
	s.mu.Unlock()
	if !ok {
		return nil, domain.ErrCalendarNotFound
	}
	return body, nil
}

// List exists for API symmetry; calendars are not persisted per user, so
// the listing is always empty.
func (s *calendarService) List(ctx context.Context) domain.ListCalendarsResponse {
	return domain.ListCalendarsResponse{
		Status:    "success",
		Count:     0,
		Calendars: []any{},
	}
}

// RenderICS renders one VEVENT per item, scheduled reminder_days before the
// expiry date at the reminder time, interpreted as UTC.
func RenderICS(items []domain.CalendarItem) []byte {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//BestBefore//Calendar//EN\r\n")
	b.WriteString("CALSCALE:GREGORIAN\r\n")

	stamp := time.Now().UTC().Format("20060102T150405Z")
	for _, item := range items {
		expiry, err := time.Parse("2006-01-02", item.ExpiryDate)
		if err != nil {
			continue
		}
		hour, minute := parseReminderTime(item.ReminderTime)
		start := time.Date(
			expiry.Year(), expiry.Month(), expiry.Day(),
			hour, minute, 0, 0, time.UTC,
		).AddDate(0, 0, -item.ReminderDays)

		b.WriteString("BEGIN:VEVENT\r\n")
		b.WriteString(fmt.Sprintf("UID:%s@bestbefore\r\n", uuid.NewString()))
		b.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", stamp))
		b.WriteString(fmt.Sprintf("DTSTART:%s\r\n", start.Format("20060102T150405Z")))
		b.WriteString(fmt.Sprintf("DTEND:%s\r\n", start.Add(30*time.Minute).Format("20060102T150405Z")))
		b.WriteString(fmt.Sprintf("SUMMARY:Use up: %s (x%d)\r\n", escapeICS(item.Name), item.Quantity))
		b.WriteString(fmt.Sprintf("DESCRIPTION:%s expires on %s\r\n", escapeICS(item.Name), item.ExpiryDate))
		b.WriteString("BEGIN:VALARM\r\n")
		b.WriteString("ACTION:DISPLAY\r\n")
		b.WriteString(fmt.Sprintf("DESCRIPTION:%s is about to expire\r\n", escapeICS(item.Name)))
		b.WriteString("TRIGGER:-PT0M\r\n")
		b.WriteString("END:VALARM\r\n")
		b.WriteString("END:VEVENT\r\n")
	}

	b.WriteString("END:VCALENDAR\r\n")
	return []byte(b.String())
}

func parseReminderTime(value string) (int, int) {
	parts := strings.SplitN(strings.ReplaceAll(value, ".", ":"), ":", 2)
	if len(parts) != 2 {
		return 20, 0
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 20, 0
	}
	return hour, minute
}

func escapeICS(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, ";", `\;`)
	value = strings.ReplaceAll(value, ",", `\,`)
	value = strings.ReplaceAll(value, "\n", `\n`)
	return value
}
