package calendar

import (
	"bestbefore-backend/domain"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGenerateAppliesDefaultsAndSkipsInvalidExpiry(t *testing.T) {
	service := NewCalendarService()

	res, err := service.Generate(context.Background(), domain.GenerateCalendarRequest{
		Items: []domain.CalendarItemRequest{
			{Name: "Milk", ExpiryDate: "3"},
			{Name: "Mystery", ExpiryDate: "next tuesday"},
		},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(res.Items) != 1 {
		t.Fatalf("expected 1 item after skipping the invalid expiry, got %d", len(res.Items))
	}

	item := res.Items[0]
	if item.Quantity != 1 {
		t.Errorf("Quantity = %d, want default 1", item.Quantity)
	}
	if item.ReminderDays != 2 {
		t.Errorf("ReminderDays = %d, want default 2", item.ReminderDays)
	}
	if item.ReminderTime != "20:00" {
		t.Errorf("ReminderTime = %q, want default 20:00", item.ReminderTime)
	}

	wantDate := time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02")
	if item.ExpiryDate != wantDate {
		t.Errorf("ExpiryDate = %q, want %q", item.ExpiryDate, wantDate)
	}
	if !strings.Contains(res.CalendarURL, res.CalendarID+"/download") {
		t.Errorf("CalendarURL = %q, want the download path for %q", res.CalendarURL, res.CalendarID)
	}
}

func TestGenerateRejectsEmptyAndAllInvalid(t *testing.T) {
	service := NewCalendarService()
	ctx := context.Background()

	if _, err := service.Generate(ctx, domain.GenerateCalendarRequest{}); !errors.Is(err, domain.ErrCalendarMissingItems) {
		t.Errorf("empty request error = %v, want ErrCalendarMissingItems", err)
	}

	_, err := service.Generate(ctx, domain.GenerateCalendarRequest{
		Items: []domain.CalendarItemRequest{{Name: "Mystery", ExpiryDate: "soon"}},
	})
	if !errors.Is(err, domain.ErrCalendarMissingItems) {
		t.Errorf("all-invalid request error = %v, want ErrCalendarMissingItems", err)
	}
}

func TestDownloadRoundTrip(t *testing.T) {
	service := NewCalendarService()
	ctx := context.Background()

	res, err := service.Generate(ctx, domain.GenerateCalendarRequest{
		Items: []domain.CalendarItemRequest{{Name: "Milk", ExpiryDate: "3", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	body, err := service.Download(ctx, res.CalendarID)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if !strings.Contains(string(body), "SUMMARY:Use up: Milk (x2)") {
		t.Errorf("downloaded body missing the event summary:\n%s", body)
	}

	if _, err := service.Download(ctx, "not-a-uuid"); !errors.Is(err, domain.ErrInvalidCalendarID) {
		t.Errorf("malformed id error = %v, want ErrInvalidCalendarID", err)
	}
	if _, err := service.Download(ctx, "1b671a64-40d5-491e-99b0-da01ff1f3341"); !errors.Is(err, domain.ErrCalendarNotFound) {
		t.Errorf("unknown id error = %v, want ErrCalendarNotFound", err)
	}
}

func TestRenderICS(t *testing.T) {
	body := string(RenderICS([]domain.CalendarItem{{
		Name:         "Milk, whole",
		Quantity:     1,
		ExpiryDate:   "2026-09-10",
		ReminderDays: 2,
		ReminderTime: "20:00",
	}}))

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"PRODID:-//BestBefore//Calendar//EN",
		"BEGIN:VEVENT",
		// Two days before the expiry at the reminder time.
		"DTSTART:20260908T200000Z",
		"DTEND:20260908T203000Z",
		`SUMMARY:Use up: Milk\, whole (x1)`,
		"BEGIN:VALARM",
		"END:VCALENDAR",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("rendered calendar missing %q:\n%s", want, body)
		}
	}
}

func TestListIsAlwaysEmpty(t *testing.T) {
	service := NewCalendarService()
	got := service.List(context.Background())
	if got.Count != 0 || len(got.Calendars) != 0 {
		t.Errorf("List = %+v, want empty", got)
	}
}
