package foodbank

import (
	"reflect"
	"testing"
)

func TestParseOperatingHours24Hours(t *testing.T) {
	got := ParseOperatingHours("Open 24 hours")

	if !got.Is24Hours {
		t.Error("expected Is24Hours")
	}
	if got.Hours != "00:00-24:00" {
		t.Errorf("Hours = %q, want 00:00-24:00", got.Hours)
	}
	if len(got.Days) != 7 {
		t.Errorf("expected all 7 days open, got %v", got.Days)
	}
	if !got.DailySchedule["sunday"].IsOpen {
		t.Error("sunday must be open on a 24-hour schedule")
	}
}

func TestParseOperatingHoursWeekdaysOnly(t *testing.T) {
	got := ParseOperatingHours("08:00-17:00 in weekdays, closed in weekends")

	if got.Hours != "08:00-17:00" {
		t.Errorf("Hours = %q, want 08:00-17:00", got.Hours)
	}
	want := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	if !reflect.DeepEqual(got.Days, want) {
		t.Errorf("Days = %v, want %v", got.Days, want)
	}
	if got.DailySchedule["saturday"].IsOpen || got.DailySchedule["sunday"].IsOpen {
		t.Error("weekend days must stay closed")
	}
	if got.DailySchedule["monday"].Hours != "08:00-17:00" {
		t.Errorf("monday hours = %q", got.DailySchedule["monday"].Hours)
	}
}

func TestParseOperatingHoursDailyBeside(t *testing.T) {
	got := ParseOperatingHours("07.00-19.00 daily beside sunday")

	if got.Hours != "07:00-19:00" {
		t.Errorf("Hours = %q, dot times must normalize to colons", got.Hours)
	}
	if got.DailySchedule["sunday"].IsOpen {
		t.Error("the excluded day must stay closed")
	}
	if !got.DailySchedule["saturday"].IsOpen || !got.DailySchedule["monday"].IsOpen {
		t.Error("every other day must be open")
	}
	if len(got.Days) != 6 {
		t.Errorf("expected 6 open days, got %v", got.Days)
	}
}

func TestParseOperatingHoursDaily(t *testing.T) {
	got := ParseOperatingHours("09:00-18:00 daily")

	if got.Hours != "09:00-18:00" {
		t.Errorf("Hours = %q", got.Hours)
	}
	if len(got.Days) != 7 {
		t.Errorf("expected all 7 days, got %v", got.Days)
	}
}

func TestParseOperatingHoursExplicitDays(t *testing.T) {
	got := ParseOperatingHours("10:00-14:00 on saturday, sunday")

	want := []string{"Saturday", "Sunday"}
	if !reflect.DeepEqual(got.Days, want) {
		t.Errorf("Days = %v, want %v", got.Days, want)
	}
	if got.DailySchedule["monday"].IsOpen {
		t.Error("unnamed days must stay closed")
	}
	if got.DailySchedule["saturday"].Hours != "10:00-14:00" {
		t.Errorf("saturday hours = %q", got.DailySchedule["saturday"].Hours)
	}
}

func TestParseOperatingHoursUnparseable(t *testing.T) {
	raw := "call for hours"
	got := ParseOperatingHours(raw)

	if got.RawText != raw {
		t.Errorf("RawText = %q, want original preserved", got.RawText)
	}
	if len(got.Days) != 0 {
		t.Errorf("expected no open days, got %v", got.Days)
	}
	for day, schedule := range got.DailySchedule {
		if schedule.IsOpen {
			t.Errorf("%s must be closed on an unparseable schedule", day)
		}
	}
}

func TestParseOperatingHoursEmpty(t *testing.T) {
	got := ParseOperatingHours("   ")

	if got.Is24Hours || len(got.Days) != 0 || got.Hours != "" {
		t.Errorf("blank input must yield a closed schedule, got %+v", got)
	}
}
