package foodbank

import (
	"bestbefore-backend/domain"
	"regexp"
	"strings"
)

var (
	weekdayNames = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
	weekendNames = []string{"saturday", "sunday"}
	allDayNames  = append(append([]string{}, weekdayNames...), weekendNames...)

	timeRangePattern = regexp.MustCompile(`(\d{1,2}[:.]\d{2})-(\d{1,2}[:.]\d{2})`)
)

// ParseOperatingHours turns a free-text hours string from the geospatial
// table into the structured form the locator UI renders. The vocabulary is
// small and quirky ("08:00-17:00 daily beside sunday"); anything that does
// not fit a known pattern degrades to a closed schedule with the raw text
// preserved, never an error.
func ParseOperatingHours(hoursText string) domain.OperatingHours {
	out := domain.OperatingHours{
		Days:          []string{},
		RawText:       hoursText,
		DailySchedule: closedSchedule(),
	}
	if strings.TrimSpace(hoursText) == "" {
		return out
	}

	lower := strings.ToLower(strings.TrimSpace(hoursText))
	out.Is24Hours = strings.Contains(lower, "24 hours")

	if out.Is24Hours {
		out.Hours = "00:00-24:00"
		for _, day := range allDayNames {
			out.Days = append(out.Days, capitalizeDay(day))
			out.DailySchedule[day] = domain.DaySchedule{IsOpen: true, Hours: "00:00-24:00"}
		}
		return out
	}

	hours := extractTimeRange(lower)

	switch {
	// "08:00-17:00 in weekdays, closed in weekends"
	case strings.Contains(lower, "weekday") &&
		(strings.Contains(lower, "close in weekend") || strings.Contains(lower, "closed in weekend")):
		out.Hours = hours
		for _, day := range weekdayNames {
			out.Days = append(out.Days, capitalizeDay(day))
			out.DailySchedule[day] = domain.DaySchedule{IsOpen: true, Hours: hours}
		}

	// "07:00-19:00 daily beside sunday"
	case strings.Contains(lower, "daily beside"):
		afterBeside := strings.TrimSpace(strings.SplitN(lower, "daily beside", 2)[1])
		excluded := map[string]bool{}
		for _, day := range allDayNames {
			if strings.Contains(afterBeside, day) {
				excluded[day] = true
			}
		}
		if len(excluded) == 0 {
			if fields := strings.Fields(afterBeside); len(fields) > 0 {
				first := strings.TrimRight(fields[0], ",.:;")
				for _, day := range allDayNames {
					if first == day {
						excluded[day] = true
					}
				}
			}
		}

		out.Hours = hours
		for _, day := range allDayNames {
			if excluded[day] {
				continue
			}
			out.Days = append(out.Days, capitalizeDay(day))
			out.DailySchedule[day] = domain.DaySchedule{IsOpen: true, Hours: hours}
		}

	// "09:00-18:00 daily"
	case strings.Contains(lower, "daily"):
		out.Hours = hours
		for _, day := range allDayNames {
			out.Days = append(out.Days, capitalizeDay(day))
			out.DailySchedule[day] = domain.DaySchedule{IsOpen: true, Hours: hours}
		}

	// Explicitly named days: "10:00-14:00 on saturday, sunday"
	default:
		out.Hours = hours
		for _, day := range allDayNames {
			if strings.Contains(lower, day) {
				out.Days = append(out.Days, capitalizeDay(day))
				out.DailySchedule[day] = domain.DaySchedule{IsOpen: true, Hours: hours}
			}
		}
	}

	return out
}

// extractTimeRange pulls the first "HH:MM-HH:MM" range out of the text,
// normalizing dot-separated times to colons.
func extractTimeRange(text string) string {
	match := timeRangePattern.FindString(text)
	if match == "" {
		return ""
	}
	return strings.ReplaceAll(match, ".", ":")
}

func closedSchedule() map[string]domain.DaySchedule {
	schedule := make(map[string]domain.DaySchedule, len(allDayNames))
	for _, day := range allDayNames {
		schedule[day] = domain.DaySchedule{IsOpen: false}
	}
	return schedule
}

func capitalizeDay(day string) string {
	if day == "" {
		return day
	}
	return strings.ToUpper(day[:1]) + day[1:]
}
