package reconcile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var labelPattern = regexp.MustCompile(`^(.*) \((\d+) days(?:, ([^)]+))?\)$`)

// RenderLabel builds the display string "<name> (<N> days[, <source>])".
// Duration and source live in typed fields; the label is rendering only and
// is never parsed back except by BareName below, which exists to accept
// labeled names from older clients.
func RenderLabel(name string, durationDays int, source string) string {
	if source != "" {
		return fmt.Sprintf("%s (%d days, %s)", name, durationDays, source)
	}
	return fmt.Sprintf("%s (%d days)", name, durationDays)
}

// BareName strips a trailing "(<N> days[, <source>])" suffix when one is
// present, returning the plain item name plus whatever the suffix carried.
// ok is false when the input carries no suffix.
func BareName(labeled string) (name string, durationDays int, source string, ok bool) {
	match := labelPattern.FindStringSubmatch(strings.TrimSpace(labeled))
	if match == nil {
		return strings.TrimSpace(labeled), 0, "", false
	}
	days, err := strconv.Atoi(match[2])
	if err != nil {
		return strings.TrimSpace(labeled), 0, "", false
	}
	return match[1], days, match[3], true
}
