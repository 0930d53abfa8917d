package inventory

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var leadingNumber = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)`)

// MergeQuantities combines two quantity strings for the same logical item.
// Quantities that already carry a "+" grow by appending, never by
// re-summing. Two plain numeric quantities with the same letter-only unit
// suffix are summed; anything else joins with " + ". Units are never
// converted.
func MergeQuantities(a, b string) string {
	if strings.Contains(a, "+") {
		parts := strings.Split(a, "+")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		parts = append(parts, strings.TrimSpace(b))
		return strings.Join(parts, " + ")
	}

	aValue, aUnit, aOK := splitQuantity(a)
	bValue, bUnit, bOK := splitQuantity(b)
	if aOK && bOK && aUnit == bUnit {
		return formatQuantity(aValue+bValue) + aUnit
	}

	return a + " + " + b
}

// splitQuantity parses a leading numeric value and reduces the remainder to
// its letters, so "2 items" yields (2, "items").
func splitQuantity(q string) (float64, string, bool) {
	match := leadingNumber.FindStringSubmatch(q)
	if match == nil {
		return 0, "", false
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, "", false
	}

	var unit strings.Builder
	for _, r := range q {
		if unicode.IsLetter(r) {
			unit.WriteRune(r)
		}
	}
	return value, unit.String(), true
}

func formatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
