package advice

import "strings"

// FindClosestFoodType matches a free-form item name against the known food
// types. Exact match wins, then a bidirectional substring match where ties
// go to the shortest candidate. Comparison is case-insensitive. Returns
// false when nothing matches; the caller falls back to defaults rather than
// guessing.
func FindClosestFoodType(name string, foodTypes []string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}

	for _, ft := range foodTypes {
		if strings.ToLower(ft) == needle {
			return ft, true
		}
	}

	best := ""
	for _, ft := range foodTypes {
		lower := strings.ToLower(ft)
		if strings.Contains(lower, needle) || strings.Contains(needle, lower) {
			if best == "" || len(ft) < len(best) {
				best = ft
			}
		}
	}
	if best != "" {
		return best, true
	}
	return "", false
}
