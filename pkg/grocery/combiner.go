package grocery

import (
	"bestbefore-backend/domain"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const asNeeded = "as needed"

var (
	amountUnitPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(.*)$`)
	piecesPattern     = regexp.MustCompile(`^(\d+)\s+(pieces?|large|medium|small)$`)
	multiplierPattern = regexp.MustCompile(`^(\d+)x\s+(.*)$`)
)

// ScaleIngredients multiplies ingredient quantities by the number of
// servings. "as needed" is left alone, unparseable quantities gain an
// "Nx " prefix instead of being dropped.
func ScaleIngredients(ingredients []domain.GroceryIngredient, servings int) []domain.GroceryIngredient {
	if servings <= 1 {
		return ingredients
	}

	out := make([]domain.GroceryIngredient, 0, len(ingredients))
	for _, ing := range ingredients {
		if ing.Name == "" {
			continue
		}
		quantity := ing.Quantity
		if quantity == "" {
			quantity = asNeeded
		}
		if quantity != asNeeded {
			quantity = scaleQuantity(quantity, servings)
		}
		out = append(out, domain.GroceryIngredient{Name: ing.Name, Quantity: quantity})
	}
	return out
}

func scaleQuantity(quantity string, servings int) string {
	// Piece forms first, so "1 piece" pluralizes instead of being treated
	// as an amount with the unit "piece".
	if match := piecesPattern.FindStringSubmatch(quantity); match != nil {
		count, _ := strconv.Atoi(match[1])
		count *= servings
		unit := match[2]
		if unit == "piece" && count > 1 {
			unit = "pieces"
		}
		return fmt.Sprintf("%d %s", count, unit)
	}

	if match := amountUnitPattern.FindStringSubmatch(quantity); match != nil {
		amount, err := strconv.ParseFloat(match[1], 64)
		if err == nil {
			return strings.TrimSpace(formatAmount(amount*float64(servings)) + " " + match[2])
		}
	}

	return fmt.Sprintf("%dx %s", servings, quantity)
}

// CombineIngredients folds duplicate ingredients (case-insensitive name)
// into one entry, adding their quantities. The first-seen casing is kept.
func CombineIngredients(ingredients []domain.GroceryIngredient) []domain.GroceryIngredient {
	combined := make(map[string]int) // lowercase name -> index in out
	out := make([]domain.GroceryIngredient, 0, len(ingredients))

	for _, ing := range ingredients {
		key := strings.ToLower(strings.TrimSpace(ing.Name))
		if key == "" {
			continue
		}
		quantity := ing.Quantity
		if quantity == "" {
			quantity = asNeeded
		}

		if i, ok := combined[key]; ok {
			out[i].Quantity = AddQuantities(out[i].Quantity, quantity)
			continue
		}
		combined[key] = len(out)
		out = append(out, domain.GroceryIngredient{Name: ing.Name, Quantity: quantity})
	}
	return out
}

// AddQuantities adds two quantity strings. Identical units sum directly;
// weight units convert through grams and volume units through milliliters;
// piece counts and "Nx" forms add when their bases match. Anything else
// joins with " + ".
func AddQuantities(q1, q2 string) string {
	if q1 == asNeeded {
		return q2
	}
	if q2 == asNeeded {
		return q1
	}

	// "Nx <base>" and piece forms must be matched before the generic amount
	// pattern, which would otherwise treat "x <base>" or "piece" as the unit
	// and skip pluralization.
	x1 := multiplierPattern.FindStringSubmatch(q1)
	x2 := multiplierPattern.FindStringSubmatch(q2)
	if x1 != nil && x2 != nil && x1[2] == x2[2] {
		c1, _ := strconv.Atoi(x1[1])
		c2, _ := strconv.Atoi(x2[1])
		return fmt.Sprintf("%dx %s", c1+c2, x1[2])
	}

	p1 := piecesPattern.FindStringSubmatch(q1)
	p2 := piecesPattern.FindStringSubmatch(q2)
	if p1 != nil && p2 != nil && p1[2] == p2[2] {
		c1, _ := strconv.Atoi(p1[1])
		c2, _ := strconv.Atoi(p2[1])
		unit := p1[2]
		if unit == "piece" && c1+c2 > 1 {
			unit = "pieces"
		}
		return fmt.Sprintf("%d %s", c1+c2, unit)
	}

	m1 := amountUnitPattern.FindStringSubmatch(q1)
	m2 := amountUnitPattern.FindStringSubmatch(q2)
	if m1 != nil && m2 != nil {
		n1, err1 := strconv.ParseFloat(m1[1], 64)
		n2, err2 := strconv.ParseFloat(m2[1], 64)
		if err1 == nil && err2 == nil {
			u1 := strings.TrimSpace(m1[2])
			u2 := strings.TrimSpace(m2[2])

			if u1 == u2 {
				return strings.TrimSpace(formatAmount(n1+n2) + " " + u1)
			}
			if isWeightUnit(u1) && isWeightUnit(u2) {
				return formatWeight(toGrams(n1, u1) + toGrams(n2, u2))
			}
			if isVolumeUnit(u1) && isVolumeUnit(u2) {
				return formatVolume(toMilliliters(n1, u1) + toMilliliters(n2, u2))
			}
		}
	}

	return q1 + " + " + q2
}

func isWeightUnit(unit string) bool {
	switch strings.ToLower(unit) {
	case "g", "gram", "grams", "kg", "kilogram", "kilograms":
		return true
	}
	return false
}

func isVolumeUnit(unit string) bool {
	switch strings.ToLower(unit) {
	case "ml", "milliliter", "milliliters", "l", "liter", "liters":
		return true
	}
	return false
}

func toGrams(value float64, unit string) float64 {
	switch strings.ToLower(unit) {
	case "kg", "kilogram", "kilograms":
		return value * 1000
	}
	return value
}

func toMilliliters(value float64, unit string) float64 {
	switch strings.ToLower(unit) {
	case "l", "liter", "liters":
		return value * 1000
	}
	return value
}

func formatWeight(grams float64) string {
	if grams >= 1000 {
		kg := grams / 1000
		if kg == float64(int(kg)) {
			return fmt.Sprintf("%d kg", int(kg))
		}
		return fmt.Sprintf("%.1f kg", kg)
	}
	return fmt.Sprintf("%d g", int(grams))
}

func formatVolume(ml float64) string {
	if ml >= 1000 {
		l := ml / 1000
		if l == float64(int(l)) {
			return fmt.Sprintf("%d l", int(l))
		}
		return fmt.Sprintf("%.1f l", l)
	}
	return fmt.Sprintf("%d ml", int(ml))
}

func formatAmount(v float64) string {
	if v == float64(int(v)) {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
