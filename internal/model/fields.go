package model

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// UnnamedItem replaces blank names on the edit path.
const UnnamedItem = "Unnamed"

func trimName(name string) string {
	return strings.TrimSpace(name)
}

// NonEmptyName trims name and falls back to UnnamedItem when nothing is left.
func NonEmptyName(name string) string {
	trimmed := trimName(name)
	if trimmed == "" {
		return UnnamedItem
	}
	return trimmed
}

// NonZeroQuantity clamps quantities below 1 to 1.
func NonZeroQuantity(quantity int) int {
	return max(1, quantity)
}

// PriceAmount clamps negative prices to 0.
func PriceAmount(price float64) float64 {
	if price < 0 || math.IsNaN(price) {
		return 0
	}
	return price
}

// NameKey is the comparison key for duplicate detection: trimmed and case folded.
func NameKey(name string) string {
	return cases.Fold().String(trimName(name))
}

// SameName reports whether two names collide for duplicate detection.
func SameName(a, b string) bool {
	return NameKey(a) == NameKey(b)
}

// FormatQuantity renders a quantity the way the edit form shows it.
func FormatQuantity(quantity int) string {
	return strconv.Itoa(quantity)
}

// FormatPrice renders a price in its shortest exact decimal form.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
