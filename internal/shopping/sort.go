package shopping

import (
	"strings"

	"github.com/Veraticus/shopping-buddy/internal/model"
)

// CompareForDisplay orders items within a section: unpurchased first, then by
// name (case-sensitive, ascending). Name ties compare equal, so use a stable
// sort to keep insertion order among them.
func CompareForDisplay(a, b model.Item) int {
	if a.IsPurchased != b.IsPurchased {
		if !a.IsPurchased {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Name, b.Name)
}
