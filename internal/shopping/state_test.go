package shopping

import (
	"testing"

	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, section model.Section, purchased bool) model.Item {
	t.Helper()
	item, err := model.NewItem(name, 1, 1, section)
	require.NoError(t, err)
	item.IsPurchased = purchased
	return item
}

func TestCompareForDisplay(t *testing.T) {
	bought := mustItem(t, "Apple", model.SectionFruits, true)
	pending := mustItem(t, "Zucchini", model.SectionFruits, false)

	assert.Negative(t, CompareForDisplay(pending, bought))
	assert.Positive(t, CompareForDisplay(bought, pending))

	lower := mustItem(t, "apple", model.SectionFruits, false)
	upper := mustItem(t, "Banana", model.SectionFruits, false)
	assert.Positive(t, CompareForDisplay(lower, upper))
	assert.Zero(t, CompareForDisplay(upper, upper))
}

func TestState_Groups(t *testing.T) {
	first := mustItem(t, "Banana", model.SectionFruits, false)
	second := mustItem(t, "Banana", model.SectionFruits, false)
	state := State{
		Items: []model.Item{
			mustItem(t, "Cherry", model.SectionFruits, true),
			first,
			mustItem(t, "Apple", model.SectionFruits, false),
			second,
			mustItem(t, "Soap", model.SectionHygiene, false),
		},
		HiddenSections: []model.Section{model.SectionHygiene},
	}

	groups := state.Groups()
	require.Len(t, groups, len(model.AllSections()))
	for i, section := range model.AllSections() {
		assert.Equal(t, section, groups[i].Section)
	}

	var fruits, hygiene SectionGroup
	for _, g := range groups {
		switch g.Section {
		case model.SectionFruits:
			fruits = g
		case model.SectionHygiene:
			hygiene = g
		}
	}

	names := make([]string, 0, len(fruits.Items))
	for _, item := range fruits.Items {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"Apple", "Banana", "Banana", "Cherry"}, names)
	assert.Equal(t, first.ID, fruits.Items[1].ID)
	assert.Equal(t, second.ID, fruits.Items[2].ID)

	assert.True(t, hygiene.Hidden)
	assert.Equal(t, 1, hygiene.Count)
	assert.Nil(t, hygiene.Items)
}

func TestState_TotalPriceIncludesPurchased(t *testing.T) {
	state := State{Items: []model.Item{
		mustItem(t, "A", model.SectionOthers, true),
		mustItem(t, "B", model.SectionOthers, false),
	}}

	assert.InDelta(t, 2.0, state.TotalPrice(), 1e-9)
}

func TestParsePrice(t *testing.T) {
	assert.InDelta(t, 2.5, parsePrice(" 2.5 "), 1e-9)
	assert.Zero(t, parsePrice(""))
	assert.Zero(t, parsePrice("abc"))
	assert.Zero(t, parsePrice("NaN"))
	assert.Zero(t, parsePrice("Inf"))
}
