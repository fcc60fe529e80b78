package tui

import (
	"testing"

	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/Veraticus/shopping-buddy/internal/shopping"
	"github.com/stretchr/testify/assert"
)

func TestForm_SectionPickerWraps(t *testing.T) {
	f := newForm(model.AllSections())
	assert.Equal(t, model.DefaultSection, f.currentSection())

	f.shiftSection(-1)
	assert.Equal(t, model.SectionOthers, f.currentSection())

	f.shiftSection(1)
	assert.Equal(t, model.SectionFrozen, f.currentSection())
}

func TestForm_LoadAndDraft(t *testing.T) {
	f := newForm(model.AllSections())
	d := shopping.Draft{Name: "Rice", QuantityText: "3", UnitPriceText: "7.9", Section: model.SectionPasta}

	f.load(d)
	assert.Equal(t, d, f.draft())

	f.load(shopping.Draft{Section: model.Section("garage")})
	assert.Equal(t, model.SectionPasta, f.currentSection(), "unknown sections keep the selection")
	assert.Empty(t, f.draft().Name)
}

func TestForm_FocusCycle(t *testing.T) {
	f := newForm(model.AllSections())

	f.focusField(fieldName)
	assert.True(t, f.inputs[fieldName].Focused())

	f.next()
	f.next()
	f.next()
	assert.Equal(t, fieldSection, f.focus)
	for i := range f.inputs {
		assert.False(t, f.inputs[i].Focused())
	}

	f.next()
	assert.Equal(t, fieldName, f.focus)

	f.prev()
	assert.Equal(t, fieldSection, f.focus)
}
