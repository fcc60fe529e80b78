package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSections_Order(t *testing.T) {
	expected := []Section{
		SectionFrozen, SectionDairy, SectionPasta, SectionCondiments, SectionSnacks,
		SectionFruits, SectionBeverages, SectionHygiene, SectionCleaning, SectionOthers,
	}
	assert.Equal(t, expected, AllSections())
}

func TestAllSections_ReturnsCopy(t *testing.T) {
	sections := AllSections()
	sections[0] = SectionOthers
	assert.Equal(t, SectionFrozen, AllSections()[0])
}

func TestParseSection(t *testing.T) {
	for _, section := range AllSections() {
		parsed, err := ParseSection(section.String())
		require.NoError(t, err)
		assert.Equal(t, section, parsed)
	}

	_, err := ParseSection("Frozen")
	assert.Error(t, err)
	_, err = ParseSection("")
	assert.Error(t, err)
}
