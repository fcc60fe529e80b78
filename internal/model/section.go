package model

import "fmt"

// Section is the category tag used to group items for display.
type Section string

// Sections in canonical display order.
const (
	SectionFrozen     Section = "frozen"
	SectionDairy      Section = "dairy"
	SectionPasta      Section = "pasta"
	SectionCondiments Section = "condiments"
	SectionSnacks     Section = "snacks"
	SectionFruits     Section = "fruits"
	SectionBeverages  Section = "beverages"
	SectionHygiene    Section = "hygiene"
	SectionCleaning   Section = "cleaning"
	SectionOthers     Section = "others"
)

var allSections = []Section{
	SectionFrozen,
	SectionDairy,
	SectionPasta,
	SectionCondiments,
	SectionSnacks,
	SectionFruits,
	SectionBeverages,
	SectionHygiene,
	SectionCleaning,
	SectionOthers,
}

// DefaultSection is preselected on an empty form.
const DefaultSection = SectionFrozen

// AllSections returns every section in canonical order.
func AllSections() []Section {
	out := make([]Section, len(allSections))
	copy(out, allSections)
	return out
}

// Valid reports whether s belongs to the closed section set.
func (s Section) Valid() bool {
	for _, known := range allSections {
		if s == known {
			return true
		}
	}
	return false
}

func (s Section) String() string {
	return string(s)
}

// ParseSection converts a tag into a Section.
func ParseSection(tag string) (Section, error) {
	s := Section(tag)
	if !s.Valid() {
		return "", fmt.Errorf("unknown section %q", tag)
	}
	return s, nil
}
