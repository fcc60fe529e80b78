package cli

import (
	"slices"

	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var portugueseLabels = map[model.Section]string{
	model.SectionFrozen:     "Frios",
	model.SectionDairy:      "Lacticínios e derivados",
	model.SectionPasta:      "Massas e cereais",
	model.SectionCondiments: "Temperos e condimentos",
	model.SectionSnacks:     "Snacks",
	model.SectionFruits:     "Frutas e verduras",
	model.SectionBeverages:  "Bebidas",
	model.SectionHygiene:    "Higiene",
	model.SectionCleaning:   "Limpeza",
	model.SectionOthers:     "Outros",
}

var sectionColors = map[model.Section]lipgloss.Color{
	model.SectionFrozen:     lipgloss.Color("#2F4F4F"),
	model.SectionDairy:      lipgloss.Color("#E2725B"),
	model.SectionPasta:      lipgloss.Color("#B06500"),
	model.SectionCondiments: lipgloss.Color("#556B2F"),
	model.SectionSnacks:     lipgloss.Color("#A0136B"),
	model.SectionFruits:     lipgloss.Color("#9F000F"),
	model.SectionBeverages:  lipgloss.Color("#A0522D"),
	model.SectionHygiene:    lipgloss.Color("#014D4E"),
	model.SectionCleaning:   lipgloss.Color("#1F3A93"),
	model.SectionOthers:     lipgloss.Color("#B8860B"),
}

// Labels names sections for one locale.
type Labels struct {
	tag   language.Tag
	title cases.Caser
}

// NewLabels returns section labels for tag. Portuguese locales get the
// app's own names; everything else gets the title-cased identifier.
func NewLabels(tag language.Tag) *Labels {
	return &Labels{tag: tag, title: cases.Title(tag)}
}

// Label is the display name of section.
func (l *Labels) Label(section model.Section) string {
	if base, _ := l.tag.Base(); base.String() == "pt" {
		if label, ok := portugueseLabels[section]; ok {
			return label
		}
	}
	return l.title.String(section.String())
}

// Sorted returns every section ordered alphabetically by label under the
// locale's collation rules, which is how pickers list them.
func (l *Labels) Sorted() []model.Section {
	sections := model.AllSections()
	col := collate.New(l.tag)
	slices.SortStableFunc(sections, func(a, b model.Section) int {
		return col.CompareString(l.Label(a), l.Label(b))
	})
	return sections
}

// SectionColor is the accent color of section.
func SectionColor(section model.Section) lipgloss.Color {
	if c, ok := sectionColors[section]; ok {
		return c
	}
	return SubtleColor
}

// SectionStyle renders a section heading in its accent color.
func SectionStyle(section model.Section) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(SectionColor(section))
}
