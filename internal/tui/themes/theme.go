// Package themes holds the lipgloss styles of the terminal UI.
package themes

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

const (
	basketGreen = lipgloss.Color("#3FA34D")
	ash         = lipgloss.Color("#737373")
	mist        = lipgloss.Color("#A3A3A3")
	chalk       = lipgloss.Color("#FAFAFA")
	frame       = lipgloss.Color("#404040")
	amber       = lipgloss.Color("#F59E0B")
	tomato      = lipgloss.Color("#EF4444")
)

// Theme is the set of styles the list screen renders with.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Selected      lipgloss.Style
	Purchased     lipgloss.Style
	Total         lipgloss.Style
	Label         lipgloss.Style
	FocusedLabel  lipgloss.Style
	RoundedBox    lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	Muted         lipgloss.Color
}

// Default matches the CLI palette.
var Default = Theme{
	Muted: ash,

	Title:     lipgloss.NewStyle().Bold(true).Foreground(basketGreen).MarginBottom(1),
	Subtitle:  lipgloss.NewStyle().Foreground(mist),
	Normal:    lipgloss.NewStyle().Foreground(chalk),
	Selected:  lipgloss.NewStyle().Bold(true).Foreground(basketGreen),
	Purchased: lipgloss.NewStyle().Strikethrough(true).Foreground(ash),
	Total:     lipgloss.NewStyle().Bold(true).Foreground(chalk),

	// Form labels share a width so the inputs line up.
	Label:        lipgloss.NewStyle().Width(10).Foreground(mist),
	FocusedLabel: lipgloss.NewStyle().Width(10).Bold(true).Foreground(basketGreen),

	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(frame).
		Padding(0, 1),

	StatusWarning: lipgloss.NewStyle().Bold(true).Foreground(amber),
	StatusError:   lipgloss.NewStyle().Bold(true).Foreground(tomato),
}

// Plain keeps the layout of Default without any color, for terminals or
// logs where escape codes are noise.
var Plain = Theme{
	Title:     lipgloss.NewStyle().Bold(true).MarginBottom(1),
	Subtitle:  lipgloss.NewStyle(),
	Normal:    lipgloss.NewStyle(),
	Selected:  lipgloss.NewStyle().Bold(true),
	Purchased: lipgloss.NewStyle().Strikethrough(true),
	Total:     lipgloss.NewStyle().Bold(true),

	Label:        lipgloss.NewStyle().Width(10),
	FocusedLabel: lipgloss.NewStyle().Width(10).Bold(true),

	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1),

	StatusWarning: lipgloss.NewStyle().Bold(true),
	StatusError:   lipgloss.NewStyle().Bold(true),
}

var byName = map[string]Theme{
	"default": Default,
	"plain":   Plain,
}

// Names lists the selectable themes in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the theme registered under name.
func ByName(name string) (Theme, bool) {
	theme, ok := byName[name]
	return theme, ok
}
