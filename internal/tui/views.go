package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/shopping-buddy/internal/cli"
	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// View renders the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.state.Loading {
		return m.renderLoading()
	}

	parts := []string{
		m.theme.Title.Render(cli.CartIcon + " Shopping Buddy"),
		m.renderList(),
		"",
		m.renderTotal(),
	}
	if m.mode == modeForm {
		parts = append(parts, "", m.renderForm())
	}
	if notice := m.renderNotice(); notice != "" {
		parts = append(parts, "", notice)
	}
	if m.showHelp {
		parts = append(parts, "", m.help.View(m.helpKeys()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("Loading your shopping list..."),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("q to quit"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderList() string {
	if len(m.rows) == 0 {
		return m.theme.Subtitle.Render("Your list is empty. Press a to add an item.")
	}

	lines := make([]string, 0, len(m.rows))
	for i, r := range m.rows {
		cursor := "  "
		if i == m.cursor && m.mode == modeList {
			cursor = m.theme.Selected.Render("> ")
		}

		switch r.kind {
		case rowSection:
			arrow := "▾"
			if r.hidden {
				arrow = "▸"
			}
			label := cli.SectionStyle(r.section).Render(m.labels.Label(r.section))
			count := m.theme.Subtitle.Render(fmt.Sprintf("(%d)", r.count))
			lines = append(lines, cursor+arrow+" "+label+" "+count)
		case rowItem:
			lines = append(lines, cursor+"  "+m.renderItem(r.item))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderItem(item model.Item) string {
	check := cli.UncheckedIcon
	style := m.theme.Normal
	if item.IsPurchased {
		check = cli.CheckedIcon
		style = m.theme.Purchased
	}
	line := fmt.Sprintf("%s %s  %d × %s = %s",
		check,
		item.Name,
		item.Quantity,
		m.money.Format(item.UnitPrice),
		m.money.Format(item.TotalPrice()),
	)
	return style.Render(line)
}

func (m Model) renderTotal() string {
	return m.theme.Total.Render("Total: " + m.money.Format(m.state.TotalPrice()))
}

func (m Model) renderForm() string {
	title := "New item"
	if m.state.IsEditing() {
		title = "Editing " + m.state.EditingItem.Name
	}

	labels := [fieldCount]string{"Name", "Quantity", "Price", "Section"}
	lines := []string{m.theme.Subtitle.Render(title)}
	for i := range fieldSection {
		lines = append(lines, m.formLabel(i, labels[i])+m.form.inputs[i].View())
	}
	section := "‹ " + m.labels.Label(m.form.currentSection()) + " ›"
	lines = append(lines, m.formLabel(fieldSection, labels[fieldSection])+
		cli.SectionStyle(m.form.currentSection()).Render(section))

	return m.theme.RoundedBox.Render(strings.Join(lines, "\n"))
}

func (m Model) formLabel(f field, text string) string {
	if m.form.focus == f {
		return m.theme.FocusedLabel.Render(text)
	}
	return m.theme.Label.Render(text)
}

func (m Model) renderNotice() string {
	switch {
	case m.state.ConfirmDelete && m.state.PendingDelete != nil:
		return m.theme.StatusWarning.Render(fmt.Sprintf("Remove %q from the list? (y/n)", m.state.PendingDelete.Name))
	case m.state.ConfirmDeleteAll:
		return m.theme.StatusWarning.Render(fmt.Sprintf("Remove all %d items? (y/n)", len(m.state.Items)))
	case m.state.DuplicateWarning:
		return m.theme.StatusWarning.Render("This item is already on the list.")
	case m.status != "":
		return m.theme.StatusError.Render(m.status)
	}
	return ""
}

func (m Model) helpKeys() help.KeyMap {
	switch {
	case m.state.ConfirmDelete || m.state.ConfirmDeleteAll:
		return confirmKeyMap(m.keymap)
	case m.mode == modeForm:
		return formKeyMap(m.keymap)
	default:
		return m.keymap
	}
}
