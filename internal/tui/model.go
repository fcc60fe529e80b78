// Package tui is the interactive terminal front end of the shopping list.
// It renders manager snapshots and turns key presses into manager intents.
package tui

import (
	"context"
	"errors"

	"github.com/Veraticus/shopping-buddy/internal/cli"
	"github.com/Veraticus/shopping-buddy/internal/common"
	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/Veraticus/shopping-buddy/internal/shopping"
	"github.com/Veraticus/shopping-buddy/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeList mode = iota
	modeForm
)

type rowKind int

const (
	rowSection rowKind = iota
	rowItem
)

// row is one selectable line of the list: a section header or an item.
type row struct {
	section model.Section
	item    model.Item
	kind    rowKind
	count   int
	hidden  bool
}

// Model holds the TUI state.
type Model struct {
	ctx      context.Context
	manager  *shopping.Manager
	money    *cli.Money
	labels   *cli.Labels
	theme    themes.Theme
	status   string
	state    shopping.State
	rows     []row
	help     help.Model
	keymap   KeyMap
	form     form
	width    int
	height   int
	cursor   int
	mode     mode
	showHelp bool
	quitting bool
}

// New creates a model bound to manager. The context is used for every
// persisting manager operation.
func New(ctx context.Context, manager *shopping.Manager, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := Model{
		ctx:      ctx,
		manager:  manager,
		money:    cfg.Money,
		labels:   cfg.Labels,
		theme:    cfg.Theme,
		keymap:   cfg.KeyMap,
		help:     help.New(),
		form:     newForm(cfg.Labels.Sorted()),
		width:    cfg.Width,
		height:   cfg.Height,
		showHelp: cfg.ShowHelp,
	}
	m.help.Width = cfg.Width
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case stateChangedMsg:
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}

		var cmd tea.Cmd
		switch {
		case m.state.ConfirmDelete || m.state.ConfirmDeleteAll:
			m.handleConfirmKeys(msg)
		case m.mode == modeForm:
			cmd = m.handleFormKeys(msg)
		default:
			cmd = m.handleListKeys(msg)
		}
		return m, cmd
	}

	if m.mode == modeForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleListKeys(msg tea.KeyMsg) tea.Cmd {
	k := m.keymap
	switch {
	case key.Matches(msg, k.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case m.state.Loading:
		return nil
	}

	current, ok := m.currentRow()

	switch {
	case key.Matches(msg, k.Up):
		m.moveCursor(-1)
	case key.Matches(msg, k.Down):
		m.moveCursor(1)
	case key.Matches(msg, k.Home):
		m.cursor = 0
	case key.Matches(msg, k.End):
		m.cursor = max(len(m.rows)-1, 0)
	case key.Matches(msg, k.Add):
		return m.openForm()
	case key.Matches(msg, k.Select), key.Matches(msg, k.Edit):
		if !ok {
			return nil
		}
		if current.kind == rowSection {
			if key.Matches(msg, k.Select) {
				m.manager.ToggleSectionVisibility(current.section)
			}
			break
		}
		m.manager.BeginEdit(current.item)
		return m.openForm()
	case key.Matches(msg, k.Toggle):
		if !ok {
			return nil
		}
		if current.kind == rowSection {
			m.manager.ToggleSectionVisibility(current.section)
		} else {
			m.manager.TogglePurchased(m.ctx, current.item.ID)
		}
	case key.Matches(msg, k.Collapse):
		if ok {
			m.manager.ToggleSectionVisibility(current.section)
		}
	case key.Matches(msg, k.Delete):
		if ok && current.kind == rowItem {
			m.manager.RequestDelete(current.item)
		}
	case key.Matches(msg, k.DeleteAll):
		if len(m.state.Items) > 0 {
			m.manager.RequestDeleteAll()
		}
	}

	m.refresh()
	return nil
}

func (m *Model) handleFormKeys(msg tea.KeyMsg) tea.Cmd {
	k := m.keymap
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, k.Cancel):
		m.closeForm()
	case key.Matches(msg, k.Submit):
		editing := m.state.IsEditing()
		m.manager.SetDraft(m.form.draft())
		err := m.manager.Submit(m.ctx)
		m.setStatus(err)
		if err == nil && editing {
			m.closeForm()
			break
		}
		if err == nil {
			cmd = m.form.focusField(fieldName)
		}
	case key.Matches(msg, k.NextField):
		cmd = m.form.next()
	case key.Matches(msg, k.PrevField):
		cmd = m.form.prev()
	case m.form.focus == fieldSection && key.Matches(msg, k.PrevSection):
		m.form.shiftSection(-1)
		m.manager.SetDraft(m.form.draft())
	case m.form.focus == fieldSection && key.Matches(msg, k.NextSection):
		m.form.shiftSection(1)
		m.manager.SetDraft(m.form.draft())
	default:
		m.form, cmd = m.form.update(msg)
		m.manager.SetDraft(m.form.draft())
	}

	m.refresh()
	return cmd
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) {
	k := m.keymap
	switch {
	case key.Matches(msg, k.Confirm):
		if m.state.ConfirmDelete {
			m.manager.ConfirmDelete(m.ctx)
		} else {
			m.manager.ConfirmDeleteAll(m.ctx)
		}
	case key.Matches(msg, k.Deny):
		if m.state.ConfirmDelete {
			m.manager.CancelDelete()
		} else {
			m.manager.CancelDeleteAll()
		}
	}
	m.refresh()
}

func (m *Model) openForm() tea.Cmd {
	if !m.manager.Snapshot().ShowInputFields {
		m.manager.ToggleInputFields()
	}
	m.mode = modeForm
	m.status = ""
	m.refresh()
	return m.form.focusField(fieldName)
}

func (m *Model) closeForm() {
	if m.manager.Snapshot().IsEditing() {
		m.manager.CancelEdit()
	}
	if m.manager.Snapshot().ShowInputFields {
		m.manager.ToggleInputFields()
	}
	m.mode = modeList
	m.form.blur()
}

func (m *Model) setStatus(err error) {
	var validation *model.ValidationError
	switch {
	case err == nil, errors.Is(err, common.ErrDuplicateItem):
		m.status = ""
	case errors.Is(err, common.ErrInvalidQuantity):
		m.status = "Quantity must be a whole number."
	case errors.As(err, &validation):
		m.status = validation.Error()
	default:
		m.status = err.Error()
	}
}

// refresh pulls the latest snapshot from the manager.
func (m *Model) refresh() {
	m.state = m.manager.Snapshot()
	m.rows = buildRows(m.state)
	m.cursor = min(m.cursor, max(len(m.rows)-1, 0))
	m.form.load(m.state.Draft)
	if m.mode == modeForm && !m.state.ShowInputFields {
		m.mode = modeList
		m.form.blur()
	}
}

func (m *Model) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.rows)-1)
}

func (m Model) currentRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// buildRows flattens the non-empty section groups into list rows.
func buildRows(state shopping.State) []row {
	var rows []row
	for _, group := range state.Groups() {
		if group.Count == 0 {
			continue
		}
		rows = append(rows, row{
			kind:    rowSection,
			section: group.Section,
			count:   group.Count,
			hidden:  group.Hidden,
		})
		for _, item := range group.Items {
			rows = append(rows, row{kind: rowItem, section: group.Section, item: item})
		}
	}
	return rows
}
