package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/Veraticus/shopping-buddy/internal/shopping"
	"github.com/Veraticus/shopping-buddy/internal/testutil"
	"github.com/Veraticus/shopping-buddy/internal/testutil/items"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	right = tea.KeyMsg{Type: tea.KeyRight}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func newTestModel(t *testing.T, seed items.Items) (Model, *shopping.Manager, *testutil.RecordingPersistence) {
	t.Helper()
	p := testutil.NewRecordingPersistence(seed)
	manager := testutil.NewTestManager(t, p, shopping.WithDuplicateWarningDelay(time.Minute))
	m := New(context.Background(), manager, WithLocale(language.AmericanEnglish, currency.USD))
	return m, manager, p
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func TestModel_AddItemThroughForm(t *testing.T) {
	m, manager, p := newTestModel(t, nil)

	m = send(t, m, runes("a"))
	assert.Equal(t, modeForm, m.mode)
	assert.True(t, manager.Snapshot().ShowInputFields)

	m = send(t, m,
		runes("Milk"), tab,
		runes("2"), tab,
		runes("4.5"), tab,
		right,
		enter,
	)

	got := manager.Items()
	require.Len(t, got, 1)
	assert.Equal(t, "Milk", got[0].Name)
	assert.Equal(t, 2, got[0].Quantity)
	assert.InDelta(t, 4.5, got[0].UnitPrice, 1e-9)
	assert.Equal(t, model.SectionFruits, got[0].Section)
	assert.Equal(t, 1, p.SaveCount())

	assert.Equal(t, modeForm, m.mode, "form stays open for the next item")
	assert.Equal(t, fieldName, m.form.focus)
	assert.Empty(t, m.form.inputs[fieldName].Value())
	assert.Equal(t, model.SectionFruits, m.form.currentSection())
	assert.Contains(t, m.View(), "Milk")
}

func TestModel_DuplicateShowsWarning(t *testing.T) {
	seed := items.NewBuilder(t).WithItem(items.ItemMilk, 1, 4, model.SectionDairy).Build()
	m, manager, _ := newTestModel(t, seed)

	m = send(t, m, runes("a"), runes("milk"), tab, runes("1"), enter)

	assert.Len(t, manager.Items(), 1)
	assert.Contains(t, m.View(), "already on the list")
}

func TestModel_InvalidQuantityShowsStatus(t *testing.T) {
	m, manager, _ := newTestModel(t, nil)

	m = send(t, m, runes("a"), runes("Bread"), tab, runes("two"), enter)

	assert.Empty(t, manager.Items())
	assert.Contains(t, m.View(), "Quantity must be a whole number.")
	assert.Equal(t, "Bread", m.form.inputs[fieldName].Value())
}

func TestModel_TogglePurchased(t *testing.T) {
	seed := items.NewBuilder(t).WithFixture(items.FixtureMinimal).Build()
	m, manager, _ := newTestModel(t, seed)

	require.Len(t, m.rows, 2)
	m = send(t, m, runes("j"), space)

	assert.True(t, manager.Items()[0].IsPurchased)
	assert.True(t, m.rows[1].item.IsPurchased)

	send(t, m, runes("x"))
	assert.False(t, manager.Items()[0].IsPurchased)
}

func TestModel_DeleteWithConfirmation(t *testing.T) {
	seed := items.NewBuilder(t).WithFixture(items.FixtureMinimal).Build()
	m, manager, p := newTestModel(t, seed)

	m = send(t, m, runes("j"), runes("d"))
	assert.Contains(t, m.View(), `Remove "Apple" from the list?`)

	m = send(t, m, runes("n"))
	assert.Len(t, manager.Items(), 1)
	assert.False(t, m.state.ConfirmDelete)

	m = send(t, m, runes("d"), runes("y"))
	assert.Empty(t, manager.Items())
	assert.Equal(t, 1, p.SaveCount())
	assert.Contains(t, m.View(), "Your list is empty")
}

func TestModel_DeleteOnSectionHeaderDoesNothing(t *testing.T) {
	seed := items.NewBuilder(t).WithFixture(items.FixtureMinimal).Build()
	m, _, _ := newTestModel(t, seed)

	m = send(t, m, runes("d"))
	assert.False(t, m.state.ConfirmDelete)
}

func TestModel_DeleteAll(t *testing.T) {
	seed := items.NewBuilder(t).WithFixture(items.FixtureWeekly).Build()
	m, manager, p := newTestModel(t, seed)

	m = send(t, m, runes("D"))
	assert.Contains(t, m.View(), "Remove all 6 items?")

	m = send(t, m, runes("y"))
	assert.Empty(t, manager.Items())
	assert.Equal(t, 1, p.SaveCount())
	assert.Empty(t, m.rows)
}

func TestModel_EditItemKeepsIdentity(t *testing.T) {
	seed := items.NewBuilder(t).WithFixture(items.FixtureMinimal).Build()
	m, manager, _ := newTestModel(t, seed)

	m = send(t, m, runes("j"), runes("e"))
	require.Equal(t, modeForm, m.mode)
	assert.Equal(t, "Apple", m.form.inputs[fieldName].Value())
	assert.Equal(t, "2", m.form.inputs[fieldQuantity].Value())
	assert.Equal(t, "0.99", m.form.inputs[fieldPrice].Value())
	assert.Contains(t, m.View(), "Editing Apple")

	m = send(t, m, tab, tab, tab, right, enter)

	got := manager.Items()
	require.Len(t, got, 1)
	assert.Equal(t, seed[0].ID, got[0].ID)
	assert.Equal(t, 2, got[0].Quantity)
	assert.NotEqual(t, model.SectionFruits, got[0].Section)
	assert.Equal(t, modeList, m.mode)
	assert.False(t, manager.Snapshot().IsEditing())
}

func TestModel_EditWithoutChangesKeepsLongValues(t *testing.T) {
	longName := items.ItemName(strings.Repeat("n", 90))
	seed := items.NewBuilder(t).
		WithItem(longName, 1234567, 0.30000000000000004, model.SectionFruits).
		Build()
	m, manager, _ := newTestModel(t, seed)

	m = send(t, m, runes("j"), runes("e"))
	require.Equal(t, modeForm, m.mode)
	assert.Equal(t, longName.String(), m.form.inputs[fieldName].Value())
	assert.Equal(t, "1234567", m.form.inputs[fieldQuantity].Value())
	assert.Equal(t, "0.30000000000000004", m.form.inputs[fieldPrice].Value())

	m = send(t, m, enter)

	got := manager.Items()
	require.Len(t, got, 1)
	assert.Equal(t, seed[0], got[0])
	assert.Equal(t, seed[0].TotalPrice(), got[0].TotalPrice())
	assert.Equal(t, modeList, m.mode)
}

func TestModel_EscCancelsEdit(t *testing.T) {
	seed := items.NewBuilder(t).WithFixture(items.FixtureMinimal).Build()
	m, manager, p := newTestModel(t, seed)

	m = send(t, m, runes("j"), runes("e"), esc)

	assert.Equal(t, modeList, m.mode)
	state := manager.Snapshot()
	assert.False(t, state.IsEditing())
	assert.False(t, state.ShowInputFields)
	assert.Zero(t, p.SaveCount())
}

func TestModel_CollapseSection(t *testing.T) {
	seed := items.NewBuilder(t).WithFixture(items.FixtureMinimal).Build()
	m, manager, _ := newTestModel(t, seed)

	m = send(t, m, enter)
	assert.True(t, manager.Snapshot().SectionHidden(model.SectionFruits))
	require.Len(t, m.rows, 1)
	assert.True(t, m.rows[0].hidden)
	assert.Contains(t, m.View(), "▸")

	m = send(t, m, runes("c"))
	assert.Len(t, m.rows, 2)
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	seed := items.NewBuilder(t).WithFixture(items.FixtureMinimal).Build()
	m, _, _ := newTestModel(t, seed)

	m = send(t, m, runes("k"))
	assert.Zero(t, m.cursor)

	m = send(t, m, runes("G"))
	assert.Equal(t, 1, m.cursor)
	m = send(t, m, runes("j"))
	assert.Equal(t, 1, m.cursor)

	m = send(t, m, runes("g"))
	assert.Zero(t, m.cursor)
}

func TestModel_LoadingIgnoresActions(t *testing.T) {
	manager := shopping.NewManager(testutil.NewRecordingPersistence(nil))
	t.Cleanup(manager.Close)
	m := New(context.Background(), manager)

	assert.Contains(t, m.View(), "Loading your shopping list")

	m = send(t, m, runes("a"))
	assert.Equal(t, modeList, m.mode)
	assert.False(t, manager.Snapshot().ShowInputFields)
}

func TestModel_StateChangedRefreshes(t *testing.T) {
	m, manager, _ := newTestModel(t, nil)

	_, err := manager.AddItem(context.Background(), shopping.Draft{
		Name: "Coffee", QuantityText: "1", UnitPriceText: "20", Section: model.SectionBeverages,
	})
	require.NoError(t, err)
	assert.Empty(t, m.rows)

	m = send(t, m, stateChangedMsg{})
	assert.Len(t, m.rows, 2)
	assert.Contains(t, m.View(), "Coffee")
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	m = send(t, m, runes("a"), runes("q"))
	assert.False(t, m.quitting)
	assert.Equal(t, "q", m.form.inputs[fieldName].Value())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowResize(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 120, m.help.Width)
}

type chanSender chan tea.Msg

func (c chanSender) Send(msg tea.Msg) { c <- msg }

func TestForwardChanges(t *testing.T) {
	manager := testutil.NewTestManager(t, testutil.NewRecordingPersistence(nil))
	out := make(chanSender, 8)

	stop := forwardChanges(manager, out)
	defer stop()

	manager.ToggleInputFields()

	select {
	case msg := <-out:
		assert.Equal(t, stateChangedMsg{}, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no state change forwarded")
	}
}
