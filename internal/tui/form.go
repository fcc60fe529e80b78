package tui

import (
	"slices"

	"github.com/Veraticus/shopping-buddy/internal/model"
	"github.com/Veraticus/shopping-buddy/internal/shopping"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type field int

const (
	fieldName field = iota
	fieldQuantity
	fieldPrice
	fieldSection
	fieldCount
)

// form is the add/edit panel: three text inputs and a section picker.
type form struct {
	sections []model.Section
	inputs   [fieldSection]textinput.Model
	section  int
	focus    field
}

func newForm(sections []model.Section) form {
	// No limits: stored values of any length must survive an edit untouched.
	name := textinput.New()
	name.Placeholder = "Item name"
	name.CharLimit = 0
	name.Prompt = ""

	quantity := textinput.New()
	quantity.Placeholder = "1"
	quantity.CharLimit = 0
	quantity.Prompt = ""

	price := textinput.New()
	price.Placeholder = "0.00"
	price.CharLimit = 0
	price.Prompt = ""

	f := form{
		sections: sections,
		inputs:   [fieldSection]textinput.Model{name, quantity, price},
	}
	f.selectSection(model.DefaultSection)
	return f
}

// draft reads the current input as manager form state.
func (f form) draft() shopping.Draft {
	return shopping.Draft{
		Name:          f.inputs[fieldName].Value(),
		QuantityText:  f.inputs[fieldQuantity].Value(),
		UnitPriceText: f.inputs[fieldPrice].Value(),
		Section:       f.currentSection(),
	}
}

// load copies d into the inputs. Inputs that already hold the value are left
// alone so the cursor does not jump while typing.
func (f *form) load(d shopping.Draft) {
	values := [fieldSection]string{d.Name, d.QuantityText, d.UnitPriceText}
	for i, v := range values {
		if f.inputs[i].Value() != v {
			f.inputs[i].SetValue(v)
		}
	}
	f.selectSection(d.Section)
}

func (f form) currentSection() model.Section {
	if len(f.sections) == 0 {
		return model.DefaultSection
	}
	return f.sections[f.section]
}

func (f *form) selectSection(section model.Section) {
	if idx := slices.Index(f.sections, section); idx >= 0 {
		f.section = idx
	}
}

func (f *form) shiftSection(delta int) {
	n := len(f.sections)
	if n == 0 {
		return
	}
	f.section = ((f.section+delta)%n + n) % n
}

func (f *form) focusField(target field) tea.Cmd {
	f.blur()
	f.focus = target
	if target < fieldSection {
		return f.inputs[target].Focus()
	}
	return nil
}

func (f *form) next() tea.Cmd {
	return f.focusField((f.focus + 1) % fieldCount)
}

func (f *form) prev() tea.Cmd {
	return f.focusField((f.focus + fieldCount - 1) % fieldCount)
}

func (f *form) blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// update forwards msg to the focused text input.
func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	if f.focus >= fieldSection {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}
