package shoppinglist

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/julianstephens/doseprompt/internal/constants"
	"github.com/julianstephens/doseprompt/internal/logger"
	"github.com/julianstephens/doseprompt/internal/nav"
	"github.com/julianstephens/doseprompt/internal/shopping"
)

const defaultLabelWidth = 32

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	checkedStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("241"))

	lockedStyle = lipgloss.NewStyle().
			Faint(true)

	dropdownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	optionStyle = lipgloss.NewStyle().
			PaddingLeft(6)

	activeOptionStyle = lipgloss.NewStyle().
				PaddingLeft(6).
				Foreground(lipgloss.Color("205")).
				Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Check  key.Binding
	Select key.Binding
	Delete key.Binding
	Add    key.Binding
	Back   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Check: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "check"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "dropdown"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add row"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

type Model struct {
	list      *shopping.List
	cursor    int
	option    int
	input     textinput.Model
	confirm   *huh.Form
	confirmed *bool
	keys      KeyMap
	width     int
}

func New(list *shopping.List) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter medication name"
	ti.CharLimit = 64
	ti.Width = defaultLabelWidth

	return Model{
		list:  list,
		input: ti,
		keys:  DefaultKeyMap(),
	}
}

func (m Model) List() *shopping.List { return m.list }
func (m Model) Cursor() int          { return m.cursor }
func (m Model) Confirming() bool     { return m.confirm != nil }

// Editing reports whether the custom-text editor has the keyboard
func (m Model) Editing() bool {
	r := m.current()
	return r != nil && r.EditingCustom()
}

func (m Model) current() *shopping.Row {
	rows := m.list.Rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil
	}
	return rows[m.cursor]
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.confirm != nil {
		return m.updateConfirm(msg)
	}

	r := m.current()
	if r == nil {
		return m.updateEmpty(msg)
	}

	if r.EditingCustom() {
		return m.updateEditor(r, msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if r.DropdownOpen() {
		return m.updateDropdown(r, keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Back):
		return m, nav.Back
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Check):
		m.list.ToggleCheck(r.ID())
	case key.Matches(keyMsg, m.keys.Select):
		m.list.ToggleDropdown(r.ID())
		m.option = 0
	case key.Matches(keyMsg, m.keys.Add):
		m.list.Add()
		m.cursor = m.list.Len() - 1
	case key.Matches(keyMsg, m.keys.Delete):
		return m, m.requestDelete(r)
	}
	return m, nil
}

// updateEmpty handles keys while the list has no rows
func (m Model) updateEmpty(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Back):
		return m, nav.Back
	case key.Matches(keyMsg, m.keys.Add):
		m.list.Add()
		m.cursor = m.list.Len() - 1
	}
	return m, nil
}

func (m Model) updateDropdown(r *shopping.Row, msg tea.KeyMsg) (Model, tea.Cmd) {
	opts := m.list.Options()
	switch {
	case key.Matches(msg, m.keys.Back):
		m.list.ToggleDropdown(r.ID())
	case key.Matches(msg, m.keys.Up):
		if m.option > 0 {
			m.option--
		}
	case key.Matches(msg, m.keys.Down):
		if m.option < len(opts)-1 {
			m.option++
		}
	case key.Matches(msg, m.keys.Select):
		value := opts[m.option].Value
		m.list.Select(r.ID(), value)
		if value == constants.CustomMedicationID {
			m.input.Reset()
			return m, m.input.Focus()
		}
	}
	return m, nil
}

func (m Model) updateEditor(r *shopping.Row, msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Select):
			m.list.ConfirmCustom(r.ID())
			m.input.Blur()
			logger.Debug("Custom medication confirmed", "label", r.Label())
			return m, nil
		case key.Matches(keyMsg, m.keys.Back):
			m.input.Blur()
			return m, nav.Back
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.list.EditCustomText(r.ID(), m.input.Value())
	return m, cmd
}

func (m *Model) requestDelete(r *shopping.Row) tea.Cmd {
	prompt, ok := m.list.RequestDelete(r.ID())
	if !ok {
		return nil
	}

	confirmed := false
	m.confirmed = &confirmed
	m.confirm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Delete").
				Negative("Cancel").
				Value(m.confirmed),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(false)
	return m.confirm.Init()
}

func (m Model) updateConfirm(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.resolveDelete(false)
		return m, nil
	}

	form, cmd := m.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirm = f
	}

	switch m.confirm.State {
	case huh.StateCompleted:
		m.resolveDelete(*m.confirmed)
	case huh.StateAborted:
		m.resolveDelete(false)
	}
	return m, cmd
}

// resolveDelete applies the answer to the pending delete and closes the prompt
func (m *Model) resolveDelete(confirmed bool) {
	if confirmed {
		id, _ := m.list.PendingDelete()
		if m.list.ConfirmDelete() {
			logger.Debug("Shopping row deleted", "id", id)
		}
	} else {
		m.list.CancelDelete()
	}
	m.confirm = nil
	m.confirmed = nil
	if m.cursor >= m.list.Len() {
		m.cursor = max(m.list.Len()-1, 0)
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Shopping list"))
	b.WriteString("\n\n")

	rows := m.list.Rows()
	if len(rows) == 0 {
		b.WriteString("  No items yet.\n  Press 'a' to add one.\n")
	}

	opts := m.list.Options()
	for i, r := range rows {
		b.WriteString(m.viewRow(i == m.cursor, r))
		b.WriteString("\n")

		if r.DropdownOpen() {
			for j, o := range opts {
				if i == m.cursor && j == m.option {
					b.WriteString(activeOptionStyle.Render("› " + o.Label))
				} else {
					b.WriteString(optionStyle.Render("  " + o.Label))
				}
				b.WriteString("\n")
			}
		}
		if r.EditingCustom() {
			b.WriteString(optionStyle.Render(m.input.View()))
			b.WriteString("\n")
			b.WriteString(optionStyle.Render(hintStyle.Render("enter: Done")))
			b.WriteString("\n")
		}
	}

	if m.confirm != nil {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("space: check • enter: select • a: add • x: delete • esc: back"))
	return b.String()
}

func (m Model) viewRow(focused bool, r *shopping.Row) string {
	marker := "  "
	if focused {
		marker = cursorStyle.Render("› ")
	}

	box := "[ ]"
	if r.Checked() {
		box = "[x]"
	}

	label := truncate.StringWithTail(r.Label(), uint(m.labelWidth()), "…")
	switch {
	case r.Checked():
		label = checkedStyle.Render(label)
	case r.DropdownLocked():
		label = lockedStyle.Render(label)
	}

	dropdown := dropdownStyle.Render(r.DropdownLabel() + " ▾")
	if r.DropdownLocked() {
		dropdown = lockedStyle.Render(r.DropdownLabel())
	}

	return marker + box + " " + label + "  " + dropdown
}

func (m Model) labelWidth() int {
	if m.width <= 0 {
		return defaultLabelWidth
	}
	return max(m.width/2, 10)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.input.Width = m.labelWidth()
}
