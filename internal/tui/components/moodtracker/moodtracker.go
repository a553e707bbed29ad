package moodtracker

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/doseprompt/internal/calendar"
	"github.com/julianstephens/doseprompt/internal/constants"
	"github.com/julianstephens/doseprompt/internal/errors"
	"github.com/julianstephens/doseprompt/internal/models"
	"github.com/julianstephens/doseprompt/internal/mood"
	"github.com/julianstephens/doseprompt/internal/nav"
	"github.com/julianstephens/doseprompt/internal/tui/components/calendarview"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	optionStyle = lipgloss.NewStyle().
			Padding(0, 1)

	chosenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	selectedDayStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("62")).
				Bold(true)

	todayStyle = lipgloss.NewStyle().
			Underline(true)

	loggedDayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	savedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Focus is the control that receives arrow keys
type Focus int

const (
	FocusDate Focus = iota
	FocusMood
	FocusEnergy
)

var focusNames = []string{"Date", "Mood", "Energy"}

type KeyMap struct {
	Tab       key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Save      key.Binding
	Summary   key.Binding
	Back      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "prev week"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next week"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next month"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Summary: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "monthly summary"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

type Model struct {
	tracker *mood.Tracker
	today   calendar.Date
	focus   Focus
	keys    KeyMap
	notice  string
	saved   bool
}

func New(tracker *mood.Tracker, today calendar.Date) Model {
	return Model{
		tracker: tracker,
		today:   today,
		keys:    DefaultKeyMap(),
	}
}

func (m Model) Focus() Focus           { return m.focus }
func (m Model) Notice() string         { return m.notice }
func (m Model) Tracker() *mood.Tracker { return m.tracker }
func (m Model) Keys() KeyMap           { return m.keys }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	return m.handleKey(keyMsg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {

	if m.tracker.SummaryOpen() {
		switch {
		case key.Matches(msg, m.keys.PrevMonth):
			m.tracker.ShiftSummaryMonth(-1)
		case key.Matches(msg, m.keys.NextMonth):
			m.tracker.ShiftSummaryMonth(1)
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Summary):
			m.tracker.CloseSummary()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		return m, nav.Back
	case key.Matches(msg, m.keys.Tab):
		m.focus = (m.focus + 1) % Focus(len(focusNames))
	case key.Matches(msg, m.keys.PrevMonth):
		m.tracker.ShiftPickerMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		m.tracker.ShiftPickerMonth(1)
	case key.Matches(msg, m.keys.Summary):
		m.tracker.OpenSummary()
	case key.Matches(msg, m.keys.Save):
		m.save()
	case key.Matches(msg, m.keys.Left):
		m.move(-1)
	case key.Matches(msg, m.keys.Right):
		m.move(1)
	case key.Matches(msg, m.keys.Up):
		if m.focus == FocusDate {
			m.selectDate(-7)
		}
	case key.Matches(msg, m.keys.Down):
		if m.focus == FocusDate {
			m.selectDate(7)
		}
	}
	return m, nil
}

// move steps the focused row. Any change to the picks retires the last notice.
func (m *Model) move(delta int) {
	m.notice = ""
	m.saved = false
	switch m.focus {
	case FocusDate:
		m.selectDate(delta)
	case FocusMood:
		m.tracker.SetMood(cycle(models.Moods, m.tracker.Mood(), delta))
	case FocusEnergy:
		m.tracker.SetEnergy(cycle(models.Energies(), m.tracker.Energy(), delta))
	}
}

func (m *Model) selectDate(days int) {
	m.tracker.MoveSelection(days)
	m.notice = ""
}

func (m *Model) save() {
	err := m.tracker.Save()
	if err == nil {
		m.saved = true
		m.notice = fmt.Sprintf("%s: %s", constants.SavedTitle, constants.SavedMessage)
		return
	}
	m.saved = false
	var ve *errors.ValidationError
	if stderrors.As(err, &ve) {
		m.notice = ve.Error()
		return
	}
	m.notice = errors.Format(err)
}

// cycle steps through options from current. With nothing chosen, forward
// picks the first option and backward the last.
func cycle[T comparable](options []T, current T, delta int) T {
	idx := -1
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		if delta < 0 {
			return options[len(options)-1]
		}
		return options[0]
	}
	n := len(options)
	return options[((idx+delta)%n+n)%n]
}

func (m Model) View() string {
	if m.tracker.SummaryOpen() {
		return m.viewSummary()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Mood Tracker"))
	b.WriteString("\n\n")

	b.WriteString(m.label(FocusDate, fmt.Sprintf("Date: %s", m.tracker.Selected().Time().Format("Mon, Jan 2 2006"))))
	b.WriteString("\n")
	b.WriteString(m.viewPicker())
	b.WriteString("\n\n")

	b.WriteString(m.label(FocusMood, "How are you feeling?"))
	b.WriteString("\n")
	moods := make([]string, 0, len(models.Moods))
	for _, md := range models.Moods {
		moods = append(moods, option(md.Emoji()+" "+md.Label(), md == m.tracker.Mood()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, moods...))
	b.WriteString("\n\n")

	b.WriteString(m.label(FocusEnergy, "Energy level"))
	b.WriteString("\n")
	levels := make([]string, 0, len(models.Energies()))
	for _, e := range models.Energies() {
		levels = append(levels, option(e.Label(), e == m.tracker.Energy()))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, levels...))
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString("\n")
		if m.saved {
			b.WriteString(savedStyle.Render(m.notice))
		} else {
			b.WriteString(warningStyle.Render(m.notice))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("tab: field • ←/→: change • [/]: month • enter: save • v: summary • esc: back"))
	return b.String()
}

func (m Model) viewPicker() string {
	picker := m.tracker.PickerMonth()
	logged := m.tracker.PickerEntries()
	selected := m.tracker.Selected()

	return calendarview.Render(picker.Title(), picker.Matrix(), func(d calendar.Date) (string, lipgloss.Style) {
		style := lipgloss.NewStyle()
		if _, ok := logged[d.ISO()]; ok {
			style = loggedDayStyle
		}
		if d == m.today {
			style = style.Inherit(todayStyle)
		}
		if d == selected {
			style = selectedDayStyle
		}
		return calendarview.DayText(d), style
	})
}

func (m Model) viewSummary() string {
	summary := m.tracker.SummaryMonth()
	entries := m.tracker.SummaryEntries()

	cal := calendarview.Render(summary.Title(), summary.Matrix(), func(d calendar.Date) (string, lipgloss.Style) {
		if e, ok := entries[d.ISO()]; ok {
			return fmt.Sprintf("%s%d", e.Mood.Emoji(), e.Energy), loggedDayStyle
		}
		return calendarview.DayText(d), lipgloss.NewStyle()
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Monthly Summary"),
		"",
		cal,
		"",
		fmt.Sprintf("%d day(s) logged", len(entries)),
		"",
		hintStyle.Render("[/]: month • esc: close"),
	)
}

func (m Model) label(f Focus, text string) string {
	if m.focus == f {
		return focusedLabelStyle.Render("› " + text)
	}
	return labelStyle.Render("  " + text)
}

func option(text string, chosen bool) string {
	if chosen {
		return chosenStyle.Render(text)
	}
	return optionStyle.Render(text)
}
