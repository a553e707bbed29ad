package home

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/doseprompt/internal/constants"
	"github.com/julianstephens/doseprompt/internal/models"
	"github.com/julianstephens/doseprompt/internal/nav"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("18")).
			Padding(1, 2)

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)
)

// Item is one entry of the home menu. Entries without a screen are listed
// but cannot be opened yet.
type Item struct {
	Name   string
	Icon   string
	Screen constants.Screen
	Ready  bool
}

func (i Item) Title() string { return i.Icon + " " + i.Name }
func (i Item) Description() string {
	if !i.Ready {
		return "coming soon"
	}
	return ""
}
func (i Item) FilterValue() string { return i.Name }

// MenuItems returns the home menu in display order
func MenuItems() []Item {
	return []Item{
		{Name: "Log A Dose", Icon: "🤍"},
		{Name: "Add Medication (New)", Icon: "➕"},
		{Name: "Set Reminders", Icon: "🗓️", Screen: constants.ScreenSetReminders, Ready: true},
		{Name: "History & Stats", Icon: "📊"},
		{Name: "Refill Tracker", Icon: "💊"},
		{Name: "Shopping list", Icon: "🛒", Screen: constants.ScreenShoppingList, Ready: true},
		{Name: "Mood Tracker", Icon: "😊", Screen: constants.ScreenMoodTracker, Ready: true},
	}
}

type KeyMap struct {
	Open key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
	}
}

type Model struct {
	dose     models.DoseProgress
	progress progress.Model
	list     list.Model
	keys     KeyMap
	notice   string
}

func New(dose models.DoseProgress, width, height int) Model {
	menu := MenuItems()
	items := make([]list.Item, len(menu))
	for i, it := range menu {
		items[i] = it
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Menu"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open}
	}

	return Model{
		dose:     dose,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		list:     l,
		keys:     keys,
	}
}

// Start animates the progress bar toward today's completion
func (m *Model) Start() tea.Cmd {
	return m.progress.SetPercent(m.dose.Fraction())
}

// Notice returns the message shown for menu entries that cannot be opened
func (m Model) Notice() string {
	return m.notice
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progress.FrameMsg:
		pm, cmd := m.progress.Update(msg)
		if p, ok := pm.(progress.Model); ok {
			m.progress = p
		}
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Open) {
			return m, m.open()
		}
	}

	m.notice = ""
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) open() tea.Cmd {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return nil
	}
	if !item.Ready {
		m.notice = fmt.Sprintf("%s is not available yet.", item.Name)
		return nil
	}
	m.notice = ""
	return nav.GoTo(item.Screen)
}

func (m Model) View() string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		"Daily Progress",
		"",
		m.progress.View(),
		percentStyle.Render(fmt.Sprintf("%d%%", m.dose.RoundedPercent())),
		fmt.Sprintf("%d of %d Doses", m.dose.Completed, m.dose.Total),
	)

	parts := []string{headerStyle.Render(header), "", m.list.View()}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) SetSize(width, height int) {
	// header block plus notice line
	m.list.SetSize(width, max(height-9, 3))
	m.progress.Width = min(max(width-8, 10), 60)
}
