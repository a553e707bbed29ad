package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/doseprompt/internal/constants"
	"github.com/julianstephens/doseprompt/internal/logger"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.Screen() == constants.ScreenHome {
			switch {
			case key.Matches(msg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				m.showHelp = !m.showHelp
				return m, nil
			}
		}
	}

	before := m.router.Current()
	if m.router.Handle(msg) {
		after := m.router.Current()
		logger.Screen(after, "Entered", "from", before, "depth", m.router.Depth())
		return m, m.enter(after)
	}

	return m.updateScreen(msg)
}

func (m Model) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.Screen() {
	case constants.ScreenSplash:
		m.splash, cmd = m.splash.Update(msg)
	case constants.ScreenAuth:
		m.gate, cmd = m.gate.Update(msg)
	case constants.ScreenHome:
		m.home, cmd = m.home.Update(msg)
	case constants.ScreenMoodTracker:
		m.mood, cmd = m.mood.Update(msg)
	case constants.ScreenShoppingList:
		m.shopping, cmd = m.shopping.Update(msg)
	case constants.ScreenSetReminders:
		m.reminders, cmd = m.reminders.Update(msg)
	}
	return m, cmd
}
