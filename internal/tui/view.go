package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/doseprompt/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.Screen() {
	case constants.ScreenSplash:
		return m.splash.View()
	case constants.ScreenAuth:
		return m.gate.View()
	case constants.ScreenHome:
		return m.viewHome()
	case constants.ScreenMoodTracker:
		return docStyle.Render(m.mood.View())
	case constants.ScreenShoppingList:
		return docStyle.Render(m.shopping.View())
	case constants.ScreenSetReminders:
		return docStyle.Render(m.reminders.View())
	}
	return ""
}

func (m Model) viewHome() string {
	m.help.ShowAll = m.showHelp
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.home.View(),
		footerStyle.Render(m.help.View(m.keys)),
	)
}
