package splash

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/doseprompt/internal/constants"
	"github.com/julianstephens/doseprompt/internal/nav"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("18")).
			Padding(1, 4).
			Bold(true)

	taglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Italic(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// DoneMsg fires once the splash delay has elapsed
type DoneMsg struct{}

type Model struct {
	delay  time.Duration
	done   bool
	width  int
	height int
}

func New(delay time.Duration) Model {
	if delay <= 0 {
		delay = constants.SplashDelay
	}
	return Model{delay: delay}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return DoneMsg{}
	})
}

// Update advances to the auth gate on the timer or on any key, whichever
// comes first. Later triggers are ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg.(type) {
	case DoneMsg, tea.KeyMsg:
		if m.done {
			return m, nil
		}
		m.done = true
		return m, nav.Replace(constants.ScreenAuth)
	}
	return m, nil
}

func (m Model) View() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(constants.DisplayName),
		"",
		taglineStyle.Render(constants.Tagline),
		"",
		hintStyle.Render("press any key"),
	)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
