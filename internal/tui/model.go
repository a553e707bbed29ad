package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/doseprompt/internal/auth"
	"github.com/julianstephens/doseprompt/internal/calendar"
	"github.com/julianstephens/doseprompt/internal/constants"
	"github.com/julianstephens/doseprompt/internal/models"
	"github.com/julianstephens/doseprompt/internal/mood"
	"github.com/julianstephens/doseprompt/internal/nav"
	"github.com/julianstephens/doseprompt/internal/shopping"
	"github.com/julianstephens/doseprompt/internal/storage"
	"github.com/julianstephens/doseprompt/internal/tui/components/authgate"
	"github.com/julianstephens/doseprompt/internal/tui/components/home"
	"github.com/julianstephens/doseprompt/internal/tui/components/moodtracker"
	"github.com/julianstephens/doseprompt/internal/tui/components/reminders"
	"github.com/julianstephens/doseprompt/internal/tui/components/shoppinglist"
	"github.com/julianstephens/doseprompt/internal/tui/components/splash"
)

// Options carries the dependencies of the TUI
type Options struct {
	Context     context.Context
	Store       storage.Provider
	Platform    auth.Platform
	Catalog     models.Catalog
	Dose        models.DoseProgress
	SplashDelay time.Duration
	Today       calendar.Date // zero means the current local date

	// KeepEntries shares Store across mood tracker visits. Otherwise every
	// visit starts with an empty in-memory session.
	KeepEntries bool
}

type Model struct {
	opts      Options
	router    *nav.Router
	keys      KeyMap
	help      help.Model
	showHelp  bool
	splash    splash.Model
	gate      authgate.Model
	home      home.Model
	mood      moodtracker.Model
	shopping  shoppinglist.Model
	reminders reminders.Model
	quitting  bool
	width     int
	height    int
}

func NewModel(opts Options) Model {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Today.IsZero() {
		opts.Today = calendar.FromTime(time.Now())
	}
	if opts.SplashDelay <= 0 {
		opts.SplashDelay = constants.SplashDelay
	}

	return Model{
		opts:   opts,
		router: nav.NewRouter(constants.ScreenSplash),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		splash: splash.New(opts.SplashDelay),
		home:   home.New(opts.Dose, 0, 0),
	}
}

// Screen returns the screen currently shown
func (m Model) Screen() constants.Screen {
	return m.router.Current()
}

func (m Model) Init() tea.Cmd {
	return m.splash.Init()
}

// enter prepares the screen that just became current. Feature screens start
// fresh on every visit.
func (m *Model) enter(screen constants.Screen) tea.Cmd {
	switch screen {
	case constants.ScreenAuth:
		m.gate = authgate.New(m.opts.Context, m.opts.Platform)
		return m.gate.Init()
	case constants.ScreenHome:
		return m.home.Start()
	case constants.ScreenMoodTracker:
		m.mood = moodtracker.New(mood.NewTracker(m.moodStore(), m.opts.Today), m.opts.Today)
	case constants.ScreenShoppingList:
		m.shopping = shoppinglist.New(shopping.NewList(m.opts.Catalog))
		m.shopping.SetSize(m.width, m.height)
	case constants.ScreenSetReminders:
		m.reminders = reminders.New()
	}
	return nil
}

// moodStore returns the provider for a mood tracker visit. Entries belong to
// the visit unless the user opted into a database file.
func (m *Model) moodStore() storage.Provider {
	if m.opts.KeepEntries && m.opts.Store != nil {
		return m.opts.Store
	}
	return storage.NewMemoryStore()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.splash.SetSize(width, height)
	m.home.SetSize(width, height-2)
	m.shopping.SetSize(width, height)
}
