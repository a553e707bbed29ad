package authgate

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/doseprompt/internal/auth"
	"github.com/julianstephens/doseprompt/internal/constants"
	"github.com/julianstephens/doseprompt/internal/logger"
	"github.com/julianstephens/doseprompt/internal/nav"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().Padding(1, 2)
)

type mode int

const (
	modeLoading mode = iota
	modeVerify
	modeEnroll
	modeBusy
	modeUnavailable
)

type capabilitiesMsg struct {
	caps auth.Capabilities
	err  error
}

// ResultMsg reports the outcome of one authentication attempt
type ResultMsg struct {
	Result auth.Result
	Err    error
}

type enrolledMsg struct {
	err error
}

type pinForm struct {
	PIN     string
	Confirm string
}

type Model struct {
	platform  auth.Platform
	ctx       context.Context
	cancel    context.CancelFunc
	caps      auth.Capabilities
	mode      mode
	form      *huh.Form
	entry     *pinForm
	message   string
	cancelKey key.Binding
}

func New(ctx context.Context, platform auth.Platform) Model {
	return Model{
		platform: platform,
		ctx:      ctx,
		mode:     modeLoading,
		cancelKey: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

func (m Model) Init() tea.Cmd {
	platform, ctx := m.platform, m.ctx
	return func() tea.Msg {
		caps, err := platform.Capabilities(ctx)
		return capabilitiesMsg{caps: caps, err: err}
	}
}

// Message returns the inline outcome message, if any
func (m Model) Message() string {
	return m.message
}

// Prompt returns the label shown above the credential input
func (m Model) Prompt() string {
	if m.mode == modeEnroll {
		return "Create a PIN"
	}
	return auth.PromptLabel(m.caps)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case capabilitiesMsg:
		return m.handleCapabilities(msg)

	case ResultMsg:
		return m.handleResult(msg)

	case enrolledMsg:
		if msg.err != nil {
			logger.Warn("PIN enrollment failed", "error", msg.err)
			m.message = msg.err.Error()
			return m, m.resetForm(modeEnroll)
		}
		return m, nav.Replace(constants.ScreenHome)

	case tea.KeyMsg:
		if key.Matches(msg, m.cancelKey) {
			if m.mode == modeBusy {
				if m.cancel != nil {
					m.cancel()
				}
				return m, nil
			}
			if m.mode == modeVerify || m.mode == modeEnroll {
				logger.Debug("Authentication cancelled by user")
				m.message = constants.AuthCancelledMessage
				return m, m.resetForm(m.mode)
			}
		}
		if m.mode == modeUnavailable && msg.Type == tea.KeyEnter {
			m.message = ""
			m.mode = modeLoading
			return m, m.Init()
		}
	}

	if m.form == nil || (m.mode != modeVerify && m.mode != modeEnroll) {
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if m.mode == modeEnroll {
			m.mode = modeBusy
			cmds = append(cmds, m.enroll(m.entry.PIN))
		} else {
			var verify tea.Cmd
			verify, m.cancel = m.verify(m.entry.PIN)
			m.mode = modeBusy
			cmds = append(cmds, verify)
		}
	case huh.StateAborted:
		m.message = constants.AuthCancelledMessage
		cmds = append(cmds, m.resetForm(m.mode))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleCapabilities(msg capabilitiesMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		logger.Warn("Auth capabilities unavailable", "error", msg.err)
		if errors.Is(msg.err, auth.ErrKeyringUnavailable) {
			m.mode = modeUnavailable
			m.message = "PIN storage is unavailable. Press enter to retry."
			return m, nil
		}
	}
	m.caps = msg.caps
	if m.caps.IsEnrolled {
		return m, m.resetForm(modeVerify)
	}
	if _, ok := m.platform.(auth.Enroller); ok {
		return m, m.resetForm(modeEnroll)
	}
	m.mode = modeUnavailable
	m.message = fmt.Sprintf("No PIN set. Run '%s pin set' first.", constants.AppName)
	return m, nil
}

func (m Model) handleResult(msg ResultMsg) (Model, tea.Cmd) {
	m.cancel = nil
	if msg.Err != nil {
		logger.Warn("Authentication error", "error", msg.Err)
	}
	logger.Info("Authentication finished", "result", msg.Result)

	if msg.Result == auth.ResultSucceeded {
		m.message = ""
		return m, nav.Replace(constants.ScreenHome)
	}
	m.message = auth.OutcomeMessage(msg.Result)
	return m, m.resetForm(modeVerify)
}

func (m Model) verify(secret string) (tea.Cmd, context.CancelFunc) {
	ctx, cancel := context.WithCancel(m.ctx)
	platform, caps := m.platform, m.caps
	return func() tea.Msg {
		defer cancel()
		res, err := platform.Authenticate(ctx, auth.NewRequest(caps, secret))
		return ResultMsg{Result: res, Err: err}
	}, cancel
}

func (m Model) enroll(pin string) tea.Cmd {
	enroller, ctx := m.platform.(auth.Enroller), m.ctx
	return func() tea.Msg {
		return enrolledMsg{err: enroller.Enroll(ctx, pin)}
	}
}

// resetForm sets mode and returns the init command for a fresh PIN form
func (m *Model) resetForm(md mode) tea.Cmd {
	m.mode = md
	m.entry = &pinForm{}
	if md == modeEnroll {
		m.form = newEnrollForm(m.entry)
	} else {
		m.form = newVerifyForm(auth.PromptLabel(m.caps), m.entry)
	}
	return m.form.Init()
}

func newVerifyForm(label string, entry *pinForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(label).
				EchoMode(huh.EchoModePassword).
				Value(&entry.PIN).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("PIN is required")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(false)
}

func newEnrollForm(entry *pinForm) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Create a PIN").
				Description(fmt.Sprintf("%d to %d digits", constants.MinPINLength, constants.MaxPINLength)).
				EchoMode(huh.EchoModePassword).
				Value(&entry.PIN).
				Validate(auth.ValidatePIN),
			huh.NewInput().
				Title("Confirm PIN").
				EchoMode(huh.EchoModePassword).
				Value(&entry.Confirm).
				Validate(func(s string) error {
					if s != entry.PIN {
						return errors.New("PINs do not match")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula()).WithShowHelp(false)
}

func (m Model) View() string {
	parts := []string{titleStyle.Render(constants.DisplayName), ""}

	switch m.mode {
	case modeLoading:
		parts = append(parts, "Checking PIN…")
	case modeBusy:
		parts = append(parts, "Verifying…")
	case modeVerify, modeEnroll:
		if m.form != nil {
			parts = append(parts, m.form.View())
		}
	}

	if m.message != "" {
		parts = append(parts, "", messageStyle.Render(m.message))
	}

	hint := "enter: submit • esc: cancel"
	if m.mode == modeUnavailable {
		hint = "enter: retry • ctrl+c: quit"
	}
	parts = append(parts, "", hintStyle.Render(hint))

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
