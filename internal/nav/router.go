package nav

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/doseprompt/internal/constants"
	"github.com/julianstephens/doseprompt/internal/logger"
)

// Router keeps the stack of visited screens. The top of the stack is shown.
type Router struct {
	stack []constants.Screen
}

func NewRouter(root constants.Screen) *Router {
	return &Router{stack: []constants.Screen{root}}
}

// Current returns the screen on top of the stack
func (r *Router) Current() constants.Screen {
	return r.stack[len(r.stack)-1]
}

// Depth returns the number of screens on the stack
func (r *Router) Depth() int {
	return len(r.stack)
}

// GoTo pushes screen onto the stack
func (r *Router) GoTo(screen constants.Screen) {
	logger.Screen(r.Current(), "Navigate", "action", "push", "to", screen)
	r.stack = append(r.stack, screen)
}

// Replace swaps the top of the stack for screen
func (r *Router) Replace(screen constants.Screen) {
	logger.Screen(r.Current(), "Navigate", "action", "replace", "to", screen)
	r.stack[len(r.stack)-1] = screen
}

// Back pops the top of the stack. It reports false at the root.
func (r *Router) Back() bool {
	if len(r.stack) == 1 {
		return false
	}
	logger.Screen(r.Current(), "Navigate", "action", "back", "depth", len(r.stack)-1)
	r.stack = r.stack[:len(r.stack)-1]
	return true
}

// GoToMsg asks the root model to push a screen
type GoToMsg struct {
	Screen constants.Screen
}

// ReplaceMsg asks the root model to swap the current screen
type ReplaceMsg struct {
	Screen constants.Screen
}

// BackMsg asks the root model to pop the current screen
type BackMsg struct{}

func GoTo(screen constants.Screen) tea.Cmd {
	return func() tea.Msg { return GoToMsg{Screen: screen} }
}

func Replace(screen constants.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceMsg{Screen: screen} }
}

func Back() tea.Msg {
	return BackMsg{}
}

// Handle applies a navigation message to the router. It reports whether msg
// was a navigation message.
func (r *Router) Handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case GoToMsg:
		r.GoTo(msg.Screen)
	case ReplaceMsg:
		r.Replace(msg.Screen)
	case BackMsg:
		r.Back()
	default:
		return false
	}
	return true
}
