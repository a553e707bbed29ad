package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/julianstephens/doseprompt/internal/calendar"
	"github.com/julianstephens/doseprompt/internal/constants"
	"github.com/julianstephens/doseprompt/internal/logger"
	"github.com/julianstephens/doseprompt/internal/tui"
)

// ErrNotTerminal is returned when the TUI is started without a terminal
var ErrNotTerminal = errors.New("the interactive TUI requires a terminal")

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if !isTerminal(os.Stdout.Fd()) || !isTerminal(os.Stdin.Fd()) {
		return fmt.Errorf("%w; try '%s calendar' for non-interactive output", ErrNotTerminal, constants.AppName)
	}

	logger.Info("Starting TUI", "store", ctx.Store.Describe(), "keep_entries", ctx.DBPath != "")

	model := tui.NewModel(tui.Options{
		Context:     ctx.base(),
		Store:       ctx.Store,
		KeepEntries: ctx.DBPath != "",
		Platform:    ctx.Platform,
		Catalog:     ctx.Catalog,
		Dose:        ctx.Dose,
		SplashDelay: ctx.SplashDelay,
		Today:       calendar.FromTime(ctx.now()),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI exited with an error: %w", err)
	}
	return nil
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
