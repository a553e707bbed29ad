package cli

import (
	"context"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/julianstephens/doseprompt/internal/auth"
	"github.com/julianstephens/doseprompt/internal/models"
	"github.com/julianstephens/doseprompt/internal/storage"
)

type Context struct {
	Store       storage.Provider
	Platform    *auth.KeyringPlatform
	Catalog     models.Catalog
	Dose        models.DoseProgress
	SplashDelay time.Duration
	// DBPath is the SQLite database file; empty unless --store=sqlite with a file DSN
	DBPath string

	// Base is the parent context of auth calls; nil means context.Background
	Base context.Context
	// Out receives command output; nil means color.Output
	Out io.Writer
	// Now overrides the clock for commands that default to today
	Now func() time.Time
}

func (c *Context) base() context.Context {
	if c.Base == nil {
		return context.Background()
	}
	return c.Base
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return color.Output
	}
	return c.Out
}

func (c *Context) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
