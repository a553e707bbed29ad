package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/doseprompt/internal/auth"
	"github.com/julianstephens/doseprompt/internal/cli"
	"github.com/julianstephens/doseprompt/internal/constants"
	"github.com/julianstephens/doseprompt/internal/errors"
	"github.com/julianstephens/doseprompt/internal/logger"
	"github.com/julianstephens/doseprompt/internal/models"
	"github.com/julianstephens/doseprompt/internal/storage"
)

var CLI struct {
	Version     kong.VersionFlag
	Debug       bool          `help:"Log debug output to stderr as well as the log file." env:"DOSEPROMPT_DEBUG"`
	ConfigDir   string        `help:"Directory for logs." type:"path" default:"${config_dir}" env:"DOSEPROMPT_CONFIG_DIR"`
	Store       string        `help:"Mood entry store (${enum})." enum:"memory,sqlite" default:"memory" env:"DOSEPROMPT_STORE"`
	DB          string        `help:"SQLite data source for --store=sqlite." default:"${sqlite_dsn}" env:"DOSEPROMPT_DB"`
	DailyDoses  int           `help:"Doses planned per day." default:"${daily_doses}" env:"DOSEPROMPT_DAILY_DOSES"`
	Medications []string      `help:"Medications offered by the shopping list." default:"Aspirin,Ibuprofen,Metformin" env:"DOSEPROMPT_MEDICATIONS"`
	SplashDelay time.Duration `help:"How long the splash screen stays up." default:"2s" env:"DOSEPROMPT_SPLASH_DELAY"`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Calendar cli.CalendarCmd `cmd:"" help:"Print a month calendar."`
	Pin      cli.PinCmd      `cmd:"" help:"Manage the unlock PIN."`
	Backup   cli.BackupCmd   `cmd:"" help:"Snapshot and restore the SQLite mood journal."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description(constants.DisplayName+": "+constants.Tagline),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(kong.JSON, constants.DefaultConfigFile),
		kong.Vars{
			"version":     constants.Version,
			"config_dir":  constants.DefaultConfigDir,
			"sqlite_dsn":  constants.DefaultSQLiteDSN,
			"daily_doses": fmt.Sprint(constants.DefaultDailyDoses),
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: CLI.ConfigDir,
		Command:   ctx.Command(),
		Store:     CLI.Store,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}

	store, err := storage.New(CLI.Store, CLI.DB)
	if err != nil {
		errors.Fatal(err)
	}
	if err := store.Init(); err != nil {
		errors.Fatal(fmt.Errorf("failed to open %s: %w", store.Describe(), err))
	}

	appCtx := &cli.Context{
		Store:       store,
		Platform:    auth.NewKeyringPlatform(),
		Catalog:     models.NewCatalog(CLI.Medications),
		Dose:        models.DoseProgress{Total: CLI.DailyDoses},
		SplashDelay: CLI.SplashDelay,
	}
	if sqlite, ok := store.(*storage.SQLiteStore); ok {
		appCtx.DBPath = sqlite.FilePath()
	}

	err = ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("Failed to close store", "error", closeErr)
	}
	errors.Fatal(err)
}
