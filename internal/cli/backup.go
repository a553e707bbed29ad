package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/gosuri/uitable"

	"github.com/julianstephens/doseprompt/internal/backup"
	"github.com/julianstephens/doseprompt/internal/constants"
	apperrors "github.com/julianstephens/doseprompt/internal/errors"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" default:"1" help:"Snapshot the mood database."`
	List    BackupListCmd    `cmd:"" help:"List snapshots, newest first."`
	Restore BackupRestoreCmd `cmd:"" help:"Replace the mood database with a snapshot."`
}

func (c *Context) backupManager() (*backup.Manager, error) {
	if c.DBPath == "" {
		return nil, apperrors.NewValidation("No database file",
			fmt.Sprintf("backups need --store=%s with a file --db path", constants.StoreSQLite))
	}
	return backup.NewManager(c.DBPath), nil
}

type BackupCreateCmd struct{}

func (cmd *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}
	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.out(), "✓ Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (cmd *BackupListCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}

	w := ctx.out()
	if len(backups) == 0 {
		fmt.Fprintf(w, "No backups in %s\n", mgr.BackupDir())
		return nil
	}

	now := ctx.now()
	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("NAME", "CREATED", "SIZE")
	for _, b := range backups {
		table.AddRow(filepath.Base(b.Path), humanize.RelTime(b.Timestamp, now, "ago", "from now"), humanize.Bytes(uint64(b.Size)))
	}
	fmt.Fprintln(w, table)
	return nil
}

// BackupRestoreCmd accepts a snapshot name from the backup directory or any path
type BackupRestoreCmd struct {
	Backup string `arg:"" help:"Snapshot name or path."`
	Yes    bool   `short:"y" help:"Do not ask for confirmation."`
}

func (cmd *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}

	path := cmd.Backup
	if filepath.Base(path) == path {
		path = filepath.Join(mgr.BackupDir(), path)
	}

	if !cmd.Yes {
		confirmed := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Replace %s with %s?", ctx.DBPath, filepath.Base(path))).
			Affirmative("Restore").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !confirmed {
			fmt.Fprintln(ctx.out(), "Restore cancelled")
			return nil
		}
	}

	// the store holds the database open
	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close store before restore: %w", err)
	}

	safety, err := mgr.RestoreBackup(path)
	if safety != "" {
		fmt.Fprintf(ctx.out(), "ℹ Previous database saved as %s\n", filepath.Base(safety))
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.out(), "✓ Restored %s\n", filepath.Base(path))
	return nil
}
