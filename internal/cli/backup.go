package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/stroll/internal/backup"
	"github.com/julianstephens/stroll/internal/logger"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Snapshot the walk database." default:"1"`
	List    BackupListCmd    `cmd:"" help:"List available snapshots."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore the database from a snapshot."`
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	m := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := m.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	m := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := m.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	fmt.Printf("Backups in %s:\n\n", m.BackupDir())
	for _, b := range backups {
		fmt.Printf("  %s  %s  %d bytes\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Snapshot file to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	m := backup.NewManager(ctx.Store.GetConfigPath())
	if err := m.Restore(c.Path); err != nil {
		return err
	}
	fmt.Printf("Restored from %s\n", filepath.Base(c.Path))
	return nil
}

// PerformAutomaticBackup snapshots the store if it exists. Failures are
// logged and never block startup.
func (ctx *Context) PerformAutomaticBackup() {
	path := ctx.Store.GetConfigPath()
	if _, err := os.Stat(path); err != nil {
		return
	}
	if _, err := backup.NewManager(path).Create(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
