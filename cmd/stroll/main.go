package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/stroll/internal/cli"
	"github.com/julianstephens/stroll/internal/constants"
	"github.com/julianstephens/stroll/internal/errors"
	"github.com/julianstephens/stroll/internal/logger"
	"github.com/julianstephens/stroll/internal/notify"
	"github.com/julianstephens/stroll/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/stroll/stroll.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize stroll storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Status   cli.StatusCmd   `cmd:"" help:"Show today's walks."`
	Done     cli.DoneCmd     `cmd:"" help:"Mark a walk done."`
	Undo     cli.UndoCmd     `cmd:"" help:"Clear a completed walk."`
	Walk     cli.WalkCmd     `cmd:"" help:"Run a walk countdown."`
	History  cli.HistoryCmd  `cmd:"" help:"Review recent days."`
	Settings cli.SettingsCmd `cmd:"" help:"View or update settings."`
	Remind   cli.RemindCmd   `cmd:"" help:"Run the walk reminder daemon."`
	Backup   cli.BackupCmd   `cmd:"" help:"Manage database snapshots."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Walk pacing companion: spread short walks across your day"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	// Storage backend follows the config file extension.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:    store,
		Notifier: notify.NewTray(),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
