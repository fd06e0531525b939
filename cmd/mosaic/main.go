package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mosaic-habits/mosaic/internal/cli"
	"github.com/mosaic-habits/mosaic/internal/constants"
	"github.com/mosaic-habits/mosaic/internal/errors"
	"github.com/mosaic-habits/mosaic/internal/logger"
	"github.com/mosaic-habits/mosaic/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/mosaic/mosaic.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize mosaic storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Thing    cli.ThingCmd    `cmd:"" help:"Manage tracked things."`
	Mark     cli.MarkCmd     `cmd:"" help:"Record or toggle a check-in."`
	Log      cli.LogCmd      `cmd:"" help:"Show a thing's check-in heatmap."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show monthly and yearly check-in counts."`
	Export   cli.ExportCmd   `cmd:"" help:"Export all things as JSON."`
	Import   cli.ImportCmd   `cmd:"" help:"Import things from a JSON export."`
	Settings cli.SettingsCmd `cmd:"" help:"Show or change settings."`
	Debugger cli.DebugCmd    `cmd:"" name:"debug" help:"Debugging helpers."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit tracker with a calendar heatmap"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}
	appCtx := &cli.Context{
		Store: store,
	}

	err := ctx.Run(appCtx)
	store.Close()
	if err != nil {
		errors.Fatal(err)
	}
}
