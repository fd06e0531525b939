package cli

import (
	"fmt"
	"time"

	"github.com/mosaic-habits/mosaic/internal/i18n"
	"github.com/mosaic-habits/mosaic/internal/logger"
	"github.com/mosaic-habits/mosaic/internal/transfer"
)

type ExportCmd struct {
	Dir string `help:"Directory to write the export into." type:"path" default:"."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	things, err := loadThings(ctx)
	if err != nil {
		return err
	}

	path, err := transfer.Export(things, c.Dir, time.Now())
	if err != nil {
		return err
	}

	logger.Info("exported things", "path", path, "count", len(things))
	fmt.Printf("Exported %d things to: %s\n", len(things), path)
	return nil
}

type ImportCmd struct {
	Path string `arg:"" help:"Path to a mosaic export file." type:"path"`
	Yes  bool   `help:"Skip the overwrite confirmation." short:"y"`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	// Validate before touching anything: a bad file must leave existing
	// state untouched.
	imported, err := transfer.Import(c.Path)
	if err != nil {
		logger.Warn("import rejected", "path", c.Path, "error", err)
		return fmt.Errorf("%s: %w", i18n.T(settings.Language, "importError"), err)
	}

	if !c.Yes {
		ok, err := confirm(i18n.T(settings.Language, "importConfirmation"))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := ctx.Store.SaveThings(imported); err != nil {
		return err
	}

	logger.Info("imported things", "path", c.Path, "count", len(imported))
	fmt.Printf("Imported %d things from: %s\n", len(imported), c.Path)
	return nil
}
