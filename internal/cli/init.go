package cli

import (
	"fmt"
	"os"
)

type InitCmd struct {
	Force bool `help:"Delete existing storage and start over."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			// Close before removing so the SQLite backend releases the file.
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to remove existing storage: %w", err)
			}
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized mosaic storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
