package cli

import (
	"fmt"

	"github.com/mosaic-habits/mosaic/internal/i18n"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SettingsSetCmd  `cmd:"" help:"Update settings."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	fmt.Printf("darkMode: %v\n", settings.DarkMode)
	fmt.Printf("language: %s\n", settings.Language)
	return nil
}

type SettingsSetCmd struct {
	DarkMode *bool   `help:"Enable or disable the dark theme."`
	Language *string `help:"Interface language (en, zh)."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	if c.DarkMode != nil {
		settings.DarkMode = *c.DarkMode
	}
	if c.Language != nil {
		if !i18n.Valid(*c.Language) {
			return fmt.Errorf("unsupported language %q (supported: %v)", *c.Language, i18n.Languages)
		}
		settings.Language = *c.Language
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	fmt.Println("Settings updated.")
	return nil
}
