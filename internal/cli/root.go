package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mosaic-habits/mosaic/internal/models"
	"github.com/mosaic-habits/mosaic/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// loadThings opens storage and returns the current collection.
func loadThings(ctx *Context) ([]models.Thing, error) {
	if err := ctx.Store.Load(); err != nil {
		return nil, err
	}
	return ctx.Store.GetThings()
}

// findThingByName resolves a thing by exact name, preferring active things
// over archived ones when names collide.
func findThingByName(things []models.Thing, name string) (*models.Thing, error) {
	name = strings.TrimSpace(name)
	var archivedMatch *models.Thing
	for i := range things {
		if things[i].Name != name {
			continue
		}
		if !things[i].Archived {
			return &things[i], nil
		}
		if archivedMatch == nil {
			archivedMatch = &things[i]
		}
	}
	if archivedMatch != nil {
		return archivedMatch, nil
	}
	return nil, fmt.Errorf("thing %q not found", name)
}

// confirm shows an interactive yes/no prompt.
func confirm(prompt string) (bool, error) {
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(prompt).Value(&ok),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}
