package cli

import (
	"fmt"
	"strings"

	"github.com/mosaic-habits/mosaic/internal/registry"
)

type ThingCmd struct {
	Add     ThingAddCmd     `cmd:"" help:"Add a new thing to track."`
	List    ThingListCmd    `cmd:"" help:"List tracked things."`
	Archive ThingArchiveCmd `cmd:"" help:"Archive a thing."`
	Delete  ThingDeleteCmd  `cmd:"" help:"Delete a thing and all its check-ins."`
}

type ThingAddCmd struct {
	Name string `arg:"" help:"Thing name."`
}

func (c *ThingAddCmd) Run(ctx *Context) error {
	things, err := loadThings(ctx)
	if err != nil {
		return err
	}

	updated, _, ok := registry.Add(things, c.Name)
	if !ok {
		// Empty names are silently rejected; the add simply does not happen.
		return nil
	}

	if err := ctx.Store.SaveThings(updated); err != nil {
		return err
	}

	fmt.Printf("Added thing: %s\n", strings.TrimSpace(c.Name))
	return nil
}

type ThingListCmd struct {
	Archived bool `help:"Show archived things instead of active ones."`
}

func (c *ThingListCmd) Run(ctx *Context) error {
	things, err := loadThings(ctx)
	if err != nil {
		return err
	}

	listed := registry.Active(things)
	if c.Archived {
		listed = registry.Archived(things)
	}

	if len(listed) == 0 {
		if c.Archived {
			fmt.Println("No archived things.")
		} else {
			fmt.Println("No things found.")
		}
		return nil
	}

	for _, t := range listed {
		status := ""
		if t.Archived {
			status = " [ARCHIVED]"
		}
		fmt.Printf("%s%s (%d check-ins)\n", t.Name, status, len(t.CheckIns))
	}

	return nil
}

type ThingArchiveCmd struct {
	Name      string `arg:"" help:"Thing name."`
	Unarchive bool   `help:"Unarchive the thing instead."`
}

func (c *ThingArchiveCmd) Run(ctx *Context) error {
	things, err := loadThings(ctx)
	if err != nil {
		return err
	}

	thing, err := findThingByName(things, c.Name)
	if err != nil {
		return err
	}

	if c.Unarchive {
		things = registry.Unarchive(things, thing.ID)
	} else {
		things = registry.Archive(things, thing.ID)
	}

	if err := ctx.Store.SaveThings(things); err != nil {
		return err
	}

	if c.Unarchive {
		fmt.Printf("Unarchived thing: %s\n", thing.Name)
	} else {
		fmt.Printf("Archived thing: %s\n", thing.Name)
	}
	return nil
}

type ThingDeleteCmd struct {
	Name  string `arg:"" help:"Thing name."`
	Force bool   `help:"Skip the confirmation prompt." short:"f"`
}

func (c *ThingDeleteCmd) Run(ctx *Context) error {
	things, err := loadThings(ctx)
	if err != nil {
		return err
	}

	thing, err := findThingByName(things, c.Name)
	if err != nil {
		return err
	}

	if !c.Force {
		ok, err := confirm(fmt.Sprintf("Delete %q and its %d check-ins? This cannot be undone.", thing.Name, len(thing.CheckIns)))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Aborted.")
			return nil
		}
	}

	things = registry.Remove(things, thing.ID)
	if err := ctx.Store.SaveThings(things); err != nil {
		return err
	}

	fmt.Printf("Deleted thing: %s\n", thing.Name)
	return nil
}
