package cli

import (
	"fmt"
	"time"

	"github.com/mosaic-habits/mosaic/internal/checkin"
	"github.com/mosaic-habits/mosaic/internal/dateutil"
)

type MarkCmd struct {
	Name string `arg:"" help:"Thing name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Note string `help:"Optional note for this check-in." default:""`
}

func (c *MarkCmd) Run(ctx *Context) error {
	things, err := loadThings(ctx)
	if err != nil {
		return err
	}

	thing, err := findThingByName(things, c.Name)
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		day = dateutil.Today()
	} else {
		parsed, err := dateutil.Parse(day)
		if err != nil {
			return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", day)
		}
		if parsed.After(dateutil.Midnight(time.Now())) {
			return fmt.Errorf("cannot check in for a future date: %s", day)
		}
	}

	// Toggle unless a note is given: marking an already-checked day without
	// a note removes the entry, while a note always upserts.
	var action string
	if c.Note == "" && checkin.Has(thing.CheckIns, day) {
		thing.CheckIns = checkin.Remove(thing.CheckIns, day)
		action = "Unmarked"
	} else {
		thing.CheckIns = checkin.Upsert(thing.CheckIns, day, c.Note)
		action = "Marked"
	}

	// thing points into the loaded slice, so the collection already carries
	// the new check-ins.
	if err := ctx.Store.SaveThings(things); err != nil {
		return err
	}

	fmt.Printf("%s %q for %s\n", action, thing.Name, day)
	return nil
}
