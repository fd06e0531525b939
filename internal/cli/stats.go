package cli

import (
	"fmt"
	"time"

	"github.com/mosaic-habits/mosaic/internal/i18n"
	"github.com/mosaic-habits/mosaic/internal/stats"
)

type StatsCmd struct {
	Name string `arg:"" help:"Thing name."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	things, err := loadThings(ctx)
	if err != nil {
		return err
	}

	thing, err := findThingByName(things, c.Name)
	if err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	lang := settings.Language

	s := stats.Compute(thing, time.Now())
	fmt.Printf("%s\n", thing.Name)
	fmt.Printf("%s: %d/%d\n", i18n.T(lang, "monthlyCheckins"), s.MonthCount, s.MonthTotal)
	fmt.Printf("%s: %d/%d\n", i18n.T(lang, "yearlyCheckins"), s.YearCount, s.YearTotal)
	return nil
}
