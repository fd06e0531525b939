package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/mosaic-habits/mosaic/internal/checkin"
	"github.com/mosaic-habits/mosaic/internal/dateutil"
	"github.com/mosaic-habits/mosaic/internal/heatmap"
	"github.com/mosaic-habits/mosaic/internal/i18n"
)

type LogCmd struct {
	Name  string `arg:"" help:"Thing name."`
	Month bool   `help:"Show the current-month calendar instead of the trailing year."`
}

func (c *LogCmd) Run(ctx *Context) error {
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

	now := time.Now()
	set := checkin.DateSet(thing.CheckIns)

	fmt.Printf("%s\n\n", thing.Name)
	if c.Month {
		printMonthGrid(heatmap.MonthLayout(dateutil.MonthGridDates(now), set, now), settings.Language)
	} else {
		printYearGrid(heatmap.YearLayout(dateutil.LastYearDates(now), set, now), settings.Language)
	}
	return nil
}

// printYearGrid renders the trailing-year layout as one line per weekday,
// one column per week.
func printYearGrid(grid heatmap.YearGrid, lang string) {
	months := i18n.Months(lang)
	weekdays := i18n.Weekdays(lang)

	// Month labels across the top, anchored at their first week's column.
	labels := make([]string, grid.WeekCount)
	for i := range labels {
		labels[i] = "  "
	}
	for _, ml := range grid.MonthLabels {
		if ml.Col < len(labels) {
			labels[ml.Col] = fmt.Sprintf("%-2.2s", months[ml.Month-1])
		}
	}
	fmt.Printf("    %s\n", strings.Join(labels, ""))

	rows := make([][]string, 7)
	for r := range rows {
		rows[r] = make([]string, grid.WeekCount)
		for c := range rows[r] {
			rows[r][c] = "  "
		}
	}
	for _, cell := range grid.Cells {
		mark := ". "
		if cell.CheckedIn {
			mark = "x "
		}
		if cell.Disabled {
			mark = "  "
		}
		rows[cell.Row][cell.Col] = mark
	}

	for r, row := range rows {
		label := "   "
		if r%2 == 1 {
			label = fmt.Sprintf("%-3.3s", weekdays[r])
		}
		fmt.Printf("%s %s\n", label, strings.Join(row, ""))
	}
}

// printMonthGrid renders the fixed 6x7 month calendar with day numbers;
// checked days are bracketed and out-of-month days blanked.
func printMonthGrid(grid heatmap.MonthGrid, lang string) {
	weekdays := i18n.Weekdays(lang)

	header := make([]string, len(weekdays))
	for i, wd := range weekdays {
		header[i] = fmt.Sprintf("%4.3s", wd)
	}
	fmt.Println(strings.Join(header, ""))

	var line strings.Builder
	for _, cell := range grid.Cells {
		switch {
		case !cell.InMonth:
			line.WriteString("    ")
		case cell.CheckedIn:
			line.WriteString(fmt.Sprintf("[%2d]", cell.Date.Day()))
		default:
			line.WriteString(fmt.Sprintf(" %2d ", cell.Date.Day()))
		}
		if cell.Col == grid.Cols-1 {
			fmt.Println(line.String())
			line.Reset()
		}
	}
}
