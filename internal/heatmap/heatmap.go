// Package heatmap maps a date sequence and a check-in set onto a 2-D grid
// description. The layouts are pure: they report cell positions and
// interactivity only, and leave persistence and click handling to callers.
package heatmap

import (
	"time"

	"github.com/mosaic-habits/mosaic/internal/dateutil"
)

// Cell is one day of a heatmap grid.
type Cell struct {
	Date time.Time
	Key  string // canonical YYYY-MM-DD key
	Row  int
	Col  int
	// CheckedIn reports membership in the check-in set.
	CheckedIn bool
	// InMonth is true for cells of the current calendar month. Year-mode
	// cells are always in month.
	InMonth bool
	// Disabled cells cannot be selected: future dates in either mode, and
	// adjacent-month padding in month mode.
	Disabled bool
}

// MonthLabel anchors a month name to the column of that month's first date
// in the year grid.
type MonthLabel struct {
	Month time.Month
	Col   int
}

// YearGrid is the trailing-year layout: rows are weekdays (0 = Sunday),
// columns are week indices.
type YearGrid struct {
	Cells       []Cell
	WeekCount   int
	Offset      int // weekday of the first date in the sequence
	MonthLabels []MonthLabel
}

// MonthGrid is the fixed six-week calendar layout for the current month.
type MonthGrid struct {
	Cells []Cell
	Rows  int
	Cols  int
}

// YearLayout places the trailing-year date sequence on a weekday-by-week
// grid. The first column is padded at the top by the first date's weekday
// offset so every column reads Sunday through Saturday.
func YearLayout(dates []time.Time, checkedIn map[string]bool, now time.Time) YearGrid {
	if len(dates) == 0 {
		return YearGrid{}
	}

	today := dateutil.Midnight(now)
	offset := int(dates[0].Weekday())
	grid := YearGrid{
		Cells:     make([]Cell, 0, len(dates)),
		WeekCount: (len(dates) + offset + 6) / 7,
		Offset:    offset,
	}

	lastMonth := time.Month(0)
	for i, d := range dates {
		key := dateutil.Format(d)
		col := (i + offset) / 7
		grid.Cells = append(grid.Cells, Cell{
			Date:      d,
			Key:       key,
			Row:       int(d.Weekday()),
			Col:       col,
			CheckedIn: checkedIn[key],
			InMonth:   true,
			Disabled:  d.After(today),
		})
		if d.Month() != lastMonth {
			grid.MonthLabels = append(grid.MonthLabels, MonthLabel{Month: d.Month(), Col: col})
			lastMonth = d.Month()
		}
	}

	return grid
}

// MonthLayout places the fixed 42-day month sequence on a 6x7 grid. The
// sequence starts on a Sunday, so index arithmetic and weekday alignment
// agree. Padding cells from adjacent months are marked out of month and are
// never selectable; in-month cells follow the same future-date rule as the
// year layout.
func MonthLayout(dates []time.Time, checkedIn map[string]bool, now time.Time) MonthGrid {
	today := dateutil.Midnight(now)
	grid := MonthGrid{
		Cells: make([]Cell, 0, len(dates)),
		Rows:  (len(dates) + 6) / 7,
		Cols:  7,
	}

	for i, d := range dates {
		key := dateutil.Format(d)
		inMonth := d.Month() == now.Month() && d.Year() == now.Year()
		grid.Cells = append(grid.Cells, Cell{
			Date:      d,
			Key:       key,
			Row:       i / 7,
			Col:       i % 7,
			CheckedIn: checkedIn[key],
			InMonth:   inMonth,
			Disabled:  !inMonth || d.After(today),
		})
	}

	return grid
}
