// Package stats computes the month-to-date and year-to-date check-in counts
// shown next to a selected thing.
package stats

import (
	"time"

	"github.com/mosaic-habits/mosaic/internal/dateutil"
	"github.com/mosaic-habits/mosaic/internal/models"
)

// Stats holds the aggregate counts for one thing against the current
// calendar month and year.
type Stats struct {
	MonthCount int
	MonthTotal int
	YearCount  int
	YearTotal  int
}

// Compute aggregates thing's check-ins against the calendar month and year
// containing now. A nil thing (nothing selected) yields all zeros.
// Check-ins with unparseable dates are skipped, not surfaced.
func Compute(thing *models.Thing, now time.Time) Stats {
	if thing == nil {
		return Stats{}
	}

	year, month := now.Year(), now.Month()
	s := Stats{
		MonthTotal: dateutil.DaysInMonth(year, month),
		YearTotal:  dateutil.DaysInYear(year),
	}

	for _, c := range thing.CheckIns {
		d, err := dateutil.Parse(c.Date)
		if err != nil {
			continue
		}
		if d.Year() != year {
			continue
		}
		s.YearCount++
		if d.Month() == month {
			s.MonthCount++
		}
	}

	return s
}
