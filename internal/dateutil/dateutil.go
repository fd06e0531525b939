package dateutil

import (
	"time"

	"github.com/mosaic-habits/mosaic/internal/constants"
)

// Format returns the canonical YYYY-MM-DD key for a date, using the date's
// own location. No UTC conversion happens here: converting would shift dates
// across the day boundary for users east or west of UTC.
func Format(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Parse parses a canonical YYYY-MM-DD key into a midnight local time.
func Parse(key string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// Today returns the canonical key for the current local date.
func Today() string {
	return Format(time.Now())
}

// Midnight normalizes a time to 00:00:00 in its own location. Day arithmetic
// on normalized times avoids drift across daylight-saving transitions.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// LastYearDates returns the trailing YearViewDays calendar days ending at now
// (inclusive), oldest first. No future dates are included.
func LastYearDates(now time.Time) []time.Time {
	today := Midnight(now)
	dates := make([]time.Time, constants.YearViewDays)
	for i := 0; i < constants.YearViewDays; i++ {
		dates[constants.YearViewDays-1-i] = today.AddDate(0, 0, -i)
	}
	return dates
}

// MonthGridDates returns the fixed 42-day grid covering now's calendar month,
// starting on the Sunday on or before the 1st. Leading and trailing days from
// adjacent months are included so the grid is always six full weeks.
func MonthGridDates(now time.Time) []time.Time {
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	start := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))

	dates := make([]time.Time, constants.MonthGridDays)
	for i := 0; i < constants.MonthGridDays; i++ {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates
}

// IsLeapYear reports whether year is a Gregorian leap year: divisible by 4,
// except century years not divisible by 400.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInYear returns 366 for leap years, 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month of the given
// year, computed from the calendar rather than a lookup table.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
