// Package checkin holds the pure operations on a single thing's check-in
// collection. The ordered slice is the source of truth; every operation
// returns a fresh slice and leaves its input untouched, so callers replace
// the old collection wholesale.
package checkin

import "github.com/mosaic-habits/mosaic/internal/models"

// Upsert returns a collection where the check-in for date carries note.
// An existing entry is replaced in place, keeping its position; otherwise a
// new entry is appended.
func Upsert(checkIns []models.CheckIn, date, note string) []models.CheckIn {
	out := make([]models.CheckIn, len(checkIns))
	copy(out, checkIns)

	for i, c := range out {
		if c.Date == date {
			out[i] = models.CheckIn{Date: date, Note: note}
			return out
		}
	}
	return append(out, models.CheckIn{Date: date, Note: note})
}

// Remove returns the collection without any entry for date. Removing a date
// that has no entry returns an equivalent collection.
func Remove(checkIns []models.CheckIn, date string) []models.CheckIn {
	out := make([]models.CheckIn, 0, len(checkIns))
	for _, c := range checkIns {
		if c.Date != date {
			out = append(out, c)
		}
	}
	return out
}

// Has reports whether an entry exists for date.
func Has(checkIns []models.CheckIn, date string) bool {
	for _, c := range checkIns {
		if c.Date == date {
			return true
		}
	}
	return false
}

// NoteFor returns the note recorded for date, or "" if there is no entry.
func NoteFor(checkIns []models.CheckIn, date string) string {
	for _, c := range checkIns {
		if c.Date == date {
			return c.Note
		}
	}
	return ""
}

// DateSet builds a date-keyed lookup index for repeated membership tests.
// The set is derived and disposable: rebuild it whenever the slice changes,
// never mutate it on its own.
func DateSet(checkIns []models.CheckIn) map[string]bool {
	set := make(map[string]bool, len(checkIns))
	for _, c := range checkIns {
		set[c.Date] = true
	}
	return set
}
