// Package registry holds the pure operations on the collection of tracked
// things. Like the check-in operations, every function returns a fresh slice
// meant to fully replace the previous collection.
package registry

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mosaic-habits/mosaic/internal/models"
)

// Add appends a new thing with the given name. The name is trimmed of
// surrounding whitespace first; an empty result rejects the add and returns
// the input collection unchanged with ok = false.
func Add(things []models.Thing, name string) (out []models.Thing, id string, ok bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return things, "", false
	}

	thing := models.Thing{
		ID:        uuid.New().String(),
		Name:      name,
		CheckIns:  []models.CheckIn{},
		CreatedAt: time.Now(),
	}

	out = make([]models.Thing, 0, len(things)+1)
	out = append(out, things...)
	out = append(out, thing)
	return out, thing.ID, true
}

// Remove deletes the thing with the given id. The delete is unconditional
// and cascades: the thing's check-ins go with it. Confirmation is a UI
// concern, not handled here.
func Remove(things []models.Thing, id string) []models.Thing {
	out := make([]models.Thing, 0, len(things))
	for _, t := range things {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// Archive marks the thing with the given id archived. Check-ins are kept.
func Archive(things []models.Thing, id string) []models.Thing {
	return setArchived(things, id, true)
}

// Unarchive clears the archived flag on the thing with the given id.
func Unarchive(things []models.Thing, id string) []models.Thing {
	return setArchived(things, id, false)
}

func setArchived(things []models.Thing, id string, archived bool) []models.Thing {
	out := make([]models.Thing, len(things))
	copy(out, things)
	for i, t := range out {
		if t.ID == id {
			t.Archived = archived
			out[i] = t
		}
	}
	return out
}

// Active returns the things that are not archived, in existing order.
func Active(things []models.Thing) []models.Thing {
	out := make([]models.Thing, 0, len(things))
	for _, t := range things {
		if !t.Archived {
			out = append(out, t)
		}
	}
	return out
}

// Archived returns the complement of Active.
func Archived(things []models.Thing) []models.Thing {
	out := make([]models.Thing, 0, len(things))
	for _, t := range things {
		if t.Archived {
			out = append(out, t)
		}
	}
	return out
}

// Find returns a pointer to the thing with the given id, or nil.
func Find(things []models.Thing, id string) *models.Thing {
	for i := range things {
		if things[i].ID == id {
			return &things[i]
		}
	}
	return nil
}

// Reselect is the post-mutation selection reconciliation rule: callers apply
// it after every registry mutation. A selection that still refers to an
// active thing survives; otherwise the first active thing is selected, or
// none when the active set is empty.
func Reselect(things []models.Thing, selectedID string) string {
	active := Active(things)
	if selectedID != "" {
		for _, t := range active {
			if t.ID == selectedID {
				return selectedID
			}
		}
	}
	if len(active) > 0 {
		return active[0].ID
	}
	return ""
}
