package registry

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mosaic-habits/mosaic/internal/models"
)

// rawThing defers check-in parsing so the legacy persisted format, where
// check-ins were bare date strings instead of {date, note} records, can be
// detected and upgraded in the same pass.
type rawThing struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	CheckIns  []json.RawMessage `json:"checkIns"`
	CreatedAt time.Time         `json:"createdAt"`
	Archived  bool              `json:"archived,omitempty"`
}

// DecodeThings parses a persisted thing array, upgrading any thing still in
// the legacy string-only check-in format. Detection is cheap: only the shape
// of the first check-in element is inspected per thing. The upgrade is
// idempotent, so it is safe to run on every load; migrated reports whether a
// rewrite actually happened and the caller should persist the result.
func DecodeThings(data []byte) (things []models.Thing, migrated bool, err error) {
	var raw []rawThing
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false, fmt.Errorf("failed to parse things: %w", err)
	}

	things = make([]models.Thing, 0, len(raw))
	for _, rt := range raw {
		t := models.Thing{
			ID:        rt.ID,
			Name:      rt.Name,
			CheckIns:  []models.CheckIn{},
			CreatedAt: rt.CreatedAt,
			Archived:  rt.Archived,
		}

		if len(rt.CheckIns) > 0 && isJSONString(rt.CheckIns[0]) {
			migrated = true
			for _, rc := range rt.CheckIns {
				var date string
				if err := json.Unmarshal(rc, &date); err != nil {
					return nil, false, fmt.Errorf("failed to parse legacy check-in for thing %q: %w", rt.ID, err)
				}
				t.CheckIns = append(t.CheckIns, models.CheckIn{Date: date, Note: ""})
			}
		} else {
			for _, rc := range rt.CheckIns {
				var c models.CheckIn
				if err := json.Unmarshal(rc, &c); err != nil {
					return nil, false, fmt.Errorf("failed to parse check-in for thing %q: %w", rt.ID, err)
				}
				t.CheckIns = append(t.CheckIns, c)
			}
		}

		things = append(things, t)
	}

	return things, migrated, nil
}

func isJSONString(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return b == '"'
		}
	}
	return false
}
