package models

import "time"

// CheckIn records that a thing was done on a specific calendar day.
type CheckIn struct {
	Date string `json:"date"` // YYYY-MM-DD format
	Note string `json:"note"`
}

// Thing is a habit or activity being tracked. Each thing exclusively owns
// its check-in collection; at most one check-in exists per date.
type Thing struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CheckIns  []CheckIn `json:"checkIns"`
	CreatedAt time.Time `json:"createdAt"`
	Archived  bool      `json:"archived,omitempty"`
}
