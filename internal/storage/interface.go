package storage

import "github.com/mosaic-habits/mosaic/internal/models"

// Settings is the small persisted preference set. Field names follow the
// persisted key names.
type Settings struct {
	DarkMode bool   `json:"darkMode"`
	Language string `json:"language"`
}

// Provider is the persistence collaborator. The core packages never touch a
// store: they take current values and produce replacements, and callers push
// each replacement through SaveThings as the new single source of truth.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Things; SaveThings replaces the whole collection atomically.
	GetThings() ([]models.Thing, error)
	SaveThings([]models.Thing) error

	// Utils
	GetConfigPath() string
}
