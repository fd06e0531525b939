package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mosaic-habits/mosaic/internal/constants"
	"github.com/mosaic-habits/mosaic/internal/logger"
	"github.com/mosaic-habits/mosaic/internal/models"
	"github.com/mosaic-habits/mosaic/internal/registry"
)

type document struct {
	Version  int      `json:"version"`
	Settings Settings `json:"settings"`
	// Things stays raw until load so the legacy string-only check-in format
	// can be detected and upgraded in one pass.
	Things json.RawMessage `json:"things"`
}

type JSONStore struct {
	path     string
	settings Settings
	things   []models.Thing
	loaded   bool
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.settings = Settings{
		DarkMode: constants.DefaultDarkMode,
		Language: constants.DefaultLanguage,
	}
	s.things = []models.Thing{}
	s.loaded = true

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'mosaic init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	s.settings = doc.Settings
	if s.settings.Language == "" {
		s.settings.Language = constants.DefaultLanguage
	}

	s.things = []models.Thing{}
	if len(doc.Things) > 0 {
		things, migrated, err := registry.DecodeThings(doc.Things)
		if err != nil {
			return fmt.Errorf("failed to parse storage: %w", err)
		}
		s.things = things
		if migrated {
			// One-time upgrade: persist the rewritten collection so the
			// legacy shape is gone from disk.
			logger.Info("migrated legacy check-in format", "things", len(things))
			if err := s.save(); err != nil {
				return fmt.Errorf("failed to persist migrated storage: %w", err)
			}
		}
	}

	s.loaded = true
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	rawThings, err := json.Marshal(s.things)
	if err != nil {
		return fmt.Errorf("failed to serialize things: %w", err)
	}

	doc := document{
		Version:  1,
		Settings: s.settings,
		Things:   rawThings,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if !s.loaded {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if !s.loaded {
		return fmt.Errorf("storage not loaded")
	}
	s.settings = settings
	return s.save()
}

func (s *JSONStore) GetThings() ([]models.Thing, error) {
	if !s.loaded {
		return nil, fmt.Errorf("storage not loaded")
	}

	things := make([]models.Thing, len(s.things))
	copy(things, s.things)
	return things, nil
}

func (s *JSONStore) SaveThings(things []models.Thing) error {
	if !s.loaded {
		return fmt.Errorf("storage not loaded")
	}

	s.things = make([]models.Thing, len(things))
	copy(s.things, things)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
