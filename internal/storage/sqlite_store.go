package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mosaic-habits/mosaic/internal/constants"
	"github.com/mosaic-habits/mosaic/internal/models"
)

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS things (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	created_at TEXT NOT NULL,
	archived INTEGER NOT NULL DEFAULT 0,
	position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS check_ins (
	thing_id TEXT NOT NULL REFERENCES things(id) ON DELETE CASCADE,
	day TEXT NOT NULL,
	note TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL,
	PRIMARY KEY (thing_id, day)
);

CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.ensureSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed default settings if absent
	settings, err := s.GetSettings()
	if err != nil {
		return err
	}
	if settings.Language == "" {
		settings.Language = constants.DefaultLanguage
		settings.DarkMode = constants.DefaultDarkMode
		if err := s.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'mosaic init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.ensureSchema(); err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) ensureSchema() error {
	if _, err := s.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return err
	}
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version").Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		_, err = s.db.Exec("INSERT INTO schema_version (version) VALUES (?)", schemaVersion)
		return err
	}
	if err != nil {
		return err
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than supported version %d", version, schemaVersion)
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	if s.db == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}

	settings := Settings{}
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, err
		}
		switch key {
		case "darkMode":
			settings.DarkMode = value == "true"
		case "language":
			settings.Language = value
		}
	}

	return settings, rows.Err()
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	darkMode := "false"
	if settings.DarkMode {
		darkMode = "true"
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, value := range map[string]string{
		"darkMode": darkMode,
		"language": settings.Language,
	} {
		if _, err := tx.Exec(`
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value); err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetThings() ([]models.Thing, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT id, name, created_at, archived
		FROM things ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to read things: %w", err)
	}
	defer rows.Close()

	var things []models.Thing
	for rows.Next() {
		var t models.Thing
		var createdAt string
		var archived int
		if err := rows.Scan(&t.ID, &t.Name, &createdAt, &archived); err != nil {
			return nil, err
		}
		t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for thing %s: %w", t.ID, err)
		}
		t.Archived = archived != 0
		t.CheckIns = []models.CheckIn{}
		things = append(things, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range things {
		checkIns, err := s.getCheckIns(things[i].ID)
		if err != nil {
			return nil, err
		}
		things[i].CheckIns = checkIns
	}

	if things == nil {
		things = []models.Thing{}
	}
	return things, nil
}

func (s *SQLiteStore) getCheckIns(thingID string) ([]models.CheckIn, error) {
	rows, err := s.db.Query(`
		SELECT day, note FROM check_ins
		WHERE thing_id = ? ORDER BY position`, thingID)
	if err != nil {
		return nil, fmt.Errorf("failed to read check-ins: %w", err)
	}
	defer rows.Close()

	checkIns := []models.CheckIn{}
	for rows.Next() {
		var c models.CheckIn
		if err := rows.Scan(&c.Date, &c.Note); err != nil {
			return nil, err
		}
		checkIns = append(checkIns, c)
	}
	return checkIns, rows.Err()
}

// SaveThings replaces the whole collection in one transaction, matching the
// whole-document semantics of the JSON store.
func (s *SQLiteStore) SaveThings(things []models.Thing) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM check_ins"); err != nil {
		return fmt.Errorf("failed to clear check-ins: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM things"); err != nil {
		return fmt.Errorf("failed to clear things: %w", err)
	}

	for pos, t := range things {
		archived := 0
		if t.Archived {
			archived = 1
		}
		if _, err := tx.Exec(`
			INSERT INTO things (id, name, created_at, archived, position)
			VALUES (?, ?, ?, ?, ?)`,
			t.ID, t.Name, t.CreatedAt.Format(time.RFC3339), archived, pos); err != nil {
			return fmt.Errorf("failed to insert thing %s: %w", t.ID, err)
		}
		for cpos, c := range t.CheckIns {
			if _, err := tx.Exec(`
				INSERT INTO check_ins (thing_id, day, note, position)
				VALUES (?, ?, ?, ?)`,
				t.ID, c.Date, c.Note, cpos); err != nil {
				return fmt.Errorf("failed to insert check-in %s/%s: %w", t.ID, c.Date, err)
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
