// Package transfer implements the JSON export and import of the thing
// collection. The file payload is exactly the persisted thing array, pretty
// printed, so exports from one device import cleanly on another.
package transfer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mosaic-habits/mosaic/internal/constants"
	"github.com/mosaic-habits/mosaic/internal/dateutil"
	"github.com/mosaic-habits/mosaic/internal/models"
	"github.com/mosaic-habits/mosaic/internal/registry"
)

// ExportFileName returns the export filename for the given moment, for
// example mosaic-data-2024-02-29.json.
func ExportFileName(now time.Time) string {
	return constants.ExportFilePrefix + dateutil.Format(now) + constants.ExportFileSuffix
}

// Export writes the thing collection to dir and returns the written path.
func Export(things []models.Thing, dir string, now time.Time) (string, error) {
	data, err := json.MarshalIndent(things, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize things: %w", err)
	}

	path := filepath.Join(dir, ExportFileName(now))
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}

	return path, nil
}

// Import reads and validates an exported file and returns the parsed
// collection. Nothing is persisted here: the caller confirms the destructive
// overwrite and pushes the result into storage. Any parse or shape error
// leaves existing state untouched by construction.
func Import(path string) ([]models.Thing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}

	// Shape check first: every element must carry id, name and checkIns.
	var shapes []struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		CheckIns json.RawMessage `json:"checkIns"`
	}
	if err := json.Unmarshal(data, &shapes); err != nil {
		return nil, fmt.Errorf("invalid import data: %w", err)
	}
	for i, sh := range shapes {
		if sh.ID == "" {
			return nil, fmt.Errorf("invalid import data: thing %d has no id", i)
		}
		if sh.Name == "" {
			return nil, fmt.Errorf("invalid import data: thing %d has no name", i)
		}
		// A JSON null decodes into a non-empty RawMessage, so it has to be
		// rejected alongside a missing field.
		if len(sh.CheckIns) == 0 || string(bytes.TrimSpace(sh.CheckIns)) == "null" {
			return nil, fmt.Errorf("invalid import data: thing %d has no check-in collection", i)
		}
	}

	// Legacy exports with bare-string check-ins import fine: the same
	// upgrade path that runs at load runs here.
	things, _, err := registry.DecodeThings(data)
	if err != nil {
		return nil, fmt.Errorf("invalid import data: %w", err)
	}

	return things, nil
}
