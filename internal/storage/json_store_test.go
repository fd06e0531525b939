package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mosaic-habits/mosaic/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "mosaic.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func TestJSONStore_InitAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mosaic.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("second Init should fail on existing storage")
	}

	things := []models.Thing{
		{
			ID:        "1",
			Name:      "Read",
			CheckIns:  []models.CheckIn{{Date: "2024-02-29", Note: "leap day"}},
			CreatedAt: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		},
	}
	if err := store.SaveThings(things); err != nil {
		t.Fatalf("SaveThings failed: %v", err)
	}

	reloaded := NewJSONStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got, err := reloaded.GetThings()
	if err != nil {
		t.Fatalf("GetThings failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Read" {
		t.Fatalf("unexpected things: %+v", got)
	}
	if got[0].CheckIns[0].Note != "leap day" {
		t.Errorf("check-in note lost: %+v", got[0].CheckIns[0])
	}
}

func TestJSONStore_LoadBeforeInit(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	err := store.Load()
	if err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("expected not-initialized error, got %v", err)
	}
}

func TestJSONStore_Settings(t *testing.T) {
	store := newTestJSONStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.Language != "en" || settings.DarkMode {
		t.Errorf("unexpected defaults: %+v", settings)
	}

	settings.DarkMode = true
	settings.Language = "zh"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	reloaded := NewJSONStore(store.GetConfigPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, err := reloaded.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if !got.DarkMode || got.Language != "zh" {
		t.Errorf("settings not persisted: %+v", got)
	}
}

func TestJSONStore_MigratesLegacyCheckInsOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mosaic.json")
	legacy := `{
  "version": 1,
  "settings": {"darkMode": false, "language": "en"},
  "things": [
    {"id": "1", "name": "Read", "checkIns": ["2024-02-10", "2024-02-11"], "createdAt": "2024-01-01T08:00:00Z"}
  ]
}`
	if err := os.WriteFile(path, []byte(legacy), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	things, err := store.GetThings()
	if err != nil {
		t.Fatalf("GetThings failed: %v", err)
	}
	if len(things) != 1 || len(things[0].CheckIns) != 2 {
		t.Fatalf("unexpected migrated things: %+v", things)
	}
	if things[0].CheckIns[0] != (models.CheckIn{Date: "2024-02-10", Note: ""}) {
		t.Errorf("unexpected migrated check-in: %+v", things[0].CheckIns[0])
	}

	// The migration must have been written back: the raw file no longer
	// contains bare-string check-ins.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("rewritten file unparseable: %v", err)
	}
	var rewritten []models.Thing
	if err := json.Unmarshal(doc.Things, &rewritten); err != nil {
		t.Fatalf("rewritten things still legacy shaped: %v", err)
	}
}

func TestJSONStore_SaveThingsReplacesWholeCollection(t *testing.T) {
	store := newTestJSONStore(t)

	first := []models.Thing{{ID: "1", Name: "Read", CreatedAt: time.Now()}}
	if err := store.SaveThings(first); err != nil {
		t.Fatal(err)
	}

	second := []models.Thing{{ID: "2", Name: "Run", CreatedAt: time.Now()}}
	if err := store.SaveThings(second); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetThings()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("collection not replaced: %+v", got)
	}
}
