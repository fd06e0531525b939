package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/mosaic-habits/mosaic/internal/checkin"
	"github.com/mosaic-habits/mosaic/internal/dateutil"
	"github.com/mosaic-habits/mosaic/internal/storage"
)

func setupTestContext(t *testing.T) (*Context, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := storage.NewSQLiteStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}

	ctx := &Context{
		Store: store,
	}

	cleanup := func() {
		store.Close()
	}

	return ctx, cleanup
}

func TestInitCmd_RefusesExistingWithoutForce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := storage.NewSQLiteStore(dbPath)
	ctx := &Context{Store: store}
	defer store.Close()

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := (&InitCmd{}).Run(ctx); err == nil {
		t.Error("expected second init to fail on existing storage")
	}
	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("init --force failed: %v", err)
	}

	things, err := ctx.Store.GetThings()
	if err != nil {
		t.Fatalf("failed to load things: %v", err)
	}
	if len(things) != 0 {
		t.Errorf("expected empty storage after forced init, got %d things", len(things))
	}
}

func TestThingAddCmd(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	cmd := &ThingAddCmd{Name: "  Read  "}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("thing add failed: %v", err)
	}

	things, err := ctx.Store.GetThings()
	if err != nil {
		t.Fatalf("failed to load things: %v", err)
	}
	if len(things) != 1 {
		t.Fatalf("expected 1 thing, got %d", len(things))
	}
	if things[0].Name != "Read" {
		t.Errorf("expected trimmed name %q, got %q", "Read", things[0].Name)
	}
}

func TestThingAddCmd_EmptyName(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	cmd := &ThingAddCmd{Name: "   "}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("thing add failed: %v", err)
	}

	things, err := ctx.Store.GetThings()
	if err != nil {
		t.Fatalf("failed to load things: %v", err)
	}
	if len(things) != 0 {
		t.Errorf("blank name should not create a thing, got %d", len(things))
	}
}

func TestMarkCmd_Toggle(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	if err := (&ThingAddCmd{Name: "Exercise"}).Run(ctx); err != nil {
		t.Fatalf("thing add failed: %v", err)
	}

	today := dateutil.Today()

	if err := (&MarkCmd{Name: "Exercise"}).Run(ctx); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	things, _ := ctx.Store.GetThings()
	if !checkin.Has(things[0].CheckIns, today) {
		t.Fatal("expected today to be checked in after mark")
	}

	// Marking again without a note toggles the entry off.
	if err := (&MarkCmd{Name: "Exercise"}).Run(ctx); err != nil {
		t.Fatalf("second mark failed: %v", err)
	}
	things, _ = ctx.Store.GetThings()
	if checkin.Has(things[0].CheckIns, today) {
		t.Error("expected today to be unmarked after second mark")
	}
}

func TestMarkCmd_NoteAlwaysUpserts(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	if err := (&ThingAddCmd{Name: "Read"}).Run(ctx); err != nil {
		t.Fatalf("thing add failed: %v", err)
	}

	today := dateutil.Today()

	if err := (&MarkCmd{Name: "Read"}).Run(ctx); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if err := (&MarkCmd{Name: "Read", Note: "chapter 3"}).Run(ctx); err != nil {
		t.Fatalf("mark with note failed: %v", err)
	}

	things, _ := ctx.Store.GetThings()
	if !checkin.Has(things[0].CheckIns, today) {
		t.Fatal("expected today to stay checked in when a note is given")
	}
	if got := checkin.NoteFor(things[0].CheckIns, today); got != "chapter 3" {
		t.Errorf("expected note %q, got %q", "chapter 3", got)
	}
}

func TestMarkCmd_FutureDateRejected(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	if err := (&ThingAddCmd{Name: "Read"}).Run(ctx); err != nil {
		t.Fatalf("thing add failed: %v", err)
	}

	cmd := &MarkCmd{Name: "Read", Date: "2999-01-01"}
	err := cmd.Run(ctx)
	if err == nil {
		t.Fatal("expected error for future date")
	}
	if !strings.Contains(err.Error(), "future") {
		t.Errorf("expected future date error, got: %v", err)
	}
}

func TestMarkCmd_InvalidDateRejected(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	if err := (&ThingAddCmd{Name: "Read"}).Run(ctx); err != nil {
		t.Fatalf("thing add failed: %v", err)
	}

	cmd := &MarkCmd{Name: "Read", Date: "01/02/2024"}
	err := cmd.Run(ctx)
	if err == nil {
		t.Fatal("expected error for invalid date")
	}
	if !strings.Contains(err.Error(), "invalid date") {
		t.Errorf("expected invalid date error, got: %v", err)
	}
}

func TestThingArchiveCmd_RoundTrip(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	if err := (&ThingAddCmd{Name: "Meditate"}).Run(ctx); err != nil {
		t.Fatalf("thing add failed: %v", err)
	}

	if err := (&ThingArchiveCmd{Name: "Meditate"}).Run(ctx); err != nil {
		t.Fatalf("archive failed: %v", err)
	}
	things, _ := ctx.Store.GetThings()
	if !things[0].Archived {
		t.Fatal("expected thing to be archived")
	}

	if err := (&ThingArchiveCmd{Name: "Meditate", Unarchive: true}).Run(ctx); err != nil {
		t.Fatalf("unarchive failed: %v", err)
	}
	things, _ = ctx.Store.GetThings()
	if things[0].Archived {
		t.Error("expected thing to be active again")
	}
}

func TestThingDeleteCmd_Force(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	if err := (&ThingAddCmd{Name: "Read"}).Run(ctx); err != nil {
		t.Fatalf("thing add failed: %v", err)
	}
	if err := (&MarkCmd{Name: "Read"}).Run(ctx); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	if err := (&ThingDeleteCmd{Name: "Read", Force: true}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	things, _ := ctx.Store.GetThings()
	if len(things) != 0 {
		t.Errorf("expected empty collection after delete, got %d things", len(things))
	}
}

func TestFindThingByName_PrefersActive(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	if err := (&ThingAddCmd{Name: "Read"}).Run(ctx); err != nil {
		t.Fatalf("thing add failed: %v", err)
	}
	if err := (&ThingArchiveCmd{Name: "Read"}).Run(ctx); err != nil {
		t.Fatalf("archive failed: %v", err)
	}
	if err := (&ThingAddCmd{Name: "Read"}).Run(ctx); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	things, _ := ctx.Store.GetThings()
	found, err := findThingByName(things, "Read")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.Archived {
		t.Error("expected the active thing when names collide")
	}
}

func TestFindThingByName_NotFound(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	things, _ := ctx.Store.GetThings()
	if _, err := findThingByName(things, "missing"); err == nil {
		t.Error("expected error for unknown thing")
	}
}

func TestDebugDBPathCmd(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	cmd := &DebugDBPathCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("debug db-path command failed: %v", err)
	}
}

func TestDebugDumpCmd(t *testing.T) {
	ctx, cleanup := setupTestContext(t)
	defer cleanup()

	if err := (&ThingAddCmd{Name: "Read"}).Run(ctx); err != nil {
		t.Fatalf("thing add failed: %v", err)
	}

	cmd := &DebugDumpCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("debug dump command failed: %v", err)
	}
}
