package checkin

import (
	"testing"

	"github.com/mosaic-habits/mosaic/internal/models"
)

func TestUpsert_AppendsNewEntry(t *testing.T) {
	checkIns := []models.CheckIn{
		{Date: "2024-02-10", Note: "morning run"},
	}

	got := Upsert(checkIns, "2024-02-11", "evening run")

	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[1].Date != "2024-02-11" || got[1].Note != "evening run" {
		t.Errorf("unexpected appended entry: %+v", got[1])
	}
	if len(checkIns) != 1 {
		t.Errorf("input was mutated, len = %d", len(checkIns))
	}
}

func TestUpsert_ReplacesNotePreservingPosition(t *testing.T) {
	checkIns := []models.CheckIn{
		{Date: "2024-02-10", Note: "first"},
		{Date: "2024-02-11", Note: "second"},
		{Date: "2024-02-12", Note: "third"},
	}

	got := Upsert(checkIns, "2024-02-11", "updated")

	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[1].Date != "2024-02-11" || got[1].Note != "updated" {
		t.Errorf("entry not replaced in place: %+v", got[1])
	}
	if checkIns[1].Note != "second" {
		t.Errorf("input was mutated: %+v", checkIns[1])
	}
}

func TestUpsert_Idempotent(t *testing.T) {
	var checkIns []models.CheckIn
	checkIns = Upsert(checkIns, "2024-02-29", "leap day")
	checkIns = Upsert(checkIns, "2024-02-29", "leap day")

	if len(checkIns) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(checkIns))
	}
	if checkIns[0].Note != "leap day" {
		t.Errorf("note = %q, want %q", checkIns[0].Note, "leap day")
	}
}

func TestUpsert_UniquenessUnderManyUpserts(t *testing.T) {
	var checkIns []models.CheckIn
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-01", "2024-01-03", "2024-01-02", "2024-01-01"}
	for _, d := range dates {
		checkIns = Upsert(checkIns, d, "")
	}

	seen := make(map[string]int)
	for _, c := range checkIns {
		seen[c.Date]++
	}
	for date, n := range seen {
		if n != 1 {
			t.Errorf("date %s appears %d times", date, n)
		}
	}
	if len(checkIns) != 3 {
		t.Errorf("expected 3 distinct entries, got %d", len(checkIns))
	}
}

func TestRemove(t *testing.T) {
	checkIns := []models.CheckIn{
		{Date: "2024-02-10"},
		{Date: "2024-02-11"},
	}

	got := Remove(checkIns, "2024-02-10")

	if Has(got, "2024-02-10") {
		t.Error("removed date still present")
	}
	if !Has(got, "2024-02-11") {
		t.Error("unrelated entry was removed")
	}
}

func TestRemove_MissingDateIsNoop(t *testing.T) {
	checkIns := []models.CheckIn{
		{Date: "2024-02-10", Note: "kept"},
	}

	got := Remove(checkIns, "2024-03-01")

	if len(got) != 1 || got[0] != checkIns[0] {
		t.Errorf("expected equivalent collection, got %+v", got)
	}
}

func TestNoteFor(t *testing.T) {
	checkIns := []models.CheckIn{
		{Date: "2024-02-10", Note: "pages 1-20"},
		{Date: "2024-02-11", Note: ""},
	}

	if got := NoteFor(checkIns, "2024-02-10"); got != "pages 1-20" {
		t.Errorf("NoteFor = %q, want %q", got, "pages 1-20")
	}
	if got := NoteFor(checkIns, "2024-02-11"); got != "" {
		t.Errorf("NoteFor = %q, want empty", got)
	}
	if got := NoteFor(checkIns, "2099-01-01"); got != "" {
		t.Errorf("NoteFor for absent date = %q, want empty", got)
	}
}

func TestDateSet(t *testing.T) {
	checkIns := []models.CheckIn{
		{Date: "2024-02-10"},
		{Date: "2024-02-11"},
	}

	set := DateSet(checkIns)

	if len(set) != 2 || !set["2024-02-10"] || !set["2024-02-11"] {
		t.Errorf("unexpected set: %v", set)
	}
	if set["2024-02-12"] {
		t.Error("set reports membership for absent date")
	}
}
