package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/focus/pkg/task"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func testEntries() []task.DailyEntry {
	now := task.Timestamp{Time: time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC)}
	return []task.DailyEntry{
		{
			Date: "2026-08-26",
			Tasks: []task.Task{
				{ID: "a", Text: "call the dentist", Category: task.Personal, Priority: 1, Created: now},
				{ID: "b", Text: "ship the report", Category: task.Professional, Priority: 2, Completed: true, Created: now},
			},
			Reflection: "felt good",
			Saved:      now,
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	want := testEntries()
	if err := p.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.Load()
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	e := got[0]
	if e.Date != "2026-08-26" || e.Reflection != "felt good" {
		t.Fatalf("entry fields lost in round trip: %+v", e)
	}
	if len(e.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(e.Tasks))
	}
	if e.Tasks[1].ID != "b" || !e.Tasks[1].Completed || e.Tasks[1].Category != task.Professional {
		t.Fatalf("task fields lost in round trip: %+v", e.Tasks[1])
	}
	if !e.Tasks[0].Created.Equal(want[0].Tasks[0].Created.Time) {
		t.Fatalf("created timestamp lost in round trip")
	}
}

func TestLoadMissingKeyIsEmpty(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	got := p.Load()
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty history, got %v", got)
	}
}

func TestLoadCorruptDataResets(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	// Seed the entries key with garbage directly on disk.
	if err := os.WriteFile(filepath.Join(base, "entries"), []byte("not json"), 0o644); err != nil {
		t.Fatalf("seed corrupt key: %v", err)
	}

	got := p.Load()
	if len(got) != 0 {
		t.Fatalf("expected empty history on corrupt data, got %v", got)
	}

	// The corrupt key is proactively removed.
	if _, err := os.Stat(filepath.Join(base, "entries")); !os.IsNotExist(err) {
		t.Fatalf("expected corrupt key to be erased, stat err: %v", err)
	}

	// And the next save works cleanly.
	if err := p.Save(testEntries()); err != nil {
		t.Fatalf("save after corruption: %v", err)
	}
	if got := p.Load(); len(got) != 1 {
		t.Fatalf("expected 1 entry after re-save, got %d", len(got))
	}
}

func TestLastCompleted(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if _, ok := p.LastCompleted(); ok {
		t.Fatalf("expected no marker on fresh store")
	}
	if err := p.SetLastCompleted("2026-08-26"); err != nil {
		t.Fatalf("set marker: %v", err)
	}
	got, ok := p.LastCompleted()
	if !ok || got != "2026-08-26" {
		t.Fatalf("expected 2026-08-26, got %q ok=%v", got, ok)
	}

	// Overwritten on every save of the marker.
	if err := p.SetLastCompleted("2026-08-27"); err != nil {
		t.Fatalf("overwrite marker: %v", err)
	}
	if got, _ := p.LastCompleted(); got != "2026-08-27" {
		t.Fatalf("expected overwrite to 2026-08-27, got %q", got)
	}
}

func TestClearRemovesBothKeys(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := p.Save(testEntries()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := p.SetLastCompleted("2026-08-26"); err != nil {
		t.Fatalf("set marker: %v", err)
	}

	if err := p.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := p.Load(); len(got) != 0 {
		t.Fatalf("expected empty history after clear, got %v", got)
	}
	if _, ok := p.LastCompleted(); ok {
		t.Fatalf("expected no marker after clear")
	}

	// Clearing an already-empty store is fine.
	if err := p.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestMemoryMatchesContract(t *testing.T) {
	p := Memory()

	if got := p.Load(); len(got) != 0 {
		t.Fatalf("expected empty history, got %v", got)
	}
	if err := p.Save(testEntries()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := p.Load()
	if len(got) != 1 || got[0].Date != "2026-08-26" {
		t.Fatalf("round trip failed: %v", got)
	}

	// Mutating the returned slice must not leak into the store.
	got[0].Reflection = "mutated"
	if p.Load()[0].Reflection != "felt good" {
		t.Fatalf("memory store leaked internal state")
	}

	if err := p.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(p.Load()) != 0 {
		t.Fatalf("expected empty history after clear")
	}
}
