package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestRecordAndList(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	at := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
	first, err := store.Record(ctx, Entry{
		ProjectID:       "proj-1",
		OutputPath:      "/tmp/proj-1_preview.json",
		SceneCount:      3,
		DurationSeconds: 120,
		GeneratedAt:     at,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if first.ID == 0 {
		t.Error("expected assigned entry id")
	}
	if !first.GeneratedAt.Equal(at) {
		t.Errorf("generated_at = %v, want %v", first.GeneratedAt, at)
	}

	if _, err := store.Record(ctx, Entry{
		ProjectID:       "proj-2",
		OutputPath:      "/tmp/proj-2_preview.json",
		SceneCount:      5,
		DurationSeconds: 180,
		GeneratedAt:     at.Add(time.Minute),
	}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].ProjectID != "proj-1" || entries[1].ProjectID != "proj-2" {
		t.Errorf("entries out of order: %s, %s", entries[0].ProjectID, entries[1].ProjectID)
	}
}

func TestForProjectFilters(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	at := time.Now().UTC()

	for _, projectID := range []string{"proj-1", "proj-2", "proj-1"} {
		if _, err := store.Record(ctx, Entry{
			ProjectID:       projectID,
			OutputPath:      "/tmp/out.json",
			SceneCount:      3,
			DurationSeconds: 60,
			GeneratedAt:     at,
		}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	entries, err := store.ForProject(ctx, "proj-1")
	if err != nil {
		t.Fatalf("ForProject: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	for _, entry := range entries {
		if entry.ProjectID != "proj-1" {
			t.Errorf("entry project = %s, want proj-1", entry.ProjectID)
		}
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.Record(ctx, Entry{ProjectID: "proj-1", OutputPath: "/tmp/out.json", SceneCount: 3, DurationSeconds: 60, GeneratedAt: time.Now()}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if removed != 1 {
		t.Errorf("Clear removed %d, want 1", removed)
	}
	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d after clear, want 0", len(entries))
	}
}

func TestOpenRejectsFutureSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := store.db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := Open(path); err == nil {
		t.Fatal("expected schema mismatch error")
	}
}
