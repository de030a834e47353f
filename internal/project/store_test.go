package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"storyreel/internal/brief"
)

func testBrief() brief.Brief {
	return brief.Brief{
		Topic:           "Healthy Snacks",
		Description:     "Offer snappy snack ideas for remote workers.",
		Tone:            "friendly",
		Audience:        "remote workers",
		DurationMinutes: 3,
	}
}

func TestCreateAndLoadRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	created, err := store.Create(testBrief())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned project id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected created_at timestamp")
	}

	loaded, err := store.Load(created.ID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ID != created.ID {
		t.Errorf("loaded id = %s, want %s", loaded.ID, created.ID)
	}
	if loaded.Brief != created.Brief {
		t.Errorf("loaded brief = %+v, want %+v", loaded.Brief, created.Brief)
	}
}

func TestCreateRejectsInvalidBrief(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	b := testBrief()
	b.DurationMinutes = 0
	if _, err := store.Create(b); !errors.Is(err, brief.ErrInvalidBrief) {
		t.Errorf("Create error = %v, want ErrInvalidBrief", err)
	}
}

func TestLoadUnknownIDFails(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	for _, id := range []string{"missing", "", "../escape", "a/b"} {
		if _, err := store.Load(id); !errors.Is(err, ErrNotFound) {
			t.Errorf("Load(%q) error = %v, want ErrNotFound", id, err)
		}
	}
}

func TestListOrdersByCreation(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"p-charlie", "p-alpha", "p-bravo"} {
		p := &Project{ID: id, Brief: testBrief(), CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		if err := store.Save(p); err != nil {
			t.Fatalf("Save(%s): %v", id, err)
		}
	}
	// Non-record files in the root are ignored.
	if err := os.WriteFile(filepath.Join(root, "history.db"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write stray file: %v", err)
	}

	projects, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got := make([]string, 0, len(projects))
	for _, p := range projects {
		got = append(got, p.ID)
	}
	want := []string{"p-charlie", "p-alpha", "p-bravo"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("List order = %v, want %v", got, want)
		}
	}
}

func TestSaveWritesWellFormedJSON(t *testing.T) {
	root := t.TempDir()
	store, err := NewStore(root)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	created, err := store.Create(testBrief())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, created.ID+".json"))
	if err != nil {
		t.Fatalf("read record: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("record is not valid JSON: %v", err)
	}
	for _, key := range []string{"id", "brief", "created_at"} {
		if _, ok := payload[key]; !ok {
			t.Errorf("record missing key %q", key)
		}
	}
}
