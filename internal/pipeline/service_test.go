package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"storyreel/internal/brief"
	"storyreel/internal/history"
	"storyreel/internal/logging"
	"storyreel/internal/project"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	store, err := project.NewStore(root)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	hist, err := history.Open(filepath.Join(root, "history.db"))
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = hist.Close()
	})
	svc, err := NewService(store, hist, logging.NewNop())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, root
}

func testBrief() brief.Brief {
	return brief.Brief{
		Topic:           "Morning Routine Hacks",
		Description:     "Share three actionable tips. Focus on energising the viewer.",
		Tone:            "upbeat",
		Audience:        "busy professionals",
		DurationMinutes: 2,
	}
}

func TestEndToEndPipeline(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProject(testBrief())
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	s, err := svc.GenerateScript(p.ID)
	if err != nil {
		t.Fatalf("GenerateScript: %v", err)
	}
	if got := s.TotalSeconds(); got != 120 {
		t.Errorf("total seconds = %d, want 120", got)
	}

	sb, err := svc.SynthesizeStoryboard(p.ID)
	if err != nil {
		t.Fatalf("SynthesizeStoryboard: %v", err)
	}
	if len(sb.Frames) != len(s.Scenes) {
		t.Errorf("frames %d != scenes %d", len(sb.Frames), len(s.Scenes))
	}

	out := filepath.Join(t.TempDir(), "preview.json")
	pkg, written, err := svc.Render(ctx, p.ID, out)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if written != out {
		t.Errorf("written path = %s, want %s", written, out)
	}
	if pkg.ProjectID != p.ID {
		t.Errorf("package project = %s, want %s", pkg.ProjectID, p.ID)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected export at %s: %v", out, err)
	}

	entries, err := svc.RenderHistory(ctx, p.ID)
	if err != nil {
		t.Fatalf("RenderHistory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len(history) = %d, want 1", len(entries))
	}
	if entries[0].OutputPath != out {
		t.Errorf("history output = %s, want %s", entries[0].OutputPath, out)
	}
}

func TestRenderDefaultsOutputPath(t *testing.T) {
	svc, root := newTestService(t)

	p, err := svc.CreateProject(testBrief())
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	_, written, err := svc.Render(context.Background(), p.ID, "")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := filepath.Join(root, p.ID+"_preview.json")
	if written != want {
		t.Errorf("written path = %s, want %s", written, want)
	}
}

func TestRepeatedRendersEqualExceptTimestamp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProject(testBrief())
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	out := filepath.Join(t.TempDir(), "preview.json")
	if _, _, err := svc.Render(ctx, p.ID, out); err != nil {
		t.Fatalf("first Render: %v", err)
	}
	first := readJSON(t, out)
	if _, _, err := svc.Render(ctx, p.ID, out); err != nil {
		t.Fatalf("second Render: %v", err)
	}
	second := readJSON(t, out)

	delete(first, "generated_at")
	delete(second, "generated_at")
	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Error("renders differ beyond generated_at")
	}
}

func TestUnknownProjectSurfacesNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.GenerateScript("missing"); !errors.Is(err, project.ErrNotFound) {
		t.Errorf("GenerateScript error = %v, want ErrNotFound", err)
	}
	if _, _, err := svc.Render(context.Background(), "missing", ""); !errors.Is(err, project.ErrNotFound) {
		t.Errorf("Render error = %v, want ErrNotFound", err)
	}
}

func TestInvalidBriefNeverStored(t *testing.T) {
	svc, root := newTestService(t)

	b := testBrief()
	b.DurationMinutes = 0
	if _, err := svc.CreateProject(b); !errors.Is(err, brief.ErrInvalidBrief) {
		t.Fatalf("CreateProject error = %v, want ErrInvalidBrief", err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("read root: %v", err)
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".json" {
			t.Errorf("unexpected project record %s", entry.Name())
		}
	}
}

func TestServiceWithoutHistoryStore(t *testing.T) {
	store, err := project.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	svc, err := NewService(store, nil, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	p, err := svc.CreateProject(testBrief())
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if _, _, err := svc.Render(context.Background(), p.ID, ""); err != nil {
		t.Fatalf("Render: %v", err)
	}
	entries, err := svc.RenderHistory(context.Background(), "")
	if err != nil {
		t.Fatalf("RenderHistory: %v", err)
	}
	if entries != nil {
		t.Errorf("expected nil history, got %v", entries)
	}
}

func readJSON(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return payload
}
