package testsupport

import (
	"testing"

	"storyreel/internal/config"
	"storyreel/internal/history"
	"storyreel/internal/project"
)

// MustOpenStore opens a project.Store rooted at the config's projects dir.
func MustOpenStore(t testing.TB, cfg *config.Config) *project.Store {
	t.Helper()

	store, err := project.NewStore(cfg.Paths.ProjectsDir)
	if err != nil {
		t.Fatalf("project.NewStore: %v", err)
	}
	return store
}

// MustOpenHistory opens a history.Store for tests and registers cleanup.
func MustOpenHistory(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	hist, err := history.Open(cfg.HistoryPath())
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() {
		if err := hist.Close(); err != nil {
			t.Errorf("history.Close: %v", err)
		}
	})
	return hist
}
