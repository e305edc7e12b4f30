package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"grocer/internal/config"
	"grocer/internal/history"
)

// MustOpenHistory opens the config's history store for tests and registers cleanup.
func MustOpenHistory(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(cfg.History.Path), 0o755); err != nil {
		t.Fatalf("mkdir history dir: %v", err)
	}
	store, err := history.Open(context.Background(), cfg.History.Path)
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
