package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/serhatramay/trend-hunter-pro/internal/app"
)

func newTestRepo(t *testing.T) *PrefsRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "trendhunter.db")
	repo, err := NewPrefsRepository(dbPath)
	if err != nil {
		t.Fatalf("NewPrefsRepository returned error: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	return repo
}

func TestPrefsRepository_SaveAndLoad(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	want := app.Preferences{Compact: true, RelativeTime: true}
	if err := repo.SavePreferences(ctx, want); err != nil {
		t.Fatalf("SavePreferences returned error: %v", err)
	}

	got, err := repo.LoadPreferences(ctx)
	if err != nil {
		t.Fatalf("LoadPreferences returned error: %v", err)
	}
	if got != want {
		t.Fatalf("loaded %+v, want %+v", got, want)
	}
}

func TestPrefsRepository_LoadDefaultsWhenEmpty(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.LoadPreferences(context.Background())
	if err != nil {
		t.Fatalf("LoadPreferences returned error: %v", err)
	}
	if got != (app.Preferences{}) {
		t.Fatalf("expected zero preferences, got %+v", got)
	}
}

func TestPrefsRepository_SaveOverwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.SavePreferences(ctx, app.Preferences{Compact: true}); err != nil {
		t.Fatalf("first save returned error: %v", err)
	}
	if err := repo.SavePreferences(ctx, app.Preferences{RelativeTime: true}); err != nil {
		t.Fatalf("second save returned error: %v", err)
	}

	got, err := repo.LoadPreferences(ctx)
	if err != nil {
		t.Fatalf("LoadPreferences returned error: %v", err)
	}
	if got.Compact || !got.RelativeTime {
		t.Fatalf("second save not authoritative: %+v", got)
	}
}
