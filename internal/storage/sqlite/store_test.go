package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/models"
	"github.com/julianstephens/enough/internal/storage"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "enough.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInitRunsMigrations(t *testing.T) {
	store := setupTestStore(t)

	v, err := store.SchemaVersion(context.Background())
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if v != 1 {
		t.Errorf("schema version = %d, want 1", v)
	}

	// Init on an existing database is a no-op.
	if err := store.Init(); err != nil {
		t.Errorf("second Init failed: %v", err)
	}
}

func TestGetMissing(t *testing.T) {
	store := setupTestStore(t)
	if _, err := store.Get(context.Background(), constants.StatsKey); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get = %v, want ErrNotFound", err)
	}
}

func TestPutOverwrites(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	if err := store.Put(ctx, "k", []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(ctx, "k", []byte("two")); err != nil {
		t.Fatal(err)
	}
	got, err := store.Get(ctx, "k")
	if err != nil || string(got) != "two" {
		t.Errorf("Get = %q, %v", got, err)
	}
	keys, _ := store.Keys(ctx)
	if !reflect.DeepEqual(keys, []string{"k"}) {
		t.Errorf("Keys = %v", keys)
	}
}

func TestTypedRoundTripAcrossReopen(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	settings := models.DefaultSettings()
	settings.DailyCapacity = 120
	settings.Categories = []string{"work", "music"}
	settings.OnboardingCompleted = true
	if err := storage.SaveSettings(ctx, store, settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	stats := models.DefaultStats()
	stats.TotalTasksCompleted = 12
	stats.CurrentStreak = 3
	stats.LongestStreak = 5
	if err := storage.SaveStats(ctx, store, stats); err != nil {
		t.Fatalf("SaveStats failed: %v", err)
	}
	path := store.GetConfigPath()
	store.Close()

	reopened := NewStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	gotSettings, err := storage.LoadSettings(ctx, reopened)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if !reflect.DeepEqual(gotSettings, settings) {
		t.Errorf("settings = %+v, want %+v", gotSettings, settings)
	}

	gotStats, err := storage.LoadStats(ctx, reopened)
	if err != nil {
		t.Fatalf("LoadStats failed: %v", err)
	}
	if !reflect.DeepEqual(gotStats, stats) {
		t.Errorf("stats = %+v, want %+v", gotStats, stats)
	}

	if _, err := storage.LoadTasks(ctx, reopened); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("LoadTasks = %v, want ErrNotFound", err)
	}
}

func TestLoadUninitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); !errors.Is(err, storage.ErrNotInitialized) {
		t.Errorf("Load on a missing database = %v, want ErrNotInitialized", err)
	}
}
