package storage

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/models"
)

func TestLoadMissing(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := LoadTasks(ctx, s); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadTasks = %v, want ErrNotFound", err)
	}
	if _, err := LoadSettings(ctx, s); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadSettings = %v, want ErrNotFound", err)
	}
	if _, err := LoadStats(ctx, s); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadStats = %v, want ErrNotFound", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, key := range []string{constants.TasksKey, constants.SettingsKey, constants.StatsKey} {
		if err := s.Put(ctx, key, []byte("definitely not json")); err != nil {
			t.Fatal(err)
		}
	}

	_, err := LoadTasks(ctx, s)
	var ce *CorruptError
	if !errors.As(err, &ce) || ce.Key != constants.TasksKey {
		t.Errorf("LoadTasks = %v, want CorruptError for tasks", err)
	}
	if _, err := LoadSettings(ctx, s); !IsCorrupt(err) {
		t.Errorf("LoadSettings = %v, want corrupt", err)
	}
	if _, err := LoadStats(ctx, s); !IsCorrupt(err) {
		t.Errorf("LoadStats = %v, want corrupt", err)
	}
}

func TestLoadPartialSettingsKeepsDefaults(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	if err := s.Put(ctx, constants.SettingsKey, []byte(`{"dailyCapacity": 80, "visualizationType": "cup"}`)); err != nil {
		t.Fatal(err)
	}

	got, err := LoadSettings(ctx, s)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got.DailyCapacity != 80 || got.VisualizationStyle != models.VisualizationCup {
		t.Errorf("stored fields lost: %+v", got)
	}
	if len(got.Templates) != len(models.DefaultTemplates()) || !reflect.DeepEqual(got.Categories, models.DefaultCategories()) {
		t.Errorf("defaults not applied: %+v", got)
	}
}

func TestNullTasksDecodeEmpty(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	if err := s.Put(ctx, constants.TasksKey, []byte("null")); err != nil {
		t.Fatal(err)
	}
	tasks, err := LoadTasks(ctx, s)
	if err != nil || tasks == nil || len(tasks) != 0 {
		t.Errorf("LoadTasks = %v, %v", tasks, err)
	}
}

func TestJSONStoreFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "enough.json")

	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	tasks := []models.Task{{ID: "a", Name: "Laundry", EnergyCost: 10, Category: "home", Priority: models.PriorityLow}}
	if err := SaveTasks(ctx, s, tasks); err != nil {
		t.Fatal(err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, err := LoadTasks(ctx, reopened)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Laundry" {
		t.Errorf("tasks = %+v", got)
	}
	keys, _ := reopened.Keys(ctx)
	if !reflect.DeepEqual(keys, []string{constants.TasksKey}) {
		t.Errorf("Keys = %v", keys)
	}
}

func TestJSONStoreLoadUninitialized(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := s.Load(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Load before Init = %v, want ErrNotInitialized", err)
	}
}
