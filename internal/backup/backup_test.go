package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/models"
	"github.com/julianstephens/enough/internal/storage"
)

// setupManager returns a manager over an in-memory store holding one task,
// with a clock that advances a minute per call.
func setupManager(t *testing.T) (*Manager, *storage.JSONStore) {
	t.Helper()
	ctx := context.Background()
	store := storage.NewMemoryStore()
	tasks := []models.Task{{ID: "t1", Name: "Groceries", EnergyCost: 30, Category: "home", Priority: models.PriorityMedium}}
	if err := storage.SaveTasks(ctx, store, tasks); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	if err := storage.SaveSettings(ctx, store, models.DefaultSettings()); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	mgr := NewManager(store, t.TempDir())
	clock := time.Date(2026, 10, 19, 8, 0, 0, 0, time.Local)
	mgr.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return mgr, store
}

func TestCreateBackup(t *testing.T) {
	mgr, _ := setupManager(t)

	path, err := mgr.CreateBackup(context.Background())
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backup file was not created: %v", err)
	}

	snap, err := ReadBackup(path)
	if err != nil {
		t.Fatalf("ReadBackup failed: %v", err)
	}
	if len(snap.Blobs) != 2 {
		t.Errorf("expected 2 blobs, got %d", len(snap.Blobs))
	}
	if snap.Source != "memory" {
		t.Errorf("Source = %q", snap.Source)
	}
}

func TestBackupRotation(t *testing.T) {
	mgr, _ := setupManager(t)
	ctx := context.Background()

	for i := 0; i < constants.MaxBackups+5; i++ {
		if _, err := mgr.CreateBackup(ctx); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups are not sorted newest first at %d", i)
		}
	}
}

func TestListBackupsIgnoresForeignFiles(t *testing.T) {
	mgr, _ := setupManager(t)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected 0 backups initially, got %d", len(backups))
	}

	if _, err := mgr.CreateBackup(context.Background()); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"notes.txt", "enough-garbage.json", "enough-20261019-0900.json"} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("{}"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Size == 0 || backups[0].Timestamp.IsZero() {
		t.Errorf("incomplete info: %+v", backups[0])
	}
}

func TestUniqueBackupFilenames(t *testing.T) {
	mgr, _ := setupManager(t)
	fixed := time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local)
	mgr.now = func() time.Time { return fixed }

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		path, err := mgr.CreateBackup(context.Background())
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		name := filepath.Base(path)
		if seen[name] {
			t.Errorf("duplicate backup filename: %s", name)
		}
		seen[name] = true
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 5 {
		t.Errorf("expected 5 backups, got %d", len(backups))
	}
	if filepath.Base(backups[0].Path) != "enough-20261019-090000-4.json" {
		t.Errorf("newest = %s", filepath.Base(backups[0].Path))
	}
}

func TestRestoreBackup(t *testing.T) {
	mgr, store := setupManager(t)
	ctx := context.Background()

	path, err := mgr.CreateBackup(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := storage.SaveTasks(ctx, store, []models.Task{}); err != nil {
		t.Fatal(err)
	}

	if err := mgr.RestoreBackup(ctx, path); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	tasks, err := storage.LoadTasks(ctx, store)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].Name != "Groceries" {
		t.Errorf("tasks after restore = %+v", tasks)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 2 {
		t.Errorf("expected pre-restore backup, got %d backups", len(backups))
	}
}

func TestReadBackupRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "not a backup"},
		{"no known keys", `{"version":1,"blobs":{"other":1}}`},
		{"future version", `{"version":99,"blobs":{"enough-tasks":[]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := ReadBackup(path); err == nil {
				t.Error("ReadBackup should fail")
			}
		})
	}
}

func TestAutoBackup(t *testing.T) {
	mgr, _ := setupManager(t)
	ctx := context.Background()

	if _, created, err := mgr.AutoBackup(ctx, 24*time.Hour); err != nil || !created {
		t.Fatalf("first AutoBackup created=%v err=%v", created, err)
	}
	if _, created, err := mgr.AutoBackup(ctx, 24*time.Hour); err != nil || created {
		t.Errorf("second AutoBackup created=%v err=%v", created, err)
	}
	if _, created, err := mgr.AutoBackup(ctx, 0); err != nil || !created {
		t.Errorf("zero interval AutoBackup created=%v err=%v", created, err)
	}
}
