package backups

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/models"
	"github.com/julianstephens/enough/internal/planner"
	"github.com/julianstephens/enough/internal/storage"
)

func setupContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	ctx := cli.NewContext(storage.NewMemoryStore(), t.TempDir())
	ctx.Out = &out
	ctx.Interactive = false
	return ctx, &out
}

func TestBackupCreateListRestore(t *testing.T) {
	ctx, out := setupContext(t)
	if _, err := ctx.Dispatch(planner.QuickAdd{Name: "Keep me"}); err != nil {
		t.Fatal(err)
	}

	if err := (&BackupListCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No backups found.") {
		t.Errorf("output = %q", out.String())
	}

	out.Reset()
	if err := (&BackupCreateCmd{}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	backups, err := ctx.BackupManager().ListBackups()
	if err != nil || len(backups) != 1 {
		t.Fatalf("backups = %v, %v", backups, err)
	}
	name := filepath.Base(backups[0].Path)
	if !strings.Contains(out.String(), name) {
		t.Errorf("create output = %q", out.String())
	}

	if err := storage.SaveTasks(context.Background(), ctx.Store, []models.Task{}); err != nil {
		t.Fatal(err)
	}

	if err := (&BackupRestoreCmd{BackupFile: name}).Run(ctx); err == nil {
		t.Error("non-interactive restore without --yes should fail")
	}

	if err := (&BackupRestoreCmd{BackupFile: name, Yes: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	tasks, err := storage.LoadTasks(context.Background(), ctx.Store)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].Name != "Keep me" {
		t.Errorf("restored tasks = %+v", tasks)
	}
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "enough-20261019-090000.json")
	if err := os.WriteFile(file, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}

	if got, err := ResolvePath(file, dir); err != nil || got != file {
		t.Errorf("absolute: %q, %v", got, err)
	}
	if got, err := ResolvePath("enough-20261019-090000.json", dir); err != nil || got != file {
		t.Errorf("bare name: %q, %v", got, err)
	}
	if _, err := ResolvePath("missing.json", dir); err == nil {
		t.Error("expected error for missing file")
	}
}
