// Package backups holds the `enough backup` subcommands.
package backups

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/enough/internal/backup"
	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/tui/forms"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Create a backup now."`
	List    BackupListCmd    `cmd:"" help:"List available backups." default:"1"`
	Restore BackupRestoreCmd `cmd:"" help:"Restore tasks, settings and stats from a backup."`
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	backupPath, err := ctx.BackupManager().CreateBackup(context.Background())
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	ctx.Successf("Backup created: %s", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := ctx.BackupManager()
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		ctx.Println("No backups found.")
		ctx.Printf("Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	ctx.Printf("Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		ctx.Printf("  %s  %s  (%.1f KB)\n", b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path), sizeKB)
	}
	ctx.Printf("\nBackup directory: %s\n", mgr.GetBackupDir())
	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Restore without asking for confirmation."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr := ctx.BackupManager()

	backupPath, err := ResolvePath(c.BackupFile, mgr.GetBackupDir())
	if err != nil {
		return err
	}
	snap, err := backup.ReadBackup(backupPath)
	if err != nil {
		return fmt.Errorf("cannot restore: %w", err)
	}

	if !c.Yes {
		if !ctx.Interactive {
			return errors.New("restore needs confirmation; rerun with --yes")
		}
		ctx.Warnf("This will replace your current tasks, settings and stats with the backup.")
		ctx.Println("A backup of your current data will be created before restoring.")
		ctx.Printf("\nRestore from: %s (%s)\n", backupPath, snap.CreatedAt.Local().Format("2006-01-02 15:04:05"))

		fm := &forms.ConfirmFormModel{}
		if err := forms.NewConfirmForm(fm, "Continue?", "Restore", "Cancel").Run(); err != nil {
			return err
		}
		if !fm.Confirmed {
			ctx.Println("Restore cancelled.")
			return nil
		}
	}

	if err := mgr.RestoreBackup(context.Background(), backupPath); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	ctx.Successf("Restored %d items from %s", len(snap.Blobs), filepath.Base(backupPath))
	ctx.Warnf("Restart any running enough TUI so it picks up the restored data.")
	return nil
}

// ResolvePath accepts an absolute path, a path relative to the working
// directory, or a bare filename inside the backup directory.
func ResolvePath(ref, backupDir string) (string, error) {
	if filepath.IsAbs(ref) {
		if _, err := os.Stat(ref); err != nil {
			return "", fmt.Errorf("backup file not found: %s", ref)
		}
		return ref, nil
	}
	if _, err := os.Stat(ref); err == nil {
		abs, err := filepath.Abs(ref)
		if err != nil {
			return "", fmt.Errorf("failed to resolve backup path: %w", err)
		}
		return abs, nil
	}
	candidate := filepath.Join(backupDir, ref)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", fmt.Errorf("backup file not found: tried current directory and %s", backupDir)
}
