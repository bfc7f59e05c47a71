package system

import (
	"context"
	"fmt"

	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/models"
	"github.com/julianstephens/enough/internal/storage"
	"github.com/julianstephens/enough/internal/storage/backend"
)

type InitCmd struct {
	Force  bool   `help:"Reset tasks, settings and stats to defaults (a backup is taken first)."`
	Source string `help:"Source path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Source != "" && c.Source == ctx.Store.GetConfigPath() {
		return fmt.Errorf("source and destination are the same: %s", c.Source)
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Successf("Initialized enough storage at: %s", ctx.Store.GetConfigPath())

	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if c.Source != "" {
		ctx.Printf("Copying data from: %s\n", c.Source)
		n, err := copyFrom(ctx, c.Source)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		ctx.Successf("Copied %d stored keys", n)
	}
	return nil
}

func (c *InitCmd) reset(ctx *cli.Context) error {
	bg := context.Background()
	keys, err := ctx.Store.Keys(bg)
	if err != nil {
		return fmt.Errorf("failed to inspect existing data: %w", err)
	}
	if len(keys) > 0 {
		path, err := ctx.BackupManager().CreateBackup(bg)
		if err != nil {
			return fmt.Errorf("refusing to reset without a backup: %w", err)
		}
		ctx.Faintf("Backed up existing data to %s", path)
	}

	if err := storage.SaveTasks(bg, ctx.Store, []models.Task{}); err != nil {
		return err
	}
	if err := storage.SaveSettings(bg, ctx.Store, models.DefaultSettings()); err != nil {
		return err
	}
	if err := storage.SaveStats(bg, ctx.Store, models.DefaultStats()); err != nil {
		return err
	}
	ctx.Successf("Reset tasks, settings and stats to defaults")
	return nil
}

// copyFrom copies every blob of another backend into the current store.
func copyFrom(ctx *cli.Context, source string) (int, error) {
	src, err := backend.Open(source)
	if err != nil {
		return 0, err
	}
	if err := src.Load(); err != nil {
		return 0, fmt.Errorf("failed to load source: %w", err)
	}
	defer src.Close()

	bg := context.Background()
	keys, err := src.Keys(bg)
	if err != nil {
		return 0, err
	}
	for _, key := range keys {
		data, err := src.Get(bg, key)
		if err != nil {
			return 0, fmt.Errorf("failed to read %s from source: %w", key, err)
		}
		if err := ctx.Store.Put(bg, key, data); err != nil {
			return 0, fmt.Errorf("failed to write %s: %w", key, err)
		}
		ctx.Faintf("  copied %s", key)
	}
	return len(keys), nil
}
