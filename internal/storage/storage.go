package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/models"
)

var (
	// ErrNotFound reports a key that has never been written.
	ErrNotFound = errors.New("key not found")
	// ErrNotInitialized is returned by Load when the store does not exist yet.
	ErrNotInitialized = errors.New("storage not initialized, run 'enough init' first")
)

// CorruptError reports a blob that exists but cannot be decoded.
type CorruptError struct {
	Key string
	Err error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt data under %q: %v", e.Key, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}

// IsCorrupt reports whether err wraps a *CorruptError.
func IsCorrupt(err error) bool {
	var ce *CorruptError
	return errors.As(err, &ce)
}

func load(ctx context.Context, p Provider, key string, v any) error {
	data, err := p.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &CorruptError{Key: key, Err: err}
	}
	return nil
}

func save(ctx context.Context, p Provider, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := p.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// LoadTasks decodes the task list. A stored JSON null decodes to an empty list.
func LoadTasks(ctx context.Context, p Provider) ([]models.Task, error) {
	var tasks []models.Task
	if err := load(ctx, p, constants.TasksKey, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

func SaveTasks(ctx context.Context, p Provider, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}
	return save(ctx, p, constants.TasksKey, tasks)
}

// LoadSettings decodes settings and fills in any missing defaults.
func LoadSettings(ctx context.Context, p Provider) (models.Settings, error) {
	settings := models.DefaultSettings()
	if err := load(ctx, p, constants.SettingsKey, &settings); err != nil {
		return models.Settings{}, err
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

func SaveSettings(ctx context.Context, p Provider, settings models.Settings) error {
	return save(ctx, p, constants.SettingsKey, settings)
}

// LoadStats decodes stats and aligns the achievement list with the known set.
func LoadStats(ctx context.Context, p Provider) (models.UserStats, error) {
	var stats models.UserStats
	if err := load(ctx, p, constants.StatsKey, &stats); err != nil {
		return models.UserStats{}, err
	}
	stats.Normalize()
	return stats, nil
}

func SaveStats(ctx context.Context, p Provider, stats models.UserStats) error {
	return save(ctx, p, constants.StatsKey, stats)
}
