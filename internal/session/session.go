// Package session owns the in-memory planner state for one running process
// and keeps the three persisted blobs in step with it.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/energy"
	"github.com/julianstephens/enough/internal/logger"
	"github.com/julianstephens/enough/internal/models"
	"github.com/julianstephens/enough/internal/planner"
	"github.com/julianstephens/enough/internal/storage"
)

// Session is not safe for concurrent use; the CLI and the TUI dispatch
// from a single goroutine.
type Session struct {
	store   storage.Provider
	env     planner.Env
	state   planner.State
	lastErr error
}

// LoadReport says which blobs fell back to defaults and why.
type LoadReport struct {
	Missing  []string
	Corrupt  []string
	// Repaired lists IDs of tasks whose invariants were restored on load.
	Repaired []string
}

// Open loads the state from an already loaded store. Missing or unreadable
// blobs fall back to defaults and are logged, never returned.
func Open(ctx context.Context, store storage.Provider, env planner.Env) (*Session, LoadReport) {
	s := &Session{store: store, env: env, state: planner.NewState()}
	var report LoadReport

	note := func(key string, err error) {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			logger.Debug("No stored data, using defaults", "key", key)
			report.Missing = append(report.Missing, key)
		default:
			logger.Warn("Failed to load stored data, using defaults", "key", key, "error", err)
			report.Corrupt = append(report.Corrupt, key)
		}
	}

	if tasks, err := storage.LoadTasks(ctx, store); err != nil {
		note(constants.TasksKey, err)
	} else {
		for i := range tasks {
			if tasks[i].Repair() {
				logger.Warn("Repaired stored task", "id", tasks[i].ID, "name", tasks[i].Name)
				report.Repaired = append(report.Repaired, tasks[i].ID)
			}
		}
		s.state.Tasks = tasks
	}
	if settings, err := storage.LoadSettings(ctx, store); err != nil {
		note(constants.SettingsKey, err)
	} else {
		s.state.Settings = settings
	}
	if stats, err := storage.LoadStats(ctx, store); err != nil {
		note(constants.StatsKey, err)
	} else {
		s.state.Stats = stats
	}

	return s, report
}

// Dispatch applies an intent and persists whichever blobs it changed.
// Intent errors are returned; storage errors are only logged.
func (s *Session) Dispatch(ctx context.Context, intent planner.Intent) (planner.Result, error) {
	next, res, err := intent.Apply(s.state, s.env)
	if err != nil {
		logger.Debug("Intent rejected", "intent", intentName(intent), "error", err)
		return res, err
	}
	s.state = next
	s.persist(ctx, res.Changed)
	for _, id := range res.Unlocked {
		logger.Info("Achievement unlocked", "id", id)
	}
	return res, nil
}

func (s *Session) persist(ctx context.Context, changed planner.Change) {
	if changed.Has(planner.TasksChanged) {
		s.record(constants.TasksKey, storage.SaveTasks(ctx, s.store, s.state.Tasks))
	}
	if changed.Has(planner.SettingsChanged) {
		s.record(constants.SettingsKey, storage.SaveSettings(ctx, s.store, s.state.Settings))
	}
	if changed.Has(planner.StatsChanged) {
		s.record(constants.StatsKey, storage.SaveStats(ctx, s.store, s.state.Stats))
	}
}

func (s *Session) record(key string, err error) {
	if err != nil {
		logger.Error("Failed to persist state", "key", key, "error", err)
		s.lastErr = err
	}
}

// Flush writes all three blobs regardless of what changed.
func (s *Session) Flush(ctx context.Context) {
	s.persist(ctx, planner.TasksChanged|planner.SettingsChanged|planner.StatsChanged)
}

// LastWriteError is the most recent persistence failure, if any.
func (s *Session) LastWriteError() error {
	return s.lastErr
}

// State returns a copy of the current state.
func (s *Session) State() planner.State {
	return s.state.Clone()
}

func (s *Session) Tasks() []models.Task {
	return s.State().Tasks
}

func (s *Session) Settings() models.Settings {
	return s.state.Settings.Clone()
}

func (s *Session) Stats() models.UserStats {
	return s.state.Stats.Clone()
}

func (s *Session) Energy() energy.Summary {
	return energy.Compute(s.state.Tasks, s.state.Settings)
}

func (s *Session) Gauge() energy.Gauge {
	return energy.NewGauge(s.Energy(), s.state.Settings.DailyCapacity)
}

func (s *Session) Store() storage.Provider {
	return s.store
}

func intentName(intent planner.Intent) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", intent), "planner.")
}
