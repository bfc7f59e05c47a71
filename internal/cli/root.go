package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/enough/internal/backup"
	"github.com/julianstephens/enough/internal/logger"
	"github.com/julianstephens/enough/internal/models"
	"github.com/julianstephens/enough/internal/planner"
	"github.com/julianstephens/enough/internal/session"
	"github.com/julianstephens/enough/internal/storage"
)

// AutoBackupInterval is how old the newest backup may get before the TUI
// takes a new one on start.
const AutoBackupInterval = 24 * time.Hour

var (
	ErrAmbiguousTask = errors.New("task reference matches more than one task")
	ErrUnknownTask   = errors.New("no task matches reference")
)

type Context struct {
	Store     storage.Provider
	ConfigDir string
	Env       planner.Env

	// Interactive is false when stdin is not a terminal; prompts are skipped.
	Interactive bool
	Out         io.Writer

	session *session.Session
}

// NewContext wires a context with the default clock and stdout.
func NewContext(store storage.Provider, configDir string) *Context {
	return &Context{
		Store:       store,
		ConfigDir:   configDir,
		Env:         planner.DefaultEnv(),
		Interactive: isTerminal(os.Stdin),
		Out:         os.Stdout,
	}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// Session opens the planner session on first use.
func (c *Context) Session() *session.Session {
	if c.session == nil {
		s, report := session.Open(context.Background(), c.Store, c.Env)
		for _, key := range report.Corrupt {
			c.Warnf("Stored %s could not be read; using defaults", key)
		}
		c.session = s
	}
	return c.session
}

// Dispatch applies an intent and announces any unlocked achievements.
func (c *Context) Dispatch(intent planner.Intent) (planner.Result, error) {
	res, err := c.Session().Dispatch(context.Background(), intent)
	if err != nil {
		return res, err
	}
	c.Unlocked(res.Unlocked)
	return res, nil
}

// RecordVisit counts today toward the streak.
func (c *Context) RecordVisit() {
	if _, err := c.Dispatch(planner.RecordVisit{}); err != nil {
		logger.Warn("Failed to record visit", "error", err)
	}
}

func (c *Context) BackupManager() *backup.Manager {
	return backup.NewManager(c.Store, c.ConfigDir)
}

// PerformAutomaticBackup creates a backup if the last one is stale and
// silently handles errors
func (c *Context) PerformAutomaticBackup() {
	path, created, err := c.BackupManager().AutoBackup(context.Background(), AutoBackupInterval)
	if err != nil {
		logger.Warn("Automatic backup failed", "error", err)
		return
	}
	if created {
		logger.Debug("Automatic backup created", "path", path)
	}
}

// ResolveTask finds a task by full ID, unique ID prefix, or 1-based position
// in the list.
func (c *Context) ResolveTask(ref string) (models.Task, error) {
	ref = strings.TrimSpace(ref)
	tasks := c.Session().Tasks()

	if n, err := strconv.Atoi(ref); err == nil && len(ref) < 4 {
		if n >= 1 && n <= len(tasks) {
			return tasks[n-1], nil
		}
		return models.Task{}, fmt.Errorf("%w: %s (list has %d tasks)", ErrUnknownTask, ref, len(tasks))
	}

	var match *models.Task
	for i := range tasks {
		switch {
		case tasks[i].ID == ref:
			return tasks[i], nil
		case ref != "" && strings.HasPrefix(tasks[i].ID, ref):
			if match != nil {
				return models.Task{}, fmt.Errorf("%w: %s", ErrAmbiguousTask, ref)
			}
			match = &tasks[i]
		}
	}
	if match == nil {
		return models.Task{}, fmt.Errorf("%w: %s", ErrUnknownTask, ref)
	}
	return *match, nil
}

// ShortID trims an ID for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
