// Package planner holds the task lifecycle. Every user action is an Intent
// applied to an explicit State; intents never mutate their input and return
// which stores changed so callers can persist only those.
package planner

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/enough/internal/models"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrNoTasks         = errors.New("no tasks to complete")
	ErrInvalidCapacity = errors.New("daily capacity must be greater than zero")
	ErrTemplateMissing = errors.New("template not found")
	ErrCategoryExists  = errors.New("category already exists")
	ErrCategoryMissing = errors.New("category not found")

	// Re-exported so callers only import planner for intent errors.
	ErrInvalidHour   = models.ErrInvalidHour
	ErrInvalidEnergy = models.ErrInvalidEnergy
)

// NoTasksMessage is shown instead of a day report when the list is empty.
const NoTasksMessage = "Add some tasks first, then mark them complete!"

// State is everything the planner reasons about.
type State struct {
	Tasks    []models.Task
	Settings models.Settings
	Stats    models.UserStats
}

// NewState returns the state of a fresh install.
func NewState() State {
	return State{
		Tasks:    []models.Task{},
		Settings: models.DefaultSettings(),
		Stats:    models.DefaultStats(),
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	tasks := make([]models.Task, len(s.Tasks))
	for i, t := range s.Tasks {
		tasks[i] = t.Clone()
	}
	return State{
		Tasks:    tasks,
		Settings: s.Settings.Clone(),
		Stats:    s.Stats.Clone(),
	}
}

func (s State) indexOf(id string) int {
	for i, t := range s.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the task with the given ID.
func (s State) Find(id string) (models.Task, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.Tasks[i], true
	}
	return models.Task{}, false
}

// Env supplies the clock and ID source.
type Env struct {
	Now   func() time.Time
	NewID func() string
}

// DefaultEnv uses the wall clock and random UUIDs.
func DefaultEnv() Env {
	return Env{
		Now:   time.Now,
		NewID: func() string { return uuid.New().String() },
	}
}

// Change is a bitmask of the stores an intent modified.
type Change uint8

const (
	TasksChanged Change = 1 << iota
	SettingsChanged
	StatsChanged

	NoChange Change = 0
)

func (c Change) Has(flag Change) bool {
	return c&flag != 0
}

// Result describes what an intent did besides producing the next state.
type Result struct {
	Changed  Change
	Unlocked []string
	Report   *DayReport
	Task     *models.Task
}

// Intent is a single user-initiated state transition.
type Intent interface {
	Apply(State, Env) (State, Result, error)
}
