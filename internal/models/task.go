package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/enough/internal/constants"
)

type EnergyType string

const (
	EnergyFocus     EnergyType = "focus"
	EnergySocial    EnergyType = "social"
	EnergyPhysical  EnergyType = "physical"
	EnergyCreative  EnergyType = "creative"
	EnergyEmotional EnergyType = "emotional"
	EnergyAdmin     EnergyType = "admin"
)

// EnergyTypes lists every energy type in display order.
var EnergyTypes = []EnergyType{
	EnergyFocus,
	EnergySocial,
	EnergyPhysical,
	EnergyCreative,
	EnergyEmotional,
	EnergyAdmin,
}

// Description returns the short explanation shown next to an energy type.
func (e EnergyType) Description() string {
	switch e {
	case EnergyFocus:
		return "Deep work, concentration"
	case EnergySocial:
		return "Meetings, calls, interactions"
	case EnergyPhysical:
		return "Exercise, movement, physical tasks"
	case EnergyCreative:
		return "Art, writing, brainstorming"
	case EnergyEmotional:
		return "Processing feelings, self-care"
	case EnergyAdmin:
		return "Paperwork, organizing, planning"
	default:
		return ""
	}
}

func (e EnergyType) Valid() bool {
	for _, t := range EnergyTypes {
		if t == e {
			return true
		}
	}
	return false
}

// ParseEnergyType parses a case-insensitive energy type name.
func ParseEnergyType(s string) (EnergyType, error) {
	et := EnergyType(strings.ToLower(strings.TrimSpace(s)))
	if !et.Valid() {
		return "", fmt.Errorf("invalid energy type: %q", s)
	}
	return et, nil
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ParsePriority parses a case-insensitive priority name.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid priority: %q", s)
	}
	return p, nil
}

var (
	ErrEmptyName       = errors.New("task name cannot be empty")
	ErrInvalidEnergy   = errors.New("energy cost must be greater than zero")
	ErrInvalidHour     = errors.New("hour must be between 0 and 23")
	ErrCompletedAtDiff = errors.New("completed_at must be set if and only if the task is completed")
)

// TaskTemplate is an immutable blueprint used to instantiate tasks.
type TaskTemplate struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	EnergyCost  int        `json:"energy" yaml:"energy"`
	DurationMin int        `json:"duration" yaml:"duration"`
	EnergyType  EnergyType `json:"energyType" yaml:"energy_type"`
	Category    string     `json:"category" yaml:"category"`
}

type Task struct {
	ID                   string     `json:"id" yaml:"id"`
	Name                 string     `json:"name" yaml:"name"`
	EnergyCost           int        `json:"energy" yaml:"energy"`
	DurationMin          int        `json:"duration" yaml:"duration"`
	EnergyType           EnergyType `json:"energyType" yaml:"energy_type"`
	Category             string     `json:"category" yaml:"category"`
	Completed            bool       `json:"completed" yaml:"completed"`
	CreatedAt            time.Time  `json:"createdAt" yaml:"created_at"`
	CompletedAt          *time.Time `json:"completedAt,omitempty" yaml:"completed_at,omitempty"`
	ScheduledHour        *int       `json:"scheduledTime,omitempty" yaml:"scheduled_hour,omitempty"`
	Priority             Priority   `json:"priority" yaml:"priority"`
	EstimatedDurationMin int        `json:"estimatedDuration,omitempty" yaml:"estimated_duration,omitempty"`
	ActualDurationMin    int        `json:"actualDuration,omitempty" yaml:"actual_duration,omitempty"`
}

// NewTaskFromTemplate instantiates a fresh, incomplete task from a template.
func NewTaskFromTemplate(tmpl TaskTemplate, id string, now time.Time, priority Priority) Task {
	if !priority.Valid() {
		priority = PriorityMedium
	}
	return Task{
		ID:          id,
		Name:        tmpl.Name,
		EnergyCost:  tmpl.EnergyCost,
		DurationMin: tmpl.DurationMin,
		EnergyType:  tmpl.EnergyType,
		Category:    tmpl.Category,
		Completed:   false,
		CreatedAt:   now,
		Priority:    priority,
	}
}

func (t Task) IsScheduled() bool {
	return t.ScheduledHour != nil
}

// Hour returns the scheduled hour and whether the task is scheduled.
func (t Task) Hour() (int, bool) {
	if t.ScheduledHour == nil {
		return 0, false
	}
	return *t.ScheduledHour, true
}

// Clone returns a deep copy so reducers never share pointer fields.
func (t Task) Clone() Task {
	c := t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		c.CompletedAt = &at
	}
	if t.ScheduledHour != nil {
		h := *t.ScheduledHour
		c.ScheduledHour = &h
	}
	return c
}

// ValidHour reports whether hour is a schedulable hour of the day.
func ValidHour(hour int) bool {
	return hour >= constants.MinHour && hour <= constants.MaxHour
}

// Validate checks the task invariants.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyName
	}
	if t.EnergyCost <= 0 {
		return ErrInvalidEnergy
	}
	if t.Completed != (t.CompletedAt != nil) {
		return ErrCompletedAtDiff
	}
	if h, ok := t.Hour(); ok && !ValidHour(h) {
		return fmt.Errorf("%w: got %d", ErrInvalidHour, h)
	}
	return nil
}

// Repair restores the completion and schedule invariants of a task read
// from storage. A completed task without a timestamp is stamped with its
// creation time. It reports whether anything changed.
func (t *Task) Repair() bool {
	repaired := false
	switch {
	case t.Completed && t.CompletedAt == nil:
		at := t.CreatedAt
		t.CompletedAt = &at
		repaired = true
	case !t.Completed && t.CompletedAt != nil:
		t.CompletedAt = nil
		repaired = true
	}
	if h, ok := t.Hour(); ok && !ValidHour(h) {
		t.ScheduledHour = nil
		repaired = true
	}
	return repaired
}

func (tmpl TaskTemplate) Validate() error {
	if strings.TrimSpace(tmpl.Name) == "" {
		return ErrEmptyName
	}
	if tmpl.EnergyCost <= 0 {
		return ErrInvalidEnergy
	}
	return nil
}
