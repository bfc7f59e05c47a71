package planner

import (
	"fmt"
	"strings"

	"github.com/julianstephens/enough/internal/achievements"
	"github.com/julianstephens/enough/internal/constants"
	"github.com/julianstephens/enough/internal/models"
)

// AddFromTemplate instantiates a template as a new pending task.
type AddFromTemplate struct {
	Template models.TaskTemplate
	Priority models.Priority
}

func (a AddFromTemplate) Apply(s State, env Env) (State, Result, error) {
	if err := a.Template.Validate(); err != nil {
		return s, Result{}, fmt.Errorf("invalid template %q: %w", a.Template.Name, err)
	}
	next, res := instantiate(s, env, a.Template, a.Priority)
	return next, res, nil
}

// QuickAdd creates a task from a bare name using the quick-add defaults.
// A blank name is ignored.
type QuickAdd struct {
	Name string
}

func (q QuickAdd) Apply(s State, env Env) (State, Result, error) {
	name := strings.TrimSpace(q.Name)
	if name == "" {
		return s, Result{}, nil
	}
	tmpl := models.TaskTemplate{
		Name:        name,
		EnergyCost:  constants.QuickAddEnergy,
		DurationMin: constants.QuickAddDurationMin,
		EnergyType:  models.EnergyFocus,
		Category:    s.Settings.DefaultCategory(),
	}
	next, res := instantiate(s, env, tmpl, models.PriorityMedium)
	return next, res, nil
}

// AddCustom creates a task from user-entered fields. A blank name is ignored;
// a missing category or energy type falls back to the quick-add defaults.
type AddCustom struct {
	Name        string
	EnergyCost  int
	DurationMin int
	EnergyType  models.EnergyType
	Category    string
	Priority    models.Priority
}

func (a AddCustom) Apply(s State, env Env) (State, Result, error) {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return s, Result{}, nil
	}
	if a.EnergyCost <= 0 {
		return s, Result{}, ErrInvalidEnergy
	}

	energyType := a.EnergyType
	if !energyType.Valid() {
		energyType = models.EnergyFocus
	}
	category := strings.TrimSpace(a.Category)
	if category == "" {
		category = s.Settings.DefaultCategory()
	}
	duration := a.DurationMin
	if duration <= 0 {
		duration = constants.QuickAddDurationMin
	}

	tmpl := models.TaskTemplate{
		Name:        name,
		EnergyCost:  a.EnergyCost,
		DurationMin: duration,
		EnergyType:  energyType,
		Category:    category,
	}
	next, res := instantiate(s, env, tmpl, a.Priority)
	return next, res, nil
}

func instantiate(s State, env Env, tmpl models.TaskTemplate, priority models.Priority) (State, Result) {
	next := s.Clone()
	task := models.NewTaskFromTemplate(tmpl, env.NewID(), env.Now(), priority)
	next.Tasks = append(next.Tasks, task)

	// Energy managed only ever grows; deleting or completing does not refund it.
	next.Stats.TotalEnergyManaged += task.EnergyCost

	var unlocked []string
	next.Stats, unlocked = achievements.Apply(achievements.Event{
		Kind:               achievements.TaskInstantiated,
		TotalEnergyManaged: next.Stats.TotalEnergyManaged,
	}, next.Stats, env.Now())

	return next, Result{
		Changed:  TasksChanged | StatsChanged,
		Unlocked: unlocked,
		Task:     &task,
	}
}

// Toggle flips a task between pending and completed.
type Toggle struct {
	ID string
}

func (t Toggle) Apply(s State, env Env) (State, Result, error) {
	i := s.indexOf(t.ID)
	if i < 0 {
		return s, Result{}, fmt.Errorf("%w: %s", ErrTaskNotFound, t.ID)
	}

	next := s.Clone()
	task := &next.Tasks[i]
	var unlocked []string

	if !task.Completed {
		now := env.Now()
		task.Completed = true
		task.CompletedAt = &now

		prev := next.Stats.TotalTasksCompleted
		next.Stats.TotalTasksCompleted++
		next.Stats, unlocked = achievements.Apply(achievements.Event{
			Kind:          achievements.TaskCompleted,
			PrevCompleted: prev,
			NextCompleted: next.Stats.TotalTasksCompleted,
		}, next.Stats, now)
	} else {
		task.Completed = false
		task.CompletedAt = nil
		next.Stats.TotalTasksCompleted = max(0, next.Stats.TotalTasksCompleted-1)
	}

	out := task.Clone()
	return next, Result{Changed: TasksChanged | StatsChanged, Unlocked: unlocked, Task: &out}, nil
}

// Delete removes a task. Historical counters are left alone.
type Delete struct {
	ID string
}

func (d Delete) Apply(s State, _ Env) (State, Result, error) {
	i := s.indexOf(d.ID)
	if i < 0 {
		return s, Result{}, fmt.Errorf("%w: %s", ErrTaskNotFound, d.ID)
	}
	next := s.Clone()
	removed := next.Tasks[i]
	next.Tasks = append(next.Tasks[:i], next.Tasks[i+1:]...)
	return next, Result{Changed: TasksChanged, Task: &removed}, nil
}

// Schedule places a task at an hour of the day. Scheduling an already
// scheduled task moves it.
type Schedule struct {
	ID   string
	Hour int
}

func (sc Schedule) Apply(s State, env Env) (State, Result, error) {
	if !models.ValidHour(sc.Hour) {
		return s, Result{}, fmt.Errorf("%w: got %d", ErrInvalidHour, sc.Hour)
	}
	i := s.indexOf(sc.ID)
	if i < 0 {
		return s, Result{}, fmt.Errorf("%w: %s", ErrTaskNotFound, sc.ID)
	}

	next := s.Clone()
	hour := sc.Hour
	next.Tasks[i].ScheduledHour = &hour

	var unlocked []string
	next.Stats, unlocked = achievements.Apply(achievements.Event{
		Kind: achievements.TaskScheduled,
		Hour: hour,
	}, next.Stats, env.Now())

	changed := TasksChanged
	if len(unlocked) > 0 {
		changed |= StatsChanged
	}
	out := next.Tasks[i].Clone()
	return next, Result{Changed: changed, Unlocked: unlocked, Task: &out}, nil
}

// Unschedule returns a task to the unscheduled pool.
type Unschedule struct {
	ID string
}

func (u Unschedule) Apply(s State, _ Env) (State, Result, error) {
	i := s.indexOf(u.ID)
	if i < 0 {
		return s, Result{}, fmt.Errorf("%w: %s", ErrTaskNotFound, u.ID)
	}
	if !s.Tasks[i].IsScheduled() {
		return s, Result{}, nil
	}
	next := s.Clone()
	next.Tasks[i].ScheduledHour = nil
	out := next.Tasks[i].Clone()
	return next, Result{Changed: TasksChanged, Task: &out}, nil
}

// Move repositions a task in the list. Index is clamped to the list bounds.
type Move struct {
	ID    string
	Index int
}

func (m Move) Apply(s State, _ Env) (State, Result, error) {
	from := s.indexOf(m.ID)
	if from < 0 {
		return s, Result{}, fmt.Errorf("%w: %s", ErrTaskNotFound, m.ID)
	}
	to := max(0, min(m.Index, len(s.Tasks)-1))
	if to == from {
		return s, Result{}, nil
	}

	next := s.Clone()
	task := next.Tasks[from]
	next.Tasks = append(next.Tasks[:from], next.Tasks[from+1:]...)
	next.Tasks = append(next.Tasks[:to], append([]models.Task{task}, next.Tasks[to:]...)...)
	return next, Result{Changed: TasksChanged, Task: &task}, nil
}

// ClearCompleted removes every completed task.
type ClearCompleted struct{}

func (ClearCompleted) Apply(s State, _ Env) (State, Result, error) {
	kept := make([]models.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if !t.Completed {
			kept = append(kept, t.Clone())
		}
	}
	if len(kept) == len(s.Tasks) {
		return s, Result{}, nil
	}
	next := s.Clone()
	next.Tasks = kept
	return next, Result{Changed: TasksChanged}, nil
}
