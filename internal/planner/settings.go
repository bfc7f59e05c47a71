package planner

import (
	"fmt"
	"strings"

	"github.com/julianstephens/enough/internal/models"
)

// UpdateSettings replaces the settings wholesale after normalizing them.
type UpdateSettings struct {
	Settings models.Settings
}

func (u UpdateSettings) Apply(s State, _ Env) (State, Result, error) {
	if u.Settings.DailyCapacity <= 0 {
		return s, Result{}, fmt.Errorf("%w: got %d", ErrInvalidCapacity, u.Settings.DailyCapacity)
	}
	if u.Settings.WorkingHours.Start > u.Settings.WorkingHours.End ||
		!models.ValidHour(u.Settings.WorkingHours.Start) || u.Settings.WorkingHours.End > 24 {
		return s, Result{}, fmt.Errorf("invalid working hours %d-%d", u.Settings.WorkingHours.Start, u.Settings.WorkingHours.End)
	}

	next := s.Clone()
	next.Settings = u.Settings.Clone()
	models.ApplyDefaultSettings(&next.Settings)
	return next, Result{Changed: SettingsChanged}, nil
}

type AddCategory struct {
	Name string
}

func (a AddCategory) Apply(s State, _ Env) (State, Result, error) {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return s, Result{}, nil
	}
	if s.Settings.HasCategory(name) {
		return s, Result{}, fmt.Errorf("%w: %s", ErrCategoryExists, name)
	}
	next := s.Clone()
	next.Settings.Categories = append(next.Settings.Categories, name)
	return next, Result{Changed: SettingsChanged}, nil
}

// RemoveCategory drops a declared category. Tasks and templates keep their
// category string; their segments then sort after the declared ones.
type RemoveCategory struct {
	Name string
}

func (r RemoveCategory) Apply(s State, _ Env) (State, Result, error) {
	name := strings.TrimSpace(r.Name)
	if !s.Settings.HasCategory(name) {
		return s, Result{}, fmt.Errorf("%w: %s", ErrCategoryMissing, name)
	}
	next := s.Clone()
	kept := next.Settings.Categories[:0]
	for _, c := range next.Settings.Categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	next.Settings.Categories = kept
	return next, Result{Changed: SettingsChanged}, nil
}

// AddTemplate stores a new template under a fresh ID.
type AddTemplate struct {
	Template models.TaskTemplate
}

func (a AddTemplate) Apply(s State, env Env) (State, Result, error) {
	tmpl := a.Template
	tmpl.Name = strings.TrimSpace(tmpl.Name)
	if err := tmpl.Validate(); err != nil {
		return s, Result{}, err
	}
	if !tmpl.EnergyType.Valid() {
		tmpl.EnergyType = models.EnergyFocus
	}
	if strings.TrimSpace(tmpl.Category) == "" {
		tmpl.Category = s.Settings.DefaultCategory()
	}
	tmpl.ID = env.NewID()

	next := s.Clone()
	next.Settings.Templates = append(next.Settings.Templates, tmpl)
	return next, Result{Changed: SettingsChanged}, nil
}

// RemoveTemplate deletes a template by ID or name. Tasks already created
// from it are unaffected.
type RemoveTemplate struct {
	Ref string
}

func (r RemoveTemplate) Apply(s State, _ Env) (State, Result, error) {
	tmpl, ok := s.Settings.FindTemplate(r.Ref)
	if !ok {
		return s, Result{}, fmt.Errorf("%w: %s", ErrTemplateMissing, r.Ref)
	}
	next := s.Clone()
	kept := make([]models.TaskTemplate, 0, len(next.Settings.Templates))
	for _, t := range next.Settings.Templates {
		if t.ID != tmpl.ID {
			kept = append(kept, t)
		}
	}
	next.Settings.Templates = kept
	return next, Result{Changed: SettingsChanged}, nil
}

// CompleteOnboarding stores the choices made in the welcome flow.
type CompleteOnboarding struct {
	Capacity int
	Style    models.VisualizationStyle
}

func (c CompleteOnboarding) Apply(s State, _ Env) (State, Result, error) {
	if c.Capacity <= 0 {
		return s, Result{}, fmt.Errorf("%w: got %d", ErrInvalidCapacity, c.Capacity)
	}
	next := s.Clone()
	next.Settings.DailyCapacity = c.Capacity
	if c.Style.Valid() {
		next.Settings.VisualizationStyle = c.Style
	}
	next.Settings.OnboardingCompleted = true
	return next, Result{Changed: SettingsChanged}, nil
}
