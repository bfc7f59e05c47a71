package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/enough/internal/energy"
	"github.com/julianstephens/enough/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateTaskID     ConflictType = "duplicate_task_id"
	ConflictInvalidTask         ConflictType = "invalid_task"
	ConflictUnknownCategory     ConflictType = "unknown_category"
	ConflictDuplicateTemplateID ConflictType = "duplicate_template_id"
	ConflictInvalidTemplate     ConflictType = "invalid_template"
	ConflictInvalidWorkingHours ConflictType = "invalid_working_hours"
	ConflictOvercommitted       ConflictType = "overcommitted"
	ConflictInconsistentStats   ConflictType = "inconsistent_stats"
)

// Severity separates data problems from advice.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Conflict represents a detected problem in stored planner data
type Conflict struct {
	Type        ConflictType
	Severity    Severity
	Description string
	Items       []string // Task/template names involved
	TaskIDs     []string // IDs of tasks involved (for auto-fixing)
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// FixAction represents an action taken during auto-fix
type FixAction struct {
	Action         string
	SourceConflict Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// HasErrors ignores warnings.
func (vr *ValidationResult) HasErrors() bool {
	for _, c := range vr.Conflicts {
		if c.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Merge appends the conflicts of other.
func (vr *ValidationResult) Merge(other ValidationResult) {
	vr.Conflicts = append(vr.Conflicts, other.Conflicts...)
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- [%s] %s\n", conflict.Severity, conflict.Description)
	}
	return b.String()
}

func (vr *ValidationResult) add(c Conflict) {
	vr.Conflicts = append(vr.Conflicts, c)
}

// Validator validates stored planner data
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// Validate runs every check over a full snapshot of planner data.
func (v *Validator) Validate(tasks []models.Task, settings models.Settings, stats models.UserStats) ValidationResult {
	result := v.ValidateTasks(tasks, settings)
	result.Merge(v.ValidateSettings(settings))
	result.Merge(v.ValidateStats(stats))
	return result
}

// ValidateTasks checks task invariants and their fit against settings.
func (v *Validator) ValidateTasks(tasks []models.Task, settings models.Settings) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	idCount := make(map[string][]string)
	var order []string
	for _, task := range tasks {
		if _, seen := idCount[task.ID]; !seen {
			order = append(order, task.ID)
		}
		idCount[task.ID] = append(idCount[task.ID], task.Name)
	}
	for _, id := range order {
		names := idCount[id]
		if len(names) > 1 {
			result.add(Conflict{
				Type:        ConflictDuplicateTaskID,
				Severity:    SeverityError,
				Description: fmt.Sprintf("Duplicate task ID %q shared by %d tasks (%s)", id, len(names), strings.Join(names, ", ")),
				Items:       names,
				TaskIDs:     []string{id},
			})
		}
	}

	for _, task := range tasks {
		if err := task.Validate(); err != nil {
			result.add(Conflict{
				Type:        ConflictInvalidTask,
				Severity:    SeverityError,
				Description: fmt.Sprintf("Task %q is invalid: %v", task.Name, err),
				Items:       []string{task.Name},
				TaskIDs:     []string{task.ID},
			})
		}
		if task.Category != "" && !settings.HasCategory(task.Category) {
			result.add(Conflict{
				Type:        ConflictUnknownCategory,
				Severity:    SeverityWarning,
				Description: fmt.Sprintf("Task %q uses unknown category %q", task.Name, task.Category),
				Items:       []string{task.Name},
				TaskIDs:     []string{task.ID},
			})
		}
	}

	summary := energy.Compute(tasks, settings)
	if over := energy.Overflow(summary.Total, settings.DailyCapacity); over > 0 {
		result.add(Conflict{
			Type:        ConflictOvercommitted,
			Severity:    SeverityWarning,
			Description: fmt.Sprintf("Pending tasks need %d energy, %d over the daily capacity of %d", summary.Total, over, settings.DailyCapacity),
		})
	}

	return result
}

// ValidateSettings checks templates and working hours.
func (v *Validator) ValidateSettings(settings models.Settings) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	seen := make(map[string]bool, len(settings.Templates))
	for _, tmpl := range settings.Templates {
		if seen[tmpl.ID] {
			result.add(Conflict{
				Type:        ConflictDuplicateTemplateID,
				Severity:    SeverityError,
				Description: fmt.Sprintf("Duplicate template ID %q (%s)", tmpl.ID, tmpl.Name),
				Items:       []string{tmpl.Name},
			})
		}
		seen[tmpl.ID] = true

		if err := tmpl.Validate(); err != nil {
			result.add(Conflict{
				Type:        ConflictInvalidTemplate,
				Severity:    SeverityError,
				Description: fmt.Sprintf("Template %q is invalid: %v", tmpl.Name, err),
				Items:       []string{tmpl.Name},
			})
		}
	}

	wh := settings.WorkingHours
	if !models.ValidHour(wh.Start) || wh.End < 0 || wh.End > 24 || wh.Start >= wh.End {
		result.add(Conflict{
			Type:        ConflictInvalidWorkingHours,
			Severity:    SeverityWarning,
			Description: fmt.Sprintf("Working hours %d-%d do not form a valid window", wh.Start, wh.End),
		})
	}

	return result
}

// ValidateStats checks the counters for impossible values.
func (v *Validator) ValidateStats(stats models.UserStats) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	var problems []string
	if stats.TotalTasksCompleted < 0 || stats.TotalEnergyManaged < 0 || stats.PerfectDays < 0 {
		problems = append(problems, "negative counter")
	}
	if stats.CurrentStreak > stats.LongestStreak {
		problems = append(problems, fmt.Sprintf("current streak %d exceeds longest streak %d", stats.CurrentStreak, stats.LongestStreak))
	}
	for _, a := range stats.Achievements {
		if a.Unlocked && a.UnlockedAt == nil {
			problems = append(problems, fmt.Sprintf("achievement %s unlocked without a date", a.ID))
		}
	}
	for _, p := range problems {
		result.add(Conflict{
			Type:        ConflictInconsistentStats,
			Severity:    SeverityWarning,
			Description: "Stats: " + p,
		})
	}
	return result
}

// AutoFixDuplicateIDs gives every repeated task ID after the first a fresh
// one from newID. The input slice is not modified.
func AutoFixDuplicateIDs(conflicts []Conflict, tasks []models.Task, newID func() string) ([]models.Task, []FixAction) {
	dupes := make(map[string]Conflict)
	for _, c := range conflicts {
		if c.Type == ConflictDuplicateTaskID && len(c.TaskIDs) > 0 {
			dupes[c.TaskIDs[0]] = c
		}
	}

	fixed := make([]models.Task, len(tasks))
	var actions []FixAction
	seen := make(map[string]bool, len(tasks))
	for i, task := range tasks {
		fixed[i] = task.Clone()
		c, dup := dupes[task.ID]
		if dup && seen[task.ID] {
			fixed[i].ID = newID()
			actions = append(actions, FixAction{
				Action:         fmt.Sprintf("Reassigned task %q from ID %s to %s", task.Name, task.ID, fixed[i].ID),
				SourceConflict: c,
			})
		}
		seen[task.ID] = true
	}

	sort.SliceStable(actions, func(i, j int) bool { return actions[i].Action < actions[j].Action })
	return fixed, actions
}
