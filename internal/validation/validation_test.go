package validation

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/enough/internal/models"
)

func hasType(result ValidationResult, ct ConflictType) bool {
	for _, c := range result.Conflicts {
		if c.Type == ct {
			return true
		}
	}
	return false
}

func task(id, name string, cost int, category string) models.Task {
	return models.Task{ID: id, Name: name, EnergyCost: cost, Category: category, Priority: models.PriorityMedium}
}

func TestValidateTasks_DuplicateIDs(t *testing.T) {
	validator := New()
	tasks := []models.Task{
		task("1", "Task A", 10, "work"),
		task("2", "Task B", 10, "work"),
		task("1", "Task C", 10, "work"),
	}

	result := validator.ValidateTasks(tasks, models.DefaultSettings())
	if !hasType(result, ConflictDuplicateTaskID) {
		t.Fatal("Expected ConflictDuplicateTaskID conflict type")
	}
	if !result.HasErrors() {
		t.Error("duplicate IDs should be an error")
	}
}

func TestValidateTasks_InvalidTasks(t *testing.T) {
	validator := New()
	badHour := 30
	now := time.Now()

	tests := []struct {
		name string
		task models.Task
	}{
		{"empty name", task("1", "  ", 10, "work")},
		{"zero energy", task("2", "Nothing", 0, "work")},
		{"hour out of range", func() models.Task { t := task("3", "Late", 10, "work"); t.ScheduledHour = &badHour; return t }()},
		{"completed without timestamp", func() models.Task { t := task("4", "Done", 10, "work"); t.Completed = true; return t }()},
		{"timestamp without completion", func() models.Task { t := task("5", "Undone", 10, "work"); t.CompletedAt = &now; return t }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.ValidateTasks([]models.Task{tt.task}, models.DefaultSettings())
			if !hasType(result, ConflictInvalidTask) {
				t.Errorf("expected invalid_task, got %+v", result.Conflicts)
			}
		})
	}
}

func TestValidateTasks_UnknownCategoryIsWarning(t *testing.T) {
	validator := New()
	result := validator.ValidateTasks([]models.Task{task("1", "Paint", 10, "art")}, models.DefaultSettings())

	if !hasType(result, ConflictUnknownCategory) {
		t.Fatal("expected unknown_category")
	}
	if result.HasErrors() {
		t.Error("unknown category should only warn")
	}
}

func TestValidateTasks_Overcommitted(t *testing.T) {
	validator := New()
	settings := models.DefaultSettings()
	settings.DailyCapacity = 50

	tasks := []models.Task{task("1", "A", 30, "work"), task("2", "B", 30, "home")}
	result := validator.ValidateTasks(tasks, settings)
	if !hasType(result, ConflictOvercommitted) {
		t.Error("expected overcommitted warning")
	}

	done := time.Now()
	tasks[1].Completed = true
	tasks[1].CompletedAt = &done
	result = validator.ValidateTasks(tasks, settings)
	if hasType(result, ConflictOvercommitted) {
		t.Error("completed tasks should not count against capacity")
	}
}

func TestValidateSettings(t *testing.T) {
	validator := New()

	clean := validator.ValidateSettings(models.DefaultSettings())
	if clean.HasConflicts() {
		t.Fatalf("default settings should validate, got:\n%s", clean.FormatReport())
	}

	settings := models.DefaultSettings()
	settings.Templates = append(settings.Templates, settings.Templates[0], models.TaskTemplate{ID: "x", Name: "", EnergyCost: 5})
	settings.WorkingHours = models.WorkingHours{Start: 18, End: 9}

	result := validator.ValidateSettings(settings)
	for _, ct := range []ConflictType{ConflictDuplicateTemplateID, ConflictInvalidTemplate, ConflictInvalidWorkingHours} {
		if !hasType(result, ct) {
			t.Errorf("missing %s", ct)
		}
	}
}

func TestValidateStats(t *testing.T) {
	validator := New()

	if r := validator.ValidateStats(models.DefaultStats()); r.HasConflicts() {
		t.Errorf("default stats flagged: %s", r.FormatReport())
	}

	stats := models.DefaultStats()
	stats.CurrentStreak = 5
	stats.LongestStreak = 2
	stats.Achievements[0].Unlocked = true
	r := validator.ValidateStats(stats)
	if len(r.Conflicts) != 2 {
		t.Errorf("expected 2 stats conflicts, got %d", len(r.Conflicts))
	}
}

func TestFormatReport(t *testing.T) {
	var empty ValidationResult
	if empty.FormatReport() != "No conflicts detected." {
		t.Errorf("empty report = %q", empty.FormatReport())
	}

	r := New().ValidateTasks([]models.Task{task("1", "A", 10, "nope")}, models.DefaultSettings())
	if !strings.Contains(r.FormatReport(), "[warning]") {
		t.Errorf("report missing severity:\n%s", r.FormatReport())
	}
}

func TestAutoFixDuplicateIDs(t *testing.T) {
	tasks := []models.Task{
		task("1", "First", 10, "work"),
		task("1", "Second", 10, "work"),
		task("2", "Other", 10, "work"),
		task("1", "Third", 10, "work"),
	}
	result := New().ValidateTasks(tasks, models.DefaultSettings())

	n := 0
	fixed, actions := AutoFixDuplicateIDs(result.Conflicts, tasks, func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	})

	if len(actions) != 2 {
		t.Fatalf("expected 2 fix actions, got %d", len(actions))
	}
	if fixed[0].ID != "1" || fixed[1].ID != "new-1" || fixed[2].ID != "2" || fixed[3].ID != "new-2" {
		t.Errorf("ids = %s %s %s %s", fixed[0].ID, fixed[1].ID, fixed[2].ID, fixed[3].ID)
	}
	if tasks[1].ID != "1" {
		t.Error("input slice was modified")
	}
	if again := New().ValidateTasks(fixed, models.DefaultSettings()); hasType(again, ConflictDuplicateTaskID) {
		t.Error("duplicates remain after fix")
	}
}
