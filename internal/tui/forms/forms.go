// Package forms builds the huh forms shared by the TUI and the interactive
// CLI commands.
package forms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/enough/internal/models"
	"github.com/julianstephens/enough/internal/onboarding"
	"github.com/julianstephens/enough/internal/planner"
)

type QuickAddFormModel struct {
	Name string
}

type ScheduleFormModel struct {
	Hour int
}

type ConfirmFormModel struct {
	Confirmed bool
}

type OnboardingFormModel struct {
	Capacity int
	Style    models.VisualizationStyle
}

// NewQuickAddForm asks for a task name only; energy and duration use the
// quick-add defaults.
func NewQuickAddForm(fm *QuickAddFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Quick add").
				Placeholder("What needs doing?").
				Value(&fm.Name),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewScheduleForm offers every hour of the day, starting at the current
// choice.
func NewScheduleForm(fm *ScheduleFormModel, taskName string) *huh.Form {
	options := make([]huh.Option[int], 0, 24)
	for h := 0; h < 24; h++ {
		options = append(options, huh.NewOption(planner.FormatHour(h), h))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(fmt.Sprintf("Schedule %q at", taskName)).
				Options(options...).
				Height(8).
				Value(&fm.Hour),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewConfirmForm(fm *ConfirmFormModel, title, affirmative, negative string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative(affirmative).
				Negative(negative).
				Value(&fm.Confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewOnboardingForm walks the welcome steps, one group per step.
func NewOnboardingForm(fm *OnboardingFormModel) *huh.Form {
	if fm.Capacity == 0 {
		fm.Capacity = onboarding.SnapCapacity(models.DefaultSettings().DailyCapacity)
	}
	if !fm.Style.Valid() {
		fm.Style = models.VisualizationCircle
	}

	groups := make([]*huh.Group, 0, len(onboarding.Steps))
	for _, step := range onboarding.Steps {
		switch step.Kind {
		case onboarding.StepCapacity:
			groups = append(groups, huh.NewGroup(
				huh.NewSelect[int]().
					Title(step.Title).
					Description(step.Body).
					Options(capacityOptions()...).
					Value(&fm.Capacity),
			))
		case onboarding.StepMetaphor:
			groups = append(groups, huh.NewGroup(
				huh.NewSelect[models.VisualizationStyle]().
					Title(step.Title).
					Description(step.Body).
					Options(
						huh.NewOption("Circle", models.VisualizationCircle),
						huh.NewOption("Cup", models.VisualizationCup),
					).
					Value(&fm.Style),
			))
		default:
			groups = append(groups, huh.NewGroup(
				huh.NewNote().
					Title(step.Title).
					Description(step.Body).
					Next(true),
			))
		}
	}
	return huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
}

func capacityOptions() []huh.Option[int] {
	values := onboarding.CapacityOptions()
	options := make([]huh.Option[int], 0, len(values))
	for _, v := range values {
		options = append(options, huh.NewOption(capacityLabel(v), v))
	}
	return options
}

func capacityLabel(v int) string {
	switch {
	case v < 80:
		return strconv.Itoa(v) + " (gentle)"
	case v > 120:
		return strconv.Itoa(v) + " (full)"
	default:
		return strconv.Itoa(v)
	}
}

// TrimName normalizes input from a text field.
func TrimName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
