package models

import (
	"fmt"
	"strings"

	"github.com/julianstephens/enough/internal/constants"
)

type VisualizationStyle string

const (
	VisualizationCircle VisualizationStyle = "circle"
	VisualizationCup    VisualizationStyle = "cup"
)

func (v VisualizationStyle) Valid() bool {
	return v == VisualizationCircle || v == VisualizationCup
}

// ParseVisualizationStyle parses a case-insensitive style name.
func ParseVisualizationStyle(s string) (VisualizationStyle, error) {
	v := VisualizationStyle(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("invalid visualization style: %q (expected circle or cup)", s)
	}
	return v, nil
}

type WorkingHours struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Contains reports whether hour falls inside the working window [Start, End).
func (w WorkingHours) Contains(hour int) bool {
	return hour >= w.Start && hour < w.End
}

// Settings represents user preferences
type Settings struct {
	DailyCapacity        int                `json:"dailyCapacity" yaml:"daily_capacity"`
	Theme                string             `json:"theme" yaml:"theme"`
	SoundEnabled         bool               `json:"soundEnabled" yaml:"sound_enabled"`
	AnimationsEnabled    bool               `json:"animationsEnabled" yaml:"animations_enabled"`
	Templates            []TaskTemplate     `json:"taskTemplates" yaml:"templates"`
	Categories           []string           `json:"categories" yaml:"categories"`
	VisualizationStyle   VisualizationStyle `json:"visualizationType" yaml:"visualization_style"`
	WorkingHours         WorkingHours       `json:"workingHours" yaml:"working_hours"`
	NotificationsEnabled bool               `json:"notifications" yaml:"notifications_enabled"`
	OnboardingCompleted  bool               `json:"onboardingCompleted" yaml:"onboarding_completed"`
}

// DefaultCategories are the categories a fresh install starts with.
func DefaultCategories() []string {
	return []string{"work", "personal", "home", "health", "creative", "social"}
}

// DefaultTemplates are the built-in task templates.
func DefaultTemplates() []TaskTemplate {
	return []TaskTemplate{
		{ID: "1", Name: "Team Meeting", EnergyCost: 25, DurationMin: 60, EnergyType: EnergySocial, Category: "work"},
		{ID: "2", Name: "Email Batch", EnergyCost: 15, DurationMin: 30, EnergyType: EnergyAdmin, Category: "work"},
		{ID: "3", Name: "Deep Focus", EnergyCost: 40, DurationMin: 90, EnergyType: EnergyFocus, Category: "work"},
		{ID: "4", Name: "Quick Call", EnergyCost: 10, DurationMin: 15, EnergyType: EnergySocial, Category: "work"},

		{ID: "5", Name: "Exercise", EnergyCost: 20, DurationMin: 45, EnergyType: EnergyPhysical, Category: "personal"},
		{ID: "6", Name: "Self-Care", EnergyCost: 10, DurationMin: 30, EnergyType: EnergyEmotional, Category: "personal"},
		{ID: "7", Name: "Creative Time", EnergyCost: 30, DurationMin: 120, EnergyType: EnergyCreative, Category: "personal"},
		{ID: "8", Name: "Reading", EnergyCost: 15, DurationMin: 45, EnergyType: EnergyFocus, Category: "personal"},

		{ID: "9", Name: "Meal Prep", EnergyCost: 25, DurationMin: 60, EnergyType: EnergyPhysical, Category: "home"},
		{ID: "10", Name: "Cleaning", EnergyCost: 15, DurationMin: 20, EnergyType: EnergyPhysical, Category: "home"},
		{ID: "11", Name: "Organizing", EnergyCost: 20, DurationMin: 45, EnergyType: EnergyAdmin, Category: "home"},
		{ID: "12", Name: "Laundry", EnergyCost: 10, DurationMin: 15, EnergyType: EnergyPhysical, Category: "home"},
	}
}

// DefaultSettings returns the settings used when nothing has been persisted yet.
func DefaultSettings() Settings {
	return Settings{
		DailyCapacity:      constants.DefaultDailyCapacity,
		Theme:              constants.DefaultTheme,
		SoundEnabled:       true,
		AnimationsEnabled:  true,
		Templates:          DefaultTemplates(),
		Categories:         DefaultCategories(),
		VisualizationStyle: VisualizationCircle,
		WorkingHours: WorkingHours{
			Start: constants.DefaultWorkingHourStart,
			End:   constants.DefaultWorkingHourEnd,
		},
		NotificationsEnabled: true,
		OnboardingCompleted:  false,
	}
}

// ApplyDefaultSettings fills zero-valued fields of a loaded settings value.
func ApplyDefaultSettings(settings *Settings) {
	if settings.DailyCapacity <= 0 {
		settings.DailyCapacity = constants.DefaultDailyCapacity
	}
	if settings.Theme == "" {
		settings.Theme = constants.DefaultTheme
	}
	if settings.Templates == nil {
		settings.Templates = DefaultTemplates()
	}
	if settings.Categories == nil {
		settings.Categories = DefaultCategories()
	}
	settings.Categories = UniqueCategories(settings.Categories)
	if !settings.VisualizationStyle.Valid() {
		settings.VisualizationStyle = VisualizationCircle
	}
}

// UniqueCategories trims and de-duplicates categories, keeping first-seen order.
func UniqueCategories(categories []string) []string {
	seen := make(map[string]bool, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// HasCategory reports whether the category is declared.
func (s Settings) HasCategory(category string) bool {
	for _, c := range s.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// DefaultCategory is the category used by quick add.
func (s Settings) DefaultCategory() string {
	if len(s.Categories) > 0 {
		return s.Categories[0]
	}
	return constants.QuickAddCategory
}

// FindTemplate looks a template up by ID, then by case-insensitive name.
func (s Settings) FindTemplate(ref string) (TaskTemplate, bool) {
	for _, t := range s.Templates {
		if t.ID == ref {
			return t, true
		}
	}
	for _, t := range s.Templates {
		if strings.EqualFold(t.Name, ref) {
			return t, true
		}
	}
	return TaskTemplate{}, false
}

// Clone returns a copy that does not share slices with s.
func (s Settings) Clone() Settings {
	c := s
	c.Templates = append([]TaskTemplate(nil), s.Templates...)
	c.Categories = append([]string(nil), s.Categories...)
	return c
}
