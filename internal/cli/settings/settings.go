// Package settings holds the commands that edit planner settings.
package settings

import (
	"fmt"

	"github.com/julianstephens/enough/internal/cli"
	"github.com/julianstephens/enough/internal/models"
	"github.com/julianstephens/enough/internal/planner"
)

// SettingsCmd shows settings and updates any that are given as flags.
type SettingsCmd struct {
	Capacity      *int    `help:"Daily energy capacity."`
	Style         *string `help:"Visualization style (circle or cup)."`
	WorkStart     *int    `help:"First working hour (0-23)."`
	WorkEnd       *int    `help:"Hour the working window ends (1-24)."`
	Theme         *string `help:"Color theme name."`
	Sound         *bool   `help:"Enable/disable sounds."`
	Animations    *bool   `help:"Enable/disable animations."`
	Notifications *bool   `help:"Enable/disable notifications."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings := ctx.Session().Settings()

	changed := false
	if c.Capacity != nil {
		settings.DailyCapacity = *c.Capacity
		changed = true
	}
	if c.Style != nil {
		style, err := models.ParseVisualizationStyle(*c.Style)
		if err != nil {
			return err
		}
		settings.VisualizationStyle = style
		changed = true
	}
	if c.WorkStart != nil {
		settings.WorkingHours.Start = *c.WorkStart
		changed = true
	}
	if c.WorkEnd != nil {
		settings.WorkingHours.End = *c.WorkEnd
		changed = true
	}
	if c.Theme != nil {
		settings.Theme = *c.Theme
		changed = true
	}
	if c.Sound != nil {
		settings.SoundEnabled = *c.Sound
		changed = true
	}
	if c.Animations != nil {
		settings.AnimationsEnabled = *c.Animations
		changed = true
	}
	if c.Notifications != nil {
		settings.NotificationsEnabled = *c.Notifications
		changed = true
	}

	if changed {
		if _, err := ctx.Dispatch(planner.UpdateSettings{Settings: settings}); err != nil {
			return err
		}
		ctx.Successf("Settings updated.")
		settings = ctx.Session().Settings()
	}

	ctx.Title("Settings")
	ctx.KeyValues([][2]any{
		{"daily_capacity", settings.DailyCapacity},
		{"visualization", settings.VisualizationStyle},
		{"working_hours", fmt.Sprintf("%s - %s", planner.FormatHour(settings.WorkingHours.Start), planner.FormatHour(settings.WorkingHours.End%24))},
		{"theme", settings.Theme},
		{"sound", cli.OnOff(settings.SoundEnabled)},
		{"animations", cli.OnOff(settings.AnimationsEnabled)},
		{"notifications", cli.OnOff(settings.NotificationsEnabled)},
		{"onboarded", cli.YesNo(settings.OnboardingCompleted)},
		{"categories", len(settings.Categories)},
		{"templates", len(settings.Templates)},
	})
	return nil
}
