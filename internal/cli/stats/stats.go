// Package stats holds the read-only progress commands: stats, achievements
// and export.
package stats

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/julianstephens/enough/internal/cli"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	stats := ctx.Session().Stats()

	lastActive := stats.LastActiveDay
	if lastActive == "" {
		lastActive = "never"
	}

	ctx.Title("Your progress")
	ctx.KeyValues([][2]any{
		{"Tasks completed", stats.TotalTasksCompleted},
		{"Energy managed", stats.TotalEnergyManaged},
		{"Perfect days", stats.PerfectDays},
		{"Current streak", days(stats.CurrentStreak)},
		{"Longest streak", days(stats.LongestStreak)},
		{"Last active", lastActive},
		{"Achievements", fmt.Sprintf("%d / %d", stats.UnlockedCount(), len(stats.Achievements))},
	})
	return nil
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

type AchievementsCmd struct {
	Unlocked bool `help:"Only show unlocked achievements."`
}

var lockedColor = color.New(color.Faint)

func (c *AchievementsCmd) Run(ctx *cli.Context) error {
	stats := ctx.Session().Stats()
	ctx.Title(fmt.Sprintf("Achievements (%d / %d)", stats.UnlockedCount(), len(stats.Achievements)))

	for _, a := range stats.Achievements {
		if !a.Unlocked {
			if c.Unlocked {
				continue
			}
			_, _ = lockedColor.Fprintf(ctx.Out, "  🔒 %s: %s\n", a.Title, a.Description)
			continue
		}
		when := ""
		if a.UnlockedAt != nil {
			when = " (" + a.UnlockedAt.Local().Format("Jan 2, 2006") + ")"
		}
		ctx.Printf("  %s %s: %s%s\n", a.Icon, a.Title, a.Description, when)
	}
	return nil
}
