package models

import (
	"time"

	"github.com/julianstephens/enough/internal/constants"
)

// Achievement is a one-way unlockable milestone.
type Achievement struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	Icon        string     `json:"icon" yaml:"icon"`
	Unlocked    bool       `json:"unlocked" yaml:"unlocked"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty" yaml:"unlocked_at,omitempty"`
}

type UserStats struct {
	TotalTasksCompleted int           `json:"totalTasksCompleted" yaml:"total_tasks_completed"`
	CurrentStreak       int           `json:"currentStreak" yaml:"current_streak"`
	LongestStreak       int           `json:"longestStreak" yaml:"longest_streak"`
	TotalEnergyManaged  int           `json:"totalEnergyManaged" yaml:"total_energy_managed"`
	PerfectDays         int           `json:"perfectDays" yaml:"perfect_days"`
	Achievements        []Achievement `json:"achievements" yaml:"achievements"`
	LastActiveDay       string        `json:"lastActiveDay,omitempty" yaml:"last_active_day,omitempty"` // YYYY-MM-DD format
}

// DefaultAchievements returns the known achievements, all locked.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: constants.AchievementFirstTask, Title: "Getting Started", Description: "Complete your first task", Icon: "🎯"},
		{ID: constants.AchievementPerfectDay, Title: "Perfect Balance", Description: "Complete all tasks without going over capacity", Icon: "⚖️"},
		{ID: constants.AchievementWeekStreak, Title: "Consistent Week", Description: "Use the app for 7 days in a row", Icon: "🔥"},
		{ID: constants.AchievementEnergyMaster, Title: "Energy Master", Description: "Manage 1000 total energy points", Icon: "⚡"},
		{ID: constants.AchievementEarlyBird, Title: "Early Bird", Description: "Schedule a task before 8 AM", Icon: "🌅"},
		{ID: constants.AchievementNightOwl, Title: "Night Owl", Description: "Schedule a task after 10 PM", Icon: "🦉"},
	}
}

func DefaultStats() UserStats {
	return UserStats{Achievements: DefaultAchievements()}
}

// Normalize aligns Achievements with the known set: one entry per known ID in
// the default order, keeping any persisted unlock state and dropping unknown IDs.
func (s *UserStats) Normalize() {
	persisted := make(map[string]Achievement, len(s.Achievements))
	for _, a := range s.Achievements {
		if _, dup := persisted[a.ID]; !dup {
			persisted[a.ID] = a
		}
	}

	known := DefaultAchievements()
	for i, def := range known {
		p, ok := persisted[def.ID]
		if !ok || !p.Unlocked {
			continue
		}
		known[i].Unlocked = true
		if p.UnlockedAt != nil {
			at := *p.UnlockedAt
			known[i].UnlockedAt = &at
		}
	}
	s.Achievements = known

	if s.TotalTasksCompleted < 0 {
		s.TotalTasksCompleted = 0
	}
	if s.LongestStreak < s.CurrentStreak {
		s.LongestStreak = s.CurrentStreak
	}
}

// Achievement returns the achievement with the given ID.
func (s UserStats) Achievement(id string) (Achievement, bool) {
	for _, a := range s.Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// UnlockedCount returns how many achievements have been unlocked.
func (s UserStats) UnlockedCount() int {
	count := 0
	for _, a := range s.Achievements {
		if a.Unlocked {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the stats.
func (s UserStats) Clone() UserStats {
	c := s
	c.Achievements = make([]Achievement, len(s.Achievements))
	for i, a := range s.Achievements {
		c.Achievements[i] = a
		if a.UnlockedAt != nil {
			at := *a.UnlockedAt
			c.Achievements[i].UnlockedAt = &at
		}
	}
	return c
}
